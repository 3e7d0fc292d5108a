package port

// PointerPhase is the stage of a touch or drag gesture.
type PointerPhase int

const (
	PointerStart PointerPhase = iota
	PointerMove
	PointerEnd
	PointerCancel
)

// PointerEvent carries the horizontal position of a touch point in pixels.
type PointerEvent struct {
	Phase PointerPhase
	X     float64
}

// KeyListener handles a key press identified by its key name
// ("right", "space", "ctrl+f"). It returns true when the host's default
// behavior for the key must be suppressed.
type KeyListener func(key string) (preventDefault bool)

// PointerListener handles touch or drag gesture events.
type PointerListener func(ev PointerEvent)

// ControlListener handles named control invocations (button presses).
type ControlListener func(control string)

// InputSource is where raw input events come from. Each Add call returns
// a function that removes the listener.
type InputSource interface {
	AddKeyListener(l KeyListener) (remove func())
	AddPointerListener(l PointerListener) (remove func())
	AddControlListener(l ControlListener) (remove func())
}
