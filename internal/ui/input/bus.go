package input

import (
	"sync"

	"github.com/bnema/lectern/internal/application/port"
)

// Bus is an in-process port.InputSource. Hosts push raw events into it
// and attached listeners receive them in registration order.
type Bus struct {
	mu       sync.Mutex
	nextID   int
	keys     map[int]port.KeyListener
	pointers map[int]port.PointerListener
	controls map[int]port.ControlListener
	order    []int
}

// NewBus creates an empty Bus.
func NewBus() *Bus {
	return &Bus{
		keys:     make(map[int]port.KeyListener),
		pointers: make(map[int]port.PointerListener),
		controls: make(map[int]port.ControlListener),
	}
}

func (b *Bus) add(register func(id int)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	register(id)
	b.order = append(b.order, id)

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.keys, id)
			delete(b.pointers, id)
			delete(b.controls, id)
			for i, v := range b.order {
				if v == id {
					b.order = append(b.order[:i:i], b.order[i+1:]...)
					break
				}
			}
		})
	}
}

// AddKeyListener implements port.InputSource.
func (b *Bus) AddKeyListener(l port.KeyListener) func() {
	return b.add(func(id int) { b.keys[id] = l })
}

// AddPointerListener implements port.InputSource.
func (b *Bus) AddPointerListener(l port.PointerListener) func() {
	return b.add(func(id int) { b.pointers[id] = l })
}

// AddControlListener implements port.InputSource.
func (b *Bus) AddControlListener(l port.ControlListener) func() {
	return b.add(func(id int) { b.controls[id] = l })
}

// ListenerCount returns the number of attached listeners of all kinds.
func (b *Bus) ListenerCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.order)
}

// EmitKey delivers a key press. It returns true if any listener asked
// for the host default to be suppressed.
func (b *Bus) EmitKey(key string) bool {
	prevent := false
	for _, l := range snapshot(b, b.keys) {
		if l(key) {
			prevent = true
		}
	}
	return prevent
}

// EmitPointer delivers a pointer event.
func (b *Bus) EmitPointer(ev port.PointerEvent) {
	for _, l := range snapshot(b, b.pointers) {
		l(ev)
	}
}

// EmitControl delivers a control invocation.
func (b *Bus) EmitControl(control string) {
	for _, l := range snapshot(b, b.controls) {
		l(control)
	}
}

// snapshot copies the listeners of one kind so they run without the lock.
func snapshot[L any](b *Bus, m map[int]L) []L {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]L, 0, len(m))
	for _, id := range b.order {
		if l, ok := m[id]; ok {
			out = append(out, l)
		}
	}
	return out
}
