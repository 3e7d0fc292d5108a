// Package input turns raw key, pointer and control events into
// navigation requests.
package input

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bnema/lectern/internal/logging"
)

// Modifier represents keyboard modifier flags.
type Modifier uint

const (
	// ModNone indicates no modifier is pressed.
	ModNone Modifier = 0
	// ModShift indicates the Shift key is pressed.
	ModShift Modifier = 1 << iota
	// ModCtrl indicates Control, or Command on macOS.
	ModCtrl
	// ModAlt indicates the Alt or Option key.
	ModAlt
)

var modifierNames = map[string]Modifier{
	"shift":   ModShift,
	"ctrl":    ModCtrl,
	"control": ModCtrl,
	"cmd":     ModCtrl,
	"command": ModCtrl,
	"meta":    ModCtrl,
	"super":   ModCtrl,
	"alt":     ModAlt,
	"option":  ModAlt,
}

var keyAliases = map[string]string{
	" ":          "space",
	"arrowright": "right",
	"arrowleft":  "left",
	"arrowup":    "up",
	"arrowdown":  "down",
	"escape":     "esc",
	"return":     "enter",
	"slash":      "/",
	"pgup":       "pageup",
	"pgdown":     "pagedown",
}

// KeyBinding represents a single key combination.
type KeyBinding struct {
	Key       string
	Modifiers Modifier
}

// String renders the binding in canonical "ctrl+alt+shift+key" form.
func (b KeyBinding) String() string {
	var parts []string
	if b.Modifiers&ModCtrl != 0 {
		parts = append(parts, "ctrl")
	}
	if b.Modifiers&ModAlt != 0 {
		parts = append(parts, "alt")
	}
	if b.Modifiers&ModShift != 0 {
		parts = append(parts, "shift")
	}
	return strings.Join(append(parts, b.Key), "+")
}

// ParseKeyString parses names like "ctrl+f", "Cmd+P", "alt+left" or " ".
// Modifier aliases (cmd, meta, super) fold into ctrl.
func ParseKeyString(s string) (KeyBinding, bool) {
	if s == " " {
		return KeyBinding{Key: "space"}, true
	}
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return KeyBinding{}, false
	}
	if s == "+" {
		return KeyBinding{Key: "+"}, true
	}

	parts := strings.Split(s, "+")
	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod, ok := modifierNames[strings.TrimSpace(p)]
		if !ok {
			return KeyBinding{}, false
		}
		mods |= mod
	}

	key := strings.TrimSpace(parts[len(parts)-1])
	if key == "" {
		return KeyBinding{}, false
	}
	if alias, ok := keyAliases[key]; ok {
		key = alias
	}
	return KeyBinding{Key: key, Modifiers: mods}, true
}

// Action represents what happens when an input is recognized.
type Action string

const (
	ActionNone            Action = ""
	ActionNext            Action = "next"
	ActionPrevious        Action = "previous"
	ActionFirst           Action = "first"
	ActionLast            Action = "last"
	ActionGoTo            Action = "goto"
	ActionTogglePresenter Action = "toggle-presenter"
	ActionEscape          Action = "escape"
	ActionOpenSearch      Action = "open-search"
	ActionSubmitSearch    Action = "submit-search"
	ActionToggleAutoplay  Action = "toggle-autoplay"
	ActionTogglePause     Action = "toggle-pause"
	ActionPrint           Action = "print"
	ActionHistoryBack     Action = "history-back"
	ActionHistoryForward  Action = "history-forward"
	ActionQuit            Action = "quit"
)

// ShortcutTable maps KeyBinding to Action.
type ShortcutTable map[KeyBinding]Action

// ShortcutSet holds the shortcut tables, grouped by when they apply.
type ShortcutSet struct {
	// Global shortcuts are active whether or not the search overlay is open.
	Global ShortcutTable
	// Navigation shortcuts are suppressed while the search overlay is open.
	Navigation ShortcutTable
	// Overlay shortcuts only apply while the search overlay is open.
	Overlay ShortcutTable
}

// NewShortcutSet builds the default shortcut tables.
func NewShortcutSet(ctx context.Context) *ShortcutSet {
	log := logging.FromContext(ctx)
	set := &ShortcutSet{
		Global:     make(ShortcutTable),
		Navigation: make(ShortcutTable),
		Overlay:    make(ShortcutTable),
	}

	set.register(set.Navigation, ActionNext, "right", "space")
	set.register(set.Navigation, ActionPrevious, "left")
	set.register(set.Navigation, ActionFirst, "home")
	set.register(set.Navigation, ActionLast, "end")
	set.register(set.Navigation, ActionToggleAutoplay, "a")
	set.register(set.Navigation, ActionTogglePause, "p")
	set.register(set.Navigation, ActionHistoryBack, "alt+left")
	set.register(set.Navigation, ActionHistoryForward, "alt+right")
	set.register(set.Navigation, ActionQuit, "q")

	set.register(set.Global, ActionTogglePresenter, "ctrl+p")
	set.register(set.Global, ActionEscape, "esc")
	set.register(set.Global, ActionOpenSearch, "ctrl+f", "/")
	set.register(set.Global, ActionPrint, "ctrl+s")
	set.register(set.Global, ActionQuit, "ctrl+c")

	set.register(set.Overlay, ActionSubmitSearch, "enter")

	log.Debug().
		Int("global", len(set.Global)).
		Int("navigation", len(set.Navigation)).
		Int("overlay", len(set.Overlay)).
		Msg("shortcuts registered")

	return set
}

func (s *ShortcutSet) register(dest ShortcutTable, action Action, keys ...string) {
	for _, key := range keys {
		if binding, ok := ParseKeyString(key); ok {
			dest[binding] = action
		}
	}
}

// Printable reports whether the binding types a single character, so a
// focused text field should receive it.
func (b KeyBinding) Printable() bool {
	return b.Modifiers&(ModCtrl|ModAlt) == 0 && utf8.RuneCountInString(b.Key) == 1
}

// Lookup resolves a binding for the given overlay state. While the
// overlay is open, printable keys belong to the query even when a
// global shortcut uses them.
func (s *ShortcutSet) Lookup(binding KeyBinding, overlayOpen bool) (Action, bool) {
	if action, ok := s.Global[binding]; ok && !(overlayOpen && binding.Printable()) {
		return action, true
	}
	if overlayOpen {
		action, ok := s.Overlay[binding]
		return action, ok
	}
	action, ok := s.Navigation[binding]
	return action, ok
}

// Bindings returns the canonical key names bound to action, sorted.
func (s *ShortcutSet) Bindings(action Action) []string {
	var keys []string
	for _, table := range []ShortcutTable{s.Global, s.Navigation, s.Overlay} {
		for binding, a := range table {
			if a == action {
				keys = append(keys, binding.String())
			}
		}
	}
	sort.Strings(keys)
	return keys
}
