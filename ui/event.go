package ui

import "strings"

// Mod is a set of keyboard modifier flags held during an event.
type Mod uint8

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << 0
	ModCtrl  Mod = 1 << 1
	ModAlt   Mod = 1 << 2
	ModMeta  Mod = 1 << 3
)

// Has reports whether all flags in m2 are set in m.
func (m Mod) Has(m2 Mod) bool { return m&m2 == m2 }

func (m Mod) String() string {
	if m == ModNone {
		return "none"
	}
	var parts []string
	for _, f := range []struct {
		mod  Mod
		name string
	}{{ModCtrl, "ctrl"}, {ModAlt, "alt"}, {ModShift, "shift"}, {ModMeta, "meta"}} {
		if m.Has(f.mod) {
			parts = append(parts, f.name)
		}
	}
	return strings.Join(parts, "+")
}

// KeyInfo describes a key press or release. Key follows the naming of the
// browser KeyboardEvent.key property: a single character for printable keys
// ("a", "A", "1", " ") and a name otherwise ("Enter", "ArrowLeft").
type KeyInfo struct {
	Key  string
	Mods Mod
}

// Printable reports whether the key produces a single character.
func (k KeyInfo) Printable() bool {
	return len([]rune(k.Key)) == 1 && !k.Mods.Has(ModCtrl) && !k.Mods.Has(ModMeta)
}

// MouseButton identifies a mouse button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
)

// ClickInfo describes a mouse click.
type ClickInfo struct {
	Button MouseButton
	Mods   Mod
}

// ClipboardData is the payload of copy, cut and paste events.
// ClipboardText is the only variant.
type ClipboardData interface{ isClipboardData() }

// ClipboardText is textual clipboard content.
type ClipboardText string

func (ClipboardText) isClipboardData() {}
