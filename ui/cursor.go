package ui

// Cursor is the mouse cursor shape requested by a behavior.
// The zero value means "no preference".
type Cursor int

const (
	CursorUnset Cursor = iota
	CursorDefault
	CursorPointer
	CursorText
	CursorCrosshair
	CursorMove
	CursorGrab
	CursorGrabbing
	CursorNotAllowed
	CursorWait
	CursorResizeEW
	CursorResizeNS
)

var cursorNames = [...]string{
	CursorUnset:      "",
	CursorDefault:    "default",
	CursorPointer:    "pointer",
	CursorText:       "text",
	CursorCrosshair:  "crosshair",
	CursorMove:       "move",
	CursorGrab:       "grab",
	CursorGrabbing:   "grabbing",
	CursorNotAllowed: "not-allowed",
	CursorWait:       "wait",
	CursorResizeEW:   "ew-resize",
	CursorResizeNS:   "ns-resize",
}

// String returns the CSS cursor name.
func (c Cursor) String() string {
	if c < 0 || int(c) >= len(cursorNames) {
		return "default"
	}
	return cursorNames[c]
}

// Or returns c, or fallback when c is unset.
func (c Cursor) Or(fallback Cursor) Cursor {
	if c == CursorUnset {
		return fallback
	}
	return c
}
