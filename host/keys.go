package host

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/strata/ui"
)

// namedKeys maps non-printable keys to their KeyInfo names.
var namedKeys = map[ebiten.Key]string{
	ebiten.KeyEnter:       "Enter",
	ebiten.KeyNumpadEnter: "Enter",
	ebiten.KeyEscape:      "Escape",
	ebiten.KeyBackspace:   "Backspace",
	ebiten.KeyTab:         "Tab",
	ebiten.KeyDelete:      "Delete",
	ebiten.KeyInsert:      "Insert",
	ebiten.KeyHome:        "Home",
	ebiten.KeyEnd:         "End",
	ebiten.KeyPageUp:      "PageUp",
	ebiten.KeyPageDown:    "PageDown",
	ebiten.KeyArrowLeft:   "ArrowLeft",
	ebiten.KeyArrowRight:  "ArrowRight",
	ebiten.KeyArrowUp:     "ArrowUp",
	ebiten.KeyArrowDown:   "ArrowDown",
	ebiten.KeyF1:          "F1",
	ebiten.KeyF2:          "F2",
	ebiten.KeyF3:          "F3",
	ebiten.KeyF4:          "F4",
	ebiten.KeyF5:          "F5",
	ebiten.KeyF6:          "F6",
	ebiten.KeyF7:          "F7",
	ebiten.KeyF8:          "F8",
	ebiten.KeyF9:          "F9",
	ebiten.KeyF10:         "F10",
	ebiten.KeyF11:         "F11",
	ebiten.KeyF12:         "F12",
}

// printableKeys maps character keys to their unshifted and shifted
// characters on a US layout.
var printableKeys = map[ebiten.Key][2]string{
	ebiten.KeySpace:          {" ", " "},
	ebiten.KeyMinus:          {"-", "_"},
	ebiten.KeyEqual:          {"=", "+"},
	ebiten.KeyBracketLeft:    {"[", "{"},
	ebiten.KeyBracketRight:   {"]", "}"},
	ebiten.KeyBackslash:      {"\\", "|"},
	ebiten.KeySemicolon:      {";", ":"},
	ebiten.KeyQuote:          {"'", "\""},
	ebiten.KeyBackquote:      {"`", "~"},
	ebiten.KeyComma:          {",", "<"},
	ebiten.KeyPeriod:         {".", ">"},
	ebiten.KeySlash:          {"/", "?"},
	ebiten.KeyNumpadAdd:      {"+", "+"},
	ebiten.KeyNumpadSubtract: {"-", "-"},
	ebiten.KeyNumpadMultiply: {"*", "*"},
	ebiten.KeyNumpadDivide:   {"/", "/"},
	ebiten.KeyNumpadDecimal:  {".", "."},
	ebiten.KeyDigit0:         {"0", ")"},
	ebiten.KeyDigit1:         {"1", "!"},
	ebiten.KeyDigit2:         {"2", "@"},
	ebiten.KeyDigit3:         {"3", "#"},
	ebiten.KeyDigit4:         {"4", "$"},
	ebiten.KeyDigit5:         {"5", "%"},
	ebiten.KeyDigit6:         {"6", "^"},
	ebiten.KeyDigit7:         {"7", "&"},
	ebiten.KeyDigit8:         {"8", "*"},
	ebiten.KeyDigit9:         {"9", "("},
}

var (
	letterKeys = []ebiten.Key{
		ebiten.KeyA, ebiten.KeyB, ebiten.KeyC, ebiten.KeyD, ebiten.KeyE, ebiten.KeyF, ebiten.KeyG,
		ebiten.KeyH, ebiten.KeyI, ebiten.KeyJ, ebiten.KeyK, ebiten.KeyL, ebiten.KeyM, ebiten.KeyN,
		ebiten.KeyO, ebiten.KeyP, ebiten.KeyQ, ebiten.KeyR, ebiten.KeyS, ebiten.KeyT, ebiten.KeyU,
		ebiten.KeyV, ebiten.KeyW, ebiten.KeyX, ebiten.KeyY, ebiten.KeyZ,
	}
	numpadKeys = []ebiten.Key{
		ebiten.KeyNumpad0, ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3, ebiten.KeyNumpad4,
		ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9,
	}
)

func init() {
	for i, k := range letterKeys {
		c := string(rune('a' + i))
		printableKeys[k] = [2]string{c, strings.ToUpper(c)}
	}
	for i, k := range numpadKeys {
		c := string(rune('0' + i))
		printableKeys[k] = [2]string{c, c}
	}
}

// currentMods reads the modifier keys held right now.
func currentMods() ui.Mod {
	var m ui.Mod
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= ui.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		m |= ui.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= ui.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= ui.ModMeta
	}
	return m
}

// keyInfo converts an ebiten key. Modifier keys and keys without a name
// report false.
func keyInfo(k ebiten.Key, mods ui.Mod) (ui.KeyInfo, bool) {
	if name, ok := namedKeys[k]; ok {
		return ui.KeyInfo{Key: name, Mods: mods}, true
	}
	chars, ok := printableKeys[k]
	if !ok {
		return ui.KeyInfo{}, false
	}
	if mods.Has(ui.ModShift) {
		return ui.KeyInfo{Key: chars[1], Mods: mods}, true
	}
	return ui.KeyInfo{Key: chars[0], Mods: mods}, true
}

// clipboardAction reports which clipboard shortcut a key press is, if any.
func clipboardAction(k ebiten.Key, mods ui.Mod) string {
	if !mods.Has(ui.ModCtrl) && !mods.Has(ui.ModMeta) {
		return ""
	}
	switch k {
	case ebiten.KeyC:
		return "copy"
	case ebiten.KeyX:
		return "cut"
	case ebiten.KeyV:
		return "paste"
	}
	return ""
}

var cursorShapes = map[ui.Cursor]ebiten.CursorShapeType{
	ui.CursorDefault:    ebiten.CursorShapeDefault,
	ui.CursorPointer:    ebiten.CursorShapePointer,
	ui.CursorText:       ebiten.CursorShapeText,
	ui.CursorCrosshair:  ebiten.CursorShapeCrosshair,
	ui.CursorMove:       ebiten.CursorShapeMove,
	ui.CursorGrab:       ebiten.CursorShapeMove,
	ui.CursorGrabbing:   ebiten.CursorShapeMove,
	ui.CursorNotAllowed: ebiten.CursorShapeNotAllowed,
	ui.CursorResizeEW:   ebiten.CursorShapeEWResize,
	ui.CursorResizeNS:   ebiten.CursorShapeNSResize,
}

// cursorShape maps a cursor to the closest shape ebiten offers.
func cursorShape(c ui.Cursor) ebiten.CursorShapeType {
	if shape, ok := cursorShapes[c]; ok {
		return shape
	}
	return ebiten.CursorShapeDefault
}
