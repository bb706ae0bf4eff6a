package widget

import (
	"image/color"
	"strings"

	"github.com/OpticalFlyer/strata/region"
	"github.com/OpticalFlyer/strata/ui"
)

var _ ui.Component = (*TextField)(nil)

var (
	fieldColor       = color.RGBA{250, 250, 250, 255}
	fieldBorder      = color.RGBA{120, 120, 120, 255}
	placeholderColor = color.RGBA{150, 150, 150, 255}
)

// TextField is a single line text input. It takes keys and clipboard
// events while focused or hovered. Clicking it focuses it, clicking
// elsewhere or pressing Escape removes the focus.
type TextField struct {
	Region      region.Region
	Text        string
	Placeholder string
	// OnSubmit is called when Enter is pressed.
	OnSubmit func(agent *ui.Agent, text string)
}

func NewTextField(r region.Region, placeholder string) *TextField {
	return &TextField{Region: r, Placeholder: placeholder}
}

func (f *TextField) CreateBehaviors() []ui.Behavior {
	return []ui.Behavior{&textFieldBehavior{TextField: f, text: []rune(f.Text)}}
}

type textFieldBehavior struct {
	*TextField

	text    []rune
	focused bool
}

// Focused fields take keys ahead of other global key listeners.
const focusedKeyPriority = 100

func (f *textFieldBehavior) Attach(c ui.ClaimSet) {
	logClaim("text field", c.ClaimRenderSpace(f.Region, ui.TriggerRequest, ui.OpacitySolid, ui.PhaseText))
	logClaim("text field", c.ClaimMouseClickSpace(f.Region))
	logClaim("text field", c.ClaimKeyListenSpace(f.Region))
	logClaim("text field", c.ClaimClipboardSpace(f.Region))
	c.MakeKeyListener(focusedKeyPriority)
	c.MakeClipboardListener(focusedKeyPriority)
}

// active reports whether input should go to the field.
func (f *textFieldBehavior) active(ctx *ui.Context) bool {
	return f.focused || f.Region.ContainsPosition(ctx.Mouse)
}

func (f *textFieldBehavior) setFocus(agent *ui.Agent, focused bool) {
	if f.focused != focused {
		f.focused = focused
		agent.RequestRender()
	}
}

func (f *textFieldBehavior) MouseClickInside(ctx *ui.ClickContext) {
	f.setFocus(ctx.Agent, true)
}

func (f *textFieldBehavior) MouseClickOutside(ctx *ui.ClickContext) {
	f.setFocus(ctx.Agent, false)
}

func (f *textFieldBehavior) KeyDown(ctx *ui.KeyContext) bool {
	if !f.active(&ctx.Context) {
		return false
	}
	switch key := ctx.Key; {
	case key.Key == "Backspace":
		if len(f.text) > 0 {
			f.text = f.text[:len(f.text)-1]
		}
	case key.Key == "Enter":
		if f.OnSubmit != nil {
			f.OnSubmit(ctx.Agent, string(f.text))
		}
	case key.Key == "Escape":
		f.focused = false
	case key.Printable():
		f.text = append(f.text, []rune(key.Key)...)
	default:
		return false
	}
	ctx.Agent.RequestRender()
	return true
}

func (f *textFieldBehavior) KeyUp(ctx *ui.KeyContext) bool {
	if !f.active(&ctx.Context) {
		return false
	}
	switch ctx.Key.Key {
	case "Backspace", "Enter":
		return true
	}
	return ctx.Key.Printable()
}

func (f *textFieldBehavior) Copy(ctx *ui.Context) ui.ClipboardData {
	if !f.active(ctx) || len(f.text) == 0 {
		return nil
	}
	return ui.ClipboardText(string(f.text))
}

func (f *textFieldBehavior) Cut(ctx *ui.Context) ui.ClipboardData {
	data := f.Copy(ctx)
	if data != nil {
		f.text = f.text[:0]
		ctx.Agent.RequestRender()
	}
	return data
}

func (f *textFieldBehavior) Paste(ctx *ui.PasteContext) bool {
	text, ok := ctx.Data.(ui.ClipboardText)
	if !ok || !f.active(&ctx.Context) {
		return false
	}
	line, _, _ := strings.Cut(string(text), "\n")
	f.text = append(f.text, []rune(strings.TrimRight(line, "\r"))...)
	ctx.Agent.RequestRender()
	return true
}

func (f *textFieldBehavior) Render(ctx *ui.DrawContext) ui.RenderResult {
	ctx.Surface.FillRegion(ctx.Region, fieldColor)
	if f.focused {
		ctx.Surface.StrokeRegion(ctx.Region, 2, accentColor)
	} else {
		ctx.Surface.StrokeRegion(ctx.Region, 1, fieldBorder)
	}

	switch {
	case len(f.text) > 0 || f.focused:
		text := string(f.text)
		if f.focused {
			text += "_"
		}
		ctx.Surface.Text(text, textOrigin(ctx.Region), darkText)
	case f.Placeholder != "":
		ctx.Surface.Text(f.Placeholder, textOrigin(ctx.Region), placeholderColor)
	}
	return ui.RenderResult{Cursor: ui.CursorText}
}

func (f *textFieldBehavior) Cursor(*ui.Context) ui.Cursor { return ui.CursorText }
