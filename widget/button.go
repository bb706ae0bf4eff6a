package widget

import (
	"image/color"

	"github.com/OpticalFlyer/strata/region"
	"github.com/OpticalFlyer/strata/ui"
)

var _ ui.Component = (*Button)(nil)

var (
	buttonPressed = color.RGBA{100, 100, 100, 255}
	buttonHovered = color.RGBA{180, 180, 180, 255}
	buttonNormal  = color.RGBA{150, 150, 150, 255}
)

// Button is a clickable box with a caption.
type Button struct {
	Region  region.Region
	Text    string
	OnClick func(agent *ui.Agent)
}

func NewButton(r region.Region, text string, onClick func(agent *ui.Agent)) *Button {
	return &Button{Region: r, Text: text, OnClick: onClick}
}

func (b *Button) CreateBehaviors() []ui.Behavior {
	return []ui.Behavior{&buttonBehavior{Button: b}}
}

type buttonBehavior struct {
	*Button

	isHovered bool
	// isPressed stays set for one frame after a click so it can be seen.
	isPressed  bool
	pressShown bool
}

func (b *buttonBehavior) Attach(c ui.ClaimSet) {
	logClaim("button "+b.Text, c.ClaimRenderSpace(b.Region, ui.TriggerMouseInOut, ui.OpacitySolid, ui.PhaseBase))
	logClaim("button "+b.Text, c.ClaimMouseClickSpace(b.Region))
	logClaim("button "+b.Text, c.ClaimMouseInOutSpace(b.Region))
	c.MakeUpdateListener()
}

func (b *buttonBehavior) MouseMove(ctx *ui.MoveContext) {
	b.isHovered = b.Region.ContainsPosition(ctx.To)
}

func (b *buttonBehavior) MouseClickInside(ctx *ui.ClickContext) {
	if ctx.Click.Button != ui.ButtonLeft {
		return
	}
	b.isPressed = true
	b.pressShown = false
	ctx.Agent.RequestRender()
	if b.OnClick != nil {
		b.OnClick(ctx.Agent)
	}
}

func (b *buttonBehavior) Update(ctx *ui.Context) {
	if b.isPressed && b.pressShown {
		b.isPressed = false
		ctx.Agent.RequestRender()
	}
}

func (b *buttonBehavior) Render(ctx *ui.DrawContext) ui.RenderResult {
	var bgColor color.Color
	switch {
	case b.isPressed:
		bgColor = buttonPressed
		b.pressShown = true
	case b.isHovered:
		bgColor = buttonHovered
	default:
		bgColor = buttonNormal
	}

	ctx.Surface.FillRegion(ctx.Region, bgColor)
	ctx.Surface.StrokeRegion(ctx.Region, 1, borderColor)
	ctx.Surface.Text(b.Text, textOrigin(ctx.Region), darkText)
	return ui.RenderResult{Cursor: ui.CursorPointer}
}

func (b *buttonBehavior) Cursor(*ui.Context) ui.Cursor { return ui.CursorPointer }
