package widget

import (
	"image/color"

	"github.com/OpticalFlyer/strata/region"
	"github.com/OpticalFlyer/strata/ui"
)

var _ ui.Component = (*Popup)(nil)

var popupColor = color.RGBA{245, 245, 245, 255}

// Popup is a modal message box. While it is open it swallows every key and
// wheel event. A click outside of it, Escape or Enter closes it.
type Popup struct {
	Region  region.Region
	Title   string
	Lines   []string
	OnClose func(agent *ui.Agent)
}

func NewPopup(r region.Region, title string, lines ...string) *Popup {
	return &Popup{Region: r, Title: title, Lines: lines}
}

func (p *Popup) CreateBehaviors() []ui.Behavior {
	return []ui.Behavior{&popupBehavior{Popup: p}}
}

// modalPriority puts a popup ahead of every other global listener.
const modalPriority = 1000

type popupBehavior struct {
	*Popup
}

func (p *popupBehavior) Attach(c ui.ClaimSet) {
	logClaim("popup "+p.Title, c.ClaimRenderSpace(p.Region, ui.TriggerRequest, ui.OpacitySolid, ui.PhaseOverlay))
	c.MakeMouseClickListener()
	c.MakeKeyListener(modalPriority)
	c.MakeMouseScrollListener(modalPriority)
}

func (p *popupBehavior) close(agent *ui.Agent) {
	agent.RemoveThisComponent()
	if p.OnClose != nil {
		p.OnClose(agent)
	}
}

func (p *popupBehavior) MouseClickAnywhere(ctx *ui.ClickContext) {
	if !p.Region.ContainsPosition(ctx.Mouse) {
		p.close(ctx.Agent)
	}
}

func (p *popupBehavior) KeyDown(ctx *ui.KeyContext) bool {
	switch ctx.Key.Key {
	case "Escape", "Enter":
		p.close(ctx.Agent)
	}
	return true
}

func (p *popupBehavior) KeyUp(*ui.KeyContext) bool { return true }

func (p *popupBehavior) MouseScroll(*ui.ScrollContext) bool { return true }

func (p *popupBehavior) Render(ctx *ui.DrawContext) ui.RenderResult {
	ctx.Surface.FillRegion(ctx.Region, popupColor)
	ctx.Surface.StrokeRegion(ctx.Region, 2, accentColor)
	ctx.Surface.Text(p.Title, lineOrigin(ctx.Region, 0), accentColor)
	for i, line := range p.Lines {
		ctx.Surface.Text(line, lineOrigin(ctx.Region, i+2), darkText)
	}
	return ui.RenderResult{Cursor: ui.CursorDefault}
}
