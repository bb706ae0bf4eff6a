package widget

import (
	"image/color"

	"github.com/OpticalFlyer/strata/region"
	"github.com/OpticalFlyer/strata/ui"
)

var _ ui.Component = (*Label)(nil)

// Label shows a line of text on an opaque box. An empty label draws
// nothing at all, letting whatever is behind it show through.
type Label struct {
	Region region.Region
	Text   string
	// Source, if set, is polled every update and replaces Text.
	Source     func() string
	Foreground color.Color
	Background color.Color
}

func NewLabel(r region.Region, text string) *Label {
	return &Label{
		Region:     r,
		Text:       text,
		Foreground: textColor,
		Background: color.RGBA{40, 40, 40, 255},
	}
}

func (l *Label) CreateBehaviors() []ui.Behavior {
	return []ui.Behavior{&labelBehavior{Label: l, text: l.Text}}
}

type labelBehavior struct {
	*Label
	text string
}

func (l *labelBehavior) Attach(c ui.ClaimSet) {
	logClaim("label", c.ClaimRenderSpace(l.Region, ui.TriggerRequest, ui.OpacityDynamicSolidOrNothing, ui.PhaseText))
	if l.Source != nil {
		c.MakeUpdateListener()
	}
}

func (l *labelBehavior) Update(ctx *ui.Context) {
	if text := l.Source(); text != l.text {
		l.text = text
		ctx.Agent.RequestRender()
	}
}

func (l *labelBehavior) Render(ctx *ui.DrawContext) ui.RenderResult {
	if l.text == "" {
		return ui.RenderResult{Drawn: []region.Region{}}
	}
	ctx.Surface.FillRegion(ctx.Region, l.Background)
	ctx.Surface.Text(l.text, textOrigin(ctx.Region), l.Foreground)
	return ui.RenderResult{}
}
