// Package widget provides ready-made components for the ui engine.
package widget

import (
	"image/color"
	"log"

	"github.com/OpticalFlyer/strata/region"
)

// textPadding separates text from the edges of its box, in viewport units.
const textPadding = 0.015

// lineHeight is the vertical advance between text lines, in viewport units.
const lineHeight = 0.06

var (
	borderColor = color.Black
	textColor   = color.White
	darkText    = color.RGBA{20, 20, 20, 255}
	accentColor = color.RGBA{33, 150, 243, 255}
)

// logClaim reports a claim that could not be made. The behavior stays
// attached without it.
func logClaim(owner string, err error) {
	if err != nil {
		log.Printf("widget: %s: %v", owner, err)
	}
}

// textOrigin is where the first line of text inside r starts.
func textOrigin(r region.Region) region.Point {
	return region.Point{X: r.MinX + textPadding, Y: r.MaxY - textPadding}
}

// lineOrigin is where line i of text inside r starts.
func lineOrigin(r region.Region, i int) region.Point {
	p := textOrigin(r)
	p.Y -= float32(i) * lineHeight
	return p
}
