// Package render draws the confirmed phrase onto frames and shows them.
package render

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/gesture"
)

// Text style for the confirmed phrase.
var (
	TextOrigin    = image.Pt(50, 50)
	TextColor     = color.RGBA{R: 0, G: 0, B: 0, A: 0}
	TextFont      = gocv.FontHersheySimplex
	TextScale     = 1.0
	TextThickness = 2
)

// DrawLabel writes label onto frame. Nothing is drawn for gesture.None.
func DrawLabel(frame *gocv.Mat, label gesture.Label) {
	if frame == nil || label.IsNone() {
		return
	}
	gocv.PutTextWithParams(frame, string(label), TextOrigin, TextFont, TextScale,
		TextColor, TextThickness, gocv.LineAA, false)
}
