package gesture

import (
	"math"

	"github.com/ayusman/mudra/internal/detector"
)

const (
	// ChinLine is the approximate chin height in normalized image
	// coordinates. A fingertip above it has a smaller Y.
	ChinLine = 0.6
	// TouchDistance is the per-axis distance under which two fingertips
	// are considered touching.
	TouchDistance = 0.1
)

// Classifier maps one frame's hands to a Label. It owns the goodbye motion
// state, so each session needs its own Classifier.
type Classifier struct {
	wave WaveTracker
}

// NewClassifier creates a Classifier with fresh motion state.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify returns the phrase shown by hands, or None.
//
// One hand is tested for good-morning, thank-you and goodbye in that order;
// two hands for how-are-you then nice-to-meet. Any other hand count yields
// None. The goodbye tracker only sees frames that reach it, so the order
// of the single-hand checks matters.
func (c *Classifier) Classify(hands []detector.HandLandmarks) Label {
	switch len(hands) {
	case 1:
		h := &hands[0]
		switch {
		case IsGoodMorning(h):
			return GoodMorning
		case IsThankYou(h):
			return ThankYou
		case c.wave.Observe(h.Points[detector.IndexTip].X):
			return Goodbye
		}
	case 2:
		a, b := &hands[0], &hands[1]
		switch {
		case IsHowAreYou(a, b):
			return HowAreYou
		case IsNiceToMeet(a, b):
			return NiceToMeet
		}
	}
	return None
}

// Wave exposes the goodbye motion state.
func (c *Classifier) Wave() *WaveTracker {
	return &c.wave
}

// IsGoodMorning reports whether the thumb tip is above the index tip.
func IsGoodMorning(h *detector.HandLandmarks) bool {
	return h.Points[detector.ThumbTip].Y < h.Points[detector.IndexTip].Y
}

// IsThankYou reports whether the index tip is raised above the chin line
// with the wrist below it.
func IsThankYou(h *detector.HandLandmarks) bool {
	tip := h.Points[detector.IndexTip]
	wrist := h.Points[detector.Wrist]
	return tip.Y < ChinLine && wrist.Y > tip.Y
}

// IsHowAreYou reports whether both thumb tips touch.
func IsHowAreYou(a, b *detector.HandLandmarks) bool {
	return touching(a.Points[detector.ThumbTip], b.Points[detector.ThumbTip])
}

// IsNiceToMeet reports whether both index tips touch.
func IsNiceToMeet(a, b *detector.HandLandmarks) bool {
	return touching(a.Points[detector.IndexTip], b.Points[detector.IndexTip])
}

func touching(p, q detector.Point3D) bool {
	return math.Abs(p.X-q.X) < TouchDistance && math.Abs(p.Y-q.Y) < TouchDistance
}
