package gesture

// Goodbye motion constants.
const (
	// WaveStep is the horizontal index-tip displacement, in normalized
	// units, that counts as one swing.
	WaveStep = 0.05
	// WaveSwings is the number of swings that makes a goodbye.
	WaveSwings = 2
)

// WaveTracker follows the index fingertip's x position across frames and
// counts swings wider than WaveStep.
//
// The swing count is cumulative for the tracker's lifetime and is never
// reset by Observe: once WaveSwings is reached, every later call returns
// true. Callers that want a fresh count must call Reset.
type WaveTracker struct {
	lastX  float64
	seen   bool
	swings int
}

// Observe records the fingertip's x position for the current frame and
// reports whether enough swings have been seen.
func (w *WaveTracker) Observe(x float64) bool {
	if w.seen {
		if x-w.lastX > WaveStep || w.lastX-x > WaveStep {
			w.swings++
		}
	}
	w.lastX = x
	w.seen = true
	return w.swings >= WaveSwings
}

// Swings returns the cumulative swing count.
func (w *WaveTracker) Swings() int {
	return w.swings
}

// Reset forgets the last position and the swing count.
func (w *WaveTracker) Reset() {
	*w = WaveTracker{}
}
