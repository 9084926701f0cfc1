package render

import (
	"sync"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/gesture"
)

// RecordingSurface is a test Surface that records every label it is asked
// to render. It can ask to quit after a fixed number of frames.
type RecordingSurface struct {
	labels    []gesture.Label
	quitAfter int
	err       error
	closed    bool
	mu        sync.Mutex
}

// NewRecordingSurface creates a RecordingSurface. A quitAfter of 0 never quits.
func NewRecordingSurface(quitAfter int) *RecordingSurface {
	return &RecordingSurface{quitAfter: quitAfter}
}

// SetError makes Render fail with err.
func (r *RecordingSurface) SetError(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Render records label. The frame is drawn on but not shown.
func (r *RecordingSurface) Render(frame *gocv.Mat, label gesture.Label) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	DrawLabel(frame, label)
	r.labels = append(r.labels, label)
	return nil
}

// QuitRequested returns true once quitAfter frames have been rendered.
func (r *RecordingSurface) QuitRequested() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.quitAfter > 0 && len(r.labels) >= r.quitAfter
}

// Close marks the surface closed.
func (r *RecordingSurface) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Labels returns a copy of the rendered labels in order.
func (r *RecordingSurface) Labels() []gesture.Label {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]gesture.Label, len(r.labels))
	copy(out, r.labels)
	return out
}

// Closed reports whether Close was called.
func (r *RecordingSurface) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
