package render

import (
	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/gesture"
)

// Surface shows annotated frames to the user and reports when they want out.
type Surface interface {
	// Render draws label on frame and displays it.
	Render(frame *gocv.Mat, label gesture.Label) error
	// QuitRequested polls for the quit input.
	QuitRequested() bool
	Close() error
}

// Window settings.
const (
	DefaultTitle = "ASL Recognition"
	QuitKey      = 'q'
	// pollDelay is the WaitKey delay in milliseconds.
	pollDelay = 1
)

// Window is a Surface backed by a HighGUI window.
type Window struct {
	win *gocv.Window
}

// NewWindow opens a titled window.
func NewWindow(title string) *Window {
	if title == "" {
		title = DefaultTitle
	}
	return &Window{win: gocv.NewWindow(title)}
}

// Render draws label on frame and shows it in the window.
func (w *Window) Render(frame *gocv.Mat, label gesture.Label) error {
	DrawLabel(frame, label)
	w.win.IMShow(*frame)
	return nil
}

// QuitRequested waits briefly for a key press and reports whether it was QuitKey.
// The wait also lets HighGUI process its event queue.
func (w *Window) QuitRequested() bool {
	return w.win.WaitKey(pollDelay)&0xFF == QuitKey
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.win.Close()
}
