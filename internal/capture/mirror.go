package capture

import "gocv.io/x/gocv"

// Mirror flips frame around its vertical axis in place, so on-screen motion
// matches the user's own left and right.
func Mirror(frame *gocv.Mat) {
	if frame == nil || frame.Empty() {
		return
	}
	gocv.Flip(*frame, frame, 1)
}
