package gesture

import "github.com/ayusman/mudra/internal/detector"

// Result is the outcome of one frame.
type Result struct {
	// Detected is this frame's raw classification.
	Detected Label
	// Confirmed is the stabilized label to display.
	Confirmed Label
	// Changed is true when this frame changed the confirmed label.
	Changed bool
}

// Recognizer is one recognition session. It owns every piece of state that
// carries across frames, so independent sessions never interfere.
type Recognizer struct {
	classifier *Classifier
	stabilizer *Stabilizer
}

// NewRecognizer creates a session with fresh classifier and stabilizer state.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		classifier: NewClassifier(),
		stabilizer: NewStabilizer(DefaultWindow, DefaultQuorum),
	}
}

// Observe classifies one frame's hands and feeds the result to the stabilizer.
func (r *Recognizer) Observe(hands []detector.HandLandmarks) Result {
	previous := r.stabilizer.Confirmed()
	detected := r.classifier.Classify(hands)
	confirmed := r.stabilizer.Push(detected)

	return Result{
		Detected:  detected,
		Confirmed: confirmed,
		Changed:   confirmed != previous,
	}
}

// Classifier returns the session's classifier.
func (r *Recognizer) Classifier() *Classifier {
	return r.classifier
}

// Stabilizer returns the session's stabilizer.
func (r *Recognizer) Stabilizer() *Stabilizer {
	return r.stabilizer
}
