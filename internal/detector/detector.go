package detector

import "gocv.io/x/gocv"

// Detector is the perception oracle: it turns a color frame into hand landmarks.
type Detector interface {
	// Detect analyzes a video frame and returns detected hand landmarks.
	// Returns an empty slice if no hands are detected.
	Detect(frame *gocv.Mat) ([]HandLandmarks, error)

	// Close releases any resources held by the detector.
	Close() error
}

// Config holds configuration options for hand detection.
type Config struct {
	// MaxHands is the maximum number of hands to detect.
	MaxHands int

	// MinConfidence is the minimum detection confidence threshold (0.0-1.0).
	MinConfidence float64

	// MinTrackingConf is the minimum tracking confidence threshold (0.0-1.0).
	MinTrackingConf float64
}

// Fixed perception settings. They are not exposed to the user.
const (
	DefaultMaxHands        = 2
	DefaultMinConfidence   = 0.7
	DefaultMinTrackingConf = 0.7
)

// DefaultConfig returns the settings the recognizer was tuned against.
func DefaultConfig() Config {
	return Config{
		MaxHands:        DefaultMaxHands,
		MinConfidence:   DefaultMinConfidence,
		MinTrackingConf: DefaultMinTrackingConf,
	}
}
