// Package app runs the ASL recognition loop: capture, detect, classify,
// stabilize, render.
package app

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/render"
)

// State is the main loop's lifecycle state.
type State int

const (
	// StateRunning means frames are being processed.
	StateRunning State = iota
	// StateStopped means the loop has exited and resources are released.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Config holds configuration options for the application.
// Camera, Detector and Surface override the production implementations.
type Config struct {
	CameraID    int
	WindowTitle string

	Camera   capture.Camera
	Detector detector.Detector
	Surface  render.Surface
}

// DefaultConfig returns the production settings.
func DefaultConfig() Config {
	return Config{
		CameraID:    capture.DefaultDevice,
		WindowTitle: render.DefaultTitle,
	}
}

// App owns one recognition session and every resource it uses.
type App struct {
	config     Config
	id         string
	camera     capture.Camera
	detector   detector.Detector
	surface    render.Surface
	recognizer *gesture.Recognizer
	state      State
	frames     int
	log        zerolog.Logger
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.WindowTitle == "" {
		config.WindowTitle = render.DefaultTitle
	}

	id := uuid.NewString()
	a := &App{
		config:     config,
		id:         id,
		camera:     config.Camera,
		detector:   config.Detector,
		surface:    config.Surface,
		recognizer: gesture.NewRecognizer(),
		state:      StateStopped,
		log:        log.With().Str("session", id).Logger(),
	}

	if a.camera == nil {
		a.camera = capture.NewCamera(config.CameraID)
	}

	// Try MediaPipe first, fall back to mock detector
	if a.detector == nil {
		if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
			a.detector = mp
			a.log.Info().Msg("using MediaPipe hand detection")
		} else {
			a.log.Warn().Err(err).Msg("MediaPipe not available, using mock detector")
			a.detector = detector.NewMockDetector()
		}
	}

	return a
}

// ID returns the session identifier used in logs.
func (a *App) ID() string {
	return a.id
}

// State returns the loop state.
func (a *App) State() State {
	return a.state
}

// Frames returns how many frames have been processed.
func (a *App) Frames() int {
	return a.frames
}

// Recognizer returns the session's recognition state.
func (a *App) Recognizer() *gesture.Recognizer {
	return a.recognizer
}

// Camera returns the capture source.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	return a.detector
}

func (a *App) ensureSurface() render.Surface {
	if a.surface == nil {
		a.surface = render.NewWindow(a.config.WindowTitle)
	}
	return a.surface
}

// release closes everything the loop owns. It runs on every exit path.
func (a *App) release() {
	if err := a.camera.Close(); err != nil {
		a.log.Error().Err(err).Msg("error closing camera")
	}
	if a.surface != nil {
		if err := a.surface.Close(); err != nil {
			a.log.Error().Err(err).Msg("error closing display")
		}
	}
	if err := a.detector.Close(); err != nil {
		a.log.Error().Err(err).Msg("error closing detector")
	}

	a.state = StateStopped
	a.log.Info().
		Int("frames", a.frames).
		Str("confirmed", a.recognizer.Stabilizer().Confirmed().String()).
		Msg("recognition stopped")
}
