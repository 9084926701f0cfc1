package app

import (
	"context"
	"fmt"

	"gocv.io/x/gocv"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/gesture"
)

// Run processes frames until the source runs dry, the user quits or ctx is
// cancelled. Running out of frames is a normal stop and returns nil; only
// detector and display failures are returned.
//
// Loop:
// 1. Read a frame (failure ends the session)
// 2. Mirror it
// 3. Detect hands, classify, stabilize
// 4. Render the confirmed phrase
// 5. Poll for the quit key
func (a *App) Run(ctx context.Context) error {
	a.state = StateRunning
	defer a.release()

	if err := a.camera.Open(); err != nil {
		a.log.Warn().Err(err).Int("camera", a.config.CameraID).Msg("camera unavailable")
		return nil
	}

	surface := a.ensureSurface()
	a.log.Info().Int("camera", a.config.CameraID).Msg("recognition started")

	for a.state == StateRunning {
		if err := ctx.Err(); err != nil {
			a.stop("interrupted", err)
			continue
		}

		frame, err := a.camera.ReadFrame()
		if err != nil {
			a.stop("end of stream", err)
			continue
		}

		_, err = a.Step(frame)
		frame.Close()
		if err != nil {
			return err
		}

		if surface.QuitRequested() {
			a.stop("quit requested", nil)
		}
	}

	return nil
}

// Step runs one acquired frame through the pipeline: mirror, detect,
// recognize, render. The caller keeps ownership of frame.
func (a *App) Step(frame *gocv.Mat) (gesture.Result, error) {
	capture.Mirror(frame)

	hands, err := a.detector.Detect(frame)
	if err != nil {
		return gesture.Result{}, fmt.Errorf("detect hands: %w", err)
	}

	res := a.recognizer.Observe(hands)
	a.frames++

	a.log.Debug().
		Int("frame", a.frames).
		Int("hands", len(hands)).
		Str("detected", res.Detected.String()).
		Msg("frame processed")

	if res.Changed {
		a.log.Info().
			Str("phrase", string(res.Confirmed)).
			Int("frame", a.frames).
			Msg("phrase confirmed")
	}

	if err := a.ensureSurface().Render(frame, res.Confirmed); err != nil {
		return res, fmt.Errorf("render frame: %w", err)
	}

	return res, nil
}

// stop moves the loop to StateStopped.
func (a *App) stop(reason string, err error) {
	a.state = StateStopped
	a.log.Debug().Err(err).Str("reason", reason).Msg("stopping recognition")
}
