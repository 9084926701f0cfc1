package detector

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxHands != 2 {
		t.Errorf("MaxHands = %d, want 2", cfg.MaxHands)
	}
	if cfg.MinConfidence != 0.7 {
		t.Errorf("MinConfidence = %f, want 0.7", cfg.MinConfidence)
	}
	if cfg.MinTrackingConf != 0.7 {
		t.Errorf("MinTrackingConf = %f, want 0.7", cfg.MinTrackingConf)
	}
}

func TestMockDetector(t *testing.T) {
	t.Run("returns empty hands by default", func(t *testing.T) {
		mock := NewMockDetector()

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if hands != nil {
			t.Errorf("expected nil hands, got %v", hands)
		}
	})

	t.Run("returns configured hands", func(t *testing.T) {
		mock := NewMockDetector()

		mock.SetHands([]HandLandmarks{
			ThumbsUpLandmarks(),
			OpenPalmLandmarks(),
		})

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(hands) != 2 {
			t.Errorf("expected 2 hands, got %d", len(hands))
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		mock := NewMockDetector()

		expectedErr := errors.New("detection failed")
		mock.SetError(expectedErr)

		hands, err := mock.Detect(nil)

		if err != expectedErr {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if hands != nil {
			t.Errorf("expected nil hands when error is set, got %v", hands)
		}
	})

	t.Run("Close marks closed", func(t *testing.T) {
		mock := NewMockDetector()

		if err := mock.Close(); err != nil {
			t.Errorf("expected Close to return nil, got %v", err)
		}
		if !mock.Closed() {
			t.Error("expected Closed() to be true after Close")
		}
	})

	t.Run("implements Detector interface", func(t *testing.T) {
		var _ Detector = (*MockDetector)(nil)
		var _ Detector = (*ScriptedDetector)(nil)
		var _ Detector = (*MediaPipeDetector)(nil)
	})
}

func TestScriptedDetector(t *testing.T) {
	one := []HandLandmarks{ThumbsUpLandmarks()}
	two := []HandLandmarks{ThumbsUpLandmarks(), OpenPalmLandmarks()}

	d := NewScriptedDetector(one, nil, two)

	wantCounts := []int{1, 0, 2, 0, 0}
	for i, want := range wantCounts {
		hands, err := d.Detect(nil)
		if err != nil {
			t.Fatalf("call %d: unexpected error: %v", i, err)
		}
		if len(hands) != want {
			t.Errorf("call %d: got %d hands, want %d", i, len(hands), want)
		}
	}

	if d.Calls() != len(wantCounts) {
		t.Errorf("Calls() = %d, want %d", d.Calls(), len(wantCounts))
	}

	d.Close()
	if !d.Closed() {
		t.Error("expected Closed() to be true after Close")
	}
}

func TestPresetLandmarks(t *testing.T) {
	t.Run("thumbs up has thumb above index tip", func(t *testing.T) {
		h := ThumbsUpLandmarks()
		if h.Points[ThumbTip].Y >= h.Points[IndexTip].Y {
			t.Error("thumb tip should be above index tip (lower Y value)")
		}
	})

	t.Run("open palm has index above chin and wrist below it", func(t *testing.T) {
		h := OpenPalmLandmarks()
		if h.Points[IndexTip].Y >= 0.6 {
			t.Errorf("index tip Y = %f, want < 0.6", h.Points[IndexTip].Y)
		}
		if h.Points[Wrist].Y <= h.Points[IndexTip].Y {
			t.Error("wrist should be below index tip")
		}
		if h.Points[ThumbTip].Y < h.Points[IndexTip].Y {
			t.Error("thumb tip should not be above index tip")
		}
	})

	t.Run("low point puts index tip at x below the chin line", func(t *testing.T) {
		for _, x := range []float64{0.05, 0.3, 0.8} {
			h := LowPointLandmarks(x)
			if h.Points[IndexTip].X != x {
				t.Errorf("index tip X = %f, want %f", h.Points[IndexTip].X, x)
			}
			if h.Points[IndexTip].Y < 0.6 {
				t.Errorf("index tip Y = %f, want >= 0.6", h.Points[IndexTip].Y)
			}
			if h.Points[ThumbTip].Y < h.Points[IndexTip].Y {
				t.Error("thumb tip should be below index tip")
			}
		}
	})
}

func TestDecodeResponse(t *testing.T) {
	point := `{"x":0.5,"y":0.5,"z":0,"visibility":0.9}`
	points := strings.TrimSuffix(strings.Repeat(point+",", NumLandmarks), ",")

	tests := []struct {
		name      string
		line      string
		wantHands int
		wantErr   bool
	}{
		{
			name:      "no hands",
			line:      `{"hands":[]}` + "\n",
			wantHands: 0,
		},
		{
			name:      "one hand",
			line:      `{"hands":[{"points":[` + points + `],"handedness":"Left","score":0.98}]}` + "\n",
			wantHands: 1,
		},
		{
			name:    "short landmark list",
			line:    `{"hands":[{"points":[` + point + `],"handedness":"Left","score":0.98}]}`,
			wantErr: true,
		},
		{
			name:    "service error",
			line:    `{"hands":[],"error":"decode failed"}`,
			wantErr: true,
		},
		{
			name:    "malformed json",
			line:    `{"hands":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hands, err := decodeResponse([]byte(tt.line))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(hands) != tt.wantHands {
				t.Fatalf("got %d hands, want %d", len(hands), tt.wantHands)
			}
			if tt.wantHands > 0 {
				h := hands[0]
				if h.Handedness != "Left" || h.Score != 0.98 {
					t.Errorf("got handedness %q score %f", h.Handedness, h.Score)
				}
				if h.Points[PinkyTip].Visibility != 0.9 {
					t.Errorf("visibility = %f, want 0.9", h.Points[PinkyTip].Visibility)
				}
			}
		})
	}
}

func TestWriteFrame(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte{0xff, 0xd8, 0x01, 0x02, 0xff, 0xd9}

	if err := writeFrame(&buf, payload); err != nil {
		t.Fatalf("writeFrame() error = %v", err)
	}

	out := buf.Bytes()
	if len(out) != 4+len(payload) {
		t.Fatalf("wrote %d bytes, want %d", len(out), 4+len(payload))
	}
	if n := binary.BigEndian.Uint32(out[:4]); n != uint32(len(payload)) {
		t.Errorf("length prefix = %d, want %d", n, len(payload))
	}
	if !bytes.Equal(out[4:], payload) {
		t.Error("payload was not written verbatim")
	}
}

func TestMediaPipeDetector_ServiceArgs(t *testing.T) {
	d := &MediaPipeDetector{config: DefaultConfig(), scriptPath: "/opt/mudra/scripts/" + ServiceScript}

	got := strings.Join(d.serviceArgs(), " ")
	want := "/opt/mudra/scripts/mediapipe_service.py --max-hands 2 --min-detection-confidence 0.7 --min-tracking-confidence 0.7"
	if got != want {
		t.Errorf("serviceArgs() = %q, want %q", got, want)
	}
}

func TestMediaPipeDetector_CloseNotStarted(t *testing.T) {
	d := &MediaPipeDetector{config: DefaultConfig()}

	if err := d.Close(); err != nil {
		t.Errorf("Close() on idle detector should return nil, got %v", err)
	}
}
