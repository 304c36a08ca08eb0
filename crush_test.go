package crush

import (
	"errors"
	"testing"

	"github.com/ik5/crush/audio"
	"github.com/ik5/crush/internal/audiotest"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", cfg.BitDepth)
	}
	if cfg.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", cfg.SampleRate)
	}
	if cfg.Interpolation != audio.Nearest {
		t.Errorf("Interpolation = %v, want Nearest", cfg.Interpolation)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name: "valid",
			cfg:  Config{BitDepth: 8, SampleRate: 22050, Interpolation: audio.Linear},
		},
		{
			name:    "bit depth too low",
			cfg:     Config{BitDepth: 0, SampleRate: 44100, Interpolation: audio.Nearest},
			wantErr: audio.ErrInvalidBitDepth,
		},
		{
			name:    "bit depth too high",
			cfg:     Config{BitDepth: 33, SampleRate: 44100, Interpolation: audio.Nearest},
			wantErr: audio.ErrInvalidBitDepth,
		},
		{
			name:    "zero sample rate",
			cfg:     Config{BitDepth: 16, SampleRate: 0, Interpolation: audio.Nearest},
			wantErr: audio.ErrInvalidSampleRate,
		},
		{
			name:    "negative sample rate",
			cfg:     Config{BitDepth: 16, SampleRate: -8000, Interpolation: audio.Nearest},
			wantErr: audio.ErrInvalidSampleRate,
		},
		{
			name:    "unknown interpolation",
			cfg:     Config{BitDepth: 16, SampleRate: 44100, Interpolation: audio.Interpolation(7)},
			wantErr: audio.ErrUnknownInterpolation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCrush_EndToEnd(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 2, 44100, 440.0)

	out, err := Crush(src, Config{
		BitDepth:      4,
		SampleRate:    8000,
		Interpolation: audio.Linear,
	})
	if err != nil {
		t.Fatalf("Crush() error = %v", err)
	}

	if out.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", out.SampleRate())
	}
	if out.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", out.Channels())
	}
	if out.NumFrames() != 8000 {
		t.Errorf("NumFrames() = %d, want 8000", out.NumFrames())
	}

	for c := 0; c < out.Channels(); c++ {
		for i, s := range out.Channel(c) {
			if s < -1.0 || s > 1.0 {
				t.Fatalf("channel %d sample %d = %v, outside [-1, 1]", c, i, s)
			}
		}
	}
}

func TestCrush_InvalidConfigFailsFast(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSineSource(44100, 1, 100, 440.0)

	_, err := Crush(src, Config{BitDepth: 0, SampleRate: 44100, Interpolation: audio.Nearest})
	if !errors.Is(err, audio.ErrInvalidBitDepth) {
		t.Errorf("Crush() error = %v, want ErrInvalidBitDepth", err)
	}
}

func TestProcess_QuantizeBeforeResample(t *testing.T) {
	t.Parallel()

	// The pipeline crushes the original values and interpolates afterwards.
	// Doing it the other way round requantizes smoothed values and gives a
	// different signal; this pins the order down.
	// At 2 bits: quantize-first gives [0 1 0] then interpolates the
	// staircase (midpoints 0.5); resample-first interpolates [0.1 0.9 0.1]
	// and the midpoints then quantize to 1.
	samples := []float32{0.1, 0.9, 0.1}
	cfg := Config{BitDepth: 2, SampleRate: 88200, Interpolation: audio.Linear}

	pipeline, err := audio.NewBuffer([][]float32{append([]float32(nil), samples...)}, 44100, 16)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	got, err := Process(pipeline, cfg)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	// Reverse order by hand: resample first, then quantize.
	reversed, err := audio.NewBuffer([][]float32{append([]float32(nil), samples...)}, 44100, 16)
	if err != nil {
		t.Fatalf("NewBuffer() error = %v", err)
	}
	resampled, err := audio.Resample(reversed, 88200, audio.Linear)
	if err != nil {
		t.Fatalf("Resample() error = %v", err)
	}
	if err := audio.Quantize(resampled, 2); err != nil {
		t.Fatalf("Quantize() error = %v", err)
	}

	if got.NumFrames() != resampled.NumFrames() {
		t.Fatalf("frame counts differ: %d vs %d", got.NumFrames(), resampled.NumFrames())
	}

	differs := false
	for i := 0; i < got.NumFrames(); i++ {
		if got.Channel(0)[i] != resampled.Channel(0)[i] {
			differs = true
			break
		}
	}

	if !differs {
		t.Error("quantize-then-resample produced the same signal as resample-then-quantize")
	}
}

func TestCrush_EmptySource(t *testing.T) {
	t.Parallel()

	src := audiotest.NewSilentSource(44100, 1, 0)

	out, err := Crush(src, DefaultConfig())
	if err != nil {
		t.Fatalf("Crush() error = %v", err)
	}

	if out.NumFrames() != 0 {
		t.Errorf("NumFrames() = %d, want 0", out.NumFrames())
	}
}
