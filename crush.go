// SPDX-License-Identifier: EPL-2.0

package crush

import (
	"fmt"

	"github.com/ik5/crush/audio"
)

// Defaults applied by DefaultConfig; they match a standard CD-quality
// target, i.e. no audible crush until the user asks for one.
const (
	DefaultBitDepth   = 16
	DefaultSampleRate = 44100
)

// Config is the immutable set of crush parameters. Validate it once at
// startup; nothing re-reads or changes it mid-run.
type Config struct {
	// BitDepth is the target quantization depth in [1, 32].
	BitDepth int
	// SampleRate is the target output rate in Hz.
	SampleRate int
	// Interpolation selects the resampling method.
	Interpolation audio.Interpolation
}

// DefaultConfig returns the configuration the CLI uses when no flags are
// given: 16-bit, 44.1kHz, nearest-neighbour.
func DefaultConfig() Config {
	return Config{
		BitDepth:      DefaultBitDepth,
		SampleRate:    DefaultSampleRate,
		Interpolation: audio.Nearest,
	}
}

// Validate rejects out-of-range parameters before any sample is processed.
func (c Config) Validate() error {
	if c.BitDepth < audio.MinBitDepth || c.BitDepth > audio.MaxBitDepth {
		return fmt.Errorf("%w: got %d", audio.ErrInvalidBitDepth, c.BitDepth)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: got %d Hz", audio.ErrInvalidSampleRate, c.SampleRate)
	}
	if c.Interpolation != audio.Nearest && c.Interpolation != audio.Linear {
		return fmt.Errorf("%w: %d", audio.ErrUnknownInterpolation, int(c.Interpolation))
	}
	return nil
}

// Process runs the crush pipeline over an already materialized buffer:
// quantize first, then resample. The order matters: crushing the original
// sample values and only then interpolating keeps the quantizer's staircase
// in the output, where the reverse would smooth it away. buf is quantized in
// place and must not be reused afterwards; the returned buffer is the
// caller's.
func Process(buf *audio.Buffer, cfg Config) (*audio.Buffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := audio.Quantize(buf, cfg.BitDepth); err != nil {
		return nil, err
	}

	out, err := audio.Resample(buf, cfg.SampleRate, cfg.Interpolation)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Crush decodes everything src has, then runs Process over it. This is the
// convenience entry point the CLI uses.
func Crush(src audio.Source, cfg Config) (*audio.Buffer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	buf, err := audio.FromSource(src)
	if err != nil {
		return nil, fmt.Errorf("materializing source: %w", err)
	}

	return Process(buf, cfg)
}
