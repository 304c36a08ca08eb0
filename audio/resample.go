// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
	"strings"
)

// Interpolation selects how Resample estimates values between input samples.
// The set is closed: Nearest snaps to the closest input sample, Linear blends
// the two neighbors.
type Interpolation int

const (
	Nearest Interpolation = iota
	Linear
)

func (m Interpolation) String() string {
	switch m {
	case Nearest:
		return "nearest"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(m))
	}
}

// ParseInterpolation maps a user-supplied name (case-insensitive) to an
// Interpolation value.
func ParseInterpolation(s string) (Interpolation, error) {
	switch strings.ToLower(s) {
	case "nearest":
		return Nearest, nil
	case "linear":
		return Linear, nil
	default:
		return Nearest, fmt.Errorf("%w: %q", ErrUnknownInterpolation, s)
	}
}

// Resample converts buf to targetRate and returns the result as a new
// Buffer; buf itself is left untouched. Channels are resampled independently
// and identically.
//
// The output frame count is round(frames * targetRate / sourceRate). For
// output index i the fractional source position is p = i * sourceRate /
// targetRate; Nearest picks the sample at round-half-up of p (clamped to the
// valid range), Linear blends floor(p) and its successor by the fractional
// part, holding the last sample past the end instead of extrapolating.
//
// No anti-aliasing filter is applied in either direction. Downsampling
// aliases audibly, which is the crush aesthetic this package exists for.
// Resampling at the source rate is an exact identity for both methods.
func Resample(buf *Buffer, targetRate int, method Interpolation) (*Buffer, error) {
	if targetRate <= 0 {
		return nil, fmt.Errorf("%w: got %d Hz", ErrInvalidSampleRate, targetRate)
	}
	if method != Nearest && method != Linear {
		return nil, fmt.Errorf("%w: %d", ErrUnknownInterpolation, int(method))
	}

	srcRate := buf.sampleRate
	frames := buf.NumFrames()
	outFrames := int(math.Round(float64(frames) * float64(targetRate) / float64(srcRate)))

	out := make([][]float32, len(buf.channels))
	for c, ch := range buf.channels {
		out[c] = resampleChannel(ch, outFrames, srcRate, targetRate, method)
	}

	return &Buffer{
		channels:       out,
		sampleRate:     targetRate,
		sourceBitDepth: buf.sourceBitDepth,
	}, nil
}

func resampleChannel(src []float32, outFrames, srcRate, dstRate int, method Interpolation) []float32 {
	dst := make([]float32, outFrames)
	if len(src) == 0 {
		return dst
	}

	step := float64(srcRate) / float64(dstRate)
	last := len(src) - 1

	for i := 0; i < outFrames; i++ {
		p := float64(i) * step

		switch method {
		case Nearest:
			idx := int(math.Floor(p + 0.5))
			if idx > last {
				idx = last
			}
			dst[i] = src[idx]
		case Linear:
			k := int(math.Floor(p))
			if k > last {
				k = last
			}
			if k+1 > last {
				// Hold the last known sample past the end.
				dst[i] = src[k]
				continue
			}
			f := float32(p - float64(k))
			dst[i] = src[k]*(1-f) + src[k+1]*f
		}
	}

	return dst
}
