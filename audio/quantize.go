// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"math"
)

// Bit depth bounds accepted by Quantize.
const (
	MinBitDepth = 1
	MaxBitDepth = 32
)

// Quantize replaces every sample in buf, in place, with the nearest value
// representable by a signed bitDepth-bit integer, re-expressed in the
// normalized [-1.0, 1.0] range.
//
// The quantizer is symmetric: levels = 2^(bitDepth-1) - 1, so the negative
// full-scale level mirrors the positive one. Rounding is half-away-from-zero
// (math.Round), which keeps the output reproducible across platforms.
// Results are clipped to [-1.0, 1.0] so inputs at or beyond full scale never
// escape the normalized range.
//
// bitDepth 32 leaves audible content untouched (the step is below float32
// precision); bitDepth 1 collapses every sample to -1 or +1, a hard
// square-wave crush. Both are intended uses, not errors.
func Quantize(buf *Buffer, bitDepth int) error {
	if bitDepth < MinBitDepth || bitDepth > MaxBitDepth {
		return fmt.Errorf("%w: got %d", ErrInvalidBitDepth, bitDepth)
	}

	if bitDepth == 1 {
		// levels would be zero; one bit leaves only the sign.
		for _, ch := range buf.channels {
			for i, x := range ch {
				if x < 0 {
					ch[i] = -1.0
				} else {
					ch[i] = 1.0
				}
			}
		}
		return nil
	}

	levels := float64(int64(1)<<(bitDepth-1)) - 1

	for _, ch := range buf.channels {
		for i, x := range ch {
			q := math.Round(float64(x)*levels) / levels
			if q > 1.0 {
				q = 1.0
			} else if q < -1.0 {
				q = -1.0
			}
			ch[i] = float32(q)
		}
	}

	return nil
}
