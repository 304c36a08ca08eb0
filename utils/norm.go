// SPDX-License-Identifier: EPL-2.0

package utils

// NormFactor returns the divisor that maps a signed PCM integer of the given
// bit depth onto the normalized [-1, 1] float range (e.g. 32768 for 16-bit).
// Depths outside [1, 32] fall back to the 16-bit factor.
func NormFactor(bitDepth int) float32 {
	if bitDepth < 1 || bitDepth > 32 {
		bitDepth = 16
	}
	return float32(int64(1) << (bitDepth - 1))
}
