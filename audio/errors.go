// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidBitDepth       = errors.New("bit depth must be between 1 and 32")
	ErrInvalidSampleRate     = errors.New("sample rate must be positive")
	ErrUnknownInterpolation  = errors.New("unknown interpolation method")
	ErrChannelLengthMismatch = errors.New("all channels must have the same length")
)
