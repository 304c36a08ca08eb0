package wav

import "errors"

var (
	ErrNotWavFile           = errors.New("not a WAV file")
	ErrUnsupportedWavLayout = errors.New("unsupported WAV layout")
	ErrUnsupportedBitDepth  = errors.New("only 16, 24 or 32-bit PCM supported")
	ErrNilBuffer            = errors.New("buffer must not be nil")
)
