// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// Buffer holds fully decoded audio: one sample slice per channel, normalized
// to [-1.0, 1.0], plus the sample rate and the bit depth of the source
// material. All channels have the same length (the frame count) for the
// lifetime of the buffer.
type Buffer struct {
	channels       [][]float32
	sampleRate     int
	sourceBitDepth int
}

// NewBuffer wraps per-channel sample data into a Buffer. The channel slices
// are used directly, not copied.
func NewBuffer(channels [][]float32, sampleRate, sourceBitDepth int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: got %d Hz", ErrInvalidSampleRate, sampleRate)
	}
	if sourceBitDepth < MinBitDepth || sourceBitDepth > MaxBitDepth {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBitDepth, sourceBitDepth)
	}
	for i := 1; i < len(channels); i++ {
		if len(channels[i]) != len(channels[0]) {
			return nil, fmt.Errorf("%w: channel 0 has %d frames, channel %d has %d",
				ErrChannelLengthMismatch, len(channels[0]), i, len(channels[i]))
		}
	}

	return &Buffer{
		channels:       channels,
		sampleRate:     sampleRate,
		sourceBitDepth: sourceBitDepth,
	}, nil
}

// FromSource drains src and materializes it into a Buffer, de-interleaving
// the stream into per-channel slices. A trailing partial frame, if the source
// ever produces one, is dropped.
func FromSource(src Source) (*Buffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("source reported %d channels", channels)
	}

	var interleaved []float32
	buf := make([]float32, 4096)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			interleaved = append(interleaved, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading source: %w", err)
		}
	}

	frames := len(interleaved) / channels
	data := make([][]float32, channels)
	for c := range data {
		data[c] = make([]float32, frames)
		for f := 0; f < frames; f++ {
			data[c][f] = interleaved[f*channels+c]
		}
	}

	return NewBuffer(data, src.SampleRate(), src.BitDepth())
}

// SampleRate of the buffer in Hz.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// SourceBitDepth is the bit depth the audio was decoded from.
func (b *Buffer) SourceBitDepth() int { return b.sourceBitDepth }

// Channels returns the channel count.
func (b *Buffer) Channels() int { return len(b.channels) }

// NumFrames returns the per-channel sample count.
func (b *Buffer) NumFrames() int {
	if len(b.channels) == 0 {
		return 0
	}
	return len(b.channels[0])
}

// Channel returns the sample data of channel c. The slice aliases the
// buffer's storage.
func (b *Buffer) Channel(c int) []float32 { return b.channels[c] }

// Interleaved flattens the buffer into frame-interleaved order
// (L R L R ... for stereo), the layout encoders and playback expect.
func (b *Buffer) Interleaved() []float32 {
	channels := len(b.channels)
	frames := b.NumFrames()

	out := make([]float32, frames*channels)
	for f := 0; f < frames; f++ {
		for c := 0; c < channels; c++ {
			out[f*channels+c] = b.channels[c][f]
		}
	}

	return out
}
