// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/crush/audio"
	"github.com/ik5/crush/utils"
)

// Encode serializes buf as a 16-bit PCM WAV at the buffer's current sample
// rate. The container width is fixed at 16 bits regardless of how deeply the
// samples were crushed; the crush already happened in the normalized domain,
// this is just the wire format.
//
// go-audio needs to seek back and patch chunk sizes, so w must be an
// io.WriteSeeker (an *os.File qualifies).
func Encode(w io.WriteSeeker, buf *audio.Buffer) error {
	if buf == nil {
		return ErrNilBuffer
	}

	const bitDepth = 16

	enc := gowav.NewEncoder(w, buf.SampleRate(), bitDepth, buf.Channels(), 1)

	interleaved := buf.Interleaved()
	data := make([]int, len(interleaved))
	for i, s := range interleaved {
		data[i] = int(utils.Float32ToInt16(s))
	}

	intBuf := &goaudio.IntBuffer{
		Data: data,
		Format: &goaudio.Format{
			NumChannels: buf.Channels(),
			SampleRate:  buf.SampleRate(),
		},
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(intBuf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}

	// Close patches the RIFF and data chunk sizes.
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
