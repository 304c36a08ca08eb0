// SPDX-License-Identifier: EPL-2.0

// Package player plays a crushed buffer on the default audio device.
package player

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/crush/audio"
	"github.com/ik5/crush/utils"
)

// Play converts buf to 16-bit PCM, hands it to the system mixer via oto and
// blocks until playback finishes. It owns the audio context for the call's
// duration; one call at a time.
func Play(buf *audio.Buffer) error {
	if buf.NumFrames() == 0 {
		return nil
	}

	op := &oto.NewContextOptions{
		SampleRate:   buf.SampleRate(),
		ChannelCount: buf.Channels(),
		Format:       oto.FormatSignedInt16LE,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return fmt.Errorf("creating audio context: %w", err)
	}

	<-readyChan

	// Interleave and convert to the little-endian int16 stream oto expects.
	interleaved := buf.Interleaved()
	pcm := make([]byte, len(interleaved)*2)
	for i, s := range interleaved {
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(utils.Float32ToInt16(s)))
	}

	p := ctx.NewPlayer(bytes.NewReader(pcm))
	p.Play()

	for p.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}

	if err := p.Close(); err != nil {
		return fmt.Errorf("closing player: %w", err)
	}

	return nil
}
