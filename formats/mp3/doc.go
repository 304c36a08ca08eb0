// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding for crush input files.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files into
// an audio.Source of normalized float32 samples. MP3 is input-only: crush
// always writes WAV.
//
// # Usage
//
//	decoder := mp3.Decoder{}
//	file, _ := os.Open("audio.mp3")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// go-mp3 always produces 16-bit stereo PCM, so the source reports two
// channels and a 16-bit source depth regardless of how the file was
// encoded.
package mp3
