// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio decoding for crush input files.
//
// This package uses github.com/go-audio/aiff to decode AIFF files into an
// audio.Source of normalized float32 samples. Only 16-bit PCM AIFF is
// supported; AIFF is input-only, crush always writes WAV.
//
// # Usage
//
//	decoder := aiff.Decoder{}
//	file, _ := os.Open("audio.aiff")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// go-audio needs to seek, so non-seekable readers are buffered into memory
// before decoding.
package aiff
