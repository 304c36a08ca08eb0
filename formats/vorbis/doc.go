// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding for crush input files.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis
// streams into an audio.Source of normalized float32 samples. Vorbis is
// input-only: crush always writes WAV.
//
// # Usage
//
//	decoder := vorbis.Decoder{}
//	file, _ := os.Open("audio.ogg")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// Vorbis streams are float-coded, so there is no integer width to report;
// the source exposes the customary nominal depth of 16 bits.
package vorbis
