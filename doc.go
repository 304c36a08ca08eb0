// SPDX-License-Identifier: EPL-2.0

// Package crush degrades digital audio on purpose: it reduces the effective
// bit depth of a recording and optionally resamples it, producing a
// deliberately lo-fi "crushed" result.
//
// # Pipeline
//
// The processing order is fixed: decode, quantize, resample, encode. The
// core operates on a fully materialized buffer, not a stream.
//
//	// Decode an audio file
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	src, _ := decoder.Decode(file)
//
//	// Crush to 4 bits at 8kHz
//	out, err := crush.Crush(src, crush.Config{
//	    BitDepth:      4,
//	    SampleRate:    8000,
//	    Interpolation: audio.Linear,
//	})
//
//	// Write the result
//	outFile, _ := os.Create("crushed.wav")
//	wav.Encode(outFile, out)
//
// # Supported Formats
//
// The package decodes the following input formats:
//   - WAV (PCM 16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// Output is always PCM 16-bit WAV; the crushed bit depth lives in the sample
// values themselves, not in the container width.
//
// # What This Is Not
//
// There is no dithering, no noise shaping and no anti-aliasing filtering.
// Downsampling aliases audibly and quantizing to few bits steps audibly;
// that is the effect, not a defect. The building blocks live in the audio
// subpackage if you want to compose them differently.
package crush
