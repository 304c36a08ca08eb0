// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// This package is the only format crush can both read and write. It is built
// on github.com/go-audio/wav for chunk handling on both paths.
//
// # Supported Formats
//
// Decoding:
//   - PCM 16, 24 or 32-bit
//   - Mono, stereo or any higher channel count
//   - Any sample rate
//
// 8-bit WAV is rejected: the container stores those samples unsigned and
// go-audio passes them through raw, so they cannot be normalized as signed
// PCM.
//
// Encoding always produces PCM 16-bit at the buffer's current sample rate.
//
// # Decoding WAV Files
//
// Use the Decoder to read WAV files:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("audio.wav")
//	source, err := decoder.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	// Read samples
//	buf := make([]float32, 4096)
//	n, err := source.ReadSamples(buf)
//
// The decoder returns an audio.Source that provides samples as float32
// values in the range [-1.0, 1.0].
//
// # Writing WAV Files
//
// Encode writes a Buffer as a complete WAV file:
//
//	file, _ := os.Create("output.wav")
//	err := wav.Encode(file, buf)
//
// Because go-audio patches chunk sizes after the fact, the writer must
// support seeking.
//
// # Error Handling
//
// The package defines several error types:
//   - ErrNotWavFile: The input is not a valid WAV file
//   - ErrUnsupportedBitDepth: Only 16, 24 or 32-bit PCM is supported
//   - ErrUnsupportedWavLayout: Unsupported WAV file structure
//
// Example:
//
//	source, err := decoder.Decode(file)
//	if errors.Is(err, wav.ErrNotWavFile) {
//	    fmt.Println("Not a WAV file")
//	}
package wav
