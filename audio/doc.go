// SPDX-License-Identifier: EPL-2.0

// Package audio provides the core sample-domain primitives of crush.
//
// This package contains the building blocks the rest of the module is glued
// from:
//   - Source interface for decoded audio input
//   - Buffer holding fully materialized, de-interleaved samples
//   - Quantize for bit-depth reduction
//   - Resample for sample-rate conversion
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the boundary between format decoders and the
// transforms:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    BitDepth() int
//	    ReadSamples(dst []float32) (int, error)
//	    Close() error
//	}
//
// All format decoders (see the formats subpackages) return a Source.
// FromSource drains one into a Buffer, which is what the transforms operate
// on.
//
// # Sample Format
//
// Audio samples are represented as float32 in the range [-1.0, 1.0]:
//   - 0.0 represents silence
//   - 1.0 represents maximum positive amplitude
//   - -1.0 represents maximum negative amplitude
//
// Decoders normalize whatever integer width the container uses into this
// range, and the WAV encoder converts back on the way out.
//
// # Quantization
//
// Quantize crushes a buffer to a target bit depth in place:
//
//	buf, _ := audio.FromSource(src)
//	err := audio.Quantize(buf, 8)
//
// The quantizer is symmetric and deterministic; see the function
// documentation for the exact rounding and clipping rules.
//
// # Resampling
//
// Resample produces a new buffer at a different rate:
//
//	out, err := audio.Resample(buf, 8000, audio.Linear)
//
// Two interpolation methods exist, Nearest and Linear. Deliberately, no
// anti-aliasing filter is applied: the aliasing a naive downsample
// introduces is part of the intended lo-fi character. Do not add filtering
// here.
//
// # Error Handling
//
// Invalid configuration (bit depth outside [1, 32], non-positive sample
// rate, unknown interpolation) is rejected with a sentinel error before any
// sample is touched:
//
//	if errors.Is(err, audio.ErrInvalidBitDepth) {
//	    // report and abort
//	}
//
// There are no data-dependent errors: every in-range sample is handled by
// defined math with deterministic clipping.
package audio
