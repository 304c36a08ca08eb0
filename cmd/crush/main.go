// SPDX-License-Identifier: EPL-2.0

// Command crush reduces the bit depth and sample rate of an audio file,
// writing the result as a 16-bit PCM WAV and optionally playing it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ik5/crush"
	"github.com/ik5/crush/audio"
	"github.com/ik5/crush/formats/aiff"
	"github.com/ik5/crush/formats/mp3"
	"github.com/ik5/crush/formats/vorbis"
	"github.com/ik5/crush/formats/wav"
	"github.com/ik5/crush/internal/logger"
	"github.com/ik5/crush/internal/player"
)

var (
	input         = flag.String("input", "", "Input file to crush (wav, mp3, ogg, aiff)")
	output        = flag.String("output", "", "Output file for the crushed audio. Supported formats: WAV")
	play          = flag.Bool("play", false, "Play the crushed sound on the default audio device")
	bitDepth      = flag.Int("bit-depth", crush.DefaultBitDepth, "Target bit depth, between 1 and 32")
	sampleRate    = flag.Int("sample-rate", crush.DefaultSampleRate, "Target sample rate in Hz")
	interpolation = flag.String("interpolation", "nearest", "Interpolation method for resampling: nearest or linear")
	logLevel      = flag.String("log-level", "info", "Log level: debug, info, warn or error")
)

func main() {
	flag.Parse()
	logger.Init(*logLevel)

	if err := run(); err != nil {
		log.Error().Err(err).Msg("crush failed")
		os.Exit(1)
	}
}

func run() error {
	if *input == "" {
		return errors.New("-input is required")
	}
	if *output == "" && !*play {
		return errors.New("either -output or -play must be specified")
	}
	if *output != "" && !strings.EqualFold(filepath.Ext(*output), ".wav") {
		return fmt.Errorf("unsupported output format %q", filepath.Ext(*output))
	}

	method, err := audio.ParseInterpolation(*interpolation)
	if err != nil {
		return err
	}

	cfg := crush.Config{
		BitDepth:      *bitDepth,
		SampleRate:    *sampleRate,
		Interpolation: method,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(*input), "."))
	dec, ok := reg.Get(ext)
	if !ok {
		return fmt.Errorf("unsupported input format %q", ext)
	}

	inFile, err := os.Open(*input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer inFile.Close()

	src, err := dec.Decode(inFile)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", *input, err)
	}
	defer src.Close()

	log.Debug().
		Int("sample_rate", src.SampleRate()).
		Int("channels", src.Channels()).
		Int("bit_depth", src.BitDepth()).
		Msg("decoded input")

	if crushIsNoOp(cfg, src.BitDepth(), src.SampleRate()) {
		log.Warn().Msg("neither bit depth nor sample rate are being crushed")
	}

	out, err := crush.Crush(src, cfg)
	if err != nil {
		return err
	}

	if *output != "" {
		if err := writeWAV(*output, out); err != nil {
			return err
		}
		log.Info().
			Str("path", *output).
			Int("frames", out.NumFrames()).
			Int("sample_rate", out.SampleRate()).
			Msg("wrote crushed file")
	}

	if *play {
		log.Info().Msg("playing crushed audio")
		if err := player.Play(out); err != nil {
			return fmt.Errorf("playback: %w", err)
		}
	}

	return nil
}

// crushIsNoOp reports whether cfg leaves the source audibly untouched: the
// target depth is at least the source's and the rate is unchanged.
func crushIsNoOp(cfg crush.Config, srcBitDepth, srcSampleRate int) bool {
	return cfg.BitDepth >= srcBitDepth && cfg.SampleRate == srcSampleRate
}

// writeWAV creates path and encodes buf into it. A failed encode removes the
// file again: a run that errors must not leave partial output behind.
func writeWAV(path string, buf *audio.Buffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	if err := wav.Encode(f, buf); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encoding output: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("closing output: %w", err)
	}

	return nil
}
