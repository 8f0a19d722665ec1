package main

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/spf13/cobra"

	"github.com/Treata11/MuVis-v2.1.1/algorithms/oscillator"
	"github.com/Treata11/MuVis-v2.1.1/logging"
)

const (
	renderSampleRate = 44100
	renderBitDepth   = 16
)

func newRenderCommand() *cobra.Command {
	var (
		output   string
		tones    []float64
		duration time.Duration
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the oscillator voices to a WAV file",
		Long: `Render synthesizes one sine voice per tone, mixes them, and writes the
result as 16-bit mono WAV. The same oscillator drives the Lissajous
figures, so the file is an audible check of the synthesis math.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("render: output path must not be empty")
			}
			if duration <= 0 {
				return fmt.Errorf("render: duration %v must be positive", duration)
			}
			if len(tones) == 0 {
				return fmt.Errorf("render: need at least one tone")
			}
			for _, f := range tones {
				if f <= 0 || f >= renderSampleRate/2 {
					return fmt.Errorf("render: tone %g Hz outside (0, %d)", f, renderSampleRate/2)
				}
			}
			return runRender(output, tones, duration)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "muvis.wav", "output WAV path")
	cmd.Flags().Float64SliceVar(&tones, "tones", []float64{440, 660}, "tone frequencies in Hz")
	cmd.Flags().DurationVar(&duration, "duration", 3*time.Second, "length of the rendered file")
	return cmd
}

func runRender(path string, tones []float64, duration time.Duration) error {
	logger := logging.WithFields(logging.Fields{"component": "render"})

	total := int(duration.Seconds() * renderSampleRate)
	bank, err := oscillator.NewBank(len(tones), total, renderSampleRate)
	if err != nil {
		return err
	}

	amps := make([]float64, len(tones))
	for i := range amps {
		amps[i] = 1.0
	}
	waves := bank.Render(tones, amps, 0)

	// mix and peak-normalize to 90% of full scale
	mixed := make([]float64, total)
	peak := 0.0
	for n := range mixed {
		sum := 0.0
		for _, wave := range waves {
			sum += wave[n]
		}
		mixed[n] = sum
		if a := math.Abs(sum); a > peak {
			peak = a
		}
	}
	scale := 0.0
	if peak > 0 {
		scale = 0.9 * 32767.0 / peak
	}

	data := make([]int, total)
	for n, v := range mixed {
		data[n] = int(v * scale)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	enc := wav.NewEncoder(file, renderSampleRate, renderBitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  renderSampleRate,
		},
		SourceBitDepth: renderBitDepth,
		Data:           data,
	}
	if err := enc.Write(buf); err != nil {
		file.Close()
		return fmt.Errorf("render: write wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		file.Close()
		return fmt.Errorf("render: finalize wav: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	logger.Info("rendered", logging.Fields{
		"path":     path,
		"duration": duration.String(),
		"voices":   len(tones),
		"samples":  total,
	})
	return nil
}
