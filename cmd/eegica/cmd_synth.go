// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/eegica/logging"
	"github.com/katalvlaran/eegica/recording"
	"github.com/spf13/cobra"
)

func (a *app) newSynthCmd() *cobra.Command {
	cfg := recording.DefaultSynthConfig()
	cmd := &cobra.Command{
		Use:   "synth <out>",
		Short: "Write a synthetic bundle whose component 0 is a blink train",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := recording.Synthesize(cfg)
			if err != nil {
				return fmt.Errorf("synth: %w", err)
			}
			if err = rec.Save(args[0]); err != nil {
				return fmt.Errorf("synth: %w", err)
			}
			a.log.Info("wrote synthetic recording",
				"path", args[0],
				logging.Shape("eeg", rec.NumChannels(), rec.NumSamples()),
				"seed", cfg.Seed)

			return nil
		},
	}

	f := cmd.Flags()
	f.IntVar(&cfg.Channels, "channels", cfg.Channels, "number of channels (and components)")
	f.IntVar(&cfg.Samples, "samples", cfg.Samples, "samples per channel")
	f.Float64Var(&cfg.Fs, "fs", cfg.Fs, "sampling rate in Hz")
	f.Float64Var(&cfg.BlinkAmp, "blink-amp", cfg.BlinkAmp, "blink source amplitude")
	f.Float64Var(&cfg.BlinkEvery, "blink-every", cfg.BlinkEvery, "seconds between blinks")
	f.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")

	return cmd
}
