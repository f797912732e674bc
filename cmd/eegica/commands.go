// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/eegica/ica"
	"github.com/katalvlaran/eegica/logging"
	"github.com/katalvlaran/eegica/recording"
	"github.com/spf13/cobra"
)

// app carries the resolved settings shared by every subcommand.
type app struct {
	// flag targets
	configPath string
	logLevel   string
	logJSON    bool
	workers    int

	getenv func(string) string
	cfg    Config
	log    *slog.Logger
}

// newRootCmd builds the command tree; getenv supplies EEGICA_* overrides.
func newRootCmd(getenv func(string) string) *cobra.Command {
	a := &app{getenv: getenv}

	root := &cobra.Command{
		Use:   "eegica",
		Short: "Remove artifact components from EEG with a precomputed ICA decomposition",
		Long: `eegica projects electrode data into independent-component space,
zeroes the components you name (typically eye blinks) and projects the
result back, reporting what was removed channel by channel.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML settings file")
	pf.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")
	pf.BoolVar(&a.logJSON, "log-json", false, "log JSON lines instead of text")
	pf.IntVar(&a.workers, "workers", 0, "goroutines per matrix product (overrides config)")

	root.AddCommand(
		a.newInspectCmd(),
		a.newCleanCmd(),
		a.newCandidatesCmd(),
		a.newSynthCmd(),
	)

	return root
}

// setup resolves Config from all sources and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := LoadConfig(a.configPath, a.getenv)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-json") {
		cfg.LogJSON = a.logJSON
	}
	if flags.Changed("workers") {
		cfg.ProductWorkers = a.workers
	}
	cfg.normalize()
	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	a.cfg = cfg
	a.log = logging.New(logging.Config{
		Level:   cfg.Level(),
		JSON:    cfg.LogJSON,
		Service: "eegica",
		Output:  cmd.ErrOrStderr(),
	})

	return nil
}

// load reads a bundle and logs what it holds.
func (a *app) load(path string) (*recording.Recording, error) {
	rec, err := recording.Load(path)
	if err != nil {
		return nil, err
	}
	a.log.Info("loaded recording",
		"path", path,
		"fs", rec.SamplingRate(),
		logging.Shape("eeg", rec.NumChannels(), rec.NumSamples()),
		"components", rec.NumComponents())

	return rec, nil
}

// decomposition applies the configured worker counts.
func (a *app) decomposition(rec *recording.Recording) (*ica.Decomposition, error) {
	return rec.Decomposition(
		ica.WithProductWorkers(a.cfg.ProductWorkers),
		ica.WithCandidateWorkers(a.cfg.CandidateWorkers),
	)
}
