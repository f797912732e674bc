// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/eegica/ica"
	"github.com/katalvlaran/eegica/logging"
	"github.com/katalvlaran/eegica/matrix"
	"github.com/katalvlaran/eegica/recording"
	"github.com/katalvlaran/eegica/report"
	"github.com/spf13/cobra"
)

type cleanFlags struct {
	remove     string
	channels   []string
	outPath    string
	reportPath string
}

func (a *app) newCleanCmd() *cobra.Command {
	var fl cleanFlags
	cmd := &cobra.Command{
		Use:   "clean <bundle>",
		Short: "Zero the given components and reconstruct the electrode signals",
		Example: `  eegica clean rec.yaml --remove 0
  eegica clean rec.yaml --remove 0,3 --channels Fpz,Cz,Iz --report report.yaml --out cleaned.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.runClean(cmd, args[0], fl); err != nil {
				return fmt.Errorf("clean: %w", err)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&fl.remove, "remove", "", "components to suppress, e.g. 0,3 (empty keeps all)")
	f.StringSliceVar(&fl.channels, "channels", nil, "restrict the report to these channels")
	f.StringVar(&fl.outPath, "out", "", "write the cleaned recording to this bundle")
	f.StringVar(&fl.reportPath, "report", "", "write the comparison report as YAML")

	return cmd
}

func (a *app) runClean(cmd *cobra.Command, path string, fl cleanFlags) error {
	remove, err := ica.ParseIndexSet(fl.remove)
	if err != nil {
		return err
	}
	rec, err := a.load(path)
	if err != nil {
		return err
	}
	d, err := a.decomposition(rec)
	if err != nil {
		return err
	}

	eeg := rec.EEG()
	// the untouched reconstruction shares its projection with the cleaned one
	results, err := d.CleanCandidates(cmd.Context(), eeg, [][]int{nil, remove})
	if err != nil {
		return err
	}
	baseline, res := results[0], results[1]
	a.log.Debug("projected to source space", logging.Shape("activations", res.Sources.Rows(), res.Sources.Cols()))
	a.log.Debug("suppressed components", "components", res.Suppressed)
	a.log.Debug("projected to electrode space", logging.Shape("cleaned", res.Cleaned.Rows(), res.Cleaned.Cols()))

	inverts, err := matrix.AllClose(baseline.Cleaned, eeg, 0, a.cfg.RoundTripWarn)
	if err != nil {
		return err
	}
	if !inverts {
		rt, _ := matrix.MaxAbsDiff(baseline.Cleaned, eeg)
		a.log.Warn("mixing and unmixing do not invert each other", "round_trip_error", rt, "threshold", a.cfg.RoundTripWarn)
	}

	raw, recon, cleaned, names := eeg, baseline.Cleaned, res.Cleaned, rec.Channels()
	if len(fl.channels) > 0 {
		sel, kept, err := selectChannels(rec, fl.channels, [3]*matrix.Dense{raw, recon, cleaned})
		if err != nil {
			return err
		}
		raw, recon, cleaned, names = sel[0], sel[1], sel[2], kept
	}

	rep, err := report.Compare(raw, recon, cleaned, names, rec.SamplingRate(),
		report.WithBand(a.cfg.Band.Low, a.cfg.Band.High),
		report.WithSuppressed(res.Suppressed))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), rep.Summary())

	if fl.reportPath != "" {
		if err = writeReport(fl.reportPath, rep); err != nil {
			return err
		}
		a.log.Info("wrote report", "path", fl.reportPath, "run_id", rep.RunID)
	}
	if fl.outPath != "" {
		out, err := recording.New(recording.Meta{Subject: rec.Subject(), Units: rec.Units()},
			rec.SamplingRate(), rec.Channels(), res.Cleaned, rec.Mixing(), rec.Unmixing())
		if err != nil {
			return err
		}
		if err = out.Save(fl.outPath); err != nil {
			return err
		}
		a.log.Info("wrote cleaned recording", "path", fl.outPath)
	}

	return nil
}

// selectChannels keeps the named rows of every matrix, in the given order.
func selectChannels(rec *recording.Recording, names []string, ms [3]*matrix.Dense) ([3]*matrix.Dense, []string, error) {
	var out [3]*matrix.Dense
	kept := make([]string, len(names))
	idx := make([]int, len(names))
	for k, name := range names {
		kept[k] = strings.TrimSpace(name)
		i, err := rec.ChannelIndex(kept[k])
		if err != nil {
			return out, nil, err
		}
		idx[k] = i
	}

	for j, m := range ms {
		rows := make([][]float64, len(idx))
		for k, i := range idx {
			row, err := m.Row(i)
			if err != nil {
				return out, nil, err
			}
			rows[k] = row
		}
		sel, err := matrix.NewDenseFromRows(rows)
		if err != nil {
			return out, nil, err
		}
		out[j] = sel
	}

	return out, kept, nil
}

func writeReport(path string, rep *report.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = rep.Encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
