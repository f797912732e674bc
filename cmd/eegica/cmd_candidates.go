// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/katalvlaran/eegica/ica"
	"github.com/katalvlaran/eegica/report"
	"github.com/spf13/cobra"
)

// candidateScore is one suppression set with its report.
type candidateScore struct {
	set    []int
	report *report.Report
}

func (a *app) newCandidatesCmd() *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:     "candidates <bundle>",
		Short:   "Evaluate several suppression sets concurrently and rank them by blink-band attenuation",
		Example: `  eegica candidates rec.yaml --set 0 --set 0,3 --set 1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.runCandidates(cmd, args[0], sets); err != nil {
				return fmt.Errorf("candidates: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "a component list to try; repeat for more")

	return cmd
}

func (a *app) runCandidates(cmd *cobra.Command, path string, raw []string) error {
	if len(raw) == 0 {
		return errors.New("at least one --set is required")
	}
	sets := make([][]int, 0, len(raw)+1)
	sets = append(sets, nil) // baseline reconstruction
	for _, s := range raw {
		set, err := ica.ParseIndexSet(s)
		if err != nil {
			return err
		}
		sets = append(sets, set)
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
	results, err := d.CleanCandidates(cmd.Context(), eeg, sets)
	if err != nil {
		return err
	}
	a.log.Debug("reconstructed candidates", "count", len(results)-1, "workers", a.cfg.CandidateWorkers)

	baseline := results[0].Cleaned
	scores := make([]candidateScore, 0, len(results)-1)
	for _, res := range results[1:] {
		rep, err := report.Compare(eeg, baseline, res.Cleaned, rec.Channels(), rec.SamplingRate(),
			report.WithBand(a.cfg.Band.Low, a.cfg.Band.High),
			report.WithSuppressed(res.Suppressed))
		if err != nil {
			return err
		}
		scores = append(scores, candidateScore{set: res.Suppressed, report: rep})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].report.MeanAttenuationDB() > scores[j].report.MeanAttenuationDB()
	})

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "rank\tcomponents\tmean atten dB\tmean corr\tmean rms residual")
	for i, s := range scores {
		corr, resid := channelMeans(s.report)
		fmt.Fprintf(tw, "%d\t%v\t%.1f\t%.3f\t%.4g\n", i+1, s.set, s.report.MeanAttenuationDB(), corr, resid)
	}

	return tw.Flush()
}

// channelMeans averages correlation and residual RMS over channels.
func channelMeans(r *report.Report) (corr, resid float64) {
	if len(r.PerChannel) == 0 {
		return 0, 0
	}
	for _, c := range r.PerChannel {
		corr += c.Correlation
		resid += c.RMSResidual
	}
	n := float64(len(r.PerChannel))

	return corr / n, resid / n
}
