// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *app) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <bundle>",
		Short: "Print the shapes of a recording bundle and how well its decomposition round-trips",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runInspect,
	}
}

func (a *app) runInspect(cmd *cobra.Command, args []string) error {
	rec, err := a.load(args[0])
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	d, err := a.decomposition(rec)
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}
	rt, err := d.RoundTripError(rec.EEG())
	if err != nil {
		return fmt.Errorf("inspect: %w", err)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "subject\t%s\n", orDash(rec.Subject()))
	fmt.Fprintf(tw, "units\t%s\n", orDash(rec.Units()))
	fmt.Fprintf(tw, "sampling rate\t%g Hz\n", rec.SamplingRate())
	fmt.Fprintf(tw, "channels\t%d (%s)\n", rec.NumChannels(), strings.Join(rec.Channels(), ", "))
	fmt.Fprintf(tw, "samples\t%d (%.3f s)\n", rec.NumSamples(), rec.Duration())
	fmt.Fprintf(tw, "components\t%d\n", rec.NumComponents())
	fmt.Fprintf(tw, "round-trip error\t%.3g\n", rt)

	return tw.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
