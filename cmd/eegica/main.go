// SPDX-License-Identifier: MIT

// Command eegica removes eye-blink and other artifact components from
// multi-channel EEG using a precomputed ICA decomposition.
//
//	eegica synth demo.yaml --channels 6
//	eegica inspect demo.yaml
//	eegica clean demo.yaml --remove 0 --report report.yaml --out cleaned.yaml
//	eegica candidates demo.yaml --set 0 --set 0,1 --set 2
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Getenv).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "eegica: %v\n", err)
		stop()
		os.Exit(1)
	}
}
