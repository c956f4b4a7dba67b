package main

import (
	"github.com/spf13/cobra"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "slcalc",
		Short: "Stop-loss and intraday charge calculator",
		Long: `slcalc computes the stop-loss trigger that caps the loss on an NSE
intraday equity trade at a given amount, together with the brokerage,
STT, exchange transaction charges, GST, stamp duty and SEBI fee of the
round trip.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeSystem()
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to config file")

	root.AddCommand(
		newCalcCmd(),
		newServeCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}
