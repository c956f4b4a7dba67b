package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"sl-calculator/internal/charges"
	"sl-calculator/internal/types"
)

type calcOptions struct {
	entry   string
	qty     string
	maxLoss string
	side    string
	format  string
	details bool
}

func newCalcCmd() *cobra.Command {
	var opts calcOptions

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the stop-loss price and charges for one trade",
		Long: `Compute the stop-loss trigger and the charges of the round trip.

Examples:
  slcalc calc --entry 100 --qty 10 --max-loss 50
  slcalc calc --entry 100 --qty 10 --max-loss 50 --side sell --details
  slcalc calc -e 2450.5 -q 20 -l 500 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.entry, "entry", "e", "", "entry price per share")
	f.StringVarP(&opts.qty, "qty", "q", "", "number of shares")
	f.StringVarP(&opts.maxLoss, "max-loss", "l", "", "maximum acceptable loss in rupees")
	f.StringVarP(&opts.side, "side", "s", "buy", "entry direction: buy or sell")
	f.StringVarP(&opts.format, "format", "f", "", "output format: text or json (default from config)")
	f.BoolVarP(&opts.details, "details", "d", false, "show the itemised charges in text output")

	return cmd
}

func runCalc(cmd *cobra.Command, opts calcOptions) error {
	ctx := cmd.Context()

	cfg, err := loadConfig(ctx, configPath)
	if err != nil {
		return err
	}

	in, err := charges.ParseInput(opts.entry, opts.qty, opts.maxLoss, opts.side)
	if err != nil {
		return err
	}

	b, err := initializeCalculator(ctx, cfg).Calculate(ctx, in)
	if err != nil {
		return err
	}

	report := charges.Report(in.Direction, *b)

	format := opts.format
	if format == "" {
		format = cfg.Output.Format
	}

	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "text":
		renderText(cmd.OutOrStdout(), report, opts.details)
		return nil
	}
	return fmt.Errorf("unknown format %q: must be text or json", format)
}

func renderText(w io.Writer, r types.ChargeReport, details bool) {
	fmt.Fprintf(w, "Stop-Loss Price (%s exit): ₹%s\n", exitSide(r.Direction), r.StopLossPrice)
	if r.TickStopPrice != "" {
		fmt.Fprintf(w, "Tick-aligned trigger:      ₹%s\n", r.TickStopPrice)
	}
	fmt.Fprintf(w, "Total Charges:             ₹%s\n", r.Total)

	if !details {
		return
	}

	fmt.Fprintln(w, "─────────────────────────────────────")
	fmt.Fprintf(w, "  Turnover:     ₹%s\n", r.Turnover)
	fmt.Fprintf(w, "  Brokerage:    ₹%s\n", r.Brokerage)
	fmt.Fprintf(w, "  STT:          ₹%s\n", r.SecuritiesTransactionTax)
	fmt.Fprintf(w, "  Txn Charges:  ₹%s\n", r.TransactionCharges)
	fmt.Fprintf(w, "  GST:          ₹%s\n", r.GoodsAndServicesTax)
	fmt.Fprintf(w, "  Stamp Duty:   ₹%s\n", r.StampDuty)
	fmt.Fprintf(w, "  SEBI Fees:    ₹%s\n", r.RegulatoryFee)
}

func exitSide(entry string) string {
	d, err := types.ParseDirection(entry)
	if err != nil {
		return "?"
	}
	return d.Exit().String()
}
