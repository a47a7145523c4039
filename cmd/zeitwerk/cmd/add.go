package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/zeitwerk/pkg/chrono"
)

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add VALUE AMOUNT...",
		Short: "Add durations or periods to a date and time",
		Long: `Add each AMOUNT to VALUE in order.

An AMOUNT starting with P is a calendar period (P1Y2M3D, P2W) and moves the
wall clock. Anything else is an exact duration (90m, "2 days", 1.5h) and moves
the instant, so it can cross a daylight saving transition.
Use -- before negative amounts.`,
		Example: `  zeitwerk add 2016-01-31 P1M
  zeitwerk add now "2 days" 90m
  zeitwerk add -- 2016-03-13T12:00:00Z -24h`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.dateTime(args[0])
			if err != nil {
				return err
			}
			for _, amount := range args[1:] {
				if dt, err = addAmount(dt, amount); err != nil {
					return err
				}
				a.log.Debug("added", "amount", amount, "value", dt.String())
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.format(dt))
			return nil
		},
	}
	return cmd
}

// addAmount applies a period or a duration, chosen by the P designator
func addAmount(dt chrono.DateTime, amount string) (chrono.DateTime, error) {
	if isPeriod(amount) {
		p, err := chrono.ParsePeriod(amount)
		if err != nil {
			return dt, err
		}
		return dt.PlusPeriod(p), nil
	}
	d, err := chrono.ParseDuration(amount)
	if err != nil {
		return dt, err
	}
	return dt.Plus(d), nil
}

func isPeriod(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "P") || strings.HasPrefix(s, "p")
}
