package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/zeitwerk/foundation/utils/timex"
)

func newDiffCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff FROM TO",
		Short: "Show the time between two dates and times",
		Long: `Show the exact duration from FROM to TO and the number of calendar
days between their dates in the zone of FROM.`,
		Example: `  zeitwerk diff 2016-03-12T12:00:00-05:00 2016-03-13T12:00:00-04:00`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := a.dateTime(args[0])
			if err != nil {
				return err
			}
			to, err := a.dateTime(args[1])
			if err != nil {
				return err
			}

			d := to.Since(from)
			days := from.Date().DaysUntil(to.InZone(from.Zone()).Date())

			out := cmd.OutOrStdout()
			printField(out, "duration", d)
			printField(out, "seconds", fmt.Sprintf("%.3f", d.Seconds()))
			printField(out, "spoken", timex.FormatDuration(d.Std()))
			printField(out, "days", days)
			return nil
		},
	}
	return cmd
}
