package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConvertCmd(a *app) *cobra.Command {
	var targets []string

	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Show a date and time in other zones",
		Long: `Show the instant VALUE denotes in one or more zones.

VALUE is "now" or a date-time in any common layout; without an explicit
offset it is read in the default zone.`,
		Example: `  zeitwerk convert "2016-03-12 12:00:00" --to America/New_York
  zeitwerk convert now --to Z --to +05:30`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dt, err := a.dateTime(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, id := range targets {
				zone, err := a.cfg.ParseZone(id)
				if err != nil {
					return err
				}
				converted := dt.InZone(zone)
				a.log.Debug("converted", "from", dt.Zone().Identifier(), "to", zone.Identifier())
				if len(targets) == 1 {
					fmt.Fprintln(out, a.format(converted))
					continue
				}
				printField(out, id, a.format(converted))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&targets, "to", "t", nil, "target zone (repeatable)")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
