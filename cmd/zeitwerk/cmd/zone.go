package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/zeitwerk/pkg/chrono"
)

func newZoneCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zone [ID...]",
		Short: "Describe zones",
		Long: `Parse each zone identifier and show its canonical form, the offset in
effect now and its display name. Without arguments the default zone is shown.

Malformed identifiers are reported with the rule they violate.`,
		Example: `  zeitwerk zone +05:30 Europe/Berlin PST
  zeitwerk zone -- -03:00:30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			zones := make([]chrono.ZoneOffset, 0, len(args))
			for _, id := range args {
				z, err := a.cfg.ParseZone(id)
				if err != nil {
					return err
				}
				zones = append(zones, z)
			}
			if len(args) == 0 {
				zones = append(zones, a.zone)
			}

			now := chrono.CurrentInstant(a.clock)
			out := cmd.OutOrStdout()
			for i, z := range zones {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, titleStyle.Render(z.Identifier()))
				kind := "named"
				if z.IsFixed() {
					kind = "fixed"
				}
				printField(out, "kind", kind)
				printField(out, "offset", chrono.FormatOffset(z.OffsetAt(now)))
				printField(out, "name", z.DisplayNameWith(a.cfg.ZoneDatabase(), a.cfg.Locale()))
				if z.Fudge() != 0 {
					printField(out, "fudge", fmt.Sprintf("%+ds", z.Fudge()))
				}
			}
			return nil
		},
	}
	return cmd
}
