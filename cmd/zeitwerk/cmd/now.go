package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/msto63/zeitwerk/foundation/utils/timex"
	"github.com/msto63/zeitwerk/pkg/chrono"
)

func newNowCmd(a *app) *cobra.Command {
	var detail bool

	cmd := &cobra.Command{
		Use:   "now",
		Short: "Print the current date and time",
		Long: `Print the current date and time in the default zone.

The clock can be pinned with clock.fixed_instant and shifted with clock.skew.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dt := chrono.Now(a.clock)
			if detail {
				printDetail(cmd.OutOrStdout(), dt, a.format(dt), a.cfg.Locale())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.format(dt))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&detail, "detail", "d", false, "show calendar fields and zone details")
	return cmd
}

// printDetail writes the fields of dt, one per line
func printDetail(w io.Writer, dt chrono.DateTime, title string, locale language.Tag) {
	fmt.Fprintln(w, titleStyle.Render(title))
	printField(w, "instant", fmt.Sprintf("%.3f", dt.Instant().Seconds()))
	printField(w, "date", dt.Date())
	printField(w, "time", dt.Time())
	printField(w, "weekday", weekdayName(locale, dt.Weekday()))
	printField(w, "day", fmt.Sprintf("%d of %d", dt.DayOfYear(), timex.DaysInYear(dt.Year())))
	printField(w, "zone", dt.Zone().Identifier())
	printField(w, "offset", chrono.FormatOffset(dt.Offset()))
	printField(w, "name", dt.Zone().DisplayName(locale))
}
