package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	mdwerror "github.com/msto63/zeitwerk/foundation/core/error"
	"github.com/msto63/zeitwerk/foundation/utils/timex"
	"github.com/msto63/zeitwerk/pkg/chrono"
)

// calendarWidth is the width of seven two-digit columns
const calendarWidth = 7*3 - 1

func newCalendarCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar [YEAR [MONTH]]",
		Short: "Print a month calendar",
		Long: `Print the calendar of a month with weeks starting on Monday. Without
arguments the current month is shown and today is highlighted. With only a
year, all twelve months are printed.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			today := chrono.Today(a.clock)
			year, month := today.Year(), int(today.Month())

			var err error
			if len(args) > 0 {
				if year, err = parseInt("year", args[0]); err != nil {
					return err
				}
			}
			if len(args) > 1 {
				if month, err = parseInt("month", args[1]); err != nil {
					return err
				}
			}

			months := []int{month}
			if len(args) == 1 {
				months = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
			}

			out := cmd.OutOrStdout()
			for i, m := range months {
				first, err := chrono.NewLocalDate(year, m, 1)
				if err != nil {
					return err
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				printMonth(out, first, today, a.cfg.Locale())
			}
			return nil
		},
	}
	return cmd
}

// printMonth writes the grid of the month starting at first
func printMonth(w io.Writer, first, today chrono.LocalDate, locale language.Tag) {
	title := fmt.Sprintf("%s %d", monthName(locale, first.Month()), first.Year())
	fmt.Fprintln(w, titleStyle.Width(calendarWidth).Align(lipgloss.Center).Render(title))

	names := make([]string, 0, 7)
	for d := timex.Monday; d <= timex.Sunday; d++ {
		names = append(names, weekdayShort(locale, d))
	}
	fmt.Fprintln(w, labelStyle.Render(strings.Join(names, " ")))

	var line strings.Builder
	line.WriteString(strings.Repeat("   ", int(first.Weekday())-1))
	for day := 1; day <= first.LengthOfMonth(); day++ {
		date := first.PlusDays(day - 1)
		cell := fmt.Sprintf("%2d", day)
		switch {
		case date.Equal(today):
			cell = todayStyle.Render(cell)
		case date.Weekday().IsWeekend():
			cell = weekendStyle.Render(cell)
		}
		line.WriteString(cell)

		if date.Weekday() == timex.Sunday || day == first.LengthOfMonth() {
			fmt.Fprintln(w, line.String())
			line.Reset()
			continue
		}
		line.WriteByte(' ')
	}
}

func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, mdwerror.Wrap(err, "invalid "+name).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("zeitwerk calendar").
			WithDetail("input", s)
	}
	return n, nil
}
