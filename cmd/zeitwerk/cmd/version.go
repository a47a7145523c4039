package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/zeitwerk/pkg/core/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// no config needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render("zeitwerk v"+info.Version))
			printField(out, "commit", info.Commit)
			if info.BuildDate != "" {
				printField(out, "built", info.BuildDate)
			}
			printField(out, "go", info.GoVersion)
			printField(out, "platform", info.Platform)
			printField(out, "tzdata", info.TZData)
		},
	}
}
