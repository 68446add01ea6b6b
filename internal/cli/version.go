package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drewcassidy/yaclog/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print yaclog version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "yaclog %s (commit %s, built %s)\n",
			version.Version, version.Commit, version.BuildDate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
