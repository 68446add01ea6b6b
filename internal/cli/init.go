package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/drewcassidy/yaclog/internal/changelog"
	"github.com/drewcassidy/yaclog/internal/output"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a new changelog file",
	Long: `Create a new changelog file with the standard preamble.

If the changelog already exists you are asked before it is overwritten.

Examples:
  yaclog init                       # Create CHANGELOG.md
  yaclog init --path docs/CHANGES.md
  yaclog init --yes                 # Overwrite without prompting`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if _, err := os.Stat(cfg.Path); err == nil && !cfg.SkipConfirmations {
		prompt := fmt.Sprintf("%s already exists. Overwrite it?", cfg.Path)
		if !output.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), prompt) {
			return nil
		}
	}

	if err := saveDocument(cfg, changelog.NewDocument()); err != nil {
		return err
	}

	output.PrintSuccess(cmd.OutOrStdout(), fmt.Sprintf("Created new changelog file at %s", cfg.Path))
	return nil
}
