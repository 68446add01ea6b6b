package cli

import (
	"fmt"
	"os"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/drewcassidy/yaclog/internal/changelog"
	clierrors "github.com/drewcassidy/yaclog/internal/errors"
	"github.com/drewcassidy/yaclog/internal/output"
)

var (
	formatCheckFlag bool
	formatDiffFlag  bool
)

var formatCmd = &cobra.Command{
	Use:   "format",
	Short: "Reformat the changelog file",
	Long: `Reformat the changelog file to its canonical form.

Parsing and re-serializing normalizes heading styles, header layout,
and blank lines without losing any content. With --check, nothing is
written: the command prints a unified diff and exits nonzero when the
file is not already canonical, for use in CI. With --diff, the diff is
printed without writing.

Examples:
  yaclog format
  yaclog format --check`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)

	formatCmd.Flags().BoolVar(&formatCheckFlag, "check", false, "Exit nonzero if the file is not canonical, writing nothing")
	formatCmd.Flags().BoolVar(&formatDiffFlag, "diff", false, "Print the canonicalization diff without writing")
}

func runFormat(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return clierrors.ChangelogNotFound(cfg.Path)
		}
		return clierrors.Wrap(err, clierrors.Changelog)
	}

	actual := string(data)
	canonical := changelog.Render(changelog.Parse(actual))
	out := cmd.OutOrStdout()

	if actual == canonical {
		if formatCheckFlag || formatDiffFlag {
			output.PrintSuccess(out, fmt.Sprintf("%s is already formatted", cfg.Path))
		}
		return nil
	}

	if formatCheckFlag || formatDiffFlag {
		diff, err := unifiedDiff(cfg.Path, actual, canonical)
		if err != nil {
			return err
		}
		fmt.Fprint(out, diff)
		if formatCheckFlag {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s is not formatted\n", cfg.Path)
			return NewExitError(ExitNotCanonical)
		}
		return nil
	}

	doc := changelog.Parse(actual)
	if err := saveDocument(cfg, doc); err != nil {
		return err
	}
	fmt.Fprintf(out, "Reformatted changelog file at %s\n", cfg.Path)
	return nil
}

// unifiedDiff renders a classic unified patch between the file as it
// is and its canonical form.
func unifiedDiff(path, actual, canonical string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(actual),
		B:        difflib.SplitLines(canonical),
		FromFile: path,
		ToFile:   path + " (formatted)",
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("computing diff: %w", err)
	}
	return diff, nil
}
