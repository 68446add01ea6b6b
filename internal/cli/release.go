package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/drewcassidy/yaclog/internal/changelog"
	clierrors "github.com/drewcassidy/yaclog/internal/errors"
	"github.com/drewcassidy/yaclog/internal/git"
	"github.com/drewcassidy/yaclog/internal/output"
	"github.com/drewcassidy/yaclog/internal/pepver"
)

var (
	releaseVersionFlag string
	releaseMajorFlag   bool
	releaseMinorFlag   bool
	releasePatchFlag   bool
	releaseAlphaFlag   bool
	releaseBetaFlag    bool
	releaseRCFlag      bool
	releaseCommitFlag  bool
)

var releaseCmd = &cobra.Command{
	Use:   "release [flags]",
	Short: "Release versions",
	Long: `Release the current version and increment its version number.

The new version number is computed from the most recent version that
carries one; the current version (usually 'Unreleased') is renamed with
the result and stamped with today's date. Text around the version
number, like a codename, is preserved.

With --commit, the changelog is committed to git and an annotated tag
is created for the new version.

Examples:
  yaclog release --minor            # 1.2.3 -> 1.3.0
  yaclog release --major --rc       # 1.2.3 -> 2.0.0rc1
  yaclog release --rc               # 2.0.0rc1 -> 2.0.0rc2
  yaclog release --version 5.0.0    # Explicit version number
  yaclog release --commit           # Commit and tag the release`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runRelease,
}

func init() {
	rootCmd.AddCommand(releaseCmd)

	releaseCmd.Flags().StringVarP(&releaseVersionFlag, "version", "v", "", "The new version number to use")
	releaseCmd.Flags().BoolVarP(&releaseMajorFlag, "major", "M", false, "Increment the major version number")
	releaseCmd.Flags().BoolVarP(&releaseMinorFlag, "minor", "m", false, "Increment the minor version number")
	releaseCmd.Flags().BoolVarP(&releasePatchFlag, "patch", "p", false, "Increment the patch number")
	releaseCmd.Flags().BoolVarP(&releaseAlphaFlag, "alpha", "a", false, "Increment the alpha version number")
	releaseCmd.Flags().BoolVarP(&releaseBetaFlag, "beta", "b", false, "Increment the beta version number")
	releaseCmd.Flags().BoolVarP(&releaseRCFlag, "rc", "r", false, "Increment the release candidate version number")
	releaseCmd.Flags().BoolVarP(&releaseCommitFlag, "commit", "C", false, "Create a git commit tagged with the new version number")

	releaseCmd.MarkFlagsMutuallyExclusive("version", "major", "minor", "patch")
	releaseCmd.MarkFlagsMutuallyExclusive("version", "alpha", "beta", "rc")
	releaseCmd.MarkFlagsMutuallyExclusive("major", "minor", "patch")
	releaseCmd.MarkFlagsMutuallyExclusive("alpha", "beta", "rc")
}

func runRelease(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if directive, ok := releaseDirective(doc); ok {
		current, err := doc.CurrentVersion()
		if err != nil {
			return clierrors.NoVersions(cfg.Path)
		}

		if current.Released() && !cfg.SkipConfirmations {
			prompt := fmt.Sprintf("Rename release version %q?", current.Name)
			if !output.Confirm(cmd.InOrStdin(), out, prompt) {
				return NewExitError(ExitFailure)
			}
		}

		release, err := changelog.Increment(doc, directive, time.Now().UTC())
		if err != nil {
			return mapIncrementError(err)
		}

		if err := saveDocument(cfg, doc); err != nil {
			return err
		}
		fmt.Fprintf(out, "Renamed version %q to %q.\n", release.OldName, release.NewName)
	}

	if releaseCommitFlag {
		return commitRelease(cmd, cfg.Path, cfg.TagPrefix, doc, cfg.SkipConfirmations)
	}
	return nil
}

// releaseDirective builds the increment directive from the command
// flags. ok is false when no version change was requested (bare
// `release --commit`).
func releaseDirective(doc *changelog.Document) (changelog.Directive, bool) {
	if releaseVersionFlag != "" {
		return changelog.Directive{Explicit: releaseVersionFlag}, true
	}

	var d changelog.Directive
	switch {
	case releaseMajorFlag:
		d.Bump = changelog.BumpMajor
	case releaseMinorFlag:
		d.Bump = changelog.BumpMinor
	case releasePatchFlag:
		d.Bump = changelog.BumpMicro
	}

	label := ""
	switch {
	case releaseAlphaFlag:
		label = "a"
	case releaseBetaFlag:
		label = "b"
	case releaseRCFlag:
		label = "rc"
	}

	if label != "" {
		// a bare pre-release flag bumps an existing segment with the
		// same label; anything else starts a fresh one at 1
		if d.Bump == changelog.BumpNone && baseHasPre(doc, label) {
			d.PreBump = true
		} else {
			d.PreLabel = label
		}
	}

	return d, d.Bump != changelog.BumpNone || d.PreBump || d.PreLabel != ""
}

func baseHasPre(doc *changelog.Document, label string) bool {
	_, token, err := doc.BaseVersion()
	return err == nil && token.Pre != nil && token.Pre.Label == label
}

func mapIncrementError(err error) error {
	var noVersion *changelog.NoVersionError
	if errors.As(err, &noVersion) {
		return clierrors.NoVersionNumber()
	}
	var noPre *changelog.NoPreReleaseError
	if errors.As(err, &noPre) {
		return clierrors.NothingToIncrement(noPre.Version)
	}
	var invalid *pepver.InvalidVersionError
	if errors.As(err, &invalid) {
		return clierrors.InvalidVersionNumber(invalid.Input)
	}
	return err
}

// commitRelease stages the changelog, commits it, and creates an
// annotated tag for the current version. The core has already written
// the file; git runs strictly afterwards.
func commitRelease(cmd *cobra.Command, path, tagPrefix string, doc *changelog.Document, skipConfirm bool) error {
	current, err := doc.CurrentVersion()
	if err != nil {
		return clierrors.NoVersions(path)
	}

	repo, err := git.Open("")
	if err != nil {
		return clierrors.GitNotRepository()
	}

	out := cmd.OutOrStdout()
	tagName := releaseTagName(current, tagPrefix)

	if !skipConfirm {
		kind := ""
		if !current.Released() {
			kind = "non-release "
		}
		prompt := fmt.Sprintf("Commit and create tag %q for %sversion %q?", tagName, kind, current.Name)
		if !output.Confirm(cmd.InOrStdin(), out, prompt) {
			return NewExitError(ExitFailure)
		}
	}

	message := fmt.Sprintf("Version %s\n\n%s", current.Name, current.Body())
	hash, err := repo.Commit([]string{path}, message)
	if err != nil {
		return clierrors.GitOperationFailed("commit", err)
	}
	fmt.Fprintf(out, "Created commit %s\n", hash[:7])

	if err := repo.Tag(tagName, current.Body()); err != nil {
		return clierrors.GitOperationFailed("tag", err)
	}
	fmt.Fprintf(out, "Created tag %q.\n", tagName)
	return nil
}

// releaseTagName derives the git tag from the version: the embedded
// version number when there is one (with the configured prefix),
// otherwise the full name.
func releaseTagName(v *changelog.Version, prefix string) string {
	if token, _, _, ok := v.Token(); ok {
		return prefix + token.String()
	}
	return prefix + v.Name
}
