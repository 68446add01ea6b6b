package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drewcassidy/yaclog/internal/changelog"
	clierrors "github.com/drewcassidy/yaclog/internal/errors"
)

var tagDeleteFlag bool

var tagCmd = &cobra.Command{
	Use:   "tag [flags] TAG [VERSION]",
	Short: "Modify version tags",
	Long: `Add or remove TAG on VERSION.

VERSION is the name of a version to modify. If not given, the most
recent version is used. Tags are uppercased before being applied.

Examples:
  yaclog tag YANKED 1.0.0
  yaclog tag --delete YANKED 1.0.0`,
	Args:         cobra.RangeArgs(1, 2),
	SilenceUsage: true,
	RunE:         runTag,
}

func init() {
	rootCmd.AddCommand(tagCmd)

	tagCmd.Flags().BoolVarP(&tagDeleteFlag, "delete", "d", false, "Remove the tag instead of adding it")
}

func runTag(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	tagName := strings.ToUpper(args[0])

	var version *changelog.Version
	if len(args) == 2 {
		version, err = doc.GetVersion(args[1])
	} else {
		version, err = doc.CurrentVersion()
	}
	if err != nil {
		var notFound *changelog.VersionNotFoundError
		if errors.As(err, &notFound) {
			return clierrors.VersionNotFound(notFound.Name, notFound.Available)
		}
		var empty *changelog.EmptyChangelogError
		if errors.As(err, &empty) {
			return clierrors.NoVersions(cfg.Path)
		}
		return err
	}

	if tagDeleteFlag {
		err = version.RemoveTag(tagName)
	} else {
		err = version.AddTag(tagName)
	}
	if err != nil {
		var tagErr *changelog.TagError
		if errors.As(err, &tagErr) {
			return clierrors.InvalidTag(tagErr.Tag)
		}
		var missing *changelog.TagNotFoundError
		if errors.As(err, &missing) {
			return clierrors.NewArgumentError(missing.Error(),
				"List a version's tags with: yaclog show --header "+version.Name)
		}
		return err
	}

	return saveDocument(cfg, doc)
}
