package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drewcassidy/yaclog/internal/changelog"
	clierrors "github.com/drewcassidy/yaclog/internal/errors"
)

var (
	entryBullets    []string
	entryParagraphs []string
)

var entryCmd = &cobra.Command{
	Use:   "entry [flags] [SECTION] [VERSION]",
	Short: "Add entries to the changelog",
	Long: `Add entries to SECTION in VERSION.

SECTION is the name of the section to append to. If not given, the
configured default section is used, and entries are uncategorized when
no default is set either.

VERSION is the name of the version to append to. If not given, the
most recent version is used, or a new 'Unreleased' version is added if
the most recent version has already been released.

When multiple bullet points are provided, additional points are added
as sub-points of the first.

Examples:
  yaclog entry -b 'Added a thing'
  yaclog entry -b 'Added a thing' -b 'a smaller thing' Added
  yaclog entry -p 'This release is dedicated to my cat.'`,
	Args:         cobra.MaximumNArgs(2),
	SilenceUsage: true,
	RunE:         runEntry,
}

func init() {
	rootCmd.AddCommand(entryCmd)

	entryCmd.Flags().StringArrayVarP(&entryBullets, "bullet", "b", nil, "Bullet point to add")
	entryCmd.Flags().StringArrayVarP(&entryParagraphs, "paragraph", "p", nil, "Paragraph to add")
}

func runEntry(cmd *cobra.Command, args []string) error {
	if len(entryBullets) == 0 && len(entryParagraphs) == 0 {
		return clierrors.NewArgumentErrorWithUsage(
			"nothing to add",
			"yaclog entry [-b bullet]... [-p paragraph]... [SECTION] [VERSION]",
			"Provide at least one --bullet or --paragraph",
		)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	sectionName := cfg.DefaultSection
	if len(args) > 0 {
		sectionName = args[0]
	}

	version, err := entryTarget(doc, args)
	if err != nil {
		return err
	}

	for _, p := range entryParagraphs {
		version.AddEntry(sectionName, p)
	}
	if len(entryBullets) > 0 {
		version.AddEntry(sectionName, joinBullets(entryBullets))
	}

	return saveDocument(cfg, doc)
}

// entryTarget picks the version entries go to: the named version when
// given, otherwise the unreleased head, inserting one if the newest
// version has already been released.
func entryTarget(doc *changelog.Document, args []string) (*changelog.Version, error) {
	if len(args) == 2 {
		v, err := doc.GetVersion(args[1])
		if err != nil {
			var notFound *changelog.VersionNotFoundError
			if errors.As(err, &notFound) {
				return nil, clierrors.VersionNotFound(notFound.Name, notFound.Available)
			}
			return nil, err
		}
		return v, nil
	}
	return doc.EnsureUnreleased(), nil
}

// joinBullets combines bullet flags into a single list-item entry,
// indenting all but the first as sub-points.
func joinBullets(bullets []string) string {
	lines := make([]string, len(bullets))
	for i, b := range bullets {
		b = strings.TrimSpace(b)
		if !strings.HasPrefix(b, "- ") && !strings.HasPrefix(b, "* ") && !strings.HasPrefix(b, "+ ") {
			b = "- " + b
		}
		if i > 0 {
			b = "  " + b
		}
		lines[i] = b
	}
	return strings.Join(lines, "\n")
}
