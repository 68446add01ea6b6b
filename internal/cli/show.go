package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/drewcassidy/yaclog/internal/changelog"
	clierrors "github.com/drewcassidy/yaclog/internal/errors"
	"github.com/drewcassidy/yaclog/internal/output"
)

var (
	showAllFlag      bool
	showMarkdownFlag bool
	showNameFlag     bool
	showHeaderFlag   bool
	showBodyFlag     bool
	showVersionFlag  bool
	showYAMLFlag     bool
)

var showCmd = &cobra.Command{
	Use:   "show [versions...]",
	Short: "Show changes from the changelog file",
	Long: `Show the changes for the given versions.

VERSIONS is a list of version names to print. If not given, the most
recent version is used.

The field flags print a single machine-readable value per version, for
use in scripts and CI:

Examples:
  yaclog show                 # Most recent version
  yaclog show 1.0.0 0.9.0     # Specific versions
  yaclog show --all           # The whole changelog
  yaclog show --version       # Just the version number
  yaclog show --yaml          # Structured projection`,
	SilenceUsage: true,
	RunE:         runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVarP(&showAllFlag, "all", "a", false, "Show the entire changelog")
	showCmd.Flags().BoolVarP(&showMarkdownFlag, "markdown", "m", false, "Keep Markdown heading markers")
	showCmd.Flags().BoolVarP(&showNameFlag, "name", "n", false, "Print only the version name")
	showCmd.Flags().BoolVar(&showHeaderFlag, "header", false, "Print only the version header line")
	showCmd.Flags().BoolVarP(&showBodyFlag, "body", "b", false, "Print only the version body")
	showCmd.Flags().BoolVar(&showVersionFlag, "version", false, "Print only the version number")
	showCmd.Flags().BoolVar(&showYAMLFlag, "yaml", false, "Print the structured projection as YAML")
	showCmd.MarkFlagsMutuallyExclusive("name", "header", "body", "version", "yaml")
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if showAllFlag {
		data, err := os.ReadFile(cfg.Path)
		if err != nil {
			return clierrors.ChangelogNotFound(cfg.Path)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}

	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	versions, err := selectVersions(cfg.Path, doc, args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch {
	case showYAMLFlag:
		return printYAML(out, versions)
	case showNameFlag:
		for _, v := range versions {
			fmt.Fprintln(out, v.Name)
		}
	case showHeaderFlag:
		for _, v := range versions {
			fmt.Fprintln(out, changelog.HeaderLine(v))
		}
	case showBodyFlag:
		for _, v := range versions {
			fmt.Fprintln(out, v.Body())
		}
	case showVersionFlag:
		for _, v := range versions {
			token, _, _, ok := v.Token()
			if !ok {
				return clierrors.NewChangelogError(
					fmt.Sprintf("version %q has no version number", v.Name))
			}
			fmt.Fprintln(out, token.String())
		}
	default:
		isTerminal := output.IsTerminal(out)
		opts := changelog.FormatOptions{
			Markdown: showMarkdownFlag || !isTerminal,
			Plain:    !isTerminal,
		}
		for _, v := range versions {
			if err := changelog.FormatVersion(v, out, opts); err != nil {
				return err
			}
		}
	}

	return nil
}

// selectVersions resolves the version name arguments, defaulting to the
// most recent version.
func selectVersions(path string, doc *changelog.Document, names []string) ([]*changelog.Version, error) {
	if len(names) == 0 {
		current, err := doc.CurrentVersion()
		if err != nil {
			return nil, clierrors.NoVersions(path)
		}
		return []*changelog.Version{current}, nil
	}

	versions := make([]*changelog.Version, 0, len(names))
	for _, name := range names {
		v, err := doc.GetVersion(name)
		if err != nil {
			var notFound *changelog.VersionNotFoundError
			if errors.As(err, &notFound) {
				return nil, clierrors.VersionNotFound(notFound.Name, notFound.Available)
			}
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, nil
}

// yamlVersion is the structured projection emitted by show --yaml.
type yamlVersion struct {
	Name     string        `yaml:"name"`
	Version  string        `yaml:"version,omitempty"`
	Date     string        `yaml:"date,omitempty"`
	Tags     []string      `yaml:"tags,omitempty"`
	Link     string        `yaml:"link,omitempty"`
	Sections []yamlSection `yaml:"sections,omitempty"`
}

type yamlSection struct {
	Name    string   `yaml:"name,omitempty"`
	Entries []string `yaml:"entries"`
}

func printYAML(out io.Writer, versions []*changelog.Version) error {
	projection := make([]yamlVersion, len(versions))
	for i, v := range versions {
		yv := yamlVersion{
			Name: v.Name,
			Tags: v.Tags,
			Link: v.Link,
		}
		if token, _, _, ok := v.Token(); ok {
			yv.Version = token.String()
		}
		if !v.Date.IsZero() {
			yv.Date = v.Date.Format(changelog.DateLayout)
		}
		for _, s := range v.Sections {
			entries := make([]string, len(s.Entries))
			for j, e := range s.Entries {
				entries[j] = e.Text()
			}
			yv.Sections = append(yv.Sections, yamlSection{Name: s.Name, Entries: entries})
		}
		projection[i] = yv
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(projection); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
