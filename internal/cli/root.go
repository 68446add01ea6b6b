// Package cli implements the yaclog command line interface. Each
// command lives in its own file and registers itself on rootCmd in an
// init function.
package cli

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drewcassidy/yaclog/internal/changelog"
	"github.com/drewcassidy/yaclog/internal/config"
	clierrors "github.com/drewcassidy/yaclog/internal/errors"
	"github.com/drewcassidy/yaclog/internal/git"
	"github.com/natefinch/atomic"
)

var (
	pathFlag   string
	configFlag string
	debugFlag  bool
	yesFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "yaclog",
	Short: "Manage Markdown changelog files",
	Long: `yaclog manages changelog files written in Markdown.

It parses a CHANGELOG.md into versions, sections, and entries, lets you
record changes and tags from the command line, and handles version
number arithmetic when cutting a release. The changelog stays an
ordinary Markdown file; anything yaclog does not recognize is preserved
exactly as written.

See https://github.com/drewcassidy/yaclog for the full documentation.`,
	Example: `  yaclog init
  yaclog entry -b 'Added a shiny new feature'
  yaclog show
  yaclog release --minor --commit`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			git.SetDebugLogger(log.Printf)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&pathFlag, "path", "", "Changelog file to operate on (default CHANGELOG.md)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Project config file (default .yaclog.yml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&yesFlag, "yes", "y", false, "Skip confirmation prompts")
}

// Execute runs the root command. Structured errors are printed with
// their remediation steps; the returned error carries the exit code for
// main to unpack via ExitCode.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		clierrors.PrintError(cliErr)
	}
	return err
}

// loadConfig loads the layered configuration and applies the root
// command's flag overrides.
func loadConfig() (*config.Configuration, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, clierrors.Wrap(err, clierrors.Configuration)
	}
	if pathFlag != "" {
		cfg.Path = pathFlag
	}
	if yesFlag {
		cfg.SkipConfirmations = true
	}
	return cfg, nil
}

// loadDocument reads and parses the configured changelog file.
func loadDocument(cfg *config.Configuration) (*changelog.Document, error) {
	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, clierrors.ChangelogNotFound(cfg.Path)
		}
		return nil, clierrors.Wrap(err, clierrors.Changelog)
	}
	return changelog.Parse(string(data)), nil
}

// saveDocument renders the document and writes it back atomically, so
// a crash mid-write never leaves a truncated changelog behind.
func saveDocument(cfg *config.Configuration, doc *changelog.Document) error {
	text := changelog.Render(doc)
	if err := atomic.WriteFile(cfg.Path, strings.NewReader(text)); err != nil {
		return clierrors.ChangelogNotWritable(cfg.Path, err)
	}
	return nil
}
