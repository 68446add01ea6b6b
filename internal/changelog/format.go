package changelog

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// FormatOptions controls the terminal projection of a version.
type FormatOptions struct {
	Markdown bool // keep Markdown heading markers
	Plain    bool // disable colors
}

var (
	markerStyle  = color.New(color.FgHiBlack).SprintFunc()
	headerStyle  = color.New(color.FgBlue, color.Bold).SprintFunc()
	sectionStyle = color.New(color.FgCyan, color.Bold).SprintFunc()
)

// FormatVersion writes one version's header and body to the writer.
// In Markdown mode the output is the version's changelog text; in
// terminal mode heading markers are dropped and section names are
// uppercased.
func FormatVersion(v *Version, w io.Writer, opts FormatOptions) error {
	if _, err := fmt.Fprintln(w, formatHeaderLine(v, opts)); err != nil {
		return err
	}

	body := formatBodyText(v, opts)
	if body == "" {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%s\n", body)
	return err
}

// HeaderLine returns the version header as displayed by `show --header`.
func HeaderLine(v *Version) string {
	return formatHeaderLine(v, FormatOptions{Plain: true})
}

func formatHeaderLine(v *Version, opts FormatOptions) string {
	header := renderHeader(v)

	prefix, title := "", header
	if cut, ok := strings.CutPrefix(header, "## "); ok {
		title = cut
		if opts.Markdown {
			prefix = "## "
		}
	}

	if opts.Plain {
		return prefix + title
	}
	return markerStyle(prefix) + headerStyle(title)
}

func formatBodyText(v *Version, opts FormatOptions) string {
	var segments []string

	for _, s := range v.Sections {
		if s.Name != "" {
			segments = append(segments, formatSectionHeading(s.Name, opts))
		}
		for _, e := range s.Entries {
			segments = append(segments, e.Text())
		}
	}

	return joinSegments(segments)
}

func formatSectionHeading(name string, opts FormatOptions) string {
	prefix, title := "", strings.ToUpper(name)
	if opts.Markdown {
		prefix, title = "### ", name
	}

	if opts.Plain {
		return prefix + title
	}
	return markerStyle(prefix) + sectionStyle(title)
}
