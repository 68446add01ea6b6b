package changelog

import (
	"strings"
)

// Render serializes the document back to canonical Markdown: preamble,
// versions in order, then the link reference table. It is total and
// idempotent: rendering the parse of its own output reproduces it
// byte for byte.
func Render(doc *Document) string {
	var segments []string

	if preamble := renderBlocks(doc.Preamble); preamble != "" {
		segments = append(segments, preamble)
	}

	links := doc.Links.clone()

	for _, v := range doc.Versions {
		if v.Link != "" {
			links.Set(v.Name, v.Link)
		}
		segments = append(segments, renderVersion(v))
	}

	for _, id := range links.IDs() {
		url, _ := links.Get(id)
		segments = append(segments, "["+id+"]: "+url)
	}

	return joinSegments(segments) + "\n"
}

// renderVersion renders the header and body of one version.
func renderVersion(v *Version) string {
	text := renderHeader(v)
	if body := renderBody(v); body != "" {
		text += "\n\n" + body
	}
	return text
}

// renderHeader reconstructs the "## " heading line from the version's
// name, date and tags. Tags keep their original relative order and
// multiplicity.
func renderHeader(v *Version) string {
	segments := []string{v.Name}
	if v.Link != "" {
		segments[0] = "[" + v.Name + "]"
	}

	if !v.Date.IsZero() || len(v.Tags) > 0 {
		segments = append(segments, "-")
	}
	if !v.Date.IsZero() {
		segments = append(segments, v.Date.Format(DateLayout))
	}
	for _, tag := range v.Tags {
		segments = append(segments, "["+strings.ToUpper(tag)+"]")
	}

	return "## " + strings.Join(segments, " ")
}

// renderBody renders the version's sections without the header line.
// Named sections get an H3 heading; the unnamed section renders its
// entries directly. Entries keep their original block kind.
func renderBody(v *Version) string {
	var segments []string

	for _, s := range v.Sections {
		if s.Name != "" {
			segments = append(segments, "### "+s.Name)
		}
		for _, e := range s.Entries {
			segments = append(segments, e.Text())
		}
	}

	return joinSegments(segments)
}

// renderBlocks joins raw blocks back into text.
func renderBlocks(blocks []Block) string {
	segments := make([]string, len(blocks))
	for i, b := range blocks {
		segments[i] = b.Text()
	}
	return joinSegments(segments)
}

// joinSegments joins block-level segments with a blank line between
// them, except that consecutive bulleted (or consecutive numbered)
// list items stay adjacent on single lines.
func joinSegments(segments []string) string {
	var lines []string
	last := ""

	for _, segment := range segments {
		adjacent := (bulletRegex.MatchString(segment) && bulletRegex.MatchString(last)) ||
			(numberedRegex.MatchString(segment) && numberedRegex.MatchString(last))
		if !adjacent {
			lines = append(lines, "")
		}
		lines = append(lines, segment)
		last = segment
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}
