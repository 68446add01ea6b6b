package changelog

import (
	"strings"
	"time"

	"github.com/drewcassidy/yaclog/internal/pepver"
)

// UnreleasedName is the distinguished name of the version collecting
// changes that have not been released yet.
const UnreleasedName = "Unreleased"

// DateLayout is the ISO-8601 date format used in version headers.
const DateLayout = "2006-01-02"

// Document is a parsed changelog: preamble blocks before the first
// version header, versions in document order (newest first), and the
// trailing link reference table.
type Document struct {
	Preamble []Block
	Versions []*Version
	Links    *LinkTable
}

// Version is one H2-delimited entry in the changelog: a release, or the
// unreleased head. The name is free text and may embed a PEP 440
// version token anywhere; everything around the token (quoted
// codenames, "Version" prefixes) is preserved verbatim.
type Version struct {
	Name string
	Date time.Time // zero when the header carries no date
	Tags []string  // uppercase bracket tags, in header order

	// Link is the version's URL when the header name was a Markdown
	// link; LinkID is the reference id for deferred "[name][id]" links.
	Link   string
	LinkID string

	LineNo int // header line in the source file, 0-based

	// Sections holds the version's entries. A section with an empty
	// name collects uncategorized entries and renders without a
	// heading; it is always first when present.
	Sections []*Section
}

// Section is an H3-delimited group of entries within a version.
type Section struct {
	Name    string // "" for the uncategorized section
	Entries []Block
}

// NewDocument returns an empty document with the standard preamble.
func NewDocument() *Document {
	preamble := "# Changelog\n\nAll notable changes to this project will be documented in this file"
	return &Document{
		Preamble: Split(preamble),
		Links:    NewLinkTable(),
	}
}

// NewVersion returns an empty version with the given name.
func NewVersion(name string) *Version {
	return &Version{Name: name}
}

// IsUnreleased reports whether this version is the unreleased sentinel.
func (v *Version) IsUnreleased() bool {
	return v.Name == UnreleasedName
}

// Token extracts the PEP 440 version token embedded in the version
// name, with its byte offsets for splicing. ok is false when the name
// contains no recognizable token.
func (v *Version) Token() (token pepver.Version, start, end int, ok bool) {
	return pepver.Extract(v.Name)
}

// Released reports whether the version name carries a final (non-pre,
// non-dev) PEP 440 token.
func (v *Version) Released() bool {
	token, _, _, ok := v.Token()
	return ok && !token.IsPrerelease()
}

// Section returns the named section, or nil if the version has none
// with that name. The empty name addresses the uncategorized section.
func (v *Version) Section(name string) *Section {
	for _, s := range v.Sections {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Body renders the version's contents without the header line.
func (v *Version) Body() string {
	return renderBody(v)
}

// Header renders the version's "## " header line.
func (v *Version) Header() string {
	return renderHeader(v)
}

// LinkTable is an insertion-ordered table of link reference
// definitions, keyed by lowercased id. Entries that do not correspond
// to any version name are preserved verbatim across a round trip.
type LinkTable struct {
	ids  []string
	urls map[string]string
}

// NewLinkTable returns an empty link table.
func NewLinkTable() *LinkTable {
	return &LinkTable{urls: make(map[string]string)}
}

// Set adds or replaces a link. New ids keep first-appearance order.
func (t *LinkTable) Set(id, url string) {
	key := normalizeLinkID(id)
	if _, ok := t.urls[key]; !ok {
		t.ids = append(t.ids, key)
	}
	t.urls[key] = url
}

// Get looks up a link by id, case-insensitively.
func (t *LinkTable) Get(id string) (string, bool) {
	url, ok := t.urls[normalizeLinkID(id)]
	return url, ok
}

// IDs returns the link ids in first-appearance order.
func (t *LinkTable) IDs() []string {
	return append([]string(nil), t.ids...)
}

// Len returns the number of links in the table.
func (t *LinkTable) Len() int {
	return len(t.ids)
}

func normalizeLinkID(id string) string {
	return strings.ToLower(id)
}

// clone returns an independent copy of the table.
func (t *LinkTable) clone() *LinkTable {
	out := NewLinkTable()
	for _, id := range t.ids {
		out.Set(id, t.urls[id])
	}
	return out
}
