package changelog

import (
	"regexp"
	"strings"
)

// Parse is the text → Document entry point: Split then Build.
func Parse(text string) *Document {
	return Build(Split(text))
}

// Build assembles a block sequence into a Document. It is total: any
// block sequence yields a valid (possibly nearly empty) document.
// Blocks before the first level-2 heading form the preamble, each
// level-2 heading opens a version, each level-3 heading opens a section
// within it, and everything else becomes entries. Link reference
// definitions are collected into the link table wherever they appear.
func Build(blocks []Block) *Document {
	doc := &Document{Links: NewLinkTable()}

	var version *Version
	var section *Section

	for _, b := range blocks {
		switch {
		case b.Kind == KindLinkDef:
			doc.Links.Set(b.LinkID, b.LinkURL)

		case b.Kind == KindHeading && b.Level == 2:
			version = versionFromBlock(b)
			doc.Versions = append(doc.Versions, version)
			section = nil

		case version == nil:
			doc.Preamble = append(doc.Preamble, b)

		case b.Kind == KindHeading && b.Level == 3:
			// duplicate names intentionally create separate sections;
			// input variation, not an error
			section = &Section{Name: b.HeadingText()}
			version.Sections = append(version.Sections, section)

		default:
			if section == nil {
				section = version.uncategorized()
			}
			section.Entries = append(section.Entries, b)
		}
	}

	resolveLinks(doc)
	return doc
}

// versionFromBlock interprets an H2 block as a version header.
func versionFromBlock(b Block) *Version {
	h := ParseHeader(b.Text())
	return &Version{
		Name:   h.Name,
		Date:   h.Date,
		Tags:   h.Tags,
		Link:   h.Link,
		LinkID: h.LinkID,
		LineNo: b.LineNo,
	}
}

var bracketedNameRegex = regexp.MustCompile(`^\[(.*)]$`)

// resolveLinks matches version names against the link table. A bare
// "[Name]" whose lowercased inner text is a known link id is unwrapped
// and linked; a deferred "[name][id]" reference is resolved by id.
// Unmatched bracketed names are left exactly as written.
func resolveLinks(doc *Document) {
	for _, v := range doc.Versions {
		if m := bracketedNameRegex.FindStringSubmatch(v.Name); m != nil {
			if url, ok := doc.Links.Get(m[1]); ok {
				v.Name = m[1]
				v.Link = url
				v.LinkID = ""
			}
		} else if v.LinkID != "" {
			if url, ok := doc.Links.Get(v.LinkID); ok {
				v.Link = url
			}
		}
	}
}

// uncategorized returns the version's unnamed section, creating it at
// the front so uncategorized entries always render before any H3.
func (v *Version) uncategorized() *Section {
	if len(v.Sections) > 0 && v.Sections[0].Name == "" {
		return v.Sections[0]
	}
	s := &Section{}
	v.Sections = append([]*Section{s}, v.Sections...)
	return s
}

// titleCase uppercases the first letter of each space-separated word,
// matching how section names are canonicalized when entries are added
// ("bug fixes" and "Bug Fixes" address the same section).
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
