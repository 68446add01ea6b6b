package changelog

import (
	"fmt"
	"regexp"
	"strings"
)

// TagError is returned when a tag fails the format rules: tags are
// uppercase ASCII letters and digits, with no spaces.
type TagError struct {
	Tag string
}

func (e *TagError) Error() string {
	return fmt.Sprintf("invalid tag %q: tags must be uppercase letters and digits", e.Tag)
}

// TagNotFoundError is returned when removing a tag a version does not
// have.
type TagNotFoundError struct {
	Tag     string
	Version string
}

func (e *TagNotFoundError) Error() string {
	return fmt.Sprintf("tag %q not found in version %q", e.Tag, e.Version)
}

var tagFormatRegex = regexp.MustCompile(`^[A-Z0-9]+$`)

// AddTag appends a bracket tag to the version header. The tag must
// already be uppercase with no spaces; the document is unchanged on
// error.
func (v *Version) AddTag(tag string) error {
	if !tagFormatRegex.MatchString(tag) {
		return &TagError{Tag: tag}
	}
	v.Tags = append(v.Tags, tag)
	return nil
}

// RemoveTag removes the first occurrence of a tag from the version
// header.
func (v *Version) RemoveTag(tag string) error {
	for i, t := range v.Tags {
		if t == tag {
			v.Tags = append(v.Tags[:i], v.Tags[i+1:]...)
			return nil
		}
	}
	return &TagNotFoundError{Tag: tag, Version: v.Name}
}

// AddEntry appends one change entry to the named section of the given
// version, creating the section if absent. Section names are
// canonicalized to title case, so "added" and "Added" address the same
// section; an empty name addresses the uncategorized section. The
// entry's block kind is inferred from its text, so bullets stay list
// items and plain text stays a paragraph.
func (v *Version) AddEntry(sectionName, text string) {
	section := v.findOrCreateSection(sectionName)
	section.Entries = append(section.Entries, Block{
		Kind:  classify(text),
		Lines: strings.Split(text, "\n"),
	})
}

func (v *Version) findOrCreateSection(name string) *Section {
	if name == "" {
		return v.uncategorized()
	}

	name = titleCase(name)
	if s := v.Section(name); s != nil {
		return s
	}

	// new sections go after any pre-existing ones
	s := &Section{Name: name}
	v.Sections = append(v.Sections, s)
	return s
}

// AddEntry appends an entry to the current version's section,
// creating the section if absent.
func (d *Document) AddEntry(sectionName, text string) error {
	current, err := d.CurrentVersion()
	if err != nil {
		return err
	}
	current.AddEntry(sectionName, text)
	return nil
}

// EnsureUnreleased returns the document's unreleased version, inserting
// a fresh Unreleased sentinel at the top when none exists. Used when
// recording changes after the newest version has already been released.
func (d *Document) EnsureUnreleased() *Version {
	if v := d.Unreleased(); v != nil {
		return v
	}
	v := NewVersion(UnreleasedName)
	d.Versions = append([]*Version{v}, d.Versions...)
	return v
}

// InsertLink associates a URL with a version name. When a version with
// that name exists it becomes the version's link; otherwise the URL is
// recorded in the link table and passed through on serialize.
func (d *Document) InsertLink(versionName, url string) {
	for _, v := range d.Versions {
		if v.Name == versionName {
			v.Link = url
			v.LinkID = ""
			return
		}
	}
	d.Links.Set(versionName, url)
}
