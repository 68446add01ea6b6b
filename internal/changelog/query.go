package changelog

import (
	"fmt"
	"strings"
)

// VersionNotFoundError is returned when a requested version name does
// not exist in the document.
type VersionNotFoundError struct {
	Name      string
	Available []string
}

func (e *VersionNotFoundError) Error() string {
	return fmt.Sprintf("version %q not found in changelog (available: %s)",
		e.Name, strings.Join(e.Available, ", "))
}

// EmptyChangelogError is returned when an operation needs a current
// version and the document has none.
type EmptyChangelogError struct{}

func (e *EmptyChangelogError) Error() string {
	return "changelog has no versions"
}

// CurrentVersion returns the document's first version: the Unreleased
// sentinel when present, otherwise the newest version.
func (d *Document) CurrentVersion() (*Version, error) {
	if len(d.Versions) == 0 {
		return nil, &EmptyChangelogError{}
	}
	return d.Versions[0], nil
}

// GetVersion returns the version with exactly the given name.
func (d *Document) GetVersion(name string) (*Version, error) {
	for _, v := range d.Versions {
		if v.Name == name {
			return v, nil
		}
	}
	return nil, &VersionNotFoundError{Name: name, Available: d.ListVersions()}
}

// Unreleased returns the unreleased sentinel version, or nil. The
// comparison is case-insensitive on lookup so a hand-written
// "## unreleased" header is still found.
func (d *Document) Unreleased() *Version {
	for _, v := range d.Versions {
		if strings.EqualFold(v.Name, UnreleasedName) {
			return v
		}
	}
	return nil
}

// ListVersions returns all version names in document order.
func (d *Document) ListVersions() []string {
	names := make([]string, len(d.Versions))
	for i, v := range d.Versions {
		names[i] = v.Name
	}
	return names
}
