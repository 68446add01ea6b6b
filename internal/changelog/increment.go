package changelog

import (
	"fmt"
	"time"

	"github.com/drewcassidy/yaclog/internal/pepver"
)

// Bump selects which release segment a directive increments.
type Bump int

const (
	// BumpNone leaves the release segments alone.
	BumpNone Bump = iota
	// BumpMajor increments the first release segment.
	BumpMajor
	// BumpMinor increments the second release segment.
	BumpMinor
	// BumpMicro increments the last release segment.
	BumpMicro
)

func (b Bump) String() string {
	switch b {
	case BumpMajor:
		return "major"
	case BumpMinor:
		return "minor"
	case BumpMicro:
		return "micro"
	default:
		return "none"
	}
}

// Directive describes one version transition. Exactly one of Explicit,
// PreBump, or a Bump (optionally combined with PreLabel) is typically
// set; PreLabel alone attaches or replaces a pre-release segment
// without touching the release segments.
type Directive struct {
	// Bump increments a release segment and clears pre/post/dev.
	Bump Bump
	// PreLabel sets the pre-release segment to this label and
	// PreNumber ("rc" + 1 turns "2.0.0" into "2.0.0rc1").
	PreLabel string
	// PreNumber is the number used with PreLabel; 0 means 1.
	PreNumber int
	// PreBump increments the existing pre-release number instead.
	PreBump bool
	// Explicit replaces the token with a literal version string.
	Explicit string
}

func (d Directive) String() string {
	switch {
	case d.Explicit != "":
		return fmt.Sprintf("explicit %q", d.Explicit)
	case d.PreBump:
		return "prerelease bump"
	case d.PreLabel != "" && d.Bump != BumpNone:
		return d.Bump.String() + " " + d.PreLabel
	case d.PreLabel != "":
		return d.PreLabel
	default:
		return d.Bump.String()
	}
}

// Release is the result of a successful increment.
type Release struct {
	// Version is the computed PEP 440 token.
	Version pepver.Version
	// OldName and NewName are the renamed version's name before and
	// after the transition.
	OldName string
	NewName string
}

// NoVersionError is returned when no version in the document carries a
// parseable PEP 440 token to increment from.
type NoVersionError struct{}

func (e *NoVersionError) Error() string {
	return "changelog has no version with a PEP 440 version number"
}

// NoPreReleaseError is returned when a pre-release bump is requested
// but the base version has no pre-release segment.
type NoPreReleaseError struct {
	Version string
}

func (e *NoPreReleaseError) Error() string {
	return fmt.Sprintf("version %q has no pre-release segment to increment", e.Version)
}

// BaseVersion returns the newest version carrying a valid PEP 440
// token, together with the token. Unreleased and untokenized headers
// are skipped. This is the version increments are computed from.
func (d *Document) BaseVersion() (*Version, pepver.Version, error) {
	for _, v := range d.Versions {
		if token, _, _, ok := v.Token(); ok {
			return v, token, nil
		}
	}
	return nil, pepver.Version{}, &NoVersionError{}
}

// Increment computes a new version token from the newest tokenized
// version per the directive, splices it into that version's name
// template, and applies the result to the document's first version:
// the first version is renamed (replacing the Unreleased sentinel name
// entirely, if that is what it is) and stamped with the given date.
// No other version is touched, and on error the document is unchanged.
func Increment(doc *Document, directive Directive, date time.Time) (*Release, error) {
	base, token, err := doc.BaseVersion()
	if err != nil {
		return nil, err
	}
	_, start, end, _ := base.Token()

	next, err := applyDirective(token, directive, base.Name)
	if err != nil {
		return nil, err
	}

	newName := base.Name[:start] + next.String() + base.Name[end:]

	current := doc.Versions[0]
	release := &Release{Version: next, OldName: current.Name, NewName: newName}

	current.Name = newName
	current.Date = date
	return release, nil
}

// applyDirective performs the version arithmetic for Increment.
func applyDirective(token pepver.Version, d Directive, baseName string) (pepver.Version, error) {
	if d.Explicit != "" {
		return pepver.Parse(d.Explicit)
	}

	switch d.Bump {
	case BumpMajor:
		token = token.BumpRelease(0)
	case BumpMinor:
		token = token.BumpRelease(1)
	case BumpMicro:
		token = token.BumpRelease(len(token.Release) - 1)
	}

	if d.PreBump {
		bumped, ok := token.BumpPre()
		if !ok {
			return pepver.Version{}, &NoPreReleaseError{Version: baseName}
		}
		return bumped, nil
	}

	if d.PreLabel != "" {
		number := d.PreNumber
		if number == 0 {
			number = 1
		}
		token = token.WithPre(d.PreLabel, number)
	}

	return token, nil
}
