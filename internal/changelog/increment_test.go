package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrement_Bumps(t *testing.T) {
	tests := map[string]struct {
		base      string
		directive Directive
		expected  string
	}{
		"major":          {"1.0.0", Directive{Bump: BumpMajor}, "2.0.0"},
		"minor":          {"1.2.3", Directive{Bump: BumpMinor}, "1.3.0"},
		"micro":          {"1.2.3", Directive{Bump: BumpMicro}, "1.2.4"},
		"major rc":       {"1.0.0", Directive{Bump: BumpMajor, PreLabel: "rc"}, "2.0.0rc1"},
		"minor alpha":    {"1.2.3", Directive{Bump: BumpMinor, PreLabel: "a"}, "1.3.0a1"},
		"pre bump":       {"1.0.0rc1", Directive{PreBump: true}, "1.0.0rc2"},
		"no flags":       {"1.0.0rc2", Directive{}, "1.0.0rc2"},
		"label only":     {"2.0.0", Directive{PreLabel: "b", PreNumber: 3}, "2.0.0b3"},
		"explicit":       {"1.2.3", Directive{Explicit: "4.0.0"}, "4.0.0"},
		"two segments":   {"1.2", Directive{Bump: BumpMicro}, "1.3"},
		"bump drops pre": {"2.0.0rc1", Directive{Bump: BumpMicro}, "2.0.1"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := Parse("## Unreleased\n\n- a change\n\n## " + tt.base + " - 2021-01-01")

			release, err := Increment(doc, tt.directive, date("2021-04-19"))
			require.NoError(t, err)

			assert.Equal(t, tt.expected, release.Version.String())
			assert.Equal(t, "Unreleased", release.OldName)
			assert.Equal(t, tt.expected, release.NewName)

			assert.Equal(t, tt.expected, doc.Versions[0].Name)
			assert.Equal(t, date("2021-04-19"), doc.Versions[0].Date)
			assert.Equal(t, tt.base, doc.Versions[1].Name, "older versions stay untouched")
		})
	}
}

func TestIncrement_SplicesNameTemplate(t *testing.T) {
	doc := Parse("## Unreleased\n\n- a change\n\n## 0.13.0 \"Aquarius\" - 2021-01-01 [YANKED]")

	release, err := Increment(doc, Directive{Bump: BumpMicro}, date("2021-04-19"))
	require.NoError(t, err)

	// the token is replaced in place; surrounding text carries over
	assert.Equal(t, "0.13.1 \"Aquarius\"", release.NewName)
	assert.Equal(t, "0.13.1 \"Aquarius\"", doc.Versions[0].Name)
	assert.Empty(t, doc.Versions[0].Tags, "tags do not carry over to the new version")
}

func TestIncrement_ReleaseHistory(t *testing.T) {
	doc := Parse(strings.Join([]string{
		"# Changelog",
		"",
		"## 0.13.0 \"Aquarius\" - 1970-04-11 [YANKED]",
		"",
		"- splashdown",
		"",
		"## 0.12.0 \"Intrepid\" - 1969-11-14",
		"",
		"## 0.11.0 \"Eagle\" - 1969-07-20",
	}, "\n"))

	require.Len(t, doc.Versions, 3)

	current, err := doc.CurrentVersion()
	require.NoError(t, err)
	token, _, _, ok := current.Token()
	require.True(t, ok)
	assert.Equal(t, "0.13.0", token.String())
	assert.Equal(t, []string{"YANKED"}, current.Tags)

	release, err := Increment(doc, Directive{Bump: BumpMicro}, date("1970-04-17"))
	require.NoError(t, err)
	assert.Equal(t, "0.13.1 \"Aquarius\"", release.NewName)
	assert.Equal(t, "0.12.0 \"Intrepid\"", doc.Versions[1].Name)
	assert.Equal(t, "0.11.0 \"Eagle\"", doc.Versions[2].Name)
}

func TestIncrement_SkipsUntokenizedVersions(t *testing.T) {
	doc := Parse("## Unreleased\n\n- a change\n\n## Some Prototype\n\n## 1.5.0 - 2021-01-01")

	release, err := Increment(doc, Directive{Bump: BumpMinor}, date("2021-04-19"))
	require.NoError(t, err)

	assert.Equal(t, "1.6.0", release.NewName)
	assert.Equal(t, "Some Prototype", doc.Versions[1].Name)
}

func TestIncrement_NoVersion(t *testing.T) {
	doc := Parse("## Unreleased\n\n- a change")

	_, err := Increment(doc, Directive{Bump: BumpMajor}, date("2021-04-19"))

	var noVersion *NoVersionError
	require.ErrorAs(t, err, &noVersion)
	assert.Equal(t, "Unreleased", doc.Versions[0].Name, "document unchanged on error")
	assert.True(t, doc.Versions[0].Date.IsZero())
}

func TestIncrement_NoPreRelease(t *testing.T) {
	doc := Parse("## Unreleased\n\n- a change\n\n## 1.0.0 - 2021-01-01")

	_, err := Increment(doc, Directive{PreBump: true}, date("2021-04-19"))

	var noPre *NoPreReleaseError
	require.ErrorAs(t, err, &noPre)
	assert.Equal(t, "1.0.0", noPre.Version)
	assert.Equal(t, "Unreleased", doc.Versions[0].Name, "document unchanged on error")
}

func TestIncrement_InvalidExplicit(t *testing.T) {
	doc := Parse("## Unreleased\n\n- a change\n\n## 1.0.0 - 2021-01-01")

	_, err := Increment(doc, Directive{Explicit: "not.a.version!"}, date("2021-04-19"))

	require.Error(t, err)
	assert.Equal(t, "Unreleased", doc.Versions[0].Name, "document unchanged on error")
}

func TestDirective_String(t *testing.T) {
	tests := map[string]Directive{
		"major":            {Bump: BumpMajor},
		"micro":            {Bump: BumpMicro},
		"major rc":         {Bump: BumpMajor, PreLabel: "rc"},
		"rc":               {PreLabel: "rc"},
		"prerelease bump":  {PreBump: true},
		`explicit "1.0.0"`: {Explicit: "1.0.0"},
	}

	for expected, directive := range tests {
		assert.Equal(t, expected, directive.String())
	}
}
