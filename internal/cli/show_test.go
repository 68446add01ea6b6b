package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const showFixture = `# Changelog

## Unreleased

- pending change

## 1.0.0 "Eagle" - 2021-04-19 [YANKED]

### Added

- first feature

## 0.9.0 - 2021-01-01

- beta things
`

func TestShow_DefaultsToCurrentVersion(t *testing.T) {
	setupWorkdir(t)
	writeFile(t, "CHANGELOG.md", showFixture)

	out, err := runCLI(t, "", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Unreleased")
	assert.Contains(t, out, "- pending change")
	assert.NotContains(t, out, "first feature")
}

func TestShow_NamedVersions(t *testing.T) {
	setupWorkdir(t)
	writeFile(t, "CHANGELOG.md", showFixture)

	out, err := runCLI(t, "", "show", "0.9.0")
	require.NoError(t, err)
	assert.Contains(t, out, "beta things")
	assert.NotContains(t, out, "pending change")
}

func TestShow_All(t *testing.T) {
	setupWorkdir(t)
	writeFile(t, "CHANGELOG.md", showFixture)

	out, err := runCLI(t, "", "show", "--all")
	require.NoError(t, err)
	assert.Equal(t, showFixture, out)
}

func TestShow_FieldFlags(t *testing.T) {
	tests := map[string]struct {
		flag string
		want string
	}{
		"name":    {"--name", "1.0.0 \"Eagle\"\n"},
		"header":  {"--header", "1.0.0 \"Eagle\" - 2021-04-19 [YANKED]\n"},
		"version": {"--version", "1.0.0\n"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			setupWorkdir(t)
			writeFile(t, "CHANGELOG.md", showFixture)

			out, err := runCLI(t, "", "show", tt.flag, "1.0.0 \"Eagle\"")
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestShow_Body(t *testing.T) {
	setupWorkdir(t)
	writeFile(t, "CHANGELOG.md", showFixture)

	out, err := runCLI(t, "", "show", "--body", "1.0.0 \"Eagle\"")
	require.NoError(t, err)
	assert.Equal(t, "### Added\n\n- first feature\n", out)
}

func TestShow_VersionWithoutToken(t *testing.T) {
	setupWorkdir(t)
	writeFile(t, "CHANGELOG.md", showFixture)

	_, err := runCLI(t, "", "show", "--version", "Unreleased")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no version number")
}

func TestShow_YAML(t *testing.T) {
	setupWorkdir(t)
	writeFile(t, "CHANGELOG.md", showFixture)

	out, err := runCLI(t, "", "show", "--yaml", "1.0.0 \"Eagle\"")
	require.NoError(t, err)

	var projection []map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(out), &projection))
	require.Len(t, projection, 1)
	assert.Equal(t, "1.0.0 \"Eagle\"", projection[0]["name"])
	assert.Equal(t, "1.0.0", projection[0]["version"])
	assert.Equal(t, "2021-04-19", projection[0]["date"])
}

func TestShow_UnknownVersion(t *testing.T) {
	setupWorkdir(t)
	writeFile(t, "CHANGELOG.md", showFixture)

	_, err := runCLI(t, "", "show", "2.0.0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestShow_MarkdownFlag(t *testing.T) {
	setupWorkdir(t)
	writeFile(t, "CHANGELOG.md", showFixture)

	out, err := runCLI(t, "", "show", "--markdown", "1.0.0 \"Eagle\"")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "## [1.0.0 \"Eagle\"]") ||
		strings.HasPrefix(out, "## 1.0.0 \"Eagle\""))
	assert.Contains(t, out, "### Added")
}
