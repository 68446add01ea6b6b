package cli

import (
	"testing"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const releaseFixture = `## Unreleased

- pending change

## 1.2.3 - 2021-04-19

- old change
`

func TestRelease_Bumps(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"major":    {[]string{"--major"}, "## 2.0.0"},
		"minor":    {[]string{"--minor"}, "## 1.3.0"},
		"patch":    {[]string{"--patch"}, "## 1.2.4"},
		"major rc": {[]string{"--major", "--rc"}, "## 2.0.0rc1"},
		"explicit": {[]string{"--version", "5.0.0"}, "## 5.0.0"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			setupWorkdir(t)
			writeFile(t, "CHANGELOG.md", releaseFixture)

			out, err := runCLI(t, "", append([]string{"release"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, "Renamed version")

			content := readFile(t, "CHANGELOG.md")
			assert.Contains(t, content, tt.want)
			assert.Contains(t, content, "## 1.2.3 - 2021-04-19", "history stays untouched")
			assert.NotContains(t, content, "Unreleased")
		})
	}
}

func TestRelease_PreBumpExisting(t *testing.T) {
	setupWorkdir(t)
	writeFile(t, "CHANGELOG.md", "## Unreleased\n\n- more fixes\n\n## 2.0.0rc1 - 2021-04-19\n")

	_, err := runCLI(t, "", "release", "--rc")
	require.NoError(t, err)

	assert.Contains(t, readFile(t, "CHANGELOG.md"), "## 2.0.0rc2")
}

func TestRelease_PreLabelSwitch(t *testing.T) {
	setupWorkdir(t)
	writeFile(t, "CHANGELOG.md", "## Unreleased\n\n- stabilizing\n\n## 2.0.0b2 - 2021-04-19\n")

	_, err := runCLI(t, "", "release", "--rc")
	require.NoError(t, err)

	assert.Contains(t, readFile(t, "CHANGELOG.md"), "## 2.0.0rc1")
}

func TestRelease_ConfirmsRenamingRelease(t *testing.T) {
	setupWorkdir(t)
	writeFile(t, "CHANGELOG.md", "## 1.2.3 - 2021-04-19\n\n- only change\n")

	// declined: exits nonzero, file untouched
	_, err := runCLI(t, "n\n", "release", "--minor")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, readFile(t, "CHANGELOG.md"), "## 1.2.3")

	// accepted: renamed in place
	_, err = runCLI(t, "y\n", "release", "--minor")
	require.NoError(t, err)
	assert.Contains(t, readFile(t, "CHANGELOG.md"), "## 1.3.0")
}

func TestRelease_NoVersionNumber(t *testing.T) {
	setupWorkdir(t)
	writeFile(t, "CHANGELOG.md", "## Unreleased\n\n- a change\n")

	_, err := runCLI(t, "", "release", "--minor")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no version")
}

func TestRelease_InvalidExplicitVersion(t *testing.T) {
	setupWorkdir(t)
	writeFile(t, "CHANGELOG.md", releaseFixture)

	_, err := runCLI(t, "", "release", "--version", "not.a.version!")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid version number")
}

func TestRelease_CommitAndTag(t *testing.T) {
	dir := setupWorkdir(t)

	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)
	cfg, err := repo.Config()
	require.NoError(t, err)
	cfg.User.Name = "Tester"
	cfg.User.Email = "tester@example.com"
	require.NoError(t, repo.SetConfig(cfg))

	writeFile(t, "CHANGELOG.md", releaseFixture)
	writeFile(t, ".yaclog.yml", "tag_prefix: v\n")

	out, err := runCLI(t, "", "release", "--minor", "--commit", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Created commit")
	assert.Contains(t, out, `Created tag "v1.3.0"`)

	_, err = repo.Reference(plumbing.NewTagReferenceName("v1.3.0"), false)
	assert.NoError(t, err, "annotated tag should exist")
}

func TestRelease_CommitOutsideRepo(t *testing.T) {
	setupWorkdir(t)
	writeFile(t, "CHANGELOG.md", releaseFixture)

	_, err := runCLI(t, "", "release", "--minor", "--commit", "--yes")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a git repository")
}
