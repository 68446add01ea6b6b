package changelog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formatted(t *testing.T, v *Version, opts FormatOptions) string {
	t.Helper()
	var sb strings.Builder
	opts.Plain = true
	require.NoError(t, FormatVersion(v, &sb, opts))
	return sb.String()
}

func TestFormatVersion_Terminal(t *testing.T) {
	doc := Parse("## 1.0.0 - 2021-04-19\n\n### Added\n\n- a feature")

	out := formatted(t, doc.Versions[0], FormatOptions{})

	assert.Equal(t, "1.0.0 - 2021-04-19\n\nADDED\n\n- a feature\n", out)
}

func TestFormatVersion_Markdown(t *testing.T) {
	doc := Parse("## 1.0.0 - 2021-04-19\n\n### Added\n\n- a feature")

	out := formatted(t, doc.Versions[0], FormatOptions{Markdown: true})

	assert.Equal(t, "## 1.0.0 - 2021-04-19\n\n### Added\n\n- a feature\n", out)
}

func TestFormatVersion_EmptyBody(t *testing.T) {
	doc := Parse("## 1.0.0 - 2021-04-19")

	out := formatted(t, doc.Versions[0], FormatOptions{})

	assert.Equal(t, "1.0.0 - 2021-04-19\n", out)
}

func TestHeaderLine(t *testing.T) {
	doc := Parse("## [1.0.0] - 2021-04-19 [YANKED]\n\n[1.0.0]: http://example.com")

	assert.Equal(t, "[1.0.0] - 2021-04-19 [YANKED]", HeaderLine(doc.Versions[0]))
}
