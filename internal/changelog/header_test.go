package changelog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestParseHeader_Names(t *testing.T) {
	tests := map[string]struct {
		header string
		name   string
	}{
		"short":         {"## Test", "Test"},
		"with dash":     {"## Test - ", "Test"},
		"multi word":    {"## Very long version name 1.0.0", "Very long version name 1.0.0"},
		"with brackets": {"## [Test]", "[Test]"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := ParseHeader(tt.header)
			assert.Equal(t, tt.name, h.Name)
			assert.Empty(t, h.Tags)
			assert.True(t, h.Date.IsZero())
			assert.Empty(t, h.Link)
			assert.Empty(t, h.LinkID)
		})
	}
}

func TestParseHeader_Tags(t *testing.T) {
	tests := map[string]struct {
		header string
		name   string
		tags   []string
	}{
		"no dash":              {"## Test [Foo] [Bar]", "Test", []string{"FOO", "BAR"}},
		"with dash":            {"## Test - [Foo] [Bar]", "Test", []string{"FOO", "BAR"}},
		"with brackets":        {"## [Test] [Foo] [Bar]", "[Test]", []string{"FOO", "BAR"}},
		"with brackets & dash": {"## [Test] - [Foo] [Bar]", "[Test]", []string{"FOO", "BAR"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := ParseHeader(tt.header)
			assert.Equal(t, tt.name, h.Name)
			assert.Equal(t, tt.tags, h.Tags)
			assert.True(t, h.Date.IsZero())
		})
	}
}

func TestParseHeader_Dates(t *testing.T) {
	tests := map[string]struct {
		header string
		name   string
		date   time.Time
		tags   []string
	}{
		"plain":       {"## Test 1961-04-12", "Test", date("1961-04-12"), nil},
		"with dash":   {"## Test - 1969-07-20", "Test", date("1969-07-20"), nil},
		"two dates":   {"## 1981-07-20 1988-11-15", "1981-07-20", date("1988-11-15"), nil},
		"single date": {"## 2020-05-30", "2020-05-30", time.Time{}, nil},
		"with tags": {"## 1.0.0 - 2021-04-19 [Foo] [Bar]", "1.0.0",
			date("2021-04-19"), []string{"FOO", "BAR"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			h := ParseHeader(tt.header)
			assert.Equal(t, tt.name, h.Name)
			assert.Equal(t, tt.date, h.Date)
			assert.Equal(t, tt.tags, h.Tags)
		})
	}
}

func TestParseHeader_Noncompliant(t *testing.T) {
	// headers that don't fit the schema degrade to a bare name with
	// nothing extracted
	tests := map[string]string{
		"no space between tags": "Test [Foo][Bar]",
		"text at end":           "Test [Foo] [Bar] Test",
		"invalid date":          "Test - 9999-99-99",
	}

	for name, header := range tests {
		t.Run(name, func(t *testing.T) {
			h := ParseHeader("## " + header)
			assert.Equal(t, header, h.Name)
			assert.Empty(t, h.Tags)
			assert.True(t, h.Date.IsZero())
		})
	}
}

func TestParseHeader_Links(t *testing.T) {
	literal := ParseHeader("## [1.0.0](http://example.com/1.0.0)")
	assert.Equal(t, "1.0.0", literal.Name)
	assert.Equal(t, "http://example.com/1.0.0", literal.Link)
	assert.Empty(t, literal.LinkID)

	deferred := ParseHeader("## [1.0.0][Release-1]")
	assert.Equal(t, "1.0.0", deferred.Name)
	assert.Empty(t, deferred.Link)
	assert.Equal(t, "release-1", deferred.LinkID)
}

func TestParseHeader_TokenExtraction(t *testing.T) {
	h := ParseHeader("## Version 8.0.0rc1 1988-11-15 [PRERELEASE]")
	assert.Equal(t, "Version 8.0.0rc1", h.Name)
	assert.Equal(t, date("1988-11-15"), h.Date)
	assert.Equal(t, []string{"PRERELEASE"}, h.Tags)

	v := Version{Name: h.Name}
	token, start, end, ok := v.Token()
	assert.True(t, ok)
	assert.Equal(t, "8.0.0rc1", h.Name[start:end])
	assert.Equal(t, "8.0.0rc1", token.String())
}
