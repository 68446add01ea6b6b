package changelog

import (
	"regexp"
	"strings"
	"time"
)

// Header is the interpreted form of a version heading line.
type Header struct {
	Name string
	Date time.Time
	Tags []string

	// Link metadata when the name itself was a Markdown link.
	Link   string
	LinkID string
}

var (
	dateTokenRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	linkLitRegex   = regexp.MustCompile(`^\[(?P<text>.*?)]\((?P<url>.*?)\)$`)
	linkDeferRegex = regexp.MustCompile(`^\[(?P<text>.*?)]\[(?P<id>.*?)]$`)
)

// ParseHeader interprets a version heading. Working right to left it
// strips trailing "[TAG]" groups, then a trailing ISO-8601 date with its
// optional " - " separator; what remains is the name, which may itself
// be a Markdown link. A header whose date token does not parse as a
// real calendar date is malformed: the whole text becomes the name and
// no tags or date are extracted.
func ParseHeader(heading string) Header {
	text := strings.TrimSpace(strings.TrimLeft(heading, "#"))

	rest, tags := stripTrailingTags(text)
	rest, date, ok := stripTrailingDate(rest)
	if !ok {
		return Header{Name: text}
	}

	name := strings.TrimSpace(rest)
	name = strings.TrimSuffix(name, " -")

	h := Header{Name: name, Date: date, Tags: tags}
	h.Name, h.Link, h.LinkID = stripLink(h.Name)
	return h
}

// stripTrailingTags removes bracket groups from the end of the text,
// innermost last. Each group must be preceded by whitespace, so
// "[Name]" alone and run-together "[Foo][Bar]" stay part of the name.
func stripTrailingTags(text string) (string, []string) {
	var tags []string

	rest := strings.TrimRight(text, " \t")
	for strings.HasSuffix(rest, "]") {
		open := strings.LastIndexByte(rest, '[')
		if open <= 0 || !isSpace(rest[open-1]) {
			break
		}
		inner := rest[open+1 : len(rest)-1]
		if strings.ContainsAny(inner, "[]") {
			break
		}
		tags = append([]string{strings.ToUpper(inner)}, tags...)
		rest = strings.TrimRight(rest[:open], " \t")
	}

	return rest, tags
}

// stripTrailingDate removes a trailing ISO-8601 date token. The date
// must be preceded by whitespace so a header that is nothing but a date
// keeps it as the name. ok is false when a date-shaped token fails to
// parse as a real calendar date.
func stripTrailingDate(text string) (string, time.Time, bool) {
	const dateLen = len("2006-01-02")

	if len(text) <= dateLen {
		return text, time.Time{}, true
	}
	token := text[len(text)-dateLen:]
	if !dateTokenRegex.MatchString(token) || !isSpace(text[len(text)-dateLen-1]) {
		return text, time.Time{}, true
	}

	date, err := time.Parse(DateLayout, token)
	if err != nil {
		return "", time.Time{}, false
	}

	return strings.TrimRight(text[:len(text)-dateLen], " \t"), date, true
}

// stripLink unwraps a name that is entirely a Markdown link, returning
// the inner text plus the literal URL or the deferred reference id.
// Anything else is returned verbatim.
func stripLink(name string) (text, url, id string) {
	if m := linkLitRegex.FindStringSubmatch(name); m != nil {
		return m[1], m[2], ""
	}
	if m := linkDeferRegex.FindStringSubmatch(name); m != nil {
		return m[1], "", normalizeLinkID(m[2])
	}
	return name, "", ""
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
