// Package pepver implements PEP 440 version numbers as an explicit value
// type: an epoch, a release segment tuple, and optional pre-release,
// post-release, dev-release and local segments. It supports parsing,
// normalized rendering, ordering, and extracting a version embedded in
// free-form text (such as a changelog version name).
package pepver

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Pre is a pre-release segment: a normalized label ("a", "b" or "rc")
// and a number. "1.0.0rc1" has Pre{Label: "rc", Number: 1}.
type Pre struct {
	Label  string
	Number int
}

// Version is a parsed PEP 440 version number.
// Pre, Post and Dev are nil when the corresponding segment is absent.
type Version struct {
	Epoch   int
	Release []int
	Pre     *Pre
	Post    *int
	Dev     *int
	Local   string
}

// InvalidVersionError is returned when a string does not match the
// PEP 440 grammar.
type InvalidVersionError struct {
	Input string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("invalid PEP 440 version %q", e.Input)
}

// versionCore is the grammar from the PEP 440 appendix, minus the
// anchors, translated from the packaging module's VERSION_PATTERN.
const versionCore = `v?` +
	`(?:(?P<epoch>[0-9]+)!)?` +
	`(?P<release>[0-9]+(?:\.[0-9]+)*)` +
	`(?P<pre>[-_\.]?(?P<prelabel>alpha|a|beta|b|preview|pre|c|rc)[-_\.]?(?P<prenum>[0-9]+)?)?` +
	`(?P<post>(?:-(?P<postnum1>[0-9]+))|(?:[-_\.]?(?P<postlabel>post|rev|r)[-_\.]?(?P<postnum2>[0-9]+)?))?` +
	`(?P<dev>[-_\.]?dev[-_\.]?(?P<devnum>[0-9]+)?)?` +
	`(?:\+(?P<local>[a-z0-9]+(?:[-_\.][a-z0-9]+)*))?`

var (
	fullRegex   = regexp.MustCompile(`(?i)^\s*` + versionCore + `\s*$`)
	searchRegex = regexp.MustCompile(`(?i)` + versionCore)
)

// Parse parses a complete PEP 440 version string. Surrounding whitespace
// and a leading "v" are tolerated, as pip tolerates them.
func Parse(s string) (Version, error) {
	m := fullRegex.FindStringSubmatch(s)
	if m == nil {
		return Version{}, &InvalidVersionError{Input: s}
	}
	return fromMatch(fullRegex, m), nil
}

// MustParse parses a version string and panics on failure.
// Intended for tests and compile-time constants.
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Extract scans text for the leftmost substring matching the PEP 440
// grammar. It returns the parsed version and the byte offsets of the
// match, so callers can splice a replacement back into the text without
// disturbing the surrounding characters. ok is false when no version is
// present.
func Extract(text string) (v Version, start, end int, ok bool) {
	loc := searchRegex.FindStringSubmatchIndex(text)
	if loc == nil {
		return Version{}, -1, -1, false
	}
	m := make([]string, len(loc)/2)
	for i := range m {
		if loc[2*i] >= 0 {
			m[i] = text[loc[2*i]:loc[2*i+1]]
		}
	}
	return fromMatch(searchRegex, m), loc[0], loc[1], true
}

// fromMatch builds a normalized Version from regexp submatches.
func fromMatch(re *regexp.Regexp, m []string) Version {
	group := func(name string) string {
		return m[re.SubexpIndex(name)]
	}

	var v Version

	if e := group("epoch"); e != "" {
		v.Epoch = mustAtoi(e)
	}

	for _, seg := range strings.Split(group("release"), ".") {
		v.Release = append(v.Release, mustAtoi(seg))
	}

	if group("pre") != "" {
		v.Pre = &Pre{
			Label:  normalizePreLabel(group("prelabel")),
			Number: atoiDefault(group("prenum"), 0),
		}
	}

	if group("post") != "" {
		n := 0
		if s := group("postnum1"); s != "" {
			n = mustAtoi(s)
		} else {
			n = atoiDefault(group("postnum2"), 0)
		}
		v.Post = &n
	}

	if group("dev") != "" {
		n := atoiDefault(group("devnum"), 0)
		v.Dev = &n
	}

	v.Local = strings.ToLower(group("local"))

	return v
}

// normalizePreLabel maps the spelling variants PEP 440 permits onto the
// canonical labels used for rendering and comparison.
func normalizePreLabel(label string) string {
	switch strings.ToLower(label) {
	case "a", "alpha":
		return "a"
	case "b", "beta":
		return "b"
	default: // c, pre, preview, rc
		return "rc"
	}
}

// String renders the version in PEP 440 normalized form, e.g.
// "1!2.0.0rc1.post2.dev3+local.4".
func (v Version) String() string {
	var sb strings.Builder

	if v.Epoch != 0 {
		fmt.Fprintf(&sb, "%d!", v.Epoch)
	}

	for i, seg := range v.Release {
		if i > 0 {
			sb.WriteByte('.')
		}
		sb.WriteString(strconv.Itoa(seg))
	}

	if v.Pre != nil {
		fmt.Fprintf(&sb, "%s%d", v.Pre.Label, v.Pre.Number)
	}
	if v.Post != nil {
		fmt.Fprintf(&sb, ".post%d", *v.Post)
	}
	if v.Dev != nil {
		fmt.Fprintf(&sb, ".dev%d", *v.Dev)
	}
	if v.Local != "" {
		fmt.Fprintf(&sb, "+%s", v.Local)
	}

	return sb.String()
}

// IsPrerelease reports whether the version has a pre-release or
// dev-release segment.
func (v Version) IsPrerelease() bool {
	return v.Pre != nil || v.Dev != nil
}

// IsDev reports whether the version has a dev-release segment.
func (v Version) IsDev() bool {
	return v.Dev != nil
}

// releaseAt returns the release segment at index i, treating missing
// trailing segments as zero ("1.0" compares equal to "1.0.0").
func (v Version) releaseAt(i int) int {
	if i < len(v.Release) {
		return v.Release[i]
	}
	return 0
}

// preRank orders the pre-release slot per PEP 440:
// dev-only < pre-release < final or post-release.
func (v Version) preRank() int {
	switch {
	case v.Pre == nil && v.Post == nil && v.Dev != nil:
		return -2
	case v.Pre != nil:
		return -1
	default:
		return 0
	}
}

var preLabelOrder = map[string]int{"a": 0, "b": 1, "rc": 2}

// Compare returns -1, 0 or 1 as v sorts before, equal to, or after o
// under PEP 440 ordering rules. Local segments are compared last,
// numerically where both segments are numeric.
func (v Version) Compare(o Version) int {
	if c := cmpInt(v.Epoch, o.Epoch); c != 0 {
		return c
	}

	n := len(v.Release)
	if len(o.Release) > n {
		n = len(o.Release)
	}
	for i := 0; i < n; i++ {
		if c := cmpInt(v.releaseAt(i), o.releaseAt(i)); c != 0 {
			return c
		}
	}

	if c := cmpInt(v.preRank(), o.preRank()); c != 0 {
		return c
	}
	if v.Pre != nil && o.Pre != nil {
		if c := cmpInt(preLabelOrder[v.Pre.Label], preLabelOrder[o.Pre.Label]); c != 0 {
			return c
		}
		if c := cmpInt(v.Pre.Number, o.Pre.Number); c != 0 {
			return c
		}
	}

	if c := cmpOptional(v.Post, o.Post, -1); c != 0 {
		return c
	}
	if c := cmpOptional(v.Dev, o.Dev, 1); c != 0 {
		return c
	}

	return cmpLocal(v.Local, o.Local)
}

// cmpOptional compares optional numeric segments. missing is -1 when an
// absent segment sorts first (post-releases) and 1 when it sorts last
// (dev-releases).
func cmpOptional(a, b *int, missing int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return missing
	case b == nil:
		return -missing
	default:
		return cmpInt(*a, *b)
	}
}

func cmpLocal(a, b string) int {
	if a == b {
		return 0
	}
	if a == "" {
		return -1
	}
	if b == "" {
		return 1
	}

	as := strings.FieldsFunc(a, isLocalSep)
	bs := strings.FieldsFunc(b, isLocalSep)
	for i := 0; i < len(as) && i < len(bs); i++ {
		ai, aErr := strconv.Atoi(as[i])
		bi, bErr := strconv.Atoi(bs[i])
		switch {
		case aErr == nil && bErr == nil:
			if c := cmpInt(ai, bi); c != 0 {
				return c
			}
		case aErr == nil:
			return 1 // numeric segments sort after alphanumeric
		case bErr == nil:
			return -1
		default:
			if c := strings.Compare(as[i], bs[i]); c != 0 {
				return c
			}
		}
	}
	return cmpInt(len(as), len(bs))
}

func isLocalSep(r rune) bool {
	return r == '.' || r == '-' || r == '_'
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// BumpRelease returns a copy of v with release segment i incremented,
// all later segments zeroed, and the pre/post/dev segments cleared. The
// release tuple is padded with zeros when it is shorter than i+1, so
// bumping the micro segment of "1.0" yields "1.0.1".
func (v Version) BumpRelease(i int) Version {
	out := v.clone()

	for len(out.Release) <= i {
		out.Release = append(out.Release, 0)
	}
	out.Release[i]++
	for j := i + 1; j < len(out.Release); j++ {
		out.Release[j] = 0
	}

	out.Pre = nil
	out.Post = nil
	out.Dev = nil
	return out
}

// WithPre returns a copy of v with the pre-release segment set to the
// given label and number. The release segments are unchanged.
func (v Version) WithPre(label string, number int) Version {
	out := v.clone()
	out.Pre = &Pre{Label: normalizePreLabel(label), Number: number}
	return out
}

// BumpPre returns a copy of v with the pre-release number incremented.
// ok is false when v has no pre-release segment.
func (v Version) BumpPre() (out Version, ok bool) {
	if v.Pre == nil {
		return v, false
	}
	out = v.clone()
	out.Pre = &Pre{Label: v.Pre.Label, Number: v.Pre.Number + 1}
	return out, true
}

func (v Version) clone() Version {
	out := v
	out.Release = append([]int(nil), v.Release...)
	if v.Pre != nil {
		pre := *v.Pre
		out.Pre = &pre
	}
	if v.Post != nil {
		post := *v.Post
		out.Post = &post
	}
	if v.Dev != nil {
		dev := *v.Dev
		out.Dev = &dev
	}
	return out
}

func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(fmt.Sprintf("pepver: non-numeric segment %q matched numeric group", s))
	}
	return n
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	return mustAtoi(s)
}
