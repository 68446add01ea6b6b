package changelog

import (
	"regexp"
	"strings"
)

// BlockKind identifies the top-level Markdown constructs the splitter
// cares about. Anything else is a paragraph.
type BlockKind int

const (
	// KindParagraph is a run of plain text lines.
	KindParagraph BlockKind = iota
	// KindHeading is an ATX ("## Foo") or setext (underlined) heading.
	KindHeading
	// KindListItem is a top-level bullet or numbered list item,
	// including its indented continuation lines.
	KindListItem
	// KindCode is a fenced code block, fences included.
	KindCode
	// KindLinkDef is a link reference definition, "[id]: url".
	KindLinkDef
)

// Block is one tokenized block of Markdown: one or more source lines
// plus the classification the splitter assigned them.
type Block struct {
	Kind   BlockKind
	Level  int // heading level, 1-6
	Lines  []string
	LineNo int // 0-based line of the first source line

	// LinkDef blocks only.
	LinkID  string
	LinkURL string
}

// Text returns the block's raw text with lines rejoined.
func (b Block) Text() string {
	return strings.Join(b.Lines, "\n")
}

var (
	fenceRegex    = regexp.MustCompile("^```")
	headingRegex  = regexp.MustCompile(`^(?P<hashes>#+)\s+(?P<contents>[^#]+?)(?:\s+#+)?$`)
	listItemRegex = regexp.MustCompile(`^[-+*] |^\d+\. `)
	bulletRegex   = regexp.MustCompile(`^[-+*] `)
	numberedRegex = regexp.MustCompile(`^\d+\. `)
	linkDefRegex  = regexp.MustCompile(`^\[(?P<id>\S*)]:\s*(?P<url>.*)`)
	setextRegex   = regexp.MustCompile(`^(=+|-+)[ \t]*$`)
)

// HeadingText returns a heading block's contents with the marker
// stripped, e.g. "### Added ##" yields "Added".
func (b Block) HeadingText() string {
	return strings.TrimSpace(strings.Trim(b.Text(), "#"))
}

// Split tokenizes Markdown text into an ordered sequence of blocks. It
// never fails: lines matching no rule become paragraphs or paragraph
// continuations. Code fence interiors are kept verbatim, and a line of
// "=" or "-" characters promotes the preceding paragraph line to a
// setext heading.
func Split(text string) []Block {
	s := splitter{}
	for i, line := range strings.Split(text, "\n") {
		s.feed(i, line)
	}
	return s.blocks
}

type splitter struct {
	blocks []Block
	cur    *Block // open paragraph or list item accepting continuations
	inCode bool
}

// last returns the most recently emitted block.
func (s *splitter) last() *Block {
	return &s.blocks[len(s.blocks)-1]
}

func (s *splitter) emit(b Block) {
	s.blocks = append(s.blocks, b)
}

func (s *splitter) feed(lineNo int, line string) {
	if s.inCode {
		// verbatim until the closing fence; interior "#" and "-" lines
		// must not be reinterpreted
		s.last().Lines = append(s.last().Lines, line)
		if fenceRegex.MatchString(line) {
			s.inCode = false
		}
		return
	}

	switch {
	case fenceRegex.MatchString(line):
		s.emit(Block{Kind: KindCode, Lines: []string{line}, LineNo: lineNo})
		s.cur = nil
		s.inCode = true

	case line == "" || strings.TrimSpace(line) == "":
		s.cur = nil

	case s.cur != nil && s.cur.Kind == KindParagraph && setextRegex.MatchString(line):
		s.promoteSetext(line, lineNo)

	case listItemRegex.MatchString(line):
		s.emit(Block{Kind: KindListItem, Lines: []string{line}, LineNo: lineNo})
		s.cur = s.last()

	case headingRegex.MatchString(line):
		m := headingRegex.FindStringSubmatch(line)
		s.emit(Block{
			Kind:   KindHeading,
			Level:  len(m[headingRegex.SubexpIndex("hashes")]),
			Lines:  []string{line},
			LineNo: lineNo,
		})
		s.cur = nil

	case linkDefRegex.MatchString(line):
		m := linkDefRegex.FindStringSubmatch(line)
		s.emit(Block{
			Kind:    KindLinkDef,
			Lines:   []string{line},
			LineNo:  lineNo,
			LinkID:  strings.ToLower(m[linkDefRegex.SubexpIndex("id")]),
			LinkURL: strings.TrimSpace(m[linkDefRegex.SubexpIndex("url")]),
		})
		s.cur = nil

	case s.cur != nil:
		s.cur.Lines = append(s.cur.Lines, line)

	default:
		s.emit(Block{Kind: KindParagraph, Lines: []string{line}, LineNo: lineNo})
		s.cur = s.last()
	}
}

// promoteSetext converts the last line of the open paragraph into a
// level-1 ("=") or level-2 ("-") heading. Earlier paragraph lines stay
// a paragraph; a paragraph reduced to nothing is removed.
func (s *splitter) promoteSetext(underline string, lineNo int) {
	para := s.cur
	text := para.Lines[len(para.Lines)-1]
	para.Lines = para.Lines[:len(para.Lines)-1]
	if len(para.Lines) == 0 {
		s.blocks = s.blocks[:len(s.blocks)-1]
	}

	level := 1
	if underline[0] == '-' {
		level = 2
	}

	marker := strings.Repeat("#", level)
	s.emit(Block{
		Kind:   KindHeading,
		Level:  level,
		Lines:  []string{marker + " " + text},
		LineNo: lineNo - 1,
	})
	s.cur = nil
}

// classify returns the block kind a single line of entry text would
// start, used when appending caller-provided entries to the model.
func classify(text string) BlockKind {
	first := text
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		first = text[:i]
	}
	switch {
	case listItemRegex.MatchString(first):
		return KindListItem
	case fenceRegex.MatchString(first):
		return KindCode
	default:
		return KindParagraph
	}
}
