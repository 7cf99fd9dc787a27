package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	markupLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "CR", Pattern: `\r`},
		{Name: "Heading", Pattern: `#+[ \t][^\r\n]*`},
		{Name: "Bullet", Pattern: `[-*][ \t][^\r\n]*`},
		{Name: "Row", Pattern: `\|[^\r\n]*`},
		{Name: "Text", Pattern: `[^\r\n]+`},
		{Name: "Newline", Pattern: `\n`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(markupLexer),
		participle.Elide("CR"),
	)
)

// Document is the structural token stream for one message's content: an
// ordered list of typed lines. Inline styling inside a line is handled
// separately by Spans.
type Document struct {
	Pos   lexer.Position `parser:"" json:"-"`
	Lines []*Line        `parser:"Newline* ( @@ )*"`
}

// Line is a single structural token. Exactly one of the content fields is
// set; Breaks records the newline run that terminated the line so callers
// can tell adjacent lines (one newline) from separated ones (blank line).
type Line struct {
	Heading *string  `parser:"( @Heading"`
	Bullet  *string  `parser:"| @Bullet"`
	Row     *string  `parser:"| @Row"`
	Text    *string  `parser:"| @Text )"`
	Breaks  []string `parser:"@Newline*"`
}

// Kind returns the human-readable line type.
func (l *Line) Kind() string {
	switch {
	case l == nil:
		return "unknown"
	case l.Heading != nil:
		return "heading"
	case l.Bullet != nil:
		return "bullet"
	case l.Row != nil:
		return "row"
	case l.Text != nil:
		return "text"
	default:
		return "unknown"
	}
}

// Separated reports whether a blank line follows this line, ending any
// paragraph that was being accumulated.
func (l *Line) Separated() bool {
	return len(l.Breaks) >= 2
}

// HeadingDepth counts the leading marker characters of a heading line.
func (l *Line) HeadingDepth() int {
	if l == nil || l.Heading == nil {
		return 0
	}
	depth := 0
	for _, r := range *l.Heading {
		if r != '#' {
			break
		}
		depth++
	}
	return depth
}

// HeadingText returns a heading line's content with markers stripped.
func (l *Line) HeadingText() string {
	if l == nil || l.Heading == nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimLeft(*l.Heading, "#"))
}

// BulletText returns a bullet line's content with the list marker stripped.
func (l *Line) BulletText() string {
	if l == nil || l.Bullet == nil {
		return ""
	}
	s := *l.Bullet
	return strings.TrimSpace(s[1:])
}

// RowCells splits a table row line into trimmed cell values. Empty edge
// cells produced by leading/trailing pipes are dropped, interior empty
// cells are kept so columns stay aligned.
func (l *Line) RowCells() []string {
	if l == nil || l.Row == nil {
		return nil
	}
	parts := strings.Split(*l.Row, "|")
	if len(parts) > 0 && strings.TrimSpace(parts[0]) == "" {
		parts = parts[1:]
	}
	if len(parts) > 0 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}

// TextLine returns a plain text line's content.
func (l *Line) TextLine() string {
	if l == nil || l.Text == nil {
		return ""
	}
	return *l.Text
}

// Parse reads message markup from an io.Reader.
func Parse(r io.Reader) (*Document, error) {
	doc, err := documentParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	return doc, nil
}

// ParseString parses message markup from a string.
func ParseString(input string) (*Document, error) {
	doc, err := documentParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	return doc, nil
}
