package layout

import (
	"strings"
	"unicode"

	"github.com/ByLCY/parley/markup"
)

// LineSegment is a maximal stretch of one wrapped line sharing one style.
type LineSegment struct {
	Text string `json:"text"`
	Bold bool   `json:"bold,omitempty"`
}

// WrappedLine is one rendered line of a block. Bullet marks the first line
// of a bullet block, which reserves glyph space ahead of its text.
type WrappedLine struct {
	Segments []LineSegment `json:"segments"`
	Bullet   bool          `json:"bullet,omitempty"`
}

// lineBuilder accumulates segments for the line under construction,
// merging adjacent same-style text.
type lineBuilder struct {
	segs  []LineSegment
	width float64
}

func (b *lineBuilder) empty() bool { return len(b.segs) == 0 }

func (b *lineBuilder) append(text string, bold bool, width float64) {
	if n := len(b.segs); n > 0 && b.segs[n-1].Bold == bold {
		b.segs[n-1].Text += text
	} else {
		b.segs = append(b.segs, LineSegment{Text: text, Bold: bold})
	}
	b.width += width
}

// WrapSpans wraps a styled run sequence into lines no wider than maxWidth,
// greedy first-fit. firstIndent narrows only the first line (bullet glyph
// space). Splitting points are whitespace runs; a single token wider than
// the limit is force-split into width-fitting pieces, never producing a
// zero-width piece. Whitespace is absorbed into the open line and dropped
// at fresh-line starts. Empty input yields exactly one empty line.
func WrapSpans(spans []markup.Span, fontSize, maxWidth, firstIndent float64, m Measurer) []WrappedLine {
	var lines []WrappedLine
	cur := &lineBuilder{}

	limit := func() float64 {
		w := maxWidth
		if len(lines) == 0 {
			w -= firstIndent
		}
		if w <= 0 {
			w = maxWidth
		}
		return w
	}
	flush := func(force bool) {
		if cur.empty() && !force {
			return
		}
		lines = append(lines, WrappedLine{Segments: trimLine(cur.segs)})
		cur = &lineBuilder{}
	}

	for _, span := range spans {
		if span.Kind == markup.SpanBreak {
			flush(true)
			continue
		}
		for _, token := range splitSpaceRuns(span.Text) {
			if isSpaceToken(token) {
				if cur.empty() {
					continue
				}
				cur.append(token, span.Bold, m.TextWidth(token, fontSize, span.Bold))
				continue
			}
			width := m.TextWidth(token, fontSize, span.Bold)
			if width > limit() {
				for _, piece := range splitByWidth(token, span.Bold, fontSize, limit, m) {
					pieceWidth := m.TextWidth(piece, fontSize, span.Bold)
					if !cur.empty() && cur.width+pieceWidth > limit() {
						flush(false)
					}
					cur.append(piece, span.Bold, pieceWidth)
				}
				continue
			}
			if !cur.empty() && cur.width+width > limit() {
				flush(false)
			}
			cur.append(token, span.Bold, width)
		}
	}
	// Emit whatever is pending; force a line only when nothing was produced
	// at all, so empty input still yields exactly one empty line.
	flush(len(lines) == 0)
	return lines
}

// trimLine drops whitespace-only segments at the line edges and strips the
// residual edge whitespace of what remains. An all-empty line keeps exactly
// one empty segment.
func trimLine(segs []LineSegment) []LineSegment {
	for len(segs) > 0 && strings.TrimSpace(segs[0].Text) == "" {
		segs = segs[1:]
	}
	for len(segs) > 0 && strings.TrimSpace(segs[len(segs)-1].Text) == "" {
		segs = segs[:len(segs)-1]
	}
	if len(segs) == 0 {
		return []LineSegment{{Text: ""}}
	}
	segs[0].Text = strings.TrimLeft(segs[0].Text, " \t")
	last := len(segs) - 1
	segs[last].Text = strings.TrimRight(segs[last].Text, " \t")
	return segs
}

// splitSpaceRuns cuts text into alternating whitespace and non-whitespace
// tokens.
func splitSpaceRuns(s string) []string {
	var tokens []string
	var run strings.Builder
	lastWasSpace := false
	flush := func() {
		if run.Len() == 0 {
			return
		}
		tokens = append(tokens, run.String())
		run.Reset()
	}
	for _, r := range s {
		isSpace := unicode.IsSpace(r)
		if run.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		run.WriteRune(r)
	}
	flush()
	return tokens
}

func isSpaceToken(token string) bool {
	for _, r := range token {
		return unicode.IsSpace(r)
	}
	return false
}

// splitByWidth cuts an oversized token into pieces that each fit the line
// limit on their own. Every piece keeps at least one rune so progress is
// guaranteed even when a single glyph exceeds the limit; that lone glyph
// then occupies its own line.
func splitByWidth(token string, bold bool, fontSize float64, limit func() float64, m Measurer) []string {
	var pieces []string
	var piece []rune
	for _, r := range token {
		piece = append(piece, r)
		if len(piece) > 1 && m.TextWidth(string(piece), fontSize, bold) > limit() {
			pieces = append(pieces, string(piece[:len(piece)-1]))
			piece = []rune{r}
		}
	}
	if len(piece) > 0 {
		pieces = append(pieces, string(piece))
	}
	return pieces
}
