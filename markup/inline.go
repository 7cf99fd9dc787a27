package markup

import (
	"strings"
	"unicode/utf8"
)

// BoldMarker is the two-character delimiter toggling bold inside a line.
const BoldMarker = "**"

// SpanKind tags an inline token.
type SpanKind int

const (
	// SpanRun is a maximal stretch of text sharing one style.
	SpanRun SpanKind = iota
	// SpanBreak is an explicit line break inside a block's text.
	SpanBreak
)

// Span is the smallest styling unit of a block's text.
type Span struct {
	Kind SpanKind
	Text string
	Bold bool
}

// Bold wraps text in bold markers.
func Bold(text string) string {
	return BoldMarker + text + BoldMarker
}

// Spans tokenizes a block's text into styled runs and break markers.
// Each marker toggles the bold flag, so an unterminated trailing marker
// styles the remainder bold rather than failing. Newlines flush the
// current run and emit a break. Carriage returns are dropped.
func Spans(text string) []Span {
	var spans []Span
	var run strings.Builder
	bold := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		spans = append(spans, Span{Kind: SpanRun, Text: run.String(), Bold: bold})
		run.Reset()
	}

	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], BoldMarker) {
			flush()
			bold = !bold
			i += len(BoldMarker)
			continue
		}
		r, size := utf8.DecodeRuneInString(text[i:])
		switch r {
		case '\r':
		case '\n':
			flush()
			spans = append(spans, Span{Kind: SpanBreak})
		default:
			run.WriteRune(r)
		}
		i += size
	}
	flush()
	return spans
}
