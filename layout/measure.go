package layout

import "github.com/ByLCY/parley/markup"

// ItemKind tags one pre-measured unit of a bubble's vertical content.
type ItemKind int

const (
	ItemPadding ItemKind = iota
	ItemLine
	ItemGap
	ItemChipRow
)

// Item is an atomic layout unit. Heights are fixed at measure time; the
// pagination and rendering stages only read them.
type Item struct {
	Kind       ItemKind    `json:"kind"`
	Height     float64     `json:"height"`
	FontSize   float64     `json:"fontSize,omitempty"`
	LineHeight float64     `json:"lineHeight,omitempty"`
	Indent     float64     `json:"indent,omitempty"`
	Line       WrappedLine `json:"line,omitempty"`
	Rows       []ChipRow   `json:"rows,omitempty"`
}

// MeasureMessage lays out one message's blocks and metadata tags against a
// fixed inner width, returning the flat item list and the total bubble
// height. The list always starts and ends with a padding item, and repeated
// calls with identical input produce identical results.
func MeasureMessage(blocks []Block, tags []string, width float64, m Measurer) ([]Item, float64) {
	items := []Item{{Kind: ItemPadding, Height: bubblePadY}}

	for i, block := range blocks {
		if i > 0 {
			items = append(items, Item{Kind: ItemGap, Height: blockGap})
		}
		items = append(items, measureBlock(block, width, m)...)
	}

	if len(tags) > 0 {
		rows := LayoutChips(tags, width, m)
		items = append(items,
			Item{Kind: ItemGap, Height: blockGap},
			Item{Kind: ItemChipRow, Height: ChipRowsHeight(len(rows)), Rows: rows},
		)
	}

	items = append(items, Item{Kind: ItemPadding, Height: bubblePadY})

	total := 0.0
	for _, it := range items {
		total += it.Height
	}
	return items, total
}

// measureBlock wraps one block into line items at its own font size. A
// bullet block reserves glyph space on its first wrapped line only.
func measureBlock(block Block, width float64, m Measurer) []Item {
	fontSize := bodyFontSize
	var bold bool
	switch block.Kind {
	case BlockHeading:
		fontSize = headingFontSize(block.Level)
		bold = true
	}
	lineHeight := fontSize * lineHeightFactor

	firstIndent := 0.0
	if block.Kind == BlockBullet {
		firstIndent = bulletIndent
	}

	spans := markup.Spans(block.Text)
	if bold {
		for i := range spans {
			spans[i].Bold = true
		}
	}
	lines := WrapSpans(spans, fontSize, width, firstIndent, m)
	items := make([]Item, 0, len(lines))
	for i, line := range lines {
		item := Item{
			Kind:       ItemLine,
			Height:     lineHeight,
			FontSize:   fontSize,
			LineHeight: lineHeight,
			Line:       line,
		}
		if block.Kind == BlockBullet && i == 0 {
			item.Indent = bulletIndent
			item.Line.Bullet = true
		}
		items = append(items, item)
	}
	return items
}
