package layout

import (
	"fmt"

	"github.com/ByLCY/parley/markup"
	"github.com/ByLCY/parley/transcript"
)

// Build measures and positions the whole transcript, producing a result the
// renderer only reads. No drawing happens here; page breaks are decided
// with full heights known, so a renderer never has to undo painted output.
func Build(t *transcript.Transcript, opts BuildOptions) (*Result, error) {
	if t == nil {
		return nil, fmt.Errorf("layout: nil transcript")
	}
	if opts.Measurer == nil {
		return nil, fmt.Errorf("layout: missing text measurer")
	}

	pc := newPageCollector(pageWidth, pageHeight, defaultMargin)
	cur := &cursor{pc: pc, y: pc.contentTop()}

	placeAttachments(t.Attachments, cur, opts.Measurer)
	for _, msg := range t.Messages {
		placeMessage(msg, cur, opts.Measurer)
	}

	meta := opts.Meta
	if meta.Title == "" {
		meta.Title = t.Title
	}
	if meta.Creator == "" {
		meta.Creator = "Parley"
	}
	return &Result{Pages: pc.pages(), Meta: meta}, nil
}

// placeAttachments draws the one-time attached-file chip section at the top
// of the document, wrapping rows across pages as needed.
func placeAttachments(attachments []transcript.Attachment, cur *cursor, m Measurer) {
	if len(attachments) == 0 {
		return
	}
	labels := make([]string, len(attachments))
	for i, a := range attachments {
		labels[i] = a.Name
	}
	width := cur.pc.contentWidth()
	for _, row := range LayoutChips(labels, width, m) {
		cur.ensure(chipHeight)
		x := cur.pc.margin.Left
		for _, chip := range row.Chips {
			cur.pc.curr().chips = append(cur.pc.curr().chips, ChipBox{
				X:        x,
				Y:        cur.y,
				Width:    chip.Width,
				Height:   chipHeight,
				Label:    chip.Label,
				FontSize: chipFontSize,
				Fill:     chipFill,
				Ink:      chipInk,
			})
			x += chip.Width + chipSpacing
		}
		cur.y += chipHeight + chipSpacing
	}
	cur.y += sectionGap - chipSpacing
}

// placeMessage measures one message, paginates its items and records the
// author chip, bubble fragments and content for each resulting segment.
func placeMessage(msg transcript.Message, cur *cursor, m Measurer) {
	blocks := messageBlocks(msg.Content)
	bubbleWidth := cur.pc.contentWidth() * bubbleWidthRatio
	innerWidth := bubbleWidth - 2*bubblePadX
	items, _ := MeasureMessage(blocks, msg.Tags, innerWidth, m)

	// Break before drawing anything when the author chip plus the bubble's
	// first two items (top padding and first line) cannot fit; the first
	// segment then starts at the new page's top margin.
	needed := chipHeight + authorChipGap + items[0].Height
	if len(items) > 1 {
		needed += items[1].Height
	}
	if needed > cur.available() {
		cur.pageBreak()
	}

	alignRight := msg.Role == transcript.RoleUser
	fill := fallbackBubbleFill
	if alignRight {
		fill = userBubbleFill
	}
	bubbleX := cur.pc.margin.Left
	if alignRight {
		bubbleX = cur.pc.margin.Left + cur.pc.contentWidth() - bubbleWidth
	}

	label := msg.AuthorLabel()
	chipWidth := m.TextWidth(label, chipFontSize, false) + 2*chipPadX
	if chipWidth > bubbleWidth {
		chipWidth = bubbleWidth
	}
	chipX := bubbleX
	if alignRight {
		chipX = bubbleX + bubbleWidth - chipWidth
	}
	cur.pc.curr().chips = append(cur.pc.curr().chips, ChipBox{
		X:        chipX,
		Y:        cur.y,
		Width:    chipWidth,
		Height:   chipHeight,
		Label:    label,
		FontSize: chipFontSize,
		Fill:     chipFill,
		Ink:      chipInk,
	})
	cur.y += chipHeight + authorChipGap

	segs := Paginate(items, cur.available(), cur.pc.contentHeight())
	for i, seg := range segs {
		if i > 0 {
			cur.pageBreak()
		}
		cur.pc.curr().bubbles = append(cur.pc.curr().bubbles, BubbleBox{
			X:           bubbleX,
			Y:           cur.y,
			Width:       bubbleWidth,
			Height:      seg.Height,
			Radius:      bubbleRadius,
			RoundTop:    seg.First,
			RoundBottom: seg.Last,
			Fill:        fill,
		})
		placeItems(seg.Items, bubbleX+bubblePadX, cur.y, cur.pc.curr(), m)
		cur.y += seg.Height
	}
	cur.y += bubbleSpacing
}

// placeItems replays one segment's items downward from top, turning line
// and chip-row items into positioned draw records. Padding and gap items
// only advance the content cursor.
func placeItems(items []Item, left, top float64, acc *pageAccumulator, m Measurer) {
	y := top
	for _, it := range items {
		switch it.Kind {
		case ItemLine:
			if it.Line.Bullet {
				acc.dots = append(acc.dots, DotBox{
					CX:   left + bulletIndent/2,
					CY:   y + it.LineHeight/2,
					R:    bulletRadius,
					Fill: inkColor,
				})
			}
			x := left + it.Indent
			spanY := y + (it.LineHeight-it.FontSize)/2
			for _, seg := range it.Line.Segments {
				acc.spans = append(acc.spans, SpanBox{
					X:          x,
					Y:          spanY,
					Text:       seg.Text,
					Bold:       seg.Bold,
					FontSize:   it.FontSize,
					LineHeight: it.LineHeight,
					Color:      inkColor,
				})
				x += m.TextWidth(seg.Text, it.FontSize, seg.Bold)
			}
		case ItemChipRow:
			rowY := y
			for _, row := range it.Rows {
				x := left
				for _, chip := range row.Chips {
					acc.chips = append(acc.chips, ChipBox{
						X:        x,
						Y:        rowY,
						Width:    chip.Width,
						Height:   chipHeight,
						Label:    chip.Label,
						FontSize: chipFontSize,
						Fill:     chipFill,
						Ink:      chipInk,
					})
					x += chip.Width + chipSpacing
				}
				rowY += chipHeight + chipSpacing
			}
		}
		y += it.Height
	}
}

// messageBlocks parses a message's markup tolerantly: a parse failure
// degrades to one paragraph holding the raw text instead of failing the
// whole render.
func messageBlocks(content string) []Block {
	doc, err := markup.ParseString(content)
	if err != nil {
		return []Block{{Kind: BlockParagraph, Text: content}}
	}
	return ExtractBlocks(doc)
}

// pageAccumulator collects the draw records of one page.
type pageAccumulator struct {
	bubbles []BubbleBox
	dots    []DotBox
	spans   []SpanBox
	chips   []ChipBox
}

// pageCollector owns page geometry and the accumulated pages.
type pageCollector struct {
	width   float64
	height  float64
	margin  Margin
	accs    []*pageAccumulator
	current int
}

func newPageCollector(width, height float64, margin Margin) *pageCollector {
	pc := &pageCollector{width: width, height: height, margin: margin}
	pc.newPage()
	return pc
}

func (pc *pageCollector) newPage() *pageAccumulator {
	acc := &pageAccumulator{}
	pc.accs = append(pc.accs, acc)
	pc.current = len(pc.accs) - 1
	return acc
}

func (pc *pageCollector) curr() *pageAccumulator {
	return pc.accs[pc.current]
}

func (pc *pageCollector) contentTop() float64 { return pc.margin.Top }

func (pc *pageCollector) contentBottom() float64 { return pc.height - pc.margin.Bottom }

func (pc *pageCollector) contentWidth() float64 {
	return pc.width - pc.margin.Left - pc.margin.Right
}

func (pc *pageCollector) contentHeight() float64 {
	return pc.contentBottom() - pc.contentTop()
}

func (pc *pageCollector) pages() []Page {
	out := make([]Page, len(pc.accs))
	for i, acc := range pc.accs {
		out[i] = Page{
			Width:   pc.width,
			Height:  pc.height,
			Margin:  pc.margin,
			Bubbles: acc.bubbles,
			Dots:    acc.dots,
			Spans:   acc.spans,
			Chips:   acc.chips,
		}
	}
	return out
}

// cursor is the single vertical position threaded through the build; there
// is no ambient drawing state.
type cursor struct {
	pc *pageCollector
	y  float64
}

func (c *cursor) available() float64 { return c.pc.contentBottom() - c.y }

func (c *cursor) ensure(height float64) {
	if height > c.available() {
		c.pageBreak()
	}
}

func (c *cursor) pageBreak() {
	c.pc.newPage()
	c.y = c.pc.contentTop()
}
