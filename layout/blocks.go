package layout

import (
	"strings"

	"github.com/ByLCY/parley/markup"
)

// BlockKind tags a semantic block extracted from message markup.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockHeading
	BlockBullet
)

// Block is one structural unit of a message: a paragraph, a heading with
// its depth, or a single bullet item. Text still carries inline markup
// (bold markers, explicit breaks) for the wrap stage.
type Block struct {
	Kind  BlockKind `json:"kind"`
	Level int       `json:"level,omitempty"`
	Text  string    `json:"text"`
}

// ExtractBlocks walks the structural token stream into an ordered block
// list. Consecutive text lines separated by a single newline merge into one
// paragraph with explicit breaks between them; a blank line ends the
// paragraph. Table rows flatten into pipe-joined paragraph lines with the
// first row of each run of rows wrapped in bold markers. An empty document
// yields exactly one empty paragraph so every message occupies at least one
// line.
func ExtractBlocks(doc *markup.Document) []Block {
	var blocks []Block
	var para []string
	inTable := false

	endParagraph := func() {
		if len(para) == 0 {
			return
		}
		blocks = append(blocks, Block{Kind: BlockParagraph, Text: strings.Join(para, "\n")})
		para = nil
	}

	lines := []*markup.Line{}
	if doc != nil {
		lines = doc.Lines
	}
	for _, line := range lines {
		switch line.Kind() {
		case "heading":
			endParagraph()
			inTable = false
			blocks = append(blocks, Block{
				Kind:  BlockHeading,
				Level: line.HeadingDepth(),
				Text:  line.HeadingText(),
			})
		case "bullet":
			endParagraph()
			inTable = false
			blocks = append(blocks, Block{Kind: BlockBullet, Text: line.BulletText()})
		case "row":
			endParagraph()
			cells := line.RowCells()
			if isDividerRow(cells) {
				continue
			}
			text := strings.Join(cells, " | ")
			if !inTable {
				text = markup.Bold(text)
			}
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: text})
			inTable = !line.Separated()
		case "text":
			inTable = false
			para = append(para, line.TextLine())
			if line.Separated() {
				endParagraph()
			}
		default:
			continue
		}
		if line.Separated() {
			inTable = false
		}
	}
	endParagraph()

	if len(blocks) == 0 {
		blocks = []Block{{Kind: BlockParagraph, Text: ""}}
	}
	return blocks
}

// isDividerRow reports whether a table row is a header/body separator like
// | --- | :--- |, which carries no content and is dropped.
func isDividerRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if cell == "" {
			return false
		}
		for _, r := range cell {
			if r != '-' && r != ':' {
				return false
			}
		}
	}
	return true
}
