package layout

import (
	"math"
	"reflect"
	"testing"
)

func TestMeasureMessageEmpty(t *testing.T) {
	blocks := []Block{{Kind: BlockParagraph, Text: ""}}
	items, total := MeasureMessage(blocks, nil, 60, fixedMeasurer{unit: 1})
	if len(items) != 3 {
		t.Fatalf("expected padding, line, padding; got %#v", items)
	}
	if items[0].Kind != ItemPadding || items[1].Kind != ItemLine || items[2].Kind != ItemPadding {
		t.Fatalf("unexpected item kinds: %#v", items)
	}
	want := 2*bubblePadY + bodyFontSize*lineHeightFactor
	if math.Abs(total-want) > 1e-9 {
		t.Fatalf("total = %g, want %g", total, want)
	}
}

func TestMeasureMessageDeterministic(t *testing.T) {
	blocks := []Block{
		{Kind: BlockHeading, Level: 2, Text: "Plan"},
		{Kind: BlockParagraph, Text: "some **styled** body text that wraps"},
		{Kind: BlockBullet, Text: "first item"},
	}
	m := fixedMeasurer{unit: 1.3}
	itemsA, totalA := MeasureMessage(blocks, []string{"draft", "v2"}, 40, m)
	itemsB, totalB := MeasureMessage(blocks, []string{"draft", "v2"}, 40, m)
	if totalA != totalB || !reflect.DeepEqual(itemsA, itemsB) {
		t.Fatalf("measurement is not repeatable:\n a %#v\n b %#v", itemsA, itemsB)
	}
}

func TestMeasureMessageTotalsMatchItemSum(t *testing.T) {
	blocks := []Block{
		{Kind: BlockParagraph, Text: "alpha beta gamma delta epsilon zeta"},
		{Kind: BlockParagraph, Text: "second"},
	}
	items, total := MeasureMessage(blocks, []string{"tag"}, 12, fixedMeasurer{unit: 1})
	sum := 0.0
	for _, it := range items {
		sum += it.Height
	}
	if math.Abs(total-sum) > 1e-9 {
		t.Fatalf("total %g differs from item sum %g", total, sum)
	}
}

func TestMeasureBulletIndentsFirstLineOnly(t *testing.T) {
	blocks := []Block{{Kind: BlockBullet, Text: "aaa bbb ccc ddd"}}
	items, _ := MeasureMessage(blocks, nil, 8, fixedMeasurer{unit: 1})
	var lines []Item
	for _, it := range items {
		if it.Kind == ItemLine {
			lines = append(lines, it)
		}
	}
	if len(lines) < 2 {
		t.Fatalf("expected the bullet text to wrap, got %#v", lines)
	}
	if lines[0].Indent != bulletIndent || !lines[0].Line.Bullet {
		t.Fatalf("first bullet line missing indent or glyph flag: %#v", lines[0])
	}
	for i, line := range lines[1:] {
		if line.Indent != 0 || line.Line.Bullet {
			t.Fatalf("continuation line %d should carry no bullet indent: %#v", i+1, line)
		}
	}
}

func TestMeasureHeadingUsesDepthSizeAndBold(t *testing.T) {
	blocks := []Block{{Kind: BlockHeading, Level: 1, Text: "Big Title"}}
	items, _ := MeasureMessage(blocks, nil, 80, fixedMeasurer{unit: 1})
	line := items[1]
	if line.Kind != ItemLine {
		t.Fatalf("expected a line item, got %#v", line)
	}
	if line.FontSize != headingFontSize(1) {
		t.Fatalf("font size = %g, want %g", line.FontSize, headingFontSize(1))
	}
	for _, seg := range line.Line.Segments {
		if !seg.Bold {
			t.Fatalf("heading segment should be bold: %#v", seg)
		}
	}
}

func TestMeasureTagsAppendChipRow(t *testing.T) {
	blocks := []Block{{Kind: BlockParagraph, Text: "body"}}
	items, _ := MeasureMessage(blocks, []string{"one", "two"}, 60, fixedMeasurer{unit: 1})
	chip := items[len(items)-2]
	if chip.Kind != ItemChipRow {
		t.Fatalf("expected chip row before trailing padding, got %#v", items)
	}
	if want := ChipRowsHeight(len(chip.Rows)); chip.Height != want {
		t.Fatalf("chip row height = %g, want %g", chip.Height, want)
	}
	if items[len(items)-3].Kind != ItemGap {
		t.Fatalf("expected gap before chip row, got %#v", items[len(items)-3])
	}
}
