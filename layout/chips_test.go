package layout

import (
	"math"
	"testing"
)

func TestLayoutChipsPacksGreedily(t *testing.T) {
	m := fixedMeasurer{unit: 1}
	// each chip: label runes + 2*chipPadX = runes + 5 mm
	rows := LayoutChips([]string{"aaaaa", "bbbbb", "ccccc"}, 24, m)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %#v", len(rows), rows)
	}
	if len(rows[0].Chips) != 2 || len(rows[1].Chips) != 1 {
		t.Fatalf("unexpected packing: %#v", rows)
	}
	wantWidth := 10 + chipSpacing + 10
	if math.Abs(rows[0].Width-wantWidth) > 1e-9 {
		t.Fatalf("row width = %g, want %g", rows[0].Width, wantWidth)
	}
	if rows[1].Chips[0].Label != "ccccc" {
		t.Fatalf("unexpected overflow chip: %#v", rows[1].Chips[0])
	}
}

func TestLayoutChipsClampsOversizedLabel(t *testing.T) {
	m := fixedMeasurer{unit: 1}
	rows := LayoutChips([]string{"ok", "an-extremely-long-tag-label-that-cannot-fit"}, 20, m)
	if len(rows) != 2 {
		t.Fatalf("expected the long label on its own row, got %#v", rows)
	}
	if got := rows[1].Chips[0].Width; got != 20 {
		t.Fatalf("oversized chip width = %g, want clamp to 20", got)
	}
}

func TestLayoutChipsEmpty(t *testing.T) {
	if rows := LayoutChips(nil, 50, fixedMeasurer{unit: 1}); rows != nil {
		t.Fatalf("expected no rows, got %#v", rows)
	}
}

func TestChipRowsHeight(t *testing.T) {
	if got := ChipRowsHeight(0); got != 0 {
		t.Fatalf("height of zero rows = %g", got)
	}
	want := 3*chipHeight + 2*chipSpacing
	if got := ChipRowsHeight(3); math.Abs(got-want) > 1e-9 {
		t.Fatalf("height of 3 rows = %g, want %g", got, want)
	}
}
