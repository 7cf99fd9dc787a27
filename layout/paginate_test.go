package layout

import (
	"reflect"
	"testing"
)

func lineItems(n int, height float64) []Item {
	items := []Item{{Kind: ItemPadding, Height: bubblePadY}}
	for i := 0; i < n; i++ {
		items = append(items, Item{Kind: ItemLine, Height: height, LineHeight: height})
	}
	return append(items, Item{Kind: ItemPadding, Height: bubblePadY})
}

func flatten(segs []Segment) []Item {
	var all []Item
	for _, seg := range segs {
		all = append(all, seg.Items...)
	}
	return all
}

func TestPaginateSingleSegment(t *testing.T) {
	items := lineItems(3, 5)
	segs := Paginate(items, 100, 100)
	if len(segs) != 1 {
		t.Fatalf("expected one segment, got %d", len(segs))
	}
	if !segs[0].First || !segs[0].Last {
		t.Fatalf("a lone segment must carry both edge flags: %#v", segs[0])
	}
	if segs[0].Height != 2*bubblePadY+15 {
		t.Fatalf("unexpected segment height %g", segs[0].Height)
	}
}

func TestPaginateKeepsEveryItemInOrder(t *testing.T) {
	items := lineItems(40, 5)
	segs := Paginate(items, 37, 90)
	if len(segs) < 2 {
		t.Fatalf("expected a split, got %d segment(s)", len(segs))
	}
	if !reflect.DeepEqual(flatten(segs), items) {
		t.Fatalf("segment union differs from input")
	}
	if !segs[0].First || segs[0].Last {
		t.Fatalf("bad flags on first segment: %#v", segs[0])
	}
	last := segs[len(segs)-1]
	if last.First || !last.Last {
		t.Fatalf("bad flags on last segment: %+v", last)
	}
	for i, seg := range segs[1 : len(segs)-1] {
		if seg.First || seg.Last {
			t.Fatalf("interior segment %d carries an edge flag", i+1)
		}
	}
}

func TestPaginateRespectsAvailableHeights(t *testing.T) {
	items := lineItems(40, 5)
	segs := Paginate(items, 37, 90)
	if segs[0].Height > 37 {
		t.Fatalf("first segment %g exceeds remaining space 37", segs[0].Height)
	}
	for i, seg := range segs[1:] {
		if seg.Height > 90 {
			t.Fatalf("segment %d height %g exceeds full page 90", i+1, seg.Height)
		}
	}
}

func TestPaginateNoPaddingOnlySegment(t *testing.T) {
	// remaining space fits exactly the leading padding and nothing else
	items := lineItems(2, 5)
	segs := Paginate(items, bubblePadY+1, 100)
	if len(segs) != 1 {
		t.Fatalf("expected the whole message moved to a fresh page, got %#v", segs)
	}
	if !reflect.DeepEqual(flatten(segs), items) {
		t.Fatalf("segment union differs from input")
	}
}

func TestPaginateOversizedItemMovesToFreshPage(t *testing.T) {
	items := []Item{
		{Kind: ItemPadding, Height: bubblePadY},
		{Kind: ItemLine, Height: 50, LineHeight: 50},
		{Kind: ItemPadding, Height: bubblePadY},
	}
	segs := Paginate(items, 20, 100)
	if len(segs) != 1 {
		t.Fatalf("expected one segment on a fresh page, got %#v", segs)
	}
	if got := segs[0].Height; got != 50+2*bubblePadY {
		t.Fatalf("unexpected height %g", got)
	}
}

func TestPaginateOverflowsRatherThanDrops(t *testing.T) {
	items := []Item{
		{Kind: ItemPadding, Height: bubblePadY},
		{Kind: ItemLine, Height: 500, LineHeight: 500},
		{Kind: ItemPadding, Height: bubblePadY},
	}
	segs := Paginate(items, 100, 100)
	if !reflect.DeepEqual(flatten(segs), items) {
		t.Fatalf("oversized content must still be placed, got %#v", segs)
	}
}

func TestPaginateEmptyInput(t *testing.T) {
	if segs := Paginate(nil, 50, 100); segs != nil {
		t.Fatalf("expected no segments, got %#v", segs)
	}
}
