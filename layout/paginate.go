package layout

// Segment is a contiguous slice of one message's items confined to a single
// page. First marks the segment holding the message's first item, Last the
// one holding its final item; a single-segment message carries both.
type Segment struct {
	Items  []Item
	Height float64
	First  bool
	Last   bool
}

// Paginate slices a message's items into page-confined segments. first is
// the space remaining on the current page, full the content height of a
// fresh page. Segments after the first each start a fresh page.
//
// An item taller than the remaining space forces a page break and is
// retried on a fresh page; if it still does not fit there it is placed
// whole and allowed to overflow rather than dropped. A candidate holding
// only a single padding item is never finalized at a page bottom: the
// padding is carried to the next page instead, so no visually empty sliver
// is emitted and the union of all segments' items stays exactly the input
// list.
func Paginate(items []Item, first, full float64) []Segment {
	var segs []Segment
	var cand []Item
	candHeight := 0.0
	avail := first

	finalize := func() {
		if len(cand) == 0 {
			return
		}
		segs = append(segs, Segment{Items: cand, Height: candHeight})
		cand = nil
		candHeight = 0
	}

	for _, it := range items {
		for {
			if len(cand) == 0 {
				if it.Height > avail && avail < full {
					avail = full
					continue
				}
				cand = append(cand, it)
				candHeight = it.Height
				break
			}
			if candHeight+it.Height <= avail {
				cand = append(cand, it)
				candHeight += it.Height
				break
			}
			if len(cand) == 1 && cand[0].Kind == ItemPadding {
				if avail < full {
					avail = full
					continue
				}
				// Taller than a full page even after the padding; overflow
				// beats emitting a padding-only segment.
				cand = append(cand, it)
				candHeight += it.Height
				break
			}
			finalize()
			avail = full
		}
	}
	finalize()

	if len(segs) > 0 {
		segs[0].First = true
		segs[len(segs)-1].Last = true
	}
	return segs
}
