package layout

// Chip is one measured pill label.
type Chip struct {
	Label string  `json:"label"`
	Width float64 `json:"width"`
}

// ChipRow is one wrapped row of chips; Width is the packed content width
// including inter-chip spacing.
type ChipRow struct {
	Chips []Chip  `json:"chips"`
	Width float64 `json:"width"`
}

// LayoutChips packs labels left to right into rows bounded by maxWidth,
// starting a new row when the next chip would overflow the remaining row
// width. A label wider than the column is clamped to it and occupies a row
// alone. Measurement and rendering share this placement.
func LayoutChips(labels []string, maxWidth float64, m Measurer) []ChipRow {
	var rows []ChipRow
	var row ChipRow
	endRow := func() {
		if len(row.Chips) == 0 {
			return
		}
		rows = append(rows, row)
		row = ChipRow{}
	}
	for _, label := range labels {
		width := m.TextWidth(label, chipFontSize, false) + 2*chipPadX
		if width > maxWidth {
			width = maxWidth
		}
		advance := width
		if len(row.Chips) > 0 {
			advance += chipSpacing
		}
		if len(row.Chips) > 0 && row.Width+advance > maxWidth {
			endRow()
			advance = width
		}
		row.Chips = append(row.Chips, Chip{Label: label, Width: width})
		row.Width += advance
	}
	endRow()
	return rows
}

// ChipRowsHeight is the stacked height of n chip rows.
func ChipRowsHeight(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n)*chipHeight + float64(n-1)*chipSpacing
}
