package layout

// This file defines the layout result consumed by renderers and the debug
// JSON dump. Every coordinate and size is in millimeters with the origin at
// the page's top-left corner.

// Result holds the fully measured, positioned document.
type Result struct {
	Pages []Page       `json:"pages"`
	Meta  DocumentMeta `json:"meta"`
}

// DocumentMeta carries PDF metadata.
type DocumentMeta struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Subject string `json:"subject"`
	Creator string `json:"creator"`
}

// Margin in millimeters.
type Margin struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
}

// Color uses 0-255 RGB values.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Page lists the draw records for one page in paint order: bubble
// backgrounds first, then bullet dots, text spans and chips.
type Page struct {
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	Margin  Margin      `json:"margin"`
	Bubbles []BubbleBox `json:"bubbles,omitempty"`
	Dots    []DotBox    `json:"dots,omitempty"`
	Spans   []SpanBox   `json:"spans,omitempty"`
	Chips   []ChipBox   `json:"chips,omitempty"`
}

// BubbleBox is one page-confined fragment of a message bubble's background.
// RoundTop is set only on the fragment holding the message's first layout
// item, RoundBottom only on the one holding its last; interior fragments
// keep both false and are rendered with square corner patches so adjacent
// fragments blend across the page break.
type BubbleBox struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Radius      float64 `json:"radius"`
	RoundTop    bool    `json:"roundTop"`
	RoundBottom bool    `json:"roundBottom"`
	Fill        Color   `json:"fill"`
}

// SpanBox is one styled text run positioned on a page. Y is the top of the
// glyph box; renderers add the face ascent to find the baseline.
type SpanBox struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Text       string  `json:"text"`
	Bold       bool    `json:"bold"`
	FontSize   float64 `json:"fontSize"`
	LineHeight float64 `json:"lineHeight"`
	Color      Color   `json:"color"`
}

// ChipBox is a pill label: attachment name, metadata tag or author chip.
type ChipBox struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Label    string  `json:"label"`
	FontSize float64 `json:"fontSize"`
	Fill     Color   `json:"fill"`
	Ink      Color   `json:"ink"`
}

// DotBox is a filled bullet glyph.
type DotBox struct {
	CX   float64 `json:"cx"`
	CY   float64 `json:"cy"`
	R    float64 `json:"r"`
	Fill Color   `json:"fill"`
}
