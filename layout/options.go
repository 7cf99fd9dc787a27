package layout

// BuildOptions configures the measurement stage.
type BuildOptions struct {
	Measurer Measurer
	Meta     DocumentMeta
}

// Measurer reports rendered text widths so layout math matches the drawing
// backend exactly. All values are millimeters. Implementations must be
// deterministic: identical input yields identical widths on repeated calls.
type Measurer interface {
	TextWidth(text string, fontSize float64, bold bool) float64
}
