package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"os"
	"sync"
	"unicode/utf8"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/parley/layout"
	"github.com/ByLCY/parley/renderer"
)

// Renderer draws layout results via github.com/tdewolff/canvas and doubles
// as the layout stage's text measurer, so measured widths and drawn widths
// come from the same font metrics.
type Renderer struct {
	opts Options

	fontMu sync.Mutex
	family *canvas.FontFamily
	broken bool
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Measurer   = (*Renderer)(nil)
)

// Options configures the canvas renderer. When no fonts are injected the
// embedded Latin Modern faces are used.
type Options struct {
	FontRegular Resource
	FontBold    Resource
}

// Resource can be provided either by Bytes or by Path.
type Resource struct {
	Bytes []byte
	Path  string
}

// NewRenderer creates a renderer with the default embedded fonts.
func NewRenderer() *Renderer { return NewRendererWithOptions(Options{}) }

// NewRendererWithOptions creates a renderer with injected font resources.
func NewRendererWithOptions(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Render renders the result into a PDF document.
func (r *Renderer) Render(result *layout.Result) (*renderer.Document, error) {
	if result == nil {
		return nil, fmt.Errorf("nil layout result")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("no pages to render")
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, result.Pages[0].Width, result.Pages[0].Height, nil)
	r.applyMeta(writer, result.Meta)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(page.Width, page.Height)
		}
		c := canvas.New(page.Width, page.Height)
		ctx := canvas.NewContext(c)
		ctx.SetCoordSystem(canvas.CartesianIV) // top-left origin, like the layout

		if err := r.drawPage(ctx, page); err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("write PDF: %w", err)
	}
	return renderer.NewDocument(buf.Bytes()), nil
}

func (r *Renderer) applyMeta(writer *pdf.PDF, meta layout.DocumentMeta) {
	if writer == nil {
		return
	}
	writer.SetInfo(meta.Title, meta.Subject, "", meta.Author, meta.Creator)
}

// TextWidth implements layout.Measurer. Input and result are mm. When the
// fonts cannot be loaded a rough estimate keeps measurement total instead
// of failing mid-layout; the same failure then surfaces from Render.
func (r *Renderer) TextWidth(text string, fontSize float64, bold bool) float64 {
	face, err := r.face(fontSize, bold, layout.Color{R: 0, G: 0, B: 0})
	if err != nil {
		return estimateTextWidth(text, fontSize)
	}
	return face.TextWidth(text)
}

func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page) error {
	for _, b := range page.Bubbles {
		r.drawBubble(ctx, b)
	}
	for _, d := range page.Dots {
		ctx.SetFillColor(colorFromLayout(d.Fill))
		ctx.SetStrokeColor(color.RGBA{})
		ctx.DrawPath(d.CX-d.R, d.CY-d.R, canvas.Circle(d.R))
	}
	for _, s := range page.Spans {
		if err := r.drawSpan(ctx, s); err != nil {
			return err
		}
	}
	for _, c := range page.Chips {
		if err := r.drawChip(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

// drawBubble paints one bubble fragment: a rounded rectangle, then square
// patches in the bubble fill over every corner that must stay square, so
// interior fragments butt flush against their neighbors across page breaks.
func (r *Renderer) drawBubble(ctx *canvas.Context, b layout.BubbleBox) {
	radius := b.Radius
	if max := math.Min(b.Width, b.Height) / 2; radius > max {
		radius = max
	}
	ctx.SetFillColor(colorFromLayout(b.Fill))
	ctx.SetStrokeColor(color.RGBA{})
	ctx.DrawPath(b.X, b.Y, canvas.RoundedRectangle(b.Width, b.Height, radius))
	for _, p := range cornerPatches(b, radius) {
		ctx.DrawPath(p.X, p.Y, canvas.Rectangle(p.W, p.H))
	}
}

// patchRect is one square corner patch.
type patchRect struct {
	X, Y, W, H float64
}

// cornerPatches returns the squares covering the corners of a bubble
// fragment that must not be rounded.
func cornerPatches(b layout.BubbleBox, radius float64) []patchRect {
	var patches []patchRect
	if !b.RoundTop {
		patches = append(patches,
			patchRect{X: b.X, Y: b.Y, W: radius, H: radius},
			patchRect{X: b.X + b.Width - radius, Y: b.Y, W: radius, H: radius},
		)
	}
	if !b.RoundBottom {
		patches = append(patches,
			patchRect{X: b.X, Y: b.Y + b.Height - radius, W: radius, H: radius},
			patchRect{X: b.X + b.Width - radius, Y: b.Y + b.Height - radius, W: radius, H: radius},
		)
	}
	return patches
}

func (r *Renderer) drawSpan(ctx *canvas.Context, s layout.SpanBox) error {
	if s.Text == "" {
		return nil
	}
	face, err := r.face(s.FontSize, s.Bold, s.Color)
	if err != nil {
		return err
	}
	line := canvas.NewTextLine(face, s.Text, canvas.Left)
	baseline := s.Y + face.Metrics().Ascent
	ctx.DrawText(s.X, baseline, line)
	return nil
}

func (r *Renderer) drawChip(ctx *canvas.Context, chip layout.ChipBox) error {
	ctx.SetFillColor(colorFromLayout(chip.Fill))
	ctx.SetStrokeColor(color.RGBA{})
	ctx.DrawPath(chip.X, chip.Y, canvas.RoundedRectangle(chip.Width, chip.Height, chip.Height/2))

	if chip.Label == "" {
		return nil
	}
	face, err := r.face(chip.FontSize, false, chip.Ink)
	if err != nil {
		return err
	}
	line := canvas.NewTextLine(face, chip.Label, canvas.Center)
	metrics := face.Metrics()
	top := chip.Y + (chip.Height-metrics.LineHeight)/2
	ctx.DrawText(chip.X+chip.Width/2, top+metrics.Ascent, line)
	return nil
}

// face returns a font face for a size given in mm.
func (r *Renderer) face(fontSize float64, bold bool, col layout.Color) (*canvas.FontFace, error) {
	family, err := r.ensureFamily()
	if err != nil {
		return nil, err
	}
	style := canvas.FontRegular
	if bold {
		style = canvas.FontBold
	}
	return family.Face(fontSize*layout.MmToPt, colorFromLayout(col), style, canvas.FontNormal), nil
}

func (r *Renderer) ensureFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	if r.family != nil {
		return r.family, nil
	}
	if r.broken {
		return nil, fmt.Errorf("fonts unavailable")
	}

	family := canvas.NewFontFamily("parley")
	regular, err := loadFontBytes(r.opts.FontRegular, lmroman10regular.TTF)
	if err == nil {
		err = family.LoadFont(regular, 0, canvas.FontRegular)
	}
	if err != nil {
		r.broken = true
		return nil, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := loadFontBytes(r.opts.FontBold, lmroman10bold.TTF)
	if err == nil {
		err = family.LoadFont(bold, 0, canvas.FontBold)
	}
	if err != nil {
		r.broken = true
		return nil, fmt.Errorf("load bold font: %w", err)
	}

	r.family = family
	return family, nil
}

func loadFontBytes(res Resource, fallback []byte) ([]byte, error) {
	if len(res.Bytes) > 0 {
		return res.Bytes, nil
	}
	if res.Path != "" {
		return os.ReadFile(res.Path)
	}
	return fallback, nil
}

// estimateTextWidth is the measurement fallback when no font is available.
func estimateTextWidth(text string, fontSize float64) float64 {
	return fontSize * 0.55 * float64(utf8.RuneCountInString(text))
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}
