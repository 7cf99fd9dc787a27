package renderer

import (
	"os"

	"github.com/ByLCY/parley/layout"
)

// Renderer turns a layout result into a finished document, e.g. a PDF.
type Renderer interface {
	Render(result *layout.Result) (*Document, error)
}

// Document is an opaque finished multi-page render.
type Document struct {
	data []byte
}

// NewDocument wraps serialized document bytes.
func NewDocument(data []byte) *Document {
	return &Document{data: data}
}

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte {
	return d.data
}

// Save writes the document to path.
func (d *Document) Save(path string) error {
	return os.WriteFile(path, d.data, 0o644)
}
