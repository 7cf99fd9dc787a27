package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ByLCY/parley/layout"
	"github.com/ByLCY/parley/renderer"
	canvasrenderer "github.com/ByLCY/parley/renderer/canvas"
	"github.com/ByLCY/parley/transcript"
)

func main() {
	input := flag.String("in", "", "transcript JSON path")
	output := flag.String("out", "", "PDF output path (default: chat-<timestamp>.pdf)")
	debug := flag.String("debug", "", "layout debug JSON output path")
	title := flag.String("title", "", "document title override")
	flag.Parse()

	if *input == "" {
		log.Fatal("missing -in transcript path")
	}
	outputPath := *output
	if outputPath == "" {
		outputPath = time.Now().Format("chat-20060102-150405.pdf")
	}

	var r renderer.Renderer = canvasrenderer.NewRenderer()
	if err := run(*input, outputPath, *debug, *title, r); err != nil {
		log.Fatalf("render failed: %v", err)
	}
	fmt.Printf("wrote %s\n", outputPath)
}

// run chains transcript decoding, layout and rendering.
func run(inputPath, outputPath, debugPath, title string, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer must not be nil")
	}
	t, err := transcript.Load(inputPath)
	if err != nil {
		return err
	}

	m, ok := r.(layout.Measurer)
	if !ok {
		return fmt.Errorf("renderer does not provide text measurement")
	}

	result, err := layout.Build(t, layout.BuildOptions{
		Measurer: m,
		Meta:     layout.DocumentMeta{Title: title},
	})
	if err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	if debugPath != "" {
		if err := layout.WriteDebugJSON(result, debugPath); err != nil {
			return fmt.Errorf("write debug JSON: %w", err)
		}
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}

	doc, err := r.Render(result)
	if err != nil {
		return fmt.Errorf("render PDF: %w", err)
	}
	if err := doc.Save(outputPath); err != nil {
		return fmt.Errorf("write PDF file: %w", err)
	}
	return nil
}
