// Command terragrid generates a terrain image from a YAML pipeline
// document.
//
// Usage:
//
//	terragrid -config terrain.yaml -out terrain.png
//
// The document declares the grid dimensions, optional named layers, and
// the ordered operation chain; see the terraconf package for the schema.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/terragrid/export"
	"github.com/katalvlaran/terragrid/terraconf"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "terragrid:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("terragrid", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to the YAML pipeline document (required)")
	outPath := fs.String("out", "terrain.png", "output PNG path")
	width := fs.Int("width", 0, "override the document's grid width")
	height := fs.Int("height", 0, "override the document's grid height")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" {
		fs.Usage()

		return errors.New("-config is required")
	}

	c, err := terraconf.LoadFile(*configPath)
	if err != nil {
		return err
	}
	if *width > 0 {
		c.Width = *width
	}
	if *height > 0 {
		c.Height = *height
	}

	p, err := c.Build()
	if err != nil {
		return err
	}
	g, err := p.Apply()
	if err != nil {
		return err
	}

	img, err := export.Image(g, export.DefaultPalette())
	if err != nil {
		return err
	}
	if err = export.SavePNG(*outPath, img); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%dx%d)\n", *outPath, g.Width(), g.Height())

	return nil
}
