// Package render turns computed layout documents into visual artifacts.
// The core layout engine itself never renders; these sinks exist for
// previewing and debugging a layout outside a real host UI.
package render

import (
	"bytes"
	"fmt"

	"github.com/tilecraft/mosaic/pkg/gallery"
)

const tileInteractionCSS = `
    .tile { transition: opacity 0.15s ease; }
    .tile:hover { opacity: 0.75; stroke-width: 3; }`

// palette cycles through muted fills so adjacent tiles stay distinguishable.
var palette = []string{
	"#8ecae6", "#219ebc", "#ffb703", "#fb8500", "#90be6d", "#577590",
}

// SVGOption configures the SVG renderer.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	labels bool
	stroke string
}

// WithLabels draws each tile's index in its center.
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }

// WithStroke overrides the tile outline color.
func WithStroke(color string) SVGOption { return func(r *svgRenderer) { r.stroke = color } }

// RenderSVG renders every placement of a layout document as a rectangle.
// The viewBox spans the container width by the document's total height.
func RenderSVG(d gallery.LayoutDocument, opts ...SVGOption) []byte {
	r := svgRenderer{stroke: "#023047"}
	for _, opt := range opts {
		opt(&r)
	}

	width := int(d.ContainerWidth)
	height := int(d.TotalHeight)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", tileInteractionCSS)

	for i, p := range d.Placements {
		fill := palette[i%len(palette)]
		fmt.Fprintf(&buf,
			`  <rect class="tile" id="tile-%d" x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s" stroke-width="1"/>`+"\n",
			i, p.Left, p.Top, p.Width, p.Height, fill, r.stroke)
	}

	if r.labels {
		for i, p := range d.Placements {
			cx := p.Left + uint32(p.Width)/2
			cy := p.Top + uint32(p.Height)/2
			fmt.Fprintf(&buf,
				`  <text x="%d" y="%d" text-anchor="middle" dominant-baseline="central" font-family="sans-serif" font-size="12" fill="%s">%d</text>`+"\n",
				cx, cy, r.stroke, i)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
