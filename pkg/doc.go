// Package pkg provides the core libraries for mosaic masonry layouts.
//
// # Overview
//
// Mosaic packs photo-gallery items of arbitrary aspect ratios into compact
// layouts. The pkg directory is organized into five main areas:
//
//  1. [masonry] - The layout engine (aspect normalization, packing strategies)
//  2. [gallery] - Manifest parsing and layout document serialization
//  3. [pipeline] - Orchestration (manifest → layout → artifacts) with caching
//  4. [render] - SVG artifact generation
//  5. [cache], [store] - Infrastructure (layout caching, saved layouts)
//
// # Architecture
//
// The typical data flow through mosaic:
//
//	Gallery Manifest (TOML/JSON)
//	         ↓
//	    [gallery] package (parse + validate item dimensions)
//	         ↓
//	    [masonry] package (pack into rows, columns, or a grid)
//	         ↓
//	    [render] package (SVG) or [gallery] (layout JSON)
//
// # Quick Start
//
//	m, err := gallery.ReadManifestFile("gallery.toml")
//	if err != nil {
//	    return err
//	}
//	runner := pipeline.NewRunner(nil, nil, nil)
//	doc, err := runner.Compute(ctx, m, pipeline.Options{ContainerWidth: 800})
package pkg
