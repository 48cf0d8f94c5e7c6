// Package pipeline provides the manifest → layout → artifact pipeline for
// mosaic.
//
// This package implements the flow shared by the CLI and the HTTP API: read
// a gallery manifest, compute placements with one of the packing strategies,
// and optionally render the result. Centralizing it keeps behavior and cache
// keys consistent across entry points.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Strategy:       gallery.StrategyHorizontal,
//	    ContainerWidth: 1200,
//	}
//	doc, err := runner.Compute(ctx, manifest, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	artifacts, err := runner.Render(ctx, doc, opts)
package pipeline

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tilecraft/mosaic/pkg/cache"
	apperrors "github.com/tilecraft/mosaic/pkg/errors"
	"github.com/tilecraft/mosaic/pkg/gallery"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultContainerWidth is the default container width in pixels,
	// standing in for a measured viewport when the host supplies none.
	DefaultContainerWidth = 800

	// DefaultStrategy is the packing strategy used when none is requested.
	DefaultStrategy = gallery.StrategyHorizontal
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the layout pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Layout options
	Strategy       string `json:"strategy,omitempty"`
	ContainerWidth uint16 `json:"container_width,omitempty"`

	// ItemSize and Gap override the manifest's values when non-zero.
	ItemSize uint16 `json:"item_size,omitempty"`
	Gap      uint16 `json:"gap,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Labels  bool     `json:"labels,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperrors.New(apperrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// SetDefaults applies default values for layout computation and rendering.
func (o *Options) SetDefaults() {
	if o.Strategy == "" {
		o.Strategy = DefaultStrategy
	}
	if o.ContainerWidth == 0 {
		o.ContainerWidth = DefaultContainerWidth
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks strategy and formats.
func (o *Options) Validate() error {
	o.SetDefaults()
	if err := gallery.ValidateStrategy(o.Strategy); err != nil {
		return err
	}
	return ValidateFormats(o.Formats)
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Strategy:       o.Strategy,
		ContainerWidth: o.ContainerWidth,
		ItemSize:       o.ItemSize,
		Gap:            o.Gap,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
	}
}
