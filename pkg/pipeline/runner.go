package pipeline

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tilecraft/mosaic/pkg/cache"
	apperrors "github.com/tilecraft/mosaic/pkg/errors"
	"github.com/tilecraft/mosaic/pkg/gallery"
	"github.com/tilecraft/mosaic/pkg/render"
)

// cacheTTL bounds how long computed layouts and artifacts stay cached.
const cacheTTL = 24 * time.Hour

// Runner executes the layout pipeline with caching and logging.
type Runner struct {
	cache  cache.Cache
	keyer  cache.Keyer
	logger *log.Logger
}

// NewRunner creates a pipeline runner. A nil cache disables caching, a nil
// keyer selects the default key generator, and a nil logger discards output.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{cache: c, keyer: keyer, logger: logger}
}

// Close releases the runner's cache backend.
func (r *Runner) Close() error {
	return r.cache.Close()
}

// Compute runs the requested packing strategy over the manifest's items and
// returns the resulting layout document.
func (r *Runner) Compute(ctx context.Context, m gallery.Manifest, opts Options) (gallery.LayoutDocument, error) {
	doc, _, err := r.ComputeWithCacheInfo(ctx, m, opts)
	return doc, err
}

// ComputeWithCacheInfo is Compute plus a report of whether the layout was
// served from cache.
func (r *Runner) ComputeWithCacheInfo(ctx context.Context, m gallery.Manifest, opts Options) (gallery.LayoutDocument, bool, error) {
	if err := opts.Validate(); err != nil {
		return gallery.LayoutDocument{}, false, err
	}
	if err := m.Validate(); err != nil {
		return gallery.LayoutDocument{}, false, err
	}

	key := r.keyer.LayoutKey(cache.Hash(m.CanonicalJSON()), opts.LayoutKeyOpts())
	if data, hit, err := r.cache.Get(ctx, key); err == nil && hit {
		if doc, err := gallery.UnmarshalLayout(data); err == nil {
			r.logger.Debug("layout cache hit", "strategy", opts.Strategy, "items", len(m.Items))
			return doc, true, nil
		}
	}

	start := time.Now()
	doc, err := computeDocument(m, opts)
	if err != nil {
		return gallery.LayoutDocument{}, false, err
	}
	r.logger.Debug("layout computed",
		"strategy", opts.Strategy,
		"items", len(m.Items),
		"height", doc.TotalHeight,
		"elapsed", time.Since(start).Round(time.Microsecond))

	if data, err := gallery.MarshalLayout(doc); err == nil {
		if err := r.cache.Set(ctx, key, data, cacheTTL); err != nil {
			r.logger.Debug("layout cache write failed", "err", err)
		}
	}
	return doc, false, nil
}

// computeDocument applies option overrides and dispatches to one packer.
func computeDocument(m gallery.Manifest, opts Options) (gallery.LayoutDocument, error) {
	l := m.BuildLayout()
	if opts.ItemSize != 0 {
		l.SetItemSize(opts.ItemSize)
	}
	if opts.Gap != 0 {
		l.SetGap(opts.Gap)
	}

	var total uint32
	switch opts.Strategy {
	case gallery.StrategyHorizontal:
		total = l.ComputeHorizontal(opts.ContainerWidth)
	case gallery.StrategyVertical:
		total = l.ComputeVertical(opts.ContainerWidth)
	case gallery.StrategyGrid:
		total = l.ComputeGrid(opts.ContainerWidth)
	default:
		return gallery.LayoutDocument{}, gallery.ValidateStrategy(opts.Strategy)
	}

	return gallery.NewLayoutDocument(l, opts.Strategy, opts.ContainerWidth, total), nil
}

// Render produces the requested artifact formats for a computed layout,
// keyed by format name.
func (r *Runner) Render(ctx context.Context, doc gallery.LayoutDocument, opts Options) (map[string][]byte, error) {
	opts.SetDefaults()
	if err := ValidateFormats(opts.Formats); err != nil {
		return nil, err
	}

	docJSON, err := gallery.MarshalLayout(doc)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "marshal layout")
	}
	layoutHash := cache.Hash(docJSON)

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		key := r.keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if data, hit, err := r.cache.Get(ctx, key); err == nil && hit {
			artifacts[format] = data
			continue
		}

		var data []byte
		switch format {
		case FormatJSON:
			data = docJSON
		case FormatSVG:
			var svgOpts []render.SVGOption
			if opts.Labels {
				svgOpts = append(svgOpts, render.WithLabels())
			}
			data = render.RenderSVG(doc, svgOpts...)
		}

		artifacts[format] = data
		if err := r.cache.Set(ctx, key, data, cacheTTL); err != nil {
			r.logger.Debug("artifact cache write failed", "format", format, "err", err)
		}
	}
	return artifacts, nil
}
