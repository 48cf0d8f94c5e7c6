package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/tilecraft/mosaic/pkg/errors"
	"github.com/tilecraft/mosaic/pkg/gallery"
	"github.com/tilecraft/mosaic/pkg/pipeline"
)

// layoutCommand creates the layout command for computing gallery layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
	)
	opts := pipeline.Options{}
	opts.SetDefaults()

	cmd := &cobra.Command{
		Use:   "layout [gallery.toml]",
		Short: "Compute a masonry layout from a gallery manifest",
		Long: `Compute a masonry layout from a gallery manifest.

The layout command takes a gallery manifest (TOML or JSON) listing item
dimensions and computes tile placements for the requested container width.
The output is a layout.json file that can be rendered to SVG using the
'render' command.

Three packing strategies are supported: horizontal packs items into rows of
uniform height, vertical balances items across equal-width columns, and grid
crops every item to a uniform square cell.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	// Layout flags
	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", opts.Strategy, "packing strategy: horizontal (default), vertical, grid")
	cmd.Flags().Uint16VarP(&opts.ContainerWidth, "width", "w", opts.ContainerWidth, "container width in pixels")
	cmd.Flags().Uint16Var(&opts.ItemSize, "item-size", 0, "base item size in pixels (overrides manifest)")
	cmd.Flags().Uint16Var(&opts.Gap, "gap", 0, "gap between items in pixels (overrides manifest)")

	return cmd
}

// runLayout loads the manifest, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	if output != "" {
		if err := apperrors.ValidatePath(output); err != nil {
			return err
		}
	}

	manifest, err := gallery.ReadManifestFile(input)
	if err != nil {
		return fmt.Errorf("load manifest %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Computing %s layout...", opts.Strategy))
	spinner.Start()

	doc, cacheHit, err := runner.ComputeWithCacheInfo(ctx, manifest, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := gallery.WriteLayoutFile(doc, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(doc.Placements), doc.TotalHeight, cacheHit)
	printNewline()
	printNextStep("Render", "mosaic render "+outputPath)

	return nil
}
