package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/tilecraft/mosaic/pkg/gallery"
	"github.com/tilecraft/mosaic/pkg/pipeline"
)

// previewCommand creates the preview command for interactive terminal previews.
func (c *CLI) previewCommand() *cobra.Command {
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "preview [gallery.toml]",
		Short: "Preview a masonry layout in the terminal",
		Long: `Preview a masonry layout in the terminal.

The preview command renders tiles as colored blocks scaled to the terminal
size. Press h, v, or g to switch between the horizontal, vertical, and grid
strategies; the layout recomputes as the terminal is resized.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := gallery.ReadManifestFile(args[0])
			if err != nil {
				return fmt.Errorf("load manifest %s: %w", args[0], err)
			}
			if opts.Strategy != "" {
				if err := gallery.ValidateStrategy(opts.Strategy); err != nil {
					return err
				}
			}

			model := newPreviewModel(manifest, opts)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", "", "initial packing strategy: horizontal (default), vertical, grid")
	cmd.Flags().Uint16Var(&opts.ItemSize, "item-size", 0, "base item size in pixels (overrides manifest)")
	cmd.Flags().Uint16Var(&opts.Gap, "gap", 0, "gap between items in pixels (overrides manifest)")

	return cmd
}

// previewCellWidth is how many layout pixels one terminal column represents.
// Terminal cells are roughly twice as tall as wide, so rows cover double.
const previewCellWidth = 8

// previewPalette cycles tile colors so adjacent tiles stay distinguishable.
var previewPalette = []lipgloss.Color{
	lipgloss.Color("36"),
	lipgloss.Color("75"),
	lipgloss.Color("35"),
	lipgloss.Color("220"),
	lipgloss.Color("167"),
	lipgloss.Color("245"),
}

// previewModel is the bubbletea model for the interactive layout preview.
type previewModel struct {
	manifest gallery.Manifest
	opts     pipeline.Options
	runner   *pipeline.Runner

	width  int
	height int
	doc    gallery.LayoutDocument
	err    error
}

// newPreviewModel creates a preview model with an uncached pipeline runner.
func newPreviewModel(manifest gallery.Manifest, opts pipeline.Options) previewModel {
	if opts.Strategy == "" {
		opts.Strategy = pipeline.DefaultStrategy
	}
	return previewModel{
		manifest: manifest,
		opts:     opts,
		runner:   pipeline.NewRunner(nil, nil, nil),
	}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "h":
			m.opts.Strategy = gallery.StrategyHorizontal
			m.recompute()
		case "v":
			m.opts.Strategy = gallery.StrategyVertical
			m.recompute()
		case "g":
			m.opts.Strategy = gallery.StrategyGrid
			m.recompute()
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.recompute()
	}
	return m, nil
}

// recompute recalculates the layout for the current terminal width.
func (m *previewModel) recompute() {
	if m.width <= 2 {
		return
	}
	containerPx := (m.width - 2) * previewCellWidth
	if containerPx > 65535 {
		containerPx = 65535
	}
	m.opts.ContainerWidth = uint16(containerPx)
	m.doc, m.err = m.runner.Compute(context.Background(), m.manifest, m.opts)
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Mosaic Preview"))
	b.WriteString("  ")
	b.WriteString(StyleHighlight.Render(m.opts.Strategy))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("h horizontal  v vertical  g grid  q quit"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(StyleWarning.Render("layout failed: " + m.err.Error()))
		return b.String()
	}
	if m.width == 0 || len(m.doc.Placements) == 0 {
		b.WriteString(StyleDim.Render("waiting for terminal size..."))
		return b.String()
	}

	b.WriteString(m.renderCanvas())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %d items · %dpx wide · %dpx tall",
		len(m.doc.Placements), m.doc.ContainerWidth, m.doc.TotalHeight)))

	return b.String()
}

// renderCanvas paints each tile onto a character grid scaled from layout
// pixels to terminal cells.
func (m previewModel) renderCanvas() string {
	cols := m.width - 2
	rows := m.height - 6
	if rows < 1 {
		rows = 1
	}

	// -1 marks an empty cell, otherwise the tile index owning it.
	canvas := make([][]int, rows)
	for y := range canvas {
		canvas[y] = make([]int, cols)
		for x := range canvas[y] {
			canvas[y][x] = -1
		}
	}

	cellHeight := previewCellWidth * 2
	for i, p := range m.doc.Placements {
		x0 := int(p.Left) / previewCellWidth
		x1 := (int(p.Left) + int(p.Width)) / previewCellWidth
		y0 := int(p.Top) / cellHeight
		y1 := (int(p.Top) + int(p.Height)) / cellHeight
		for y := y0; y < y1 && y < rows; y++ {
			for x := x0; x < x1 && x < cols; x++ {
				canvas[y][x] = i
			}
		}
	}

	var b strings.Builder
	for y := range canvas {
		b.WriteString(" ")
		run := -2
		var cells strings.Builder
		flush := func() {
			if cells.Len() == 0 {
				return
			}
			if run < 0 {
				b.WriteString(cells.String())
			} else {
				color := previewPalette[run%len(previewPalette)]
				b.WriteString(lipgloss.NewStyle().Foreground(color).Render(cells.String()))
			}
			cells.Reset()
		}
		for x := range canvas[y] {
			idx := canvas[y][x]
			if idx != run {
				flush()
				run = idx
			}
			if idx < 0 {
				cells.WriteString(" ")
			} else {
				cells.WriteString("█")
			}
		}
		flush()
		b.WriteString("\n")
	}
	return b.String()
}
