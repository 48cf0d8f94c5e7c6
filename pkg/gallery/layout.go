package gallery

import (
	"encoding/json"
	"os"

	apperrors "github.com/tilecraft/mosaic/pkg/errors"
	"github.com/tilecraft/mosaic/pkg/masonry"
)

// Layout strategies. Exactly one is applied per computation; they are
// alternatives over the same state, never composed.
const (
	// StrategyHorizontal is row-fill masonry: rows justified to the
	// container width.
	StrategyHorizontal = "horizontal"

	// StrategyVertical is column masonry: items greedily placed into the
	// shortest column.
	StrategyVertical = "vertical"

	// StrategyGrid is a uniform fixed-cell grid.
	StrategyGrid = "grid"
)

// Placement is the serialized position and size of one item.
type Placement struct {
	Width  uint16 `json:"width" bson:"width"`
	Height uint16 `json:"height" bson:"height"`
	Left   uint32 `json:"left" bson:"left"`
	Top    uint32 `json:"top" bson:"top"`
}

// LayoutDocument is the serialization format for a computed layout: the
// parameters that produced it plus every item's placement and the total
// container height for scroll-region sizing.
//
// For vertical layouts the total height is the core's leaf-half estimate,
// not an exact maximum; consumers sizing scroll regions should treat it
// accordingly.
type LayoutDocument struct {
	// ID identifies a saved layout in a store; empty for ad-hoc results.
	ID string `json:"id,omitempty" bson:"_id,omitempty"`

	Strategy       string `json:"strategy" bson:"strategy"`
	ContainerWidth uint16 `json:"container_width" bson:"container_width"`
	ItemSize       uint16 `json:"item_size" bson:"item_size"`
	Gap            uint16 `json:"gap" bson:"gap"`

	TotalHeight uint32      `json:"total_height" bson:"total_height"`
	Placements  []Placement `json:"placements" bson:"placements"`
}

// NewLayoutDocument captures the current placements of a computed layout
// state into a serializable document.
func NewLayoutDocument(l *masonry.Layout, strategy string, containerWidth uint16, totalHeight uint32) LayoutDocument {
	placements := make([]Placement, l.Len())
	for i := range placements {
		p := l.Placement(i)
		placements[i] = Placement{Width: p.Width, Height: p.Height, Left: p.Left, Top: p.Top}
	}
	return LayoutDocument{
		Strategy:       strategy,
		ContainerWidth: containerWidth,
		ItemSize:       l.ItemSize(),
		Gap:            l.Gap(),
		TotalHeight:    totalHeight,
		Placements:     placements,
	}
}

// MarshalLayout serializes a LayoutDocument to pretty-printed JSON bytes.
func MarshalLayout(d LayoutDocument) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// UnmarshalLayout deserializes JSON bytes into a LayoutDocument.
// Validates that the strategy is one of the supported packers.
func UnmarshalLayout(data []byte) (LayoutDocument, error) {
	var d LayoutDocument
	if err := json.Unmarshal(data, &d); err != nil {
		return LayoutDocument{}, apperrors.Wrap(apperrors.ErrCodeInvalidLayout, err, "unmarshal layout")
	}

	if d.Strategy == "" {
		d.Strategy = StrategyHorizontal
	}
	if err := ValidateStrategy(d.Strategy); err != nil {
		return LayoutDocument{}, err
	}

	return d, nil
}

// WriteLayoutFile writes a LayoutDocument to a JSON file.
func WriteLayoutFile(d LayoutDocument, path string) error {
	data, err := MarshalLayout(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a LayoutDocument from a JSON file.
func ReadLayoutFile(path string) (LayoutDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return LayoutDocument{}, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "read %s", path)
	}
	return UnmarshalLayout(data)
}

// ValidateStrategy checks that a strategy names one of the three packers.
func ValidateStrategy(strategy string) error {
	switch strategy {
	case StrategyHorizontal, StrategyVertical, StrategyGrid:
		return nil
	}
	return apperrors.New(apperrors.ErrCodeInvalidStrategy,
		"invalid strategy: %q (must be one of: horizontal, vertical, grid)", strategy)
}
