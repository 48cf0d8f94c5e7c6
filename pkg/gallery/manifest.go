// Package gallery defines the host-facing data model for the layout engine:
// the gallery manifest (source image dimensions plus sizing parameters) and
// the serialized layout document produced by a computation.
//
// Manifests are read from TOML or JSON files; layout documents are JSON and
// carry bson tags for document-store persistence.
package gallery

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/tilecraft/mosaic/pkg/errors"
	"github.com/tilecraft/mosaic/pkg/masonry"
)

// Item is one image in a gallery manifest, identified only by its source
// pixel dimensions. The name is carried through for host-side display and
// never influences layout.
type Item struct {
	Name   string `json:"name,omitempty" toml:"name,omitempty"`
	Width  int    `json:"width" toml:"width"`
	Height int    `json:"height" toml:"height"`
}

// Manifest is a gallery description: the items to lay out and the sizing
// parameters shared by all strategies.
type Manifest struct {
	// ItemSize is the nominal square thumbnail dimension in pixels.
	ItemSize int `json:"item_size,omitempty" toml:"item_size"`

	// Gap is the spacing between adjacent items, rows and columns.
	Gap int `json:"gap,omitempty" toml:"gap"`

	Items []Item `json:"items" toml:"items"`
}

// DefaultItemSize is used when a manifest does not specify item_size.
const DefaultItemSize = 160

// ParseManifestTOML parses a TOML gallery manifest.
func ParseManifestTOML(data []byte) (Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, apperrors.Wrap(apperrors.ErrCodeInvalidManifest, err, "parse TOML manifest")
	}
	return m, m.Validate()
}

// ParseManifestJSON parses a JSON gallery manifest.
func ParseManifestJSON(data []byte) (Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, apperrors.Wrap(apperrors.ErrCodeInvalidManifest, err, "parse JSON manifest")
	}
	return m, m.Validate()
}

// ReadManifestFile reads a gallery manifest, choosing the parser from the
// file extension (.toml or .json).
func ReadManifestFile(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "read %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseManifestTOML(data)
	case ".json":
		return ParseManifestJSON(data)
	default:
		return Manifest{}, apperrors.New(apperrors.ErrCodeInvalidManifest,
			"unsupported manifest extension %q (want .toml or .json)", filepath.Ext(path))
	}
}

// Validate checks every item's dimensions and the sizing parameters.
func (m Manifest) Validate() error {
	if m.ItemSize < 0 || m.ItemSize > 65535 {
		return apperrors.New(apperrors.ErrCodeInvalidManifest, "item_size %d out of range", m.ItemSize)
	}
	if m.Gap < 0 || m.Gap > 65535 {
		return apperrors.New(apperrors.ErrCodeInvalidManifest, "gap %d out of range", m.Gap)
	}
	for i, it := range m.Items {
		if err := apperrors.ValidateItemDimensions(it.Width, it.Height); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidManifest, err, "item %d", i)
		}
		if it.Name != "" {
			if err := apperrors.ValidateManifestFilename(it.Name); err != nil {
				return apperrors.Wrap(apperrors.ErrCodeInvalidManifest, err, "item %d", i)
			}
		}
	}
	return nil
}

// CanonicalJSON returns a stable JSON encoding of the manifest, suitable for
// content hashing.
func (m Manifest) CanonicalJSON() []byte {
	data, _ := json.Marshal(m)
	return data
}

// BuildLayout constructs the layout state for this manifest: buffers sized
// to the item count, every item's source dimensions normalized and stored.
// A zero ItemSize falls back to DefaultItemSize.
func (m Manifest) BuildLayout() *masonry.Layout {
	itemSize := m.ItemSize
	if itemSize == 0 {
		itemSize = DefaultItemSize
	}

	l := masonry.New(len(m.Items), uint16(itemSize), uint16(m.Gap))
	for i, it := range m.Items {
		l.SetSourceSize(i, uint16(it.Width), uint16(it.Height))
	}
	return l
}

// String summarizes the manifest for logging.
func (m Manifest) String() string {
	return fmt.Sprintf("gallery{items: %d, item_size: %d, gap: %d}", len(m.Items), m.ItemSize, m.Gap)
}
