package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	regerrors "github.com/wagiedev/uikit-mcp-go/internal/errors"
)

//go:embed data/catalog.yaml
var embeddedCatalog []byte

// document is the on-disk shape of a catalog file.
type document struct {
	Categories []CategoryInfo `yaml:"categories"`
	Components []Component    `yaml:"components"`
}

// Load decodes a YAML catalog document and builds a Registry from it.
// Unknown fields are rejected so typos in the source data surface at startup.
func Load(r io.Reader) (*Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, regerrors.ErrEmptyCatalog
		}

		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	reg, err := New(doc.Categories, doc.Components)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	return reg, nil
}

// LoadFile reads a catalog document from path.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// LoadEmbedded builds a Registry from the catalog compiled into the binary.
func LoadEmbedded() (*Registry, error) {
	return Load(bytes.NewReader(embeddedCatalog))
}
