package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/turkosaurus/guia/internal/types"
)

// FileClient reads attractions from a local yaml or json file.
type FileClient struct {
	path string
}

func NewFileClient(path string) *FileClient {
	return &FileClient{path: path}
}

// FetchAttractions re-reads the file on every call.
func (c *FileClient) FetchAttractions(ctx context.Context) ([]types.Attraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNetwork, err)
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read catalog %q: %w", ErrNetwork, c.path, err)
	}
	if strings.EqualFold(filepath.Ext(c.path), ".json") {
		return decodeJSON(data)
	}
	return DecodeYAML(data)
}

// DecodeYAML parses a yaml catalog: either a list of attractions or a
// mapping with an "attractions" list.
func DecodeYAML(data []byte) ([]types.Attraction, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, dataError(fmt.Errorf("parse catalog: %w", err))
	}
	var list []types.Attraction
	if len(doc.Content) > 0 {
		root := doc.Content[0]
		var err error
		if root.Kind == yaml.MappingNode {
			var env struct {
				Attractions []types.Attraction `yaml:"attractions"`
			}
			err = root.Decode(&env)
			list = env.Attractions
		} else {
			err = root.Decode(&list)
		}
		if err != nil {
			return nil, dataError(fmt.Errorf("decode catalog: %w", err))
		}
	}
	if err := types.ValidateAttractions(list); err != nil {
		return nil, dataError(err)
	}
	if list == nil {
		list = []types.Attraction{}
	}
	return list, nil
}
