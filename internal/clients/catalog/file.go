package catalog

import (
	"context"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

type fileClient struct {
	path string
}

// NewFile creates a client that reads a YAML document with a top-level cards list.
// The file is read on every call; wrap it with NewCached to avoid that.
func NewFile(path string) (Client, error) {
	if path == "" {
		return nil, errors.InvalidArgument("catalog file path is required")
	}
	return &fileClient{path: path}, nil
}

func (c *fileClient) ListCards(_ context.Context) ([]entities.Card, error) {
	raw, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file %s not found", c.path)
		}
		return nil, errors.Wrapf(err, "failed to read catalog file %s", c.path)
	}

	var doc listResponse
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "catalog file is not valid yaml")
	}
	if err := checkCards(doc.Cards); err != nil {
		return nil, errors.Wrapf(err, "invalid catalog file %s", c.path)
	}
	return doc.Cards, nil
}
