package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// Loader reads a serialized catalogue document from some backing location.
type Loader interface {
	// Load reads and parses the catalogue document at the given path or key.
	Load(ctx context.Context, path string) (Document, error)
}

// fileLoader implements Loader for catalogue files on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a file-based catalogue loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "catalog-loader").Logger(),
	}
}

// Load reads a catalogue JSON document from disk.
func (l *fileLoader) Load(ctx context.Context, path string) (Document, error) {
	l.logger.Info().Str("file", path).Msg("loading catalogue file")

	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read catalogue file")
		return Document{}, fmt.Errorf("failed to read catalogue file %s: %w", path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to parse catalogue file")
		return Document{}, fmt.Errorf("failed to parse catalogue file %s: %w", path, err)
	}

	l.logger.Info().
		Str("file", path).
		Int("products", len(doc.Products)).
		Int("orders", len(doc.Orders)).
		Msg("catalogue file loaded")

	return doc, nil
}
