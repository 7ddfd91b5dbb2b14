package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"stylestore/internal/model"
)

// fileStore implements Store over a single JSON document on disk.
type fileStore struct {
	path   string
	logger zerolog.Logger
}

// NewFileStore creates a file-backed cart store at the given path.
func NewFileStore(path string, logger zerolog.Logger) Store {
	return &fileStore{
		path:   path,
		logger: logger.With().Str("component", "cart-store").Logger(),
	}
}

// Load returns the stored cart. A missing file or unparseable content is
// treated as an empty cart; the condition is logged but not surfaced.
func (s *fileStore) Load(ctx context.Context) ([]model.CartItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug().Err(err).Str("path", s.path).Msg("cart file unreadable, loading empty cart")
		}
		return []model.CartItem{}, nil
	}

	var items []model.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		s.logger.Debug().Err(err).Str("path", s.path).Msg("cart file malformed, loading empty cart")
		return []model.CartItem{}, nil
	}

	if items == nil {
		items = []model.CartItem{}
	}
	return items, nil
}

// Save writes the cart to a temporary file and renames it into place so a
// partially written cart is never observable.
func (s *fileStore) Save(ctx context.Context, items []model.CartItem) error {
	if items == nil {
		items = []model.CartItem{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize cart: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cart directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".cart-*")
	if err != nil {
		return fmt.Errorf("failed to create temp cart file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write cart file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close cart file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace cart file: %w", err)
	}

	s.logger.Debug().Int("items", len(items)).Msg("cart persisted")
	return nil
}

// Clear removes the stored cart so a subsequent Load returns the empty cart.
func (s *fileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove cart file: %w", err)
	}
	return nil
}
