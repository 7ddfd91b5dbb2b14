package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog"

	"stylestore/internal/catalog"
	"stylestore/internal/model"
)

// JSONStore implements ProductRepository and OrderRepository over a single
// JSON document on disk. It is the storage backend used when no database is
// configured.
type JSONStore struct {
	mu     sync.Mutex
	path   string
	doc    catalog.Document
	logger zerolog.Logger
}

// NewJSONStore opens the store at path. A missing file is initialised with
// the given seed document.
func NewJSONStore(path string, seed catalog.Document, logger zerolog.Logger) (*JSONStore, error) {
	s := &JSONStore{
		path:   path,
		logger: logger.With().Str("repository", "jsonstore").Logger(),
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		s.doc = seed
		if err := s.persist(); err != nil {
			return nil, err
		}
		s.logger.Info().
			Str("path", path).
			Int("products", len(seed.Products)).
			Msg("store data file initialised from seed")
	case err != nil:
		return nil, fmt.Errorf("failed to read store data file %s: %w", path, err)
	default:
		if err := json.Unmarshal(data, &s.doc); err != nil {
			return nil, fmt.Errorf("failed to parse store data file %s: %w", path, err)
		}
	}

	return s, nil
}

// GetAll retrieves all products.
func (s *JSONStore) GetAll(ctx context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, len(s.doc.Products))
	copy(out, s.doc.Products)
	return out, nil
}

// GetByID retrieves a single product by its ID.
func (s *JSONStore) GetByID(ctx context.Context, id string) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Products {
		if s.doc.Products[i].ID == id {
			p := s.doc.Products[i]
			return &p, nil
		}
	}
	return nil, nil
}

// GetByCategory retrieves all products in the given category.
func (s *JSONStore) GetByCategory(ctx context.Context, category string) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Product{}
	for _, p := range s.doc.Products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetFeatured retrieves all featured products.
func (s *JSONStore) GetFeatured(ctx context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Product{}
	for _, p := range s.doc.Products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetAllOrders retrieves all orders.
func (s *JSONStore) GetAllOrders(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.doc.Orders))
	copy(out, s.doc.Orders)
	return out, nil
}

// GetOrderByID retrieves an order by its ID.
func (s *JSONStore) GetOrderByID(ctx context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Orders {
		if s.doc.Orders[i].ID == id {
			o := s.doc.Orders[i]
			return &o, nil
		}
	}
	return nil, nil
}

// CreateOrder appends the order and persists the document.
func (s *JSONStore) CreateOrder(ctx context.Context, order *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Orders = append(s.doc.Orders, *order)
	return s.persist()
}

// UpdateOrderStatus sets the status of the order with the given ID, persists
// the document and returns the updated order.
func (s *JSONStore) UpdateOrderStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.doc.Orders {
		if s.doc.Orders[i].ID == id {
			s.doc.Orders[i].Status = status
			o := s.doc.Orders[i]
			if err := s.persist(); err != nil {
				return nil, err
			}
			return &o, nil
		}
	}
	return nil, nil
}

// persist writes the document to a temp file and renames it into place.
// Callers must hold the mutex.
func (s *JSONStore) persist() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store data: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".store-*")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write store data file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close store data file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store data file: %w", err)
	}
	return nil
}

// Orders returns an OrderRepository view of the store.
func (s *JSONStore) Orders() OrderRepository {
	return jsonOrderRepository{store: s}
}

// jsonOrderRepository adapts the order methods of JSONStore to the
// OrderRepository interface (whose product counterpart JSONStore satisfies
// directly).
type jsonOrderRepository struct {
	store *JSONStore
}

func (r jsonOrderRepository) GetAll(ctx context.Context) ([]model.Order, error) {
	return r.store.GetAllOrders(ctx)
}

func (r jsonOrderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	return r.store.GetOrderByID(ctx, id)
}

func (r jsonOrderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.store.CreateOrder(ctx, order)
}

func (r jsonOrderRepository) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	return r.store.UpdateOrderStatus(ctx, id, status)
}
