package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogJSON = `{
	"products": [
		{
			"id": "1",
			"name": "Classic White T-Shirt",
			"category": "t-shirts",
			"price": "19.99",
			"inStock": true,
			"featured": true
		},
		{
			"id": "2",
			"name": "Slim Fit Jeans",
			"category": "pants",
			"price": "49.99",
			"discountedPrice": "39.99",
			"inStock": true
		}
	],
	"orders": []
}`

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileLoader_Load(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	path := writeCatalogFile(t, catalogJSON)

	doc, err := loader.Load(context.Background(), path)

	require.NoError(t, err)
	require.Len(t, doc.Products, 2)
	assert.Equal(t, "Classic White T-Shirt", doc.Products[0].Name)
	require.NotNil(t, doc.Products[1].DiscountedPrice)
	assert.True(t, doc.Products[1].DiscountedPrice.Equal(price("39.99")))
	assert.Empty(t, doc.Orders)
}

func TestFileLoader_LoadMissingFile(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	_, err := loader.Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalogue file")
}

func TestFileLoader_LoadMalformedFile(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	path := writeCatalogFile(t, "not json")

	_, err := loader.Load(context.Background(), path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse catalogue file")
}

// stubLoader records the path it was asked for and returns canned results.
type stubLoader struct {
	doc    Document
	err    error
	called bool
	path   string
}

func (s *stubLoader) Load(_ context.Context, path string) (Document, error) {
	s.called = true
	s.path = path
	return s.doc, s.err
}

func TestFallbackLoader_PrefersS3(t *testing.T) {
	s3 := &stubLoader{doc: Fixture()}
	file := &stubLoader{err: errors.New("should not be called")}
	loader := NewFallbackLoader(s3, file, "catalogs/", true, zerolog.Nop())

	doc, err := loader.Load(context.Background(), "catalog.json")

	require.NoError(t, err)
	assert.Len(t, doc.Products, 8)
	assert.Equal(t, "catalogs/catalog.json", s3.path)
	assert.False(t, file.called)
}

func TestFallbackLoader_FallsBackToFileOnS3Error(t *testing.T) {
	s3 := &stubLoader{err: errors.New("bucket unreachable")}
	file := &stubLoader{doc: Fixture()}
	loader := NewFallbackLoader(s3, file, "catalogs/", true, zerolog.Nop())

	doc, err := loader.Load(context.Background(), "catalog.json")

	require.NoError(t, err)
	assert.Len(t, doc.Products, 8)
	assert.True(t, s3.called)
	assert.Equal(t, "catalog.json", file.path)
}

func TestFallbackLoader_SkipsS3WhenDisabled(t *testing.T) {
	s3 := &stubLoader{doc: Fixture()}
	file := &stubLoader{doc: Fixture()}
	loader := NewFallbackLoader(s3, file, "catalogs/", false, zerolog.Nop())

	_, err := loader.Load(context.Background(), "catalog.json")

	require.NoError(t, err)
	assert.False(t, s3.called)
	assert.True(t, file.called)
}

func TestFallbackLoader_NilS3LoaderUsesFile(t *testing.T) {
	file := &stubLoader{doc: Fixture()}
	loader := NewFallbackLoader(nil, file, "", true, zerolog.Nop())

	_, err := loader.Load(context.Background(), "catalog.json")

	require.NoError(t, err)
	assert.True(t, file.called)
}
