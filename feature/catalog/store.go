package catalog

import (
	"context"
	"errors"
	"fmt"

	"floorops/core/cleaning"
	"floorops/feature/catalog/models"

	"gorm.io/gorm"
)

// Store implements cleaning.AliasStore on a GORM database.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store over an already connected database.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the dictionary tables.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(
		&models.Size{},
		&models.SizeAlias{},
		&models.Product{},
		&models.ProductAlias{},
	); err != nil {
		return fmt.Errorf("failed to migrate dictionary tables: %w", err)
	}
	return nil
}

// LoadSizes returns every canonical size label.
func (s *Store) LoadSizes(ctx context.Context) ([]cleaning.KnownValue, error) {
	var sizes []models.Size
	if err := s.db.WithContext(ctx).Order("usage_count DESC, label ASC").Find(&sizes).Error; err != nil {
		return nil, fmt.Errorf("failed to load sizes: %w", err)
	}
	values := make([]cleaning.KnownValue, 0, len(sizes))
	for _, size := range sizes {
		values = append(values, cleaning.KnownValue{Label: size.Label})
	}
	return values, nil
}

// LoadSizeAliases returns every size alias edge.
func (s *Store) LoadSizeAliases(ctx context.Context) ([]cleaning.Alias, error) {
	var aliases []models.SizeAlias
	if err := s.db.WithContext(ctx).Find(&aliases).Error; err != nil {
		return nil, fmt.Errorf("failed to load size aliases: %w", err)
	}
	edges := make([]cleaning.Alias, 0, len(aliases))
	for _, a := range aliases {
		edges = append(edges, cleaning.Alias{Text: a.Text, Mapped: a.MappedSize})
	}
	return edges, nil
}

// LoadProductAliases returns every product alias edge.
func (s *Store) LoadProductAliases(ctx context.Context) ([]cleaning.Alias, error) {
	var aliases []models.ProductAlias
	if err := s.db.WithContext(ctx).Find(&aliases).Error; err != nil {
		return nil, fmt.Errorf("failed to load product aliases: %w", err)
	}
	edges := make([]cleaning.Alias, 0, len(aliases))
	for _, a := range aliases {
		edges = append(edges, cleaning.Alias{Text: a.Text, Mapped: a.MappedName})
	}
	return edges, nil
}

// LoadProductNames returns every canonical product name.
func (s *Store) LoadProductNames(ctx context.Context) ([]string, error) {
	var names []string
	if err := s.db.WithContext(ctx).Model(&models.Product{}).Order("name ASC").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("failed to load product names: %w", err)
	}
	return names, nil
}

// CreateSize registers a canonical size label. Creating an existing label is
// a no-op so rule promotion stays retryable.
func (s *Store) CreateSize(ctx context.Context, label string) error {
	if label == "" {
		return errors.New("size label must not be empty")
	}
	size := models.Size{Label: label}
	if err := s.db.WithContext(ctx).Where(models.Size{Label: label}).FirstOrCreate(&size).Error; err != nil {
		return fmt.Errorf("failed to create size %q: %w", label, err)
	}
	return nil
}

// CreateSizeAlias registers an aliasText -> mappedSize edge, idempotently.
func (s *Store) CreateSizeAlias(ctx context.Context, aliasText, mappedSize string) error {
	if aliasText == "" || mappedSize == "" {
		return errors.New("size alias text and mapped size must not be empty")
	}
	alias := models.SizeAlias{Text: aliasText, MappedSize: mappedSize}
	if err := s.db.WithContext(ctx).Where(models.SizeAlias{Text: aliasText}).FirstOrCreate(&alias).Error; err != nil {
		return fmt.Errorf("failed to create size alias %q: %w", aliasText, err)
	}
	return nil
}

// CreateProductAlias registers an aliasText -> mappedProductName edge. The
// mapped name is added to the canonical products as well, so a promotion that
// introduces a brand-new product name keeps the search index consistent.
func (s *Store) CreateProductAlias(ctx context.Context, aliasText, mappedProductName string) error {
	if aliasText == "" || mappedProductName == "" {
		return errors.New("product alias text and mapped name must not be empty")
	}
	product := models.Product{Name: mappedProductName}
	if err := s.db.WithContext(ctx).Where(models.Product{Name: mappedProductName}).FirstOrCreate(&product).Error; err != nil {
		return fmt.Errorf("failed to create product %q: %w", mappedProductName, err)
	}
	alias := models.ProductAlias{Text: aliasText, MappedName: mappedProductName}
	if err := s.db.WithContext(ctx).Where(models.ProductAlias{Text: aliasText}).FirstOrCreate(&alias).Error; err != nil {
		return fmt.Errorf("failed to create product alias %q: %w", aliasText, err)
	}
	return nil
}

// CreateProduct registers a canonical product name, idempotently.
func (s *Store) CreateProduct(ctx context.Context, name string) error {
	if name == "" {
		return errors.New("product name must not be empty")
	}
	product := models.Product{Name: name}
	if err := s.db.WithContext(ctx).Where(models.Product{Name: name}).FirstOrCreate(&product).Error; err != nil {
		return fmt.Errorf("failed to create product %q: %w", name, err)
	}
	return nil
}

// SearchProductNames returns canonical product names containing the query,
// case-insensitively, capped at 20 results.
func (s *Store) SearchProductNames(ctx context.Context, query string) ([]string, error) {
	var names []string
	err := s.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("name LIKE ?", "%"+query+"%").
		Order("name ASC").
		Limit(20).
		Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search product names: %w", err)
	}
	return names, nil
}

// ListSizes returns the size rows for the catalog endpoints.
func (s *Store) ListSizes(ctx context.Context) ([]models.Size, error) {
	var sizes []models.Size
	if err := s.db.WithContext(ctx).Order("label ASC").Find(&sizes).Error; err != nil {
		return nil, fmt.Errorf("failed to list sizes: %w", err)
	}
	return sizes, nil
}

// ListSizeAliases returns the size alias rows for the catalog endpoints.
func (s *Store) ListSizeAliases(ctx context.Context) ([]models.SizeAlias, error) {
	var aliases []models.SizeAlias
	if err := s.db.WithContext(ctx).Order("text ASC").Find(&aliases).Error; err != nil {
		return nil, fmt.Errorf("failed to list size aliases: %w", err)
	}
	return aliases, nil
}

// ListProducts returns the product rows for the catalog endpoints.
func (s *Store) ListProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// ListProductAliases returns the product alias rows for the catalog endpoints.
func (s *Store) ListProductAliases(ctx context.Context) ([]models.ProductAlias, error) {
	var aliases []models.ProductAlias
	if err := s.db.WithContext(ctx).Order("text ASC").Find(&aliases).Error; err != nil {
		return nil, fmt.Errorf("failed to list product aliases: %w", err)
	}
	return aliases, nil
}
