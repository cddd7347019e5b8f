package catalog

import (
	"context"
	"errors"
	"strings"

	"floorops/feature/catalog/models"

	"go.uber.org/zap"
)

// ErrInvalidInput marks validation failures the handler maps to 400.
var ErrInvalidInput = errors.New("invalid input")

// Service validates catalog mutations before handing them to the store.
type Service struct {
	store  *Store
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(store *Store, logger *zap.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Store exposes the underlying alias store for the cleaning engine.
func (s *Service) Store() *Store {
	return s.store
}

// ListSizes returns all canonical sizes.
func (s *Service) ListSizes(ctx context.Context) ([]models.Size, error) {
	return s.store.ListSizes(ctx)
}

// CreateSize adds a canonical size label.
func (s *Service) CreateSize(ctx context.Context, req models.CreateSizeRequest) error {
	label := strings.TrimSpace(req.Label)
	if label == "" {
		return errors.Join(ErrInvalidInput, errors.New("label is required"))
	}
	return s.store.CreateSize(ctx, label)
}

// ListSizeAliases returns all size alias edges.
func (s *Service) ListSizeAliases(ctx context.Context) ([]models.SizeAlias, error) {
	return s.store.ListSizeAliases(ctx)
}

// CreateSizeAlias adds an alias edge pointing at a canonical size.
func (s *Service) CreateSizeAlias(ctx context.Context, req models.CreateSizeAliasRequest) error {
	text := strings.TrimSpace(req.Text)
	mapped := strings.TrimSpace(req.MappedSize)
	if text == "" || mapped == "" {
		return errors.Join(ErrInvalidInput, errors.New("text and mapped_size are required"))
	}
	return s.store.CreateSizeAlias(ctx, text, mapped)
}

// ListProducts returns all canonical products.
func (s *Service) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.store.ListProducts(ctx)
}

// CreateProduct adds a canonical product name.
func (s *Service) CreateProduct(ctx context.Context, req models.CreateProductRequest) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return errors.Join(ErrInvalidInput, errors.New("name is required"))
	}
	return s.store.CreateProduct(ctx, name)
}

// ListProductAliases returns all product alias edges.
func (s *Service) ListProductAliases(ctx context.Context) ([]models.ProductAlias, error) {
	return s.store.ListProductAliases(ctx)
}

// CreateProductAlias adds an alias edge pointing at a canonical product name.
func (s *Service) CreateProductAlias(ctx context.Context, req models.CreateProductAliasRequest) error {
	text := strings.TrimSpace(req.Text)
	mapped := strings.TrimSpace(req.MappedName)
	if text == "" || mapped == "" {
		return errors.Join(ErrInvalidInput, errors.New("text and mapped_name are required"))
	}
	return s.store.CreateProductAlias(ctx, text, mapped)
}

// SearchProducts returns canonical product names matching the query.
func (s *Service) SearchProducts(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}
	return s.store.SearchProductNames(ctx, query)
}
