package catalog

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	db      *gorm.DB
}

// NewFeature creates a new Catalog feature.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	var svc *Service
	if db != nil {
		svc = NewService(NewStore(db), logger)
	}
	return &Feature{service: svc, handler: NewHandler(svc), db: db}
}

// Service returns the catalog service, or nil when the feature is disabled.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled. The catalog needs a database.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load migrates the dictionary tables and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.Store().Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
