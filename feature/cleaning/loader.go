package cleaning

import (
	corecleaning "floorops/core/cleaning"
	"floorops/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Cleaning feature. The store and storage client may
// be nil; the feature then runs degraded (empty dictionary, no upload
// archive) rather than refusing to load.
func NewFeature(store corecleaning.AliasStore, client storage.Client, bucket string, cfg corecleaning.Config, logger *zap.Logger) *Feature {
	svc := NewService(store, client, bucket, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Service returns the session manager, for the sweeper hookup in cmd.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "cleaning"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
