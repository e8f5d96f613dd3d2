package ingest

import (
	"snapshot-manager/feature/dataset/store"
	"snapshot-manager/feature/snapshot"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Ingest feature.
func NewFeature(source snapshot.Source, st store.Store, logger *zap.Logger) *Feature {
	svc := NewService(source, st, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "ingest"
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

// Service exposes the underlying ingest service for CLI use.
func (f *Feature) Service() *Service {
	return f.service
}
