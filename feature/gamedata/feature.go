package gamedata

import (
	"context"

	"arkdata/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new game data feature reading from src.
func NewFeature(src source.Source, logger *zap.Logger) *Feature {
	svc := NewService(src, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "gamedata"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load fetches the initial snapshot and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.Load(context.Background()); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the underlying service for command-line use.
func (f *Feature) Service() *Service {
	return f.service
}
