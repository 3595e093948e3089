package export

import (
	"arkdata/feature/gamedata"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new export feature. A nil db disables it.
func NewFeature(db *gorm.DB, data *gamedata.Service, logger *zap.Logger) *Feature {
	svc := NewService(db, logger)
	h := NewHandler(svc, data)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "export"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.db != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service exposes the underlying service for command-line use.
func (f *Feature) Service() *Service {
	return f.service
}
