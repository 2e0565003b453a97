package stacks

import (
	"github.com/gofiber/fiber/v2"
)

// Feature registers the stack routes with the server.
type Feature struct {
	handler *Handler
}

// NewFeature creates the stacks feature around a service.
func NewFeature(service *Service) *Feature {
	return &Feature{handler: NewHandler(service)}
}

func (f *Feature) Name() string    { return "stacks" }
func (f *Feature) IsEnabled() bool { return true }

func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
