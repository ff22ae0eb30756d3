package images

import (
	"context"
	"errors"

	"newsmark/cmd/server/handlers/httperr"
	"newsmark/internal/services/images"

	"github.com/gofiber/fiber/v2"
)

// Service defines the interface for the image relay service
type Service interface {
	Relay(ctx context.Context, rawURL string) (*images.Image, error)
}

// Handlers contains the image relay HTTP handlers
type Handlers struct {
	service Service
}

// NewHandlers creates new image relay handlers
func NewHandlers(service Service) *Handlers {
	return &Handlers{
		service: service,
	}
}

// Proxy streams a remote image back to the caller, bypassing browser-side
// CORS. The origin's Content-Type is propagated, defaulting to image/jpeg.
func (h *Handlers) Proxy(c *fiber.Ctx) error {
	rawURL := c.Query("url")
	if rawURL == "" {
		return httperr.Fail(httperr.BadRequest("url query parameter is required"))
	}

	img, err := h.service.Relay(c.Context(), rawURL)
	if err != nil {
		if errors.Is(err, images.ErrInvalidURL) {
			return httperr.Fail(httperr.BadRequest("url must be an absolute http or https URL"))
		}
		return httperr.Fail(httperr.InternalError("Failed to fetch image"))
	}

	c.Set(fiber.HeaderContentType, img.ContentType)
	return c.Send(img.Body)
}
