package news

import (
	"context"
	"errors"

	"newsmark/cmd/server/handlers/handlerutil"
	"newsmark/cmd/server/handlers/httperr"
	"newsmark/internal/logger"
	"newsmark/internal/services/news"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Service defines the interface for the news service
type Service interface {
	Fetch(ctx context.Context, q news.Query) (*news.Result, error)
	Ping(ctx context.Context) error
}

// Handlers contains the news HTTP handlers
type Handlers struct {
	service   Service
	validator *validator.Validate
}

// NewHandlers creates new news handlers
func NewHandlers(service Service, validator *validator.Validate) *Handlers {
	return &Handlers{
		service:   service,
		validator: validator,
	}
}

// News proxies one provider call and relays the response body verbatim.
// The upstream's HTTP status is forwarded; only reachability failures
// collapse to a 500.
func (h *Handlers) News(c *fiber.Ctx) error {
	var q news.Query
	if err := handlerutil.ParseAndValidateQuery(c, &q, h.validator, "News"); err != nil {
		return err
	}

	result, err := h.service.Fetch(c.Context(), q)
	if err != nil {
		if errors.Is(err, news.ErrKeywordRequired) {
			return httperr.Fail(httperr.BadRequest("Keyword is required for search mode"))
		}
		return httperr.Fail(httperr.InternalError("Failed to fetch news"))
	}

	if result.StatusCode >= 400 {
		// Upstream detail stays in the logs; the caller gets the status and
		// a sanitized body.
		logger.L().Warn("news provider returned error status",
			"handler", "News", "status", result.StatusCode, "body", string(result.Body))
		return httperr.Fail(httperr.E{
			Status:  result.StatusCode,
			Message: "News provider error",
		})
	}

	contentType := result.ContentType
	if contentType == "" {
		contentType = fiber.MIMEApplicationJSON
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.Status(result.StatusCode).Send(result.Body)
}

// Ping reports whether the news provider is reachable with the configured
// credentials. Intended for deploy smoke tests, not liveness probes.
func (h *Handlers) Ping(c *fiber.Ctx) error {
	if err := h.service.Ping(c.Context()); err != nil {
		logger.L().Error("news provider unreachable", "handler", "Ping", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"status": "down",
			"error":  err.Error(),
		})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}
