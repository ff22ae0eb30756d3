package bookmarks

import (
	"context"
	"errors"

	"newsmark/cmd/server/handlers/handlerutil"
	"newsmark/cmd/server/handlers/httperr"
	"newsmark/internal/logger"
	"newsmark/internal/services/bookmarks"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service defines the interface for the bookmarks service
type Service interface {
	Create(ctx context.Context, userID bson.ObjectID, req bookmarks.CreateBookmarkRequest) (*bookmarks.Bookmark, error)
	List(ctx context.Context, userID bson.ObjectID) ([]*bookmarks.Bookmark, error)
	Delete(ctx context.Context, userID bson.ObjectID, req bookmarks.DeleteBookmarkRequest) error
}

// Handlers contains the bookmarks HTTP handlers
type Handlers struct {
	service   Service
	validator *validator.Validate
}

// NewHandlers creates new bookmarks handlers
func NewHandlers(service Service, validator *validator.Validate) *Handlers {
	return &Handlers{
		service:   service,
		validator: validator,
	}
}

// Create saves an article for the authenticated user.
// Saving the same URL twice answers 409.
func (h *Handlers) Create(c *fiber.Ctx) error {
	userID, err := handlerutil.GetUserID(c)
	if err != nil {
		return err
	}

	var req bookmarks.CreateBookmarkRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "CreateBookmark"); err != nil {
		return err
	}

	bookmark, err := h.service.Create(c.Context(), userID, req)
	if err != nil {
		if errors.Is(err, bookmarks.ErrAlreadyBookmarked) {
			return httperr.Fail(httperr.Conflict("Article already bookmarked"))
		}
		logger.L().Error("create bookmark failed", "handler", "CreateBookmark", "userID", userID.Hex(), "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Bookmark added successfully",
		"bookmark": bookmark,
	})
}

// List returns the user's bookmarks, newest first.
func (h *Handlers) List(c *fiber.Ctx) error {
	userID, err := handlerutil.GetUserID(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Context(), userID)
	if err != nil {
		logger.L().Error("list bookmarks failed", "handler", "ListBookmarks", "userID", userID.Hex(), "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return c.JSON(items)
}

// Delete removes the user's bookmark for the URL in the request body.
func (h *Handlers) Delete(c *fiber.Ctx) error {
	userID, err := handlerutil.GetUserID(c)
	if err != nil {
		return err
	}

	var req bookmarks.DeleteBookmarkRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "DeleteBookmark"); err != nil {
		return err
	}

	if err := h.service.Delete(c.Context(), userID, req); err != nil {
		if errors.Is(err, bookmarks.ErrBookmarkNotFound) {
			return httperr.Fail(httperr.NotFound("Bookmark not found"))
		}
		logger.L().Error("delete bookmark failed", "handler", "DeleteBookmark", "userID", userID.Hex(), "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return c.JSON(fiber.Map{"message": "Bookmark removed successfully"})
}
