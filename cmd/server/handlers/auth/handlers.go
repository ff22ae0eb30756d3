package auth

import (
	"context"
	"errors"

	"newsmark/cmd/server/handlers/handlerutil"
	"newsmark/cmd/server/handlers/httperr"
	"newsmark/internal/logger"
	"newsmark/internal/services/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Service defines the interface for the auth service
type Service interface {
	Register(ctx context.Context, req auth.RegisterRequest) (*auth.RegisterResponse, error)
	Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error)
	Profile(ctx context.Context, userID bson.ObjectID) (*auth.User, error)
}

// Handlers contains the auth HTTP handlers
type Handlers struct {
	service   Service
	validator *validator.Validate
}

// NewHandlers creates new auth handlers
func NewHandlers(service Service, validator *validator.Validate) *Handlers {
	return &Handlers{
		service:   service,
		validator: validator,
	}
}

// Register handles user registration.
//
// Duplicate email intentionally answers 400, not 409: the status predates
// this rewrite and the frontend keys off it.
func (h *Handlers) Register(c *fiber.Ctx) error {
	var req auth.RegisterRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Register"); err != nil {
		return err
	}

	resp, err := h.service.Register(c.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrEmailTaken) {
			return httperr.Fail(httperr.BadRequest("Email already registered"))
		}
		logger.L().Error("register service failed", "handler", "Register", "email", req.Email, "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Login handles user authentication. Unknown email and wrong password get
// the same 400 body so callers cannot probe which emails are registered.
func (h *Handlers) Login(c *fiber.Ctx) error {
	var req auth.LoginRequest
	if err := handlerutil.ParseAndValidateBody(c, &req, h.validator, "Login"); err != nil {
		return err
	}

	resp, err := h.service.Login(c.Context(), req)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return httperr.Fail(httperr.BadRequest("Invalid email or password"))
		}
		logger.L().Error("login service failed", "handler", "Login", "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return c.JSON(resp)
}

// Profile returns the authenticated user's public projection.
func (h *Handlers) Profile(c *fiber.Ctx) error {
	userID, err := handlerutil.GetUserID(c)
	if err != nil {
		return err
	}

	user, err := h.service.Profile(c.Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrNotFound) {
			return httperr.Fail(httperr.NotFound("User not found"))
		}
		logger.L().Error("profile service failed", "handler", "Profile", "userID", userID.Hex(), "error", err)
		return httperr.Fail(httperr.ErrInternal)
	}

	return c.JSON(fiber.Map{"user": user})
}
