package handlerutil

import (
	"newsmark/cmd/server/handlers/httperr"
	"newsmark/cmd/server/middlewares"
	"newsmark/internal/logger"
	"newsmark/internal/services/auth"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// GetClaims extracts the verified identity from the fiber context.
// The JWT middleware stores it in locals on every protected route, so a
// missing value here means the route was wired without the middleware.
func GetClaims(c *fiber.Ctx) (auth.Claims, error) {
	claims, ok := c.Locals(middlewares.ClaimsKey).(auth.Claims)
	if !ok {
		logger.L().Error("claims not found in context", "handler", "getClaims", "path", c.Path())
		return auth.Claims{}, httperr.Fail(httperr.ErrUnauthenticated)
	}
	return claims, nil
}

// GetUserID extracts the authenticated user's id from the verified claims.
func GetUserID(c *fiber.Ctx) (bson.ObjectID, error) {
	claims, err := GetClaims(c)
	if err != nil {
		return bson.ObjectID{}, err
	}

	userID, err := bson.ObjectIDFromHex(claims.UserID)
	if err != nil {
		logger.L().Error("invalid user ID", "handler", "getUserID", "userID", claims.UserID, "path", c.Path(), "error", err)
		return bson.ObjectID{}, httperr.Fail(httperr.ErrForbidden)
	}

	return userID, nil
}

// ParseAndValidateBody parses request body and validates it
func ParseAndValidateBody(c *fiber.Ctx, req any, validator *validator.Validate, handlerName string) error {
	if err := c.BodyParser(req); err != nil {
		logger.L().Warn("failed to parse request body", "handler", handlerName, "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}

	if err := validator.Struct(req); err != nil {
		logger.L().Warn("request validation failed", "handler", handlerName, "error", err)
		return httperr.InvalidInput(err)
	}

	return nil
}

// ParseAndValidateQuery parses query parameters and validates them
func ParseAndValidateQuery(c *fiber.Ctx, req any, validator *validator.Validate, handlerName string) error {
	if err := c.QueryParser(req); err != nil {
		logger.L().Warn("failed to parse query params", "handler", handlerName, "error", err)
		return httperr.Fail(httperr.ErrBadRequest)
	}

	if err := validator.Struct(req); err != nil {
		logger.L().Warn("query validation failed", "handler", handlerName, "error", err)
		return httperr.InvalidInput(err)
	}

	return nil
}
