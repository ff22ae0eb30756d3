package middlewares

import (
	"newsmark/cmd/server/handlers/httperr"
	"newsmark/internal/config"
	"newsmark/internal/services/auth"

	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// ClaimsKey is the ctx.Locals key under which the verified auth.Claims live.
const ClaimsKey = "claims"

// JWT returns a configured Fiber middleware that:
//
//   - validates the Bearer token signature using cfg.JWTSecret
//   - makes sure the token carries "user_id", "name" and "email" claims
//   - stores them as auth.Claims in ctx.Locals so downstream handlers can
//     trust them
//
// A request with no Authorization header at all fails with 401; a request
// that presented a token that is malformed, forged or expired fails with
// 403. The distinction matters to the frontend: 401 means "log in", 403
// means "log in again".
func JWT(cfg config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		SuccessHandler: func(c *fiber.Ctx) error {
			// Token already verified at this point.
			token := c.Locals("user").(*jwt.Token)
			claims, _ := token.Claims.(jwt.MapClaims)

			userID, ok := claims["user_id"].(string)
			if !ok || userID == "" {
				return httperr.Fail(httperr.ErrForbidden)
			}

			userEmail, ok := claims["email"].(string)
			if !ok || userEmail == "" {
				return httperr.Fail(httperr.ErrForbidden)
			}

			// name is informational; tolerate tokens minted before it existed
			userName, _ := claims["name"].(string)

			c.Locals(ClaimsKey, auth.Claims{
				UserID: userID,
				Name:   userName,
				Email:  userEmail,
			})
			return c.Next()
		},

		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if c.Get(fiber.HeaderAuthorization) == "" {
				return httperr.Fail(httperr.ErrUnauthenticated)
			}
			return httperr.Fail(httperr.ErrForbidden)
		},
	})
}
