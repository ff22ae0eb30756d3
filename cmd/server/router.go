package main

import (
	"context"
	"fmt"
	"time"

	"newsmark/cmd/server/handlers"
	authHandlers "newsmark/cmd/server/handlers/auth"
	bookmarksHandlers "newsmark/cmd/server/handlers/bookmarks"
	"newsmark/cmd/server/handlers/httperr"
	imagesHandlers "newsmark/cmd/server/handlers/images"
	newsHandlers "newsmark/cmd/server/handlers/news"
	"newsmark/cmd/server/middlewares"
	imagesClient "newsmark/internal/clients/images"
	mongoClient "newsmark/internal/clients/mongo"
	newsClient "newsmark/internal/clients/news"
	"newsmark/internal/config"
	"newsmark/internal/logger"
	authServices "newsmark/internal/services/auth"
	bookmarksServices "newsmark/internal/services/bookmarks"
	imagesServices "newsmark/internal/services/images"
	newsServices "newsmark/internal/services/news"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const rateLimitExpiration = 1 * time.Minute

// setupRouter configures and returns a Fiber app with all routes.
// All stateful collaborators (store handle, upstream clients) are constructed
// here and passed by reference; nothing below this function reaches for a
// process-wide singleton.
func setupRouter(ctx context.Context, cfg config.Config, db *mongo.Database) (*fiber.App, error) {
	v := validator.New()

	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler,
		Immutable:    true, // make Fiber copy all request-derived strings
	})

	// Global middlewares
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Content-Type, Authorization",
	}))

	if cfg.RouteMetricsEnabled {
		middlewares.AttachMetrics(app)
	}

	// Health check endpoint, outside the API prefix to avoid request logging
	app.Get("/healthz", handlers.NewHealthz(db))

	var api fiber.Router
	if cfg.RequestLoggingEnabled {
		api = app.Group("/api", fiberlogger.New())
		logger.L().Info("request logging enabled")
	} else {
		api = app.Group("/api")
		logger.L().Info("request logging disabled")
	}

	jwtMiddleware := middlewares.JWT(cfg)
	loginLimiter := middlewares.BuildRateLimiter(cfg.LoginRatePerMin, rateLimitExpiration)

	// Identity routes
	usersRepo, err := mongoClient.NewUsersRepo(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("failed to create users repository: %w", err)
	}
	authSvc := authServices.NewService(usersRepo, cfg, logger.L())
	authH := authHandlers.NewHandlers(authSvc, v)

	api.Post("/register", loginLimiter, authH.Register)
	api.Post("/login", loginLimiter, authH.Login)
	api.Get("/profile", jwtMiddleware, authH.Profile)

	// Bookmark routes
	bookmarksRepo, err := mongoClient.NewBookmarksRepo(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", bookmarksServices.ErrCreateBookmarksRepo, err)
	}
	bookmarksSvc := bookmarksServices.NewService(bookmarksRepo, logger.L())
	bookmarksH := bookmarksHandlers.NewHandlers(bookmarksSvc, v)

	bookmarksGrp := api.Group("/bookmarks", jwtMiddleware)
	bookmarksGrp.Post("/", bookmarksH.Create)
	bookmarksGrp.Get("/", bookmarksH.List)
	bookmarksGrp.Delete("/", bookmarksH.Delete)

	// News proxy routes (no auth: the API key is the protected resource and
	// it never leaves the server)
	newsSvc := newsServices.NewService(newsClient.NewClient(cfg, logger.L()), logger.L())
	newsH := newsHandlers.NewHandlers(newsSvc, v)

	api.Get("/news", newsH.News)
	api.Get("/ping", newsH.Ping)

	// Image relay
	imagesSvc := imagesServices.NewService(imagesClient.NewClient(cfg), logger.L())
	imagesH := imagesHandlers.NewHandlers(imagesSvc)

	api.Get("/image-proxy", imagesH.Proxy)

	return app, nil
}
