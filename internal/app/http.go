package app

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/Santosh7017/NoteBook/internal/auth/handler"
	"github.com/Santosh7017/NoteBook/internal/auth/provider"
	"github.com/Santosh7017/NoteBook/internal/auth/provider/google"
	"github.com/Santosh7017/NoteBook/internal/auth/resolver"
	"github.com/Santosh7017/NoteBook/internal/config"
	"github.com/Santosh7017/NoteBook/internal/middleware"
	"github.com/Santosh7017/NoteBook/internal/session"
	"github.com/Santosh7017/NoteBook/internal/token"
	"github.com/Santosh7017/NoteBook/internal/user"
)

func setupHTTP(ctx context.Context, cfg config.Config) (*gin.Engine, func() error, error) {

	infra, err := setupInfra(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	// ----------------------------
	// Dependencies
	// ----------------------------

	var sessionStore session.Store
	if infra.Redis != nil {
		sessionStore = session.NewRedisStore(infra.Redis.Client)
	} else {
		sessionStore = session.NewMemoryStore()
	}

	userStore := user.NewPostgresStore(infra.DB)
	identityResolver := resolver.NewDBResolver(infra.DB)
	tokenCodec := token.New(cfg.SecretKey, cfg.TokenTTL)

	googleProvider, err := google.New(
		ctx,
		cfg.GoogleClientID,
		cfg.GoogleClientSecret,
		cfg.GoogleRedirectURL,
	)
	if err != nil {
		return nil, nil, err
	}

	registry := provider.NewRegistry(googleProvider)

	authMiddleware := middleware.NewAuthMiddleware(tokenCodec)
	requireToken := middleware.GinRequireAuth(authMiddleware)

	authHandler := handler.New(
		userStore,
		tokenCodec,
		registry,
		sessionStore,
		identityResolver,
		cfg.SuccessRedirectURL,
	)

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())

	// ----------------------------
	// Public Routes
	// ----------------------------

	authHandler.RegisterRoutes(router, requireToken)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ----------------------------
	// Protected API Routes
	// ----------------------------
	// The note CRUD collaborator mounts behind the same token gate.

	api := router.Group("/api")
	api.Use(requireToken)

	api.GET("/me", func(c *gin.Context) {
		userID, _ := middleware.UserIDFromContext(c.Request.Context())
		c.JSON(200, gin.H{
			"user_id": userID,
		})
	})

	// ----------------------------
	// Cleanup
	// ----------------------------

	return router, func() error {
		return infra.DB.Close()
	}, nil
}
