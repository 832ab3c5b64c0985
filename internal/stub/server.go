// internal/stub/server.go
package stub

import (
	"fmt"

	"eventflow-client/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server is a local stand-in for the event backend, implementing the
// exact API surface the client consumes: POST /api/v1/auth,
// GET/POST /api/v1/evento, GET/DELETE /api/usuarios. It exists so the
// client runs end-to-end without the real backend.
type Server struct {
	cfg    config.StubConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer(cfg config.StubConfig, logger *zap.Logger) (*Server, error) {
	store := NewStore()
	if err := store.Seed(); err != nil {
		return nil, fmt.Errorf("failed to seed stub store: %w", err)
	}

	tokens := NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	limiter := NewLoginRateLimiter()
	handlers := NewHandlers(cfg, store, tokens, limiter, logger)

	engine := gin.Default()
	SetupRouter(engine, handlers, tokens)

	return &Server{cfg: cfg, engine: engine, logger: logger}, nil
}

func (s *Server) Start() error {
	s.logger.Info("stub backend listening", zap.String("addr", s.cfg.HTTPAddr))
	return s.engine.Run(s.cfg.HTTPAddr)
}

// SetupRouter wires the API surface onto the engine.
func SetupRouter(r *gin.Engine, h *Handlers, tokens *TokenManager) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ==================== Public ====================
	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth", h.Login)
		v1.GET("/evento", h.ListEvents)
	}

	// ==================== Event creation ====================
	create := r.Group("/api/v1")
	create.Use(RequireAuth(tokens), RequireRole("organizador", "admin"))
	{
		create.POST("/evento", h.CreateEvent)
	}

	// ==================== User administration ====================
	users := r.Group("/api/usuarios")
	{
		users.POST("", h.CreateUser)

		admin := users.Group("")
		admin.Use(RequireAuth(tokens), RequireRole("admin"))
		{
			admin.GET("", h.ListUsers)
			admin.DELETE("/:id", h.DeleteUser)
		}
	}
}
