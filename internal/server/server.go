package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/9jakitchen/backend/config"
	"github.com/9jakitchen/backend/internal/api"
	"github.com/9jakitchen/backend/internal/api/response"
	"github.com/9jakitchen/backend/internal/middleware"
)

// Server wraps the HTTP server and its router.
type Server struct {
	router *gin.Engine
	http   *http.Server
}

// New builds the router with all middleware and routes mounted.
func New(cfg *config.Config, deps api.Services) *Server {
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.Origins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "9jaKitchen API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	api.RegisterRoutes(router.Group("/api"), deps)

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Route not found")
	})

	return &Server{
		router: router,
		http: &http.Server{
			Addr:         cfg.Server.Addr(),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Router exposes the underlying gin engine, mainly for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start begins serving and blocks until the listener fails or closes.
func (s *Server) Start() error {
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
