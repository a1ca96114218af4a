package api

import (
	"context"

	"github.com/gin-gonic/gin"
)

// DomainResolver is the resolution engine the handlers depend on.
type DomainResolver interface {
	Resolve(ctx context.Context, name string) (string, error)
	Synced() bool
}

// Handlers holds dependencies for API handlers
type Handlers struct {
	Resolver DomainResolver
}

// NewHandlers creates new API Handlers
func NewHandlers(resolver DomainResolver) *Handlers {
	return &Handlers{
		Resolver: resolver,
	}
}

// RegisterRoutes registers all API routes.
func (h *Handlers) RegisterRoutes(router *gin.Engine) {
	router.GET("/resolve/:domain", h.ResolveHandler)
	router.GET("/health", h.HealthHandler)
}
