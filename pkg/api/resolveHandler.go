package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"ton-dns-resolver/pkg/resolver"
)

// ResolveHandler resolves a domain name to its terminal endpoint address.
// GET /resolve/:domain
func (h *Handlers) ResolveHandler(c *gin.Context) {
	domain := c.Param("domain")

	address, err := h.Resolver.Resolve(c.Request.Context(), domain)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": fmt.Sprintf("Failed to resolve %s: %v", domain, err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"domain": domain, "address": address})
}

// HealthHandler reports whether the ledger connection has synchronized.
// GET /health
func (h *Handlers) HealthHandler(c *gin.Context) {
	status := http.StatusOK
	if !h.Resolver.Synced() {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"synced": h.Resolver.Synced()})
}

// statusForError maps resolution failures to HTTP statuses: an unregistered
// domain is a 404, everything else surfaces as a bad upstream.
func statusForError(err error) int {
	if errors.Is(err, resolver.ErrNoRecords) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
