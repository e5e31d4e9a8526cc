package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHealth godoc
// @Summary Liveness probe
// @Description Reports that the back-office API is serving requests.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "agency-backoffice"})
}

// registerHealthRoutes registers the unauthenticated probe routes.
func registerHealthRoutes(r gin.IRouter) {
	r.GET("/health", getHealth)
	r.HEAD("/health", getHealth)
}
