package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health. Probes get a 200/503 distinction plus a
// structured body either way.
func (h *SyncHandler) HealthHandler(c *gin.Context) {
	status := h.Service.Health(c.Request.Context())

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
