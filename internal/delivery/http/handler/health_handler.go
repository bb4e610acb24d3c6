package handler

import (
	"net/http"

	"go-pixelco-site/internal/domain"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC domain.HealthUsecase
}

// NewHealthHandler registers GET /health
func NewHealthHandler(r gin.IRoutes, healthUC domain.HealthUsecase) {
	h := &HealthHandler{healthUC: healthUC}
	r.GET("/health", h.Check)
}

// Check godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200  {object}  domain.HealthStatus
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Check())
}
