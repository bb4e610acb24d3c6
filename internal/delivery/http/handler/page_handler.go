package handler

import (
	"net/http"

	"go-pixelco-site/internal/domain"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	siteUC domain.SiteUsecase
}

func NewPageHandler(siteUC domain.SiteUsecase) *PageHandler {
	return &PageHandler{siteUC: siteUC}
}

// Home renders the marketing homepage.
func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", h.siteUC.Home())
}

// NotFound renders the 404 page for every unmatched route.
func (h *PageHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", h.siteUC.NotFound())
}
