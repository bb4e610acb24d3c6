package handler

import (
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"go-pixelco-site/config"
	"go-pixelco-site/internal/delivery/http/middleware"
	"go-pixelco-site/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	SiteUC    domain.SiteUsecase
	HealthUC  domain.HealthUsecase
	Templates *template.Template
	Static    fs.FS
	Config    *config.Config
	Logger    *slog.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.CORSAllowedOrigins)) // CORS must be first
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.ErrorHandler(deps.Logger))

	r.SetHTMLTemplate(deps.Templates)

	NewHealthHandler(r, deps.HealthUC)

	// Swagger UI needs inline scripts, so it stays outside the CSP group
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	pages := NewPageHandler(deps.SiteUC)
	site := r.Group("/", middleware.SecurityHeadersMiddleware())
	{
		site.GET("/", pages.Home)
		NewContactHandler(site, deps.ContactUC)

		for _, dir := range []string{"css", "js", "images"} {
			sub, err := fs.Sub(deps.Static, dir)
			if err != nil {
				continue
			}
			site.StaticFS("/"+dir, http.FS(sub))
		}
	}

	r.NoRoute(middleware.SecurityHeadersMiddleware(), pages.NotFound)

	return r
}
