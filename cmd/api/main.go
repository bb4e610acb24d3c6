package main

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"go-pixelco-site/config"
	_ "go-pixelco-site/docs" // Important for Swagger
	"go-pixelco-site/internal/delivery/http/handler"
	"go-pixelco-site/internal/usecase"
	"go-pixelco-site/pkg/clock"
	"go-pixelco-site/pkg/email"
	"go-pixelco-site/pkg/logger"
	"go-pixelco-site/web"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// @title           Pixel&Co Site API
// @version         1.0
// @description     Contact form and health endpoints of the Pixel&Co marketing site.
// @host            localhost:3000
// @BasePath        /
func main() {
	// Anything that escapes startup or the server loop is fatal: log it and
	// exit so the supervisor restarts a clean process.
	defer func() {
		if rvr := recover(); rvr != nil {
			slog.Error("uncaught panic", "panic", rvr, "stack", string(debug.Stack()))
			os.Exit(1)
		}
	}()

	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Setup Logger
	appLog, logCloser, err := logger.New(logger.Options{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	})
	if err != nil {
		return fmt.Errorf("setup logger: %w", err)
	}
	defer logCloser.Close()
	slog.SetDefault(appLog)

	gin.SetMode(cfg.GinMode)
	clk := clock.New()

	// 3. Setup Mail Sender
	var sender email.Sender = email.NewSMTPSender(email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.EmailUser,
		Password: cfg.EmailPass,
	})
	if !cfg.MailConfigured() {
		appLog.Warn("Email service not fully configured - contact form will fail until EMAIL_USER and EMAIL_PASS are set")
	}
	if cfg.MailBreakerEnabled {
		sender, err = email.NewBreakerSender(sender, email.DefaultBreakerSettings("smtp"))
		if err != nil {
			return fmt.Errorf("setup mail breaker: %w", err)
		}
	}

	// 4. Setup UseCases
	content := usecase.DefaultSiteContent()
	siteUC := usecase.NewSiteUsecase(content, clk)
	healthUC := usecase.NewHealthUsecase(clk)
	contactUC := usecase.NewContactUsecase(sender, usecase.ContactConfig{
		Sender:         cfg.EmailUser,
		AdminRecipient: cfg.AdminRecipient(),
		CompanyName:    content.CompanyName,
		Contact:        content.Contact,
		Social:         content.Social,
	}, validator.New(), clk, appLog)

	// 5. Setup Templates
	tmpl, err := web.Templates(template.FuncMap{
		"currentYear": func() int { return clk.Now().Year() },
	})
	if err != nil {
		return fmt.Errorf("parse templates: %w", err)
	}

	// 6. Setup Router
	router := handler.NewRouter(handler.RouterDeps{
		ContactUC: contactUC,
		SiteUC:    siteUC,
		HealthUC:  healthUC,
		Templates: tmpl,
		Static:    web.Static(),
		Config:    cfg,
		Logger:    appLog,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	appLog.Info("Server started",
		"url", "http://localhost:"+cfg.Port,
		"mail_configured", cfg.MailConfigured(),
		"started_at", clk.Now().Format(time.RFC3339),
	)

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-quit:
	}
	appLog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error("Server forced to shutdown", "error", err)
	}

	appLog.Info("Server exiting")
	return nil
}
