package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"yospace/cmd/api/router"
	"yospace/config"
)

// @title           YoSpace Blog API
// @version         1.0
// @description     Markdown blog content, rendering, site data and music proxy
// @BasePath        /api
func main() {
	config.InitApp()
	cfg := config.GetConfig()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	if !filepath.IsAbs(cfg.Content.PostsDir) {
		cfg.Content.PostsDir = filepath.Join(config.GetBasePath(), cfg.Content.PostsDir)
	}

	r, deps, err := router.New(cfg)
	if err != nil {
		config.Log.Errorf("failed to build router: %v", err)
		os.Exit(1)
	}

	stop := make(chan struct{})
	go deps.Limiter.RunCleanup(time.Minute, stop)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		config.Log.Info("shutting down api server")
		close(stop)
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		_ = srv.Shutdown(shutdownCtx)
	}()

	config.InfoWithFields("api server listening", config.Fields{
		"addr":      cfg.Server.Addr,
		"posts_dir": cfg.Content.PostsDir,
		"locales":   cfg.Content.Locales,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		config.Log.Errorf("api server error: %v", err)
		os.Exit(1)
	}
}
