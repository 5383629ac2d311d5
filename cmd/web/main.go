package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gradpath/cmd/internal/httpclient"
	"gradpath/cmd/internal/logger"
	"gradpath/cmd/web/contentclient"
	"gradpath/cmd/web/router"
	"gradpath/config"
)

func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	httpClient := httpclient.New(httpclient.Config{
		Timeout: time.Duration(cfg.ContentAPI.TimeoutSeconds) * time.Second,
	})
	client := contentclient.New(cfg.ContentAPI.BaseURL, httpClient)

	r, registry, err := router.New(client, cfg.Listing)
	if err != nil {
		logger.ErrorWithFields("failed to build router", logger.Fields{"error": err.Error()})
		os.Exit(1)
	}
	defer registry.Close()

	srv := &http.Server{
		Addr:              cfg.Server.WebAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.InfoWithFields("web listening", logger.Fields{
			"addr":            srv.Addr,
			"content_api_url": client.BaseURL(),
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorWithFields("web stopped", logger.Fields{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// evict idle navigation views even when nobody touches the registry
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-ticker.C:
			if n := registry.Sweep(); n > 0 {
				logger.DebugWithFields("evicted idle views", logger.Fields{"count": n})
			}
		case <-quit:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := srv.Shutdown(ctx); err != nil {
				logger.ErrorWithFields("graceful shutdown failed", logger.Fields{"error": err.Error()})
			}
			cancel()
			return
		}
	}
}
