package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"crawl-server/config"
	"crawl-server/di"
	"crawl-server/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Env); err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if !cfg.UpstreamAvailable() {
		logger.Warn("GOOGLE_MAPS_API_KEY is not set, upstream routes will answer 503")
	}

	container := di.NewContainer(cfg)
	defer container.Close()

	if err := container.CrawlHttpServer.Start(); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}
