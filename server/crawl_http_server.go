package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"crawl-server/config"
	"crawl-server/logger"
)

type CrawlHttpServer struct {
	router    *Router
	muxRouter *mux.Router
	addr      string
}

func NewCrawlHttpServer(router *Router, muxRouter *mux.Router, addr string) *CrawlHttpServer {
	return &CrawlHttpServer{
		router:    router,
		muxRouter: muxRouter,
		addr:      addr,
	}
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully.
func (s *CrawlHttpServer) Start() error {
	s.router.RegisterRoutes()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.muxRouter,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting server", zap.String("addr", s.addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-stop:
	}
	logger.Info("shutting down the server")

	ctx, cancel := context.WithTimeout(context.Background(), config.SHUTDOWN_TIMEOUT_SECONDS*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	logger.Info("server exiting")
	return nil
}
