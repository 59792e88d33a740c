package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	logger "github.com/sirupsen/logrus"

	"webscaffold/src/auth"
	"webscaffold/src/database"
	"webscaffold/src/handler"
	"webscaffold/src/middleware"
	"webscaffold/src/repository"
	"webscaffold/src/requestid"
	"webscaffold/src/responder"
	"webscaffold/src/sink"
	"webscaffold/src/stream"
)

// Version is stamped at build time.
var Version = "dev"

// buildSink composes the failure sinks for the environment: console and live
// stream always, durable sinks (file, database, webhook) only in production.
func buildSink(cfg *Config, rcfg responder.Config, hub *stream.Hub) sink.Sink {
	sinks := []sink.Sink{
		sink.NewConsoleSink(),
		sink.NewStreamSink(hub),
	}

	if rcfg.Environment == responder.EnvProduction {
		sinks = append(sinks, sink.NewFileSink(cfg.FailureLogPath))
		if database.MainDB != nil {
			sinks = append(sinks, sink.NewDBSink(repository.NewFailureRepository()))
		}
		if cfg.FailureWebhookURL != "" {
			sinks = append(sinks, sink.NewWebhookSink(cfg.FailureWebhookURL))
		}
	}

	return sink.NewMultiSink(sinks...)
}

// NewRouter wires middleware and routes around the responder.
func NewRouter(cfg *Config, rcfg responder.Config, rs *responder.Responder, hub *stream.Hub) *chi.Mux {
	r := chi.NewRouter()

	// === Global Middleware ===
	r.Use(requestid.Middleware)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.Recoverer(rs))

	// Public routes
	r.Get("/healthcheck", handler.HealthcheckHandler())
	r.Get("/version", handler.VersionHandler(rcfg.AppName, Version))

	r.Route("/api/demo", func(dr chi.Router) {
		dr.Get("/fail", handler.FailHandler(rs))
		dr.Get("/panic", handler.PanicHandler())
	})

	// Admin routes, basic auth with a bcrypt password hash. Disabled
	// entirely when no hash is configured.
	if cfg.AdminPasswordHash != "" {
		r.Route("/admin", func(ar chi.Router) {
			ar.Use(auth.AdminOnly(cfg.AdminUser, cfg.AdminPasswordHash))
			if database.MainDB != nil {
				ar.Get("/failures", handler.ListFailuresHandler(repository.NewFailureRepository(), rs))
			}
			ar.Get("/failures/stream", handler.StreamFailuresHandler(hub))
		})
	}

	return r
}

func StartServer() {
	cfg := GetConfig()
	rcfg := responder.GetConfig()

	hub := stream.NewHub()
	rs := responder.New(rcfg, buildSink(cfg, rcfg, hub))
	r := NewRouter(cfg, rcfg, rs, hub)

	// Graceful server
	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		logger.WithField("environment", rcfg.Environment).Infof("Listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server crashed")
		}
	}()

	// Shutdown on SIGINT or SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down gracefully...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("Shutdown error")
	}
}
