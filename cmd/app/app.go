package app

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"schoolfeedback/internal/auth"
	"schoolfeedback/internal/config"
	"schoolfeedback/internal/database"
	handlers "schoolfeedback/internal/handler"
	"schoolfeedback/internal/middleware"
	"schoolfeedback/internal/repository"
	"schoolfeedback/internal/service"
)

func NewLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()}))
}

// App connects to the database and wires repositories into services.
func App(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*database.DB, *service.Service, error) {
	db, err := database.ConnectDB(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	repo := repository.NewRepository(db.DB)
	services := service.NewService(repo, cfg, db, logger)

	return db, services, nil
}

func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// NewHandler builds the router and wraps it in the middleware stack. Logging
// runs outermost so rejected requests are logged too.
func NewHandler(cfg *config.Config, services *service.Service, logger *slog.Logger, reg *prometheus.Registry) http.Handler {
	h := handlers.NewHandlers(services, cfg, logger)

	router := mux.NewRouter()
	router.Use(middleware.NewMetrics(reg).Middleware)
	router.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	h.Register(router)

	return middleware.Chain(
		router,
		middleware.AuthMiddleware(auth.NewAuthenticator(cfg.Token.Secret), handlers.PublicPaths...),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware(logger),
	)
}
