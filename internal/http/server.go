package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

func loggingMiddleware(logger Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.InfoContext(
			r.Context(),
			"request",
			"request_id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
		)

		next.ServeHTTP(w, r)
	})
}

type Server struct {
	httpServer *http.Server
	handler    Handler
	logger     Logger
}

func NewServer(
	engine Engine,
	logger Logger,
	config Config,
) *Server {
	batchHandler := NewHandler(engine, logger)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /banks", batchHandler.GetBanks)
	mux.HandleFunc("GET /banks/{code}/schedule", batchHandler.GetBankSchedule)
	mux.HandleFunc("POST /iban/validate", batchHandler.PostValidateIdentifier)
	mux.HandleFunc("POST /batches/validate", batchHandler.PostValidateBatch)
	mux.HandleFunc("POST /batches/export", batchHandler.PostExportBatch)
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := loggingMiddleware(logger, mux)

	httpServer := &http.Server{
		Addr:         config.Address,
		Handler:      handler,
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
	}

	return &Server{
		httpServer: httpServer,
		handler:    batchHandler,
		logger:     logger,
	}
}

func (s *Server) Start(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Starting HTTP server", "address", s.httpServer.Addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "HTTP server error", "error", err)
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
