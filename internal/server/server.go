// Package server assembles the HTTP side of giftshuffler: the Connect
// services, the health and metrics endpoints, and the middleware stack.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/giftshuffler/internal/auth"
	"github.com/mmynk/giftshuffler/internal/edition"
	"github.com/mmynk/giftshuffler/internal/middleware"
	"github.com/mmynk/giftshuffler/internal/service"
	"github.com/mmynk/giftshuffler/internal/storage"
	"github.com/mmynk/giftshuffler/pkg/api/apiconnect"
)

const shutdownTimeout = 10 * time.Second

// Options configures NewHandler. Store, Shuffler and JWTManager are required.
type Options struct {
	Store         storage.Store
	Shuffler      *edition.Shuffler
	JWTManager    *auth.JWTManager
	Authenticator auth.Authenticator

	// AuthRequired puts the directory and edition services behind RequireAuth.
	AuthRequired bool

	// AllowedOrigin is sent as Access-Control-Allow-Origin. Empty means "*".
	AllowedOrigin string
}

// NewHandler returns the root handler.
func NewHandler(opts Options) http.Handler {
	if opts.Authenticator == nil {
		opts.Authenticator = auth.NewPasswordAuthenticator(opts.Store)
	}
	if opts.AllowedOrigin == "" {
		opts.AllowedOrigin = "*"
	}

	// The logging interceptor goes second so it can see the organizer.
	public := connect.WithInterceptors(
		middleware.OptionalAuth(opts.JWTManager),
		middleware.LoggingInterceptor(),
	)
	protected := public
	if opts.AuthRequired {
		protected = connect.WithInterceptors(
			middleware.RequireAuth(opts.JWTManager),
			middleware.LoggingInterceptor(),
		)
	}

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewDirectoryServiceHandler(
		service.NewDirectoryService(opts.Store), protected))
	mux.Handle(apiconnect.NewEditionServiceHandler(
		service.NewEditionService(opts.Store, opts.Shuffler), protected))
	mux.Handle(apiconnect.NewAuthServiceHandler(
		service.NewAuthService(opts.Authenticator, opts.JWTManager, opts.Store, slog.Default().With("service", "auth")),
		public))

	mux.Handle("/healthz", service.HealthHandler(opts.Store))
	mux.Handle("/metrics", promhttp.Handler())

	return middleware.HTTPLogging(middleware.CORS(opts.AllowedOrigin)(mux))
}

// New wraps handler with h2c, so Connect and gRPC clients can speak HTTP/2
// without TLS, and returns a server listening on addr.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
