package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "giftshuffler_rpc_requests_total",
		Help: "Unary RPCs by procedure and Connect code",
	}, []string{"procedure", "code"})

	rpcDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "giftshuffler_rpc_duration_seconds",
		Help:    "Unary RPC handling time",
		Buckets: prometheus.DefBuckets,
	}, []string{"procedure"})
)

// serverFault reports whether code points at the server rather than the caller.
func serverFault(code connect.Code) bool {
	switch code {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeUnavailable,
		connect.CodeDataLoss, connect.CodeUnimplemented:
		return true
	}
	return false
}

// LoggingInterceptor logs and counts every unary RPC. Caller errors are
// logged at Warn, server faults at Error. The organizer is only known when an
// auth interceptor runs first.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			elapsed := time.Since(start)
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
			}
			rpcRequests.WithLabelValues(procedure, code).Inc()
			rpcDuration.WithLabelValues(procedure).Observe(elapsed.Seconds())

			attrs := []any{
				"procedure", procedure,
				"code", code,
				"organizer_id", GetOrganizerID(ctx),
				"peer", req.Peer().Addr,
				"duration_ms", elapsed.Milliseconds(),
			}
			switch {
			case err == nil:
				slog.Info("RPC ok", attrs...)
			case serverFault(connect.CodeOf(err)):
				slog.Error("RPC failed", append(attrs, "error", err)...)
			default:
				slog.Warn("RPC rejected", append(attrs, "error", err)...)
			}

			return resp, err
		}
	}
}
