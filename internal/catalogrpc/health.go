package catalogrpc

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"novelverse/internal/catalog"
)

// Pinger is the part of *sql.DB the health reporter needs.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health reports the same readiness as /ready: serving unless the catalog
// database stops answering pings. A nil DB means the in-memory seed, which is
// always serving.
type Health struct {
	srv *health.Server
	db  Pinger
}

func NewHealth(db Pinger) *Health {
	return &Health{srv: health.NewServer(), db: db}
}

// Check pings the database once and publishes the result for the whole
// server and for the catalog service.
func (h *Health) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	st := healthpb.HealthCheckResponse_SERVING
	if h.db != nil {
		ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			slog.WarnContext(ctx, "grpc health ping", "err", err)
			st = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	h.srv.SetServingStatus("", st)
	h.srv.SetServingStatus(ServiceName, st)
	return st
}

// Run re-checks every interval until ctx is done, then marks everything
// not serving.
func (h *Health) Run(ctx context.Context, interval time.Duration) {
	h.Check(ctx)
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			h.srv.Shutdown()
			return
		case <-t.C:
			h.Check(ctx)
		}
	}
}

// NewGRPCServer builds a server exposing the catalog service and health
// checks backed by store and db.
func NewGRPCServer(store catalog.Store, hl *Health) *grpc.Server {
	s := grpc.NewServer()
	Register(s, NewServer(store))
	healthpb.RegisterHealthServer(s, hl.srv)
	return s
}
