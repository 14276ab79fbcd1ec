// Package health serves the standard gRPC health checking protocol so
// orchestrators can probe the analytics service.
package health

import (
	"context"
	"fmt"
	"net"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// Service is the name reported alongside the overall ("") status.
const Service = "restaurant.analytics.v1.Analytics"

// Pinger reports whether the store is reachable. *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	grpc   *grpc.Server
	health *health.Server
	log    zerolog.Logger
}

// New registers the health and reflection services. Status starts as
// NOT_SERVING until SetServing is called.
func New(log zerolog.Logger) *Server {
	s := &Server{
		grpc:   grpc.NewServer(),
		health: health.NewServer(),
		log:    log.With().Str("component", "grpc-health").Logger(),
	}
	healthpb.RegisterHealthServer(s.grpc, s.health)
	reflection.Register(s.grpc)
	s.SetServing(false)
	return s
}

func (s *Server) SetServing(ok bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if ok {
		st = healthpb.HealthCheckResponse_SERVING
	}
	s.health.SetServingStatus("", st)
	s.health.SetServingStatus(Service, st)
}

// Check pings the store and updates the status accordingly.
func (s *Server) Check(ctx context.Context, p Pinger) error {
	if err := p.Ping(ctx); err != nil {
		s.SetServing(false)
		return fmt.Errorf("store ping: %w", err)
	}
	s.SetServing(true)
	return nil
}

func (s *Server) Serve(addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.ServeListener(l)
}

// ServeListener blocks until Stop.
func (s *Server) ServeListener(l net.Listener) error {
	s.log.Info().Str("addr", l.Addr().String()).Msg("grpc health listening")
	if err := s.grpc.Serve(l); err != nil && err != grpc.ErrServerStopped {
		return err
	}
	return nil
}

// Stop flips every status to NOT_SERVING and drains the server.
func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
