// Package grpc exposes the account service over gRPC: server lifecycle,
// RPC handlers, error translation and unary interceptors.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/authkeeper/internal/api"
	"github.com/dmitrijs2005/authkeeper/internal/logging"
	"github.com/dmitrijs2005/authkeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// AccountService is the workflow the handlers drive.
type AccountService interface {
	Register(ctx context.Context, email, name, password string) error
	ConfirmAccount(ctx context.Context, token string) error
	Login(ctx context.Context, email, password string) (*services.Identity, error)
	RequestConfirmationCode(ctx context.Context, email string) error
	ForgotPassword(ctx context.Context, email string) error
	ValidateToken(ctx context.Context, token string) error
	ResetPassword(ctx context.Context, token, password string) error
}

type GRPCServer struct {
	api.UnimplementedAccountServiceServer
	address        string
	accounts       AccountService
	allowedOrigins map[string]struct{}
	logger         logging.Logger
}

// NewGRPCServer builds the server. An empty allowedOrigins admits every caller.
func NewGRPCServer(address string, l logging.Logger, accounts AccountService, allowedOrigins []string) *GRPCServer {
	origins := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[o] = struct{}{}
	}
	return &GRPCServer{
		address:        address,
		accounts:       accounts,
		allowedOrigins: origins,
		logger:         l.With("module", "grpc_server"),
	}
}

func (s *GRPCServer) newServer() (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.metricsInterceptor,
		s.loggingInterceptor,
		s.originInterceptor,
		s.validationInterceptor,
	))

	api.RegisterAccountServiceServer(srv, s)

	hs := health.NewServer()
	hs.SetServingStatus(api.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)

	return srv, hs
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on listen until ctx is cancelled, then stops gracefully.
// The stop goroutine also exits when srv.Serve fails on its own.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv, hs := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		hs.Shutdown()
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
