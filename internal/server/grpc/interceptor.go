package grpc

import (
	"context"
	"time"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"github.com/dmitrijs2005/authkeeper/internal/server/metrics"
	validation "github.com/go-ozzo/ozzo-validation"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// originInterceptor admits calls whose "origin" metadata is on the allow
// list. Calls without an origin (CLI, health checks) are always admitted.
func (s *GRPCServer) originInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if len(s.allowedOrigins) == 0 {
		return handler(ctx, req)
	}

	var origin string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.OriginHeaderName); len(values) > 0 {
			origin = values[0]
		}
	}
	if origin == "" {
		return handler(ctx, req)
	}
	if _, ok := s.allowedOrigins[origin]; !ok {
		s.logger.Warn(ctx, "origin rejected", "origin", origin, "method", info.FullMethod)
		return nil, status.Error(codes.PermissionDenied, "origin not allowed")
	}
	return handler(ctx, req)
}

// validationInterceptor runs the request's own rules before the handler.
func (s *GRPCServer) validationInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if v, ok := req.(validation.Validatable); ok {
		if err := v.Validate(); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	code := status.Code(err)

	args := []any{"method", info.FullMethod, "code", code.String(), "duration", time.Since(start)}
	switch code {
	case codes.OK:
		s.logger.Info(ctx, "rpc handled", args...)
	case codes.Internal, codes.Unknown:
		s.logger.Error(ctx, "rpc failed", args...)
	default:
		s.logger.Info(ctx, "rpc rejected", append(args, "reason", status.Convert(err).Message())...)
	}
	return resp, err
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	metrics.RecordRPC(info.FullMethod, status.Code(err).String(), time.Since(start))
	return resp, err
}
