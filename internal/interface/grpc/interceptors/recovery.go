package interceptors

import (
	"context"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func unaryRecoveryInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(log.Fields{
					"method":      info.FullMethod,
					"panic":       r,
					"stack_trace": string(debug.Stack()),
				}).Error("Panic recovered in gRPC unary interceptor")

				err = status.Errorf(codes.Internal, "Internal server error")
			}
		}()

		return handler(ctx, req)
	}
}

// streamRecoveryInterceptor recovers from panics in stream handlers
func streamRecoveryInterceptor() grpc.StreamServerInterceptor {
	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) (err error) {
		defer func() {
			if r := recover(); r != nil {
				log.WithFields(log.Fields{
					"method":      info.FullMethod,
					"panic":       r,
					"stack_trace": string(debug.Stack()),
				}).Error("Panic recovered in gRPC stream interceptor")

				err = status.Errorf(codes.Internal, "Internal server error")
			}
		}()

		return handler(srv, ss)
	}
}
