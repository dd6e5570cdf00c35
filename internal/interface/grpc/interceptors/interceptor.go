package interceptors

import (
	middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	"google.golang.org/grpc"
)

// UnaryInterceptor returns the unary interceptor
func UnaryInterceptor() grpc.ServerOption {
	interceptors := []grpc.UnaryServerInterceptor{
		unaryRecoveryInterceptor(),
		unaryLogger,
	}
	return grpc.UnaryInterceptor(middleware.ChainUnaryServer(interceptors...))
}

// StreamInterceptor returns the stream interceptor with a logrus log
func StreamInterceptor() grpc.ServerOption {
	interceptors := []grpc.StreamServerInterceptor{
		streamRecoveryInterceptor(),
		streamLogger,
	}
	return grpc.StreamInterceptor(middleware.ChainStreamServer(interceptors...))
}
