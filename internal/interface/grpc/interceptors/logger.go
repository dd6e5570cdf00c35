package interceptors

import (
	"context"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

func unaryLogger(
	ctx context.Context, req interface{},
	info *grpc.UnaryServerInfo, handler grpc.UnaryHandler,
) (interface{}, error) {
	resp, err := handler(ctx, req)
	if err != nil {
		log.Debugf("%s: %s", info.FullMethod, err)
	}
	return resp, err
}

func streamLogger(
	srv interface{}, stream grpc.ServerStream,
	info *grpc.StreamServerInfo, handler grpc.StreamHandler,
) error {
	err := handler(srv, stream)
	if err != nil {
		log.Debugf("%s: %s", info.FullMethod, err)
	}
	return err
}
