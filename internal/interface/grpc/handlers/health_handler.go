package handlers

import (
	"context"

	"github.com/mintgate/payprocd/internal/core/application"
	log "github.com/sirupsen/logrus"
	grpchealth "google.golang.org/grpc/health/grpc_health_v1"
)

type healthHandler struct {
	svc *application.Service
}

func NewHealthHandler(svc *application.Service) grpchealth.HealthServer {
	return &healthHandler{svc: svc}
}

func (h *healthHandler) Check(
	ctx context.Context,
	_ *grpchealth.HealthCheckRequest,
) (*grpchealth.HealthCheckResponse, error) {
	if h.svc == nil {
		return &grpchealth.HealthCheckResponse{
			Status: grpchealth.HealthCheckResponse_NOT_SERVING,
		}, nil
	}

	// The backend settings call is the cheapest end-to-end probe we have.
	if _, err := h.svc.Settings(); err != nil {
		log.WithError(err).Warn("health check: failed to load backend settings")
		return &grpchealth.HealthCheckResponse{
			Status: grpchealth.HealthCheckResponse_NOT_SERVING,
		}, nil
	}

	return &grpchealth.HealthCheckResponse{
		Status: grpchealth.HealthCheckResponse_SERVING,
	}, nil
}

func (h *healthHandler) Watch(
	_ *grpchealth.HealthCheckRequest,
	_ grpchealth.Health_WatchServer,
) error {
	return nil
}
