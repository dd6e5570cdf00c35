package grpc_interface

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/http"

	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	pb "github.com/mintgate/payprocd/api-spec/protobuf/gen/go/payproc/v1"
	"github.com/mintgate/payprocd/internal/core/application"
	"github.com/mintgate/payprocd/internal/interface/grpc/handlers"
	"github.com/mintgate/payprocd/internal/interface/grpc/interceptors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	grpchealth "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/protobuf/encoding/protojson"
)

type service struct {
	cfg        Config
	appSvc     *application.Service
	httpServer *http.Server
	grpcServer *grpc.Server
	conn       *grpc.ClientConn
}

func NewService(cfg Config, appSvc *application.Service) (*service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %s", err)
	}

	grpcConfig := []grpc.ServerOption{
		interceptors.UnaryInterceptor(),
		interceptors.StreamInterceptor(),
	}

	if cfg.WithTLS {
		return nil, fmt.Errorf("tls termination not supported yet")
	}
	creds := insecure.NewCredentials()
	if !cfg.insecure() {
		creds = credentials.NewTLS(cfg.tlsConfig())
	}
	grpcConfig = append(grpcConfig, grpc.Creds(creds))

	grpcServer := grpc.NewServer(grpcConfig...)

	paymentHandler := handlers.NewPaymentHandler(appSvc)
	pb.RegisterPaymentProcessorServer(grpcServer, paymentHandler)

	healthHandler := handlers.NewHealthHandler(appSvc)
	grpchealth.RegisterHealthServer(grpcServer, healthHandler)

	gatewayCreds := insecure.NewCredentials()
	if !cfg.insecure() {
		gatewayCreds = credentials.NewTLS(&tls.Config{
			InsecureSkipVerify: true, // #nosec
		})
	}
	conn, err := grpc.NewClient(
		cfg.gatewayAddress(), grpc.WithTransportCredentials(gatewayCreds),
	)
	if err != nil {
		return nil, err
	}

	healthzHandler := grpchealth.NewHealthClient(conn)
	gwmux := runtime.NewServeMux(
		runtime.WithHealthzEndpoint(healthzHandler),
		runtime.WithMarshalerOption("application/json+pretty", &runtime.JSONPb{
			MarshalOptions: protojson.MarshalOptions{
				Indent:    "  ",
				Multiline: true,
			},
			UnmarshalOptions: protojson.UnmarshalOptions{
				DiscardUnknown: true,
			},
		}),
	)
	// nolint
	gwmux.HandlePath("GET", "/healthz", func(w http.ResponseWriter, r *http.Request, _ map[string]string) {
		resp, err := healthzHandler.Check(r.Context(), &grpchealth.HealthCheckRequest{Service: "payprocd"})
		if err != nil {
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}

		switch resp.Status {
		case grpchealth.HealthCheckResponse_SERVING:
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		case grpchealth.HealthCheckResponse_NOT_SERVING:
			http.Error(w, "unhealthy", http.StatusServiceUnavailable)
		case grpchealth.HealthCheckResponse_SERVICE_UNKNOWN:
			http.Error(w, "unknown service", http.StatusNotFound)
		default:
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
		}
	})

	mux := http.NewServeMux()
	mux.Handle("/", gwmux)

	httpServerHandler := http.Handler(mux)
	if cfg.insecure() {
		httpServerHandler = h2c.NewHandler(httpServerHandler, &http2.Server{})
	}

	httpServer := &http.Server{
		Addr:      cfg.httpAddress(),
		Handler:   httpServerHandler,
		TLSConfig: cfg.tlsConfig(),
	}

	return &service{
		cfg:        cfg,
		appSvc:     appSvc,
		httpServer: httpServer,
		grpcServer: grpcServer,
		conn:       conn,
	}, nil
}

func (s *service) Start() error {
	listener, err := net.Listen("tcp", s.cfg.grpcAddress())
	if err != nil {
		return err
	}
	// nolint:all
	go s.grpcServer.Serve(listener)
	log.Infof("started GRPC server at %s", s.cfg.grpcAddress())

	if s.cfg.insecure() {
		// nolint:all
		go s.httpServer.ListenAndServe()
	} else {
		// nolint:all
		go s.httpServer.ListenAndServeTLS("", "")
	}
	log.Infof("started HTTP server at %s", s.cfg.httpAddress())

	return nil
}

func (s *service) Stop() {
	s.grpcServer.GracefulStop()
	log.Info("stopped GRPC server")

	// nolint:all
	s.conn.Close()

	// nolint:all
	s.httpServer.Shutdown(context.Background())
	log.Info("stopped HTTP server")

	s.appSvc.Stop()
}
