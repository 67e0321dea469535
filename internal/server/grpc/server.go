package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/ndmitriev/gatekeeper/internal/logging"
	pb "github.com/ndmitriev/gatekeeper/internal/proto"
	"github.com/ndmitriev/gatekeeper/internal/server/auth"
)

type GRPCServer struct {
	pb.UnimplementedGatekeeperServiceServer
	address string
	auth    *auth.Service
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as *auth.Service) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		auth:    as,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.sessionInterceptor))

	pb.RegisterGatekeeperServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
