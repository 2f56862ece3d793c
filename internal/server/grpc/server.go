// Package grpc exposes the exchange engine over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/logging"
	pb "github.com/dmitrijs2005/vaccx/internal/proto"
	"github.com/dmitrijs2005/vaccx/internal/server/models"
	"github.com/dmitrijs2005/vaccx/internal/server/services"
	"google.golang.org/grpc"
)

// Exchange is the engine surface the transport needs.
type Exchange interface {
	Register(ctx context.Context) (*models.User, error)
	Login(ctx context.Context, userID, password string) (string, error)
	Resolve(ctx context.Context, token string) (string, error)
	CreateVaccine(ctx context.Context, userID string, in services.CreateVaccineInput) (*models.Vaccine, error)
	Buy(ctx context.Context, buyerID, stockID string) (models.VaccineInfo, error)
	Balance(ctx context.Context, userID string) (float64, error)
	GetPrice(ctx context.Context, stockID string) (float64, error)
	List(ctx context.Context) ([]models.FeedEntry, error)
	GetUserVaccine(ctx context.Context, userID string) (*models.Vaccine, error)
}

// RPCObserver receives one call per finished RPC.
type RPCObserver interface {
	ObserveRPC(method, code string, d time.Duration)
}

type GRPCServer struct {
	pb.UnimplementedVaccineExchangeServer
	address  string
	exchange Exchange
	logger   logging.Logger
	observer RPCObserver
	limiter  *peerLimiter
}

// Option customizes a GRPCServer.
type Option func(*GRPCServer)

// WithRPCObserver reports every finished call to o.
func WithRPCObserver(o RPCObserver) Option {
	return func(s *GRPCServer) { s.observer = o }
}

// WithRateLimit enables a per-peer token bucket. rps <= 0 leaves it off.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *GRPCServer) { s.limiter = newPeerLimiter(rps, burst, 10*time.Minute) }
}

func NewGRPCServer(address string, l logging.Logger, exchange Exchange, opts ...Option) *GRPCServer {
	s := &GRPCServer{
		address:  address,
		exchange: exchange,
		logger:   l.With("module", "grpc_server"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ForceServerCodec(pb.Codec{}),
		grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.rateLimitInterceptor, s.authInterceptor),
	)
	pb.RegisterVaccineExchangeServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {
	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on listen until ctx is done, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}
	return nil
}
