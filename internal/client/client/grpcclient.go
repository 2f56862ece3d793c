package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/vaccx/internal/client/models"
	"github.com/dmitrijs2005/vaccx/internal/common"
	pb "github.com/dmitrijs2005/vaccx/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.VaccineExchangeClient

	mu    sync.RWMutex
	token string
}

func withAuthToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AuthTokenHeaderName)
	md.Set(common.AuthTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// authTokenInterceptor attaches the current session token, if any, to
// every outgoing call.
func (s *GRPCClient) authTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if token := s.Token(); token != "" {
		ctx = withAuthToken(ctx, token)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient connects to endpointURL over plaintext gRPC. Extra dial
// options are appended after the defaults.
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(extra ...grpc.DialOption) error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(pb.Codec{})),
		grpc.WithUnaryInterceptor(s.authTokenInterceptor),
	}, extra...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewVaccineExchangeClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *GRPCClient) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// auth returns the request auth block, or ErrNotLoggedIn when there is no
// session yet.
func (s *GRPCClient) auth() (*pb.Auth, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}
	return &pb.Auth{Token: token}, nil
}

func (s *GRPCClient) Register(ctx context.Context) (models.Credentials, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{})
	if err != nil {
		return models.Credentials{}, s.mapError(err)
	}
	return models.Credentials{UserID: resp.UserId, Password: resp.UserPassword}, nil
}

// Login authenticates and keeps the returned token for later calls.
func (s *GRPCClient) Login(ctx context.Context, creds models.Credentials) (string, error) {
	req := &pb.LoginRequest{UserId: creds.UserID, UserPassword: creds.Password}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return "", s.mapError(err)
	}

	token := resp.GetAuth().GetToken()
	s.SetToken(token)
	return token, nil
}

func (s *GRPCClient) CreateVaccine(ctx context.Context, v models.NewVaccine) (*models.Vaccine, error) {
	auth, err := s.auth()
	if err != nil {
		return nil, err
	}

	req := &pb.CreateVaccineRequest{
		Auth:         auth,
		RnaInfo:      v.RNAInfo,
		Name:         v.Name,
		PrivatePrice: v.PrivatePrice,
	}
	if v.PublicPrice != nil {
		req.PublicPrice = &pb.PublicPrice{Price: *v.PublicPrice}
	}

	resp, err := s.client.CreateVaccine(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBVaccine(resp.Vaccine), nil
}

// Buy returns the rna info of the bought vaccine.
func (s *GRPCClient) Buy(ctx context.Context, stockID string) (string, error) {
	auth, err := s.auth()
	if err != nil {
		return "", err
	}

	resp, err := s.client.Buy(ctx, &pb.BuyRequest{Auth: auth, StockId: stockID})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.RnaInfo, nil
}

func (s *GRPCClient) Balance(ctx context.Context) (float64, error) {
	auth, err := s.auth()
	if err != nil {
		return 0, err
	}

	resp, err := s.client.Balance(ctx, &pb.BalanceRequest{Auth: auth})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Balance, nil
}

func (s *GRPCClient) GetPrice(ctx context.Context, stockID string) (float64, error) {
	resp, err := s.client.GetPrice(ctx, &pb.PriceRequest{StockId: stockID})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.Price, nil
}

func (s *GRPCClient) List(ctx context.Context) ([]models.Listing, error) {
	resp, err := s.client.List(ctx, &pb.ListRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]models.Listing, 0, len(resp.Vaccines))
	for _, v := range resp.Vaccines {
		out = append(out, models.Listing{Name: v.Name, StockID: v.StockId})
	}
	return out, nil
}

func (s *GRPCClient) GetUserVaccine(ctx context.Context) (*models.Vaccine, error) {
	auth, err := s.auth()
	if err != nil {
		return nil, err
	}

	resp, err := s.client.GetUserVaccine(ctx, &pb.GetUserVaccineRequest{Auth: auth})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBVaccine(resp.Vaccine), nil
}

func fromPBVaccine(v *pb.Vaccine) *models.Vaccine {
	if v == nil {
		return nil
	}
	out := &models.Vaccine{}
	if v.Info != nil {
		out.RNAInfo = v.Info.RnaInfo
		out.Name = v.Info.Name
		out.SellerID = v.Info.SellerId
	}
	if v.Private != nil {
		out.Private = models.Offer{StockID: v.Private.Id, Price: v.Private.Price}
	}
	if v.Public != nil {
		out.Public = &models.Offer{StockID: v.Public.Id, Price: v.Public.Price}
	}
	return out
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return errors.New(st.Message())
	}
}
