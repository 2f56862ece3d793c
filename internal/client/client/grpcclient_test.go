package client

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/dmitrijs2005/vaccx/internal/client/models"
	"github.com/dmitrijs2005/vaccx/internal/common"
	pb "github.com/dmitrijs2005/vaccx/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

/*************
 * Fake exchange server
 *************/

type fakeServer struct {
	pb.UnimplementedVaccineExchangeServer

	lastCreate  *pb.CreateVaccineRequest
	lastBuy     *pb.BuyRequest
	lastMDToken []string

	buyErr error
}

func (f *fakeServer) Register(ctx context.Context, _ *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	return &pb.RegisterResponse{UserId: "u1", UserPassword: "pw"}, nil
}

func (f *fakeServer) Login(ctx context.Context, in *pb.LoginRequest) (*pb.LoginResponse, error) {
	if in.UserPassword != "pw" {
		return nil, status.Error(codes.FailedPrecondition, common.ErrorInvalidPassword.Error())
	}
	return &pb.LoginResponse{Auth: &pb.Auth{Token: "tok"}}, nil
}

func (f *fakeServer) CreateVaccine(ctx context.Context, in *pb.CreateVaccineRequest) (*pb.CreateVaccineResponse, error) {
	f.lastCreate = in
	v := &pb.Vaccine{
		Info:    &pb.VaccineInfo{RnaInfo: in.RnaInfo, Name: in.Name, SellerId: "u1"},
		Private: &pb.SellInfo{Id: "p", Price: in.PrivatePrice},
	}
	if in.PublicPrice != nil {
		v.Public = &pb.SellInfo{Id: "q", Price: in.PublicPrice.Price}
	}
	return &pb.CreateVaccineResponse{Vaccine: v}, nil
}

func (f *fakeServer) Buy(ctx context.Context, in *pb.BuyRequest) (*pb.BuyResponse, error) {
	f.lastBuy = in
	md, _ := metadata.FromIncomingContext(ctx)
	f.lastMDToken = md.Get(common.AuthTokenHeaderName)
	if f.buyErr != nil {
		return nil, f.buyErr
	}
	return &pb.BuyResponse{RnaInfo: "AUG"}, nil
}

func (f *fakeServer) Balance(ctx context.Context, in *pb.BalanceRequest) (*pb.BalanceResponse, error) {
	if in.GetAuth().GetToken() != "tok" {
		return nil, status.Error(codes.Unauthenticated, common.ErrorUnauthenticated.Error())
	}
	return &pb.BalanceResponse{Balance: 5}, nil
}

func (f *fakeServer) GetPrice(ctx context.Context, in *pb.PriceRequest) (*pb.PriceResponse, error) {
	if in.StockId == "" {
		return nil, status.Error(codes.NotFound, "price not found")
	}
	return &pb.PriceResponse{Price: 4}, nil
}

func (f *fakeServer) List(ctx context.Context, _ *pb.ListRequest) (*pb.ListResponse, error) {
	return &pb.ListResponse{Vaccines: []*pb.ListVaccineInfo{{Name: "n", StockId: "q"}}}, nil
}

func (f *fakeServer) GetUserVaccine(ctx context.Context, _ *pb.GetUserVaccineRequest) (*pb.GetUserVaccineResponse, error) {
	return &pb.GetUserVaccineResponse{Vaccine: &pb.Vaccine{
		Info:    &pb.VaccineInfo{RnaInfo: "AUG", Name: "n", SellerId: "u1"},
		Private: &pb.SellInfo{Id: "p", Price: 1},
	}}, nil
}

func startFake(t *testing.T, f *fakeServer) *GRPCClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ForceServerCodec(pb.Codec{}))
	pb.RegisterVaccineExchangeServer(srv, f)
	go func() { _ = srv.Serve(lis) }()

	c, err := NewGRPCClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		srv.Stop()
	})
	return c
}

/*************
 * GRPCClient tests
 *************/

func TestRegisterAndLogin(t *testing.T) {
	c := startFake(t, &fakeServer{})
	ctx := context.Background()

	creds, err := c.Register(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.Credentials{UserID: "u1", Password: "pw"}, creds)

	token, err := c.Login(ctx, creds)
	require.NoError(t, err)
	assert.Equal(t, "tok", token)
	assert.Equal(t, "tok", c.Token())

	_, err = c.Login(ctx, models.Credentials{UserID: "u1", Password: "bad"})
	assert.EqualError(t, err, common.ErrorInvalidPassword.Error())
}

func TestSessionCalls_RequireToken(t *testing.T) {
	c := startFake(t, &fakeServer{})
	ctx := context.Background()

	_, err := c.Balance(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = c.Buy(ctx, "q")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = c.CreateVaccine(ctx, models.NewVaccine{})
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = c.GetUserVaccine(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	c.SetToken("stale")
	_, err = c.Balance(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestBuy_SendsTokenInBodyAndMetadata(t *testing.T) {
	f := &fakeServer{}
	c := startFake(t, f)
	c.SetToken("tok")

	rna, err := c.Buy(context.Background(), "q")
	require.NoError(t, err)
	assert.Equal(t, "AUG", rna)
	assert.Equal(t, "tok", f.lastBuy.GetAuth().GetToken())
	assert.Equal(t, []string{"tok"}, f.lastMDToken)
}

func TestBuy_KeepsServerMessage(t *testing.T) {
	c := startFake(t, &fakeServer{buyErr: status.Error(codes.FailedPrecondition, common.ErrorInsufficientFunds.Error())})
	c.SetToken("tok")

	_, err := c.Buy(context.Background(), "q")
	assert.EqualError(t, err, common.ErrorInsufficientFunds.Error())
}

func TestCreateVaccine_MapsBothWays(t *testing.T) {
	f := &fakeServer{}
	c := startFake(t, f)
	c.SetToken("tok")

	pub := 3.0
	v, err := c.CreateVaccine(context.Background(), models.NewVaccine{RNAInfo: "AUG", Name: "n", PrivatePrice: 2, PublicPrice: &pub})
	require.NoError(t, err)

	assert.Equal(t, 3.0, f.lastCreate.PublicPrice.Price)
	assert.Equal(t, &models.Vaccine{
		RNAInfo: "AUG", Name: "n", SellerID: "u1",
		Private: models.Offer{StockID: "p", Price: 2},
		Public:  &models.Offer{StockID: "q", Price: 3},
	}, v)

	_, err = c.CreateVaccine(context.Background(), models.NewVaccine{RNAInfo: "AUG", Name: "n", PrivatePrice: 2})
	require.NoError(t, err)
	assert.Nil(t, f.lastCreate.PublicPrice)
}

func TestPublicCalls(t *testing.T) {
	c := startFake(t, &fakeServer{})
	ctx := context.Background()

	p, err := c.GetPrice(ctx, "q")
	require.NoError(t, err)
	assert.Equal(t, 4.0, p)

	_, err = c.GetPrice(ctx, "")
	assert.EqualError(t, err, "price not found")

	list, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Listing{{Name: "n", StockID: "q"}}, list)

	c.SetToken("tok")
	v, err := c.GetUserVaccine(ctx)
	require.NoError(t, err)
	assert.Nil(t, v.Public)
	assert.Equal(t, "p", v.Private.StockID)
}

func TestMapError(t *testing.T) {
	c := &GRPCClient{}

	assert.Nil(t, c.mapError(nil))
	assert.ErrorIs(t, c.mapError(status.Error(codes.Unavailable, "x")), ErrUnavailable)
	assert.ErrorIs(t, c.mapError(status.Error(codes.DeadlineExceeded, "x")), ErrUnavailable)
	assert.ErrorIs(t, c.mapError(status.Error(codes.Unauthenticated, "x")), ErrUnauthorized)
	assert.EqualError(t, c.mapError(errors.New("plain")), "plain")
}

func TestWithAuthToken_ReplacesExisting(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AuthTokenHeaderName, "old", "x-other", "1")
	ctx = withAuthToken(ctx, "new")

	md, _ := metadata.FromOutgoingContext(ctx)
	assert.Equal(t, []string{"new"}, md.Get(common.AuthTokenHeaderName))
	assert.Equal(t, []string{"1"}, md.Get("x-other"))
}
