package grpc

import (
	"context"

	"github.com/dmitrijs2005/vaccx/internal/common"
	pb "github.com/dmitrijs2005/vaccx/internal/proto"
	"github.com/dmitrijs2005/vaccx/internal/server/models"
	"github.com/dmitrijs2005/vaccx/internal/server/services"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) userID(ctx context.Context) (string, error) {
	id, ok := UserIDFromContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, common.ErrorNoToken.Error())
	}
	return id, nil
}

func toPBVaccine(v *models.Vaccine) *pb.Vaccine {
	out := &pb.Vaccine{
		Info: &pb.VaccineInfo{
			RnaInfo:  v.Info.RNAInfo,
			Name:     v.Info.Name,
			SellerId: v.Info.SellerID,
		},
		Private: &pb.SellInfo{Id: v.Private.ID, Price: v.Private.Price},
	}
	if v.Public != nil {
		out.Public = &pb.SellInfo{Id: v.Public.ID, Price: v.Public.Price}
	}
	return out
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	u, err := s.exchange.Register(ctx)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &pb.RegisterResponse{UserId: u.ID, UserPassword: u.Password}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	token, err := s.exchange.Login(ctx, req.GetUserId(), req.GetUserPassword())
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &pb.LoginResponse{Auth: &pb.Auth{Token: token}}, nil
}

func (s *GRPCServer) CreateVaccine(ctx context.Context, req *pb.CreateVaccineRequest) (*pb.CreateVaccineResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	in := services.CreateVaccineInput{
		RNAInfo:      req.RnaInfo,
		Name:         req.Name,
		PrivatePrice: req.PrivatePrice,
	}
	if req.HasPublicPrice() {
		p := req.PublicPrice.Price
		in.PublicPrice = &p
	}

	v, err := s.exchange.CreateVaccine(ctx, userID, in)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &pb.CreateVaccineResponse{Vaccine: toPBVaccine(v)}, nil
}

func (s *GRPCServer) Buy(ctx context.Context, req *pb.BuyRequest) (*pb.BuyResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	info, err := s.exchange.Buy(ctx, userID, req.StockId)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &pb.BuyResponse{RnaInfo: info.RNAInfo}, nil
}

func (s *GRPCServer) Balance(ctx context.Context, req *pb.BalanceRequest) (*pb.BalanceResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	b, err := s.exchange.Balance(ctx, userID)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &pb.BalanceResponse{Balance: b}, nil
}

func (s *GRPCServer) GetPrice(ctx context.Context, req *pb.PriceRequest) (*pb.PriceResponse, error) {
	p, err := s.exchange.GetPrice(ctx, req.StockId)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &pb.PriceResponse{Price: p}, nil
}

func (s *GRPCServer) List(ctx context.Context, req *pb.ListRequest) (*pb.ListResponse, error) {
	entries, err := s.exchange.List(ctx)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}

	out := make([]*pb.ListVaccineInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, &pb.ListVaccineInfo{Name: e.Name, StockId: e.StockID})
	}
	return &pb.ListResponse{Vaccines: out}, nil
}

func (s *GRPCServer) GetUserVaccine(ctx context.Context, req *pb.GetUserVaccineRequest) (*pb.GetUserVaccineResponse, error) {
	userID, err := s.userID(ctx)
	if err != nil {
		return nil, err
	}

	v, err := s.exchange.GetUserVaccine(ctx, userID)
	if err != nil {
		return nil, s.statusError(ctx, err)
	}
	return &pb.GetUserVaccineResponse{Vaccine: toPBVaccine(v)}, nil
}
