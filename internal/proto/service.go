package proto

import (
	context "context"

	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "exchange.VaccineExchange"

// Full method names, usable in interceptors.
const (
	VaccineExchange_Register_FullMethodName       = "/exchange.VaccineExchange/Register"
	VaccineExchange_Login_FullMethodName          = "/exchange.VaccineExchange/Login"
	VaccineExchange_CreateVaccine_FullMethodName  = "/exchange.VaccineExchange/CreateVaccine"
	VaccineExchange_Buy_FullMethodName            = "/exchange.VaccineExchange/Buy"
	VaccineExchange_Balance_FullMethodName        = "/exchange.VaccineExchange/Balance"
	VaccineExchange_GetPrice_FullMethodName       = "/exchange.VaccineExchange/GetPrice"
	VaccineExchange_List_FullMethodName           = "/exchange.VaccineExchange/List"
	VaccineExchange_GetUserVaccine_FullMethodName = "/exchange.VaccineExchange/GetUserVaccine"
)

// VaccineExchangeClient is the client API for the VaccineExchange service.
type VaccineExchangeClient interface {
	Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error)
	Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error)
	CreateVaccine(ctx context.Context, in *CreateVaccineRequest, opts ...grpc.CallOption) (*CreateVaccineResponse, error)
	Buy(ctx context.Context, in *BuyRequest, opts ...grpc.CallOption) (*BuyResponse, error)
	Balance(ctx context.Context, in *BalanceRequest, opts ...grpc.CallOption) (*BalanceResponse, error)
	GetPrice(ctx context.Context, in *PriceRequest, opts ...grpc.CallOption) (*PriceResponse, error)
	List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error)
	GetUserVaccine(ctx context.Context, in *GetUserVaccineRequest, opts ...grpc.CallOption) (*GetUserVaccineResponse, error)
}

type vaccineExchangeClient struct {
	cc grpc.ClientConnInterface
}

func NewVaccineExchangeClient(cc grpc.ClientConnInterface) VaccineExchangeClient {
	return &vaccineExchangeClient{cc}
}

func (c *vaccineExchangeClient) Register(ctx context.Context, in *RegisterRequest, opts ...grpc.CallOption) (*RegisterResponse, error) {
	out := new(RegisterResponse)
	err := c.cc.Invoke(ctx, VaccineExchange_Register_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaccineExchangeClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	out := new(LoginResponse)
	err := c.cc.Invoke(ctx, VaccineExchange_Login_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaccineExchangeClient) CreateVaccine(ctx context.Context, in *CreateVaccineRequest, opts ...grpc.CallOption) (*CreateVaccineResponse, error) {
	out := new(CreateVaccineResponse)
	err := c.cc.Invoke(ctx, VaccineExchange_CreateVaccine_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaccineExchangeClient) Buy(ctx context.Context, in *BuyRequest, opts ...grpc.CallOption) (*BuyResponse, error) {
	out := new(BuyResponse)
	err := c.cc.Invoke(ctx, VaccineExchange_Buy_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaccineExchangeClient) Balance(ctx context.Context, in *BalanceRequest, opts ...grpc.CallOption) (*BalanceResponse, error) {
	out := new(BalanceResponse)
	err := c.cc.Invoke(ctx, VaccineExchange_Balance_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaccineExchangeClient) GetPrice(ctx context.Context, in *PriceRequest, opts ...grpc.CallOption) (*PriceResponse, error) {
	out := new(PriceResponse)
	err := c.cc.Invoke(ctx, VaccineExchange_GetPrice_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaccineExchangeClient) List(ctx context.Context, in *ListRequest, opts ...grpc.CallOption) (*ListResponse, error) {
	out := new(ListResponse)
	err := c.cc.Invoke(ctx, VaccineExchange_List_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vaccineExchangeClient) GetUserVaccine(ctx context.Context, in *GetUserVaccineRequest, opts ...grpc.CallOption) (*GetUserVaccineResponse, error) {
	out := new(GetUserVaccineResponse)
	err := c.cc.Invoke(ctx, VaccineExchange_GetUserVaccine_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VaccineExchangeServer is the server API for the VaccineExchange service.
// Implementations must embed UnimplementedVaccineExchangeServer.
type VaccineExchangeServer interface {
	Register(context.Context, *RegisterRequest) (*RegisterResponse, error)
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	CreateVaccine(context.Context, *CreateVaccineRequest) (*CreateVaccineResponse, error)
	Buy(context.Context, *BuyRequest) (*BuyResponse, error)
	Balance(context.Context, *BalanceRequest) (*BalanceResponse, error)
	GetPrice(context.Context, *PriceRequest) (*PriceResponse, error)
	List(context.Context, *ListRequest) (*ListResponse, error)
	GetUserVaccine(context.Context, *GetUserVaccineRequest) (*GetUserVaccineResponse, error)
	mustEmbedUnimplementedVaccineExchangeServer()
}

// UnimplementedVaccineExchangeServer answers every method with Unimplemented.
type UnimplementedVaccineExchangeServer struct{}

func (UnimplementedVaccineExchangeServer) Register(context.Context, *RegisterRequest) (*RegisterResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Register not implemented")
}
func (UnimplementedVaccineExchangeServer) Login(context.Context, *LoginRequest) (*LoginResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Login not implemented")
}
func (UnimplementedVaccineExchangeServer) CreateVaccine(context.Context, *CreateVaccineRequest) (*CreateVaccineResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreateVaccine not implemented")
}
func (UnimplementedVaccineExchangeServer) Buy(context.Context, *BuyRequest) (*BuyResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Buy not implemented")
}
func (UnimplementedVaccineExchangeServer) Balance(context.Context, *BalanceRequest) (*BalanceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Balance not implemented")
}
func (UnimplementedVaccineExchangeServer) GetPrice(context.Context, *PriceRequest) (*PriceResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPrice not implemented")
}
func (UnimplementedVaccineExchangeServer) List(context.Context, *ListRequest) (*ListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method List not implemented")
}
func (UnimplementedVaccineExchangeServer) GetUserVaccine(context.Context, *GetUserVaccineRequest) (*GetUserVaccineResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetUserVaccine not implemented")
}
func (UnimplementedVaccineExchangeServer) mustEmbedUnimplementedVaccineExchangeServer() {}

func RegisterVaccineExchangeServer(s grpc.ServiceRegistrar, srv VaccineExchangeServer) {
	s.RegisterService(&VaccineExchange_ServiceDesc, srv)
}

func _VaccineExchange_Register_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(RegisterRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaccineExchangeServer).Register(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaccineExchange_Register_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaccineExchangeServer).Register(ctx, req.(*RegisterRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaccineExchange_Login_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(LoginRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaccineExchangeServer).Login(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaccineExchange_Login_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaccineExchangeServer).Login(ctx, req.(*LoginRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaccineExchange_CreateVaccine_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreateVaccineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaccineExchangeServer).CreateVaccine(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaccineExchange_CreateVaccine_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaccineExchangeServer).CreateVaccine(ctx, req.(*CreateVaccineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaccineExchange_Buy_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BuyRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaccineExchangeServer).Buy(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaccineExchange_Buy_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaccineExchangeServer).Buy(ctx, req.(*BuyRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaccineExchange_Balance_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(BalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaccineExchangeServer).Balance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaccineExchange_Balance_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaccineExchangeServer).Balance(ctx, req.(*BalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaccineExchange_GetPrice_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PriceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaccineExchangeServer).GetPrice(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaccineExchange_GetPrice_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaccineExchangeServer).GetPrice(ctx, req.(*PriceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaccineExchange_List_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaccineExchangeServer).List(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaccineExchange_List_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaccineExchangeServer).List(ctx, req.(*ListRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _VaccineExchange_GetUserVaccine_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetUserVaccineRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VaccineExchangeServer).GetUserVaccine(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: VaccineExchange_GetUserVaccine_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(VaccineExchangeServer).GetUserVaccine(ctx, req.(*GetUserVaccineRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// VaccineExchange_ServiceDesc is the grpc.ServiceDesc for the VaccineExchange service.
var VaccineExchange_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*VaccineExchangeServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Register",
			Handler:    _VaccineExchange_Register_Handler,
		},
		{
			MethodName: "Login",
			Handler:    _VaccineExchange_Login_Handler,
		},
		{
			MethodName: "CreateVaccine",
			Handler:    _VaccineExchange_CreateVaccine_Handler,
		},
		{
			MethodName: "Buy",
			Handler:    _VaccineExchange_Buy_Handler,
		},
		{
			MethodName: "Balance",
			Handler:    _VaccineExchange_Balance_Handler,
		},
		{
			MethodName: "GetPrice",
			Handler:    _VaccineExchange_GetPrice_Handler,
		},
		{
			MethodName: "List",
			Handler:    _VaccineExchange_List_Handler,
		},
		{
			MethodName: "GetUserVaccine",
			Handler:    _VaccineExchange_GetUserVaccine_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "exchange.proto",
}
