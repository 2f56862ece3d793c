package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/vaccx/internal/common"
	pb "github.com/dmitrijs2005/vaccx/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// authenticated lists the methods that need a session.
var authenticated = map[string]bool{
	pb.VaccineExchange_CreateVaccine_FullMethodName:  true,
	pb.VaccineExchange_Buy_FullMethodName:            true,
	pb.VaccineExchange_Balance_FullMethodName:        true,
	pb.VaccineExchange_GetUserVaccine_FullMethodName: true,
}

type authRequest interface {
	GetAuth() *pb.Auth
}

// UserIDFromContext returns the user id the auth interceptor resolved.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok && id != ""
}

// tokenFrom prefers the token in the request body and falls back to the
// auth_token metadata header.
func tokenFrom(ctx context.Context, req interface{}) string {
	if r, ok := req.(authRequest); ok {
		if t := r.GetAuth().GetToken(); t != "" {
			return t
		}
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AuthTokenHeaderName); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

func (s *GRPCServer) authInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if !authenticated[info.FullMethod] {
		return handler(ctx, req)
	}

	userID, err := s.exchange.Resolve(ctx, tokenFrom(ctx, req))
	if err != nil {
		return nil, s.statusError(ctx, err)
	}

	ctx = context.WithValue(ctx, userIDKey, userID)
	return handler(ctx, req)
}

func peerKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

func (s *GRPCServer) rateLimitInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if !s.limiter.allow(peerKey(ctx), time.Now()) {
		return nil, status.Error(codes.ResourceExhausted, "rate limit exceeded")
	}
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	d := time.Since(start)
	code := status.Code(err)

	if s.observer != nil {
		s.observer.ObserveRPC(info.FullMethod, code.String(), d)
	}

	args := []any{"method", info.FullMethod, "code", code.String(), "duration", d}
	if code == codes.OK {
		s.logger.Debug(ctx, "rpc", args...)
	} else {
		s.logger.Info(ctx, "rpc", append(args, "error", status.Convert(err).Message())...)
	}
	return resp, err
}
