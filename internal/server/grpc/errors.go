package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/vaccx/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusError converts err for the wire and logs the cause of failures
// that reach the caller as a bare internal error.
func (s *GRPCServer) statusError(ctx context.Context, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal && !errors.Is(err, common.ErrorSelfTrade) {
		s.logger.Error(ctx, "request failed", "error", err)
	}
	return st
}

// toStatus maps engine errors onto gRPC status codes. Storage and codec
// failures surface as Internal without details.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrorUnauthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorInvalidPassword),
		errors.Is(err, common.ErrorInsufficientFunds):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, common.ErrorSelfTrade):
		return status.Error(codes.Internal, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, common.ErrorInternal.Error())
	}
}
