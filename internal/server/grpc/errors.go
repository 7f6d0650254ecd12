package grpc

import (
	"errors"

	"github.com/dmitrijs2005/authkeeper/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrAccountExists, codes.AlreadyExists},
	{common.ErrAccountNotFound, codes.NotFound},
	{common.ErrTokenNotFound, codes.NotFound},
	{common.ErrInvalidPassword, codes.Unauthenticated},
	{common.ErrAccountNotConfirmed, codes.FailedPrecondition},
	{common.ErrAccountAlreadyConfirmed, codes.PermissionDenied},
	{common.ErrPasswordTooLong, codes.InvalidArgument},
}

// toStatus translates a service error into a gRPC status. Domain errors keep
// their message; anything else becomes a bare "internal error".
func toStatus(err error) error {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return status.Error(e.code, e.err.Error())
		}
	}
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}
