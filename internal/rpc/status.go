package rpc

import (
	"context"
	"errors"

	"github.com/fekuna/omnipos-stand-service/internal/apperror"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ToStatus maps use case errors onto gRPC codes. Errors that already carry a
// status pass through.
func ToStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	code := codes.Internal
	switch {
	case errors.Is(err, apperror.ErrValidation):
		code = codes.InvalidArgument
	case errors.Is(err, apperror.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, apperror.ErrInsufficientPayment):
		code = codes.FailedPrecondition
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	}
	return status.Error(code, err.Error())
}
