package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/bankcards-server/internal/apierrors"
	"github.com/dtroode/bankcards-server/internal/model"
)

func handleError(err error) error {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return status.Error(apiErr.GRPCCode, apiErr.Message)
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}

func invalidArgument(field string, err error) error {
	return status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
}
