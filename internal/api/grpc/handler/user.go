package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dtroode/bankcards-server/api/proto"
	"github.com/dtroode/bankcards-server/internal/authz"
	"github.com/dtroode/bankcards-server/internal/logger"
	"github.com/dtroode/bankcards-server/internal/model"
)

// UserService defines user directory operations.
type UserService interface {
	GetByUsername(ctx context.Context, username string) (model.User, error)
	List(ctx context.Context, req model.PageRequest) ([]model.User, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdateUserParams) error
	Delete(ctx context.Context, id uuid.UUID) error
	Balance(ctx context.Context, id uuid.UUID) (model.Balance, error)
}

// User handles gRPC endpoints for users.
type User struct {
	proto.UnimplementedUsersServer

	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

func (h *User) ListUsers(ctx context.Context, req *proto.ListUsersRequest) (*proto.ListUsersResponse, error) {
	if err := authz.RequireAdmin(principalFrom(ctx, h.contextManager)); err != nil {
		return nil, handleError(err)
	}

	users, err := h.userService.List(ctx, model.PageRequest{
		Page:      int(req.Page),
		Size:      int(req.Size),
		Ascending: !req.Descending,
	})
	if err != nil {
		h.logger.Error("User handler: list users failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	out := make([]*proto.User, 0, len(users))
	for _, u := range users {
		out = append(out, userToProto(u))
	}
	return &proto.ListUsersResponse{Users: out}, nil
}

func (h *User) GetUserByUsername(ctx context.Context, req *proto.GetUserByUsernameRequest) (*proto.User, error) {
	if err := authz.AdminOrSelfByName(principalFrom(ctx, h.contextManager), req.Username); err != nil {
		return nil, handleError(err)
	}

	user, err := h.userService.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, handleError(err)
	}

	return userToProto(user), nil
}

func (h *User) UpdateUser(ctx context.Context, req *proto.UpdateUserRequest) (*emptypb.Empty, error) {
	h.logger.Debug("User handler: processing update user request",
		"user_id", req.UserId)

	if err := authz.RequireAdmin(principalFrom(ctx, h.contextManager)); err != nil {
		return nil, handleError(err)
	}

	id, err := parseUUID("user_id", req.UserId)
	if err != nil {
		return nil, err
	}

	if err := h.userService.Update(ctx, id, model.UpdateUserParams{Username: req.Username}); err != nil {
		h.logger.Error("User handler: update user failed",
			"user_id", id,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &emptypb.Empty{}, nil
}

func (h *User) DeleteUser(ctx context.Context, req *proto.UserRequest) (*emptypb.Empty, error) {
	h.logger.Debug("User handler: processing delete user request",
		"user_id", req.UserId)

	if err := authz.RequireAdmin(principalFrom(ctx, h.contextManager)); err != nil {
		return nil, handleError(err)
	}

	id, err := parseUUID("user_id", req.UserId)
	if err != nil {
		return nil, err
	}

	if err := h.userService.Delete(ctx, id); err != nil {
		h.logger.Error("User handler: delete user failed",
			"user_id", id,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("User handler: user deleted",
		"user_id", id)

	return &emptypb.Empty{}, nil
}

func (h *User) GetBalance(ctx context.Context, req *proto.UserRequest) (*proto.BalanceResponse, error) {
	id, err := guardUserID(principalFrom(ctx, h.contextManager), "user_id", req.UserId, authz.AdminOrSelf)
	if err != nil {
		return nil, err
	}

	balance, err := h.userService.Balance(ctx, id)
	if err != nil {
		return nil, handleError(err)
	}

	return &proto.BalanceResponse{
		UserId: balance.UserID.String(),
		Total:  balance.Total.StringFixed(model.MoneyScale),
	}, nil
}
