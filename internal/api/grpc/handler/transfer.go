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

// TransferService moves money between two cards of the same user.
type TransferService interface {
	Transfer(ctx context.Context, userID uuid.UUID, params model.TransferParams) error
}

// Transfer handles gRPC endpoints for transfers.
type Transfer struct {
	proto.UnimplementedTransfersServer

	transferService TransferService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewTransfer creates a new Transfer handler.
func NewTransfer(transferService TransferService, contextManager model.ContextManager, logger *logger.Logger) *Transfer {
	return &Transfer{
		transferService: transferService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

// Transfer moves money as the given user. Only that user may do it,
// administrators included.
func (h *Transfer) Transfer(ctx context.Context, req *proto.TransferRequest) (*emptypb.Empty, error) {
	h.logger.Debug("Transfer handler: processing transfer request",
		"user_id", req.UserId,
		"from_card_id", req.FromCardId,
		"to_card_id", req.ToCardId)

	userID, err := guardUserID(principalFrom(ctx, h.contextManager), "user_id", req.UserId, authz.SelfOnly)
	if err != nil {
		return nil, err
	}

	fromID, err := parseUUID("from_card_id", req.FromCardId)
	if err != nil {
		return nil, err
	}
	toID, err := parseUUID("to_card_id", req.ToCardId)
	if err != nil {
		return nil, err
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		return nil, err
	}

	err = h.transferService.Transfer(ctx, userID, model.TransferParams{
		FromCardID: fromID,
		ToCardID:   toID,
		Amount:     amount,
	})
	if err != nil {
		h.logger.Error("Transfer handler: transfer failed",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &emptypb.Empty{}, nil
}
