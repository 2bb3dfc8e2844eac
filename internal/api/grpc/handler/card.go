package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/dtroode/bankcards-server/api/proto"
	"github.com/dtroode/bankcards-server/internal/authz"
	"github.com/dtroode/bankcards-server/internal/logger"
	"github.com/dtroode/bankcards-server/internal/model"
)

// CardService defines card registry operations.
type CardService interface {
	Create(ctx context.Context, params model.CreateCardParams) (model.Card, error)
	Get(ctx context.Context, cardID uuid.UUID) (model.Card, error)
	List(ctx context.Context, filter model.CardFilter, req model.PageRequest) ([]model.Card, error)
	ListForOwner(ctx context.Context, ownerID uuid.UUID, req model.PageRequest) ([]model.Card, error)
	SetStatus(ctx context.Context, cardID uuid.UUID, status model.CardStatus) error
	SelfBlock(ctx context.Context, cardID, callerID uuid.UUID) error
	Delete(ctx context.Context, cardID uuid.UUID) error
	View(card model.Card) (model.CardView, error)
}

// Card handles gRPC endpoints for cards.
type Card struct {
	proto.UnimplementedCardsServer

	cardService    CardService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewCard creates a new Card handler.
func NewCard(cardService CardService, contextManager model.ContextManager, logger *logger.Logger) *Card {
	return &Card{
		cardService:    cardService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// CreateCard issues a card to a user. Admin only.
func (h *Card) CreateCard(ctx context.Context, req *proto.CreateCardRequest) (*proto.Card, error) {
	h.logger.Debug("Card handler: processing create card request",
		"owner_id", req.OwnerId)

	if err := authz.RequireAdmin(principalFrom(ctx, h.contextManager)); err != nil {
		return nil, handleError(err)
	}

	ownerID, err := parseUUID("owner_id", req.OwnerId)
	if err != nil {
		return nil, err
	}
	expiry, err := parseDate("expiry_date", req.ExpiryDate)
	if err != nil {
		return nil, err
	}
	balance := decimal.Zero
	if req.InitialBalance != "" {
		balance, err = parseAmount("initial_balance", req.InitialBalance)
		if err != nil {
			return nil, err
		}
	}

	card, err := h.cardService.Create(ctx, model.CreateCardParams{
		OwnerID:        ownerID,
		CardNumber:     req.CardNumber,
		ExpiryDate:     expiry,
		InitialBalance: balance,
	})
	if err != nil {
		h.logger.Error("Card handler: create card failed",
			"owner_id", req.OwnerId,
			"error", err.Error())
		return nil, handleError(err)
	}

	out, err := h.view(card)
	if err != nil {
		return nil, err
	}

	h.logger.Info("Card handler: card created",
		"card_id", card.ID)

	return out, nil
}

// ListCards lists all cards, optionally filtered. Admin only.
func (h *Card) ListCards(ctx context.Context, req *proto.ListCardsRequest) (*proto.ListCardsResponse, error) {
	h.logger.Debug("Card handler: processing list cards request",
		"status", req.Status,
		"expiry_date", req.ExpiryDate)

	if err := authz.RequireAdmin(principalFrom(ctx, h.contextManager)); err != nil {
		return nil, handleError(err)
	}

	var filter model.CardFilter
	if req.Status != "" {
		st, err := model.ParseCardStatus(req.Status)
		if err != nil {
			return nil, invalidArgument("status", err)
		}
		filter.Status = &st
	}
	if req.ExpiryDate != "" {
		expiry, err := parseDate("expiry_date", req.ExpiryDate)
		if err != nil {
			return nil, err
		}
		filter.ExpiryDate = &expiry
	}

	cards, err := h.cardService.List(ctx, filter, pageRequest(req.Page, req.Size, req.Ascending))
	if err != nil {
		h.logger.Error("Card handler: list cards failed",
			"error", err.Error())
		return nil, handleError(err)
	}

	return h.viewAll(cards)
}

// ListUserCards lists the cards of one user. Admin or the user itself.
func (h *Card) ListUserCards(ctx context.Context, req *proto.ListUserCardsRequest) (*proto.ListCardsResponse, error) {
	h.logger.Debug("Card handler: processing list user cards request",
		"user_id", req.UserId)

	userID, err := guardUserID(principalFrom(ctx, h.contextManager), "user_id", req.UserId, authz.AdminOrSelf)
	if err != nil {
		return nil, err
	}

	cards, err := h.cardService.ListForOwner(ctx, userID, pageRequest(req.Page, req.Size, req.Ascending))
	if err != nil {
		h.logger.Error("Card handler: list user cards failed",
			"user_id", userID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return h.viewAll(cards)
}

// GetCard returns one card. Admin only.
func (h *Card) GetCard(ctx context.Context, req *proto.CardRequest) (*proto.Card, error) {
	if err := authz.RequireAdmin(principalFrom(ctx, h.contextManager)); err != nil {
		return nil, handleError(err)
	}

	cardID, err := parseUUID("card_id", req.CardId)
	if err != nil {
		return nil, err
	}

	card, err := h.cardService.Get(ctx, cardID)
	if err != nil {
		return nil, handleError(err)
	}

	return h.view(card)
}

// ChangeCardStatus sets any status on a card. Admin only.
func (h *Card) ChangeCardStatus(ctx context.Context, req *proto.ChangeCardStatusRequest) (*emptypb.Empty, error) {
	h.logger.Debug("Card handler: processing change status request",
		"card_id", req.CardId,
		"status", req.Status)

	if err := authz.RequireAdmin(principalFrom(ctx, h.contextManager)); err != nil {
		return nil, handleError(err)
	}

	cardID, err := parseUUID("card_id", req.CardId)
	if err != nil {
		return nil, err
	}
	st, err := model.ParseCardStatus(req.Status)
	if err != nil {
		return nil, invalidArgument("status", err)
	}

	if err := h.cardService.SetStatus(ctx, cardID, st); err != nil {
		h.logger.Error("Card handler: change status failed",
			"card_id", cardID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &emptypb.Empty{}, nil
}

// BlockCard lets the owner block their own card.
func (h *Card) BlockCard(ctx context.Context, req *proto.CardRequest) (*emptypb.Empty, error) {
	h.logger.Debug("Card handler: processing block card request",
		"card_id", req.CardId)

	p := principalFrom(ctx, h.contextManager)
	if err := authz.Authenticated(p); err != nil {
		return nil, handleError(err)
	}

	cardID, err := parseUUID("card_id", req.CardId)
	if err != nil {
		return nil, err
	}

	if err := h.cardService.SelfBlock(ctx, cardID, p.UserID); err != nil {
		h.logger.Error("Card handler: block card failed",
			"card_id", cardID,
			"user_id", p.UserID,
			"error", err.Error())
		return nil, handleError(err)
	}

	h.logger.Info("Card handler: card blocked",
		"card_id", cardID,
		"user_id", p.UserID)

	return &emptypb.Empty{}, nil
}

// DeleteCard removes a card. Admin only.
func (h *Card) DeleteCard(ctx context.Context, req *proto.CardRequest) (*emptypb.Empty, error) {
	if err := authz.RequireAdmin(principalFrom(ctx, h.contextManager)); err != nil {
		return nil, handleError(err)
	}

	cardID, err := parseUUID("card_id", req.CardId)
	if err != nil {
		return nil, err
	}

	if err := h.cardService.Delete(ctx, cardID); err != nil {
		h.logger.Error("Card handler: delete card failed",
			"card_id", cardID,
			"error", err.Error())
		return nil, handleError(err)
	}

	return &emptypb.Empty{}, nil
}

func (h *Card) view(card model.Card) (*proto.Card, error) {
	v, err := h.cardService.View(card)
	if err != nil {
		h.logger.Error("Card handler: failed to render card",
			"card_id", card.ID,
			"error", err.Error())
		return nil, handleError(err)
	}
	return cardToProto(v), nil
}

func (h *Card) viewAll(cards []model.Card) (*proto.ListCardsResponse, error) {
	out := make([]*proto.Card, 0, len(cards))
	for _, c := range cards {
		v, err := h.view(c)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return &proto.ListCardsResponse{Cards: out}, nil
}
