package handler

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dtroode/bankcards-server/api/proto"
	"github.com/dtroode/bankcards-server/internal/model"
)

// dateLayout is the wire form of card expiry dates.
const dateLayout = "2006-01-02"

var errEmpty = errors.New("value is required")

// principalFrom returns nil when the request carries no principal.
func principalFrom(ctx context.Context, cm model.ContextManager) *model.Principal {
	p, ok := cm.GetPrincipalFromContext(ctx)
	if !ok {
		return nil
	}
	return p
}

func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, invalidArgument(field, err)
	}
	return id, nil
}

// guardUserID parses the user id a rule is checked against. A malformed value
// cannot name the caller, so the rule is consulted with uuid.Nil first and a
// caller it denies never learns the value was malformed.
func guardUserID(p *model.Principal, field, value string, rule func(*model.Principal, uuid.UUID) error) (uuid.UUID, error) {
	id, parseErr := uuid.Parse(value)
	if parseErr != nil {
		if err := rule(p, uuid.Nil); err != nil {
			return uuid.Nil, handleError(err)
		}
		return uuid.Nil, invalidArgument(field, parseErr)
	}
	if err := rule(p, id); err != nil {
		return uuid.Nil, handleError(err)
	}
	return id, nil
}

func parseAmount(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Decimal{}, invalidArgument(field, errEmpty)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, invalidArgument(field, err)
	}
	return d, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, invalidArgument(field, err)
	}
	return t, nil
}

func pageRequest(page, size int32, ascending bool) model.PageRequest {
	return model.PageRequest{Page: int(page), Size: int(size), Ascending: ascending}
}

func cardToProto(v model.CardView) *proto.Card {
	return &proto.Card{
		Id:           v.ID.String(),
		MaskedNumber: v.MaskedNumber,
		OwnerId:      v.OwnerID.String(),
		ExpiryDate:   v.ExpiryDate.Format(dateLayout),
		Status:       string(v.Status),
		Balance:      v.Balance.StringFixed(model.MoneyScale),
	}
}

func userToProto(u model.User) *proto.User {
	roles := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		roles = append(roles, string(r))
	}
	return &proto.User{
		Id:        u.ID.String(),
		Username:  u.Username,
		Roles:     roles,
		CreatedAt: timestamppb.New(u.CreatedAt),
	}
}
