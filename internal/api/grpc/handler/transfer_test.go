package handler

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/dtroode/bankcards-server/api/proto"
	"github.com/dtroode/bankcards-server/internal/apierrors"
	"github.com/dtroode/bankcards-server/internal/mocks"
	"github.com/dtroode/bankcards-server/internal/model"
	"github.com/dtroode/bankcards-server/internal/testutil"
)

func TestTransfer_Transfer(t *testing.T) {
	t.Parallel()

	self := user()
	from, to := uuid.New(), uuid.New()

	svc := mocks.NewTransferService(t)
	svc.On("Transfer", mock.Anything, self.UserID, model.TransferParams{
		FromCardID: from,
		ToCardID:   to,
		Amount:     decimal.RequireFromString("10.50"),
	}).Return(nil)

	h := NewTransfer(svc, withPrincipal(t, self), testutil.MakeNoopLogger())
	_, err := h.Transfer(context.Background(), &proto.TransferRequest{
		UserId:     self.UserID.String(),
		FromCardId: from.String(),
		ToCardId:   to.String(),
		Amount:     "10.50",
	})
	require.NoError(t, err)
}

func TestTransfer_AdminCannotActForOthers(t *testing.T) {
	t.Parallel()

	h := NewTransfer(mocks.NewTransferService(t), withPrincipal(t, admin()), testutil.MakeNoopLogger())
	_, err := h.Transfer(context.Background(), &proto.TransferRequest{
		UserId:     uuid.NewString(),
		FromCardId: uuid.NewString(),
		ToCardId:   uuid.NewString(),
		Amount:     "1",
	})
	assertCode(t, err, codes.PermissionDenied)
}

func TestTransfer_MalformedUserID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		principal *model.Principal
		wantCode  codes.Code
	}{
		{name: "plain user", principal: user(), wantCode: codes.PermissionDenied},
		{name: "admin", principal: admin(), wantCode: codes.PermissionDenied},
		{name: "no principal", principal: nil, wantCode: codes.Unauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := NewTransfer(mocks.NewTransferService(t), withPrincipal(t, tt.principal), testutil.MakeNoopLogger())
			_, err := h.Transfer(context.Background(), &proto.TransferRequest{
				UserId:     "not-a-uuid",
				FromCardId: uuid.NewString(),
				ToCardId:   uuid.NewString(),
				Amount:     "1",
			})
			assertCode(t, err, tt.wantCode)
		})
	}
}

func TestTransfer_Errors(t *testing.T) {
	t.Parallel()

	self := user()

	tests := []struct {
		name     string
		req      proto.TransferRequest
		svcErr   error
		wantCode codes.Code
	}{
		{
			name:     "bad amount",
			req:      proto.TransferRequest{UserId: self.UserID.String(), FromCardId: uuid.NewString(), ToCardId: uuid.NewString(), Amount: "lots"},
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "missing amount",
			req:      proto.TransferRequest{UserId: self.UserID.String(), FromCardId: uuid.NewString(), ToCardId: uuid.NewString()},
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "bad card id",
			req:      proto.TransferRequest{UserId: self.UserID.String(), FromCardId: "x", ToCardId: uuid.NewString(), Amount: "1"},
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "insufficient balance",
			req:      proto.TransferRequest{UserId: self.UserID.String(), FromCardId: uuid.NewString(), ToCardId: uuid.NewString(), Amount: "1000"},
			svcErr:   apierrors.NewErrInvalidOperation("insufficient balance on source card"),
			wantCode: codes.InvalidArgument,
		},
		{
			name:     "foreign card",
			req:      proto.TransferRequest{UserId: self.UserID.String(), FromCardId: uuid.NewString(), ToCardId: uuid.NewString(), Amount: "1"},
			svcErr:   apierrors.NewErrCardNotOwnedByUser(uuid.New(), self.UserID),
			wantCode: codes.NotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewTransferService(t)
			if tt.svcErr != nil {
				svc.On("Transfer", mock.Anything, self.UserID, mock.Anything).Return(tt.svcErr)
			}

			h := NewTransfer(svc, withPrincipal(t, self), testutil.MakeNoopLogger())
			_, err := h.Transfer(context.Background(), &tt.req)
			assertCode(t, err, tt.wantCode)
		})
	}
}
