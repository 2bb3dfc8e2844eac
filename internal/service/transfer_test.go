package service

import (
	"bytes"
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/bankcards-server/internal/apierrors"
	"github.com/dtroode/bankcards-server/internal/mocks"
	"github.com/dtroode/bankcards-server/internal/model"
	"github.com/dtroode/bankcards-server/internal/testutil"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestTransfer_ScenarioA_Success(t *testing.T) {
	store := newMemStore()
	owner := store.addUser("user1", model.RoleUser)
	from := store.addCard(owner.ID, model.CardStatusActive, "100.00")
	to := store.addCard(owner.ID, model.CardStatusActive, "50.00")

	svc := NewTransfer(store, testutil.MakeNoopLogger())
	err := svc.Transfer(context.Background(), owner.ID, model.TransferParams{
		FromCardID: from.ID, ToCardID: to.ID, Amount: dec("40.00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "60.00", store.balance(from.ID).StringFixed(2))
	assert.Equal(t, "90.00", store.balance(to.ID).StringFixed(2))
}

func TestTransfer_Failures(t *testing.T) {
	type fixture struct {
		store *memStore
		user  model.User
		from  model.Card
		to    model.Card
	}
	setup := func(fromStatus, toStatus model.CardStatus, fromBalance string) fixture {
		store := newMemStore()
		user := store.addUser("user1", model.RoleUser)
		return fixture{
			store: store,
			user:  user,
			from:  store.addCard(user.ID, fromStatus, fromBalance),
			to:    store.addCard(user.ID, toStatus, "10.00"),
		}
	}

	tests := []struct {
		name     string
		fx       fixture
		params   func(fixture) (uuid.UUID, model.TransferParams)
		wantKind apierrors.Kind
		wantMsg  string
	}{
		{
			name: "scenario B insufficient balance",
			fx:   setup(model.CardStatusActive, model.CardStatusActive, "50.00"),
			params: func(f fixture) (uuid.UUID, model.TransferParams) {
				return f.user.ID, model.TransferParams{FromCardID: f.from.ID, ToCardID: f.to.ID, Amount: dec("100.00")}
			},
			wantKind: apierrors.KindInvalidOperation,
			wantMsg:  ReasonInsufficientBalance,
		},
		{
			name: "scenario C same card regardless of balance",
			fx:   setup(model.CardStatusActive, model.CardStatusActive, "0.00"),
			params: func(f fixture) (uuid.UUID, model.TransferParams) {
				return f.user.ID, model.TransferParams{FromCardID: f.from.ID, ToCardID: f.from.ID, Amount: dec("1000.00")}
			},
			wantKind: apierrors.KindInvalidOperation,
			wantMsg:  ReasonSameCard,
		},
		{
			name: "unknown user",
			fx:   setup(model.CardStatusActive, model.CardStatusActive, "50.00"),
			params: func(f fixture) (uuid.UUID, model.TransferParams) {
				return uuid.New(), model.TransferParams{FromCardID: f.from.ID, ToCardID: f.to.ID, Amount: dec("1")}
			},
			wantKind: apierrors.KindNotFound,
		},
		{
			name: "missing source card",
			fx:   setup(model.CardStatusActive, model.CardStatusActive, "50.00"),
			params: func(f fixture) (uuid.UUID, model.TransferParams) {
				return f.user.ID, model.TransferParams{FromCardID: uuid.New(), ToCardID: f.to.ID, Amount: dec("1")}
			},
			wantKind: apierrors.KindOwnershipViolation,
		},
		{
			name: "missing destination card",
			fx:   setup(model.CardStatusActive, model.CardStatusActive, "50.00"),
			params: func(f fixture) (uuid.UUID, model.TransferParams) {
				return f.user.ID, model.TransferParams{FromCardID: f.from.ID, ToCardID: uuid.New(), Amount: dec("1")}
			},
			wantKind: apierrors.KindOwnershipViolation,
		},
		{
			name: "source not active",
			fx:   setup(model.CardStatusBlocked, model.CardStatusActive, "50.00"),
			params: func(f fixture) (uuid.UUID, model.TransferParams) {
				return f.user.ID, model.TransferParams{FromCardID: f.from.ID, ToCardID: f.to.ID, Amount: dec("1")}
			},
			wantKind: apierrors.KindInvalidOperation,
			wantMsg:  ReasonSourceNotActive,
		},
		{
			name: "destination not active",
			fx:   setup(model.CardStatusActive, model.CardStatusExpired, "50.00"),
			params: func(f fixture) (uuid.UUID, model.TransferParams) {
				return f.user.ID, model.TransferParams{FromCardID: f.from.ID, ToCardID: f.to.ID, Amount: dec("1")}
			},
			wantKind: apierrors.KindInvalidOperation,
			wantMsg:  ReasonDestinationNotActive,
		},
		{
			name: "zero amount",
			fx:   setup(model.CardStatusActive, model.CardStatusActive, "50.00"),
			params: func(f fixture) (uuid.UUID, model.TransferParams) {
				return f.user.ID, model.TransferParams{FromCardID: f.from.ID, ToCardID: f.to.ID, Amount: dec("0")}
			},
			wantKind: apierrors.KindInvalidOperation,
			wantMsg:  ReasonNonPositiveAmount,
		},
		{
			name: "negative amount",
			fx:   setup(model.CardStatusActive, model.CardStatusActive, "50.00"),
			params: func(f fixture) (uuid.UUID, model.TransferParams) {
				return f.user.ID, model.TransferParams{FromCardID: f.from.ID, ToCardID: f.to.ID, Amount: dec("-5.00")}
			},
			wantKind: apierrors.KindInvalidOperation,
			wantMsg:  ReasonNonPositiveAmount,
		},
		{
			name: "amount rounding to zero",
			fx:   setup(model.CardStatusActive, model.CardStatusActive, "50.00"),
			params: func(f fixture) (uuid.UUID, model.TransferParams) {
				return f.user.ID, model.TransferParams{FromCardID: f.from.ID, ToCardID: f.to.ID, Amount: dec("0.004")}
			},
			wantKind: apierrors.KindInvalidOperation,
			wantMsg:  ReasonNonPositiveAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromBefore := tt.fx.store.balance(tt.fx.from.ID)
			toBefore := tt.fx.store.balance(tt.fx.to.ID)

			userID, params := tt.params(tt.fx)
			err := NewTransfer(tt.fx.store, testutil.MakeNoopLogger()).Transfer(context.Background(), userID, params)

			require.Error(t, err)
			assert.True(t, apierrors.IsKind(err, tt.wantKind), "got %v", err)
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
			assert.True(t, fromBefore.Equal(tt.fx.store.balance(tt.fx.from.ID)))
			assert.True(t, toBefore.Equal(tt.fx.store.balance(tt.fx.to.ID)))
		})
	}
}

func TestTransfer_OwnershipLeakPrevention(t *testing.T) {
	store := newMemStore()
	user := store.addUser("user1", model.RoleUser)
	other := store.addUser("user2", model.RoleUser)
	own := store.addCard(user.ID, model.CardStatusActive, "10.00")
	foreign := store.addCard(other.ID, model.CardStatusActive, "10.00")
	missing := uuid.New()

	svc := NewTransfer(store, testutil.MakeNoopLogger())

	errForeign := svc.Transfer(context.Background(), user.ID, model.TransferParams{FromCardID: foreign.ID, ToCardID: own.ID, Amount: dec("1")})
	errMissing := svc.Transfer(context.Background(), user.ID, model.TransferParams{FromCardID: missing, ToCardID: own.ID, Amount: dec("1")})

	assert.True(t, apierrors.IsKind(errForeign, apierrors.KindOwnershipViolation))
	assert.True(t, apierrors.IsKind(errMissing, apierrors.KindOwnershipViolation))
	assert.ErrorIs(t, errForeign, apierrors.NewErrCardNotOwnedByUser(foreign.ID, user.ID))
	assert.ErrorIs(t, errMissing, apierrors.NewErrCardNotOwnedByUser(missing, user.ID))

	errForeignTo := svc.Transfer(context.Background(), user.ID, model.TransferParams{FromCardID: own.ID, ToCardID: foreign.ID, Amount: dec("1")})
	assert.ErrorIs(t, errForeignTo, apierrors.NewErrCardNotOwnedByUser(foreign.ID, user.ID))
}

func TestTransfer_CheckOrder(t *testing.T) {
	store := newMemStore()
	user := store.addUser("user1", model.RoleUser)
	other := store.addUser("user2", model.RoleUser)
	blocked := store.addCard(user.ID, model.CardStatusBlocked, "0.00")
	foreign := store.addCard(other.ID, model.CardStatusActive, "10.00")

	svc := NewTransfer(store, testutil.MakeNoopLogger())

	// Ownership is checked before status.
	err := svc.Transfer(context.Background(), user.ID, model.TransferParams{FromCardID: blocked.ID, ToCardID: foreign.ID, Amount: dec("1")})
	assert.True(t, apierrors.IsKind(err, apierrors.KindOwnershipViolation))

	// Status is checked before same-card.
	err = svc.Transfer(context.Background(), user.ID, model.TransferParams{FromCardID: blocked.ID, ToCardID: blocked.ID, Amount: dec("1")})
	assert.EqualError(t, err, ReasonSourceNotActive)

	// Balance is checked before amount sign.
	active := store.addCard(user.ID, model.CardStatusActive, "0.00")
	active2 := store.addCard(user.ID, model.CardStatusActive, "0.00")
	err = svc.Transfer(context.Background(), user.ID, model.TransferParams{FromCardID: active.ID, ToCardID: active2.ID, Amount: dec("5")})
	assert.EqualError(t, err, ReasonInsufficientBalance)
}

func TestTransfer_LocksInIDOrder(t *testing.T) {
	store := mocks.NewStore(t)
	userID := uuid.New()
	a, b := uuid.New(), uuid.New()
	if bytes.Compare(a[:], b[:]) > 0 {
		a, b = b, a
	}

	store.UserStore.On("Exists", mock.Anything, userID).Return(true, nil)
	first := store.CardStore.On("GetByIDForUpdate", mock.Anything, a).
		Return(model.Card{ID: a, OwnerID: userID, Status: model.CardStatusActive, Balance: dec("10.00")}, nil).Once()
	store.CardStore.On("GetByIDForUpdate", mock.Anything, b).
		Return(model.Card{ID: b, OwnerID: userID, Status: model.CardStatusActive, Balance: dec("1.00")}, nil).Once().
		NotBefore(first)
	store.CardStore.On("UpdateBalance", mock.Anything, b, mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("0.50")) })).Return(nil).Once()
	store.CardStore.On("UpdateBalance", mock.Anything, a, mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec("10.50")) })).Return(nil).Once()

	// Source has the higher id; it is still locked second.
	err := NewTransfer(store, testutil.MakeNoopLogger()).Transfer(context.Background(), userID, model.TransferParams{
		FromCardID: b, ToCardID: a, Amount: dec("0.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.TxCount)
}

func TestTransfer_SameCardLockedOnce(t *testing.T) {
	store := mocks.NewStore(t)
	userID := uuid.New()
	id := uuid.New()

	store.UserStore.On("Exists", mock.Anything, userID).Return(true, nil)
	store.CardStore.On("GetByIDForUpdate", mock.Anything, id).
		Return(model.Card{ID: id, OwnerID: userID, Status: model.CardStatusActive, Balance: dec("10.00")}, nil).Once()

	err := NewTransfer(store, testutil.MakeNoopLogger()).Transfer(context.Background(), userID, model.TransferParams{
		FromCardID: id, ToCardID: id, Amount: dec("1"),
	})
	assert.EqualError(t, err, ReasonSameCard)
}

func TestTransfer_StoreError(t *testing.T) {
	store := mocks.NewStore(t)
	userID := uuid.New()

	store.UserStore.On("Exists", mock.Anything, userID).Return(false, assert.AnError)

	err := NewTransfer(store, testutil.MakeNoopLogger()).Transfer(context.Background(), userID, model.TransferParams{
		FromCardID: uuid.New(), ToCardID: uuid.New(), Amount: dec("1"),
	})
	assert.ErrorIs(t, err, assert.AnError)
	_, isAPI := apierrors.KindOf(err)
	assert.False(t, isAPI)
}

func TestTransfer_ConservationAndNonNegativity(t *testing.T) {
	store := newMemStore()
	user := store.addUser("user1", model.RoleUser)
	var ids []uuid.UUID
	total := decimal.Zero
	for _, b := range []string{"100.00", "0.00", "25.55", "7.01"} {
		c := store.addCard(user.ID, model.CardStatusActive, b)
		ids = append(ids, c.ID)
		total = total.Add(c.Balance)
	}

	svc := NewTransfer(store, testutil.MakeNoopLogger())
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 500; i++ {
		from := ids[rng.Intn(len(ids))]
		to := ids[rng.Intn(len(ids))]
		amount := decimal.New(rng.Int63n(6000)-500, -2)

		fromBefore, toBefore := store.balance(from), store.balance(to)
		err := svc.Transfer(context.Background(), user.ID, model.TransferParams{FromCardID: from, ToCardID: to, Amount: amount})
		if err == nil {
			assert.True(t, store.balance(from).Equal(fromBefore.Sub(amount)))
			assert.True(t, store.balance(from).Add(store.balance(to)).Equal(fromBefore.Add(toBefore)))
		}

		sum := decimal.Zero
		for _, id := range ids {
			require.False(t, store.balance(id).IsNegative())
			sum = sum.Add(store.balance(id))
		}
		require.True(t, total.Equal(sum), "total drifted to %s", sum)
	}
}

func TestTransfer_ConcurrentOppositeDirections(t *testing.T) {
	store := newMemStore()
	user := store.addUser("user1", model.RoleUser)
	a := store.addCard(user.ID, model.CardStatusActive, "50.00")
	b := store.addCard(user.ID, model.CardStatusActive, "50.00")
	svc := NewTransfer(store, testutil.MakeNoopLogger())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = svc.Transfer(context.Background(), user.ID, model.TransferParams{FromCardID: a.ID, ToCardID: b.ID, Amount: dec("3.00")})
		}()
		go func() {
			defer wg.Done()
			_ = svc.Transfer(context.Background(), user.ID, model.TransferParams{FromCardID: b.ID, ToCardID: a.ID, Amount: dec("2.00")})
		}()
	}
	wg.Wait()

	assert.True(t, store.balance(a.ID).Add(store.balance(b.ID)).Equal(dec("100.00")))
	assert.False(t, store.balance(a.ID).IsNegative())
	assert.False(t, store.balance(b.ID).IsNegative())
}
