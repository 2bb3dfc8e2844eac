package service

import (
	"bytes"
	"context"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dtroode/bankcards-server/internal/model"
)

// memStore is an in-memory model.Store. WithTx serializes transactions and
// restores the previous state when fn fails.
type memStore struct {
	mu    sync.Mutex
	cards map[uuid.UUID]model.Card
	users map[uuid.UUID]model.User
}

func newMemStore() *memStore {
	return &memStore{
		cards: make(map[uuid.UUID]model.Card),
		users: make(map[uuid.UUID]model.User),
	}
}

func (s *memStore) Cards() model.CardStore { return memCards{s} }
func (s *memStore) Users() model.UserStore { return memUsers{s} }

func (s *memStore) WithTx(_ context.Context, fn func(tx model.Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cards := make(map[uuid.UUID]model.Card, len(s.cards))
	for k, v := range s.cards {
		cards[k] = v
	}
	users := make(map[uuid.UUID]model.User, len(s.users))
	for k, v := range s.users {
		users[k] = v
	}

	if err := fn(&memTx{s}); err != nil {
		s.cards, s.users = cards, users
		return err
	}
	return nil
}

func (s *memStore) Ping(context.Context) error { return nil }

// memTx is the store seen inside WithTx. The lock is already held.
type memTx struct{ s *memStore }

func (t *memTx) Cards() model.CardStore { return memCards{t.s} }
func (t *memTx) Users() model.UserStore { return memUsers{t.s} }
func (t *memTx) WithTx(context.Context, func(model.Store) error) error {
	return model.ErrNestedTx
}
func (t *memTx) Ping(context.Context) error { return nil }

func (s *memStore) addUser(username string, roles ...model.Role) model.User {
	u := model.User{ID: uuid.New(), Username: username, Roles: roles}
	s.users[u.ID] = u
	return u
}

func (s *memStore) addCard(owner uuid.UUID, status model.CardStatus, balance string) model.Card {
	c := model.Card{
		ID:      uuid.New(),
		OwnerID: owner,
		Status:  status,
		Balance: decimal.RequireFromString(balance),
	}
	s.cards[c.ID] = c
	return c
}

func (s *memStore) balance(id uuid.UUID) decimal.Decimal {
	return s.cards[id].Balance
}

type memCards struct{ s *memStore }

func (m memCards) Create(_ context.Context, card model.Card) (model.Card, error) {
	m.s.cards[card.ID] = card
	return card, nil
}

func (m memCards) GetByID(_ context.Context, id uuid.UUID) (model.Card, error) {
	c, ok := m.s.cards[id]
	if !ok {
		return model.Card{}, model.ErrNotFound
	}
	return c, nil
}

func (m memCards) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (model.Card, error) {
	return m.GetByID(ctx, id)
}

func (m memCards) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.s.cards[id]
	return ok, nil
}

func (m memCards) Count(context.Context) (int, error) { return len(m.s.cards), nil }

func (m memCards) List(_ context.Context, filter model.CardFilter, page model.Page) ([]model.Card, error) {
	var out []model.Card
	for _, c := range m.s.cards {
		if filter.Status != nil && c.Status != *filter.Status {
			continue
		}
		if filter.ExpiryDate != nil && !c.ExpiryDate.Equal(*filter.ExpiryDate) {
			continue
		}
		out = append(out, c)
	}
	return paginate(out, page), nil
}

func (m memCards) ListByOwner(_ context.Context, ownerID uuid.UUID, page model.Page) ([]model.Card, error) {
	var out []model.Card
	for _, c := range m.s.cards {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	return paginate(out, page), nil
}

func paginate(cards []model.Card, page model.Page) []model.Card {
	slices.SortFunc(cards, func(a, b model.Card) int {
		if page.Ascending {
			return bytes.Compare(a.ID[:], b.ID[:])
		}
		return bytes.Compare(b.ID[:], a.ID[:])
	})
	if page.Offset >= len(cards) {
		return nil
	}
	end := min(page.Offset+page.Limit, len(cards))
	return cards[page.Offset:end]
}

func (m memCards) UpdateStatus(_ context.Context, id uuid.UUID, status model.CardStatus) error {
	c, ok := m.s.cards[id]
	if !ok {
		return model.ErrNotFound
	}
	c.Status = status
	m.s.cards[id] = c
	return nil
}

func (m memCards) UpdateBalance(_ context.Context, id uuid.UUID, balance decimal.Decimal) error {
	c, ok := m.s.cards[id]
	if !ok {
		return model.ErrNotFound
	}
	if balance.IsNegative() {
		panic("negative balance written for card " + id.String())
	}
	c.Balance = balance
	m.s.cards[id] = c
	return nil
}

func (m memCards) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.s.cards[id]; !ok {
		return model.ErrNotFound
	}
	delete(m.s.cards, id)
	return nil
}

func (m memCards) DeleteByOwner(_ context.Context, ownerID uuid.UUID) error {
	for id, c := range m.s.cards {
		if c.OwnerID == ownerID {
			delete(m.s.cards, id)
		}
	}
	return nil
}

func (m memCards) SumBalanceByOwner(_ context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, c := range m.s.cards {
		if c.OwnerID == ownerID {
			total = total.Add(c.Balance)
		}
	}
	return total, nil
}

type memUsers struct{ s *memStore }

func (m memUsers) Create(_ context.Context, user model.User) (model.User, error) {
	for _, u := range m.s.users {
		if u.Username == user.Username {
			return model.User{}, model.ErrAlreadyExists
		}
	}
	m.s.users[user.ID] = user
	return user, nil
}

func (m memUsers) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	u, ok := m.s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (m memUsers) GetByUsername(_ context.Context, username string) (model.User, error) {
	for _, u := range m.s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (m memUsers) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := m.s.users[id]
	return ok, nil
}

func (m memUsers) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := m.GetByUsername(ctx, username)
	return err == nil, nil
}


func (m memUsers) List(_ context.Context, page model.Page) ([]model.User, error) {
	var out []model.User
	for _, u := range m.s.users {
		out = append(out, u)
	}
	slices.SortFunc(out, func(a, b model.User) int { return bytes.Compare(a.ID[:], b.ID[:]) })
	if page.Offset >= len(out) {
		return nil, nil
	}
	return out[page.Offset:min(page.Offset+page.Limit, len(out))], nil
}

func (m memUsers) UpdateUsername(_ context.Context, id uuid.UUID, username string) error {
	u, ok := m.s.users[id]
	if !ok {
		return model.ErrNotFound
	}
	u.Username = username
	m.s.users[id] = u
	return nil
}

func (m memUsers) UpdatePasswordHash(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := m.s.users[id]
	if !ok {
		return model.ErrNotFound
	}
	u.PasswordHash = hash
	m.s.users[id] = u
	return nil
}

func (m memUsers) SetRoles(_ context.Context, id uuid.UUID, roles []model.Role) error {
	u, ok := m.s.users[id]
	if !ok {
		return model.ErrNotFound
	}
	u.Roles = roles
	m.s.users[id] = u
	return nil
}

func (m memUsers) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := m.s.users[id]; !ok {
		return model.ErrNotFound
	}
	for _, c := range m.s.cards {
		if c.OwnerID == id {
			panic("user deleted while owning cards")
		}
	}
	delete(m.s.users, id)
	return nil
}
