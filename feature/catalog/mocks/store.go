package mocks

import (
	"context"

	"vapor-store/feature/catalog/models"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of catalog.Store
type Store struct {
	mock.Mock
}

func (m *Store) AddGames(ctx context.Context, games []*models.Game) error {
	args := m.Called(ctx, games)
	return args.Error(0)
}

func (m *Store) AddUsers(ctx context.Context, users []*models.User) error {
	args := m.Called(ctx, users)
	return args.Error(0)
}

func (m *Store) AddPurchases(ctx context.Context, purchases []*models.Purchase) error {
	args := m.Called(ctx, purchases)
	return args.Error(0)
}

func (m *Store) FindCardByNumber(ctx context.Context, number string) (*models.Card, error) {
	args := m.Called(ctx, number)
	if card, ok := args.Get(0).(*models.Card); ok {
		return card, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) FindGameByName(ctx context.Context, name string) (*models.Game, error) {
	args := m.Called(ctx, name)
	if game, ok := args.Get(0).(*models.Game); ok {
		return game, args.Error(1)
	}
	return nil, args.Error(1)
}
