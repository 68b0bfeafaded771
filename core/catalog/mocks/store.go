package mocks

import (
	"context"

	"warehouse-counter/core/catalog"

	"github.com/stretchr/testify/mock"
)

// Store is a mock implementation of catalog.Store
type Store struct {
	mock.Mock
}

func (m *Store) Snapshot(ctx context.Context) (catalog.Snapshot, error) {
	args := m.Called(ctx)
	if snap, ok := args.Get(0).(catalog.Snapshot); ok {
		return snap, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Subscribe(ctx context.Context) (<-chan catalog.Snapshot, error) {
	args := m.Called(ctx)
	if ch, ok := args.Get(0).(<-chan catalog.Snapshot); ok {
		return ch, args.Error(1)
	}
	if ch, ok := args.Get(0).(chan catalog.Snapshot); ok {
		return ch, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) Create(ctx context.Context, p catalog.Product) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *Store) Update(ctx context.Context, id string, patch catalog.Patch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *Store) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
