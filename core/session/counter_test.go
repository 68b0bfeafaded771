package session

import (
	"context"
	"errors"
	"testing"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/domainerr"
	"warehouse-counter/core/reconcile"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCounter_Count(t *testing.T) {
	s, _, store := newTestSession(t, abc123())
	ctx := context.Background()
	store.On("Update", ctx, "p-1", mock.Anything).Return(nil).Once()

	change, updated, err := s.Count(ctx, "p-1", reconcile.Increment, decimal.NewFromInt(4))
	require.NoError(t, err)
	assert.True(t, updated.CountedQuantity.IsZero())
	assert.Equal(t, catalog.StateNotCounted, updated.State())
	assert.Equal(t, reconcile.Increment, change.Direction)
}

func TestCounter_CountUnknownProduct(t *testing.T) {
	s, _, _ := newTestSession(t)

	_, _, err := s.Count(context.Background(), "missing", reconcile.Decrement, decimal.NewFromInt(1))
	assert.True(t, domainerr.Is(err, domainerr.KindNotFound))
}

func TestCounter_Reset(t *testing.T) {
	p := abc123()
	p.LastCountedAt = &fixedNow
	s, cat, store := newTestSession(t, p)
	ctx := context.Background()
	store.On("Update", ctx, "p-1", mock.MatchedBy(func(patch catalog.Patch) bool {
		return patch[catalog.FieldCountedQuantity].(decimal.Decimal).IsZero()
	})).Return(nil).Once()

	updated, err := s.Reset(ctx, "p-1")
	require.NoError(t, err)
	assert.Equal(t, catalog.StateNotCounted, updated.State())
	assert.Nil(t, updated.LastCountedAt)

	got, _ := cat.Get("p-1")
	assert.True(t, got.CountedQuantity.IsZero())
}

func TestCounter_ResetRollsBack(t *testing.T) {
	s, cat, store := newTestSession(t, abc123())
	ctx := context.Background()
	store.On("Update", ctx, "p-1", mock.Anything).Return(errors.New("timeout")).Once()

	_, err := s.Reset(ctx, "p-1")
	assert.True(t, domainerr.Is(err, domainerr.KindPersistenceFailure))

	got, _ := cat.Get("p-1")
	assert.True(t, got.CountedQuantity.Equal(decimal.NewFromInt(4)))
}

func TestPersist_KeepsNewerSnapshot(t *testing.T) {
	s, cat, store := newTestSession(t, abc123())
	ctx := context.Background()

	newer := abc123()
	newer.CountedQuantity = decimal.NewFromInt(9)
	store.On("Update", ctx, "p-1", mock.Anything).
		Run(func(mock.Arguments) { cat.Replace(catalog.Snapshot{"p-1": newer}) }).
		Return(errors.New("timeout")).Once()

	_, _, err := s.Count(ctx, "p-1", reconcile.Decrement, decimal.NewFromInt(1))
	assert.True(t, domainerr.Is(err, domainerr.KindPersistenceFailure))

	got, _ := cat.Get("p-1")
	assert.True(t, got.CountedQuantity.Equal(decimal.NewFromInt(9)))
}
