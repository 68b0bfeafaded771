package restock

import (
	"context"
	"errors"
	"testing"
	"time"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/catalog/mocks"
	"warehouse-counter/core/matcher"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func qty(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func setupPlanner(t *testing.T) (*Planner, *catalog.Catalog, *mocks.Store) {
	t.Helper()
	cat := catalog.New()
	cat.Replace(catalog.Snapshot{
		"p-1": {ID: "p-1", Code: "AF.EC.JP.LAP.001", Name: "LAPTOP DELL XPS", TotalQuantity: qty(5)},
		"p-2": {ID: "p-2", Code: "AF.MO.CE.SIL.001", Name: "SILLA ERGONOMICA", Alias: "7501234567890", TotalQuantity: qty(3), CountedQuantity: qty(1)},
	})
	store := new(mocks.Store)
	return NewPlanner(cat, store, Config{}, zap.NewNop()), cat, store
}

func TestPlan(t *testing.T) {
	p, _, _ := setupPlanner(t)

	plan := p.Plan([]LineItem{
		{Name: "laptop dell", Quantity: qty(2)},
		{Name: "Silla", Code: "AF.MO.CE.SIL.001", Quantity: qty(4)},
		{Name: "laptop dell xps 13", Quantity: qty(1)},
		{Name: "impresora", Quantity: qty(1)},
		{Name: "silla ergonomica", Quantity: decimal.Zero},
	})

	require.Len(t, plan.Actions, 3)
	assert.Equal(t, "p-1", plan.Actions[0].ProductID)
	assert.Equal(t, matcher.PartialName, plan.Actions[0].Match)
	assert.True(t, plan.Actions[0].Before.Equal(qty(5)))
	assert.True(t, plan.Actions[0].After.Equal(qty(7)))

	assert.Equal(t, matcher.ExactCode, plan.Actions[1].Match)

	// Second item on the same product builds on the first.
	assert.True(t, plan.Actions[2].Before.Equal(qty(7)))
	assert.True(t, plan.Actions[2].After.Equal(qty(8)))

	require.Len(t, plan.Unresolved, 2)
	assert.Equal(t, "no matching product", plan.Unresolved[0].Reason)
	assert.Equal(t, "quantity must be positive", plan.Unresolved[1].Reason)

	assert.Equal(t, 5, plan.Summary.Items)
	assert.Equal(t, 3, plan.Summary.Matched)
	assert.Equal(t, 2, plan.Summary.Products)
	assert.True(t, plan.Summary.Quantity.Equal(qty(7)))
	assert.Equal(t, 2, plan.Summary.ByKind[string(matcher.PartialName)])
}

func TestApply_LaptopDellEndToEnd(t *testing.T) {
	p, cat, store := setupPlanner(t)
	ctx := context.Background()
	store.On("Update", ctx, "p-1", mock.MatchedBy(func(patch catalog.Patch) bool {
		return patch[catalog.FieldTotalQuantity].(decimal.Decimal).Equal(qty(7))
	})).Return(nil).Once()

	plan, res, err := p.PlanAndApply(ctx, StaticSource{{Name: "laptop dell", Quantity: qty(2)}}, Options{Confirmed: true})
	require.NoError(t, err)
	require.Len(t, plan.Actions, 1)
	assert.True(t, res.Executed)
	require.Len(t, res.Applied, 1)
	assert.Empty(t, res.Failed)

	got, _ := cat.Get("p-1")
	assert.True(t, got.TotalQuantity.Equal(qty(7)))
	store.AssertExpectations(t)
}

func TestApply_RequiresConfirmation(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"Not Confirmed", Options{}},
		{"Dry Run", Options{Confirmed: true, DryRun: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, cat, store := setupPlanner(t)
			plan := p.Plan([]LineItem{{Name: "laptop dell", Quantity: qty(2)}})

			res, err := p.Apply(context.Background(), plan, tt.opts)
			require.NoError(t, err)
			assert.False(t, res.Executed)
			assert.Empty(t, res.Applied)

			got, _ := cat.Get("p-1")
			assert.True(t, got.TotalQuantity.Equal(qty(5)))
			store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestApply_FailuresDoNotAbortBatch(t *testing.T) {
	p, cat, store := setupPlanner(t)
	ctx := context.Background()
	store.On("Update", ctx, "p-1", mock.Anything).Return(errors.New("deadlock")).Once()
	store.On("Update", ctx, "p-2", mock.Anything).Return(nil).Once()

	plan := p.Plan([]LineItem{
		{Name: "laptop dell", Quantity: qty(2)},
		{Name: "silla ergonomica", Quantity: qty(1)},
	})
	res, err := p.Apply(ctx, plan, Options{Confirmed: true})
	require.NoError(t, err)

	require.Len(t, res.Failed, 1)
	assert.Contains(t, res.Failed[0].Error, "deadlock")
	require.Len(t, res.Applied, 1)
	assert.Equal(t, "p-2", res.Applied[0].ProductID)

	laptop, _ := cat.Get("p-1")
	assert.True(t, laptop.TotalQuantity.Equal(qty(5)))
	silla, _ := cat.Get("p-2")
	assert.True(t, silla.TotalQuantity.Equal(qty(4)))
}

func TestApply_UsesCurrentTotals(t *testing.T) {
	p, cat, store := setupPlanner(t)
	ctx := context.Background()
	store.On("Update", ctx, "p-1", mock.Anything).Return(nil).Once()

	plan := p.Plan([]LineItem{{Name: "laptop dell", Quantity: qty(2)}})

	edited, _ := cat.Get("p-1")
	edited.TotalQuantity = qty(20)
	cat.Upsert(edited)

	res, err := p.Apply(ctx, plan, Options{Confirmed: true})
	require.NoError(t, err)
	require.Len(t, res.Applied, 1)
	assert.True(t, res.Applied[0].After.Equal(qty(22)))
}

func TestApply_ProductRemoved(t *testing.T) {
	p, cat, _ := setupPlanner(t)
	plan := p.Plan([]LineItem{{Name: "laptop dell", Quantity: qty(2)}})
	cat.Remove("p-1")

	res, err := p.Apply(context.Background(), plan, Options{Confirmed: true})
	require.NoError(t, err)
	require.Len(t, res.Failed, 1)
	assert.Equal(t, "product no longer exists", res.Failed[0].Error)
}

func TestApply_Cancelled(t *testing.T) {
	p, _, _ := setupPlanner(t)
	plan := p.Plan([]LineItem{{Name: "laptop dell", Quantity: qty(2)}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Apply(ctx, plan, Options{Confirmed: true})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApply_WaitsForHeldProduct(t *testing.T) {
	p, cat, store := setupPlanner(t)
	ctx := context.Background()
	plan := p.Plan([]LineItem{{Name: "laptop dell", Quantity: qty(2)}})
	store.On("Update", mock.Anything, "p-1", mock.MatchedBy(func(patch catalog.Patch) bool {
		return patch[catalog.FieldTotalQuantity].(decimal.Decimal).Equal(qty(8))
	})).Return(nil).Once()

	release, err := cat.Hold(ctx, "p-1")
	require.NoError(t, err)

	done := make(chan Result, 1)
	go func() {
		res, _ := p.Apply(ctx, plan, Options{Confirmed: true})
		done <- res
	}()

	select {
	case <-done:
		t.Fatal("restock wrote a product held by another writer")
	case <-time.After(50 * time.Millisecond):
	}

	// The holder's write lands before the restock reads the product.
	edited, _ := cat.Get("p-1")
	edited.TotalQuantity = qty(6)
	cat.Upsert(edited)
	release()

	res := <-done
	require.Len(t, res.Applied, 1)
	assert.True(t, res.Applied[0].Before.Equal(qty(6)))
	assert.True(t, res.Applied[0].After.Equal(qty(8)))
	store.AssertExpectations(t)
}
