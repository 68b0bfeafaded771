package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/catalog/mocks"
	"warehouse-counter/core/domainerr"
	"warehouse-counter/core/reconcile"
	"warehouse-counter/core/scanner"
	"warehouse-counter/core/session"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestParseAmount(t *testing.T) {
	dir, amount, err := parseAmount("3")
	require.NoError(t, err)
	assert.Equal(t, reconcile.Decrement, dir)
	assert.True(t, amount.Equal(decimal.NewFromInt(3)))

	dir, amount, err = parseAmount("UNDO 1,5")
	require.NoError(t, err)
	assert.Equal(t, reconcile.Increment, dir)
	assert.Equal(t, "1.5", amount.String())

	_, _, err = parseAmount("tres")
	assert.True(t, domainerr.Is(err, domainerr.KindInvalidAmount))

	_, _, err = parseAmount("3 4")
	assert.True(t, domainerr.Is(err, domainerr.KindInvalidInput))
}

func TestCountLoop(t *testing.T) {
	cat := catalog.New()
	cat.Replace(catalog.Snapshot{
		"p-1": {ID: "p-1", Code: "ABC123", Name: "CAJA", TotalQuantity: decimal.NewFromInt(10), CountedQuantity: decimal.NewFromInt(4)},
	})
	store := new(mocks.Store)
	store.On("Update", mock.Anything, "p-1", mock.Anything).Return(nil).Once()
	sess := session.New(cat, store, reconcile.New(), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	keys := make(chan scanner.Key)
	events := make(chan scanner.Event)
	go scanner.Run(ctx, scanner.DefaultConfig(), keys, events)

	in := strings.NewReader("abc123\n8\n3\nzzz999\n\nabc123\n\n")
	var out bytes.Buffer
	require.NoError(t, countLoop(ctx, in, &out, sess, keys, events))

	text := out.String()
	assert.Contains(t, text, "ABC123 CAJA: counted 4 of 10, 6 remaining")
	assert.Contains(t, text, "EXCEEDS_AVAILABLE")
	assert.Contains(t, text, "ABC123 CAJA: counted 7 of 10 (PARTIAL)")
	assert.Contains(t, text, "ZZZ999: not found")
	assert.Contains(t, text, "Cancelled.")
	assert.Equal(t, session.StateIdle, sess.State())

	p, _ := cat.Get("p-1")
	assert.True(t, p.CountedQuantity.Equal(decimal.NewFromInt(7)))
	store.AssertExpectations(t)
}
