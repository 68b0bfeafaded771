package restock

import (
	"context"
	"errors"
	"strings"
	"testing"

	"warehouse-counter/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReadLineItems(t *testing.T) {
	t.Run("Array", func(t *testing.T) {
		items, err := ReadLineItems(strings.NewReader(`[{"name":"laptop dell","quantity":2}]`))
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "laptop dell", items[0].Name)
		assert.True(t, items[0].Quantity.Equal(qty(2)))
	})

	t.Run("Wrapped", func(t *testing.T) {
		items, err := ReadLineItems(strings.NewReader(`{"items":[{"name":"silla","code":"AF.MO","quantity":"1.5"}]}`))
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "AF.MO", items[0].Code)
		assert.Equal(t, "1.5", items[0].Quantity.String())
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := ReadLineItems(strings.NewReader(`not json`))
		assert.ErrorContains(t, err, "invalid line items")
	})
}

func TestBucketSource(t *testing.T) {
	ctx := context.Background()

	t.Run("Prefixed Object", func(t *testing.T) {
		client := new(mocks.Client)
		body := mocks.Body(`[{"name":"laptop dell","quantity":2}]`)
		client.On("GetObject", ctx, "warehouse", "invoices/f-001.json", mock.Anything).Return(body, nil)

		src := NewBucketSource(client, "warehouse", "invoices", "f-001.json")
		assert.Equal(t, "invoices/f-001.json", src.Object())

		items, err := src.LineItems(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})

	t.Run("Full Key", func(t *testing.T) {
		src := NewBucketSource(new(mocks.Client), "warehouse", "invoices", "2025/03/f-002.json")
		assert.Equal(t, "2025/03/f-002.json", src.Object())
	})

	t.Run("Missing Object", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", ctx, "warehouse", "invoices/none.json", mock.Anything).Return(nil, errors.New("NoSuchKey"))

		_, err := NewBucketSource(client, "warehouse", "invoices", "none.json").LineItems(ctx)
		assert.ErrorContains(t, err, "failed to get invoices/none.json")
	})
}
