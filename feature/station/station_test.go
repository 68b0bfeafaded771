package station

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

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

var base = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

type harness struct {
	station *Station
	session *session.Session
	store   *mocks.Store
	catalog *catalog.Catalog
	replies chan Reply
	cancel  context.CancelFunc
}

func setupStation(t *testing.T) *harness {
	t.Helper()
	cat := catalog.New()
	cat.Replace(catalog.Snapshot{
		"p-1": {ID: "p-1", Code: "ABC123", Name: "CAJA", TotalQuantity: decimal.NewFromInt(10), CountedQuantity: decimal.NewFromInt(4)},
	})
	store := new(mocks.Store)
	sess := session.New(cat, store, reconcile.New(), zap.NewNop())

	replies := make(chan Reply, 16)
	st := New("st-1", sess, scanner.DefaultConfig(), func(r Reply) error {
		replies <- r
		return nil
	}, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	go st.Run(ctx)
	t.Cleanup(cancel)

	return &harness{station: st, session: sess, store: store, catalog: cat, replies: replies, cancel: cancel}
}

func (h *harness) send(t *testing.T, msg Message) {
	t.Helper()
	raw, err := json.Marshal(msg)
	require.NoError(t, err)
	h.station.Handle(context.Background(), raw)
}

func (h *harness) typeCode(t *testing.T, code string, enter bool) {
	t.Helper()
	at := base
	for _, r := range code {
		k := at
		h.send(t, Message{Type: MessageKey, Key: string(r), At: &k})
		at = at.Add(10 * time.Millisecond)
	}
	if enter {
		h.send(t, Message{Key: scanner.KeyEnter, At: &at})
	}
}

func (h *harness) next(t *testing.T) Reply {
	t.Helper()
	select {
	case r := <-h.replies:
		return r
	case <-time.After(2 * time.Second):
		t.Fatal("no reply")
		return Reply{}
	}
}

func TestStation_ScanAndConfirm(t *testing.T) {
	h := setupStation(t)
	h.store.On("Update", mock.Anything, "p-1", mock.Anything).Return(nil).Once()

	h.typeCode(t, "abc123", true)

	r := h.next(t)
	assert.Equal(t, ReplyScan, r.Type)
	assert.Equal(t, "st-1", r.Station)
	require.NotNil(t, r.Scan)
	assert.Equal(t, session.ScanAwaiting, r.Scan.Status)
	assert.Equal(t, "ABC123", r.Scan.Code)
	assert.Equal(t, session.StateAwaiting, r.State)

	h.send(t, Message{Type: MessageConfirm, Direction: "DECREMENT", Amount: decimal.NewFromInt(3)})

	r = h.next(t)
	assert.Equal(t, ReplyConfirmed, r.Type)
	require.NotNil(t, r.Product)
	assert.True(t, r.Product.CountedQuantity.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, catalog.StatePartial, r.Product.State())
	assert.Equal(t, session.StateIdle, r.State)
	h.store.AssertExpectations(t)
}

func TestStation_KeysDroppedWhileConfirming(t *testing.T) {
	h := setupStation(t)

	h.send(t, Message{Type: MessageScan, Code: "abc123"})
	r := h.next(t)
	require.Equal(t, session.StateAwaiting, r.State)

	h.typeCode(t, "XYZ999", true)

	select {
	case r := <-h.replies:
		t.Fatalf("unexpected reply %+v", r)
	case <-time.After(300 * time.Millisecond):
	}
	assert.Equal(t, session.StateAwaiting, h.session.State())
}

func TestStation_NotFoundThenCancel(t *testing.T) {
	h := setupStation(t)

	h.send(t, Message{Type: MessageScan, Code: "nope"})
	r := h.next(t)
	assert.Equal(t, ReplyScan, r.Type)
	assert.Equal(t, session.ScanNotFound, r.Scan.Status)
	assert.Equal(t, domainerr.KindScanNotFound, r.Code)
	assert.Equal(t, session.StateNotFound, r.State)

	h.send(t, Message{Type: MessageCancel})
	r = h.next(t)
	assert.Equal(t, ReplyState, r.Type)
	assert.Equal(t, session.StateIdle, r.State)
}

func TestStation_ValidationKeepsConfirmationOpen(t *testing.T) {
	h := setupStation(t)

	h.send(t, Message{Type: MessageScan, Code: "ABC123"})
	h.next(t)

	h.send(t, Message{Type: MessageConfirm, Direction: "DECREMENT", Amount: decimal.NewFromInt(7)})
	r := h.next(t)
	assert.Equal(t, ReplyError, r.Type)
	assert.Equal(t, domainerr.KindExceedsAvailable, r.Code)
	assert.Equal(t, session.StateAwaiting, r.State)
	require.NotNil(t, r.Product)
	assert.True(t, r.Product.CountedQuantity.Equal(decimal.NewFromInt(4)))

	h.store.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestStation_Errors(t *testing.T) {
	h := setupStation(t)

	tests := []struct {
		raw  string
		code domainerr.Kind
		msg  string
	}{
		{raw: `{"type":`, msg: "Invalid message format"},
		{raw: `{"type":"dance"}`, msg: "Unknown message type: dance"},
		{raw: `{"type":"scan"}`, msg: "code is required"},
		{raw: `{"type":"confirm","direction":"UP","amount":"1"}`, code: domainerr.KindInvalidInput},
		{raw: `{"type":"confirm","direction":"DECREMENT","amount":"1"}`, code: domainerr.KindInvalidState},
	}

	for i, tt := range tests {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			h.station.Handle(context.Background(), []byte(tt.raw))
			r := h.next(t)
			assert.Equal(t, ReplyError, r.Type)
			if tt.msg != "" {
				assert.Equal(t, tt.msg, r.Error)
			}
			assert.Equal(t, tt.code, r.Code)
		})
	}
}

func TestStation_Ready(t *testing.T) {
	h := setupStation(t)

	h.station.Ready()
	r := h.next(t)
	assert.Equal(t, ReplyReady, r.Type)
	assert.Equal(t, session.StateIdle, r.State)
}

func TestStation_RunStopsOnCancel(t *testing.T) {
	cat := catalog.New()
	sess := session.New(cat, new(mocks.Store), reconcile.New(), zap.NewNop())
	st := New("st-2", sess, scanner.DefaultConfig(), func(Reply) error { return nil }, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- st.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("station did not stop")
	}
}
