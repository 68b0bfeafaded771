package station

import (
	"time"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/domainerr"
	"warehouse-counter/core/reconcile"
	"warehouse-counter/core/session"

	"github.com/shopspring/decimal"
)

// Message types sent by a station.
const (
	MessageKey     = "key"
	MessageScan    = "scan"
	MessageConfirm = "confirm"
	MessageCancel  = "cancel"
)

// Reply types sent to a station.
const (
	ReplyReady     = "ready"
	ReplyScan      = "scan"
	ReplyConfirmed = "confirmed"
	ReplyState     = "state"
	ReplyError     = "error"
)

// Message is a client message. A message with a key and no type is a key.
type Message struct {
	Type string `json:"type"`
	// Key is a character or a key name such as "Enter".
	Key string `json:"key,omitempty"`
	// At is the client timestamp of the key. Server time is used when absent.
	At *time.Time `json:"at,omitempty"`
	// Code is an already decoded scan.
	Code      string          `json:"code,omitempty"`
	Direction string          `json:"direction,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
}

// Reply is a server message.
type Reply struct {
	Type    string              `json:"type"`
	Station string              `json:"station"`
	State   session.State       `json:"state"`
	Scan    *session.ScanResult `json:"scan,omitempty"`
	Change  *reconcile.Change   `json:"change,omitempty"`
	Product *catalog.Product    `json:"product,omitempty"`
	Error   string              `json:"error,omitempty"`
	Code    domainerr.Kind      `json:"code,omitempty"`
}

func (r *Reply) setError(err error) {
	r.Error = err.Error()
	r.Code = domainerr.KindOf(err)
}
