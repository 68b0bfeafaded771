package station

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"warehouse-counter/core/reconcile"
	"warehouse-counter/core/scanner"
	"warehouse-counter/core/session"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const queueSize = 64

// Sender delivers a reply to the client.
type Sender func(Reply) error

// Station drives one session from client messages.
type Station struct {
	ID string

	session *session.Session
	cfg     scanner.Config
	keys    chan scanner.Key
	events  chan scanner.Event
	send    Sender
	sendMu  sync.Mutex
	logger  *zap.Logger
	now     func() time.Time
}

// New creates a station around sess.
func New(id string, sess *session.Session, cfg scanner.Config, send Sender, logger *zap.Logger) *Station {
	return &Station{
		ID:      id,
		session: sess,
		cfg:     cfg,
		keys:    make(chan scanner.Key, queueSize),
		events:  make(chan scanner.Event, queueSize),
		send:    send,
		logger:  logger,
		now:     time.Now,
	}
}

// Run decodes keys and handles scans until ctx is done.
func (s *Station) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return scanner.Run(ctx, s.cfg, s.keys, s.events)
	})
	g.Go(func() error {
		return s.session.Run(ctx, s.events, s.notify)
	})
	return g.Wait()
}

// Handle processes one raw client message.
func (s *Station) Handle(ctx context.Context, raw []byte) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		s.reply(Reply{Type: ReplyError, Error: "Invalid message format"})
		return
	}
	if msg.Type == "" && msg.Key != "" {
		msg.Type = MessageKey
	}

	switch msg.Type {
	case MessageKey:
		s.handleKey(ctx, msg)
	case MessageScan:
		s.handleScan(ctx, msg)
	case MessageConfirm:
		s.handleConfirm(ctx, msg)
	case MessageCancel:
		s.session.Cancel()
		s.reply(Reply{Type: ReplyState})
	default:
		s.reply(Reply{Type: ReplyError, Error: "Unknown message type: " + msg.Type})
	}
}

// Ready greets the client.
func (s *Station) Ready() {
	s.reply(Reply{Type: ReplyReady})
}

func (s *Station) accepting() bool {
	switch s.session.State() {
	case session.StateAwaiting, session.StateApplying:
		return false
	}
	return true
}

func (s *Station) handleKey(ctx context.Context, msg Message) {
	if !s.accepting() {
		s.logger.Debug("Key dropped while confirming", zap.String("key", msg.Key))
		return
	}
	at := s.now()
	if msg.At != nil {
		at = *msg.At
	}
	select {
	case s.keys <- scanner.Key{Value: msg.Key, At: at}:
	case <-ctx.Done():
	}
}

func (s *Station) handleScan(ctx context.Context, msg Message) {
	code := strings.ToUpper(strings.TrimSpace(msg.Code))
	if code == "" {
		s.reply(Reply{Type: ReplyError, Error: "code is required"})
		return
	}
	select {
	case s.events <- scanner.Event{Code: code, ObservedAt: s.now()}:
	case <-ctx.Done():
	}
}

func (s *Station) handleConfirm(ctx context.Context, msg Message) {
	dir, err := reconcile.ParseDirection(msg.Direction)
	if err != nil {
		r := Reply{Type: ReplyError}
		r.setError(err)
		s.reply(r)
		return
	}

	change, p, err := s.session.Confirm(ctx, dir, msg.Amount)
	if err != nil {
		r := Reply{Type: ReplyError}
		if p.ID != "" {
			r.Product = &p
		}
		r.setError(err)
		s.reply(r)
		return
	}
	s.reply(Reply{Type: ReplyConfirmed, Change: &change, Product: &p})
}

func (s *Station) notify(res session.ScanResult, err error) {
	r := Reply{Type: ReplyScan, Scan: &res}
	if err != nil {
		r.setError(err)
	}
	s.reply(r)
}

// reply stamps and sends r. Sends are serialized since replies come from
// both the reader and the session loop.
func (s *Station) reply(r Reply) {
	r.Station = s.ID
	r.State = s.session.State()

	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if err := s.send(r); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Warn("Failed to send reply", zap.String("type", r.Type), zap.Error(err))
	}
}
