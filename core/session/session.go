package session

import (
	"context"
	"sync"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/domainerr"
	"warehouse-counter/core/reconcile"
	"warehouse-counter/core/scanner"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// State is the session's position in the scan workflow.
type State string

const (
	StateIdle     State = "IDLE"
	StateAwaiting State = "AWAITING_CONFIRMATION"
	StateApplying State = "APPLYING"
	StateNotFound State = "NOT_FOUND"
)

// ScanStatus is what happened to a scan.
type ScanStatus string

const (
	// ScanAwaiting means the product was found and a confirmation is pending.
	ScanAwaiting ScanStatus = "AWAITING_CONFIRMATION"
	// ScanNotFound means no product matched; the session is idle again.
	ScanNotFound ScanStatus = "NOT_FOUND"
	// ScanIgnored means the session was busy.
	ScanIgnored ScanStatus = "IGNORED"
)

// ScanResult describes how a scan was handled.
type ScanResult struct {
	Status  ScanStatus       `json:"status"`
	Code    string           `json:"code"`
	Product *catalog.Product `json:"product,omitempty"`
}

// Session is one counting station. Methods are safe for concurrent use; the
// state machine serializes them.
type Session struct {
	*Counter

	mu      sync.Mutex
	state   State
	pending string
	logger  *zap.Logger
}

// New creates an idle session.
func New(cat *catalog.Catalog, store catalog.Store, rec *reconcile.Reconciler, logger *zap.Logger) *Session {
	return &Session{
		Counter: NewCounter(cat, store, rec, logger),
		state:   StateIdle,
		logger:  logger,
	}
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Pending returns the product awaiting confirmation, if any.
func (s *Session) Pending() (catalog.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAwaiting {
		return catalog.Product{}, false
	}
	return s.catalog.Get(s.pending)
}

// HandleScan looks up a scanned code. A found product opens the
// confirmation; an unknown code returns SCAN_NOT_FOUND and parks the session
// in NOT_FOUND until the next scan or Cancel.
func (s *Session) HandleScan(ctx context.Context, ev scanner.Event) (ScanResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateIdle && s.state != StateNotFound {
		s.logger.Debug("Scan ignored while busy", zap.String("code", ev.Code), zap.String("state", string(s.state)))
		return ScanResult{Status: ScanIgnored, Code: ev.Code}, nil
	}

	p, err := s.catalog.LookupByCode(ev.Code)
	if err != nil {
		s.state = StateNotFound
		s.pending = ""
		s.logger.Info("Scanned code not found", zap.String("code", ev.Code))
		return ScanResult{Status: ScanNotFound, Code: ev.Code}, err
	}

	s.state = StateAwaiting
	s.pending = p.ID
	s.logger.Info("Product scanned",
		zap.String("code", ev.Code),
		zap.String("product", p.Code),
		zap.String("remaining", p.Remaining().String()),
	)
	return ScanResult{Status: ScanAwaiting, Code: ev.Code, Product: &p}, nil
}

// Confirm applies the user-confirmed amount to the pending product.
// Validation failures keep the confirmation open; everything else returns
// the session to idle.
func (s *Session) Confirm(ctx context.Context, dir reconcile.Direction, amount decimal.Decimal) (reconcile.Change, catalog.Product, error) {
	s.mu.Lock()
	if s.state != StateAwaiting {
		state := s.state
		s.mu.Unlock()
		return reconcile.Change{}, catalog.Product{}, domainerr.New(domainerr.KindInvalidState,
			"nothing to confirm in state "+string(state))
	}
	id := s.pending
	s.state = StateApplying
	s.mu.Unlock()

	release, err := s.catalog.Hold(ctx, id)
	if err != nil {
		s.setState(StateAwaiting)
		return reconcile.Change{}, catalog.Product{}, err
	}
	defer release()

	current, ok := s.catalog.Get(id)
	if !ok {
		s.setState(StateIdle)
		return reconcile.Change{}, catalog.Product{}, domainerr.New(domainerr.KindNotFound, "scanned product no longer exists")
	}

	updated, err := s.reconciler.Apply(current, dir, amount)
	if err != nil {
		s.setState(StateAwaiting)
		return reconcile.Change{}, current, err
	}

	err = Persist(ctx, s.catalog, s.store, current, updated, catalog.CountPatch(updated))
	s.setState(StateIdle)
	if err != nil {
		s.logger.Error("Count rolled back", zap.String("product", current.Code), zap.Error(err))
		return reconcile.Change{}, current, err
	}

	s.logger.Info("Count confirmed",
		zap.String("product", updated.Code),
		zap.String("direction", dir.String()),
		zap.String("amount", amount.String()),
		zap.String("counted", updated.CountedQuantity.String()),
		zap.String("state", string(updated.State())),
	)
	return s.reconciler.Describe(current, updated, dir, amount), updated, nil
}

// Cancel closes a pending confirmation or acknowledges a NOT_FOUND.
func (s *Session) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateAwaiting || s.state == StateNotFound {
		s.toIdle()
	}
}

// Run handles scans from events until ctx is done or events is closed,
// reporting every result to notify.
func (s *Session) Run(ctx context.Context, events <-chan scanner.Event, notify func(ScanResult, error)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			res, err := s.HandleScan(ctx, ev)
			if notify != nil {
				notify(res, err)
			}
		}
	}
}

// setState moves the session to st, dropping the pending product on idle.
func (s *Session) setState(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st == StateIdle {
		s.toIdle()
		return
	}
	s.state = st
}

// toIdle resets the state. Callers hold s.mu.
func (s *Session) toIdle() {
	s.state = StateIdle
	s.pending = ""
}
