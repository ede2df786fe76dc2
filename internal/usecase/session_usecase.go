package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"smartmenu/internal/domain/entities"
	"smartmenu/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrInvalidSessionID = errors.New("invalid session id")
)

// ISessionUseCase drives the customer ordering flow: one OrderState per
// session, all sessions appending to the same order list.

type ISessionUseCase interface {
	Open(ctx context.Context) (entities.Session, error)
	Get(ctx context.Context, sessionID string) (entities.Session, error)
	Close(ctx context.Context, sessionID string) error
	SetCustomer(ctx context.Context, sessionID, name string) (entities.Session, error)
	AddCartItem(ctx context.Context, sessionID, itemID string, quantity int) (entities.Session, error)
	SetCartItemQuantity(ctx context.Context, sessionID, itemID string, quantity int) (entities.Session, error)
	RemoveCartItem(ctx context.Context, sessionID, itemID string) (entities.Session, error)
	ClearCart(ctx context.Context, sessionID string) (entities.Session, error)
	SetPaymentMethod(ctx context.Context, sessionID string, method entities.PaymentMethod) (entities.Session, error)
	SubmitOrder(ctx context.Context, sessionID string) (entities.Order, error)
}

// DefaultSessionIdleTTL is how long a session may go unused before Open
// discards it.
const DefaultSessionIdleTTL = 4 * time.Hour

type sessionEntry struct {
	state    *OrderState
	lastSeen atomic.Int64
}

type SessionUseCase struct {
	mu       sync.RWMutex
	sessions map[string]*sessionEntry
	idleTTL  time.Duration
	now      func() time.Time

	catalog ICatalogUseCase
	orders  interfaces.IOrderRepository
	metrics interfaces.IOrderMetrics
	opts    []OrderStateOption
}

var _ ISessionUseCase = (*SessionUseCase)(nil)

var sessionLog = logrus.WithFields(logrus.Fields{"component": "session", "layer": "usecase"})

func NewSessionUseCase(catalog ICatalogUseCase, orders interfaces.IOrderRepository, metrics interfaces.IOrderMetrics, opts ...OrderStateOption) *SessionUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &SessionUseCase{
		sessions: map[string]*sessionEntry{},
		idleTTL:  DefaultSessionIdleTTL,
		now:      time.Now,
		catalog:  catalog,
		orders:   orders,
		metrics:  metrics,
		opts:     append([]OrderStateOption{WithMetrics(metrics)}, opts...),
	}
}

// SetIdleTTL changes how long an unused session is kept. ttl <= 0 keeps
// sessions until they are closed.
func (u *SessionUseCase) SetIdleTTL(ttl time.Duration) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.idleTTL = ttl
}

// Open registers a new session. Sessions idle for longer than the idle TTL
// are discarded first.
func (u *SessionUseCase) Open(_ context.Context) (entities.Session, error) {
	id := uuid.NewString()
	entry := &sessionEntry{state: NewOrderState(u.orders, u.opts...)}

	u.mu.Lock()
	now := u.now()
	expired := u.expireIdleLocked(now)
	entry.lastSeen.Store(now.UnixNano())
	u.sessions[id] = entry
	n := len(u.sessions)
	u.mu.Unlock()

	u.metrics.SessionsOpen(n)
	log := sessionLog.WithField("session_id", id)
	if expired > 0 {
		log = log.WithField("expired", expired)
	}
	log.Info("session opened")
	return snapshot(id, entry.state), nil
}

func (u *SessionUseCase) expireIdleLocked(now time.Time) int {
	if u.idleTTL <= 0 {
		return 0
	}
	cutoff := now.Add(-u.idleTTL).UnixNano()
	expired := 0
	for id, e := range u.sessions {
		if e.lastSeen.Load() < cutoff {
			delete(u.sessions, id)
			expired++
		}
	}
	return expired
}

func (u *SessionUseCase) Close(_ context.Context, sessionID string) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}

	u.mu.Lock()
	_, ok := u.sessions[sessionID]
	delete(u.sessions, sessionID)
	n := len(u.sessions)
	u.mu.Unlock()

	if !ok {
		return ErrSessionNotFound
	}
	u.metrics.SessionsOpen(n)
	sessionLog.WithField("session_id", sessionID).Info("session closed")
	return nil
}

func (u *SessionUseCase) Get(_ context.Context, sessionID string) (entities.Session, error) {
	return u.withState(sessionID, func(*OrderState) error { return nil })
}

func (u *SessionUseCase) SetCustomer(_ context.Context, sessionID, name string) (entities.Session, error) {
	return u.withState(sessionID, func(s *OrderState) error {
		return s.SetCustomer(entities.Customer{Name: name})
	})
}

// AddCartItem resolves itemID through the catalog before adding it.
func (u *SessionUseCase) AddCartItem(ctx context.Context, sessionID, itemID string, quantity int) (entities.Session, error) {
	return u.withState(sessionID, func(s *OrderState) error {
		item, err := u.catalog.GetItem(ctx, itemID)
		if err != nil {
			return err
		}
		return s.AddCartItem(item, quantity)
	})
}

func (u *SessionUseCase) SetCartItemQuantity(_ context.Context, sessionID, itemID string, quantity int) (entities.Session, error) {
	return u.withState(sessionID, func(s *OrderState) error {
		return s.SetCartItemQuantity(strings.TrimSpace(itemID), quantity)
	})
}

func (u *SessionUseCase) RemoveCartItem(_ context.Context, sessionID, itemID string) (entities.Session, error) {
	return u.withState(sessionID, func(s *OrderState) error {
		s.RemoveCartItem(strings.TrimSpace(itemID))
		return nil
	})
}

func (u *SessionUseCase) ClearCart(_ context.Context, sessionID string) (entities.Session, error) {
	return u.withState(sessionID, func(s *OrderState) error {
		s.ClearCart()
		return nil
	})
}

func (u *SessionUseCase) SetPaymentMethod(_ context.Context, sessionID string, method entities.PaymentMethod) (entities.Session, error) {
	return u.withState(sessionID, func(s *OrderState) error {
		return s.SetPaymentMethod(method)
	})
}

func (u *SessionUseCase) SubmitOrder(ctx context.Context, sessionID string) (entities.Order, error) {
	state, err := u.lookup(sessionID)
	if err != nil {
		return entities.Order{}, err
	}
	o, err := state.SubmitOrder(ctx)
	if err != nil {
		sessionLog.WithError(err).WithField("session_id", sessionID).Info("submit failed")
		return entities.Order{}, err
	}
	return o, nil
}

func (u *SessionUseCase) lookup(sessionID string) (*OrderState, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	u.mu.RLock()
	entry, ok := u.sessions[sessionID]
	now := u.now
	u.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	entry.lastSeen.Store(now().UnixNano())
	return entry.state, nil
}

func (u *SessionUseCase) withState(sessionID string, op func(*OrderState) error) (entities.Session, error) {
	state, err := u.lookup(sessionID)
	if err != nil {
		return entities.Session{}, err
	}
	if err := op(state); err != nil {
		return entities.Session{}, err
	}
	return snapshot(strings.TrimSpace(sessionID), state), nil
}

func snapshot(id string, s *OrderState) entities.Session {
	out := s.Snapshot()
	out.ID = id
	return out
}
