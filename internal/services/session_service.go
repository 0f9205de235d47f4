// internal/services/session_service.go
package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/parisollie/tienda-backend/internal/config"
	"github.com/parisollie/tienda-backend/internal/models"
	"github.com/parisollie/tienda-backend/internal/utils"
)

// Session is the per-visitor state of the storefront screen: the cart, the
// view-state coordinator, the favorites set, and the transient animation
// flags. Every mutation serializes behind the session mutex, which is the
// server-side equivalent of the source UI's single event queue.
type Session struct {
	ID uuid.UUID

	mu         sync.Mutex
	cart       *models.Cart
	view       models.ViewState
	favorites  map[uuid.UUID]bool
	addedFlash map[uuid.UUID]bool
	heartPulse map[uuid.UUID]bool
	reverts    map[string]*utils.Revert
	badgeCount int
	lastSeen   time.Time
	closed     bool

	flashRevert time.Duration
}

// CartSnapshot is a consistent read of the cart and its transient flags.
type CartSnapshot struct {
	Items      []models.Product   `json:"items"`
	Count      int                `json:"count"`
	AddedFlash map[uuid.UUID]bool `json:"added_flash"`
}

func newSession(id uuid.UUID, flashRevert time.Duration) *Session {
	s := &Session{
		ID:          id,
		cart:        models.NewCart(),
		view:        models.NewViewState(),
		favorites:   make(map[uuid.UUID]bool),
		addedFlash:  make(map[uuid.UUID]bool),
		heartPulse:  make(map[uuid.UUID]bool),
		reverts:     make(map[string]*utils.Revert),
		lastSeen:    time.Now(),
		flashRevert: flashRevert,
	}
	// The badge observer fires synchronously inside every cart mutation, so
	// the count read through the snapshot is never stale.
	s.cart.Subscribe(func(count int) {
		s.badgeCount = count
	})
	return s
}

// AddToCart appends the product and raises the "Added!" flash for it. The
// flash auto-reverts after the configured delay.
func (s *Session) AddToCart(p models.Product) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	s.cart.Add(p)
	s.addedFlash[p.ID] = true
	s.scheduleRevertLocked("added:"+p.ID.String(), func() {
		delete(s.addedFlash, p.ID)
	})
	return s.badgeCount
}

// RemoveFromCart deletes the cart entry at the given position.
func (s *Session) RemoveFromCart(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	return s.cart.RemoveAt(index)
}

func (s *Session) Cart() CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	flash := make(map[uuid.UUID]bool, len(s.addedFlash))
	for id := range s.addedFlash {
		flash[id] = true
	}
	return CartSnapshot{
		Items:      s.cart.Items(),
		Count:      s.badgeCount,
		AddedFlash: flash,
	}
}

// ToggleFavorite flips the heart for the product and raises its pulse flag.
// Reports whether the product is now a favorite.
func (s *Session) ToggleFavorite(productID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()

	if s.favorites[productID] {
		delete(s.favorites, productID)
	} else {
		s.favorites[productID] = true
	}
	s.heartPulse[productID] = true
	s.scheduleRevertLocked("pulse:"+productID.String(), func() {
		delete(s.heartPulse, productID)
	})
	return s.favorites[productID]
}

func (s *Session) IsFavorite(productID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.favorites[productID]
}

func (s *Session) HeartPulse(productID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.heartPulse[productID]
}

// Select opens the product detail sheet.
func (s *Session) Select(productID uuid.UUID) models.ViewState {
	return s.transition(func(v models.ViewState) models.ViewState {
		return v.Select(productID)
	})
}

// DismissDetail closes the detail sheet and clears the selection.
func (s *Session) DismissDetail() models.ViewState {
	return s.transition(models.ViewState.DismissDetail)
}

func (s *Session) OpenCartPopup() models.ViewState {
	return s.transition(models.ViewState.OpenCart)
}

func (s *Session) CloseCartPopup() models.ViewState {
	return s.transition(models.ViewState.CloseCart)
}

// SetSearch stores the live search text; filtering recomputes on the next
// catalog read.
func (s *Session) SetSearch(query string) models.ViewState {
	return s.transition(func(v models.ViewState) models.ViewState {
		return v.WithSearch(query)
	})
}

func (s *Session) View() models.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	return s.view
}

// Close cancels every pending revert so no flash callback fires against an
// evicted session.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for _, r := range s.reverts {
		r.Cancel()
	}
	s.reverts = make(map[string]*utils.Revert)
}

func (s *Session) transition(fn func(models.ViewState) models.ViewState) models.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touchLocked()
	s.view = fn(s.view)
	return s.view
}

func (s *Session) touchLocked() {
	s.lastSeen = time.Now()
}

// scheduleRevertLocked replaces any pending revert under the same key, so a
// re-tap restarts the flash window instead of cutting it short.
func (s *Session) scheduleRevertLocked(key string, undo func()) {
	if s.closed {
		return
	}
	if prev, ok := s.reverts[key]; ok {
		prev.Cancel()
	}
	s.reverts[key] = utils.NewRevert(s.flashRevert, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		undo()
		delete(s.reverts, key)
	})
}

// SessionService hands out sessions keyed by the uuid the session middleware
// issues, and sweeps out idle ones after the configured TTL.
type SessionService struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	flash    time.Duration
	stop     chan struct{}
}

func NewSessionService(cfg *config.Config) *SessionService {
	svc := &SessionService{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      cfg.SessionTTL(),
		flash:    cfg.FlashRevert(),
		stop:     make(chan struct{}),
	}

	// Sweep idle sessions every minute
	go svc.sweepLoop()

	return svc
}

// Get returns the session for the id, creating it lazily. A fresh session
// starts with an empty cart and default view state.
func (s *SessionService) Get(id uuid.UUID) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, exists := s.sessions[id]
	if !exists {
		sess = newSession(id, s.flash)
		s.sessions[id] = sess
	}
	return sess
}

func (s *SessionService) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *SessionService) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := time.Since(sess.lastSeen)
		sess.mu.Unlock()

		if idle > s.ttl {
			sess.Close()
			delete(s.sessions, id)
			logrus.WithField("session_id", id).Debug("Evicted idle session")
		}
	}
}

// Shutdown stops the sweeper and closes every live session.
func (s *SessionService) Shutdown() {
	close(s.stop)
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, sess := range s.sessions {
		sess.Close()
		delete(s.sessions, id)
	}
}
