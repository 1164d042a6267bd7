// Observable session store replacing the SPA's localStorage mirror
package session

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/quaverlabs/quaver/internal/models"
	"github.com/quaverlabs/quaver/internal/shared"
)

// Slot names for the two independent sessions the client carries.
const (
	SlotUser  = "user"      // main app session
	SlotAdmin = "adminuser" // admin back-office session
)

// Subscriber receives the slot name and the new session value (nil on logout)
// after every mutation.
type Subscriber func(slot string, user *models.User)

// Store persists per-slot user sessions in SQLite and notifies subscribers
// after every mutation.
//
// Every UI surface reads the session through the store instead of holding its
// own copy, so concurrent surfaces (a now-playing line and a song table) stay
// consistent without any cross-component plumbing.
type Store struct {
	db *sql.DB

	mu      sync.RWMutex
	cache   map[string]*models.User
	subs    map[int]Subscriber
	nextSub int
}

// NewStore creates a session store over an open database.
//
// Migrations must already have been applied (the sessions table must exist).
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:    db,
		cache: make(map[string]*models.User),
		subs:  make(map[int]Subscriber),
	}
}

// Subscribe registers fn for change notifications and returns an unsubscribe
// function. Notifications run synchronously on the mutating goroutine.
func (s *Store) Subscribe(fn Subscriber) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Current returns a deep copy of the session in slot, or nil when logged out.
//
// The copy means callers can never corrupt the stored session by mutating the
// returned value; writes go through [Store.Put].
func (s *Store) Current(slot string) *models.User {
	s.mu.RLock()
	if user, ok := s.cache[slot]; ok {
		defer s.mu.RUnlock()
		return user.Clone()
	}
	s.mu.RUnlock()

	user, err := s.load(slot)
	if err != nil {
		return nil
	}

	s.mu.Lock()
	s.cache[slot] = user
	s.mu.Unlock()

	return user.Clone()
}

// Put stores user in slot, persists it, and notifies subscribers.
func (s *Store) Put(slot string, user *models.User) error {
	if user == nil {
		return fmt.Errorf("%w: nil user", shared.ErrInvalidInput)
	}

	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	query := `
		INSERT INTO sessions (slot, payload, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(query, slot, string(payload), time.Now()); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.mu.Lock()
	s.cache[slot] = user.Clone()
	s.mu.Unlock()

	s.notify(slot, user)
	return nil
}

// Clear removes the session in slot and notifies subscribers with nil.
func (s *Store) Clear(slot string) error {
	if _, err := s.db.Exec("DELETE FROM sessions WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	s.mu.Lock()
	delete(s.cache, slot)
	s.mu.Unlock()

	s.notify(slot, nil)
	return nil
}

// load reads a session row from the database.
func (s *Store) load(slot string) (*models.User, error) {
	var payload string
	err := s.db.QueryRow("SELECT payload FROM sessions WHERE slot = ?", slot).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: no session in slot %s", shared.ErrNotAuthenticated, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query session: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(payload), &user); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	return &user, nil
}

// notify fans the mutation out to all subscribers.
func (s *Store) notify(slot string, user *models.User) {
	s.mu.RLock()
	subs := make([]Subscriber, 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		var copied *models.User
		if user != nil {
			copied = user.Clone()
		}
		fn(slot, copied)
	}
}
