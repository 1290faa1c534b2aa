// Package session keeps in-progress games in memory under opaque ids with a
// sliding expiry.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nathoo/multiquest/engine/state"
	"github.com/nathoo/multiquest/types"
)

const (
	DefaultTTL           = 8 * time.Hour
	DefaultSweepInterval = 5 * time.Minute
)

// NotFoundID is the sentinel id carried by the not-found session.
var NotFoundID = uuid.Nil.String()

// NotFoundText is shown when a move names a session that does not exist.
const NotFoundText = "Game does not exist. Please begin again."

// Instantiator builds a fresh session for a title id.
type Instantiator interface {
	Instantiate(titleID string) (*types.Session, error)
}

type entry struct {
	session *types.Session
	expires time.Time
}

// Store holds sessions by id. It is safe for concurrent use across ids;
// moves against the same id are expected to come from a single caller.
type Store struct {
	titles Instantiator
	ttl    time.Duration
	now    func() time.Time
	log    *slog.Logger

	mu      sync.RWMutex
	entries map[string]*entry
}

type StoreOpt func(*Store)

// WithTTL sets the idle expiry window.
func WithTTL(d time.Duration) StoreOpt {
	return func(s *Store) {
		if d > 0 {
			s.ttl = d
		}
	}
}

// WithClock replaces the wall clock, mostly for tests.
func WithClock(now func() time.Time) StoreOpt {
	return func(s *Store) {
		s.now = now
	}
}

func WithLogger(l *slog.Logger) StoreOpt {
	return func(s *Store) {
		s.log = l
	}
}

func NewStore(titles Instantiator, opts ...StoreOpt) *Store {
	s := &Store{
		titles:  titles,
		ttl:     DefaultTTL,
		now:     time.Now,
		log:     slog.Default(),
		entries: map[string]*entry{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create instantiates a title and stores the new session.
func (s *Store) Create(titleID string) (string, error) {
	sess, err := s.titles.Instantiate(titleID)
	if err != nil {
		return "", fmt.Errorf("creating session for %q: %w", titleID, err)
	}
	id := uuid.New().String()
	sess.ID = id

	s.mu.Lock()
	s.entries[id] = &entry{session: sess, expires: s.now().Add(s.ttl)}
	count := len(s.entries)
	s.mu.Unlock()

	s.log.Info("session created", "session", id, "title", sess.Title, "sessions", count)
	return id, nil
}

// Exists reports whether id names a live session.
func (s *Store) Exists(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	return ok && s.now().Before(e.expires)
}

// Get returns a copy of the session, or the not-found session when id is
// unknown or expired.
func (s *Store) Get(id string) *types.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok || !s.now().Before(e.expires) {
		return NotFound()
	}
	return state.Clone(e.session)
}

// Replace swaps in a new session value for id and refreshes its expiry.
// It returns false if id no longer exists.
func (s *Store) Replace(id string, sess *types.Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok || !s.now().Before(e.expires) {
		return false
	}
	sess.ID = id
	e.session = sess
	e.expires = s.now().Add(s.ttl)
	return true
}

// Delete removes a session. Unknown ids are ignored.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	_, ok := s.entries[id]
	delete(s.entries, id)
	s.mu.Unlock()

	if ok {
		s.log.Info("session deleted", "session", id)
	}
}

// Len returns the number of stored sessions, expired or not.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep evicts expired sessions and returns how many were removed.
func (s *Store) Sweep() int {
	now := s.now()

	s.mu.Lock()
	var evicted []string
	for id, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, id)
			evicted = append(evicted, id)
		}
	}
	s.mu.Unlock()

	for _, id := range evicted {
		s.log.Info("session expired", "session", id)
	}
	return len(evicted)
}

// Run sweeps on every interval until ctx is cancelled.
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

// NotFound builds the degraded session returned for unknown ids. Its single
// room tells the player to begin again.
func NotFound() *types.Session {
	return &types.Session{
		ID: NotFoundID,
		Rooms: []types.Room{
			{ID: 1, Name: "Error", Description: NotFoundText},
		},
		Player:  types.Player{Room: 1},
		Awarded: []string{},
	}
}
