package server

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mj1618/a11y-bridge/internal/scenario"
	"github.com/puzpuzpuz/xsync/v4"
)

// sessionEntry holds a live simulator session with its last-use time.
type sessionEntry struct {
	mu       sync.Mutex
	sess     *scenario.Session
	lastUsed time.Time
}

// SessionStore keeps simulator sessions between tool calls. Sessions idle
// longer than the TTL are closed on the next store access. A ttl of 0
// keeps sessions until closed.
type SessionStore struct {
	entries *xsync.Map[string, *sessionEntry]
	ttl     time.Duration
	now     func() time.Time
}

// NewSessionStore creates an empty store.
func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		entries: xsync.NewMap[string, *sessionEntry](),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Create boots a session and returns its ID.
func (c *SessionStore) Create(opts scenario.Options) (string, error) {
	c.Sweep()
	sess, err := scenario.NewSession(opts)
	if err != nil {
		return "", err
	}
	id := uuid.NewString()
	c.entries.Store(id, &sessionEntry{sess: sess, lastUsed: c.now()})
	return id, nil
}

// With runs fn on session id while holding the session's lock.
func (c *SessionStore) With(id string, fn func(*scenario.Session) error) error {
	c.Sweep()
	e, ok := c.entries.Load(id)
	if !ok {
		return fmt.Errorf("unknown or expired session %q", id)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.lastUsed = c.now()
	return fn(e.sess)
}

// Close closes and removes session id.
func (c *SessionStore) Close(id string) bool {
	e, ok := c.entries.LoadAndDelete(id)
	if !ok {
		return false
	}
	e.mu.Lock()
	e.sess.Close()
	e.mu.Unlock()
	return true
}

// Sweep closes sessions idle for longer than the TTL.
func (c *SessionStore) Sweep() {
	if c.ttl == 0 {
		return
	}
	now := c.now()
	var expired []string
	c.entries.Range(func(id string, e *sessionEntry) bool {
		if e.mu.TryLock() {
			if now.Sub(e.lastUsed) >= c.ttl {
				expired = append(expired, id)
			}
			e.mu.Unlock()
		}
		return true
	})
	for _, id := range expired {
		c.Close(id)
	}
}

// CloseAll closes every session.
func (c *SessionStore) CloseAll() {
	var ids []string
	c.entries.Range(func(id string, _ *sessionEntry) bool {
		ids = append(ids, id)
		return true
	})
	for _, id := range ids {
		c.Close(id)
	}
}

// Len returns the number of live sessions.
func (c *SessionStore) Len() int { return c.entries.Size() }
