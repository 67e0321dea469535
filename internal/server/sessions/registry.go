// Package sessions keeps authenticated sessions in memory, keyed by an
// opaque random token. Sessions do not survive a restart; clients simply
// log in again.
package sessions

import (
	"sync"
	"time"

	"github.com/ndmitriev/gatekeeper/internal/shared"
)

// tokenBytes is the number of random bytes per session id; the hex-encoded
// id is twice as long.
const tokenBytes = 32

// Session is the server-side state for an authenticated identity. ExpiresAt
// is fixed at creation; there is no sliding renewal.
type Session struct {
	ID        string
	UserID    string
	Email     string
	Role      string
	ExpiresAt time.Time
}

// Registry owns the live sessions. A user may hold any number of concurrent
// sessions; each login creates an independent one.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]Session
	ttl      time.Duration

	now func() time.Time // test seam
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		sessions: make(map[string]Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Create stores a new session for the given identity and returns it. The
// session id comes from crypto/rand, so collisions and guessing are not a
// practical concern.
func (r *Registry) Create(userID, email, role string) (Session, error) {
	id, err := shared.MakeRandHexString(tokenBytes)
	if err != nil {
		return Session{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	s := Session{
		ID:        id,
		UserID:    userID,
		Email:     email,
		Role:      role,
		ExpiresAt: r.now().Add(r.ttl),
	}
	r.sessions[id] = s

	return s, nil
}

// Validate returns the session for the given id. Unknown ids yield
// shared.ErrorNotFound; expired sessions are deleted as a side effect and
// yield shared.ErrorSessionExpired.
func (r *Registry) Validate(id string) (Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return Session{}, shared.ErrorNotFound
	}

	if r.now().After(s.ExpiresAt) {
		delete(r.sessions, id)
		return Session{}, shared.ErrorSessionExpired
	}

	return s, nil
}

// Destroy removes the session with the given id. Destroying a session that
// does not exist is not an error.
func (r *Registry) Destroy(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, id)
}

// Sweep deletes all sessions that expired before now.
func (r *Registry) Sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sessions {
		if s.ExpiresAt.Before(now) {
			delete(r.sessions, id)
		}
	}
}
