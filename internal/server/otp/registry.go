// Package otp keeps time-bounded, single-use password-reset codes in memory,
// keyed by normalized email. Entries do not survive a restart; the bounded
// lifetime makes that loss acceptable.
package otp

import (
	"sync"
	"time"

	"github.com/ndmitriev/gatekeeper/internal/shared"
)

const codeDigits = 6

type entry struct {
	code      string
	expiresAt time.Time
}

// Registry owns the live reset codes. All operations are safe for concurrent
// use; every read re-checks expiry so correctness never depends on sweeping.
type Registry struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration

	now func() time.Time // test seam
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// TTL returns the configured code lifetime.
func (r *Registry) TTL() time.Duration {
	return r.ttl
}

// Issue generates a random 6-digit code for the given email and stores it
// with a fresh expiry, overwriting any previous entry for that email. At most
// one live code exists per email.
func (r *Registry) Issue(email string) (string, time.Time, error) {
	code, err := shared.MakeRandDigitCode(codeDigits)
	if err != nil {
		return "", time.Time{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	expiresAt := r.now().Add(r.ttl)
	r.entries[email] = entry{code: code, expiresAt: expiresAt}

	return code, expiresAt, nil
}

// Verify checks the code for the given email and consumes the entry on a
// match, making the code single-use. An expired entry is deleted and reported
// as shared.ErrorCodeExpired; a wrong code is reported as
// shared.ErrorCodeMismatch and the entry is kept so the user can retry.
func (r *Registry) Verify(email, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkLocked(email, code); err != nil {
		return err
	}

	delete(r.entries, email)
	return nil
}

// Check applies the same matching rules as Verify but never consumes the
// entry on a match. The reset flow uses it as a precondition so the code
// stays valid until the password update has actually been persisted.
func (r *Registry) Check(email, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.checkLocked(email, code)
}

// Consume drops the entry for the given email, if any.
func (r *Registry) Consume(email string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, email)
}

// Sweep deletes all entries that expired before now.
func (r *Registry) Sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for email, e := range r.entries {
		if e.expiresAt.Before(now) {
			delete(r.entries, email)
		}
	}
}

func (r *Registry) checkLocked(email, code string) error {
	e, ok := r.entries[email]
	if !ok {
		return shared.ErrorCodeNotFound
	}

	if r.now().After(e.expiresAt) {
		delete(r.entries, email)
		return shared.ErrorCodeExpired
	}

	if e.code != code {
		return shared.ErrorCodeMismatch
	}

	return nil
}
