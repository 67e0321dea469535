package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndmitriev/gatekeeper/internal/shared"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return NewRegistry(24 * time.Hour)
}

func TestRegistry_CreateAndValidate(t *testing.T) {
	r := newTestRegistry(t)

	s, err := r.Create("u1", "a@x.com", "user")
	require.NoError(t, err)
	require.Len(t, s.ID, 64)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), s.ExpiresAt, time.Second)

	got, err := r.Validate(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, "a@x.com", got.Email)
	assert.Equal(t, "user", got.Role)
}

func TestRegistry_Validate_Unknown(t *testing.T) {
	r := newTestRegistry(t)
	_, err := r.Validate("no-such-session")
	assert.ErrorIs(t, err, shared.ErrorNotFound)
}

func TestRegistry_Validate_ExpiredIsDeleted(t *testing.T) {
	r := newTestRegistry(t)

	s, err := r.Create("u1", "a@x.com", "user")
	require.NoError(t, err)

	r.now = func() time.Time { return time.Now().Add(25 * time.Hour) }
	_, err = r.Validate(s.ID)
	assert.ErrorIs(t, err, shared.ErrorSessionExpired)

	// deleted as a side effect, so a later call reports not found
	r.now = time.Now
	_, err = r.Validate(s.ID)
	assert.ErrorIs(t, err, shared.ErrorNotFound)
}

func TestRegistry_Destroy(t *testing.T) {
	r := newTestRegistry(t)

	s, err := r.Create("u1", "a@x.com", "user")
	require.NoError(t, err)

	r.Destroy(s.ID)
	_, err = r.Validate(s.ID)
	assert.ErrorIs(t, err, shared.ErrorNotFound)

	// idempotent
	r.Destroy(s.ID)
	r.Destroy("never-existed")
}

func TestRegistry_MultipleSessionsPerUser(t *testing.T) {
	r := newTestRegistry(t)

	s1, err := r.Create("u1", "a@x.com", "user")
	require.NoError(t, err)
	s2, err := r.Create("u1", "a@x.com", "user")
	require.NoError(t, err)

	assert.NotEqual(t, s1.ID, s2.ID)

	// destroying one leaves the other valid
	r.Destroy(s1.ID)
	_, err = r.Validate(s2.ID)
	assert.NoError(t, err)
}

func TestRegistry_Sweep(t *testing.T) {
	r := newTestRegistry(t)

	s, err := r.Create("u1", "a@x.com", "user")
	require.NoError(t, err)

	r.Sweep(time.Now())
	_, err = r.Validate(s.ID)
	require.NoError(t, err)

	r.Sweep(time.Now().Add(25 * time.Hour))
	_, err = r.Validate(s.ID)
	assert.ErrorIs(t, err, shared.ErrorNotFound)
}
