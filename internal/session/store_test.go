package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tableside/internal/session"
)

func TestMemoryStore_SetGetClear(t *testing.T) {
	s := session.NewMemoryStore()

	assert.Empty(t, s.Credential())
	assert.Empty(t, s.Role())

	s.Set("tok-123", "admin")
	assert.Equal(t, "tok-123", s.Credential())
	assert.Equal(t, "admin", s.Role())

	s.Clear()
	assert.Empty(t, s.Credential())
	assert.Empty(t, s.Role())
}

func TestMemoryStore_RoleMeaninglessWithoutCredential(t *testing.T) {
	s := session.NewMemoryStore()

	// A role can only end up stored without a credential through outside
	// interference; the store must still report unauthenticated.
	s.Set("", "admin")

	assert.Empty(t, s.Credential())
	assert.Empty(t, s.Role())
}

func TestMemoryStore_SetOverwrites(t *testing.T) {
	s := session.NewMemoryStore()

	s.Set("old", "customer")
	s.Set("new", "admin")

	assert.Equal(t, "new", s.Credential())
	assert.Equal(t, "admin", s.Role())
}
