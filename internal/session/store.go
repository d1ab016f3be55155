package session

import "sync"

// Well-known keys the credential and role are stored under. The redis-backed
// store uses the same names so a stored session is inspectable by hand.
const (
	KeyCredential = "token"
	KeyRole       = "role"
)

// Store holds the credential/role pair for the active session. The pair is
// atomic: Clear drops both, and Role never reports a role without a
// credential.
type Store interface {
	Credential() string
	Role() string
	Set(credential, role string)
	Clear()
}

// MemoryStore keeps the session for the lifetime of the process, the closest
// analog to tab-scoped storage.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Credential() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data[KeyCredential]
}

func (s *MemoryStore) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data[KeyCredential] == "" {
		return ""
	}
	return s.data[KeyRole]
}

func (s *MemoryStore) Set(credential, role string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[KeyCredential] = credential
	s.data[KeyRole] = role
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, KeyCredential)
	delete(s.data, KeyRole)
}

var _ Store = (*MemoryStore)(nil)
