// ABOUTME: Session token storage and unauthenticated-route navigation
// ABOUTME: Injected into the API client so tests can swap in memory fakes

package session

import "sync"

// TokenKey is the fixed storage key of the bearer token
const TokenKey = "access_token"

// Store persists the single active session token.
// An empty token with a nil error means no session.
type Store interface {
	Token() (string, error)
	SetToken(token string) error
	Clear() error
}

// Navigator sends the user back to the unauthenticated entry point
type Navigator interface {
	ToLogin()
}

// NavigatorFunc adapts a plain function to Navigator
type NavigatorFunc func()

// ToLogin implements Navigator
func (f NavigatorFunc) ToLogin() {
	if f != nil {
		f()
	}
}

// Discard is a Navigator that does nothing
var Discard Navigator = NavigatorFunc(nil)

// MemoryStore keeps the token in process memory
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryStore creates a store, optionally seeded with a token
func NewMemoryStore(token string) *MemoryStore {
	return &MemoryStore{token: token}
}

// Token implements Store
func (m *MemoryStore) Token() (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, nil
}

// SetToken implements Store
func (m *MemoryStore) SetToken(token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

// Clear implements Store
func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}
