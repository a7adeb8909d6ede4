package repositories

import (
	"sync"
)

// MockUnitOfWork implements UnitOfWork over the in-memory mock repositories.
// A mutex serializes Execute calls, which gives the same one-writer-at-a-time
// discipline a database transaction provides. Rollback of already-applied
// writes is not simulated; callers order their writes so a failing step
// leaves earlier state untouched.
type MockUnitOfWork struct {
	repos RepositorySet
	mu    sync.Mutex
}

// NewMockUnitOfWork creates a MockUnitOfWork over the given repositories.
func NewMockUnitOfWork(repos RepositorySet) *MockUnitOfWork {
	return &MockUnitOfWork{repos: repos}
}

// Execute runs fn against the shared repository set under the mutex.
func (u *MockUnitOfWork) Execute(fn func(r RepositorySet) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return fn(u.repos)
}
