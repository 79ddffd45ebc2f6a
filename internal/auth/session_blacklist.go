package auth

import (
	"context"
	"sync"
	"time"
)

// JwtBlacklistStore keeps revoked access tokens until they expire
type JwtBlacklistStore interface {
	// IsBlacklisted checks if the given token is blacklisted.
	IsBlacklisted(ctx context.Context, token string) (bool, error)
	// AddToBlacklist adds the given token to the blacklist until exp.
	AddToBlacklist(ctx context.Context, token string, exp time.Time) error
}

const blacklistCleanUpInterval = 5 * time.Minute

// InMemoryBlacklistStore is process local blacklist with periodic cleanup.
// Close stops the cleanup janitor.
type InMemoryBlacklistStore struct {
	blacklist map[string]time.Time
	mu        sync.RWMutex

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewInMemoryBlacklistStore creates store and starts cleanup janitor
func NewInMemoryBlacklistStore() *InMemoryBlacklistStore {
	return newInMemoryBlacklistStore(blacklistCleanUpInterval)
}

func newInMemoryBlacklistStore(interval time.Duration) *InMemoryBlacklistStore {
	store := &InMemoryBlacklistStore{
		blacklist: make(map[string]time.Time),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	go store.periodicallyCleanUp(interval)
	return store
}

func (s *InMemoryBlacklistStore) periodicallyCleanUp(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	defer close(s.done)

	for {
		select {
		case <-ticker.C:
			s.CleanUpExpired()
		case <-s.stop:
			return
		}
	}
}

// Close stops cleanup janitor and waits for it to exit. Safe to call twice.
func (s *InMemoryBlacklistStore) Close() error {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
	return nil
}

// CleanUpExpired drops tokens that are expired anyway
func (s *InMemoryBlacklistStore) CleanUpExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for token, exp := range s.blacklist {
		if exp.Before(now) {
			delete(s.blacklist, token)
		}
	}
}

// IsBlacklisted implements JwtBlacklistStore
func (s *InMemoryBlacklistStore) IsBlacklisted(_ context.Context, token string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.blacklist[token]
	return exists, nil
}

// AddToBlacklist implements JwtBlacklistStore
func (s *InMemoryBlacklistStore) AddToBlacklist(_ context.Context, token string, exp time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blacklist[token] = exp
	return nil
}
