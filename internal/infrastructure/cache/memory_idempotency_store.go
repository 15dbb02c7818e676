package cache

import (
	"context"
	"sync"
	"time"

	"github.com/owneriq/backend/internal/domain/shared"
)

const sweepInterval = 5 * time.Minute

var _ shared.IdempotencyStore = (*MemoryIdempotencyStore)(nil)

type claim struct {
	result  string
	expires time.Time
}

// MemoryIdempotencyStore keeps claims in process memory. It only
// de-duplicates retries that reach the same instance, so it serves
// development and single-replica deployments. Expired claims are invisible
// immediately and swept from memory every few minutes.
type MemoryIdempotencyStore struct {
	mu     sync.Mutex
	claims map[string]claim
	now    func() time.Time

	stop context.CancelFunc
	done chan struct{}
}

func NewMemoryIdempotencyStore() *MemoryIdempotencyStore {
	ctx, cancel := context.WithCancel(context.Background())
	s := &MemoryIdempotencyStore{
		claims: make(map[string]claim),
		now:    time.Now,
		stop:   cancel,
		done:   make(chan struct{}),
	}
	go s.sweepEvery(ctx, sweepInterval)
	return s
}

// get returns the claim on key if it has not expired. Callers hold mu.
func (s *MemoryIdempotencyStore) get(key string) (claim, bool) {
	c, ok := s.claims[key]
	if ok && s.now().Before(c.expires) {
		return c, true
	}
	return claim{}, false
}

func (s *MemoryIdempotencyStore) MarkProcessed(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.get(key); taken {
		return false, nil
	}
	s.claims[key] = claim{expires: s.now().Add(ttl)}
	return true, nil
}

func (s *MemoryIdempotencyStore) IsProcessed(_ context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, taken := s.get(key)
	return taken, nil
}

// Complete records result on a live claim and keeps its expiry. Unknown or
// expired keys are ignored.
func (s *MemoryIdempotencyStore) Complete(_ context.Context, key, result string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, taken := s.get(key); taken {
		c.result = result
		s.claims[key] = c
	}
	return nil
}

func (s *MemoryIdempotencyStore) Result(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, taken := s.get(key)
	return c.result, taken && c.result != "", nil
}

func (s *MemoryIdempotencyStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.claims, key)
	s.mu.Unlock()
	return nil
}

// Close stops the sweeper. It may be called more than once.
func (s *MemoryIdempotencyStore) Close() error {
	s.stop()
	<-s.done
	return nil
}

func (s *MemoryIdempotencyStore) sweepEvery(ctx context.Context, interval time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *MemoryIdempotencyStore) sweep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for key, c := range s.claims {
		if !now.Before(c.expires) {
			delete(s.claims, key)
		}
	}
}

// Len counts stored claims, expired ones included until the next sweep.
func (s *MemoryIdempotencyStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.claims)
}
