package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"talent-match/internal/domain/matching"
	"talent-match/internal/domain/user"

	"github.com/google/uuid"
)

type fakeOpenings struct {
	items map[uuid.UUID]matching.Opening
	err   error
	calls int
}

func (f *fakeOpenings) FindSnapshot(_ context.Context, id uuid.UUID) (matching.Opening, bool, error) {
	f.calls++
	if f.err != nil {
		return matching.Opening{}, false, f.err
	}
	op, ok := f.items[id]
	return op, ok, nil
}

type fakeCandidates struct {
	pool []matching.Candidate
	err  error
}

func (f *fakeCandidates) ListEligible(context.Context) ([]matching.Candidate, error) {
	return f.pool, f.err
}

// memCache mimics the redis cache by round-tripping through JSON.
type memCache struct {
	mu    sync.Mutex
	items map[string][]byte
	ttls  map[string]time.Duration
}

func newMemCache() *memCache {
	return &memCache{items: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = b
	c.ttls[key] = ttl
	return nil
}

type notification struct {
	openingID  uuid.UUID
	model      matching.ScoringModel
	candidates int
}

type fakeNotifier struct {
	events []notification
}

func (n *fakeNotifier) RankingComputed(openingID uuid.UUID, model matching.ScoringModel, candidates int) {
	n.events = append(n.events, notification{openingID: openingID, model: model, candidates: candidates})
}

type fakeUsers struct {
	byEmail map[string]user.User
	err     error
}

func (f fakeUsers) GetByEmail(_ context.Context, email string) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f fakeUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if f.err != nil {
		return user.User{}, f.err
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}
