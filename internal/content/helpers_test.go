package content

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/storage"
	"github.com/UkralStul/portfolio-content-service/internal/storage/inmemory"
)

// stepClock выдаёт время, растущее на секунду при каждом вызове.
func stepClock() func() time.Time {
	var (
		mu  sync.Mutex
		now = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		now = now.Add(time.Second)
		return now
	}
}

func newTestService(t *testing.T, opts ...Option) (*Service, storage.Storage) {
	t.Helper()
	store := inmemory.New()
	opts = append([]Option{WithClock(stepClock())}, opts...)
	return New(store, opts...), store
}

func strPtr(s string) *string { return &s }

var errBoom = errors.New("boom")

// failingStore проваливает вставку навыков после failAfter успешных.
type failingStore struct {
	storage.Storage
	left *int
}

func (f failingStore) Skills() storage.Repository[*domain.Skill] {
	return failingSkills{Repository: f.Storage.Skills(), left: f.left}
}

func (f failingStore) Transaction(ctx context.Context, fn func(tx storage.Storage) error) error {
	return f.Storage.Transaction(ctx, func(tx storage.Storage) error {
		return fn(failingStore{Storage: tx, left: f.left})
	})
}

type failingSkills struct {
	storage.Repository[*domain.Skill]
	left *int
}

func (r failingSkills) Insert(ctx context.Context, s *domain.Skill) (*domain.Skill, error) {
	if *r.left == 0 {
		return nil, errBoom
	}
	*r.left--
	return r.Repository.Insert(ctx, s)
}
