// Package cache - кеш снимков коллекций поверх любого storage.Storage.
//
// Ключ снимка включает поколение коллекции. Любая запись увеличивает поколение,
// и старые снимки просто перестают читаться, пока не истечёт их TTL.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/schema"
	"github.com/UkralStul/portfolio-content-service/internal/storage"
)

// KV - минимальный key-value интерфейс, которого достаточно кешу.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
}

// Store оборачивает хранилище и кеширует результаты List.
type Store struct {
	inner storage.Storage
	kv    KV
	ttl   time.Duration

	// dirty != nil внутри транзакции: поколения поднимаются после её завершения.
	mu    sync.Mutex
	dirty map[string]struct{}
}

// Wrap возвращает кеширующее хранилище.
func Wrap(inner storage.Storage, kv KV, ttl time.Duration) *Store {
	return &Store{inner: inner, kv: kv, ttl: ttl}
}

func (s *Store) Comments() storage.Repository[*domain.Comment] {
	return wrap(s, schema.Comments, s.inner.Comments())
}

func (s *Store) Certifications() storage.Repository[*domain.Certification] {
	return wrap(s, schema.Certifications, s.inner.Certifications())
}

func (s *Store) Experiences() storage.Repository[*domain.Experience] {
	return wrap(s, schema.Experiences, s.inner.Experiences())
}

func (s *Store) Hackathons() storage.Repository[*domain.Hackathon] {
	return wrap(s, schema.Hackathons, s.inner.Hackathons())
}

func (s *Store) Projects() storage.Repository[*domain.Project] {
	return wrap(s, schema.Projects, s.inner.Projects())
}

func (s *Store) Skills() storage.Repository[*domain.Skill] {
	return wrap(s, schema.Skills, s.inner.Skills())
}

func (s *Store) HeroContent() storage.Repository[*domain.HeroContent] {
	return wrap(s, schema.HeroContent, s.inner.HeroContent())
}

func (s *Store) AboutContent() storage.Repository[*domain.AboutContent] {
	return wrap(s, schema.AboutContent, s.inner.AboutContent())
}

func (s *Store) SocialLinks() storage.Repository[*domain.SocialLink] {
	return wrap(s, schema.SocialLinks, s.inner.SocialLinks())
}

// Transaction делегирует транзакцию и сбрасывает затронутые коллекции после неё,
// чтобы читатели не успели закешировать незакоммиченное состояние.
func (s *Store) Transaction(ctx context.Context, fn func(tx storage.Storage) error) error {
	if s.dirty != nil {
		return fn(s)
	}
	tx := &Store{kv: s.kv, ttl: s.ttl, dirty: make(map[string]struct{})}
	err := s.inner.Transaction(ctx, func(inner storage.Storage) error {
		tx.inner = inner
		return fn(tx)
	})
	for name := range tx.dirty {
		bump(ctx, s.kv, name)
	}
	return err
}

func (s *Store) Close(ctx context.Context) error { return s.inner.Close(ctx) }

func (s *Store) touched(ctx context.Context, name string) {
	if s.dirty != nil {
		s.mu.Lock()
		s.dirty[name] = struct{}{}
		s.mu.Unlock()
		return
	}
	bump(ctx, s.kv, name)
}

// bump не возвращает ошибку: запись в хранилище уже прошла, а недоступный кеш
// в худшем случае отдаст устаревший снимок до истечения TTL.
func bump(ctx context.Context, kv KV, name string) {
	if _, err := kv.Incr(ctx, generationKey(name)); err != nil {
		log.Printf("cache: failed to invalidate %s: %v", name, err)
	}
}

func generationKey(name string) string { return "gen:" + name }

type repository[T domain.Record] struct {
	s     *Store
	sc    *schema.Collection[T]
	inner storage.Repository[T]
}

func wrap[T domain.Record](s *Store, sc *schema.Collection[T], inner storage.Repository[T]) *repository[T] {
	return &repository[T]{s: s, sc: sc, inner: inner}
}

func (r *repository[T]) List(ctx context.Context, q storage.Query) ([]T, error) {
	// Внутри транзакции читаем мимо кеша.
	if r.s.dirty != nil {
		return r.inner.List(ctx, q)
	}

	key, err := r.snapshotKey(ctx, q)
	if err != nil {
		log.Printf("cache: %s: %v", r.sc.Name, err)
		return r.inner.List(ctx, q)
	}

	if raw, ok, err := r.s.kv.Get(ctx, key); err == nil && ok {
		var rows []T
		if err := json.Unmarshal([]byte(raw), &rows); err == nil {
			return rows, nil
		}
	}

	rows, err := r.inner.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(rows); err == nil {
		if err := r.s.kv.Set(ctx, key, string(raw), r.s.ttl); err != nil {
			log.Printf("cache: failed to store %s: %v", key, err)
		}
	}
	return rows, nil
}

func (r *repository[T]) snapshotKey(ctx context.Context, q storage.Query) (string, error) {
	gen := "0"
	raw, ok, err := r.s.kv.Get(ctx, generationKey(r.sc.Name))
	if err != nil {
		return "", err
	}
	if ok {
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return "", fmt.Errorf("bad generation %q: %w", raw, err)
		}
		gen = raw
	}
	qs, err := json.Marshal(q)
	if err != nil {
		return "", err
	}
	sum := sha1.Sum(qs)
	return fmt.Sprintf("list:%s:%s:%s", r.sc.Name, gen, hex.EncodeToString(sum[:8])), nil
}

func (r *repository[T]) Count(ctx context.Context, where ...schema.Eq) (int, error) {
	return r.inner.Count(ctx, where...)
}

func (r *repository[T]) Get(ctx context.Context, id string) (T, error) {
	return r.inner.Get(ctx, id)
}

func (r *repository[T]) Insert(ctx context.Context, rec T) (T, error) {
	out, err := r.inner.Insert(ctx, rec)
	if err == nil {
		r.s.touched(ctx, r.sc.Name)
	}
	return out, err
}

func (r *repository[T]) Update(ctx context.Context, id string, fn func(T) error) (T, error) {
	out, err := r.inner.Update(ctx, id, fn)
	if err == nil {
		r.s.touched(ctx, r.sc.Name)
	}
	return out, err
}

func (r *repository[T]) Delete(ctx context.Context, id string) error {
	err := r.inner.Delete(ctx, id)
	if err == nil {
		r.s.touched(ctx, r.sc.Name)
	}
	return err
}

func (r *repository[T]) Clear(ctx context.Context) (int, error) {
	n, err := r.inner.Clear(ctx)
	if err == nil {
		r.s.touched(ctx, r.sc.Name)
	}
	return n, err
}
