package inmemory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/schema"
	"github.com/UkralStul/portfolio-content-service/internal/storage"
	"github.com/google/uuid"
)

// Store реализует интерфейс Storage в памяти.
// Транзакции берут эксклюзивную блокировку и откатываются по снимку.
type Store struct {
	db   *database
	inTx bool
}

type database struct {
	mu             sync.RWMutex
	comments       *table[*domain.Comment]
	certifications *table[*domain.Certification]
	experiences    *table[*domain.Experience]
	hackathons     *table[*domain.Hackathon]
	projects       *table[*domain.Project]
	skills         *table[*domain.Skill]
	heroContent    *table[*domain.HeroContent]
	aboutContent   *table[*domain.AboutContent]
	socialLinks    *table[*domain.SocialLink]
}

func (d *database) tables() []tableState {
	return []tableState{
		d.comments, d.certifications, d.experiences, d.hackathons, d.projects,
		d.skills, d.heroContent, d.aboutContent, d.socialLinks,
	}
}

// New создает новый экземпляр in-memory хранилища.
func New() *Store {
	return &Store{db: &database{
		comments:       newTable[*domain.Comment](),
		certifications: newTable[*domain.Certification](),
		experiences:    newTable[*domain.Experience](),
		hackathons:     newTable[*domain.Hackathon](),
		projects:       newTable[*domain.Project](),
		skills:         newTable[*domain.Skill](),
		heroContent:    newTable[*domain.HeroContent](),
		aboutContent:   newTable[*domain.AboutContent](),
		socialLinks:    newTable[*domain.SocialLink](),
	}}
}

func (s *Store) Comments() storage.Repository[*domain.Comment] {
	return &collection[*domain.Comment]{s: s, sc: schema.Comments, t: s.db.comments}
}

func (s *Store) Certifications() storage.Repository[*domain.Certification] {
	return &collection[*domain.Certification]{s: s, sc: schema.Certifications, t: s.db.certifications}
}

func (s *Store) Experiences() storage.Repository[*domain.Experience] {
	return &collection[*domain.Experience]{s: s, sc: schema.Experiences, t: s.db.experiences}
}

func (s *Store) Hackathons() storage.Repository[*domain.Hackathon] {
	return &collection[*domain.Hackathon]{s: s, sc: schema.Hackathons, t: s.db.hackathons}
}

func (s *Store) Projects() storage.Repository[*domain.Project] {
	return &collection[*domain.Project]{s: s, sc: schema.Projects, t: s.db.projects}
}

func (s *Store) Skills() storage.Repository[*domain.Skill] {
	return &collection[*domain.Skill]{s: s, sc: schema.Skills, t: s.db.skills}
}

func (s *Store) HeroContent() storage.Repository[*domain.HeroContent] {
	return &collection[*domain.HeroContent]{s: s, sc: schema.HeroContent, t: s.db.heroContent}
}

func (s *Store) AboutContent() storage.Repository[*domain.AboutContent] {
	return &collection[*domain.AboutContent]{s: s, sc: schema.AboutContent, t: s.db.aboutContent}
}

func (s *Store) SocialLinks() storage.Repository[*domain.SocialLink] {
	return &collection[*domain.SocialLink]{s: s, sc: schema.SocialLinks, t: s.db.socialLinks}
}

// Transaction выполняет fn под эксклюзивной блокировкой.
// При ошибке все таблицы возвращаются к состоянию до начала транзакции.
func (s *Store) Transaction(ctx context.Context, fn func(tx storage.Storage) error) error {
	if s.inTx {
		return fn(s)
	}

	s.db.mu.Lock()
	defer s.db.mu.Unlock()

	tables := s.db.tables()
	snapshots := make([]tableState, len(tables))
	for i, t := range tables {
		snapshots[i] = t.snapshot()
	}

	if err := fn(&Store{db: s.db, inTx: true}); err != nil {
		for i, t := range tables {
			t.restore(snapshots[i])
		}
		return err
	}
	return nil
}

func (s *Store) Close(ctx context.Context) error { return nil }

func (s *Store) read(fn func()) {
	if !s.inTx {
		s.db.mu.RLock()
		defer s.db.mu.RUnlock()
	}
	fn()
}

func (s *Store) write(fn func()) {
	if !s.inTx {
		s.db.mu.Lock()
		defer s.db.mu.Unlock()
	}
	fn()
}

// === Таблица ===

type tableState interface {
	snapshot() tableState
	restore(tableState)
}

// table хранит собственные копии записей. Сохранённые записи не меняются на месте,
// поэтому для снимка достаточно скопировать map и порядок.
type table[T domain.Record] struct {
	rows  map[string]T
	order []string // идентификаторы в порядке вставки
}

func newTable[T domain.Record]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) snapshot() tableState {
	rows := make(map[string]T, len(t.rows))
	for id, r := range t.rows {
		rows[id] = r
	}
	return &table[T]{rows: rows, order: slices.Clone(t.order)}
}

func (t *table[T]) restore(state tableState) {
	prev := state.(*table[T])
	t.rows, t.order = prev.rows, prev.order
}

// === Коллекция ===

type collection[T domain.Record] struct {
	s  *Store
	sc *schema.Collection[T]
	t  *table[T]
}

func (c *collection[T]) List(ctx context.Context, q storage.Query) ([]T, error) {
	fields, err := c.sc.SortFields(q.Index)
	if err != nil {
		return nil, err
	}

	var result []T
	c.s.read(func() {
		result = make([]T, 0, len(c.t.order))
		for _, id := range c.t.order {
			rec := c.t.rows[id]
			ok, mErr := c.sc.Match(q.Where, rec)
			if mErr != nil {
				err = mErr
				return
			}
			if ok {
				result = append(result, c.sc.Clone(rec))
			}
		}
	})
	if err != nil {
		return nil, err
	}

	// Без индекса порядок вставки уже есть, иначе стабильная сортировка по ключу индекса.
	if q.Index != "" {
		sort.SliceStable(result, func(i, j int) bool {
			cmp := schema.Compare(fields, result[i], result[j])
			if q.Desc {
				return cmp > 0
			}
			return cmp < 0
		})
	} else if q.Desc {
		slices.Reverse(result)
	}

	if q.Limit > 0 && len(result) > q.Limit {
		result = result[:q.Limit]
	}
	return result, nil
}

func (c *collection[T]) Count(ctx context.Context, where ...schema.Eq) (int, error) {
	var (
		n   int
		err error
	)
	c.s.read(func() {
		for _, rec := range c.t.rows {
			ok, mErr := c.sc.Match(where, rec)
			if mErr != nil {
				err = mErr
				return
			}
			if ok {
				n++
			}
		}
	})
	return n, err
}

func (c *collection[T]) Get(ctx context.Context, id string) (T, error) {
	var (
		rec T
		ok  bool
	)
	c.s.read(func() {
		rec, ok = c.t.rows[id]
	})
	if !ok {
		var zero T
		return zero, domain.NotFound(c.sc.Name, id)
	}
	return c.sc.Clone(rec), nil
}

func (c *collection[T]) Insert(ctx context.Context, rec T) (T, error) {
	c.s.write(func() {
		rec.Assign(uuid.NewString(), time.Now().UTC())
		c.t.rows[rec.RecordID()] = c.sc.Clone(rec)
		c.t.order = append(c.t.order, rec.RecordID())
	})
	return rec, nil
}

func (c *collection[T]) Update(ctx context.Context, id string, fn func(T) error) (T, error) {
	var (
		updated T
		err     error
	)
	c.s.write(func() {
		current, ok := c.t.rows[id]
		if !ok {
			err = domain.NotFound(c.sc.Name, id)
			return
		}
		draft := c.sc.Clone(current)
		if err = fn(draft); err != nil {
			return
		}
		c.t.rows[id] = c.sc.Clone(draft)
		updated = draft
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

func (c *collection[T]) Delete(ctx context.Context, id string) error {
	var err error
	c.s.write(func() {
		if _, ok := c.t.rows[id]; !ok {
			err = domain.NotFound(c.sc.Name, id)
			return
		}
		delete(c.t.rows, id)
		c.t.order = slices.DeleteFunc(c.t.order, func(v string) bool { return v == id })
	})
	return err
}

func (c *collection[T]) Clear(ctx context.Context) (int, error) {
	var n int
	c.s.write(func() {
		n = len(c.t.rows)
		c.t.rows = make(map[string]T)
		c.t.order = nil
	})
	return n, nil
}
