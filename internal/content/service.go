// Package content - модули доступа к коллекциям портфолио.
//
// Каждый модуль проверяет вход, меняет данные через storage.Storage,
// задаёт каноничный порядок чтения и сообщает об изменениях в events.Broker.
package content

import (
	"context"
	"fmt"
	"time"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/events"
	"github.com/UkralStul/portfolio-content-service/internal/schema"
	"github.com/UkralStul/portfolio-content-service/internal/storage"
	"github.com/UkralStul/portfolio-content-service/internal/validation"
)

// Service объединяет модули всех коллекций.
type Service struct {
	Comments       *Comments
	Certifications *Certifications
	Experiences    *Experiences
	Hackathons     *Hackathons
	Projects       *Projects
	Skills         *Skills
	SiteContent    *SiteContent
}

// Option настраивает Service.
type Option func(*module)

// WithClock подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(m *module) { m.now = now }
}

// WithBroker включает публикацию изменений.
func WithBroker(b *events.Broker) Option {
	return func(m *module) { m.broker = b }
}

// New собирает Service поверх хранилища.
func New(store storage.Storage, opts ...Option) *Service {
	m := &module{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(m)
	}
	return &Service{
		Comments:       &Comments{m},
		Certifications: &Certifications{m},
		Experiences:    &Experiences{m},
		Hackathons:     &Hackathons{m},
		Projects:       &Projects{m},
		Skills:         &Skills{m},
		SiteContent:    &SiteContent{m},
	}
}

// module - общие зависимости модулей.
type module struct {
	store  storage.Storage
	broker *events.Broker
	now    func() time.Time
}

func (m *module) publish(collection, op, id string) {
	if m.broker == nil {
		return
	}
	m.broker.Publish(events.Change{Collection: collection, Op: op, ID: id})
}

// SeedResult - итог сида одной коллекции.
type SeedResult struct {
	Inserted int `json:"inserted"`
}

// ClearResult - итог очистки одной коллекции.
type ClearResult struct {
	Deleted int `json:"deleted"`
}

// Общие операции для коллекций без особых правил.

func create[T domain.Record](ctx context.Context, m *module, repo storage.Repository[T], name string, rec T) (T, error) {
	var zero T
	if err := validation.Struct(rec); err != nil {
		return zero, err
	}
	created, err := repo.Insert(ctx, rec)
	if err != nil {
		return zero, err
	}
	m.publish(name, events.OpCreate, created.RecordID())
	return created, nil
}

// update применяет патч к копии и проверяет результат целиком до сохранения.
func update[T domain.Record](ctx context.Context, m *module, repo storage.Repository[T], name, id string, apply func(T)) (T, error) {
	updated, err := repo.Update(ctx, id, func(rec T) error {
		apply(rec)
		return validation.Struct(rec)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	m.publish(name, events.OpUpdate, id)
	return updated, nil
}

func remove[T domain.Record](ctx context.Context, m *module, repo storage.Repository[T], name, id string) error {
	if err := repo.Delete(ctx, id); err != nil {
		return err
	}
	m.publish(name, events.OpDelete, id)
	return nil
}

func clearAll[T domain.Record](ctx context.Context, m *module, repo storage.Repository[T], name string) (ClearResult, error) {
	n, err := repo.Clear(ctx)
	if err != nil {
		return ClearResult{}, err
	}
	m.publish(name, events.OpClear, "")
	return ClearResult{Deleted: n}, nil
}

func seed[T domain.Record](ctx context.Context, m *module, repo func(storage.Storage) storage.Repository[T], name string, fixtures []T) (SeedResult, error) {
	n, err := reseed(ctx, m.store, repo, fixtures)
	if err != nil {
		return SeedResult{}, err
	}
	m.publish(name, events.OpSeed, "")
	return SeedResult{Inserted: n}, nil
}

// reseed очищает коллекцию и вставляет фикстуры в одной транзакции.
func reseed[T domain.Record](ctx context.Context, store storage.Storage, repo func(storage.Storage) storage.Repository[T], fixtures []T) (int, error) {
	err := store.Transaction(ctx, func(tx storage.Storage) error {
		return replace(ctx, repo(tx), fixtures)
	})
	if err != nil {
		return 0, err
	}
	return len(fixtures), nil
}

func replace[T domain.Record](ctx context.Context, repo storage.Repository[T], fixtures []T) error {
	if _, err := repo.Clear(ctx); err != nil {
		return err
	}
	for _, rec := range fixtures {
		if _, err := repo.Insert(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// SiteCollection - имя для сида и очистки всего контента сайта разом.
const SiteCollection = "site"

// Seedable - коллекции с демонстрационными данными, в порядке сида.
var Seedable = []string{
	schema.Certifications.Name,
	schema.Experiences.Name,
	schema.Hackathons.Name,
	schema.Projects.Name,
	schema.Skills.Name,
	SiteCollection,
}

// Seed заполняет коллекцию по имени и возвращает число вставленных записей.
func (s *Service) Seed(ctx context.Context, name string) (int, error) {
	var (
		res SeedResult
		err error
	)
	switch name {
	case schema.Certifications.Name:
		res, err = s.Certifications.Seed(ctx)
	case schema.Experiences.Name:
		res, err = s.Experiences.Seed(ctx)
	case schema.Hackathons.Name:
		res, err = s.Hackathons.Seed(ctx)
	case schema.Projects.Name:
		res, err = s.Projects.Seed(ctx)
	case schema.Skills.Name:
		res, err = s.Skills.Seed(ctx)
	case SiteCollection:
		site, err := s.SiteContent.Seed(ctx)
		return site.Hero + site.About + site.SocialLinks, err
	default:
		return 0, fmt.Errorf("collection %q has no seed data", name)
	}
	return res.Inserted, err
}

// Clear очищает коллекцию по имени и возвращает число удалённых записей.
func (s *Service) Clear(ctx context.Context, name string) (int, error) {
	var (
		res ClearResult
		err error
	)
	switch name {
	case schema.Comments.Name:
		res, err = s.Comments.Clear(ctx)
	case schema.Certifications.Name:
		res, err = s.Certifications.Clear(ctx)
	case schema.Experiences.Name:
		res, err = s.Experiences.Clear(ctx)
	case schema.Hackathons.Name:
		res, err = s.Hackathons.Clear(ctx)
	case schema.Projects.Name:
		res, err = s.Projects.Clear(ctx)
	case schema.Skills.Name:
		res, err = s.Skills.Clear(ctx)
	case SiteCollection:
		res, err = s.SiteContent.Clear(ctx)
	default:
		return 0, fmt.Errorf("unknown collection %q", name)
	}
	return res.Deleted, err
}
