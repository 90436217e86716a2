package content

import (
	"context"
	"slices"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/schema"
	"github.com/UkralStul/portfolio-content-service/internal/storage"
)

// Experiences - опыт работы и участия в организациях.
type Experiences struct{ *module }

// List возвращает опыт от самого позднего начала к раннему.
// Индекс отдаёт возрастающий порядок, разворачиваем его в памяти.
func (e *Experiences) List(ctx context.Context) ([]*domain.Experience, error) {
	list, err := e.store.Experiences().List(ctx, storage.Query{Index: schema.ByStartDate})
	if err != nil {
		return nil, err
	}
	slices.Reverse(list)
	return list, nil
}

func (e *Experiences) Get(ctx context.Context, id string) (*domain.Experience, error) {
	return e.store.Experiences().Get(ctx, id)
}

func (e *Experiences) Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	exp.Normalize()
	return create(ctx, e.module, e.store.Experiences(), schema.Experiences.Name, exp)
}

func (e *Experiences) Update(ctx context.Context, id string, patch domain.ExperiencePatch) (*domain.Experience, error) {
	return update(ctx, e.module, e.store.Experiences(), schema.Experiences.Name, id, patch.Apply)
}

func (e *Experiences) Delete(ctx context.Context, id string) error {
	return remove(ctx, e.module, e.store.Experiences(), schema.Experiences.Name, id)
}

func (e *Experiences) Clear(ctx context.Context) (ClearResult, error) {
	return clearAll(ctx, e.module, e.store.Experiences(), schema.Experiences.Name)
}

func (e *Experiences) Seed(ctx context.Context) (SeedResult, error) {
	return seed(ctx, e.module, storage.Storage.Experiences, schema.Experiences.Name, experienceFixtures())
}
