package content

import (
	"context"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/schema"
	"github.com/UkralStul/portfolio-content-service/internal/storage"
)

// Skills - навыки. Порядок - порядок добавления.
type Skills struct{ *module }

func (s *Skills) List(ctx context.Context) ([]*domain.Skill, error) {
	return s.store.Skills().List(ctx, storage.Query{})
}

func (s *Skills) Get(ctx context.Context, id string) (*domain.Skill, error) {
	return s.store.Skills().Get(ctx, id)
}

func (s *Skills) Create(ctx context.Context, sk *domain.Skill) (*domain.Skill, error) {
	return create(ctx, s.module, s.store.Skills(), schema.Skills.Name, sk)
}

func (s *Skills) Update(ctx context.Context, id string, patch domain.SkillPatch) (*domain.Skill, error) {
	return update(ctx, s.module, s.store.Skills(), schema.Skills.Name, id, patch.Apply)
}

func (s *Skills) Delete(ctx context.Context, id string) error {
	return remove(ctx, s.module, s.store.Skills(), schema.Skills.Name, id)
}

func (s *Skills) Clear(ctx context.Context) (ClearResult, error) {
	return clearAll(ctx, s.module, s.store.Skills(), schema.Skills.Name)
}

func (s *Skills) Seed(ctx context.Context) (SeedResult, error) {
	return seed(ctx, s.module, storage.Storage.Skills, schema.Skills.Name, skillFixtures())
}
