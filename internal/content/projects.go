package content

import (
	"context"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/schema"
	"github.com/UkralStul/portfolio-content-service/internal/storage"
)

// Projects - проекты портфолио.
type Projects struct{ *module }

// List возвращает проекты по createdAt, новые первыми.
func (p *Projects) List(ctx context.Context) ([]*domain.Project, error) {
	return p.store.Projects().List(ctx, storage.Query{Index: schema.ByCreatedAt, Desc: true})
}

func (p *Projects) Get(ctx context.Context, id string) (*domain.Project, error) {
	return p.store.Projects().Get(ctx, id)
}

// Create проставляет createdAt текущим временем, переданное значение игнорируется.
func (p *Projects) Create(ctx context.Context, pr *domain.Project) (*domain.Project, error) {
	pr.CreatedAt = p.now()
	return create(ctx, p.module, p.store.Projects(), schema.Projects.Name, pr)
}

func (p *Projects) Update(ctx context.Context, id string, patch domain.ProjectPatch) (*domain.Project, error) {
	return update(ctx, p.module, p.store.Projects(), schema.Projects.Name, id, patch.Apply)
}

func (p *Projects) Delete(ctx context.Context, id string) error {
	return remove(ctx, p.module, p.store.Projects(), schema.Projects.Name, id)
}

func (p *Projects) Clear(ctx context.Context) (ClearResult, error) {
	return clearAll(ctx, p.module, p.store.Projects(), schema.Projects.Name)
}

func (p *Projects) Seed(ctx context.Context) (SeedResult, error) {
	return seed(ctx, p.module, storage.Storage.Projects, schema.Projects.Name, projectFixtures(p.now()))
}
