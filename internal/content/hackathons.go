package content

import (
	"context"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/schema"
	"github.com/UkralStul/portfolio-content-service/internal/storage"
)

// Hackathons - участие в хакатонах.
type Hackathons struct{ *module }

// List возвращает хакатоны по дате, новые первыми.
func (h *Hackathons) List(ctx context.Context) ([]*domain.Hackathon, error) {
	return h.store.Hackathons().List(ctx, storage.Query{Index: schema.ByDate, Desc: true})
}

func (h *Hackathons) Get(ctx context.Context, id string) (*domain.Hackathon, error) {
	return h.store.Hackathons().Get(ctx, id)
}

func (h *Hackathons) Create(ctx context.Context, hk *domain.Hackathon) (*domain.Hackathon, error) {
	return create(ctx, h.module, h.store.Hackathons(), schema.Hackathons.Name, hk)
}

func (h *Hackathons) Update(ctx context.Context, id string, patch domain.HackathonPatch) (*domain.Hackathon, error) {
	return update(ctx, h.module, h.store.Hackathons(), schema.Hackathons.Name, id, patch.Apply)
}

func (h *Hackathons) Delete(ctx context.Context, id string) error {
	return remove(ctx, h.module, h.store.Hackathons(), schema.Hackathons.Name, id)
}

func (h *Hackathons) Clear(ctx context.Context) (ClearResult, error) {
	return clearAll(ctx, h.module, h.store.Hackathons(), schema.Hackathons.Name)
}

func (h *Hackathons) Seed(ctx context.Context) (SeedResult, error) {
	return seed(ctx, h.module, storage.Storage.Hackathons, schema.Hackathons.Name, hackathonFixtures())
}
