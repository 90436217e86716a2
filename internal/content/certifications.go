package content

import (
	"context"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/schema"
	"github.com/UkralStul/portfolio-content-service/internal/storage"
)

// Certifications - сертификаты.
type Certifications struct{ *module }

// List возвращает сертификаты в обратном порядке добавления.
func (c *Certifications) List(ctx context.Context) ([]*domain.Certification, error) {
	return c.store.Certifications().List(ctx, storage.Query{Desc: true})
}

func (c *Certifications) Get(ctx context.Context, id string) (*domain.Certification, error) {
	return c.store.Certifications().Get(ctx, id)
}

func (c *Certifications) Create(ctx context.Context, cert *domain.Certification) (*domain.Certification, error) {
	return create(ctx, c.module, c.store.Certifications(), schema.Certifications.Name, cert)
}

func (c *Certifications) Update(ctx context.Context, id string, patch domain.CertificationPatch) (*domain.Certification, error) {
	return update(ctx, c.module, c.store.Certifications(), schema.Certifications.Name, id, patch.Apply)
}

func (c *Certifications) Delete(ctx context.Context, id string) error {
	return remove(ctx, c.module, c.store.Certifications(), schema.Certifications.Name, id)
}

func (c *Certifications) Clear(ctx context.Context) (ClearResult, error) {
	return clearAll(ctx, c.module, c.store.Certifications(), schema.Certifications.Name)
}

// Seed заменяет содержимое коллекции демонстрационными сертификатами.
func (c *Certifications) Seed(ctx context.Context) (SeedResult, error) {
	return seed(ctx, c.module, storage.Storage.Certifications, schema.Certifications.Name, certificationFixtures())
}
