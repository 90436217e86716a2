package content

import (
	"context"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/events"
	"github.com/UkralStul/portfolio-content-service/internal/schema"
	"github.com/UkralStul/portfolio-content-service/internal/storage"
)

// SiteContent - шапка, блок "обо мне" и ссылки на соцсети.
type SiteContent struct{ *module }

// SiteSeedResult - сколько записей создал сид по каждой коллекции.
type SiteSeedResult struct {
	Hero        int `json:"hero"`
	About       int `json:"about"`
	SocialLinks int `json:"socialLinks"`
}

var active = schema.Eq{Field: "isActive", Value: true}

// Hero возвращает первую запись шапки или nil, если её нет.
func (s *SiteContent) Hero(ctx context.Context) (*domain.HeroContent, error) {
	list, err := s.store.HeroContent().List(ctx, storage.Query{Limit: 1})
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

// About возвращает первую запись блока "обо мне" или nil.
func (s *SiteContent) About(ctx context.Context) (*domain.AboutContent, error) {
	list, err := s.store.AboutContent().List(ctx, storage.Query{Limit: 1})
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return list[0], nil
}

// SocialLinks возвращает активные ссылки по возрастанию order.
func (s *SiteContent) SocialLinks(ctx context.Context) ([]*domain.SocialLink, error) {
	return s.store.SocialLinks().List(ctx, storage.Query{
		Index: schema.ByOrder,
		Where: []schema.Eq{active},
	})
}

// AllSocialLinks - то же, включая неактивные.
func (s *SiteContent) AllSocialLinks(ctx context.Context) ([]*domain.SocialLink, error) {
	return s.store.SocialLinks().List(ctx, storage.Query{Index: schema.ByOrder})
}

func (s *SiteContent) GetSocialLink(ctx context.Context, id string) (*domain.SocialLink, error) {
	return s.store.SocialLinks().Get(ctx, id)
}

func (s *SiteContent) CreateSocialLink(ctx context.Context, l *domain.SocialLink) (*domain.SocialLink, error) {
	return create(ctx, s.module, s.store.SocialLinks(), schema.SocialLinks.Name, l)
}

func (s *SiteContent) UpdateSocialLink(ctx context.Context, id string, patch domain.SocialLinkPatch) (*domain.SocialLink, error) {
	return update(ctx, s.module, s.store.SocialLinks(), schema.SocialLinks.Name, id, patch.Apply)
}

func (s *SiteContent) DeleteSocialLink(ctx context.Context, id string) error {
	return remove(ctx, s.module, s.store.SocialLinks(), schema.SocialLinks.Name, id)
}

// Seed пересоздаёт все три коллекции в одной транзакции.
func (s *SiteContent) Seed(ctx context.Context) (SiteSeedResult, error) {
	hero, about, links := heroFixtures(), aboutFixtures(), socialLinkFixtures()

	err := s.store.Transaction(ctx, func(tx storage.Storage) error {
		if err := replace(ctx, tx.HeroContent(), hero); err != nil {
			return err
		}
		if err := replace(ctx, tx.AboutContent(), about); err != nil {
			return err
		}
		return replace(ctx, tx.SocialLinks(), links)
	})
	if err != nil {
		return SiteSeedResult{}, err
	}

	for _, name := range []string{schema.HeroContent.Name, schema.AboutContent.Name, schema.SocialLinks.Name} {
		s.publish(name, events.OpSeed, "")
	}
	return SiteSeedResult{Hero: len(hero), About: len(about), SocialLinks: len(links)}, nil
}

// Clear удаляет шапку, "обо мне" и все ссылки.
func (s *SiteContent) Clear(ctx context.Context) (ClearResult, error) {
	var total int
	err := s.store.Transaction(ctx, func(tx storage.Storage) error {
		for _, clearFn := range []func(context.Context) (int, error){
			tx.HeroContent().Clear,
			tx.AboutContent().Clear,
			tx.SocialLinks().Clear,
		} {
			n, err := clearFn(ctx)
			if err != nil {
				return err
			}
			total += n
		}
		return nil
	})
	if err != nil {
		return ClearResult{}, err
	}
	for _, name := range []string{schema.HeroContent.Name, schema.AboutContent.Name, schema.SocialLinks.Name} {
		s.publish(name, events.OpClear, "")
	}
	return ClearResult{Deleted: total}, nil
}
