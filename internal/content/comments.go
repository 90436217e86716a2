package content

import (
	"context"
	"sort"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/events"
	"github.com/UkralStul/portfolio-content-service/internal/schema"
	"github.com/UkralStul/portfolio-content-service/internal/storage"
	"github.com/UkralStul/portfolio-content-service/internal/validation"
)

// Comments - гостевая книга.
type Comments struct{ *module }

var approved = schema.Eq{Field: "isApproved", Value: true}

// List возвращает одобренные комментарии, новые первыми.
func (c *Comments) List(ctx context.Context) ([]*domain.Comment, error) {
	comments, err := c.store.Comments().List(ctx, storage.Query{
		Index: schema.ByIsApproved,
		Where: []schema.Eq{approved},
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

// Count возвращает число одобренных комментариев.
func (c *Comments) Count(ctx context.Context) (int, error) {
	return c.store.Comments().Count(ctx, approved)
}

func (c *Comments) Get(ctx context.Context, id string) (*domain.Comment, error) {
	return c.store.Comments().Get(ctx, id)
}

// Create проверяет и сохраняет новый комментарий. Комментарий сразу одобрен.
func (c *Comments) Create(ctx context.Context, in validation.CommentInput) (*domain.Comment, error) {
	in = validation.NormalizeComment(in)
	if err := validation.Comment(in); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		Name:       in.Name,
		Message:    in.Message,
		IsApproved: true,
		CreatedAt:  c.now(),
	}
	if in.Email != "" {
		comment.Email = &in.Email
	}
	if in.Website != "" {
		comment.Website = &in.Website
	}

	created, err := c.store.Comments().Insert(ctx, comment)
	if err != nil {
		return nil, err
	}
	c.publish(schema.Comments.Name, events.OpCreate, created.ID)
	return created, nil
}

// Update меняет только переданные поля и проверяет только их.
func (c *Comments) Update(ctx context.Context, id string, patch domain.CommentPatch) (*domain.Comment, error) {
	// Сначала существование: несуществующий id - это NotFound, даже при плохом вводе.
	if _, err := c.store.Comments().Get(ctx, id); err != nil {
		return nil, err
	}
	patch, err := validation.CommentPatch(patch)
	if err != nil {
		return nil, err
	}
	updated, err := c.store.Comments().Update(ctx, id, func(cm *domain.Comment) error {
		patch.Apply(cm, c.now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.publish(schema.Comments.Name, events.OpUpdate, id)
	return updated, nil
}

// ToggleApproval переключает модерацию комментария.
func (c *Comments) ToggleApproval(ctx context.Context, id string) (*domain.Comment, error) {
	updated, err := c.store.Comments().Update(ctx, id, func(cm *domain.Comment) error {
		now := c.now()
		cm.IsApproved = !cm.IsApproved
		cm.UpdatedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.publish(schema.Comments.Name, events.OpUpdate, id)
	return updated, nil
}

func (c *Comments) Delete(ctx context.Context, id string) error {
	return remove(ctx, c.module, c.store.Comments(), schema.Comments.Name, id)
}

// Clear удаляет все комментарии.
func (c *Comments) Clear(ctx context.Context) (ClearResult, error) {
	return clearAll(ctx, c.module, c.store.Comments(), schema.Comments.Name)
}
