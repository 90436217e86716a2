// Package graph - GraphQL-интерфейс к модулям контента.
//
// Схема лежит в schema.graphql, резолверы сопоставляются с полями по имени.
package graph

import (
	"context"
	_ "embed"
	"errors"
	"net/http"

	"github.com/UkralStul/portfolio-content-service/internal/content"
	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/validation"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"
)

//go:embed schema.graphql
var schemaSDL string

// Resolver - корневой резолвер запросов и мутаций.
type Resolver struct {
	Service *content.Service
}

// NewSchema разбирает схему и связывает её с резолверами.
// Несовпадение схемы и резолверов - ошибка программы, поэтому Must.
func NewSchema(svc *content.Service) *graphql.Schema {
	return graphql.MustParseSchema(schemaSDL, &Resolver{Service: svc})
}

// Handler отдаёт POST /query в формате GraphQL over HTTP.
func Handler(svc *content.Service) http.Handler {
	return &relay.Handler{Schema: NewSchema(svc)}
}

// === Query ===

func (r *Resolver) Comments(ctx context.Context) ([]*commentResolver, error) {
	comments, err := r.Service.Comments.List(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return wrapAll(comments, newComment), nil
}

// Comment возвращает null для неизвестного id, а не ошибку.
func (r *Resolver) Comment(ctx context.Context, args struct{ ID graphql.ID }) (*commentResolver, error) {
	c, err := r.Service.Comments.Get(ctx, string(args.ID))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, wrap(err)
	}
	return newComment(c), nil
}

func (r *Resolver) CommentCount(ctx context.Context) (int32, error) {
	n, err := r.Service.Comments.Count(ctx)
	if err != nil {
		return 0, wrap(err)
	}
	return int32(n), nil
}

func (r *Resolver) Certifications(ctx context.Context) ([]*certificationResolver, error) {
	items, err := r.Service.Certifications.List(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return wrapAll(items, newCertification), nil
}

func (r *Resolver) Experiences(ctx context.Context) ([]*experienceResolver, error) {
	items, err := r.Service.Experiences.List(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return wrapAll(items, newExperience), nil
}

func (r *Resolver) Hackathons(ctx context.Context) ([]*hackathonResolver, error) {
	items, err := r.Service.Hackathons.List(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return wrapAll(items, newHackathon), nil
}

func (r *Resolver) Projects(ctx context.Context) ([]*projectResolver, error) {
	items, err := r.Service.Projects.List(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return wrapAll(items, newProject), nil
}

func (r *Resolver) Skills(ctx context.Context) ([]*skillResolver, error) {
	items, err := r.Service.Skills.List(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return wrapAll(items, newSkill), nil
}

func (r *Resolver) Hero(ctx context.Context) (*heroResolver, error) {
	h, err := r.Service.SiteContent.Hero(ctx)
	if err != nil || h == nil {
		return nil, wrap(err)
	}
	return &heroResolver{h}, nil
}

func (r *Resolver) About(ctx context.Context) (*aboutResolver, error) {
	a, err := r.Service.SiteContent.About(ctx)
	if err != nil || a == nil {
		return nil, wrap(err)
	}
	return &aboutResolver{a}, nil
}

// SocialLinks по умолчанию отдаёт только активные ссылки.
func (r *Resolver) SocialLinks(ctx context.Context, args struct{ All *bool }) ([]*socialLinkResolver, error) {
	list := r.Service.SiteContent.SocialLinks
	if args.All != nil && *args.All {
		list = r.Service.SiteContent.AllSocialLinks
	}
	links, err := list(ctx)
	if err != nil {
		return nil, wrap(err)
	}
	return wrapAll(links, newSocialLink), nil
}

// === Mutation ===

type newCommentInput struct {
	Name    string
	Message string
	Email   *string
	Website *string
}

type commentChangesInput struct {
	Name    *string
	Message *string
	Email   *string
	Website *string
}

func (r *Resolver) CreateComment(ctx context.Context, args struct{ Input newCommentInput }) (*commentResolver, error) {
	in := validation.CommentInput{
		Name:    args.Input.Name,
		Message: args.Input.Message,
		Email:   deref(args.Input.Email),
		Website: deref(args.Input.Website),
	}
	c, err := r.Service.Comments.Create(ctx, in)
	if err != nil {
		return nil, wrap(err)
	}
	return newComment(c), nil
}

func (r *Resolver) UpdateComment(ctx context.Context, args struct {
	ID    graphql.ID
	Input commentChangesInput
}) (*commentResolver, error) {
	c, err := r.Service.Comments.Update(ctx, string(args.ID), domain.CommentPatch{
		Name:    args.Input.Name,
		Message: args.Input.Message,
		Email:   args.Input.Email,
		Website: args.Input.Website,
	})
	if err != nil {
		return nil, wrap(err)
	}
	return newComment(c), nil
}

func (r *Resolver) ToggleCommentApproval(ctx context.Context, args struct{ ID graphql.ID }) (*commentResolver, error) {
	c, err := r.Service.Comments.ToggleApproval(ctx, string(args.ID))
	if err != nil {
		return nil, wrap(err)
	}
	return newComment(c), nil
}

func (r *Resolver) DeleteComment(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	if err := r.Service.Comments.Delete(ctx, string(args.ID)); err != nil {
		return false, wrap(err)
	}
	return true, nil
}

// === Ошибки ===

// resolverError добавляет к ошибке GraphQL код и поле.
type resolverError struct {
	err   error
	code  string
	field string
}

func (e *resolverError) Error() string { return e.err.Error() }

func (e *resolverError) Unwrap() error { return e.err }

func (e *resolverError) Extensions() map[string]interface{} {
	ext := map[string]interface{}{"code": e.code}
	if e.field != "" {
		ext["field"] = e.field
	}
	return ext
}

func wrap(err error) error {
	if err == nil {
		return nil
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return &resolverError{err: err, code: "BAD_USER_INPUT", field: ve.Field}
	}
	if errors.Is(err, domain.ErrNotFound) {
		return &resolverError{err: err, code: "NOT_FOUND"}
	}
	return err
}

func wrapAll[T any, R any](items []T, fn func(T) R) []R {
	out := make([]R, len(items))
	for i, it := range items {
		out[i] = fn(it)
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
