package graph

import (
	"time"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/graph-gophers/graphql-go"
)

// Резолверы объектов: тонкие обёртки над записями domain.

func formatTime(t time.Time) string { return t.UTC().Format(time.RFC3339) }

// === Comment ===

type commentResolver struct{ c *domain.Comment }

func newComment(c *domain.Comment) *commentResolver { return &commentResolver{c} }

func (r *commentResolver) ID() graphql.ID    { return graphql.ID(r.c.ID) }
func (r *commentResolver) Name() string      { return r.c.Name }
func (r *commentResolver) Message() string   { return r.c.Message }
func (r *commentResolver) Email() *string    { return r.c.Email }
func (r *commentResolver) Website() *string  { return r.c.Website }
func (r *commentResolver) IsApproved() bool  { return r.c.IsApproved }
func (r *commentResolver) CreatedAt() string { return formatTime(r.c.CreatedAt) }

func (r *commentResolver) UpdatedAt() *string {
	if r.c.UpdatedAt == nil {
		return nil
	}
	s := formatTime(*r.c.UpdatedAt)
	return &s
}

// === Certification ===

type certificationResolver struct{ c *domain.Certification }

func newCertification(c *domain.Certification) *certificationResolver {
	return &certificationResolver{c}
}

func (r *certificationResolver) ID() graphql.ID       { return graphql.ID(r.c.ID) }
func (r *certificationResolver) Title() string        { return r.c.Title }
func (r *certificationResolver) Issuer() string       { return r.c.Issuer }
func (r *certificationResolver) Date() string         { return r.c.Date }
func (r *certificationResolver) CredentialID() string { return r.c.CredentialID }
func (r *certificationResolver) URL() *string         { return r.c.URL }
func (r *certificationResolver) IconType() string     { return r.c.IconType }
func (r *certificationResolver) Color() string        { return r.c.Color }
func (r *certificationResolver) GlowColor() string    { return r.c.GlowColor }
func (r *certificationResolver) Skills() []string     { return r.c.Skills }

// === Experience ===

type experienceResolver struct{ e *domain.Experience }

func newExperience(e *domain.Experience) *experienceResolver { return &experienceResolver{e} }

func (r *experienceResolver) ID() graphql.ID             { return graphql.ID(r.e.ID) }
func (r *experienceResolver) Title() string              { return r.e.Title }
func (r *experienceResolver) Organization() string       { return r.e.Organization }
func (r *experienceResolver) Type() string               { return r.e.Type }
func (r *experienceResolver) Location() string           { return r.e.Location }
func (r *experienceResolver) StartDate() string          { return r.e.StartDate }
func (r *experienceResolver) EndDate() *string           { return r.e.EndDate }
func (r *experienceResolver) EndLabel() string           { return r.e.EndLabel() }
func (r *experienceResolver) IsCurrent() bool            { return r.e.IsCurrent }
func (r *experienceResolver) Description() string        { return r.e.Description }
func (r *experienceResolver) Responsibilities() []string { return r.e.Responsibilities }
func (r *experienceResolver) Achievements() []string     { return r.e.Achievements }
func (r *experienceResolver) Technologies() []string     { return r.e.Technologies }
func (r *experienceResolver) Logo() *string              { return r.e.Logo }
func (r *experienceResolver) Color() *string             { return r.e.Color }

// === Hackathon ===

type hackathonResolver struct{ h *domain.Hackathon }

func newHackathon(h *domain.Hackathon) *hackathonResolver { return &hackathonResolver{h} }

func (r *hackathonResolver) ID() graphql.ID      { return graphql.ID(r.h.ID) }
func (r *hackathonResolver) Title() string       { return r.h.Title }
func (r *hackathonResolver) Organizer() string   { return r.h.Organizer }
func (r *hackathonResolver) Date() string        { return r.h.Date }
func (r *hackathonResolver) Description() string { return r.h.Description }
func (r *hackathonResolver) Thumbnail() string   { return r.h.Thumbnail }
func (r *hackathonResolver) Gallery() []string   { return r.h.Gallery }
func (r *hackathonResolver) Tags() []string      { return r.h.Tags }

func (r *hackathonResolver) Links() *hackathonLinksResolver {
	return &hackathonLinksResolver{r.h.Links}
}

type hackathonLinksResolver struct{ l domain.HackathonLinks }

func (r *hackathonLinksResolver) Github() *string { return r.l.Github }
func (r *hackathonLinksResolver) Demo() *string   { return r.l.Demo }
func (r *hackathonLinksResolver) Social() *string { return r.l.Social }

// === Project ===

type projectResolver struct{ p *domain.Project }

func newProject(p *domain.Project) *projectResolver { return &projectResolver{p} }

func (r *projectResolver) ID() graphql.ID      { return graphql.ID(r.p.ID) }
func (r *projectResolver) Title() string       { return r.p.Title }
func (r *projectResolver) Category() string    { return r.p.Category }
func (r *projectResolver) Description() string { return r.p.Description }
func (r *projectResolver) Thumbnail() string   { return r.p.Thumbnail }
func (r *projectResolver) Gallery() []string   { return r.p.Gallery }
func (r *projectResolver) Tags() []string      { return r.p.Tags }
func (r *projectResolver) Date() string        { return r.p.Date }
func (r *projectResolver) CreatedAt() string   { return formatTime(r.p.CreatedAt) }

func (r *projectResolver) Links() *projectLinksResolver {
	return &projectLinksResolver{r.p.Links}
}

type projectLinksResolver struct{ l domain.ProjectLinks }

func (r *projectLinksResolver) Github() *string { return r.l.Github }
func (r *projectLinksResolver) Demo() *string   { return r.l.Demo }
func (r *projectLinksResolver) Live() *string   { return r.l.Live }

// === Skill ===

type skillResolver struct{ s *domain.Skill }

func newSkill(s *domain.Skill) *skillResolver { return &skillResolver{s} }

func (r *skillResolver) ID() graphql.ID   { return graphql.ID(r.s.ID) }
func (r *skillResolver) Name() string     { return r.s.Name }
func (r *skillResolver) Category() string { return r.s.Category }
func (r *skillResolver) Img() string      { return r.s.Img }

// === Site content ===

type heroResolver struct{ h *domain.HeroContent }

func (r *heroResolver) ID() graphql.ID      { return graphql.ID(r.h.ID) }
func (r *heroResolver) Title() string       { return r.h.Title }
func (r *heroResolver) Subtitle() string    { return r.h.Subtitle }
func (r *heroResolver) Description() string { return r.h.Description }
func (r *heroResolver) Roles() []string     { return r.h.Roles }

type aboutResolver struct{ a *domain.AboutContent }

func (r *aboutResolver) ID() graphql.ID   { return graphql.ID(r.a.ID) }
func (r *aboutResolver) Title() string    { return r.a.Title }
func (r *aboutResolver) Subtitle() string { return r.a.Subtitle }
func (r *aboutResolver) Bio() []string    { return r.a.Bio }

func (r *aboutResolver) Stats() *statsResolver {
	return &statsResolver{r.a.Stats}
}

type statsResolver struct{ s domain.AboutStats }

func (r *statsResolver) YearsExperience() int32   { return int32(r.s.YearsExperience) }
func (r *statsResolver) ProjectsCompleted() int32 { return int32(r.s.ProjectsCompleted) }
func (r *statsResolver) Technologies() int32      { return int32(r.s.Technologies) }
func (r *statsResolver) Certifications() int32    { return int32(r.s.Certifications) }

type socialLinkResolver struct{ l *domain.SocialLink }

func newSocialLink(l *domain.SocialLink) *socialLinkResolver { return &socialLinkResolver{l} }

func (r *socialLinkResolver) ID() graphql.ID   { return graphql.ID(r.l.ID) }
func (r *socialLinkResolver) Platform() string { return r.l.Platform }
func (r *socialLinkResolver) URL() string      { return r.l.URL }
func (r *socialLinkResolver) Label() string    { return r.l.Label }
func (r *socialLinkResolver) Color() string    { return r.l.Color }
func (r *socialLinkResolver) Order() int32     { return int32(r.l.Order) }
func (r *socialLinkResolver) IsActive() bool   { return r.l.IsActive }
