package domain

import (
	"time"

	"github.com/lib/pq"
)

// Частичные обновления. Поле nil означает "не менять", а не "очистить".

// CommentPatch - обновление комментария. Пустой Email/Website очищает поле.
type CommentPatch struct {
	Name    *string `json:"name,omitempty"`
	Message *string `json:"message,omitempty"`
	Email   *string `json:"email,omitempty"`
	Website *string `json:"website,omitempty"`
}

// Apply применяет уже нормализованный патч и проставляет UpdatedAt.
func (p CommentPatch) Apply(c *Comment, now time.Time) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Message != nil {
		c.Message = *p.Message
	}
	if p.Email != nil {
		c.Email = optional(*p.Email)
	}
	if p.Website != nil {
		c.Website = optional(*p.Website)
	}
	c.UpdatedAt = &now
}

// CertificationPatch - обновление сертификата.
type CertificationPatch struct {
	Title        *string   `json:"title,omitempty"`
	Issuer       *string   `json:"issuer,omitempty"`
	Date         *string   `json:"date,omitempty"`
	CredentialID *string   `json:"credentialId,omitempty"`
	URL          *string   `json:"url,omitempty"`
	IconType     *string   `json:"iconType,omitempty"`
	Color        *string   `json:"color,omitempty"`
	GlowColor    *string   `json:"glowColor,omitempty"`
	Skills       *[]string `json:"skills,omitempty"`
}

func (p CertificationPatch) Apply(c *Certification) {
	set(&c.Title, p.Title)
	set(&c.Issuer, p.Issuer)
	set(&c.Date, p.Date)
	set(&c.CredentialID, p.CredentialID)
	setOptional(&c.URL, p.URL)
	set(&c.IconType, p.IconType)
	set(&c.Color, p.Color)
	set(&c.GlowColor, p.GlowColor)
	setList(&c.Skills, p.Skills)
}

// ExperiencePatch - обновление опыта.
type ExperiencePatch struct {
	Title            *string   `json:"title,omitempty"`
	Organization     *string   `json:"organization,omitempty"`
	Type             *string   `json:"type,omitempty"`
	Location         *string   `json:"location,omitempty"`
	StartDate        *string   `json:"startDate,omitempty"`
	EndDate          *string   `json:"endDate,omitempty"`
	IsCurrent        *bool     `json:"isCurrent,omitempty"`
	Description      *string   `json:"description,omitempty"`
	Responsibilities *[]string `json:"responsibilities,omitempty"`
	Achievements     *[]string `json:"achievements,omitempty"`
	Logo             *string   `json:"logo,omitempty"`
	Color            *string   `json:"color,omitempty"`
	Technologies     *[]string `json:"technologies,omitempty"`
}

func (p ExperiencePatch) Apply(e *Experience) {
	set(&e.Title, p.Title)
	set(&e.Organization, p.Organization)
	set(&e.Type, p.Type)
	set(&e.Location, p.Location)
	set(&e.StartDate, p.StartDate)
	setOptional(&e.EndDate, p.EndDate)
	if p.IsCurrent != nil {
		e.IsCurrent = *p.IsCurrent
	}
	set(&e.Description, p.Description)
	setList(&e.Responsibilities, p.Responsibilities)
	setList(&e.Achievements, p.Achievements)
	setOptional(&e.Logo, p.Logo)
	setOptional(&e.Color, p.Color)
	setList(&e.Technologies, p.Technologies)
}

// HackathonLinksPatch - ссылки сливаются по одной.
type HackathonLinksPatch struct {
	Github *string `json:"github,omitempty"`
	Demo   *string `json:"demo,omitempty"`
	Social *string `json:"social,omitempty"`
}

// HackathonPatch - обновление хакатона.
type HackathonPatch struct {
	Title       *string              `json:"title,omitempty"`
	Organizer   *string              `json:"organizer,omitempty"`
	Date        *string              `json:"date,omitempty"`
	Description *string              `json:"description,omitempty"`
	Thumbnail   *string              `json:"thumbnail,omitempty"`
	Gallery     *[]string            `json:"gallery,omitempty"`
	Tags        *[]string            `json:"tags,omitempty"`
	Links       *HackathonLinksPatch `json:"links,omitempty"`
}

func (p HackathonPatch) Apply(h *Hackathon) {
	set(&h.Title, p.Title)
	set(&h.Organizer, p.Organizer)
	set(&h.Date, p.Date)
	set(&h.Description, p.Description)
	set(&h.Thumbnail, p.Thumbnail)
	setList(&h.Gallery, p.Gallery)
	setList(&h.Tags, p.Tags)
	if p.Links != nil {
		setOptional(&h.Links.Github, p.Links.Github)
		setOptional(&h.Links.Demo, p.Links.Demo)
		setOptional(&h.Links.Social, p.Links.Social)
	}
}

// ProjectLinksPatch - ссылки сливаются по одной.
type ProjectLinksPatch struct {
	Github *string `json:"github,omitempty"`
	Demo   *string `json:"demo,omitempty"`
	Live   *string `json:"live,omitempty"`
}

// ProjectPatch - обновление проекта в каноничной форме
// (title/category/description/thumbnail/gallery/tags/date/links).
type ProjectPatch struct {
	Title       *string            `json:"title,omitempty"`
	Category    *string            `json:"category,omitempty"`
	Description *string            `json:"description,omitempty"`
	Thumbnail   *string            `json:"thumbnail,omitempty"`
	Gallery     *[]string          `json:"gallery,omitempty"`
	Tags        *[]string          `json:"tags,omitempty"`
	Date        *string            `json:"date,omitempty"`
	Links       *ProjectLinksPatch `json:"links,omitempty"`
}

func (p ProjectPatch) Apply(pr *Project) {
	set(&pr.Title, p.Title)
	set(&pr.Category, p.Category)
	set(&pr.Description, p.Description)
	set(&pr.Thumbnail, p.Thumbnail)
	setList(&pr.Gallery, p.Gallery)
	setList(&pr.Tags, p.Tags)
	set(&pr.Date, p.Date)
	if p.Links != nil {
		setOptional(&pr.Links.Github, p.Links.Github)
		setOptional(&pr.Links.Demo, p.Links.Demo)
		setOptional(&pr.Links.Live, p.Links.Live)
	}
}

// SkillPatch - обновление навыка.
type SkillPatch struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Img      *string `json:"img,omitempty"`
}

func (p SkillPatch) Apply(s *Skill) {
	set(&s.Name, p.Name)
	set(&s.Category, p.Category)
	set(&s.Img, p.Img)
}

// SocialLinkPatch - обновление ссылки на соцсеть.
type SocialLinkPatch struct {
	Platform *string `json:"platform,omitempty"`
	URL      *string `json:"url,omitempty"`
	Label    *string `json:"label,omitempty"`
	Color    *string `json:"color,omitempty"`
	Order    *int    `json:"order,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

func (p SocialLinkPatch) Apply(l *SocialLink) {
	set(&l.Platform, p.Platform)
	set(&l.URL, p.URL)
	set(&l.Label, p.Label)
	set(&l.Color, p.Color)
	set(&l.Order, p.Order)
	set(&l.IsActive, p.IsActive)
}

func set[V any](dst *V, v *V) {
	if v != nil {
		*dst = *v
	}
}

// setOptional: пустая строка очищает необязательное поле.
func setOptional(dst **string, v *string) {
	if v != nil {
		*dst = optional(*v)
	}
}

func setList(dst *pq.StringArray, v *[]string) {
	if v != nil {
		*dst = pq.StringArray(*v)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
