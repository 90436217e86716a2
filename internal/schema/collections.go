package schema

import (
	"slices"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
)

// Имена индексов.
const (
	ByCreatedAt  = "by_createdAt"
	ByIsApproved = "by_isApproved"
	ByStartDate  = "by_startDate"
	ByDate       = "by_date"
	ByOrder      = "by_order"
)

var Comments = &Collection[*domain.Comment]{
	Name:  "comments",
	New:   func() *domain.Comment { return &domain.Comment{} },
	Clone: func(c *domain.Comment) *domain.Comment {
		cp := *c
		cp.Email = clonePtr(c.Email)
		cp.Website = clonePtr(c.Website)
		cp.UpdatedAt = clonePtr(c.UpdatedAt)
		return &cp
	},
	Fields: map[string]Field[*domain.Comment]{
		"createdAt":  {Key: "createdAt", Column: "created_at", Value: func(c *domain.Comment) any { return c.CreatedAt }},
		"isApproved": {Key: "isApproved", Column: "is_approved", Value: func(c *domain.Comment) any { return c.IsApproved }},
	},
	Indexes: map[string]Index{
		ByCreatedAt:  {Name: ByCreatedAt, Fields: []string{"createdAt"}},
		ByIsApproved: {Name: ByIsApproved, Fields: []string{"isApproved"}},
	},
}

var Certifications = &Collection[*domain.Certification]{
	Name:  "certifications",
	New:   func() *domain.Certification { return &domain.Certification{} },
	Clone: func(c *domain.Certification) *domain.Certification {
		cp := *c
		cp.URL = clonePtr(c.URL)
		cp.Skills = slices.Clone(c.Skills)
		return &cp
	},
}

var Experiences = &Collection[*domain.Experience]{
	Name:  "experiences",
	New:   func() *domain.Experience { return &domain.Experience{} },
	Clone: func(e *domain.Experience) *domain.Experience {
		cp := *e
		cp.Responsibilities = slices.Clone(e.Responsibilities)
		cp.Achievements = slices.Clone(e.Achievements)
		cp.Technologies = slices.Clone(e.Technologies)
		cp.EndDate = clonePtr(e.EndDate)
		cp.Logo = clonePtr(e.Logo)
		cp.Color = clonePtr(e.Color)
		return &cp
	},
	Fields: map[string]Field[*domain.Experience]{
		"startDate": {Key: "startDate", Column: "start_date", Value: func(e *domain.Experience) any { return e.StartDate }},
	},
	Indexes: map[string]Index{
		ByStartDate: {Name: ByStartDate, Fields: []string{"startDate"}},
	},
}

var Hackathons = &Collection[*domain.Hackathon]{
	Name:  "hackathons",
	New:   func() *domain.Hackathon { return &domain.Hackathon{} },
	Clone: func(h *domain.Hackathon) *domain.Hackathon {
		cp := *h
		cp.Gallery = slices.Clone(h.Gallery)
		cp.Tags = slices.Clone(h.Tags)
		cp.Links = domain.HackathonLinks{
			Github: clonePtr(h.Links.Github),
			Demo:   clonePtr(h.Links.Demo),
			Social: clonePtr(h.Links.Social),
		}
		return &cp
	},
	Fields: map[string]Field[*domain.Hackathon]{
		"date": {Key: "date", Column: "date", Value: func(h *domain.Hackathon) any { return h.Date }},
	},
	Indexes: map[string]Index{
		ByDate: {Name: ByDate, Fields: []string{"date"}},
	},
}

var Projects = &Collection[*domain.Project]{
	Name:  "projects",
	New:   func() *domain.Project { return &domain.Project{} },
	Clone: func(p *domain.Project) *domain.Project {
		cp := *p
		cp.Gallery = slices.Clone(p.Gallery)
		cp.Tags = slices.Clone(p.Tags)
		cp.Links = domain.ProjectLinks{
			Github: clonePtr(p.Links.Github),
			Demo:   clonePtr(p.Links.Demo),
			Live:   clonePtr(p.Links.Live),
		}
		return &cp
	},
	Fields: map[string]Field[*domain.Project]{
		"createdAt": {Key: "createdAt", Column: "created_at", Value: func(p *domain.Project) any { return p.CreatedAt }},
	},
	Indexes: map[string]Index{
		ByCreatedAt: {Name: ByCreatedAt, Fields: []string{"createdAt"}},
	},
}

var Skills = &Collection[*domain.Skill]{
	Name:  "skills",
	New:   func() *domain.Skill { return &domain.Skill{} },
	Clone: clone[domain.Skill],
}

var HeroContent = &Collection[*domain.HeroContent]{
	Name:  "hero_content",
	New:   func() *domain.HeroContent { return &domain.HeroContent{} },
	Clone: func(h *domain.HeroContent) *domain.HeroContent {
		cp := *h
		cp.Roles = slices.Clone(h.Roles)
		return &cp
	},
}

var AboutContent = &Collection[*domain.AboutContent]{
	Name:  "about_content",
	New:   func() *domain.AboutContent { return &domain.AboutContent{} },
	Clone: func(a *domain.AboutContent) *domain.AboutContent {
		cp := *a
		cp.Bio = slices.Clone(a.Bio)
		return &cp
	},
}

var SocialLinks = &Collection[*domain.SocialLink]{
	Name:  "social_links",
	New:   func() *domain.SocialLink { return &domain.SocialLink{} },
	Clone: clone[domain.SocialLink],
	Fields: map[string]Field[*domain.SocialLink]{
		"order":    {Key: "order", Column: "order", Value: func(l *domain.SocialLink) any { return l.Order }},
		"isActive": {Key: "isActive", Column: "is_active", Value: func(l *domain.SocialLink) any { return l.IsActive }},
	},
	Indexes: map[string]Index{
		ByOrder: {Name: ByOrder, Fields: []string{"order"}},
	},
}

// Names - имена всех коллекций в порядке объявления.
var Names = []string{
	Comments.Name,
	Certifications.Name,
	Experiences.Name,
	Hackathons.Name,
	Projects.Name,
	Skills.Name,
	HeroContent.Name,
	AboutContent.Name,
	SocialLinks.Name,
}
