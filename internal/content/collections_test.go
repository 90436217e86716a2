package content

import (
	"context"
	"testing"
	"time"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_Idempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		want   int
		seed   func() (SeedResult, error)
		titles func(t *testing.T) []string
	}{
		{
			name: "certifications", want: 4,
			seed: func() (SeedResult, error) { return svc.Certifications.Seed(ctx) },
			titles: func(t *testing.T) []string {
				list, err := svc.Certifications.List(ctx)
				require.NoError(t, err)
				return collect(list, func(c *domain.Certification) string { return c.Title })
			},
		},
		{
			name: "experiences", want: 5,
			seed: func() (SeedResult, error) { return svc.Experiences.Seed(ctx) },
			titles: func(t *testing.T) []string {
				list, err := svc.Experiences.List(ctx)
				require.NoError(t, err)
				return collect(list, func(e *domain.Experience) string { return e.Title })
			},
		},
		{
			name: "hackathons", want: 6,
			seed: func() (SeedResult, error) { return svc.Hackathons.Seed(ctx) },
			titles: func(t *testing.T) []string {
				list, err := svc.Hackathons.List(ctx)
				require.NoError(t, err)
				return collect(list, func(h *domain.Hackathon) string { return h.Title })
			},
		},
		{
			name: "projects", want: 6,
			seed: func() (SeedResult, error) { return svc.Projects.Seed(ctx) },
			titles: func(t *testing.T) []string {
				list, err := svc.Projects.List(ctx)
				require.NoError(t, err)
				return collect(list, func(p *domain.Project) string { return p.Title })
			},
		},
		{
			name: "skills", want: 14,
			seed: func() (SeedResult, error) { return svc.Skills.Seed(ctx) },
			titles: func(t *testing.T) []string {
				list, err := svc.Skills.List(ctx)
				require.NoError(t, err)
				return collect(list, func(s *domain.Skill) string { return s.Name })
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			first, err := tt.seed()
			require.NoError(t, err)
			assert.Equal(t, tt.want, first.Inserted)
			firstTitles := tt.titles(t)
			require.Len(t, firstTitles, tt.want)

			second, err := tt.seed()
			require.NoError(t, err)
			assert.Equal(t, first, second)
			assert.Equal(t, firstTitles, tt.titles(t))
		})
	}
}

func TestSeed_RollsBackOnFailure(t *testing.T) {
	base, store := newTestService(t)
	ctx := context.Background()

	_, err := base.Skills.Seed(ctx)
	require.NoError(t, err)

	left := 3
	svc := New(failingStore{Storage: store, left: &left})
	_, err = svc.Skills.Seed(ctx)
	require.ErrorIs(t, err, errBoom)

	list, err := base.Skills.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 14, "failed seed must leave the previous content in place")
}

func TestCertifications_NewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Certifications.Seed(ctx)
	require.NoError(t, err)

	list, err := svc.Certifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "Certified Kubernetes Administrator", list[0].Title)
	assert.Equal(t, "AWS Certified Solutions Architect", list[3].Title)
}

func TestExperiences_OrderedByStartDateDesc(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, start := range []string{"2023-01", "2024-08", "2024-01"} {
		_, err := svc.Experiences.Create(ctx, &domain.Experience{
			Title:        "Role " + start,
			Organization: "Org",
			Type:         domain.ExperienceEmployment,
			StartDate:    start,
		})
		require.NoError(t, err)
	}

	list, err := svc.Experiences.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"2024-08", "2024-01", "2023-01"},
		collect(list, func(e *domain.Experience) string { return e.StartDate }))
}

func TestExperiences_EndLabel(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Experiences.Seed(ctx)
	require.NoError(t, err)

	list, err := svc.Experiences.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)

	// Первым идёт текущая позиция с самым поздним началом
	assert.True(t, list[0].IsCurrent)
	assert.Equal(t, "Present", list[0].EndLabel())
	assert.Equal(t, "2024-08", list[1].EndLabel())
}

func TestExperiences_UpdateRejectsInvalidResult(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	exp, err := svc.Experiences.Create(ctx, &domain.Experience{
		Title: "Dev", Organization: "Org", Type: domain.ExperienceInternship, StartDate: "2024-01",
	})
	require.NoError(t, err)

	_, err = svc.Experiences.Update(ctx, exp.ID, domain.ExperiencePatch{StartDate: strPtr("January")})
	assert.True(t, domain.IsValidation(err))

	got, err := svc.Experiences.Get(ctx, exp.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01", got.StartDate)

	isCurrent := true
	updated, err := svc.Experiences.Update(ctx, exp.ID, domain.ExperiencePatch{IsCurrent: &isCurrent, Location: strPtr("Remote")})
	require.NoError(t, err)
	assert.True(t, updated.IsCurrent)
	assert.Equal(t, "Remote", updated.Location)
	assert.Equal(t, "Dev", updated.Title)
}

func TestExperiences_BlankEndDateIsOmitted(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	exp, err := svc.Experiences.Create(ctx, &domain.Experience{
		Title: "Dev", Organization: "Org", Type: domain.ExperienceEmployment,
		StartDate: "2024-01", EndDate: strPtr(""), IsCurrent: true,
	})
	require.NoError(t, err)
	assert.Nil(t, exp.EndDate)
	assert.Equal(t, "Present", exp.EndLabel())

	// Патч с пустой строкой тоже очищает поле
	updated, err := svc.Experiences.Update(ctx, exp.ID, domain.ExperiencePatch{EndDate: strPtr("2024-06")})
	require.NoError(t, err)
	require.NotNil(t, updated.EndDate)
	cleared, err := svc.Experiences.Update(ctx, exp.ID, domain.ExperiencePatch{EndDate: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.EndDate)
}

func TestHackathons_OrderedByDateDesc(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Hackathons.Seed(ctx)
	require.NoError(t, err)

	list, err := svc.Hackathons.List(ctx)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"2024-03-15", "2024-02-20", "2024-01-25", "2023-11-08", "2023-09-20", "2023-05-10"},
		collect(list, func(h *domain.Hackathon) string { return h.Date }))
}

func TestHackathons_UpdateMergesLinks(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	h, err := svc.Hackathons.Create(ctx, &domain.Hackathon{
		Title: "Hack",
		Date:  "2024-03-15",
		Links: domain.HackathonLinks{Github: strPtr("gh"), Demo: strPtr("demo")},
	})
	require.NoError(t, err)

	updated, err := svc.Hackathons.Update(ctx, h.ID, domain.HackathonPatch{
		Links: &domain.HackathonLinksPatch{Demo: strPtr(""), Social: strPtr("social")},
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Links.Github)
	assert.Equal(t, "gh", *updated.Links.Github)
	assert.Nil(t, updated.Links.Demo)
	require.NotNil(t, updated.Links.Social)
	assert.Equal(t, "social", *updated.Links.Social)
}

func TestProjects_CreatedAtOrdering(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Projects.Seed(ctx)
	require.NoError(t, err)

	created, err := svc.Projects.Create(ctx, &domain.Project{
		Title:     "New Project",
		CreatedAt: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, created.CreatedAt.Year() > 2000, "createdAt is assigned by the service")

	for i := 0; i < 2; i++ {
		list, err := svc.Projects.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 7)
		assert.Equal(t, "New Project", list[0].Title)
		assert.Equal(t, "E-Commerce Platform", list[1].Title)
		assert.Equal(t, "Fitness Tracker", list[6].Title)
		for j := 1; j < len(list); j++ {
			assert.False(t, list[j].CreatedAt.After(list[j-1].CreatedAt))
		}
	}
}

func TestSkills_CRUD(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Skills.Create(ctx, &domain.Skill{Name: "Go", Category: "languages"})
	require.True(t, domain.IsValidation(err))

	sk, err := svc.Skills.Create(ctx, &domain.Skill{Name: "Go", Category: domain.SkillBackend, Img: "go.svg"})
	require.NoError(t, err)

	got, err := svc.Skills.Get(ctx, sk.ID)
	require.NoError(t, err)
	assert.Equal(t, "Go", got.Name)
	assert.Equal(t, domain.SkillBackend, got.Category)

	updated, err := svc.Skills.Update(ctx, sk.ID, domain.SkillPatch{Category: strPtr(domain.SkillTools)})
	require.NoError(t, err)
	assert.Equal(t, domain.SkillTools, updated.Category)
	assert.Equal(t, "go.svg", updated.Img)

	require.NoError(t, svc.Skills.Delete(ctx, sk.ID))
	_, err = svc.Skills.Get(ctx, sk.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Skills.Delete(ctx, sk.ID), domain.ErrNotFound)
	_, err = svc.Skills.Update(ctx, sk.ID, domain.SkillPatch{Name: strPtr("Go")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_SeedAndClearByName(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	total := 0
	for _, name := range Seedable {
		n, err := svc.Seed(ctx, name)
		require.NoError(t, err)
		total += n
	}
	assert.Equal(t, 4+5+6+6+14+7, total)

	n, err := svc.Clear(ctx, "skills")
	require.NoError(t, err)
	assert.Equal(t, 14, n)

	n, err = svc.Clear(ctx, SiteCollection)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	_, err = svc.Seed(ctx, "comments")
	assert.Error(t, err)
	_, err = svc.Clear(ctx, "unknown")
	assert.Error(t, err)
}

func TestService_PublishesChanges(t *testing.T) {
	broker := events.NewBroker()
	svc, _ := newTestService(t, WithBroker(broker))
	ctx := context.Background()

	changes, unsubscribe := broker.Subscribe("skills")
	defer unsubscribe()

	sk, err := svc.Skills.Create(ctx, &domain.Skill{Name: "Go", Category: domain.SkillBackend})
	require.NoError(t, err)
	require.NoError(t, svc.Skills.Delete(ctx, sk.ID))
	_, err = svc.Skills.Seed(ctx)
	require.NoError(t, err)

	// Неудачная операция ничего не публикует
	_, err = svc.Skills.Create(ctx, &domain.Skill{Name: "Go", Category: "bad"})
	require.Error(t, err)

	assert.Equal(t, events.Change{Collection: "skills", Op: events.OpCreate, ID: sk.ID}, <-changes)
	assert.Equal(t, events.Change{Collection: "skills", Op: events.OpDelete, ID: sk.ID}, <-changes)
	assert.Equal(t, events.Change{Collection: "skills", Op: events.OpSeed}, <-changes)
	assert.Len(t, changes, 0)
}

func TestService_ExplicitStorage(t *testing.T) {
	// Модули работают через переданное хранилище, а не через глобальное состояние
	svc, store := newTestService(t)
	ctx := context.Background()

	_, err := store.Skills().Insert(ctx, &domain.Skill{Name: "Direct", Category: domain.SkillTools})
	require.NoError(t, err)

	list, err := svc.Skills.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Direct", list[0].Name)
}

func collect[T any](list []T, fn func(T) string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, fn(v))
	}
	return out
}
