package inmemory

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/schema"
	"github.com/UkralStul/portfolio-content-service/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertSkills(t *testing.T, s *Store, names ...string) []*domain.Skill {
	t.Helper()
	ctx := context.Background()
	var out []*domain.Skill
	for _, n := range names {
		sk, err := s.Skills().Insert(ctx, &domain.Skill{Name: n, Category: domain.SkillTools})
		require.NoError(t, err)
		out = append(out, sk)
	}
	return out
}

func TestStore_InsertAndGet(t *testing.T) {
	store := New()
	ctx := context.Background()

	sk := insertSkills(t, store, "Git")[0]
	assert.NotEmpty(t, sk.ID)
	assert.False(t, sk.CreationTime.IsZero())

	got, err := store.Skills().Get(ctx, sk.ID)
	require.NoError(t, err)
	assert.Equal(t, "Git", got.Name)

	_, err = store.Skills().Get(ctx, "non-existent-id")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := New()
	ctx := context.Background()

	sk := insertSkills(t, store, "Git")[0]

	// Изменение возвращённой записи не должно менять хранилище
	sk.Name = "changed"
	got, err := store.Skills().Get(ctx, sk.ID)
	require.NoError(t, err)
	assert.Equal(t, "Git", got.Name)

	got.Name = "changed again"
	again, err := store.Skills().Get(ctx, sk.ID)
	require.NoError(t, err)
	assert.Equal(t, "Git", again.Name)
}

func TestStore_ReturnsCopiesOfPointerFields(t *testing.T) {
	store := New()
	ctx := context.Background()

	email := "guest@example.com"
	c, err := store.Comments().Insert(ctx, &domain.Comment{Name: "Guest", Message: "Hello there", Email: &email})
	require.NoError(t, err)

	got, err := store.Comments().Get(ctx, c.ID)
	require.NoError(t, err)
	*got.Email = "other@example.com"

	again, err := store.Comments().Get(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, again.Email)
	assert.Equal(t, "guest@example.com", *again.Email)
}

func TestStore_ListInsertionOrder(t *testing.T) {
	store := New()
	ctx := context.Background()
	insertSkills(t, store, "a", "b", "c")

	asc, err := store.Skills().List(ctx, storage.Query{})
	require.NoError(t, err)
	require.Len(t, asc, 3)
	assert.Equal(t, []string{"a", "b", "c"}, skillNames(asc))

	desc, err := store.Skills().List(ctx, storage.Query{Desc: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, skillNames(desc))

	limited, err := store.Skills().List(ctx, storage.Query{Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, skillNames(limited))
}

func TestStore_ListByIndexWithFilter(t *testing.T) {
	store := New()
	ctx := context.Background()

	for _, l := range []*domain.SocialLink{
		{Platform: "c", URL: "u", Order: 3, IsActive: true},
		{Platform: "a", URL: "u", Order: 1, IsActive: true},
		{Platform: "b", URL: "u", Order: 2, IsActive: false},
	} {
		_, err := store.SocialLinks().Insert(ctx, l)
		require.NoError(t, err)
	}

	all, err := store.SocialLinks().List(ctx, storage.Query{Index: schema.ByOrder})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a", all[0].Platform)
	assert.Equal(t, "b", all[1].Platform)
	assert.Equal(t, "c", all[2].Platform)

	active, err := store.SocialLinks().List(ctx, storage.Query{
		Index: schema.ByOrder,
		Where: []schema.Eq{{Field: "isActive", Value: true}},
	})
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "a", active[0].Platform)
	assert.Equal(t, "c", active[1].Platform)

	n, err := store.SocialLinks().Count(ctx, schema.Eq{Field: "isActive", Value: false})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = store.SocialLinks().List(ctx, storage.Query{Index: "by_nothing"})
	assert.Error(t, err)
}

func TestStore_Update(t *testing.T) {
	store := New()
	ctx := context.Background()
	sk := insertSkills(t, store, "Git")[0]

	updated, err := store.Skills().Update(ctx, sk.ID, func(s *domain.Skill) error {
		s.Name = "Git CLI"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Git CLI", updated.Name)
	assert.Equal(t, sk.ID, updated.ID)
	assert.Equal(t, sk.CreationTime, updated.CreationTime)

	// Ошибка в fn оставляет запись нетронутой
	boom := errors.New("boom")
	_, err = store.Skills().Update(ctx, sk.ID, func(s *domain.Skill) error {
		s.Name = "broken"
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := store.Skills().Get(ctx, sk.ID)
	require.NoError(t, err)
	assert.Equal(t, "Git CLI", got.Name)

	_, err = store.Skills().Update(ctx, "missing", func(*domain.Skill) error { return nil })
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStore_DeleteAndClear(t *testing.T) {
	store := New()
	ctx := context.Background()
	skills := insertSkills(t, store, "a", "b", "c")

	require.NoError(t, store.Skills().Delete(ctx, skills[1].ID))
	_, err := store.Skills().Get(ctx, skills[1].ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, store.Skills().Delete(ctx, skills[1].ID), domain.ErrNotFound)

	list, err := store.Skills().List(ctx, storage.Query{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, skillNames(list))

	n, err := store.Skills().Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = store.Skills().Clear(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStore_TransactionRollback(t *testing.T) {
	store := New()
	ctx := context.Background()
	insertSkills(t, store, "a", "b")

	boom := errors.New("boom")
	err := store.Transaction(ctx, func(tx storage.Storage) error {
		if _, err := tx.Skills().Clear(ctx); err != nil {
			return err
		}
		if _, err := tx.Skills().Insert(ctx, &domain.Skill{Name: "x", Category: domain.SkillTools}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := store.Skills().List(ctx, storage.Query{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, skillNames(list))
}

func TestStore_TransactionCommit(t *testing.T) {
	store := New()
	ctx := context.Background()
	insertSkills(t, store, "a")

	err := store.Transaction(ctx, func(tx storage.Storage) error {
		if _, err := tx.Skills().Clear(ctx); err != nil {
			return err
		}
		// Вложенная транзакция выполняется в рамках внешней
		return tx.Transaction(ctx, func(inner storage.Storage) error {
			_, err := inner.Skills().Insert(ctx, &domain.Skill{Name: "x", Category: domain.SkillTools})
			return err
		})
	})
	require.NoError(t, err)

	list, err := store.Skills().List(ctx, storage.Query{})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, skillNames(list))
}

func TestStore_ConcurrentInserts(t *testing.T) {
	store := New()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Comments().Insert(ctx, &domain.Comment{Name: "Al", Message: "hello", IsApproved: true})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	n, err := store.Comments().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 50, n)
}

func skillNames(list []*domain.Skill) []string {
	names := make([]string, 0, len(list))
	for _, s := range list {
		names = append(names, s.Name)
	}
	return names
}
