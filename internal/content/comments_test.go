package content

import (
	"context"
	"strings"
	"testing"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComments_CreateValidation(t *testing.T) {
	tests := []struct {
		name    string
		in      validation.CommentInput
		wantErr bool
	}{
		{name: "message of 4 chars", in: validation.CommentInput{Name: "Al", Message: "abcd"}, wantErr: true},
		{name: "message of 5 chars", in: validation.CommentInput{Name: "Al", Message: "abcde"}},
		{name: "message of 500 chars", in: validation.CommentInput{Name: "Al", Message: strings.Repeat("m", 500)}},
		{name: "message of 501 chars", in: validation.CommentInput{Name: "Al", Message: strings.Repeat("m", 501)}, wantErr: true},
		{name: "name of 1 char", in: validation.CommentInput{Name: "A", Message: "Hello"}, wantErr: true},
		{name: "name of 2 chars", in: validation.CommentInput{Name: "Al", Message: "Hello"}},
		{name: "bad email", in: validation.CommentInput{Name: "Al", Message: "Hello", Email: "not-an-email"}, wantErr: true},
		{name: "good email", in: validation.CommentInput{Name: "Al", Message: "Hello", Email: "a@b.co"}},
		{name: "no email", in: validation.CommentInput{Name: "Al", Message: "Hello"}},
		{name: "padded short message", in: validation.CommentInput{Name: "Al", Message: "  abcd  "}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)
			ctx := context.Background()

			_, err := svc.Comments.Create(ctx, tt.in)
			n, countErr := svc.Comments.Count(ctx)
			require.NoError(t, countErr)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidation(err))
				assert.Zero(t, n, "rejected comment must not be stored")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 1, n)
		})
	}
}

func TestComments_RoundTrip(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Comments.Create(ctx, validation.CommentInput{
		Name:    "  Alice  ",
		Message: "  Hello there  ",
		Email:   "alice@example.com",
		Website: "",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.Comments.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "Hello there", got.Message)
	require.NotNil(t, got.Email)
	assert.Equal(t, "alice@example.com", *got.Email)
	assert.Nil(t, got.Website, "blank website is stored as absent")
	assert.True(t, got.IsApproved)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Nil(t, got.UpdatedAt)
}

func TestComments_ListNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second", "third"} {
		_, err := svc.Comments.Create(ctx, validation.CommentInput{Name: name, Message: "Hello"})
		require.NoError(t, err)
	}

	for i := 0; i < 2; i++ {
		list, err := svc.Comments.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "third", list[0].Name)
		assert.Equal(t, "first", list[2].Name)
		for j := 1; j < len(list); j++ {
			assert.False(t, list[j].CreatedAt.After(list[j-1].CreatedAt))
		}
	}
}

func TestComments_ToggleApproval(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a, err := svc.Comments.Create(ctx, validation.CommentInput{Name: "Al", Message: "Hello"})
	require.NoError(t, err)
	_, err = svc.Comments.Create(ctx, validation.CommentInput{Name: "Bo", Message: "Hello"})
	require.NoError(t, err)

	toggled, err := svc.Comments.ToggleApproval(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsApproved)
	assert.NotNil(t, toggled.UpdatedAt)

	list, err := svc.Comments.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Bo", list[0].Name)

	n, err := svc.Comments.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Неодобренный комментарий по-прежнему доступен по id
	got, err := svc.Comments.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.IsApproved)

	_, err = svc.Comments.ToggleApproval(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComments_UpdateChangesOnlyGivenFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Comments.Create(ctx, validation.CommentInput{Name: "Alice", Message: "Hello", Email: "a@b.co"})
	require.NoError(t, err)

	updated, err := svc.Comments.Update(ctx, created.ID, domain.CommentPatch{Message: strPtr("  new message  ")})
	require.NoError(t, err)
	assert.Equal(t, "new message", updated.Message)
	require.NotNil(t, updated.UpdatedAt)

	got, err := svc.Comments.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, "new message", got.Message)
	require.NotNil(t, got.Email)
	assert.Equal(t, "a@b.co", *got.Email)
	assert.Equal(t, created.CreatedAt, got.CreatedAt)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	// Пустой email очищает поле
	cleared, err := svc.Comments.Update(ctx, created.ID, domain.CommentPatch{Email: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, cleared.Email)
}

func TestComments_UpdateValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Comments.Create(ctx, validation.CommentInput{Name: "Alice", Message: "Hello"})
	require.NoError(t, err)

	_, err = svc.Comments.Update(ctx, created.ID, domain.CommentPatch{Name: strPtr("A")})
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Comments.Update(ctx, created.ID, domain.CommentPatch{Email: strPtr("not-an-email")})
	assert.True(t, domain.IsValidation(err))

	got, err := svc.Comments.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
	assert.Nil(t, got.UpdatedAt, "rejected update leaves the record untouched")

	// Несуществующий id важнее плохого ввода
	_, err = svc.Comments.Update(ctx, "missing", domain.CommentPatch{Name: strPtr("A")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComments_DeleteThenGet(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.Comments.Create(ctx, validation.CommentInput{Name: "Alice", Message: "Hello"})
	require.NoError(t, err)

	require.NoError(t, svc.Comments.Delete(ctx, created.ID))

	_, err = svc.Comments.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = svc.Comments.Update(ctx, created.ID, domain.CommentPatch{Message: strPtr("new message")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, svc.Comments.Delete(ctx, created.ID), domain.ErrNotFound)
}

func TestComments_Clear(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.Comments.Create(ctx, validation.CommentInput{Name: "Alice", Message: "Hello"})
		require.NoError(t, err)
	}

	res, err := svc.Comments.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Deleted)

	list, err := svc.Comments.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
