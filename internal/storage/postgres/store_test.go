package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/UkralStul/portfolio-content-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// dryRunStore строит SQL без подключения к базе.
func dryRunStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=portfolio dbname=portfolio sslmode=disable",
	}), &gorm.Config{DryRun: true, SkipDefaultTransaction: true, DisableAutomaticPing: true})
	require.NoError(t, err)
	return &Store{db: db}
}

func TestStore_InsertCommentLeavesUpdatedAtEmpty(t *testing.T) {
	store := dryRunStore(t)

	c, err := store.Comments().Insert(context.Background(), &domain.Comment{
		Name:       "Guest",
		Message:    "Hello there",
		IsApproved: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Nil(t, c.UpdatedAt)

	// Колонка пишется как NULL, время вставки туда не попадает
	raw := &domain.Comment{Name: "Guest", Message: "Hello again"}
	stmt := store.db.Create(raw).Statement
	assert.Contains(t, stmt.SQL.String(), `INSERT INTO "comments"`)
	assert.Nil(t, raw.UpdatedAt)
	for _, v := range stmt.Vars {
		if tm, ok := v.(*time.Time); ok {
			assert.Nil(t, tm)
		}
	}
}
