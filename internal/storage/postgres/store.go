package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/schema"
	"github.com/UkralStul/portfolio-content-service/internal/storage"
	"github.com/google/uuid"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// Store реализует интерфейс Storage с использованием PostgreSQL.
type Store struct {
	db *gorm.DB
}

// New создает новый экземпляр хранилища PostgreSQL и мигрирует схему.
func New(dsn string, logSQL bool) (*Store, error) {
	level := logger.Warn
	if logSQL {
		level = logger.Info
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&domain.Comment{},
		&domain.Certification{},
		&domain.Experience{},
		&domain.Hackathon{},
		&domain.Project{},
		&domain.Skill{},
		&domain.HeroContent{},
		&domain.AboutContent{},
		&domain.SocialLink{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Comments() storage.Repository[*domain.Comment] {
	return &table[*domain.Comment]{db: s.db, sc: schema.Comments}
}

func (s *Store) Certifications() storage.Repository[*domain.Certification] {
	return &table[*domain.Certification]{db: s.db, sc: schema.Certifications}
}

func (s *Store) Experiences() storage.Repository[*domain.Experience] {
	return &table[*domain.Experience]{db: s.db, sc: schema.Experiences}
}

func (s *Store) Hackathons() storage.Repository[*domain.Hackathon] {
	return &table[*domain.Hackathon]{db: s.db, sc: schema.Hackathons}
}

func (s *Store) Projects() storage.Repository[*domain.Project] {
	return &table[*domain.Project]{db: s.db, sc: schema.Projects}
}

func (s *Store) Skills() storage.Repository[*domain.Skill] {
	return &table[*domain.Skill]{db: s.db, sc: schema.Skills}
}

func (s *Store) HeroContent() storage.Repository[*domain.HeroContent] {
	return &table[*domain.HeroContent]{db: s.db, sc: schema.HeroContent}
}

func (s *Store) AboutContent() storage.Repository[*domain.AboutContent] {
	return &table[*domain.AboutContent]{db: s.db, sc: schema.AboutContent}
}

func (s *Store) SocialLinks() storage.Repository[*domain.SocialLink] {
	return &table[*domain.SocialLink]{db: s.db, sc: schema.SocialLinks}
}

// Transaction оборачивает fn в транзакцию базы данных.
func (s *Store) Transaction(ctx context.Context, fn func(tx storage.Storage) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

func (s *Store) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// table - репозиторий одной таблицы.
type table[T domain.Record] struct {
	db *gorm.DB
	sc *schema.Collection[T]
}

func (t *table[T]) where(tx *gorm.DB, where []schema.Eq) (*gorm.DB, error) {
	for _, eq := range where {
		f, err := t.sc.Field(eq.Field)
		if err != nil {
			return nil, err
		}
		tx = tx.Where(clause.Eq{Column: clause.Column{Name: f.Column}, Value: eq.Value})
	}
	return tx, nil
}

func (t *table[T]) List(ctx context.Context, q storage.Query) ([]T, error) {
	fields, err := t.sc.SortFields(q.Index)
	if err != nil {
		return nil, err
	}
	tx, err := t.where(t.db.WithContext(ctx), q.Where)
	if err != nil {
		return nil, err
	}
	for _, f := range fields {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: f.Column}, Desc: q.Desc})
	}
	// Равные ключи индекса - в порядке вставки
	if q.Index != "" {
		tx = tx.Order(clause.OrderByColumn{Column: clause.Column{Name: "creation_time"}})
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	rows := make([]T, 0)
	if err := tx.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (t *table[T]) Count(ctx context.Context, where ...schema.Eq) (int, error) {
	tx, err := t.where(t.db.WithContext(ctx).Model(t.sc.New()), where)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := tx.Count(&n).Error; err != nil {
		return 0, err
	}
	return int(n), nil
}

func (t *table[T]) Get(ctx context.Context, id string) (T, error) {
	return t.first(t.db.WithContext(ctx), id)
}

// first ищет запись по id. Некорректный UUID не может существовать в таблице,
// поэтому сразу отдаём NotFound, не дожидаясь ошибки от PostgreSQL.
func (t *table[T]) first(tx *gorm.DB, id string) (T, error) {
	var zero T
	if _, err := uuid.Parse(id); err != nil {
		return zero, domain.NotFound(t.sc.Name, id)
	}
	rec := t.sc.New()
	if err := tx.First(rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, domain.NotFound(t.sc.Name, id)
		}
		return zero, err
	}
	return rec, nil
}

func (t *table[T]) Insert(ctx context.Context, rec T) (T, error) {
	rec.Assign(uuid.NewString(), time.Now().UTC())
	if err := t.db.WithContext(ctx).Create(rec).Error; err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

func (t *table[T]) Update(ctx context.Context, id string, fn func(T) error) (T, error) {
	var rec T
	// Используем транзакцию для атомарности операции чтения-записи
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		current, err := t.first(tx.Clauses(clause.Locking{Strength: "UPDATE"}), id)
		if err != nil {
			return err
		}
		if err := fn(current); err != nil {
			return err
		}
		if err := tx.Save(current).Error; err != nil {
			return err
		}
		rec = current
		return nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

func (t *table[T]) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.NotFound(t.sc.Name, id)
	}
	res := t.db.WithContext(ctx).Delete(t.sc.New(), "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.NotFound(t.sc.Name, id)
	}
	return nil
}

func (t *table[T]) Clear(ctx context.Context) (int, error) {
	res := t.db.WithContext(ctx).Where("1 = 1").Delete(t.sc.New())
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}
