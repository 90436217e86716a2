package storage

import (
	"context"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/schema"
)

// Query - чтение коллекции по одному индексу.
type Query struct {
	Index string      // имя индекса из schema; пусто - порядок вставки
	Desc  bool        // обратный порядок
	Where []schema.Eq // условия равенства
	Limit int         // 0 - без ограничения
}

// Repository - операции над одной коллекцией.
// Отсутствующий идентификатор даёт ошибку, удовлетворяющую errors.Is(err, domain.ErrNotFound).
type Repository[T domain.Record] interface {
	List(ctx context.Context, q Query) ([]T, error)
	Count(ctx context.Context, where ...schema.Eq) (int, error)
	Get(ctx context.Context, id string) (T, error)
	// Insert присваивает записи идентификатор и время вставки.
	Insert(ctx context.Context, rec T) (T, error)
	// Update читает запись, вызывает fn над копией и сохраняет её.
	// Если fn вернула ошибку, запись не меняется.
	Update(ctx context.Context, id string, fn func(T) error) (T, error)
	Delete(ctx context.Context, id string) error
	// Clear удаляет все записи и возвращает их количество.
	Clear(ctx context.Context) (int, error)
}

// Storage определяет контракт для хранилищ.
type Storage interface {
	Comments() Repository[*domain.Comment]
	Certifications() Repository[*domain.Certification]
	Experiences() Repository[*domain.Experience]
	Hackathons() Repository[*domain.Hackathon]
	Projects() Repository[*domain.Project]
	Skills() Repository[*domain.Skill]
	HeroContent() Repository[*domain.HeroContent]
	AboutContent() Repository[*domain.AboutContent]
	SocialLinks() Repository[*domain.SocialLink]

	// Transaction выполняет fn атомарно там, где хранилище это умеет.
	// Внутри fn нужно работать только через tx.
	Transaction(ctx context.Context, fn func(tx Storage) error) error
	Close(ctx context.Context) error
}
