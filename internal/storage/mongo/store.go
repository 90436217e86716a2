// Package mongo - хранилище поверх MongoDB, ближе всего к исходному
// документному сервису: коллекция на каждый тип контента, индексы из schema.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UkralStul/portfolio-content-service/internal/domain"
	"github.com/UkralStul/portfolio-content-service/internal/schema"
	"github.com/UkralStul/portfolio-content-service/internal/storage"
	"github.com/google/uuid"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Options - параметры подключения.
type Options struct {
	URI      string
	Database string
	// Transactions включает многодокументные транзакции (нужен replica set).
	// Без них сид выполняется последовательно и может оставить коллекцию
	// частично очищенной при сбое посередине.
	Transactions bool
}

// Store реализует интерфейс Storage поверх MongoDB.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	txs    bool
	sess   *mongo.Session
}

// New подключается к MongoDB, проверяет соединение и создаёт индексы.
func New(ctx context.Context, opts Options) (*Store, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(options.Client().ApplyURI(opts.URI).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongo: %w", err)
	}

	s := &Store{client: client, db: client.Database(opts.Database), txs: opts.Transactions}
	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	if err := createIndexes(ctx, s.db, schema.Comments); err != nil {
		return err
	}
	if err := createIndexes(ctx, s.db, schema.Experiences); err != nil {
		return err
	}
	if err := createIndexes(ctx, s.db, schema.Hackathons); err != nil {
		return err
	}
	if err := createIndexes(ctx, s.db, schema.Projects); err != nil {
		return err
	}
	return createIndexes(ctx, s.db, schema.SocialLinks)
}

func createIndexes[T domain.Record](ctx context.Context, db *mongo.Database, sc *schema.Collection[T]) error {
	models := []mongo.IndexModel{{Keys: bson.D{{Key: schema.CreationField, Value: 1}}}}
	for _, idx := range sc.Indexes {
		keys := bson.D{}
		for _, name := range idx.Fields {
			f, err := sc.Field(name)
			if err != nil {
				return err
			}
			keys = append(keys, bson.E{Key: f.Key, Value: 1})
		}
		models = append(models, mongo.IndexModel{Keys: keys, Options: options.Index().SetName(idx.Name)})
	}
	if _, err := db.Collection(sc.Name).Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to create indexes for %s: %w", sc.Name, err)
	}
	return nil
}

func (s *Store) Comments() storage.Repository[*domain.Comment] {
	return newCollection(s, schema.Comments)
}

func (s *Store) Certifications() storage.Repository[*domain.Certification] {
	return newCollection(s, schema.Certifications)
}

func (s *Store) Experiences() storage.Repository[*domain.Experience] {
	return newCollection(s, schema.Experiences)
}

func (s *Store) Hackathons() storage.Repository[*domain.Hackathon] {
	return newCollection(s, schema.Hackathons)
}

func (s *Store) Projects() storage.Repository[*domain.Project] {
	return newCollection(s, schema.Projects)
}

func (s *Store) Skills() storage.Repository[*domain.Skill] {
	return newCollection(s, schema.Skills)
}

func (s *Store) HeroContent() storage.Repository[*domain.HeroContent] {
	return newCollection(s, schema.HeroContent)
}

func (s *Store) AboutContent() storage.Repository[*domain.AboutContent] {
	return newCollection(s, schema.AboutContent)
}

func (s *Store) SocialLinks() storage.Repository[*domain.SocialLink] {
	return newCollection(s, schema.SocialLinks)
}

// Transaction запускает fn в сессионной транзакции, если они включены.
func (s *Store) Transaction(ctx context.Context, fn func(tx storage.Storage) error) error {
	if s.sess != nil || !s.txs {
		return fn(s)
	}

	sess, err := s.client.StartSession()
	if err != nil {
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(ctx context.Context) (any, error) {
		return nil, fn(&Store{client: s.client, db: s.db, txs: s.txs, sess: sess})
	})
	return err
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// bind привязывает операцию к сессии транзакции, если она есть.
func (s *Store) bind(ctx context.Context) context.Context {
	if s.sess == nil {
		return ctx
	}
	return mongo.NewSessionContext(ctx, s.sess)
}

type collection[T domain.Record] struct {
	s    *Store
	sc   *schema.Collection[T]
	coll *mongo.Collection
}

func newCollection[T domain.Record](s *Store, sc *schema.Collection[T]) *collection[T] {
	return &collection[T]{s: s, sc: sc, coll: s.db.Collection(sc.Name)}
}

func (c *collection[T]) filter(where []schema.Eq) (bson.D, error) {
	filter := bson.D{}
	for _, eq := range where {
		f, err := c.sc.Field(eq.Field)
		if err != nil {
			return nil, err
		}
		filter = append(filter, bson.E{Key: f.Key, Value: eq.Value})
	}
	return filter, nil
}

func (c *collection[T]) List(ctx context.Context, q storage.Query) ([]T, error) {
	fields, err := c.sc.SortFields(q.Index)
	if err != nil {
		return nil, err
	}
	filter, err := c.filter(q.Where)
	if err != nil {
		return nil, err
	}

	dir := 1
	if q.Desc {
		dir = -1
	}
	sort := bson.D{}
	for _, f := range fields {
		sort = append(sort, bson.E{Key: f.Key, Value: dir})
	}
	// Вторичный ключ делает порядок при равных значениях таким же, как в остальных хранилищах.
	if q.Index != "" {
		sort = append(sort, bson.E{Key: schema.CreationField, Value: 1})
	}

	opts := options.Find().SetSort(sort)
	if q.Limit > 0 {
		opts.SetLimit(int64(q.Limit))
	}

	ctx = c.s.bind(ctx)
	cursor, err := c.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	rows := make([]T, 0)
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *collection[T]) Count(ctx context.Context, where ...schema.Eq) (int, error) {
	filter, err := c.filter(where)
	if err != nil {
		return 0, err
	}
	n, err := c.coll.CountDocuments(c.s.bind(ctx), filter)
	return int(n), err
}

func (c *collection[T]) Get(ctx context.Context, id string) (T, error) {
	rec := c.sc.New()
	err := c.coll.FindOne(c.s.bind(ctx), bson.D{{Key: "_id", Value: id}}).Decode(rec)
	if err != nil {
		var zero T
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, domain.NotFound(c.sc.Name, id)
		}
		return zero, err
	}
	return rec, nil
}

func (c *collection[T]) Insert(ctx context.Context, rec T) (T, error) {
	rec.Assign(uuid.NewString(), time.Now().UTC())
	if _, err := c.coll.InsertOne(c.s.bind(ctx), rec); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Update без транзакции: чтение и замена документа целиком.
// Между ними возможна гонка, побеждает последняя запись.
func (c *collection[T]) Update(ctx context.Context, id string, fn func(T) error) (T, error) {
	var zero T
	current, err := c.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	if err := fn(current); err != nil {
		return zero, err
	}
	res, err := c.coll.ReplaceOne(c.s.bind(ctx), bson.D{{Key: "_id", Value: id}}, current)
	if err != nil {
		return zero, err
	}
	if res.MatchedCount == 0 {
		return zero, domain.NotFound(c.sc.Name, id)
	}
	return current, nil
}

func (c *collection[T]) Delete(ctx context.Context, id string) error {
	res, err := c.coll.DeleteOne(c.s.bind(ctx), bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NotFound(c.sc.Name, id)
	}
	return nil
}

func (c *collection[T]) Clear(ctx context.Context) (int, error) {
	res, err := c.coll.DeleteMany(c.s.bind(ctx), bson.D{})
	if err != nil {
		return 0, err
	}
	return int(res.DeletedCount), nil
}
