package main

import (
	"context"
	"fmt"
	"log"

	"github.com/UkralStul/portfolio-content-service/internal/config"
	"github.com/UkralStul/portfolio-content-service/internal/storage"
	"github.com/UkralStul/portfolio-content-service/internal/storage/cache"
	"github.com/UkralStul/portfolio-content-service/internal/storage/inmemory"
	"github.com/UkralStul/portfolio-content-service/internal/storage/mongo"
	"github.com/UkralStul/portfolio-content-service/internal/storage/postgres"
)

// openStore открывает хранилище по настройкам и, если задан CACHE_URL, оборачивает его кешем.
// Возвращённую функцию нужно вызвать при завершении.
func openStore(ctx context.Context, c config.Config) (storage.Storage, func(), error) {
	var (
		store storage.Storage
		err   error
	)

	log.Printf("Starting with %s storage", c.Storage)
	switch c.Storage {
	case config.StoragePostgres:
		store, err = postgres.New(c.DatabaseURL, c.LogSQL)
	case config.StorageMongo:
		store, err = mongo.New(ctx, mongo.Options{
			URI:          c.MongoURI,
			Database:     c.MongoDatabase,
			Transactions: c.MongoTransactions,
		})
	case config.StorageInMemory:
		store = inmemory.New()
	default:
		err = fmt.Errorf("unknown storage type %q", c.Storage)
	}
	if err != nil {
		return nil, nil, err
	}

	var kv *cache.Valkey
	if c.CacheURL != "" {
		kv, err = cache.NewValkey(ctx, c.CacheURL)
		if err != nil {
			_ = store.Close(ctx)
			return nil, nil, err
		}
		log.Printf("List cache enabled, ttl %s", c.CacheTTL)
		store = cache.Wrap(store, kv, c.CacheTTL)
	}

	closeFn := func() {
		if err := store.Close(context.Background()); err != nil {
			log.Printf("failed to close storage: %v", err)
		}
		if kv != nil {
			kv.Close()
		}
	}
	return store, closeFn, nil
}
