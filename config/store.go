package config

import (
	"log"
	"os"

	"Meeple/services/store"
)

// OpenStore picks the persistence backend: Redis when REDIS_URL is set,
// otherwise the embedded database. Either way the caller gets the same
// key → JSON document contract.
func OpenStore() (store.Store, error) {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		log.Println("Using Redis store backend")
		return store.NewRedisStore(redisURL)
	}

	db, err := ConnectGORM()
	if err != nil {
		return nil, err
	}
	return store.NewGormStore(db)
}
