package repository

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultMaxPageSize = 200

type Repository struct {
	db          *gorm.DB
	redis       *redis.Client
	maxPageSize int
}

func New(dsn string, redisEndpoint string, redisPassword string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     redisEndpoint,
		Password: redisPassword,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return &Repository{
		db:          db,
		redis:       rdb,
		maxPageSize: defaultMaxPageSize,
	}, nil
}

// NewWithDB wraps an already-open gorm connection. Used by tests and the
// worker binary, which reuse an existing handle and may run without redis.
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db, maxPageSize: defaultMaxPageSize}
}

func (r *Repository) SetMaxPageSize(n int) {
	if n > 0 {
		r.maxPageSize = n
	}
}

func (r *Repository) DB() *gorm.DB {
	return r.db
}

func (r *Repository) Redis() *redis.Client {
	return r.redis
}
