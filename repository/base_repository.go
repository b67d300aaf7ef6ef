package repository

import (
	"context"

	"gorm.io/gorm"
)

// BaseRepository provides transaction management capabilities for database operations.
type BaseRepository interface {
	// Conn returns a session bound to ctx for reads outside a transaction.
	Conn(ctx context.Context) *gorm.DB
	// Transaction runs fn in a transaction, rolling back when fn returns an error.
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	Ping(ctx context.Context) error
}

type baseRepository struct {
	db *gorm.DB
}

// NewBaseRepository creates a new base repository instance with database connection.
func NewBaseRepository(db *gorm.DB) BaseRepository {
	return &baseRepository{
		db: db,
	}
}

func (r *baseRepository) Conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *baseRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *baseRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// pick returns tx when the caller supplied one, otherwise the repository's own handle.
func pick(tx, db *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return db
}
