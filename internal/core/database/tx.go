package database

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// ErrMissingSession 连接没配好属于配置错误，不是业务错误
var ErrMissingSession = errors.New("database session is required")

// InTx 给操作包一层事务：成功 Commit，出错或 panic 都 Rollback 并原样抛出。
// Commit/Rollback 会把连接还回连接池，所有出口都不会泄漏会话。
func InTx[T any](ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) (T, error)) (T, error) {
	var zero T
	if db == nil {
		return zero, ErrMissingSession
	}

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return zero, tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	out, err := fn(tx)
	if err != nil {
		tx.Rollback()
		return zero, err
	}
	if err := tx.Commit().Error; err != nil {
		return zero, err
	}
	return out, nil
}
