package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type txKey struct{}

// Transaction 在事务中执行 fn. The transaction rides on the returned ctx, so
// every Repo call made with it joins the same tx. Nested calls reuse the
// outer transaction.
func Transaction(ctx context.Context, db *gorm.DB, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// DB 返回当前上下文对应的连接(事务优先)
func (r *Repo[T]) DB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return r.Db.WithContext(ctx)
}

func (r *Repo[T]) Model(ctx context.Context) *gorm.DB {
	return r.DB(ctx).Model(new(T))
}

func (r *Repo[T]) Create(ctx context.Context, m *T) error {
	return r.DB(ctx).Create(m).Error
}

func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var m T
	if err := r.DB(ctx).Where(where, args...).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repo[T]) FindAll(ctx context.Context, where string, args ...any) ([]*T, error) {
	var items []*T
	err := r.DB(ctx).Where(where, args...).Find(&items).Error
	return items, err
}

func (r *Repo[T]) FindCount(ctx context.Context, where string, args ...any) (int64, error) {
	var count int64
	err := r.Model(ctx).Where(where, args...).Count(&count).Error
	return count, err
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var m T
	err := r.DB(ctx).Select("id").Where(where, args...).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (r *Repo[T]) DeleteWhere(ctx context.Context, where string, args ...any) (int64, error) {
	res := r.DB(ctx).Where(where, args...).Delete(new(T))
	return res.RowsAffected, res.Error
}

// IsNotFound reports whether err is a missing-row error from gorm.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
