package database

import (
	"context"
	stderrors "errors"
	"strings"

	"gorm.io/gorm"
	"newsletter.app/internal/ports"
	"newsletter.app/pkg/errors"
)

type txKey struct{}

// GormTransactor implements the Transactor port using GORM transactions
type GormTransactor struct {
	db *gorm.DB
}

// NewGormTransactor creates a new transactor
func NewGormTransactor(db *gorm.DB) ports.Transactor {
	return &GormTransactor{db: db}
}

// WithinTransaction runs fn in a transaction carried by the context. A nested
// call joins the outer transaction.
func (t *GormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return fn(ctx)
	}

	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
	if err == nil {
		return nil
	}
	if errors.TypeOf(err) != errors.ErrorTypeUnknown || stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return errors.NewDatabaseError("transaction failed", err)
}

// conn returns the transaction bound to ctx, or db scoped to ctx
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

func isDuplicateKey(err error) bool {
	if stderrors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || strings.Contains(msg, "duplicate key value")
}
