// Ref: https://github.com/Thiht/transactor/blob/main/sqlx/transactor.go
package transactor

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PostCommitHook ถูกเรียกหลังจาก transaction ชั้นนอกสุด commit สำเร็จแล้วเท่านั้น
type PostCommitHook func(ctx context.Context) error

type Transactor interface {
	WithinTransaction(ctx context.Context, txFunc func(ctxWithTx context.Context, registerPostCommitHook func(PostCommitHook)) error) error
}

type nestedTransactionsStrategy func(sqlxDB, *sqlx.Tx) (sqlxDB, sqlxTx)

type sqlTransactor struct {
	db *sqlx.DB
	nestedTransactionsStrategy
}

type Option func(*sqlTransactor)

func New(db *sqlx.DB, opts ...Option) (Transactor, DBTXContext) {
	t := &sqlTransactor{
		db:                         db,
		nestedTransactionsStrategy: NestedTransactionsNone, // Default strategy
	}

	for _, opt := range opts {
		opt(t)
	}

	dbGetter := func(ctx context.Context) DBTX {
		if state, ok := txFromContext(ctx); ok {
			return state.db
		}

		return db
	}

	return t, dbGetter
}

func WithNestedTransactionStrategy(strategy nestedTransactionsStrategy) Option {
	return func(t *sqlTransactor) {
		t.nestedTransactionsStrategy = strategy
	}
}

func (t *sqlTransactor) WithinTransaction(ctx context.Context, txFunc func(ctxWithTx context.Context, registerPostCommitHook func(PostCommitHook)) error) error {
	parent, nested := txFromContext(ctx)

	var currentDB sqlxDB = t.db
	if nested {
		currentDB = parent.db
	}

	tx, err := currentDB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	newDB, currentTX := t.nestedTransactionsStrategy(currentDB, tx)
	defer func() {
		_ = currentTX.Rollback() // If rollback fails, there's nothing to do, the transaction will expire by itself
	}()

	var hooks []PostCommitHook
	registerPostCommitHook := func(hook PostCommitHook) {
		hooks = append(hooks, hook)
	}
	ctxWithTx := txToContext(ctx, txState{db: newDB, hooks: &hooks})

	if err := txFunc(ctxWithTx, registerPostCommitHook); err != nil {
		return err
	}

	if err := currentTX.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	// transaction ชั้นในส่ง hook ต่อให้ชั้นนอก เพื่อรอ commit จริง
	if nested {
		*parent.hooks = append(*parent.hooks, hooks...)
		return nil
	}

	return runPostCommitHooks(ctx, hooks)
}

func runPostCommitHooks(ctx context.Context, hooks []PostCommitHook) error {
	var errs error
	for _, hook := range hooks {
		if err := hook(ctx); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	if errs != nil {
		return fmt.Errorf("post-commit hook failed: %w", errs)
	}
	return nil
}
