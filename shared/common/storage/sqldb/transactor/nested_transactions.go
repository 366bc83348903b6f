package transactor

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/jmoiron/sqlx"
)

// NestedTransactionsNone ให้ transaction ซ้อนใช้ transaction เดิมร่วมกัน
// commit/rollback ของชั้นในไม่มีผล ชั้นนอกสุดเป็นผู้ตัดสิน
func NestedTransactionsNone(db sqlxDB, tx *sqlx.Tx) (sqlxDB, sqlxTx) {
	switch typedDB := db.(type) {
	case *sqlx.DB:
		return &nestedTransactionNone{tx}, tx

	case *nestedTransactionNone:
		return typedDB, typedDB

	default:
		panic("unsupported type")
	}
}

type nestedTransactionNone struct {
	*sqlx.Tx
}

func (t *nestedTransactionNone) BeginTxx(_ context.Context, _ *sql.TxOptions) (*sqlx.Tx, error) {
	return t.Tx, nil
}

func (t *nestedTransactionNone) Commit() error {
	return nil
}

func (t *nestedTransactionNone) Rollback() error {
	return nil
}

// NestedTransactionsSavepoints ใช้ SAVEPOINT สำหรับ transaction ซ้อน
// rollback ของชั้นในย้อนเฉพาะงานของชั้นนั้น
func NestedTransactionsSavepoints(db sqlxDB, tx *sqlx.Tx) (sqlxDB, sqlxTx) {
	switch typedDB := db.(type) {
	case *sqlx.DB:
		return &nestedTransactionSavepoints{Tx: tx}, tx

	case *nestedTransactionSavepoints:
		nestedTransaction := &nestedTransactionSavepoints{
			Tx:    tx,
			depth: typedDB.depth + 1,
		}
		return nestedTransaction, nestedTransaction

	default:
		panic("unsupported type")
	}
}

type nestedTransactionSavepoints struct {
	*sqlx.Tx
	depth int64
	done  bool
}

func (t *nestedTransactionSavepoints) BeginTxx(ctx context.Context, _ *sql.TxOptions) (*sqlx.Tx, error) {
	if _, err := t.ExecContext(ctx, "SAVEPOINT sp_"+strconv.FormatInt(t.depth+1, 10)); err != nil {
		return nil, err
	}
	return t.Tx, nil
}

func (t *nestedTransactionSavepoints) Commit() error {
	if t.done {
		return sql.ErrTxDone
	}
	t.done = true

	_, err := t.Exec("RELEASE SAVEPOINT sp_" + strconv.FormatInt(t.depth, 10))
	return err
}

func (t *nestedTransactionSavepoints) Rollback() error {
	if t.done {
		return sql.ErrTxDone
	}
	t.done = true

	_, err := t.Exec("ROLLBACK TO SAVEPOINT sp_" + strconv.FormatInt(t.depth, 10))
	return err
}
