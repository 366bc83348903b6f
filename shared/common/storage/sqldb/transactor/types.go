package transactor

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
)

// DBTX คือ method ที่ใช้ร่วมกันระหว่าง *sqlx.DB และ *sqlx.Tx
// repository จึงไม่ต้องรู้ว่ากำลังทำงานใน transaction หรือไม่
type DBTX interface {
	DriverName() string
	Rebind(query string) string

	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryxContext(ctx context.Context, query string, args ...any) (*sqlx.Rows, error)
	QueryRowxContext(ctx context.Context, query string, args ...any) *sqlx.Row
	GetContext(ctx context.Context, dest any, query string, args ...any) error
	SelectContext(ctx context.Context, dest any, query string, args ...any) error
	NamedExecContext(ctx context.Context, query string, arg any) (sql.Result, error)
}

// DBTXContext คืนค่า transaction ที่อยู่ใน context ถ้ามี ไม่เช่นนั้นคืน *sqlx.DB
type DBTXContext func(ctx context.Context) DBTX

type sqlxDB interface {
	DBTX
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
}

type sqlxTx interface {
	Commit() error
	Rollback() error
}

var (
	_ sqlxDB = &sqlx.DB{}
	_ DBTX   = &sqlx.Tx{}
	_ sqlxTx = &sqlx.Tx{}
)
