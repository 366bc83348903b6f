package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type closeDB func() error

type DBContext interface {
	DB() *sqlx.DB
}

type dbContext struct {
	db *sqlx.DB
}

var _ DBContext = (*dbContext)(nil)

// NewDBContext เปิด connection และ ping ฐานข้อมูลก่อนคืนค่า
func NewDBContext(driver, dsn string) (DBContext, closeDB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		// sqlite แบบ :memory: แยกฐานข้อมูลตาม connection จึงต้องใช้ connection เดียว
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	} else {
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if driver == DriverSQLite {
		// sqlite ปิด foreign key เป็นค่าเริ่มต้น ต้องเปิดเองให้ REFERENCES ทำงานเหมือน postgres
		if _, err := db.ExecContext(ctx, `PRAGMA foreign_keys = ON`); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}
	}

	return &dbContext{db: db}, func() error {
		return db.Close()
	}, nil
}

func (c *dbContext) DB() *sqlx.DB {
	return c.db
}
