package tenant

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// Conn returns db bound to ctx, routed through tx when one is set so that
// repository calls join the service's *sql.Tx.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db.WithContext(ctx)
	}
	conn := db.Session(&gorm.Session{Context: ctx, NewDB: true})
	conn.Statement.ConnPool = tx
	return conn
}
