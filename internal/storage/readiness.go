package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pressly/goose/v3"
)

// Readiness is the structured detail payload of the /readyz probe.
type Readiness struct {
	Ready    bool   `json:"-"`
	Status   string `json:"status"`
	Database string `json:"database"`
	DBHead   int64  `json:"db_migration_head,omitempty"`
	CodeHead int64  `json:"code_migration_head,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// Checker answers readiness probes for both processes.
type Checker struct {
	pool  *pgxpool.Pool
	sqlDB *sql.DB
	env   string
}

// NewChecker builds a Checker. sqlDB is the stdlib view of the same pool,
// needed because goose speaks database/sql. In the "test" environment the
// migration-head comparison is skipped.
func NewChecker(pool *pgxpool.Pool, sqlDB *sql.DB, env string) *Checker {
	return &Checker{pool: pool, sqlDB: sqlDB, env: env}
}

// Check pings the database and, outside of test mode, compares the recorded
// migration head to the binary's declared head.
func (c *Checker) Check(ctx context.Context) Readiness {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := c.pool.Ping(ctx); err != nil {
		return Readiness{Status: "not_ready", Database: "unreachable", Detail: err.Error()}
	}

	r := Readiness{Ready: true, Status: "ready", Database: "ok"}
	if c.env == "test" {
		return r
	}

	codeHead, err := DeclaredHead()
	if err != nil {
		return Readiness{Status: "not_ready", Database: "ok", Detail: err.Error()}
	}
	dbHead, err := goose.GetDBVersionContext(ctx, c.sqlDB)
	if err != nil {
		return Readiness{Status: "not_ready", Database: "ok", CodeHead: codeHead, Detail: err.Error()}
	}

	r.DBHead = dbHead
	r.CodeHead = codeHead
	if dbHead != codeHead {
		r.Ready = false
		r.Status = "not_ready"
		r.Detail = "migration head mismatch"
	}
	return r
}
