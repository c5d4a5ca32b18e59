package database

import (
	"embed"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"

	"github.com/shivamudipelly/aora/core"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Open connects to the configured engine. The default is a local sqlite3
// file; the store is single-device and single-writer, so callers must
// serialize mutations per (subject, branch_section) aggregate.
func Open(conf *core.Config) (*sqlx.DB, error) {
	switch conf.Database.Engine {
	case "postgres":
		return openPostgres(conf)
	default:
		return openSQLite(conf)
	}
}

func openSQLite(conf *core.Config) (*sqlx.DB, error) {
	dsn := conf.Database.Name + "?_foreign_keys=on"
	db, err := sqlx.Open("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "opening sqlite database")
	}
	// a single connection doubles as the per-process write queue
	db.SetMaxOpenConns(1)
	return db, ping(db)
}

func openPostgres(conf *core.Config) (*sqlx.DB, error) {
	sslMode := "require"
	if conf.Database.DisableTLS {
		sslMode = "disable"
	}
	q := make(url.Values)
	q.Set("sslmode", sslMode)
	q.Set("timezone", "utc")

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(conf.Database.User, conf.Database.Password),
		Host:     conf.Database.Address(),
		Path:     conf.Database.Name,
		RawQuery: q.Encode(),
	}
	db, err := sqlx.Open("postgres", u.String())
	if err != nil {
		return nil, errors.Wrap(err, "opening postgres database")
	}
	return db, ping(db)
}

// ping waits for the database to be ready. Waits 100ms longer between each attempt.
func ping(db *sqlx.DB) error {
	var err error
	maxAttempts := 30
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err = db.Ping()
		if err == nil {
			break
		}
		time.Sleep(time.Duration(attempts) * 100 * time.Millisecond)
	}

	if err != nil {
		return errors.Wrap(err, "DB ping timeout")
	}
	return nil
}

// Migrate applies the embedded schema migrations.
func Migrate(db *sqlx.DB, conf *core.Config) error {
	dialect := conf.Database.Engine
	if dialect == "" {
		dialect = "sqlite3"
	}
	goose.SetBaseFS(migrationsFS)
	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "setting migration dialect")
	}
	if err := goose.Up(db.DB, "migrations"); err != nil {
		return errors.Wrap(err, "migrating database")
	}
	return nil
}
