package core

import "github.com/jmoiron/sqlx"

// DBExecutor is the subset of sqlx operations repositories run queries
// against. Both *sqlx.DB and *sqlx.Tx satisfy it.
type DBExecutor interface {
	sqlx.ExtContext
}
