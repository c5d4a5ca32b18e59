package sqlxrepos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/shivamudipelly/aora/core"
	"github.com/shivamudipelly/aora/core/roster"
)

type rosterRepository struct {
	db core.DBExecutor
}

var _ roster.Repository = (*rosterRepository)(nil) // interface compliance check

func NewRosterRepository(db core.DBExecutor) *rosterRepository {
	return &rosterRepository{db: db}
}

// EnsureRoster is a no-op here: the normalized schema keys every row by
// (subject, branch_section), so there is no per-class object to create.
// The lenient-read policy makes an absent roster indistinguishable from an
// empty one.
func (repo rosterRepository) EnsureRoster(ctx context.Context, key roster.ClassKey) error {
	return nil
}

func (repo rosterRepository) EnrollRollNumber(ctx context.Context, key roster.ClassKey, roll string) error {
	var position int
	q := repo.db.Rebind(`
		SELECT COALESCE(MAX(position), 0) + 1 FROM class_roster
		WHERE subject = ? AND branch_section = ?`)
	if err := sqlx.GetContext(ctx, repo.db, &position, q, key.Subject, key.BranchSection); err != nil {
		return errors.Wrap(err, "computing roster position")
	}

	q = repo.db.Rebind(`
		INSERT INTO class_roster (subject, branch_section, roll_number, position, created_at)
		VALUES (?, ?, ?, ?, ?)`)
	if _, err := repo.db.ExecContext(ctx, q, key.Subject, key.BranchSection, roll, position, time.Now().UTC()); err != nil {
		if isUniqueViolation(err) {
			return roster.ErrRollNumberExists
		}
		return errors.Wrap(err, "inserting roll number")
	}

	// ledger rows mirror the roster: a new enrollee starts absent on every
	// date already recorded for this class
	q = repo.db.Rebind(`
		INSERT INTO attendance_facts (subject, branch_section, roll_number, date_key, status)
		SELECT DISTINCT subject, branch_section, ?, date_key, 0
		FROM attendance_facts
		WHERE subject = ? AND branch_section = ?
		ON CONFLICT DO NOTHING`)
	if _, err := repo.db.ExecContext(ctx, q, roll, key.Subject, key.BranchSection); err != nil {
		return errors.Wrap(err, "backfilling ledger rows")
	}
	return nil
}

func (repo rosterRepository) QueryRollNumbers(ctx context.Context, key roster.ClassKey) ([]string, error) {
	rolls := make([]string, 0)
	q := repo.db.Rebind(`
		SELECT roll_number FROM class_roster
		WHERE subject = ? AND branch_section = ?
		ORDER BY position`)
	if err := sqlx.SelectContext(ctx, repo.db, &rolls, q, key.Subject, key.BranchSection); err != nil {
		return nil, errors.Wrap(err, "querying roll numbers")
	}
	return rolls, nil
}

func (repo rosterRepository) DeleteRoster(ctx context.Context, key roster.ClassKey) error {
	q := repo.db.Rebind(`DELETE FROM attendance_facts WHERE subject = ? AND branch_section = ?`)
	if _, err := repo.db.ExecContext(ctx, q, key.Subject, key.BranchSection); err != nil {
		return errors.Wrap(err, "deleting ledger facts")
	}
	q = repo.db.Rebind(`DELETE FROM class_roster WHERE subject = ? AND branch_section = ?`)
	if _, err := repo.db.ExecContext(ctx, q, key.Subject, key.BranchSection); err != nil {
		return errors.Wrap(err, "deleting roster")
	}
	return nil
}
