package sqlxrepos

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	"github.com/shivamudipelly/aora/core"
	"github.com/shivamudipelly/aora/core/attendance"
	"github.com/shivamudipelly/aora/core/roster"
)

type attendanceRepository struct {
	db core.DBExecutor
}

var _ attendance.Repository = (*attendanceRepository)(nil) // interface compliance check

func NewAttendanceRepository(db core.DBExecutor) *attendanceRepository {
	return &attendanceRepository{db: db}
}

func (repo attendanceRepository) EnsureDate(ctx context.Context, key roster.ClassKey, dateKey string) error {
	q := repo.db.Rebind(`
		INSERT INTO attendance_facts (subject, branch_section, roll_number, date_key, status)
		SELECT subject, branch_section, roll_number, ?, 0
		FROM class_roster
		WHERE subject = ? AND branch_section = ?
		ON CONFLICT DO NOTHING`)
	if _, err := repo.db.ExecContext(ctx, q, dateKey, key.Subject, key.BranchSection); err != nil {
		return errors.Wrap(err, "opening ledger date")
	}
	return nil
}

func (repo attendanceRepository) UpdateStatus(ctx context.Context, key roster.ClassKey, rolls []string, dateKey string, status attendance.Status) ([]string, error) {
	q := repo.db.Rebind(`
		UPDATE attendance_facts SET status = ?
		WHERE subject = ? AND branch_section = ? AND roll_number = ? AND date_key = ?`)

	written := make([]string, 0, len(rolls))
	for _, roll := range rolls {
		res, err := repo.db.ExecContext(ctx, q, int(status), key.Subject, key.BranchSection, roll, dateKey)
		if err != nil {
			return written, errors.Wrapf(err, "updating status of %s", roll)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return written, errors.Wrapf(err, "updating status of %s", roll)
		}
		if n > 0 {
			written = append(written, roll)
		}
	}
	return written, nil
}

func (repo attendanceRepository) QueryLedger(ctx context.Context, key roster.ClassKey) ([]attendance.LedgerRow, error) {
	q := repo.db.Rebind(`
		SELECT r.roll_number, f.date_key, f.status
		FROM class_roster r
		LEFT JOIN attendance_facts f
		  ON f.subject = r.subject AND f.branch_section = r.branch_section AND f.roll_number = r.roll_number
		WHERE r.subject = ? AND r.branch_section = ?
		ORDER BY r.position, f.date_key`)

	dbRows, err := repo.db.QueryxContext(ctx, q, key.Subject, key.BranchSection)
	if err != nil {
		return nil, errors.Wrap(err, "querying ledger")
	}
	defer func() { _ = dbRows.Close() }()

	rows := make([]attendance.LedgerRow, 0)
	idx := make(map[string]int)
	for dbRows.Next() {
		var (
			roll    string
			dateKey sql.NullString
			status  sql.NullInt64
		)
		if err = dbRows.Scan(&roll, &dateKey, &status); err != nil {
			return nil, errors.Wrap(err, "scanning ledger row")
		}
		i, ok := idx[roll]
		if !ok {
			i = len(rows)
			idx[roll] = i
			rows = append(rows, attendance.LedgerRow{RollNumber: roll, Dates: make(map[string]attendance.Status)})
		}
		if dateKey.Valid {
			rows[i].Dates[dateKey.String] = attendance.Status(status.Int64)
		}
	}
	if err = dbRows.Err(); err != nil {
		return nil, errors.Wrap(err, "reading ledger rows")
	}
	return rows, nil
}
