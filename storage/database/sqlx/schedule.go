package sqlxrepos

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/shivamudipelly/aora/core"
	"github.com/shivamudipelly/aora/core/schedule"
)

type scheduleRepository struct {
	db core.DBExecutor
}

var _ schedule.Repository = (*scheduleRepository)(nil) // interface compliance check

func NewScheduleRepository(db core.DBExecutor) *scheduleRepository {
	return &scheduleRepository{db: db}
}

func (repo scheduleRepository) CreateSchedule(ctx context.Context, sched schedule.ClassSchedule) (schedule.ClassSchedule, error) {
	var position int
	q := repo.db.Rebind(`SELECT COALESCE(MAX(position), 0) + 1 FROM class_schedule`)
	if err := sqlx.GetContext(ctx, repo.db, &position, q); err != nil {
		return schedule.ClassSchedule{}, errors.Wrap(err, "computing schedule position")
	}

	q = repo.db.Rebind(`
		INSERT INTO class_schedule (subject, branch_section, day, position, created_at)
		VALUES (?, ?, ?, ?, ?)`)
	if _, err := repo.db.ExecContext(ctx, q, sched.Subject, sched.BranchSection, string(sched.Day), position, sched.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return schedule.ClassSchedule{}, schedule.ErrScheduleExists
		}
		return schedule.ClassSchedule{}, errors.Wrap(err, "inserting schedule")
	}
	return sched, nil
}

func (repo scheduleRepository) QueryAllSchedules(ctx context.Context) ([]schedule.ClassSchedule, error) {
	scheds := make([]schedule.ClassSchedule, 0)
	q := repo.db.Rebind(`
		SELECT subject, branch_section, day, created_at
		FROM class_schedule
		ORDER BY position`)
	if err := sqlx.SelectContext(ctx, repo.db, &scheds, q); err != nil {
		return nil, errors.Wrap(err, "querying schedules")
	}
	return scheds, nil
}

func (repo scheduleRepository) QuerySchedulesByDay(ctx context.Context, day schedule.Weekday) ([]schedule.ClassSchedule, error) {
	scheds := make([]schedule.ClassSchedule, 0)
	q := repo.db.Rebind(`
		SELECT subject, branch_section, day, created_at
		FROM class_schedule
		WHERE day = ?
		ORDER BY position`)
	if err := sqlx.SelectContext(ctx, repo.db, &scheds, q, string(day)); err != nil {
		return nil, errors.Wrap(err, "querying schedules by day")
	}
	return scheds, nil
}

func (repo scheduleRepository) DeleteSchedule(ctx context.Context, subject, branchSection string, day schedule.Weekday) error {
	q := repo.db.Rebind(`
		DELETE FROM class_schedule
		WHERE subject = ? AND branch_section = ? AND day = ?`)
	if _, err := repo.db.ExecContext(ctx, q, subject, branchSection, string(day)); err != nil {
		return errors.Wrap(err, "deleting schedule")
	}
	return nil
}
