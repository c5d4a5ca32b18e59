package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/shivamudipelly/aora/core"
)

var (
	// errors
	ErrScheduleExists = errors.New("this class is already scheduled on that day")
	ErrInvalidWeekday = errors.New("invalid weekday name")
)

type (
	Repository interface {
		// CreateSchedule inserts one schedule row. Uniqueness of
		// (subject, branch_section, day) is enforced by a DB constraint, not
		// a pre-check; a violation surfaces as ErrScheduleExists.
		CreateSchedule(ctx context.Context, sched ClassSchedule) (ClassSchedule, error)
		QueryAllSchedules(ctx context.Context) ([]ClassSchedule, error)
		QuerySchedulesByDay(ctx context.Context, day Weekday) ([]ClassSchedule, error)
		// DeleteSchedule removes one schedule row; no-op when absent.
		DeleteSchedule(ctx context.Context, subject, branchSection string, day Weekday) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Add(ctx context.Context, subject, branchSection string, day Weekday) (ClassSchedule, error) {
	sched := ClassSchedule{
		Subject:       core.NormalizeName(subject),
		BranchSection: core.NormalizeName(branchSection),
		Day:           day,
		CreatedAt:     time.Now().UTC(),
	}
	return svc.repo.CreateSchedule(ctx, sched)
}

func (svc *Service) List(ctx context.Context) ([]ClassSchedule, error) {
	return svc.repo.QueryAllSchedules(ctx)
}

func (svc *Service) ListByDay(ctx context.Context, day Weekday) ([]ClassSchedule, error) {
	return svc.repo.QuerySchedulesByDay(ctx, day)
}

func (svc *Service) Remove(ctx context.Context, subject, branchSection string, day Weekday) error {
	return svc.repo.DeleteSchedule(ctx, core.NormalizeName(subject), core.NormalizeName(branchSection), day)
}

// Reschedule moves a class meeting to another day as an insert + delete;
// schedule rows are never updated in place. The new day is inserted first so
// that a conflict leaves the old schedule untouched.
func (svc *Service) Reschedule(ctx context.Context, subject, branchSection string, oldDay, newDay Weekday) (ClassSchedule, error) {
	sched, err := svc.Add(ctx, subject, branchSection, newDay)
	if err != nil {
		return ClassSchedule{}, err
	}
	if err = svc.Remove(ctx, subject, branchSection, oldDay); err != nil {
		return ClassSchedule{}, err
	}
	return sched, nil
}
