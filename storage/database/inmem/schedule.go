package inmemdb

import (
	"context"

	"github.com/shivamudipelly/aora/core/schedule"
)

type scheduleRepository struct {
	db *DB
}

var _ schedule.Repository = (*scheduleRepository)(nil)

func NewScheduleRepository(db *DB) *scheduleRepository {
	return &scheduleRepository{db: db}
}

func (repo *scheduleRepository) CreateSchedule(_ context.Context, sched schedule.ClassSchedule) (schedule.ClassSchedule, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for _, s := range repo.db.schedules {
		if s.Subject == sched.Subject && s.BranchSection == sched.BranchSection && s.Day == sched.Day {
			return schedule.ClassSchedule{}, schedule.ErrScheduleExists
		}
	}
	repo.db.schedules = append(repo.db.schedules, sched)
	return sched, nil
}

func (repo *scheduleRepository) QueryAllSchedules(_ context.Context) ([]schedule.ClassSchedule, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	res := make([]schedule.ClassSchedule, len(repo.db.schedules))
	copy(res, repo.db.schedules)
	return res, nil
}

func (repo *scheduleRepository) QuerySchedulesByDay(_ context.Context, day schedule.Weekday) ([]schedule.ClassSchedule, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	res := make([]schedule.ClassSchedule, 0)
	for _, s := range repo.db.schedules {
		if s.Day == day {
			res = append(res, s)
		}
	}
	return res, nil
}

func (repo *scheduleRepository) DeleteSchedule(_ context.Context, subject, branchSection string, day schedule.Weekday) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	for i, s := range repo.db.schedules {
		if s.Subject == subject && s.BranchSection == branchSection && s.Day == day {
			repo.db.schedules = append(repo.db.schedules[:i], repo.db.schedules[i+1:]...)
			return nil
		}
	}
	return nil
}
