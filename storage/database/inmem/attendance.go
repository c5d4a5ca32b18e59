package inmemdb

import (
	"context"

	"github.com/shivamudipelly/aora/core/attendance"
	"github.com/shivamudipelly/aora/core/roster"
)

type attendanceRepository struct {
	db *DB
}

var _ attendance.Repository = (*attendanceRepository)(nil)

func NewAttendanceRepository(db *DB) *attendanceRepository {
	return &attendanceRepository{db: db}
}

func (repo *attendanceRepository) EnsureDate(_ context.Context, key roster.ClassKey, dateKey string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	class, ok := repo.db.classes[key]
	if !ok {
		return nil
	}
	class.dates[dateKey] = struct{}{}
	for _, roll := range class.rolls {
		if _, taken := class.facts[roll][dateKey]; !taken {
			class.facts[roll][dateKey] = attendance.StatusAbsent
		}
	}
	return nil
}

func (repo *attendanceRepository) UpdateStatus(_ context.Context, key roster.ClassKey, rolls []string, dateKey string, status attendance.Status) ([]string, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	written := make([]string, 0, len(rolls))
	class, ok := repo.db.classes[key]
	if !ok {
		return written, nil
	}
	for _, roll := range rolls {
		dates, enrolled := class.facts[roll]
		if !enrolled {
			continue
		}
		if _, open := dates[dateKey]; !open {
			continue
		}
		dates[dateKey] = status
		written = append(written, roll)
	}
	return written, nil
}

func (repo *attendanceRepository) QueryLedger(_ context.Context, key roster.ClassKey) ([]attendance.LedgerRow, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	rows := make([]attendance.LedgerRow, 0)
	class, ok := repo.db.classes[key]
	if !ok {
		return rows, nil
	}
	for _, roll := range class.rolls {
		dates := make(map[string]attendance.Status, len(class.facts[roll]))
		for date, status := range class.facts[roll] {
			dates[date] = status
		}
		rows = append(rows, attendance.LedgerRow{RollNumber: roll, Dates: dates})
	}
	return rows, nil
}
