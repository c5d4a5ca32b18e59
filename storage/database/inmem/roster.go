package inmemdb

import (
	"context"

	"github.com/shivamudipelly/aora/core/attendance"
	"github.com/shivamudipelly/aora/core/roster"
)

type rosterRepository struct {
	db *DB
}

var _ roster.Repository = (*rosterRepository)(nil)

func NewRosterRepository(db *DB) *rosterRepository {
	return &rosterRepository{db: db}
}

func (repo *rosterRepository) EnsureRoster(_ context.Context, key roster.ClassKey) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.classes[key]; !ok {
		repo.db.classes[key] = newClassTable()
	}
	return nil
}

func (repo *rosterRepository) EnrollRollNumber(_ context.Context, key roster.ClassKey, roll string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	class, ok := repo.db.classes[key]
	if !ok {
		class = newClassTable()
		repo.db.classes[key] = class
	}
	if _, enrolled := class.facts[roll]; enrolled {
		return roster.ErrRollNumberExists
	}
	class.rolls = append(class.rolls, roll)
	dates := make(map[string]attendance.Status, len(class.dates))
	for date := range class.dates {
		dates[date] = attendance.StatusAbsent
	}
	class.facts[roll] = dates
	return nil
}

func (repo *rosterRepository) QueryRollNumbers(_ context.Context, key roster.ClassKey) ([]string, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	class, ok := repo.db.classes[key]
	if !ok {
		return []string{}, nil
	}
	rolls := make([]string, len(class.rolls))
	copy(rolls, class.rolls)
	return rolls, nil
}

func (repo *rosterRepository) DeleteRoster(_ context.Context, key roster.ClassKey) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	delete(repo.db.classes, key)
	return nil
}
