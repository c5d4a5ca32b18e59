package inmemdb

import (
	"sync"

	"github.com/shivamudipelly/aora/core/attendance"
	"github.com/shivamudipelly/aora/core/roster"
	"github.com/shivamudipelly/aora/core/schedule"
)

// DB is an in-memory stand-in for the sql store, used by tests. It mirrors
// the semantics of the sqlx repositories: normalized aggregates keyed by
// (subject, branch_section), insertion-ordered rosters and a date-keyed
// fact set per class.
type DB struct {
	mutex     sync.RWMutex
	schedules []schedule.ClassSchedule
	classes   map[roster.ClassKey]*classTable
}

type classTable struct {
	rolls []string
	facts map[string]map[string]attendance.Status // roll -> dateKey -> status
	dates map[string]struct{}
}

func Open() (*DB, error) {
	return &DB{classes: make(map[roster.ClassKey]*classTable)}, nil
}

func newClassTable() *classTable {
	return &classTable{
		rolls: make([]string, 0),
		facts: make(map[string]map[string]attendance.Status),
		dates: make(map[string]struct{}),
	}
}
