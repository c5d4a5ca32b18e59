package schedule

import (
	"strings"
	"time"
)

// Weekday is one of the seven English weekday names.
type Weekday string

const (
	Sunday    Weekday = "Sunday"
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
)

var Weekdays = []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// ParseWeekday matches a weekday name case-insensitively.
func ParseWeekday(s string) (Weekday, error) {
	name := strings.TrimSpace(s)
	for _, day := range Weekdays {
		if strings.EqualFold(string(day), name) {
			return day, nil
		}
	}
	return "", ErrInvalidWeekday
}

// ClassSchedule is one recurring weekly class meeting. It is never mutated
// in place; edits are delete + reinsert.
type ClassSchedule struct {
	Subject       string    `json:"subject" db:"subject"`
	BranchSection string    `json:"branch_section" db:"branch_section"`
	Day           Weekday   `json:"day" db:"day"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// NewSchedule is the creation payload for one class meeting day.
type NewSchedule struct {
	Subject       string `json:"subject" validate:"required,alphanum_"`
	BranchSection string `json:"branch_section" validate:"required,alphanum_"`
	Day           string `json:"day" validate:"required"`
}
