package attendance

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Status is a present/absent value as stored in the ledger.
type Status int

const (
	StatusAbsent  Status = 0
	StatusPresent Status = 1
)

func (s Status) String() string {
	if s == StatusPresent {
		return "Present"
	}
	return "Absent"
}

func (s Status) Opposite() Status {
	if s == StatusPresent {
		return StatusAbsent
	}
	return StatusPresent
}

var ErrInvalidStatus = errors.New("status must be Present or Absent")

// ParseStatus matches "Present" or "Absent" case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "present":
		return StatusPresent, nil
	case "absent":
		return StatusAbsent, nil
	}
	return StatusAbsent, ErrInvalidStatus
}

// IST is the single supported civil calendar of the system. Dates supplied
// by callers are shifted here before a ledger date key is derived; callers
// must not pre-offset.
var IST = time.FixedZone("IST", 5*60*60+30*60)

// DateKey derives the ledger key (YYYYMMDD) for t in the IST civil calendar.
func DateKey(t time.Time) string {
	return t.In(IST).Format("20060102")
}

// LedgerRow is one enrolled roll number with its per-date status. A date key
// missing from Dates means attendance was never taken for that date.
type LedgerRow struct {
	RollNumber string            `json:"roll_number"`
	Dates      map[string]Status `json:"dates"`
}

// UnknownRollWarning is raised (not fatally) when a status is declared for a
// roll number that has no ledger row.
type UnknownRollWarning struct {
	RollNumber string `json:"roll_number"`
	DateKey    string `json:"date"`
}

func (w UnknownRollWarning) String() string {
	return fmt.Sprintf("roll number %s is not enrolled; attendance for %s not recorded", w.RollNumber, w.DateKey)
}

// Result is the outcome of one confirmed session: how many ledger rows were
// written and every per-roll warning that was recovered along the way.
// There is no silent failure; anything skipped is reported here.
type Result struct {
	Date     string               `json:"date"`
	Marked   int                  `json:"marked"`
	Warnings []UnknownRollWarning `json:"warnings,omitempty"`
}
