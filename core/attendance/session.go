package attendance

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/shivamudipelly/aora/core/roster"
)

// SessionState tracks one attendance-taking session through
// NotStarted -> StatusChosen -> RollsSelected -> Submitted -> Confirmed|Cancelled.
type SessionState int

const (
	StateNotStarted SessionState = iota
	StateStatusChosen
	StateRollsSelected
	StateSubmitted
	StateConfirmed
	StateCancelled
)

func (s SessionState) String() string {
	switch s {
	case StateNotStarted:
		return "NotStarted"
	case StateStatusChosen:
		return "StatusChosen"
	case StateRollsSelected:
		return "RollsSelected"
	case StateSubmitted:
		return "Submitted"
	case StateConfirmed:
		return "Confirmed"
	case StateCancelled:
		return "Cancelled"
	}
	return "Unknown"
}

var (
	// errors
	ErrSessionConfirmed = errors.New("attendance for this session has already been confirmed")
	ErrSessionCancelled = errors.New("session has been cancelled")
	ErrStatusNotChosen  = errors.New("attendance status has not been chosen")
	ErrNoRollsSelected  = errors.New("no roll numbers selected")
	ErrNotSubmitted     = errors.New("session has not been submitted")
	ErrSubmitted        = errors.New("session has already been submitted")
)

// Session is one instance of taking attendance for one class on one date.
// It is a transient value; only its ledger effects are persisted.
type Session struct {
	ID       string
	Class    roster.ClassKey
	Date     time.Time
	Declared Status
	Selected []string

	state SessionState
}

// NewSession opens a session for a class. A zero date defaults to now.
func NewSession(key roster.ClassKey, date time.Time) *Session {
	if date.IsZero() {
		date = time.Now().UTC()
	}
	return &Session{
		ID:    uuid.New().String(),
		Class: key,
		Date:  date,
		state: StateNotStarted,
	}
}

func (s *Session) State() SessionState { return s.state }

// ChooseStatus declares the status the selection will be marked with.
// Re-choosing before submission clears any selection made so far.
func (s *Session) ChooseStatus(status Status) error {
	if err := s.guardOpen(); err != nil {
		return err
	}
	if s.state == StateSubmitted {
		return ErrSubmitted
	}
	s.Declared = status
	s.Selected = nil
	s.state = StateStatusChosen
	return nil
}

// SelectRolls records the roll numbers the declared status applies to.
func (s *Session) SelectRolls(rolls ...string) error {
	if err := s.guardOpen(); err != nil {
		return err
	}
	if s.state == StateNotStarted {
		return ErrStatusNotChosen
	}
	if s.state == StateSubmitted {
		return ErrSubmitted
	}
	s.Selected = rolls
	s.state = StateRollsSelected
	return nil
}

// Submit freezes the selection for confirmation. An empty selection is
// rejected.
func (s *Session) Submit() error {
	if err := s.guardOpen(); err != nil {
		return err
	}
	switch s.state {
	case StateNotStarted, StateStatusChosen:
		return ErrNoRollsSelected
	case StateSubmitted:
		return ErrSubmitted
	}
	if len(s.Selected) == 0 {
		return ErrNoRollsSelected
	}
	s.state = StateSubmitted
	return nil
}

// Cancel abandons the session; a confirmed session cannot be cancelled.
func (s *Session) Cancel() error {
	if s.state == StateConfirmed {
		return ErrSessionConfirmed
	}
	s.state = StateCancelled
	return nil
}

// confirmable gates Service.Confirm: only a submitted session may be
// confirmed, and exactly once.
func (s *Session) confirmable() error {
	switch s.state {
	case StateConfirmed:
		return ErrSessionConfirmed
	case StateCancelled:
		return ErrSessionCancelled
	case StateSubmitted:
		return nil
	}
	return ErrNotSubmitted
}

func (s *Session) markConfirmed() {
	s.state = StateConfirmed
}

func (s *Session) guardOpen() error {
	switch s.state {
	case StateConfirmed:
		return ErrSessionConfirmed
	case StateCancelled:
		return ErrSessionCancelled
	}
	return nil
}
