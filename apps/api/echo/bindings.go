package echoapi

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/shivamudipelly/aora/core/attendance"
	"github.com/shivamudipelly/aora/core/schedule"
)

type (
	// NewClassRequest sets up a class: its weekly meeting days plus the
	// enrolled roster expressed as prefix + roll-range. Lateral-entry
	// students come as a second prefix/range pair appended after the
	// primary cohort.
	NewClassRequest struct {
		Subject string   `json:"subject" validate:"required,alphanum_"`
		Branch  string   `json:"branch" validate:"required,alphanum_"`
		Section string   `json:"section" validate:"required,alphanum_"`
		Days    []string `json:"days" validate:"required,min=1,dive,required"`

		Prefix      string `json:"prefix" validate:"required"`
		RollNumbers string `json:"roll_numbers" validate:"required"`

		LateralPrefix      string `json:"lateral_prefix" validate:"required_with=LateralRollNumbers"`
		LateralRollNumbers string `json:"lateral_roll_numbers" validate:"required_with=LateralPrefix"`
	}

	// EnrollRequest adds more students to an existing roster.
	EnrollRequest struct {
		Subject     string `json:"subject" validate:"required,alphanum_"`
		Branch      string `json:"branch" validate:"required,alphanum_"`
		Section     string `json:"section" validate:"required,alphanum_"`
		Prefix      string `json:"prefix" validate:"required"`
		RollNumbers string `json:"roll_numbers" validate:"required"`
	}

	// RemoveScheduleRequest deletes one class meeting day.
	RemoveScheduleRequest struct {
		Subject string `json:"subject" validate:"required"`
		Branch  string `json:"branch" validate:"required"`
		Section string `json:"section" validate:"required"`
		Day     string `json:"day" validate:"required"`
	}

	// RescheduleRequest moves one class meeting to another day
	// (delete + reinsert; schedules are never updated in place).
	RescheduleRequest struct {
		Subject string `json:"subject" validate:"required"`
		Branch  string `json:"branch" validate:"required"`
		Section string `json:"section" validate:"required"`
		OldDay  string `json:"old_day" validate:"required"`
		NewDay  string `json:"new_day" validate:"required"`
	}

	// AttendanceRequest runs one attendance session: the declared status is
	// applied to the selected roll numbers and the opposite status to the
	// rest of the roster. Date defaults to now and is interpreted in the
	// system's civil calendar; callers must not pre-offset it.
	AttendanceRequest struct {
		Subject  string    `json:"subject" validate:"required,alphanum_"`
		Branch   string    `json:"branch" validate:"required,alphanum_"`
		Section  string    `json:"section" validate:"required,alphanum_"`
		Status   string    `json:"status" validate:"required"`
		Rolls    []string  `json:"rolls" validate:"required,min=1,dive,required"`
		Date     time.Time `json:"date"`
	}
)

func (req *NewClassRequest) Validate(validate *validator.Validate) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	for _, day := range req.Days {
		if _, err := schedule.ParseWeekday(day); err != nil {
			return err
		}
	}
	return nil
}

func (req *EnrollRequest) Validate(validate *validator.Validate) error {
	return validate.Struct(req)
}

func (req *RemoveScheduleRequest) Validate(validate *validator.Validate) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	_, err := schedule.ParseWeekday(req.Day)
	return err
}

func (req *RescheduleRequest) Validate(validate *validator.Validate) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	if _, err := schedule.ParseWeekday(req.OldDay); err != nil {
		return err
	}
	_, err := schedule.ParseWeekday(req.NewDay)
	return err
}

func (req *AttendanceRequest) Validate(validate *validator.Validate) error {
	if err := validate.Struct(req); err != nil {
		return err
	}
	_, err := attendance.ParseStatus(req.Status)
	return err
}
