package roster

import (
	"context"
	"errors"
)

var (
	// errors
	ErrRollNumberExists = errors.New("roll number already enrolled in this class")
)

type (
	Repository interface {
		// EnsureRoster makes the aggregate addressable; calling it for an
		// existing roster is a no-op.
		EnsureRoster(ctx context.Context, key ClassKey) error
		// EnrollRollNumber inserts one roll number; a duplicate is rejected
		// with ErrRollNumberExists and must leave the existing row (and its
		// ledger history) untouched. A freshly enrolled roll number gets a
		// default absent ledger fact for every date already known to the class.
		EnrollRollNumber(ctx context.Context, key ClassKey, roll string) error
		// QueryRollNumbers returns the full roster in insertion order; an
		// unknown roster yields an empty slice, not an error.
		QueryRollNumbers(ctx context.Context, key ClassKey) ([]string, error)
		// DeleteRoster drops the roster and its ledger facts; no-op when absent.
		DeleteRoster(ctx context.Context, key ClassKey) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) EnsureRoster(ctx context.Context, key ClassKey) error {
	return svc.repo.EnsureRoster(ctx, key)
}

// Enroll inserts each roll number in order. Duplicates are recorded in the
// result and skipped; the remaining insertions still run.
func (svc *Service) Enroll(ctx context.Context, key ClassKey, rolls []string) (EnrollResult, error) {
	if err := svc.repo.EnsureRoster(ctx, key); err != nil {
		return EnrollResult{}, err
	}

	res := EnrollResult{Enrolled: make([]string, 0, len(rolls))}
	for _, roll := range rolls {
		if err := svc.repo.EnrollRollNumber(ctx, key, roll); err != nil {
			if errors.Is(err, ErrRollNumberExists) {
				res.Failed = append(res.Failed, EnrollFailure{RollNumber: roll, Error: err.Error()})
				continue
			}
			return res, err
		}
		res.Enrolled = append(res.Enrolled, roll)
	}
	return res, nil
}

func (svc *Service) ListRollNumbers(ctx context.Context, key ClassKey) ([]string, error) {
	return svc.repo.QueryRollNumbers(ctx, key)
}

func (svc *Service) RemoveRoster(ctx context.Context, key ClassKey) error {
	return svc.repo.DeleteRoster(ctx, key)
}
