package attendance

import (
	"context"

	"github.com/pkg/errors"

	"github.com/shivamudipelly/aora/core/roster"
)

type (
	Repository interface {
		// EnsureDate opens the ledger for a date: every enrolled roll number
		// gets a default absent fact for dateKey. Idempotent; re-opening an
		// already-open date changes nothing.
		EnsureDate(ctx context.Context, key roster.ClassKey, dateKey string) error
		// UpdateStatus sets the status of the given roll numbers for an open
		// date and returns the roll numbers actually written; roll numbers
		// with no ledger row are skipped, not errored.
		UpdateStatus(ctx context.Context, key roster.ClassKey, rolls []string, dateKey string, status Status) ([]string, error)
		// QueryLedger returns one row per enrolled roll number, in roster
		// insertion order, with every recorded date.
		QueryLedger(ctx context.Context, key roster.ClassKey) ([]LedgerRow, error)
	}

	// Service reconciles a partial status declaration into a full-roster
	// ledger update. It owns no state of its own; sessions are supplied by
	// the caller.
	Service struct {
		repo      Repository
		rosterSvc *roster.Service
	}
)

func NewService(repo Repository, rosterSvc *roster.Service) *Service {
	return &Service{repo: repo, rosterSvc: rosterSvc}
}

// Confirm applies a submitted session to the ledger: the selected roll
// numbers get the declared status and the rest of the roster gets the
// opposite. Unknown roll numbers are aggregated as warnings rather than
// failing the session. Confirming the same session twice fails with
// ErrSessionConfirmed before any ledger mutation.
func (svc *Service) Confirm(ctx context.Context, sess *Session) (Result, error) {
	if err := sess.confirmable(); err != nil {
		return Result{}, err
	}

	dateKey := DateKey(sess.Date)
	res := Result{Date: dateKey}

	enrolled, err := svc.rosterSvc.ListRollNumbers(ctx, sess.Class)
	if err != nil {
		return res, errors.Wrap(err, "loading roster")
	}

	if err = svc.repo.EnsureDate(ctx, sess.Class, dateKey); err != nil {
		return res, errors.Wrap(err, "opening ledger date")
	}

	marked, err := svc.repo.UpdateStatus(ctx, sess.Class, sess.Selected, dateKey, sess.Declared)
	if err != nil {
		return res, errors.Wrap(err, "marking selected roll numbers")
	}
	res.Marked += len(marked)
	res.Warnings = append(res.Warnings, skippedWarnings(sess.Selected, marked, dateKey)...)

	if remainder := difference(enrolled, sess.Selected); len(remainder) > 0 {
		marked, err = svc.repo.UpdateStatus(ctx, sess.Class, remainder, dateKey, sess.Declared.Opposite())
		if err != nil {
			return res, errors.Wrap(err, "marking remaining roll numbers")
		}
		res.Marked += len(marked)
		res.Warnings = append(res.Warnings, skippedWarnings(remainder, marked, dateKey)...)
	}

	sess.markConfirmed()
	return res, nil
}

// Snapshot returns the full ledger for a class; reporting filters on the
// date column it wants to display.
func (svc *Service) Snapshot(ctx context.Context, key roster.ClassKey) ([]LedgerRow, error) {
	return svc.repo.QueryLedger(ctx, key)
}

// difference returns the elements of all not present in sub, preserving the
// order of all.
func difference(all, sub []string) []string {
	drop := make(map[string]struct{}, len(sub))
	for _, s := range sub {
		drop[s] = struct{}{}
	}
	rest := make([]string, 0, len(all))
	for _, s := range all {
		if _, ok := drop[s]; !ok {
			rest = append(rest, s)
		}
	}
	return rest
}

func skippedWarnings(requested, written []string, dateKey string) []UnknownRollWarning {
	if len(written) == len(requested) {
		return nil
	}
	ok := make(map[string]struct{}, len(written))
	for _, r := range written {
		ok[r] = struct{}{}
	}
	var warns []UnknownRollWarning
	for _, r := range requested {
		if _, found := ok[r]; !found {
			warns = append(warns, UnknownRollWarning{RollNumber: r, DateKey: dateKey})
		}
	}
	return warns
}
