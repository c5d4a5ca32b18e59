package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/shivamudipelly/aora/core/roster"
	"github.com/shivamudipelly/aora/core/schedule"
)

// addClass schedules a class on each given weekday and enrolls its roster,
// expanded from the prefix + range expression (plus the lateral-entry pair
// when given, appended after the primary cohort).
func (cli *commandLine) addClass(subject, branch, section, days, prefix, rolls, latPrefix, latRolls string) error {
	ctx := context.Background()

	// validate everything before any store mutation
	weekdays := make([]schedule.Weekday, 0)
	for _, name := range strings.Split(days, ",") {
		day, err := schedule.ParseWeekday(name)
		if err != nil {
			return err
		}
		weekdays = append(weekdays, day)
	}

	rollNumbers, err := roster.Expand(strings.ToUpper(prefix), rolls)
	if err != nil {
		return err
	}
	if latRolls != "" {
		lateral, err := roster.Expand(strings.ToUpper(latPrefix), latRolls)
		if err != nil {
			return err
		}
		rollNumbers = append(rollNumbers, lateral...)
	}

	key := roster.NewClassKey(subject, branch, section)
	for _, day := range weekdays {
		if _, err = cli.scheduleSvc.Add(ctx, key.Subject, key.BranchSection, day); err != nil {
			if err == schedule.ErrScheduleExists {
				fmt.Printf("already scheduled on %s; skipped\n", day)
				continue
			}
			return err
		}
	}

	res, err := cli.rosterSvc.Enroll(ctx, key, rollNumbers)
	if err != nil {
		return err
	}
	fmt.Printf("%d roll numbers enrolled in %s %s\n", len(res.Enrolled), key.Subject, key.BranchSection)
	for _, failure := range res.Failed {
		fmt.Printf("  %s skipped: %s\n", failure.RollNumber, failure.Error)
	}
	return nil
}

func (cli *commandLine) printSchedules() error {
	scheds, err := cli.scheduleSvc.List(context.Background())
	if err != nil {
		return err
	}
	for _, sched := range scheds {
		fmt.Printf("%-20s %-10s %s\n", sched.Subject, sched.BranchSection, sched.Day)
	}
	return nil
}
