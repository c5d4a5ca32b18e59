package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/shivamudipelly/aora/core/roster"
)

// printLedger dumps the attendance ledger of a class: one line per enrolled
// roll number, one column per recorded date.
func (cli *commandLine) printLedger(subject, branch, section string) error {
	rows, err := cli.attendanceSvc.Snapshot(context.Background(), roster.NewClassKey(subject, branch, section))
	if err != nil {
		return err
	}

	// collect the recorded dates across the class
	dateSet := make(map[string]struct{})
	for _, row := range rows {
		for date := range row.Dates {
			dateSet[date] = struct{}{}
		}
	}
	dates := make([]string, 0, len(dateSet))
	for date := range dateSet {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	fmt.Printf("%-15s", "roll_number")
	for _, date := range dates {
		fmt.Printf(" %s", date)
	}
	fmt.Println()
	for _, row := range rows {
		fmt.Printf("%-15s", row.RollNumber)
		for _, date := range dates {
			if status, taken := row.Dates[date]; taken {
				fmt.Printf(" %8d", int(status))
			} else {
				fmt.Printf(" %8s", "-")
			}
		}
		fmt.Println()
	}
	return nil
}
