package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/shivamudipelly/aora/core"
	"github.com/shivamudipelly/aora/core/attendance"
	"github.com/shivamudipelly/aora/core/roster"
	"github.com/shivamudipelly/aora/core/schedule"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	conf          *core.Config
	db            *sqlx.DB
	scheduleSvc   *schedule.Service
	rosterSvc     *roster.Service
	attendanceSvc *attendance.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate                                     - apply pending schema migrations")
	fmt.Println("  addclass -subject S -branch B -section C -days Monday,Wednesday -prefix P -rolls 1-22 [-lateral-prefix LP -lateral-rolls 1-5]")
	fmt.Println("                                              - schedule a class and enroll its roster")
	fmt.Println("  schedules                                   - list all class schedules")
	fmt.Println("  ledger -subject S -branch B -section C      - print the attendance ledger of a class")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addClassCmd := flag.NewFlagSet("addclass", flag.ExitOnError)
	addClassSubject := addClassCmd.String("subject", "", "Subject taught.")
	addClassBranch := addClassCmd.String("branch", "", "Branch, e.g cse.")
	addClassSection := addClassCmd.String("section", "", "Section, e.g a.")
	addClassDays := addClassCmd.String("days", "", "Comma-separated weekday names.")
	addClassPrefix := addClassCmd.String("prefix", "", "Roll number prefix, e.g 22EG105J.")
	addClassRolls := addClassCmd.String("rolls", "", "Roll number ranges, e.g 1-22,25.")
	addClassLatPrefix := addClassCmd.String("lateral-prefix", "", "Lateral-entry roll number prefix.")
	addClassLatRolls := addClassCmd.String("lateral-rolls", "", "Lateral-entry roll number ranges.")

	ledgerCmd := flag.NewFlagSet("ledger", flag.ExitOnError)
	ledgerSubject := ledgerCmd.String("subject", "", "Subject taught.")
	ledgerBranch := ledgerCmd.String("branch", "", "Branch, e.g cse.")
	ledgerSection := ledgerCmd.String("section", "", "Section, e.g a.")

	switch args[1] {
	case "migrate":
		return cli.migrate()
	case "addclass":
		if err := addClassCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addClassSubject == "" || *addClassBranch == "" || *addClassSection == "" ||
			*addClassDays == "" || *addClassPrefix == "" || *addClassRolls == "" {
			addClassCmd.Usage()
			return errHelp
		}
		return cli.addClass(
			*addClassSubject, *addClassBranch, *addClassSection, *addClassDays,
			*addClassPrefix, *addClassRolls, *addClassLatPrefix, *addClassLatRolls,
		)
	case "schedules":
		return cli.printSchedules()
	case "ledger":
		if err := ledgerCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *ledgerSubject == "" || *ledgerBranch == "" || *ledgerSection == "" {
			ledgerCmd.Usage()
			return errHelp
		}
		return cli.printLedger(*ledgerSubject, *ledgerBranch, *ledgerSection)
	default:
		cli.printUsage()
		return errHelp
	}
}
