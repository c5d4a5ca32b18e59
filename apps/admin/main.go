package main

import (
	"log"
	"os"

	"github.com/shivamudipelly/aora/core"
	"github.com/shivamudipelly/aora/core/attendance"
	"github.com/shivamudipelly/aora/core/roster"
	"github.com/shivamudipelly/aora/core/schedule"
	"github.com/shivamudipelly/aora/storage/database"
	sqlxrepos "github.com/shivamudipelly/aora/storage/database/sqlx"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up DB
	db, err := database.Open(conf)
	errAndDie(err)
	defer db.Close()

	rosterSvc := roster.NewService(sqlxrepos.NewRosterRepository(db))

	// start CLI
	cli := commandLine{
		conf:          conf,
		db:            db,
		scheduleSvc:   schedule.NewService(sqlxrepos.NewScheduleRepository(db)),
		rosterSvc:     rosterSvc,
		attendanceSvc: attendance.NewService(sqlxrepos.NewAttendanceRepository(db), rosterSvc),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
