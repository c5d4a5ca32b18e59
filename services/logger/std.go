package logsvc

import (
	"log"
	"os"

	"github.com/shivamudipelly/aora/core"
)

// StdLogger logs to stdout only; used in Debug mode where no external
// reporting is wanted.
type StdLogger struct {
	std *log.Logger
}

var _ core.Logger = (*StdLogger)(nil)

func NewStdLogger(prefix string) *StdLogger {
	return &StdLogger{std: log.New(os.Stdout, prefix, log.LstdFlags|log.Lmicroseconds|log.Lshortfile)}
}

func (l StdLogger) Enable(bool) {}

func (l StdLogger) Info(msg string, args ...interface{}) {
	l.print("INFO: "+msg, args)
}

func (l StdLogger) Error(msg string, args ...interface{}) {
	l.print("ERROR: "+msg, args)
}

func (l StdLogger) Fatal(msg string, args ...interface{}) {
	l.print("FATAL: "+msg, args)
	os.Exit(1)
}

func (l StdLogger) print(msg string, args []interface{}) {
	_ = l.std.Output(3, msg)
	for _, arg := range args {
		l.std.Printf("%+v\n", arg)
	}
}
