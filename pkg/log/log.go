// Package log provides the small structured logger used throughout this
// module. Components never call fmt.Println directly; they take a Logger
// so the machine driver can swap in the null logger for --silent.
package log

import "fmt"

// Logger is the three-level logger consumed by the CLI, the machine
// driver, the cartridge loader and the inspector. The core only ever needs info/warning/
// critical (spec §6); there is no debug level.
type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type logger struct{}

// New returns a Logger that writes to stdout.
func New() Logger {
	return &logger{}
}

func (l *logger) Infof(format string, args ...interface{}) {
	fmt.Printf("[INFO]\t"+format+"\n", args...)
}

func (l *logger) Warnf(format string, args ...interface{}) {
	fmt.Printf("[WARN]\t"+format+"\n", args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	fmt.Printf("[CRIT]\t"+format+"\n", args...)
}
