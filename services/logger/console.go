package logsvc

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/trezcool/darasa/core"
)

// ConsoleLogger is the DEV logger: zerolog with a human console writer.
type ConsoleLogger struct {
	log     zerolog.Logger
	enabled bool
}

var _ core.Logger = (*ConsoleLogger)(nil)

func NewConsoleLogger() *ConsoleLogger {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return &ConsoleLogger{log: zl, enabled: true}
}

func (l *ConsoleLogger) Enable(enabled bool) {
	l.enabled = enabled
}

func (l *ConsoleLogger) emit(ev *zerolog.Event, msg string, args []interface{}) {
	if !l.enabled {
		return
	}
	for _, arg := range args {
		if err, ok := arg.(error); ok {
			ev = ev.Err(err)
		} else {
			ev = ev.Interface("ctx", arg)
		}
	}
	ev.Msg(msg)
}

func (l *ConsoleLogger) Debug(msg string, args ...interface{}) { l.emit(l.log.Debug(), msg, args) }
func (l *ConsoleLogger) Info(msg string, args ...interface{})  { l.emit(l.log.Info(), msg, args) }
func (l *ConsoleLogger) Warn(msg string, args ...interface{})  { l.emit(l.log.Warn(), msg, args) }
func (l *ConsoleLogger) Error(msg string, args ...interface{}) { l.emit(l.log.Error(), msg, args) }
func (l *ConsoleLogger) Fatal(msg string, args ...interface{}) { l.emit(l.log.Fatal(), msg, args) }
