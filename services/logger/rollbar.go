// Package logsvc implements core.Logger on top of the standard logger, reporting to Rollbar.
package logsvc

import (
	"log"

	"github.com/rollbar/rollbar-go"
	"github.com/rollbar/rollbar-go/errors"

	"github.com/trezcool/masomo/core"
	"github.com/trezcool/masomo/core/user"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
	levelFatal
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (lvl level) String() string {
	return levelNames[lvl]
}

type RollbarLogger struct {
	std      *log.Logger
	minLevel level
	report   func(lvl level, args ...interface{})
}

var _ core.Logger = (*RollbarLogger)(nil)

// NewRollbarLogger reports to Rollbar only when a token is configured, outside debug and test mode.
// Debug messages are dropped unless conf.Debug is set.
func NewRollbarLogger(std *log.Logger, conf *core.Config) *RollbarLogger {
	rollbar.SetToken(conf.RollbarToken)
	rollbar.SetEnvironment(conf.Env)
	rollbar.SetServerHost(conf.Server.Host)
	rollbar.SetCodeVersion(conf.Build)
	rollbar.SetStackTracer(errors.StackTracer)

	l := &RollbarLogger{std: std, minLevel: levelInfo, report: send}
	if conf.Debug {
		l.minLevel = levelDebug
	}
	l.Enable(conf.RollbarToken != "" && !conf.Debug && !conf.TestMode)
	return l
}

func (l *RollbarLogger) Enable(enabled bool) {
	rollbar.SetEnabled(enabled)
}

// Flush waits for the pending Rollbar items to be sent.
func (l *RollbarLogger) Flush() {
	rollbar.Wait()
}

func send(lvl level, args ...interface{}) {
	switch lvl {
	case levelDebug:
		rollbar.Debug(args...)
	case levelInfo:
		rollbar.Info(args...)
	case levelWarn:
		rollbar.Warning(args...)
	case levelError:
		rollbar.Error(args...)
	default:
		rollbar.Critical(args...)
	}
}

// expected args: error, map[string]interface{} (extras), user.User (authenticated admin)
func (l *RollbarLogger) prepare(msg string, args []interface{}) (items []interface{}, person *user.User) {
	items = make([]interface{}, 0, len(args)+1)
	items = append(items, msg)
	for _, arg := range args {
		switch v := arg.(type) {
		case user.User:
			if person == nil {
				usr := v
				person = &usr
			}
		case *user.User:
			if person == nil && v != nil {
				person = v
			}
		default:
			items = append(items, arg)
		}
	}
	return items, person
}

func (l *RollbarLogger) log(lvl level, msg string, args []interface{}) {
	if lvl < l.minLevel {
		return
	}
	items, person := l.prepare(msg, args)
	if person != nil {
		rollbar.SetPerson(person.ID, person.Username, person.Email)
	} else {
		rollbar.ClearPerson()
	}
	l.report(lvl, items...)

	l.std.Printf("[%s] %s", lvl, msg)
	if person != nil {
		l.std.Printf("  user: %s (%s)", person.Username, person.ID)
	}
	for _, item := range items[1:] {
		l.std.Printf("  %+v", item)
	}
}

func (l *RollbarLogger) Debug(msg string, args ...interface{}) {
	l.log(levelDebug, msg, args)
}

func (l *RollbarLogger) Info(msg string, args ...interface{}) {
	l.log(levelInfo, msg, args)
}

func (l *RollbarLogger) Warn(msg string, args ...interface{}) {
	l.log(levelWarn, msg, args)
}

func (l *RollbarLogger) Error(msg string, args ...interface{}) {
	l.log(levelError, msg, args)
}

func (l *RollbarLogger) Fatal(msg string, args ...interface{}) {
	l.log(levelFatal, msg, args)
	l.Flush()
	l.std.Fatal(msg)
}
