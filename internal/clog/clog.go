// Package clog wires structured logging into the interpreter and CLI.
//
// The evaluator, modules and parser packages do not log. The REPL and the
// CLI's run command take a Logger, which is a no-op unless the CLI turns on
// a development logger under --verbose/-v.
package clog

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Logger wraps a *zap.SugaredLogger with a session id used to correlate
// log lines from a single REPL run or script execution.
type Logger struct {
	*zap.SugaredLogger
	SessionID string
}

// New builds a Logger. verbose selects a human-readable development logger;
// otherwise every call is a no-op.
func New(verbose bool) *Logger {
	var base *zap.Logger
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			l = zap.NewNop()
		}
		base = l
	} else {
		base = zap.NewNop()
	}
	sessionID := uuid.New().String()
	return &Logger{
		SugaredLogger: base.Sugar().With("session", sessionID),
		SessionID:     sessionID,
	}
}

// Nop returns a Logger that discards everything, for callers that don't
// want to thread a verbosity flag through.
func Nop() *Logger {
	return New(false)
}
