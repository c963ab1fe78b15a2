package client

import "log"

// Notifier surfaces mutation outcomes to the user.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// LogNotifier writes outcomes to the standard logger.
type LogNotifier struct{}

func (LogNotifier) Success(msg string) { log.Printf("ok: %s", msg) }
func (LogNotifier) Error(msg string)   { log.Printf("error: %s", msg) }

type NopNotifier struct{}

func (NopNotifier) Success(string) {}
func (NopNotifier) Error(string)   {}
