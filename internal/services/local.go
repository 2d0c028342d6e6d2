package services

import (
	"fmt"
	"strings"
	"time"
)

// LocalResponder answers a narrow class of date/time questions without
// contacting the generative API.
type LocalResponder struct {
	now func() time.Time
}

func NewLocalResponder() *LocalResponder {
	return &LocalResponder{now: time.Now}
}

// NewLocalResponderWithClock injects the clock, for tests.
func NewLocalResponderWithClock(now func() time.Time) *LocalResponder {
	return &LocalResponder{now: now}
}

// TryHandle returns a reply and true when the message asks about the date or
// time. The match is a plain substring check on the lower-cased message, not
// intent classification, so a message like "Can you update the date field?"
// is also handled locally.
func (l *LocalResponder) TryHandle(message string) (string, bool) {
	lower := strings.ToLower(message)
	if !strings.Contains(lower, "date") && !strings.Contains(lower, "time") {
		return "", false
	}

	now := l.now()
	reply := fmt.Sprintf("Today is %s and the time is %s.",
		now.Format("January 02, 2006"),
		now.Format("15:04:05"))
	return reply, true
}
