package services

import (
	"regexp"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2026, time.March, 7, 9, 5, 3, 0, time.UTC)
}

func TestLocalResponder_HandlesTimeQuestion(t *testing.T) {
	l := NewLocalResponderWithClock(fixedClock)

	reply, ok := l.TryHandle("What time is it?")
	if !ok {
		t.Fatal("Expected time question to be handled locally")
	}

	want := "Today is March 07, 2026 and the time is 09:05:03."
	if reply != want {
		t.Errorf("Expected %q, got %q", want, reply)
	}
}

func TestLocalResponder_ReplyMatchesPattern(t *testing.T) {
	l := NewLocalResponder()

	reply, ok := l.TryHandle("what's the date today")
	if !ok {
		t.Fatal("Expected date question to be handled locally")
	}

	pattern := regexp.MustCompile(`^Today is [A-Z][a-z]+ \d{2}, \d{4} and the time is \d{2}:\d{2}:\d{2}\.$`)
	if !pattern.MatchString(reply) {
		t.Errorf("Reply %q does not match expected date/time pattern", reply)
	}
}

func TestLocalResponder_SubstringMatch(t *testing.T) {
	tests := []struct {
		name    string
		message string
		handled bool
	}{
		{"plain time question", "What time is it?", true},
		{"plain date question", "Tell me the DATE", true},
		{"substring false positive", "Can you update the date field?", true},
		{"ordinary message", "Hello there", false},
		{"empty message", "", false},
	}

	l := NewLocalResponderWithClock(fixedClock)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := l.TryHandle(tc.message)
			if ok != tc.handled {
				t.Errorf("TryHandle(%q) handled=%v, expected %v", tc.message, ok, tc.handled)
			}
		})
	}
}
