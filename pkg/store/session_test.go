package store

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestAppendEvictsOldTurns(t *testing.T) {
	s := NewSession("s1")

	for i := 0; i < MaxHistoryTurns+4; i++ {
		s.Append("user", "turn "+strconv.Itoa(i))
	}

	if len(s.History) != MaxHistoryTurns {
		t.Fatalf("history length = %d, want %d", len(s.History), MaxHistoryTurns)
	}
	if s.History[0].Text != "turn 4" {
		t.Errorf("oldest kept turn = %q, want turn 4", s.History[0].Text)
	}
	if s.History[len(s.History)-1].Text != "turn 15" {
		t.Errorf("newest turn = %q", s.History[len(s.History)-1].Text)
	}
}

func TestSummarizeClipsLongTurns(t *testing.T) {
	s := NewSession("s1")
	long := strings.Repeat("a", 500)

	s.Summarize(long, "short reply")
	if !strings.Contains(s.RunningSummary, "- U: "+strings.Repeat("a", 160)+" | A: short reply") {
		t.Errorf("summary = %q", s.RunningSummary)
	}
	if strings.Contains(s.RunningSummary, strings.Repeat("a", 161)) {
		t.Error("user text not clipped to 160 characters")
	}

	s.Summarize("second", "turn")
	if strings.Count(s.RunningSummary, "- U: ") != 2 {
		t.Errorf("summary should accumulate lines: %q", s.RunningSummary)
	}
}

func TestSummarizeClipsOnRuneBoundary(t *testing.T) {
	s := NewSession("s1")
	long := strings.Repeat("ü", 300)

	s.Summarize(long, "café reply")
	if !utf8.ValidString(s.RunningSummary) {
		t.Fatalf("summary contains invalid UTF-8: %q", s.RunningSummary)
	}
	if !strings.Contains(s.RunningSummary, strings.Repeat("ü", 160)) {
		t.Error("user text should keep 160 full characters")
	}
	if strings.Contains(s.RunningSummary, strings.Repeat("ü", 161)) {
		t.Error("user text not clipped to 160 characters")
	}
}

func TestNewSessionDefaults(t *testing.T) {
	s := NewSession("abc")

	if s.ID != "abc" {
		t.Errorf("id = %q", s.ID)
	}
	if s.ActiveFlow != FlowNone {
		t.Errorf("active flow = %q, want none", s.ActiveFlow)
	}
	if s.UmbrellaSlots == nil {
		t.Error("umbrella slots map should be initialized")
	}
}
