package checkin_test

import (
	"fmt"
	"testing"
	"time"

	"gymdesk/internal/domain/checkin"
)

func TestNewEntryID(t *testing.T) {
	at := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)
	got := checkin.NewEntryID("M1", at)
	want := fmt.Sprintf("M1-%d", at.UnixMilli())
	if got != want {
		t.Errorf("NewEntryID = %q, want %q", got, want)
	}
}

func TestLedgerEntryValidate(t *testing.T) {
	valid := checkin.LedgerEntry{
		ID:           "M1-1000",
		AttendanceID: "M1-1000",
		TargetID:     "M1",
		Date:         "2026-03-10",
		Type:         checkin.EntryTypeMember,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(e *checkin.LedgerEntry)
	}{
		{"empty id", func(e *checkin.LedgerEntry) { e.ID = "" }},
		{"id and attendance id diverge", func(e *checkin.LedgerEntry) { e.AttendanceID = "other" }},
		{"no target", func(e *checkin.LedgerEntry) { e.TargetID = "" }},
		{"no date", func(e *checkin.LedgerEntry) { e.Date = "" }},
		{"unknown type", func(e *checkin.LedgerEntry) { e.Type = "GUEST" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			if err := e.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLedgerEntryIsToday(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 0, 0, 0, time.UTC)
	e := checkin.LedgerEntry{Date: "2026-03-10"}
	if !e.IsToday(now) {
		t.Error("entry dated today should report today")
	}
	if e.IsToday(now.AddDate(0, 0, 1)) {
		t.Error("entry should not survive the day boundary")
	}
}
