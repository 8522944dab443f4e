package utils

import (
	"strings"
	"testing"
	"time"
)

func TestNowMillisRoundTrip(t *testing.T) {
	ms := NowMillis()
	back := MillisToTime(ms)
	if back.UnixMilli() != ms {
		t.Errorf("round trip: %d != %d", back.UnixMilli(), ms)
	}
	if d := time.Since(back); d < 0 || d > time.Second {
		t.Errorf("NowMillis drifted by %v", d)
	}
}

func TestFormatMillis(t *testing.T) {
	ts := time.Date(2026, 8, 26, 10, 30, 0, 0, time.Local).UnixMilli()
	got := FormatMillis(ts)
	if !strings.HasPrefix(got, "2026-08-26 10:30:00") {
		t.Errorf("FormatMillis = %q", got)
	}
}

func TestSessionName(t *testing.T) {
	name := SessionName("session")
	if !strings.HasPrefix(name, "session_") {
		t.Errorf("SessionName = %q", name)
	}
	// prefix + "_YYYYMMDD_HHMMSS"
	if len(name) != len("session_")+15 {
		t.Errorf("unexpected length for %q", name)
	}
}
