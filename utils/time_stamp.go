package utils

import (
	"fmt"
	"time"
)

// NowMillis returns the current time as milliseconds since Unix epoch,
// the timestamp unit every sensor record uses.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// MillisToTime converts a millisecond Unix timestamp back to time.Time.
func MillisToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

// FormatMillis converts ms-epoch to a human-friendly string.
func FormatMillis(ms int64) string {
	return MillisToTime(ms).Format("2006-01-02 15:04:05.000")
}

// SessionName returns a unique export directory name:
//
//	<prefix>_YYYYMMDD_HHMMSS
func SessionName(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, time.Now().Format("20060102_150405"))
}
