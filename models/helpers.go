package models

import (
	"strconv"
)

// ─── shared formatting helpers (package-private) ────────────────────────

func itoa(v int) string     { return strconv.Itoa(v) }
func itoa64(v int64) string { return strconv.FormatInt(v, 10) }
func ftoa(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// fptoa renders an optional float, empty cell when absent.
func fptoa(v *float64, prec int) string {
	if v == nil {
		return ""
	}
	return ftoa(*v, prec)
}

// CSVRowWriter is the interface every exportable record must satisfy.
type CSVRowWriter interface {
	CSVHeader() []string
	CSVRow() []string
}

// Float64Ptr returns a pointer to v, for filling optional record fields.
func Float64Ptr(v float64) *float64 { return &v }
