package views

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"sync"

	"sensor-core/models"
)

// CSVWriter is a concurrency-safe, buffered CSV writer for exporting
// sensor readings.
//
//   - Underlying bufio.Writer absorbs write syscall overhead.
//   - The mutex is held only for the duration of a single row encode.
//   - Flush() is left to the caller so the write path never blocks on I/O.
type CSVWriter struct {
	mu   sync.Mutex
	file *os.File
	buf  *bufio.Writer
	csv  *csv.Writer
	rows uint64
}

// NewCSVWriter opens (or creates) a file and writes the CSV header row.
func NewCSVWriter(path string, bufSizeBytes int, writeHeader bool, header []string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("csv create %s: %w", path, err)
	}

	if bufSizeBytes <= 0 {
		bufSizeBytes = 64 * 1024 // 64 KB default
	}

	bw := bufio.NewWriterSize(f, bufSizeBytes)
	cw := csv.NewWriter(bw)

	w := &CSVWriter{
		file: f,
		buf:  bw,
		csv:  cw,
	}

	if writeHeader && len(header) > 0 {
		if err := cw.Write(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("csv write header: %w", err)
		}
	}

	return w, nil
}

// WriteRow appends a single CSV row. Thread-safe.
func (w *CSVWriter) WriteRow(row []string) {
	w.mu.Lock()
	_ = w.csv.Write(row) // error is buffered; checked on Flush
	w.rows++
	w.mu.Unlock()
}

// WriteRecord appends one record via its CSVRow method.
func (w *CSVWriter) WriteRecord(rec models.CSVRowWriter) {
	w.WriteRow(rec.CSVRow())
}

// Flush pushes the buffered data to the OS.
func (w *CSVWriter) Flush() {
	w.mu.Lock()
	w.csv.Flush()
	_ = w.buf.Flush()
	w.mu.Unlock()
}

// Close flushes remaining data and closes the file.
func (w *CSVWriter) Close() {
	w.Flush()
	w.mu.Lock()
	_ = w.file.Close()
	w.mu.Unlock()
}

// Rows returns the number of data rows written (excludes header).
func (w *CSVWriter) Rows() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rows
}
