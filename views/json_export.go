package views

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// EncodeJSON serialises a record to compact JSON. Field names follow the
// struct tags on the models, so another process can decode the bytes
// back into an equal record.
func EncodeJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return data, nil
}

// EncodeJSONIndent serialises a record to human-readable JSON.
func EncodeJSONIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return data, nil
}

// DecodeJSON parses bytes produced by EncodeJSON back into out.
func DecodeJSON(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

// JSONWriter appends one JSON document per line to a file. It mirrors
// the CSVWriter contract (WriteRecord/Flush/Close/Rows) so the export
// step can treat both uniformly.
type JSONWriter struct {
	mu   sync.Mutex
	file *os.File
	buf  *bufio.Writer
	rows uint64
}

// NewJSONWriter opens (or creates) a line-delimited JSON file.
func NewJSONWriter(path string, bufSizeBytes int) (*JSONWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("json create %s: %w", path, err)
	}
	if bufSizeBytes <= 0 {
		bufSizeBytes = 64 * 1024
	}
	return &JSONWriter{
		file: f,
		buf:  bufio.NewWriterSize(f, bufSizeBytes),
	}, nil
}

// WriteRecord appends one record as a single JSON line. Thread-safe.
func (w *JSONWriter) WriteRecord(rec any) error {
	data, err := EncodeJSON(rec)
	if err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.buf.Write(data); err != nil {
		return fmt.Errorf("json write: %w", err)
	}
	if err := w.buf.WriteByte('\n'); err != nil {
		return fmt.Errorf("json write: %w", err)
	}
	w.rows++
	return nil
}

// Flush pushes the buffered data to the OS.
func (w *JSONWriter) Flush() {
	w.mu.Lock()
	_ = w.buf.Flush()
	w.mu.Unlock()
}

// Close flushes remaining data and closes the file.
func (w *JSONWriter) Close() {
	w.Flush()
	w.mu.Lock()
	_ = w.file.Close()
	w.mu.Unlock()
}

// Rows returns the number of records written.
func (w *JSONWriter) Rows() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.rows
}
