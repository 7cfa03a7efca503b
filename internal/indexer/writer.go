package indexer

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrWriterClosed is returned when records are emitted after Close.
var ErrWriterClosed = errors.New("index writer is closed")

// IndexWriter streams SourceRecords into a JSON array and then produces a
// pretty-printed copy of the same array. Records are never held in memory.
//
// By default both files are truncated when the writer is created. With
// appendMode set, output is appended to existing files instead, which
// reproduces the historical behaviour of concatenating one array per run.
type IndexWriter struct {
	compactPath   string
	formattedPath string
	appendMode    bool

	file   *os.File
	buf    *bufio.Writer
	offset int64 // where this run's array starts in the compact file
	count  int
	closed bool
}

// NewIndexWriter opens the compact output file and starts the array.
func NewIndexWriter(compactPath, formattedPath string, appendMode bool) (*IndexWriter, error) {
	for _, p := range []string{compactPath, formattedPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	if appendMode {
		flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
	}

	file, err := os.OpenFile(compactPath, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", compactPath, err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat %s: %w", compactPath, err)
	}

	w := &IndexWriter{
		compactPath:   compactPath,
		formattedPath: formattedPath,
		appendMode:    appendMode,
		file:          file,
		buf:           bufio.NewWriter(file),
		offset:        info.Size(),
	}

	if err := w.buf.WriteByte('['); err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to start index: %w", err)
	}

	return w, nil
}

// Emit appends one record to the array.
func (w *IndexWriter) Emit(record SourceRecord) error {
	if w.closed {
		return ErrWriterClosed
	}

	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record %s: %w", record.Name, err)
	}

	if w.count > 0 {
		if err := w.buf.WriteByte(','); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	if _, err := w.buf.Write(data); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	w.count++
	return nil
}

// Count returns the number of records emitted so far.
func (w *IndexWriter) Count() int {
	return w.count
}

// Close terminates the array and closes the compact file. It is safe to
// call more than once.
func (w *IndexWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	if err := w.buf.WriteByte(']'); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to terminate index: %w", err)
	}
	if err := w.buf.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to flush index: %w", err)
	}
	return w.file.Close()
}

// Abort closes the compact file without terminating the array. Unless
// appending, the partial file is removed so no malformed index is left behind.
func (w *IndexWriter) Abort() error {
	if w.closed {
		return nil
	}
	w.closed = true

	w.file.Close()
	if w.appendMode {
		return nil
	}
	if err := os.Remove(w.compactPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove partial index: %w", err)
	}
	return nil
}

// Format writes the pretty-printed copy of this run's array, indented with
// two spaces. It must be called after Close.
func (w *IndexWriter) Format() error {
	if !w.closed {
		return errors.New("index writer must be closed before formatting")
	}

	compact, err := w.readRun()
	if err != nil {
		return err
	}

	var formatted bytes.Buffer
	if err := json.Indent(&formatted, compact, "", "  "); err != nil {
		return fmt.Errorf("failed to format index: %w", err)
	}

	if w.appendMode {
		return appendFile(w.formattedPath, formatted.Bytes())
	}
	return writeFileAtomic(w.formattedPath, formatted.Bytes())
}

// readRun reads back the array written by this writer.
func (w *IndexWriter) readRun() ([]byte, error) {
	file, err := os.Open(w.compactPath)
	if err != nil {
		return nil, fmt.Errorf("failed to reopen %s: %w", w.compactPath, err)
	}
	defer file.Close()

	if _, err := file.Seek(w.offset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek %s: %w", w.compactPath, err)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", w.compactPath, err)
	}
	return data, nil
}

// appendFile appends data to path, creating it if needed.
func appendFile(path string, data []byte) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}

// writeFileAtomic writes data to a temp file next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		// Clean up temp file on error
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
