package sim

import (
	"encoding/json"
	"os"
)

// FileWriter writes result rows to a JSONL file.
type FileWriter struct {
	file *os.File
	enc  *json.Encoder
}

// NewFileWriter creates (or truncates) path.
func NewFileWriter(path string) (*FileWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &FileWriter{file: f, enc: json.NewEncoder(f)}, nil
}

// Write logs a single result row.
func (f *FileWriter) Write(row ResultRow) error {
	return f.enc.Encode(row)
}

// WriteBatch logs multiple result rows.
func (f *FileWriter) WriteBatch(rows []ResultRow) error {
	for _, r := range rows {
		if err := f.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying file.
func (f *FileWriter) Close() error {
	if f.file == nil {
		return nil
	}
	return f.file.Close()
}
