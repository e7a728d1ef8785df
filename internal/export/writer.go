package export

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// FileRef describes a file written by RowWriter
type FileRef struct {
	Path    string `json:"path"`
	Name    string `json:"name"`
	Bytes   int64  `json:"bytes"`
	Records int    `json:"records"`
}

// RowWriter persists export rows under a fixed directory
//
//go:generate go tool mockgen -source=$GOFILE -destination=writer_mocks.go -package=export
type RowWriter interface {
	WriteRows(filename string, rows []Row) (FileRef, error)
	Dir() string
}

// FileRowWriter writes rows as CSV files on disk
type FileRowWriter struct {
	dir string
}

// NewFileRowWriter creates a row writer that stores files in the given directory
func NewFileRowWriter(dir string) *FileRowWriter {
	return &FileRowWriter{dir: dir}
}

// Dir returns the directory where files are written
func (w *FileRowWriter) Dir() string {
	return w.dir
}

// WriteRows writes the header followed by rows to filename as UTF-8 CSV.
// An existing file with the same name is truncated.
func (w *FileRowWriter) WriteRows(filename string, rows []Row) (FileRef, error) {
	filePath := filepath.Join(w.dir, filename)

	file, err := os.Create(filePath)
	if err != nil {
		return FileRef{}, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	bw := bufio.NewWriter(file)
	if err := gocsv.Marshal(&rows, bw); err != nil {
		return FileRef{}, fmt.Errorf("failed to write rows: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return FileRef{}, fmt.Errorf("failed to flush buffer: %w", err)
	}

	fi, err := file.Stat()
	if err != nil {
		return FileRef{}, fmt.Errorf("failed to stat file: %w", err)
	}

	return FileRef{
		Path:    filePath,
		Name:    filename,
		Bytes:   fi.Size(),
		Records: len(rows) + 1,
	}, nil
}
