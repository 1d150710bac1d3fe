// Package zaimwriter writes the import CSV for the finance tool,
// splitting output across numbered files at a fixed line ceiling.
// Every file starts with a UTF-8 BOM and the 13-column header, lines
// end with CRLF, and fields are quoted only when they contain a comma,
// quote or newline.
package zaimwriter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"suica-csv/internal/models"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// MaxLinesPerFile caps every output file, header line included, so a
// file never holds more than MaxLinesPerFile-1 data rows.
const MaxLinesPerFile = 100

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Writer splits ZaimRows across numbered CSV files derived from a
// base path: save.csv becomes save_001.csv, save_002.csv, and so on.
type Writer struct {
	basePath string
	maxLines int

	// Announce, when set, is called with the path of each file right
	// after it is created.
	Announce func(path string)
}

// New returns a Writer with the default 100-line file ceiling.
func New(basePath string) *Writer {
	return NewWithMaxLines(basePath, MaxLinesPerFile)
}

// NewWithMaxLines returns a Writer with an explicit per-file line
// ceiling (header included). Ceilings below 2 leave no room for data
// and fall back to the default.
func NewWithMaxLines(basePath string, maxLines int) *Writer {
	if maxLines < 2 {
		maxLines = MaxLinesPerFile
	}
	return &Writer{basePath: basePath, maxLines: maxLines}
}

// WriteAll writes the rows across as many files as the ceiling
// requires and returns the created paths in order. With no rows it
// still writes the first file, so the header is always on disk.
// On a write error the files already completed stay on disk.
func (w *Writer) WriteAll(rows []models.ZaimRow) ([]string, error) {
	perFile := w.maxLines - 1
	var paths []string
	for n := 0; ; n++ {
		lo := n * perFile
		if lo > 0 && lo >= len(rows) {
			break
		}
		hi := min(lo+perFile, len(rows))

		path := w.numberedPath(n + 1)
		if err := w.writeFile(path, rows[lo:hi]); err != nil {
			return paths, err
		}
		paths = append(paths, path)
		if hi >= len(rows) {
			break
		}
	}
	log.WithFields(logrus.Fields{"rows": len(rows), "files": len(paths)}).Info("Wrote import CSV files")
	return paths, nil
}

// numberedPath derives name_NNN.ext from the base path; with no
// extension the suffix attaches to the bare name.
func (w *Writer) numberedPath(n int) string {
	ext := filepath.Ext(w.basePath)
	return fmt.Sprintf("%s_%03d%s", strings.TrimSuffix(w.basePath, ext), n, ext)
}

// writeFile emits one complete CSV file: BOM, header, data rows.
func (w *Writer) writeFile(path string, rows []models.ZaimRow) error {
	file, err := os.Create(path) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()
	if w.Announce != nil {
		w.Announce(path)
	}

	if _, err := file.Write(utf8BOM); err != nil {
		return fmt.Errorf("error writing BOM: %w", err)
	}

	csvWriter := csv.NewWriter(file)
	csvWriter.UseCRLF = true
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithFields(logrus.Fields{"file": path, "rows": len(rows)}).Debug("Wrote CSV file")
	return nil
}
