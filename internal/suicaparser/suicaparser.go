// Package suicaparser reads the tab-separated transaction history
// exported for Suica cards and extracts its raw records.
// It handles encoding detection, newline normalization and the
// positional seven-column record layout.
package suicaparser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"suica-csv/internal/textutils"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// FieldCount is the fixed number of positional columns per record.
const FieldCount = 7

// RawRecord is one statement line split into its positional fields.
// Missing trailing columns are empty strings.
type RawRecord struct {
	MonthDay  string
	Type1     string
	Place1    string
	Type2     string
	Place2    string
	Balance   string
	AmountRaw string
}

// ParseFile reads, transcodes and splits a statement file.
// It fails when the file is missing or unreadable, when no candidate
// encoding decodes it, or when it holds no data lines below the header.
func ParseFile(filePath string) ([]RawRecord, error) {
	data, err := os.ReadFile(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return nil, fmt.Errorf("error reading statement file: %w", err)
	}
	text, encName, err := DecodeText(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding statement file %s: %w", filePath, err)
	}
	log.WithFields(logrus.Fields{"file": filePath, "encoding": encName}).Debug("Decoded statement file")

	records, err := Parse(strings.NewReader(text))
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filePath, err)
	}
	return records, nil
}

// Parse splits already-decoded statement text into raw records.
// The first non-blank line is the statement header and is skipped.
func Parse(r io.Reader) ([]RawRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading statement: %w", err)
	}
	lines := splitLines(string(data))
	if len(lines) < 2 {
		return nil, fmt.Errorf("statement has no data lines")
	}

	records := make([]RawRecord, 0, len(lines)-1)
	for _, line := range lines[1:] {
		records = append(records, splitRecord(line))
	}
	log.WithField("count", len(records)).Info("Read statement records")
	return records, nil
}

// ValidateFormat checks that the file decodes under a known encoding
// and contains a header plus at least one data line.
func ValidateFormat(filePath string) (bool, error) {
	data, err := os.ReadFile(filePath) // #nosec G304 -- CLI tool requires user-provided file paths
	if err != nil {
		return false, fmt.Errorf("error opening file for validation: %w", err)
	}
	text, _, err := DecodeText(data)
	if err != nil {
		return false, nil
	}
	return len(splitLines(text)) >= 2, nil
}

// splitLines normalizes newlines to \n and drops lines that are blank
// after trimming.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if textutils.TrimWide(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// splitRecord cuts a line on tabs and pads or truncates it to the
// fixed seven columns.
func splitRecord(line string) RawRecord {
	fields := strings.Split(line, "\t")
	for len(fields) < FieldCount {
		fields = append(fields, "")
	}
	return RawRecord{
		MonthDay:  fields[0],
		Type1:     fields[1],
		Place1:    fields[2],
		Type2:     fields[3],
		Place2:    fields[4],
		Balance:   fields[5],
		AmountRaw: fields[6],
	}
}
