// Package converter drives the statement-to-CSV pipeline: per-record
// filtering, classification, sequencing and file output.
package converter

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"suica-csv/internal/amountutils"
	"suica-csv/internal/dateutils"
	"suica-csv/internal/models"
	"suica-csv/internal/sequencer"
	"suica-csv/internal/suicaparser"
	"suica-csv/internal/zaimwriter"
)

var log = logrus.New()

// SetLogger sets a configured logger for this package and the
// packages the pipeline drives.
func SetLogger(logger *logrus.Logger) {
	if logger == nil {
		return
	}
	log = logger
	amountutils.SetLogger(logger)
	suicaparser.SetLogger(logger)
	zaimwriter.SetLogger(logger)
}

// Options configure one conversion run.
type Options struct {
	// Input is the statement file path.
	Input string
	// Output is the base CSV path; files are numbered from it.
	Output string
	// ExpenseOnly drops records with a positive amount.
	ExpenseOnly bool

	// Now anchors year inference; the zero value means time.Now().
	Now time.Time
	// Entropy overrides the transaction-number randomness source.
	// Nil draws from crypto/rand.
	Entropy io.Reader
	// MaxLines overrides the per-file line ceiling; 0 keeps the
	// default of 100.
	MaxLines int
	// Status, when set, receives the path of each created output file
	// as it is opened.
	Status io.Writer
}

// Summary reports what a conversion run produced.
type Summary struct {
	Rows  int
	Files []string
}

// Convert runs the whole pipeline for one statement file: read and
// decode the input, transform each accepted record into an output row
// in input order, and write the rows across numbered CSV files.
func Convert(opts Options) (Summary, error) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	records, err := suicaparser.ParseFile(opts.Input)
	if err != nil {
		return Summary{}, err
	}

	seq := sequencer.New()
	if opts.Entropy != nil {
		seq = sequencer.NewWithEntropy(opts.Entropy)
	}

	rows := make([]models.ZaimRow, 0, len(records))
	for _, rec := range records {
		amount, ok := amountutils.ParseAmount(rec.AmountRaw)
		if !ok || amount.IsZero() {
			log.WithField("amount", rec.AmountRaw).Debug("Skipping record without a usable amount")
			continue
		}
		if opts.ExpenseOnly && amount.Sign() > 0 {
			continue
		}
		month, dayOfMonth, ok := dateutils.ParseMonthDay(rec.MonthDay)
		if !ok {
			log.WithField("date", rec.MonthDay).Debug("Skipping record with malformed month/day token")
			continue
		}
		day, ok := dateutils.ResolveDate(month, dayOfMonth, now)
		if !ok {
			log.WithField("date", rec.MonthDay).Debug("Skipping record whose month/day exists in no candidate year")
			continue
		}
		entry, err := seq.Next(day)
		if err != nil {
			return Summary{}, fmt.Errorf("error sequencing record: %w", err)
		}
		rows = append(rows, buildRow(rec, amount, entry))
	}

	writer := zaimwriter.NewWithMaxLines(opts.Output, opts.MaxLines)
	if opts.Status != nil {
		writer.Announce = func(path string) {
			fmt.Fprintln(opts.Status, path)
		}
	}
	paths, err := writer.WriteAll(rows)
	if err != nil {
		return Summary{}, err
	}

	log.WithFields(logrus.Fields{"rows": len(rows), "files": len(paths)}).Info("Conversion completed")
	return Summary{Rows: len(rows), Files: paths}, nil
}
