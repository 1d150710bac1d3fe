// Package sequencer assigns synthetic trade times and transaction
// numbers to accepted statement records. Statements carry no
// time-of-day, so same-day records are staggered one minute apart to
// keep them ordered and distinct after import.
package sequencer

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"suica-csv/internal/dateutils"
)

// tradeHour is the hour of day assigned to the first record of each
// day; every following record on that day is one minute earlier.
const tradeHour = 10

// suffixBytes is the length of the random transaction number suffix,
// rendered as twice as many hex characters.
const suffixBytes = 4

// Entry is the sequencing result for one accepted record.
type Entry struct {
	Time          time.Time
	TransactionID string
}

// Sequencer owns the per-day counters and the global accepted-record
// index for one conversion run. It is not safe for concurrent use;
// the pipeline is single-threaded.
type Sequencer struct {
	dayCounts map[string]int
	index     int
	entropy   io.Reader
}

// New returns a Sequencer drawing ID suffixes from crypto/rand.
func New() *Sequencer {
	return NewWithEntropy(rand.Reader)
}

// NewWithEntropy returns a Sequencer with an explicit randomness
// source, so tests can reproduce transaction numbers.
func NewWithEntropy(entropy io.Reader) *Sequencer {
	return &Sequencer{dayCounts: make(map[string]int), entropy: entropy}
}

// Next registers one accepted record on the given day and returns its
// synthetic trade time and transaction number. The n-th record of a
// day is stamped 10:00:00 minus n-1 minutes; the subtraction is plain
// calendar arithmetic, so a day rolls into the previous one only past
// 600 records. The transaction number is the YYYYMMDD key, the 4-digit
// 1-based run-wide record index, and 8 random hex characters.
func (s *Sequencer) Next(day time.Time) (Entry, error) {
	key := dateutils.DayKey(day)
	offset := s.dayCounts[key]
	s.dayCounts[key]++
	s.index++

	suffix := make([]byte, suffixBytes)
	if _, err := io.ReadFull(s.entropy, suffix); err != nil {
		return Entry{}, fmt.Errorf("error reading transaction number entropy: %w", err)
	}

	t := time.Date(day.Year(), day.Month(), day.Day(), tradeHour, 0, 0, 0, day.Location()).
		Add(-time.Duration(offset) * time.Minute)
	return Entry{
		Time:          t,
		TransactionID: fmt.Sprintf("%s%04d%s", key, s.index, hex.EncodeToString(suffix)),
	}, nil
}
