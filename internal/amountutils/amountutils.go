// Package amountutils provides parsing and formatting for the signed
// integer yen amounts found in card statements.
package amountutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"suica-csv/internal/textutils"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// signedInteger matches an optionally signed run of ASCII digits with
// nothing left over.
var signedInteger = regexp.MustCompile(`^[+-]?[0-9]+$`)

// currencyNoise strips the decoration some exports put around amounts:
// a literal backslash (how the yen sign survives certain code pages),
// the yen glyphs themselves, thousands commas and spaces.
var currencyNoise = strings.NewReplacer(`\`, "", "¥", "", "￥", "", ",", "", " ", "")

// ParseAmount parses a statement amount field into a decimal value.
// It reports ok=false when the field is empty or, after stripping
// currency noise, is not an optionally signed integer. Zero is a valid
// parse result; filtering zero amounts is the caller's concern.
func ParseAmount(s string) (decimal.Decimal, bool) {
	s = textutils.TrimWide(s)
	if s == "" {
		return decimal.Zero, false
	}
	s = currencyNoise.Replace(s)
	if !signedInteger.MatchString(s) {
		log.WithField("amount", s).Debug("Amount is not a signed integer")
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		log.WithError(err).WithField("amount", s).Debug("Failed to parse amount")
		return decimal.Zero, false
	}
	return d, true
}

// printer groups digits in threes, so 1000 renders as "1,000".
var printer = message.NewPrinter(language.Japanese)

// FormatAmount renders a non-negative amount with comma thousands
// separators for values of 1000 and above, plain digits below.
func FormatAmount(d decimal.Decimal) string {
	return printer.Sprintf("%d", d.IntPart())
}
