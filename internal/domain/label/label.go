// Package label holds a single logged contact as printed on a QSL label,
// together with the formatting rules used when the label is rendered.
package label

import (
	"slices"
	"strings"

	"github.com/perkrifj/adif-tools/internal/dateformat"
	"github.com/perkrifj/adif-tools/internal/domain/errors"
	"github.com/perkrifj/adif-tools/internal/domain/values"
)

const (
	frequencyDelimiter   = "."
	digitsAfterDelimiter = 3

	slashedZero = "Ø"
)

// Label is an immutable contact record. Every field keeps its own
// absent/present state; construct one with a Builder or New.
type Label struct {
	fields [numFields]values.Text
	dates  dateformat.DateFormatter
}

// Lookup returns the raw value of f and whether it was ever set
func (l Label) Lookup(f Field) (string, bool) {
	if !f.valid() {
		return "", false
	}
	return l.fields[f].Get()
}

func (l Label) get(f Field) string {
	return l.fields[f].String()
}

// Call returns the worked station's call sign
func (l Label) Call() string { return l.get(FieldCall) }

// QSODate returns the raw contact date, typically YYYYMMDD
func (l Label) QSODate() string { return l.get(FieldQSODate) }

// TimeOn returns the raw contact time, typically HHMM or HHMMSS
func (l Label) TimeOn() string { return l.get(FieldTimeOn) }

func (l Label) Band() string            { return l.get(FieldBand) }
func (l Label) StationCallsign() string { return l.get(FieldStationCallsign) }
func (l Label) Freq() string            { return l.get(FieldFreq) }
func (l Label) ContestID() string       { return l.get(FieldContestID) }
func (l Label) FreqRx() string          { return l.get(FieldFreqRx) }
func (l Label) Mode() string            { return l.get(FieldMode) }
func (l Label) RSTReceived() string     { return l.get(FieldRSTReceived) }
func (l Label) RSTSent() string         { return l.get(FieldRSTSent) }
func (l Label) Operator() string        { return l.get(FieldOperator) }

// CleanCall returns the call sign with every 0 written as Ø, so a printed
// zero cannot be read as the letter O. An absent call yields "".
func (l Label) CleanCall() string {
	return strings.ReplaceAll(l.Call(), "0", slashedZero)
}

// FormattedDate hands the raw date and time-on to the label's DateFormatter
// and returns its output unchanged.
func (l Label) FormattedDate() string {
	dates := l.dates
	if dates == nil {
		dates = dateformat.Default
	}
	return dates.FormatDate(l.QSODate(), l.TimeOn())
}

// FrequencyInfo returns the frequency cut to three digits after the dot,
// followed by the band in parentheses when a band is present. Frequencies
// with fewer fractional digits, or none, are kept whole.
func (l Label) FrequencyInfo() (string, error) {
	freq, ok := l.fields[FieldFreq].Get()
	if !ok {
		return "", errors.NewMissingFieldError(FieldFreq.String())
	}

	dot := strings.Index(freq, frequencyDelimiter)
	if dot != -1 && len(freq)-dot-1 >= digitsAfterDelimiter {
		return freq[:dot+1+digitsAfterDelimiter] + l.bandSuffix(), nil
	}
	return freq + l.bandSuffix(), nil
}

// bandSuffix is " (band)" for any present band, the empty string included.
func (l Label) bandSuffix() string {
	band, ok := l.fields[FieldBand].Get()
	if !ok {
		return ""
	}
	return " (" + band + ")"
}

// Compare orders labels by call sign only, byte-wise and case-sensitive.
// Labels with the same call compare equal whatever their other fields hold.
func (l Label) Compare(other Label) int {
	return strings.Compare(l.Call(), other.Call())
}

// CompareByCall is Compare in function form, for slices.SortFunc and friends
func CompareByCall(a, b Label) int {
	return a.Compare(b)
}

// SortByCall sorts labels ascending by call sign, keeping the input order of
// labels with equal calls.
func SortByCall(labels []Label) {
	slices.SortStableFunc(labels, CompareByCall)
}
