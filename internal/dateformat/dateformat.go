// Package dateformat turns the raw ADIF QSO_DATE and TIME_ON tokens of a
// contact into the date line printed on a label.
package dateformat

import (
	"strings"
	"time"
)

const (
	// DefaultLayout renders date and time on a label
	DefaultLayout = "2006-01-02 15:04"
	// DefaultDateOnlyLayout renders contacts logged without TIME_ON
	DefaultDateOnlyLayout = "2006-01-02"

	adifDate      = "20060102"
	adifTimeShort = "1504"
	adifTimeLong  = "150405"
)

// DateFormatter formats a contact date and time-on pair for display.
// Implementations must be free of side effects.
type DateFormatter interface {
	FormatDate(qsoDate, timeOn string) string
}

// Default formats with DefaultLayout and DefaultDateOnlyLayout
var Default DateFormatter = New(DefaultLayout, DefaultDateOnlyLayout)

// Formatter is the layout-driven DateFormatter. All times are UTC.
type Formatter struct {
	layout         string
	dateOnlyLayout string
}

// New creates a Formatter; empty layouts fall back to the defaults
func New(layout, dateOnlyLayout string) *Formatter {
	if layout == "" {
		layout = DefaultLayout
	}
	if dateOnlyLayout == "" {
		dateOnlyLayout = DefaultDateOnlyLayout
	}
	return &Formatter{layout: layout, dateOnlyLayout: dateOnlyLayout}
}

// FormatDate parses qsoDate as YYYYMMDD and timeOn as HHMM or HHMMSS. Input
// that does not parse is returned as the raw tokens joined by a space.
func (f *Formatter) FormatDate(qsoDate, timeOn string) string {
	qsoDate = strings.TrimSpace(qsoDate)
	timeOn = strings.TrimSpace(timeOn)

	if timeOn == "" {
		d, err := time.ParseInLocation(adifDate, qsoDate, time.UTC)
		if err != nil {
			return raw(qsoDate, timeOn)
		}
		return d.Format(f.dateOnlyLayout)
	}

	var timeLayout string
	switch len(timeOn) {
	case len(adifTimeShort):
		timeLayout = adifTimeShort
	case len(adifTimeLong):
		timeLayout = adifTimeLong
	default:
		return raw(qsoDate, timeOn)
	}

	ts, err := time.ParseInLocation(adifDate+timeLayout, qsoDate+timeOn, time.UTC)
	if err != nil {
		return raw(qsoDate, timeOn)
	}
	return ts.Format(f.layout)
}

func raw(qsoDate, timeOn string) string {
	return strings.TrimSpace(qsoDate + " " + timeOn)
}
