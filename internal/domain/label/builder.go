package label

import (
	"github.com/perkrifj/adif-tools/internal/dateformat"
	"github.com/perkrifj/adif-tools/internal/domain/values"
)

// Builder accumulates contact fields for Build. Setters accept any string,
// the empty string included, and nothing is validated. A Builder may build
// many labels but must not be shared between goroutines.
type Builder struct {
	fields [numFields]values.Text
	dates  dateformat.DateFormatter
}

// NewBuilder returns an empty Builder
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) set(f Field, v string) *Builder {
	b.fields[f] = values.Some(v)
	return b
}

// Set assigns f by identifier; unknown fields are ignored
func (b *Builder) Set(f Field, v string) *Builder {
	if !f.valid() {
		return b
	}
	return b.set(f, v)
}

func (b *Builder) Call(v string) *Builder            { return b.set(FieldCall, v) }
func (b *Builder) QSODate(v string) *Builder         { return b.set(FieldQSODate, v) }
func (b *Builder) TimeOn(v string) *Builder          { return b.set(FieldTimeOn, v) }
func (b *Builder) Band(v string) *Builder            { return b.set(FieldBand, v) }
func (b *Builder) StationCallsign(v string) *Builder { return b.set(FieldStationCallsign, v) }
func (b *Builder) Freq(v string) *Builder            { return b.set(FieldFreq, v) }
func (b *Builder) ContestID(v string) *Builder       { return b.set(FieldContestID, v) }
func (b *Builder) FreqRx(v string) *Builder          { return b.set(FieldFreqRx, v) }
func (b *Builder) Mode(v string) *Builder            { return b.set(FieldMode, v) }
func (b *Builder) RSTReceived(v string) *Builder     { return b.set(FieldRSTReceived, v) }
func (b *Builder) RSTSent(v string) *Builder         { return b.set(FieldRSTSent, v) }
func (b *Builder) Operator(v string) *Builder        { return b.set(FieldOperator, v) }

// IsSet reports whether f has been assigned on this builder
func (b *Builder) IsSet(f Field) bool {
	return f.valid() && b.fields[f].IsSet()
}

// DateFormatter sets the formatter FormattedDate uses on built labels.
// nil selects dateformat.Default.
func (b *Builder) DateFormatter(f dateformat.DateFormatter) *Builder {
	b.dates = f
	return b
}

// Build copies the current state into a new Label
func (b *Builder) Build() Label {
	return Label{
		fields: b.fields,
		dates:  b.dates,
	}
}

// Options is the named-field form of a Builder. A nil pointer leaves the
// field absent.
type Options struct {
	Call            *string
	QSODate         *string
	TimeOn          *string
	Band            *string
	StationCallsign *string
	Freq            *string
	ContestID       *string
	FreqRx          *string
	Mode            *string
	RSTReceived     *string
	RSTSent         *string
	Operator        *string

	DateFormatter dateformat.DateFormatter
}

// New builds a Label from opts
func New(opts Options) Label {
	var l Label
	l.fields[FieldCall] = values.TextFromPtr(opts.Call)
	l.fields[FieldQSODate] = values.TextFromPtr(opts.QSODate)
	l.fields[FieldTimeOn] = values.TextFromPtr(opts.TimeOn)
	l.fields[FieldBand] = values.TextFromPtr(opts.Band)
	l.fields[FieldStationCallsign] = values.TextFromPtr(opts.StationCallsign)
	l.fields[FieldFreq] = values.TextFromPtr(opts.Freq)
	l.fields[FieldContestID] = values.TextFromPtr(opts.ContestID)
	l.fields[FieldFreqRx] = values.TextFromPtr(opts.FreqRx)
	l.fields[FieldMode] = values.TextFromPtr(opts.Mode)
	l.fields[FieldRSTReceived] = values.TextFromPtr(opts.RSTReceived)
	l.fields[FieldRSTSent] = values.TextFromPtr(opts.RSTSent)
	l.fields[FieldOperator] = values.TextFromPtr(opts.Operator)
	l.dates = opts.DateFormatter
	return l
}

// Ptr returns a pointer to s, for filling Options inline
func Ptr(s string) *string {
	return &s
}
