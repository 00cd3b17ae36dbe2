// Package adif reads ADI formatted contact logs into labels.
//
// An ADI file is an optional free-text header closed by <EOH>, followed by
// records of <NAME:LENGTH[:TYPE]>DATA fields each closed by <EOR>. Names are
// case-insensitive and LENGTH counts bytes of DATA.
package adif

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/perkrifj/adif-tools/internal/dateformat"
	"github.com/perkrifj/adif-tools/internal/domain/errors"
	"github.com/perkrifj/adif-tools/internal/domain/label"
	"github.com/perkrifj/adif-tools/internal/domain/values"
)

const (
	tagEndOfHeader = "eoh"
	tagEndOfRecord = "eor"
)

// fieldsByName maps lower-cased ADIF names to label fields
var fieldsByName = func() map[string]label.Field {
	m := make(map[string]label.Field)
	for _, f := range label.Fields() {
		m[f.String()] = f
	}
	return m
}()

// Options controls how records become labels
type Options struct {
	// InferBand fills BAND from FREQ when a record carries no band
	InferBand bool
	// SkipInvalid drops records without CALL instead of failing the read
	SkipInvalid bool
	// DateFormatter is handed to every built label; nil uses the default
	DateFormatter dateformat.DateFormatter
}

// Reader turns ADI input into labels
type Reader struct {
	opts   Options
	logger *zap.Logger
}

// NewReader creates a Reader. A nil logger discards logs.
func NewReader(opts Options, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reader{
		opts:   opts,
		logger: logger.Named("adif"),
	}
}

// ReadFile opens path and reads it with Read
func (r *Reader) ReadFile(ctx context.Context, path string) ([]label.Label, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening log")
	}
	defer f.Close()

	return r.Read(ctx, f)
}

// Read parses every record in src. The context is checked between records.
func (r *Reader) Read(ctx context.Context, src io.Reader) ([]label.Label, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, errors.Wrap(err, "reading log")
	}

	p := &parser{data: data}
	p.skipHeaderText()

	var labels []label.Label
	var skipped int
	record := newRecord()
	ignored := make(map[string]struct{})

	for {
		t, ok, err := p.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		switch t.name {
		case tagEndOfHeader:
			record = newRecord()
			continue
		case tagEndOfRecord:
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			l, err := r.build(record, len(labels)+skipped)
			switch {
			case err == nil:
				labels = append(labels, l)
			case r.opts.SkipInvalid:
				skipped++
				r.logger.Warn("skipping record", zap.Int("record", len(labels)+skipped), zap.Error(err))
			default:
				return nil, err
			}
			record = newRecord()
			continue
		}

		if f, known := fieldsByName[t.name]; known {
			record.set(f, t.data)
		} else {
			ignored[t.name] = struct{}{}
		}
	}

	if !record.empty() {
		err := parseError(errors.ErrTruncatedRecord, "log ends inside a record without <EOR>", len(data))
		if !r.opts.SkipInvalid {
			return nil, err
		}
		skipped++
		r.logger.Warn("skipping record", zap.Int("record", len(labels)+skipped), zap.Error(err))
	}

	if len(ignored) > 0 {
		names := make([]string, 0, len(ignored))
		for name := range ignored {
			names = append(names, name)
		}
		sort.Strings(names)
		r.logger.Debug("ignored fields", zap.Strings("fields", names))
	}

	r.logger.Info("read log",
		zap.Int("labels", len(labels)),
		zap.Int("skipped", skipped))

	return labels, nil
}

func (r *Reader) build(rec *record, index int) (label.Label, error) {
	if call, ok := rec.values[label.FieldCall]; !ok || strings.TrimSpace(call) == "" {
		return label.Label{}, errors.ErrInvalidRecord.New("record has no CALL").
			WithDetails(map[string]interface{}{"record": index + 1})
	}

	if band := rec.values[label.FieldBand]; band != "" && !values.IsKnownBand(band) {
		r.logger.Warn("band not in band plan",
			zap.Int("record", index+1),
			zap.String("band", band))
	}

	b := label.NewBuilder().DateFormatter(r.opts.DateFormatter)
	for _, f := range rec.order {
		b.Set(f, rec.values[f])
	}

	if r.opts.InferBand && !b.IsSet(label.FieldBand) {
		if band, ok := inferBand(rec.values[label.FieldFreq]); ok {
			b.Band(band)
		}
	}

	return b.Build(), nil
}

func inferBand(freq string) (string, bool) {
	if freq == "" {
		return "", false
	}
	f, err := values.NewFrequency(freq)
	if err != nil {
		return "", false
	}
	return values.BandForFrequency(f)
}

type record struct {
	values map[label.Field]string
	order  []label.Field
}

func newRecord() *record {
	return &record{values: make(map[label.Field]string)}
}

func (r *record) set(f label.Field, v string) {
	if _, seen := r.values[f]; !seen {
		r.order = append(r.order, f)
	}
	r.values[f] = v
}

func (r *record) empty() bool {
	return len(r.order) == 0
}

type tag struct {
	name string
	data string
}

type parser struct {
	data []byte
	pos  int
}

// skipHeaderText moves past a free-text header preamble. A log that starts
// with '<' has no such text. Otherwise parsing resumes at <EOH>, since the
// preamble may itself contain angle brackets.
func (p *parser) skipHeaderText() {
	trimmed := bytes.TrimLeft(p.data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] == '<' {
		p.pos = len(p.data) - len(trimmed)
		return
	}
	if i := indexTag(p.data, tagEndOfHeader); i >= 0 {
		p.pos = i
		return
	}
	if i := bytes.IndexByte(p.data, '<'); i >= 0 {
		p.pos = i
		return
	}
	p.pos = len(p.data)
}

// indexTag returns the offset of the first <name> in data, ignoring case, or -1
func indexTag(data []byte, name string) int {
	want := []byte("<" + name + ">")
	for i := 0; len(data)-i >= len(want); {
		lt := bytes.IndexByte(data[i:], '<')
		if lt < 0 || len(data)-(i+lt) < len(want) {
			return -1
		}
		i += lt
		if bytes.EqualFold(data[i:i+len(want)], want) {
			return i
		}
		i++
	}
	return -1
}

// next returns the following tag; ok is false at end of input
func (p *parser) next() (tag, bool, error) {
	lt := bytes.IndexByte(p.data[p.pos:], '<')
	if lt < 0 {
		p.pos = len(p.data)
		return tag{}, false, nil
	}
	start := p.pos + lt

	gt := bytes.IndexByte(p.data[start:], '>')
	if gt < 0 {
		return tag{}, false, parseError(errors.ErrTruncatedRecord, "unterminated tag", start)
	}
	end := start + gt

	spec := strings.Split(string(p.data[start+1:end]), ":")
	name := strings.ToLower(strings.TrimSpace(spec[0]))
	if name == "" {
		return tag{}, false, parseError(errors.ErrMalformedTag, "empty tag name", start)
	}

	if len(spec) == 1 {
		if name != tagEndOfHeader && name != tagEndOfRecord {
			return tag{}, false, parseError(errors.ErrMalformedTag,
				fmt.Sprintf("field %s has no length", strings.ToUpper(name)), start)
		}
		p.pos = end + 1
		return tag{name: name}, true, nil
	}

	n, err := strconv.Atoi(strings.TrimSpace(spec[1]))
	if err != nil || n < 0 {
		return tag{}, false, parseError(errors.ErrMalformedTag,
			fmt.Sprintf("field %s has invalid length %q", strings.ToUpper(name), spec[1]), start)
	}

	dataStart := end + 1
	if n > len(p.data)-dataStart {
		return tag{}, false, parseError(errors.ErrTruncatedRecord,
			fmt.Sprintf("field %s wants %d bytes", strings.ToUpper(name), n), start)
	}

	p.pos = dataStart + n
	return tag{name: name, data: string(p.data[dataStart:p.pos])}, true, nil
}

func parseError(kind *errors.AppError, message string, offset int) *errors.AppError {
	return kind.New(message).
		WithDetails(map[string]interface{}{"offset": offset})
}
