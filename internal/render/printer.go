// Package render lays labels out as plain text ready for a label printer.
package render

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"text/template"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/perkrifj/adif-tools/internal/domain/errors"
	"github.com/perkrifj/adif-tools/internal/domain/label"
)

const (
	missingValue = "-"
	columnGap    = "  "
)

var blockTemplate = template.Must(template.New("label").Parse(
	`To: {{.Call}}
Date: {{.Date}}
Freq: {{.Frequency}}
Mode: {{.Mode}}  RST: {{.RST}}
{{- if .Operator}}
Op: {{.Operator}}
{{- end}}
{{- if .Station}}
From: {{.Station}}
{{- end}}
`))

// Options controls the printed layout
type Options struct {
	// Columns is the number of labels printed side by side
	Columns int
	// ColumnWidth pads every column to this many characters
	ColumnWidth int
	// ShowOperator adds an Op line for contacts that carry OPERATOR
	ShowOperator bool
	// Sort orders labels by call sign before printing
	Sort bool
}

// view is what the block template sees for one label
type view struct {
	Call      string
	Date      string
	Frequency string
	Mode      string
	RST       string
	Operator  string
	Station   string
}

// Printer renders labels in rows of Options.Columns
type Printer struct {
	opts   Options
	logger *zap.Logger
}

// NewPrinter creates a Printer. Columns below one print a single column.
func NewPrinter(opts Options, logger *zap.Logger) *Printer {
	if opts.Columns < 1 {
		opts.Columns = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Printer{
		opts:   opts,
		logger: logger.Named("render"),
	}
}

// Print writes every label to w, one blank line between rows
func (p *Printer) Print(ctx context.Context, w io.Writer, labels []label.Label) error {
	if p.opts.Sort {
		labels = append([]label.Label(nil), labels...)
		label.SortByCall(labels)
	}

	bw := bufio.NewWriter(w)
	for start := 0; start < len(labels); start += p.opts.Columns {
		if err := ctx.Err(); err != nil {
			return err
		}

		end := min(start+p.opts.Columns, len(labels))
		blocks := make([][]string, 0, end-start)
		for _, l := range labels[start:end] {
			block, err := p.Block(l)
			if err != nil {
				return err
			}
			blocks = append(blocks, block)
		}

		if start > 0 {
			if _, err := bw.WriteString("\n"); err != nil {
				return errors.WrapWithCode(err, "WRITE_FAILED", "writing labels")
			}
		}
		if _, err := bw.WriteString(p.row(blocks)); err != nil {
			return errors.WrapWithCode(err, "WRITE_FAILED", "writing labels")
		}
	}

	if err := bw.Flush(); err != nil {
		return errors.WrapWithCode(err, "WRITE_FAILED", "writing labels")
	}

	p.logger.Debug("printed labels", zap.Int("labels", len(labels)), zap.Int("columns", p.opts.Columns))
	return nil
}

// Block renders a single label as its printed lines
func (p *Printer) Block(l label.Label) ([]string, error) {
	var buf bytes.Buffer
	if err := blockTemplate.Execute(&buf, p.view(l)); err != nil {
		return nil, errors.WrapWithCode(err, "RENDER_FAILED", "rendering label "+l.Call())
	}
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n"), nil
}

func (p *Printer) view(l label.Label) view {
	freq, err := l.FrequencyInfo()
	if err != nil {
		p.logger.Warn("label without frequency", zap.String("call", l.Call()), zap.Error(err))
		freq = missingValue
	}

	v := view{
		Call:      orMissing(l.CleanCall()),
		Date:      orMissing(l.FormattedDate()),
		Frequency: orMissing(freq),
		Mode:      orMissing(l.Mode()),
		RST:       orMissing(l.RSTSent()),
		Station:   l.StationCallsign(),
	}
	if p.opts.ShowOperator && l.Operator() != "" && l.Operator() != l.StationCallsign() {
		v.Operator = l.Operator()
	}
	return v
}

// row places blocks side by side, every column padded to ColumnWidth
func (p *Printer) row(blocks [][]string) string {
	height := 0
	for _, b := range blocks {
		height = max(height, len(b))
	}

	var sb strings.Builder
	for i := 0; i < height; i++ {
		var line strings.Builder
		for j, b := range blocks {
			cell := ""
			if i < len(b) {
				cell = b[i]
			}
			if j < len(blocks)-1 {
				cell = pad(cell, p.opts.ColumnWidth) + columnGap
			}
			line.WriteString(cell)
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteString("\n")
	}
	return sb.String()
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func orMissing(s string) string {
	if strings.TrimSpace(s) == "" {
		return missingValue
	}
	return s
}

// WriteList writes one tab separated line per label:
// call, formatted date, frequency info and mode.
func WriteList(w io.Writer, labels []label.Label) error {
	for _, l := range labels {
		freq, err := l.FrequencyInfo()
		if err != nil {
			freq = missingValue
		}
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			l.Call(), l.FormattedDate(), freq, orMissing(l.Mode())); err != nil {
			return errors.WrapWithCode(err, "WRITE_FAILED", "writing list")
		}
	}
	return nil
}
