package fixtures

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/perkrifj/adif-tools/internal/domain/label"
)

// NewContact returns a Builder prefilled with a complete 40m CW contact.
// Override fields with the builder setters before calling Build.
func NewContact() *label.Builder {
	return label.NewBuilder().
		Call("LA0BY").
		QSODate("20261014").
		TimeOn("1532").
		Band("40m").
		StationCallsign("LA1K").
		Freq("7.012345").
		ContestID("CQ-WW-CW").
		Mode("CW").
		RSTReceived("599").
		RSTSent("599")
}

// Contacts returns n labels with distinct calls SM5AA0, SM5AA1, ...
// in ascending call order.
func Contacts(n int) []label.Label {
	labels := make([]label.Label, 0, n)
	for i := 0; i < n; i++ {
		labels = append(labels, NewContact().Call(fmt.Sprintf("SM5AA%d", i)).Build())
	}
	return labels
}

// ADIFLog encodes labels as ADI text with a minimal header. Only fields
// present on a label are written.
func ADIFLog(labels ...label.Label) string {
	var sb strings.Builder
	sb.WriteString("fixture log\n<ADIF_VER:5>3.1.4<EOH>\n")
	for _, l := range labels {
		for _, f := range label.Fields() {
			v, ok := l.Lookup(f)
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "<%s:%d>%s ", strings.ToUpper(f.String()), len(v), v)
		}
		sb.WriteString("<EOR>\n")
	}
	return sb.String()
}

// WriteADIFFile writes ADIFLog(labels...) to a temp file and returns its path
func WriteADIFFile(t *testing.T, labels ...label.Label) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.adi")
	require.NoError(t, os.WriteFile(path, []byte(ADIFLog(labels...)), 0o600))
	return path
}
