package label_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/perkrifj/adif-tools/internal/dateformat"
	"github.com/perkrifj/adif-tools/internal/domain/errors"
	"github.com/perkrifj/adif-tools/internal/domain/label"
)

func TestLabel_CleanCall(t *testing.T) {
	tests := []struct {
		name     string
		call     string
		expected string
	}{
		{name: "single zero", call: "LA0BY", expected: "LAØBY"},
		{name: "every zero replaced", call: "0A0B00", expected: "ØAØBØØ"},
		{name: "no zero", call: "LA1K", expected: "LA1K"},
		{name: "letter O untouched", call: "OH2BH", expected: "OH2BH"},
		{name: "portable suffix", call: "LA1K/P0", expected: "LA1K/PØ"},
		{name: "empty", call: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := label.NewBuilder().Call(tt.call).Build()
			assert.Equal(t, tt.expected, l.CleanCall())
			assert.Equal(t, tt.call, l.Call())
		})
	}
}

func TestLabel_CleanCall_Absent(t *testing.T) {
	assert.Equal(t, "", label.NewBuilder().Build().CleanCall())
}

func TestLabel_FrequencyInfo(t *testing.T) {
	tests := []struct {
		name     string
		build    func() label.Label
		expected string
	}{
		{
			name:     "no dot",
			build:    func() label.Label { return label.NewBuilder().Freq("7074").Band("40m").Build() },
			expected: "7074 (40m)",
		},
		{
			name:     "four fractional digits truncated",
			build:    func() label.Label { return label.NewBuilder().Freq("7074.1234").Band("40m").Build() },
			expected: "7074.123 (40m)",
		},
		{
			name:     "exactly three fractional digits",
			build:    func() label.Label { return label.NewBuilder().Freq("7074.123").Band("40m").Build() },
			expected: "7074.123 (40m)",
		},
		{
			name:     "two fractional digits kept",
			build:    func() label.Label { return label.NewBuilder().Freq("7074.12").Band("40m").Build() },
			expected: "7074.12 (40m)",
		},
		{
			name:     "trailing dot kept",
			build:    func() label.Label { return label.NewBuilder().Freq("7074.").Band("40m").Build() },
			expected: "7074. (40m)",
		},
		{
			name:     "MHz value truncated",
			build:    func() label.Label { return label.NewBuilder().Freq("14.074150").Band("20m").Build() },
			expected: "14.074 (20m)",
		},
		{
			name:     "empty band still gets parentheses",
			build:    func() label.Label { return label.NewBuilder().Freq("7074.123").Band("").Build() },
			expected: "7074.123 ()",
		},
		{
			name:     "literal null band",
			build:    func() label.Label { return label.NewBuilder().Freq("7074.12").Band("null").Build() },
			expected: "7074.12 (null)",
		},
		{
			name:     "absent band has no suffix",
			build:    func() label.Label { return label.NewBuilder().Freq("7074.1234").Build() },
			expected: "7074.123",
		},
		{
			name:     "multiple dots use the first",
			build:    func() label.Label { return label.NewBuilder().Freq("7.074.1").Band("40m").Build() },
			expected: "7.074 (40m)",
		},
		{
			name:     "empty frequency",
			build:    func() label.Label { return label.NewBuilder().Freq("").Band("40m").Build() },
			expected: " (40m)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := tt.build().FrequencyInfo()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, info)
		})
	}
}

func TestLabel_FrequencyInfo_MissingFreq(t *testing.T) {
	l := label.NewBuilder().Call("LA1K").Band("40m").Build()

	info, err := l.FrequencyInfo()
	require.Error(t, err)
	assert.Empty(t, info)
	assert.ErrorIs(t, err, errors.ErrMissingField)
	assert.True(t, errors.IsType(err, errors.ErrorTypeValidation))
}

type stubFormatter struct {
	gotDate, gotTime string
}

func (s *stubFormatter) FormatDate(qsoDate, timeOn string) string {
	s.gotDate, s.gotTime = qsoDate, timeOn
	return "formatted"
}

func TestLabel_FormattedDate(t *testing.T) {
	t.Run("delegates verbatim", func(t *testing.T) {
		stub := &stubFormatter{}
		l := label.NewBuilder().QSODate("20261014").TimeOn("1532").DateFormatter(stub).Build()

		assert.Equal(t, "formatted", l.FormattedDate())
		assert.Equal(t, "20261014", stub.gotDate)
		assert.Equal(t, "1532", stub.gotTime)
	})

	t.Run("default formatter", func(t *testing.T) {
		l := label.NewBuilder().QSODate("20261014").TimeOn("1532").Build()
		assert.Equal(t, dateformat.Default.FormatDate("20261014", "1532"), l.FormattedDate())
		assert.Equal(t, "2026-10-14 15:32", l.FormattedDate())
	})
}

func TestLabel_Compare(t *testing.T) {
	a := label.NewBuilder().Call("DL1ABC").Mode("CW").Build()
	b := label.NewBuilder().Call("LA1K").Build()
	sameCall := label.NewBuilder().Call("LA1K").Mode("SSB").Freq("14.2").Build()
	lower := label.NewBuilder().Call("la1k").Build()

	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Zero(t, b.Compare(sameCall))
	assert.NotZero(t, b.Compare(lower), "comparison is case-sensitive")
	assert.Negative(t, b.Compare(lower))
}

func TestSortByCall(t *testing.T) {
	labels := []label.Label{
		label.NewBuilder().Call("SM5AAA").Build(),
		label.NewBuilder().Call("LA1K").Mode("CW").Build(),
		label.NewBuilder().Call("DL0XX").Build(),
		label.NewBuilder().Call("LA1K").Mode("SSB").Build(),
	}

	label.SortByCall(labels)

	calls := make([]string, 0, len(labels))
	for _, l := range labels {
		calls = append(calls, l.Call())
	}
	assert.Equal(t, []string{"DL0XX", "LA1K", "LA1K", "SM5AAA"}, calls)
	assert.Equal(t, "CW", labels[1].Mode())
	assert.Equal(t, "SSB", labels[2].Mode())
}

func TestField_String(t *testing.T) {
	assert.Equal(t, "call", label.FieldCall.String())
	assert.Equal(t, "rst_rcvd", label.FieldRSTReceived.String())
	assert.Equal(t, "unknown", label.Field(99).String())
	assert.Len(t, label.Fields(), 12)
}
