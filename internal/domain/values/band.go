package values

import (
	"strings"

	"github.com/shopspring/decimal"
)

// bandEdge is one amateur allocation, edges inclusive, in MHz
type bandEdge struct {
	name  string
	lower decimal.Decimal
	upper decimal.Decimal
}

// bandPlan follows the ADIF band enumeration, ordered by frequency
var bandPlan = []bandEdge{
	newBandEdge("2190m", "0.1357", "0.1378"),
	newBandEdge("630m", "0.472", "0.479"),
	newBandEdge("160m", "1.8", "2.0"),
	newBandEdge("80m", "3.5", "4.0"),
	newBandEdge("60m", "5.06", "5.45"),
	newBandEdge("40m", "7.0", "7.3"),
	newBandEdge("30m", "10.1", "10.15"),
	newBandEdge("20m", "14.0", "14.35"),
	newBandEdge("17m", "18.068", "18.168"),
	newBandEdge("15m", "21.0", "21.45"),
	newBandEdge("12m", "24.89", "24.99"),
	newBandEdge("10m", "28.0", "29.7"),
	newBandEdge("6m", "50", "54"),
	newBandEdge("4m", "70", "71"),
	newBandEdge("2m", "144", "148"),
	newBandEdge("1.25m", "222", "225"),
	newBandEdge("70cm", "420", "450"),
	newBandEdge("33cm", "902", "928"),
	newBandEdge("23cm", "1240", "1300"),
}

var knownBands = func() map[string]bool {
	m := make(map[string]bool, len(bandPlan))
	for _, b := range bandPlan {
		m[b.name] = true
	}
	return m
}()

func newBandEdge(name, lower, upper string) bandEdge {
	return bandEdge{
		name:  name,
		lower: decimal.RequireFromString(lower),
		upper: decimal.RequireFromString(upper),
	}
}

// NormalizeBand lower-cases and trims a band designation ("40M " -> "40m")
func NormalizeBand(band string) string {
	return strings.ToLower(strings.TrimSpace(band))
}

// IsKnownBand reports whether band names an allocation in the band plan
func IsKnownBand(band string) bool {
	return knownBands[NormalizeBand(band)]
}

// BandForFrequency returns the band containing f, if any
func BandForFrequency(f Frequency) (string, bool) {
	if f.IsZero() {
		return "", false
	}
	mhz := f.MHz()
	for _, b := range bandPlan {
		if mhz.LessThan(b.lower) {
			break
		}
		if mhz.LessThanOrEqual(b.upper) {
			return b.name, true
		}
	}
	return "", false
}
