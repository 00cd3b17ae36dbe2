package values

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/perkrifj/adif-tools/internal/domain/errors"
)

// Frequency represents a positive radio frequency in MHz, as ADIF records it
type Frequency struct {
	mhz decimal.Decimal
}

// NewFrequency parses a decimal MHz string such as "7.074" or "14.0745"
func NewFrequency(mhz string) (Frequency, error) {
	mhz = strings.TrimSpace(mhz)
	if mhz == "" {
		return Frequency{}, errors.NewValidationError("EMPTY_FREQUENCY",
			"frequency cannot be empty")
	}

	dec, err := decimal.NewFromString(mhz)
	if err != nil {
		return Frequency{}, errors.ErrInvalidFreq.New("invalid frequency: " + mhz).WithCause(err)
	}

	return NewFrequencyFromDecimal(dec)
}

// NewFrequencyFromDecimal wraps an already parsed MHz value
func NewFrequencyFromDecimal(mhz decimal.Decimal) (Frequency, error) {
	if !mhz.IsPositive() {
		return Frequency{}, errors.ErrInvalidFreq.New("frequency must be positive: " + mhz.String())
	}
	return Frequency{mhz: mhz}, nil
}

// MHz returns the frequency in megahertz
func (f Frequency) MHz() decimal.Decimal {
	return f.mhz
}

// IsZero checks if the frequency was never set
func (f Frequency) IsZero() bool {
	return f.mhz.IsZero()
}

// String returns the MHz value without trailing zeros
func (f Frequency) String() string {
	return f.mhz.String()
}
