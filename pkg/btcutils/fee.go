package btcutils

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/shopspring/decimal"
)

// MinFeeRate is the lowest accepted fee rate in sats/vbyte.
var MinFeeRate = decimal.NewFromInt(1)

// FeeRate is a fee rate in sats/vbyte as supplied by the user.
// The raw input is kept verbatim so it can be sent back to the API unchanged.
type FeeRate struct {
	raw   string
	value decimal.Decimal
}

// ParseFeeRate parses a numeric fee rate of at least MinFeeRate.
func ParseFeeRate(s string) (FeeRate, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return FeeRate{}, errors.Wrap(errs.InvalidArgument, "fee rate is empty")
	}
	value, err := decimal.NewFromString(trimmed)
	if err != nil {
		return FeeRate{}, errors.Wrapf(errs.InvalidArgument, "fee rate %q is not a number", s)
	}
	if value.LessThan(MinFeeRate) {
		return FeeRate{}, errors.Wrapf(errs.InvalidArgument, "fee rate %q is lower than %s", s, MinFeeRate)
	}
	return FeeRate{raw: s, value: value}, nil
}

// MustParseFeeRate is like ParseFeeRate but panics on invalid input.
func MustParseFeeRate(s string) FeeRate {
	f, err := ParseFeeRate(s)
	if err != nil {
		panic(err)
	}
	return f
}

// IsValidFeeRate reports whether s is a numeric fee rate of at least MinFeeRate.
func IsValidFeeRate(s string) bool {
	_, err := ParseFeeRate(s)
	return err == nil
}

// String returns the fee rate exactly as supplied.
func (f FeeRate) String() string {
	return f.raw
}

func (f FeeRate) Decimal() decimal.Decimal {
	return f.value
}

func (f FeeRate) IsZero() bool {
	return f.raw == ""
}

// Valid reports whether f was produced by ParseFeeRate.
func (f FeeRate) Valid() bool {
	return !f.IsZero() && f.value.GreaterThanOrEqual(MinFeeRate)
}
