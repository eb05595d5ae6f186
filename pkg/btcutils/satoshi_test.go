package btcutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSatoshiConversion(t *testing.T) {
	testcases := []struct {
		btc  string
		sats int64
	}{
		{"2.29980951", 229980951},
		{"0.1251", 12510000},
		{"0.00007", 7000},
		{"0.00003835", 3835},
		{"0.00000546", 546},
	}
	for _, tc := range testcases {
		t.Run(tc.btc, func(t *testing.T) {
			assert.Equal(t, tc.sats, BitcoinToSatoshi(decimal.RequireFromString(tc.btc)))
			assert.True(t, decimal.RequireFromString(tc.btc).Equal(SatoshiToBitcoin(tc.sats)))
		})
	}
}
