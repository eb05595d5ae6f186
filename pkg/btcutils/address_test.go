package btcutils

import (
	"strings"
	"testing"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/stretchr/testify/assert"
)

func TestIsPermissiveAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		valid   bool
	}{
		{"p2wpkh mainnet", "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", true},
		{"p2tr mainnet", "bc1p5d7rjq7g6rdk2yhzks9smlaqtedr4dekq08ge8ztwac72sfr9rusxg3297", true},
		{"p2wpkh testnet", "tb1qw508d6qejxtdg4y5r3zarvary0c5xw7kxpjzsx", true},
		{"p2tr testnet", "tb1pqqqqp399et2xygdj5xreqhjjvcmzhxw4aywxecjdzew6hylgvsesf3hn0c", true},
		{"p2pkh", "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2", true},
		{"p2sh", "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy", true},
		{"uppercase bech32", "BC1QAR0SRRR7XFKVY5L643LYDNW9RE59GTZZWF5MDQ", true},
		{"surrounding whitespace", "  1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2 ", true},
		{"too short", "1BvBMSEYstWetqTFn5Au4m4", false},
		{"too long", "bc1q" + strings.Repeat("a", 87), false},
		{"max length", "bc1q" + strings.Repeat("a", 86), true},
		{"unknown prefix", "2BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2", false},
		{"litecoin bech32", "ltc1qg82tjwk8apgl9xk2pngn2cz2ydzkh8h7gdvv3u", false},
		{"forbidden char", "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN_", false},
		{"inner space", "1BvBMSEYstWetqTFn5 Au4m4GFg7xJaNVN2", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsPermissiveAddress(tt.address))
		})
	}
}

func TestIsAddress(t *testing.T) {
	assert.True(t, IsAddress("bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"))
	assert.True(t, IsAddress("bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", &chaincfg.MainNetParams))
	assert.False(t, IsAddress("bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", &chaincfg.TestNet3Params))
	assert.False(t, IsAddress("bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdx"), "bad checksum")
	assert.False(t, IsAddress(""))
}

func TestIsTicker(t *testing.T) {
	assert.True(t, IsTicker("ORDI"))
	assert.True(t, IsTicker("ABCD"))
	assert.False(t, IsTicker("ordi"))
	assert.False(t, IsTicker("ORD"))
	assert.False(t, IsTicker("ORDIX"))
	assert.False(t, IsTicker("OR1I"))
	assert.False(t, IsTicker("ÖRDI"))
}
