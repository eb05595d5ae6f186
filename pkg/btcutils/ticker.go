package btcutils

// TickerLength is the length of a BRC-20 ticker accepted by the inscription API.
const TickerLength = 4

// IsTicker reports whether s is exactly four ASCII uppercase letters.
func IsTicker(s string) bool {
	if len(s) != TickerLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
