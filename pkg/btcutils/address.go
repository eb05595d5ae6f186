package btcutils

import (
	"regexp"
	"strings"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

const (
	MinAddressLength = 26
	MaxAddressLength = 90
)

// permissiveAddressPattern accepts the shape of P2WPKH/P2WSH (bc1q, tb1q), P2TR (bc1p, tb1p)
// and legacy base58 (1, 3) addresses without decoding their checksum.
var permissiveAddressPattern = regexp.MustCompile(`(?i)^(bc1q|tb1q|bc1p|tb1p|[13])[a-zA-HJ-NP-Z0-9]{25,90}$`)

var supportedNetworks = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.SigNetParams,
	&chaincfg.RegressionNetParams,
}

// IsPermissiveAddress reports whether address looks like a bitcoin address.
// Leading and trailing whitespace is ignored.
func IsPermissiveAddress(address string) bool {
	address = strings.TrimSpace(address)
	if len(address) < MinAddressLength || len(address) > MaxAddressLength {
		return false
	}
	return permissiveAddressPattern.MatchString(address)
}

// IsAddress returns whether or not the passed string is a valid bitcoin address.
//
// NetParams is optional. If provided, we only check for that network,
// otherwise, we check for all supported networks.
func IsAddress(address string, defaultNet ...*chaincfg.Params) bool {
	address = strings.TrimSpace(address)
	if len(address) == 0 {
		return false
	}

	if net, ok := utils.Optional(defaultNet); ok {
		return isAddressForNet(address, net)
	}

	for _, net := range supportedNetworks {
		if isAddressForNet(address, net) {
			return true
		}
	}
	return false
}

func isAddressForNet(address string, net *chaincfg.Params) bool {
	decoded, err := btcutil.DecodeAddress(address, net)
	if err != nil {
		return false
	}
	return decoded.IsForNet(net)
}
