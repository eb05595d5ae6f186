// Package bitcoind is a wallet adapter for a Bitcoin Core wallet reached over JSON-RPC.
package bitcoind

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/rpcclient"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/pkg/btcutils"
	"github.com/gaze-network/inscriber/pkg/logger"
	"github.com/gaze-network/inscriber/pkg/logger/slogx"
	"github.com/gaze-network/inscriber/pkg/wallet"
	"github.com/samber/lo"
)

const DefaultLabel = "inscriber"

type Config struct {
	Host       string `mapstructure:"host"`
	User       string `mapstructure:"user"`
	Pass       string `mapstructure:"pass"`
	DisableTLS bool   `mapstructure:"disable_tls"`
	// Wallet is the name of the loaded Bitcoin Core wallet. Empty uses the default wallet.
	Wallet string `mapstructure:"wallet"`
	// Label groups the addresses returned as accounts.
	Label string `mapstructure:"label"`
}

// RPC is the subset of *rpcclient.Client used by the adapter.
type RPC interface {
	RawRequest(method string, params []json.RawMessage) (json.RawMessage, error)
}

type Wallet struct {
	rpc   RPC
	label string
	net   *chaincfg.Params
}

var _ wallet.TransactionWallet = (*Wallet)(nil)

// New connects to a Bitcoin Core wallet. The returned shutdown func releases the client.
func New(cfg Config, net *chaincfg.Params) (*Wallet, func(), error) {
	if cfg.Host == "" {
		return nil, nil, errors.Wrap(errs.InvalidArgument, "bitcoind host is required")
	}
	host := strings.TrimSuffix(cfg.Host, "/")
	if cfg.Wallet != "" {
		host += "/wallet/" + cfg.Wallet
	}
	client, err := rpcclient.New(&rpcclient.ConnConfig{
		Host:         host,
		User:         cfg.User,
		Pass:         cfg.Pass,
		DisableTLS:   cfg.DisableTLS,
		HTTPPostMode: true,
	}, nil)
	if err != nil {
		return nil, nil, wallet.Unavailable(err, "can't create bitcoind rpc client")
	}
	return NewWithRPC(client, cfg.Label, net), client.Shutdown, nil
}

func NewWithRPC(rpc RPC, label string, net *chaincfg.Params) *Wallet {
	return &Wallet{
		rpc:   rpc,
		label: utils.Default(label, DefaultLabel),
		net:   utils.Default(net, &chaincfg.MainNetParams),
	}
}

// RequestAccounts returns the labelled addresses, creating one when the label is still empty.
func (w *Wallet) RequestAccounts(ctx context.Context) ([]string, error) {
	accounts, err := w.GetAccounts(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(accounts) > 0 {
		return accounts, nil
	}

	var address string
	if err := w.call(ctx, "getnewaddress", &address, w.label, "bech32"); err != nil {
		return nil, errors.Wrap(err, "can't create address")
	}
	logger.InfoContext(ctx, "Created wallet address", slogx.String("label", w.label), slogx.String("address", address))
	return []string{address}, nil
}

func (w *Wallet) GetAccounts(ctx context.Context) ([]string, error) {
	var byLabel map[string]json.RawMessage
	err := w.call(ctx, "getaddressesbylabel", &byLabel, w.label)
	if err != nil {
		// -11: no address carries the label yet
		if rpcErr := new(btcjson.RPCError); errors.As(err, &rpcErr) && rpcErr.Code == btcjson.ErrRPCWalletInvalidAccountName {
			return []string{}, nil
		}
		return nil, errors.Wrap(err, "can't get addresses by label")
	}
	accounts := lo.Keys(byLabel)
	sort.Strings(accounts)
	return accounts, nil
}

func (w *Wallet) SendBitcoin(ctx context.Context, address string, amountSats int64, opts wallet.SendOptions) (string, error) {
	if !btcutils.IsAddress(address, w.net) {
		return "", wallet.Rejected(errors.Wrapf(errs.InvalidArgument, "address %q", address), "invalid destination address for "+w.net.Name)
	}
	if amountSats <= 0 {
		return "", wallet.Rejected(errors.Wrapf(errs.InvalidArgument, "amount %d", amountSats), "amount must be positive")
	}

	amount := btcutils.SatoshiToBitcoin(amountSats).StringFixed(btcutils.BitcoinDecimals)
	var feeRate any
	if opts.FeeRate.IsPositive() {
		feeRate = json.RawMessage(opts.FeeRate.String())
	}

	// sendtoaddress "address" amount "comment" "comment_to" subtractfeefromamount replaceable conf_target "estimate_mode" avoid_reuse fee_rate
	var txid string
	err := w.call(ctx, "sendtoaddress", &txid,
		address, json.RawMessage(amount), "", "", false, true, nil, "unset", nil, feeRate,
	)
	if err != nil {
		return "", errors.Wrap(err, "can't send bitcoin")
	}
	return wallet.NormalizeTxID(txid)
}

func (w *Wallet) GetTransaction(ctx context.Context, txid string) (map[string]any, error) {
	var tx map[string]any
	if err := w.call(ctx, "gettransaction", &tx, txid); err != nil {
		return nil, errors.Wrapf(err, "can't get transaction %s", txid)
	}
	return tx, nil
}

// call sends an RPC request. RPC errors are wallet rejections, anything else means the wallet is unreachable.
func (w *Wallet) call(ctx context.Context, method string, out any, args ...any) error {
	if err := ctx.Err(); err != nil {
		return errors.WithStack(err)
	}
	params := make([]json.RawMessage, 0, len(args))
	for _, arg := range args {
		if raw, ok := arg.(json.RawMessage); ok {
			params = append(params, raw)
			continue
		}
		b, err := json.Marshal(arg)
		if err != nil {
			return errors.Wrapf(err, "can't marshal %s params", method)
		}
		params = append(params, b)
	}

	result, err := w.rpc.RawRequest(method, params)
	if err != nil {
		if rpcErr := new(btcjson.RPCError); errors.As(err, &rpcErr) {
			return wallet.Rejected(err, method)
		}
		return wallet.Unavailable(err, method)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(result, out); err != nil {
		return wallet.Rejected(err, "can't decode "+method+" result")
	}
	return nil
}
