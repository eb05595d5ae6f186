// Package inscriptionapi is the typed client of the remote inscription and BRC-20 API.
package inscriptionapi

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/pkg/httpclient"
)

// DefaultBaseURL is the public inscription API.
const DefaultBaseURL = "https://api.skrybit.io"

const (
	pathCreateCommit    = "/inscriptions/create-commit"
	pathPaymentStatus   = "/payments/status"
	pathInscriptions    = "/inscriptions/"
	pathSender          = "/inscriptions/sender/"
	pathStats           = "/inscriptions/stats"
	pathCreateReveal    = "/inscriptions/create-reveal"
	pathBroadcastReveal = "/transactions/broadcast-reveal"
	pathRefreshToken    = "/auth/refresh"
	pathBRC20Deploy     = "/brc20/deploy"
	pathBRC20Mint       = "/brc20/mint"
	pathBRC20Ticker     = "/brc20/check-ticker/"
)

type Client struct {
	http *httpclient.Client
}

func New(client *httpclient.Client) *Client {
	return &Client{http: client}
}

// CreateCommitRequest is the multipart body of a create-commit call.
type CreateCommitRequest struct {
	File             types.File
	RecipientAddress string
	FeeRate          string
	SenderAddress    string
}

func (c *Client) CreateCommit(ctx context.Context, req CreateCommitRequest) (types.CommitResponse, error) {
	body := httpclient.NewMultipart().
		AddFile(httpclient.MultipartFile{
			Field:       "file",
			Filename:    req.File.Name,
			ContentType: req.File.ContentType,
			Data:        req.File.Data,
		}).
		AddField("recipient_address", req.RecipientAddress).
		AddField("fee_rate", req.FeeRate).
		AddField("sender_address", req.SenderAddress)

	var out types.CommitResponse
	err := c.do(ctx, "create_commit", "POST", pathCreateCommit, httpclient.RequestOptions{Multipart: body}, &out)
	return out, errors.WithStack(err)
}

func (c *Client) PaymentStatus(ctx context.Context, req types.PaymentStatusRequest) (types.PaymentStatus, error) {
	var out types.PaymentStatus
	err := c.postJSON(ctx, "payment_status", pathPaymentStatus, req, &out)
	return out, errors.WithStack(err)
}

func (c *Client) GetInscription(ctx context.Context, id string) (types.InscriptionDetails, error) {
	segment, err := pathSegment("inscription id", id)
	if err != nil {
		return types.InscriptionDetails{}, errors.WithStack(err)
	}
	var out types.InscriptionDetails
	err = c.do(ctx, "get_inscription", "GET", pathInscriptions+segment, httpclient.RequestOptions{}, &out)
	return out, errors.WithStack(err)
}

func (c *Client) GetInscriptionsBySender(ctx context.Context, address string) ([]types.InscriptionDetails, error) {
	segment, err := pathSegment("sender address", address)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var out []types.InscriptionDetails
	if err := c.do(ctx, "get_sender", "GET", pathSender+segment, httpclient.RequestOptions{}, &out); err != nil {
		return nil, errors.WithStack(err)
	}
	if out == nil {
		out = []types.InscriptionDetails{}
	}
	return out, nil
}

func (c *Client) GetStats(ctx context.Context) (types.InscriptionStats, error) {
	var out types.InscriptionStats
	err := c.do(ctx, "stats", "GET", pathStats, httpclient.RequestOptions{}, &out)
	return out, errors.WithStack(err)
}

func (c *Client) CreateReveal(ctx context.Context, req types.RevealRequest) (types.RevealResponse, error) {
	var out types.RevealResponse
	err := c.postJSON(ctx, "create_reveal", pathCreateReveal, req, &out)
	return out, errors.WithStack(err)
}

func (c *Client) BroadcastReveal(ctx context.Context, req types.BroadcastRevealRequest) (types.BroadcastRevealResponse, error) {
	var out types.BroadcastRevealResponse
	err := c.postJSON(ctx, "broadcast_reveal", pathBroadcastReveal, req, &out)
	return out, errors.WithStack(err)
}

// RefreshToken exchanges the current bearer token for a new one.
func (c *Client) RefreshToken(ctx context.Context) (string, error) {
	var out types.TokenResponse
	if err := c.postJSON(ctx, "refresh_token", pathRefreshToken, struct{}{}, &out); err != nil {
		return "", errors.WithStack(err)
	}
	if out.Token == "" {
		return "", errors.Wrap(errs.NotFound, "no new token returned")
	}
	return out.Token, nil
}

// BRC20DeployRequest is the JSON body of a deploy call.
type BRC20DeployRequest struct {
	Ticker             string `json:"ticker"`
	MaxSupply          string `json:"max_supply"`
	AmountPerMint      string `json:"amount_per_mint"`
	DestinationAddress string `json:"destination_address"`
	SenderAddress      string `json:"sender_address"`
	FeeRate            string `json:"fee_rate"`
}

// BRC20MintRequest is the JSON body of a mint call.
type BRC20MintRequest struct {
	Ticker        string `json:"ticker"`
	Amount        string `json:"amount"`
	NumberOfMints string `json:"number_of_mints"`
	SenderAddress string `json:"sender_address"`
	FeeRate       string `json:"fee_rate"`
}

func (c *Client) BRC20Deploy(ctx context.Context, req BRC20DeployRequest) (types.BRC20OperationResponse, error) {
	var out types.BRC20OperationResponse
	err := c.postJSON(ctx, "brc20_deploy", pathBRC20Deploy, req, &out)
	return out, errors.WithStack(err)
}

func (c *Client) BRC20Mint(ctx context.Context, req BRC20MintRequest) (types.BRC20OperationResponse, error) {
	var out types.BRC20OperationResponse
	err := c.postJSON(ctx, "brc20_mint", pathBRC20Mint, req, &out)
	return out, errors.WithStack(err)
}

func (c *Client) BRC20CheckTicker(ctx context.Context, ticker string) (types.TickerInfo, error) {
	segment, err := pathSegment("ticker", ticker)
	if err != nil {
		return types.TickerInfo{}, errors.WithStack(err)
	}
	var out types.TickerInfo
	err = c.do(ctx, "brc20_check_ticker", "GET", pathBRC20Ticker+segment, httpclient.RequestOptions{}, &out)
	return out, errors.WithStack(err)
}

func (c *Client) postJSON(ctx context.Context, operation, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return errors.Wrapf(err, "can't marshal %s request", operation)
	}
	return c.do(ctx, operation, "POST", path, httpclient.RequestOptions{Body: body}, out)
}

func (c *Client) do(ctx context.Context, operation, method, path string, opts httpclient.RequestOptions, out any) error {
	opts.Operation = operation
	resp, err := c.http.Do(ctx, method, path, opts)
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "can't call %s", operation), errs.NetworkError)
	}
	if !resp.IsSuccess() {
		return errors.WithStack(newResponseError(resp))
	}
	if out == nil {
		return nil
	}
	if err := resp.UnmarshalBody(out); err != nil {
		return errors.Mark(errors.Wrapf(err, "invalid %s response", operation), errs.NetworkError)
	}
	return nil
}

// pathSegment escapes a user value for use as one path segment.
func pathSegment(name, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", errors.Wrapf(errs.InvalidArgument, "%s is required", name)
	}
	if strings.Contains(value, "/") {
		return "", errors.Wrapf(errs.InvalidArgument, "%s %q must not contain '/'", name, value)
	}
	return url.PathEscape(value), nil
}
