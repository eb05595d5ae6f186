package types

import "github.com/gaze-network/inscriber/pkg/btcutils"

type BRC20OperationKind string

const (
	BRC20Deploy BRC20OperationKind = "deploy"
	BRC20Mint   BRC20OperationKind = "mint"
)

// DeployRequest is the user input of a BRC-20 deploy. Amounts are kept as typed.
type DeployRequest struct {
	Ticker             string
	MaxSupply          string
	AmountPerMint      string
	DestinationAddress string
	FeeRate            string
}

// MintRequest is the user input of a BRC-20 mint.
type MintRequest struct {
	Ticker        string
	Amount        string
	NumberOfMints string
	FeeRate       string
}

type BRC20InscriptionData struct {
	Ticker             string `json:"ticker"`
	MaxSupply          string `json:"max_supply,omitempty"`
	AmountPerMint      string `json:"amount_per_mint,omitempty"`
	Amount             string `json:"amount,omitempty"`
	NumberOfMints      string `json:"number_of_mints,omitempty"`
	DestinationAddress string `json:"destination_address,omitempty"`
	SenderAddress      string `json:"sender_address,omitempty"`
	Timestamp          string `json:"timestamp,omitempty"`
}

type BRC20InscriptionResult struct {
	CommitResponse *CommitResponse `json:"commit_response"`
}

// BRC20OperationResponse is the server's answer to a deploy or mint call.
type BRC20OperationResponse struct {
	Success            bool                     `json:"success"`
	InscriptionData    BRC20InscriptionData     `json:"inscription_data"`
	InscriptionResults []BRC20InscriptionResult `json:"inscription_results"`
}

// Commit returns the payment sub-object of the first inscription result, if any.
func (r BRC20OperationResponse) Commit() (CommitResponse, bool) {
	if len(r.InscriptionResults) == 0 || r.InscriptionResults[0].CommitResponse == nil {
		return CommitResponse{}, false
	}
	return *r.InscriptionResults[0].CommitResponse, true
}

// BRC20OperationAttempt is one deploy or mint result together with the fee rate the client supplied for it.
type BRC20OperationAttempt struct {
	Kind     BRC20OperationKind
	Response BRC20OperationResponse
	FeeRate  btcutils.FeeRate
}

type BRC20TokenDetails struct {
	MaxSupply       string `json:"max_supply"`
	AmountPerMint   string `json:"amount_per_mint"`
	DeployedAt      string `json:"deployed_at"`
	DeployerAddress string `json:"deployer_address"`
}

type TickerInfo struct {
	Exists       bool               `json:"exists"`
	Ticker       string             `json:"ticker"`
	TokenDetails *BRC20TokenDetails `json:"token_details,omitempty"`
}
