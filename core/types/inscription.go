package types

import (
	"github.com/gaze-network/inscriber/pkg/btcutils"
	"github.com/shopspring/decimal"
)

// File is an uploaded file to inscribe.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

// InscriptionRequest is the user input of a new inscription. The sender address is
// taken from the connected wallet.
type InscriptionRequest struct {
	File             File
	RecipientAddress string
	// FeeRate in sats/vbyte, kept as typed by the user.
	FeeRate string
}

// CommitResponse is the server's answer to a create-commit call.
// It never carries a fee rate; see InscriptionAttempt.
type CommitResponse struct {
	InscriptionID            FlexString `json:"inscription_id"`
	PaymentAddress           string     `json:"payment_address"`
	RequiredAmountInSats     Sats       `json:"required_amount_in_sats"`
	FileSizeInBytes          Sats       `json:"file_size_in_bytes,omitempty"`
	SenderAddress            string     `json:"sender_address,omitempty"`
	RecipientAddress         string     `json:"recipient_address,omitempty"`
	CommitCreationSuccessful bool       `json:"commit_creation_successful"`
}

// InscriptionAttempt is one create-commit result together with the fee rate the
// client supplied for it. The fee rate is client state: the server neither stores nor returns it.
type InscriptionAttempt struct {
	Commit  CommitResponse
	FeeRate btcutils.FeeRate
}

// PaymentState is the payment status reported by the API.
type PaymentState string

const (
	PaymentPending   PaymentState = "pending"
	PaymentConfirmed PaymentState = "confirmed"
	PaymentUnknown   PaymentState = "unknown"
)

func ParsePaymentState(s string) PaymentState {
	switch PaymentState(s) {
	case PaymentPending, PaymentConfirmed:
		return PaymentState(s)
	default:
		return PaymentUnknown
	}
}

func (s *PaymentState) UnmarshalText(text []byte) error {
	*s = ParsePaymentState(string(text))
	return nil
}

type PaymentUTXO struct {
	Txid          string          `json:"txid"`
	Confirmations int64           `json:"confirmations"`
	Amount        decimal.Decimal `json:"amount"`
}

// PaymentStatus is the latest known payment state of an attempt.
type PaymentStatus struct {
	Txid         string         `json:"txid,omitempty"`
	IsPaid       bool           `json:"is_paid"`
	Status       PaymentState   `json:"status,omitempty"`
	PaymentUTXO  *PaymentUTXO   `json:"payment_utxo,omitempty"`
	ErrorDetails map[string]any `json:"error_details,omitempty"`
}

// IsConfirmed reports whether the payment reached its terminal state.
func (p PaymentStatus) IsConfirmed() bool {
	return p.IsPaid && p.Status == PaymentConfirmed
}

// PaymentStatusRequest identifies the payment to look up.
type PaymentStatusRequest struct {
	PaymentAddress       string `json:"payment_address"`
	RequiredAmountInSats int64  `json:"required_amount_in_sats"`
	SenderAddress        string `json:"sender_address"`
	ID                   string `json:"id"`
}

// InscriptionDetails is a read-only snapshot of an inscription.
type InscriptionDetails struct {
	ID                   FlexString `json:"id"`
	PaymentAddress       string     `json:"payment_address"`
	RequiredAmountInSats Sats       `json:"required_amount_in_sats"`
	FileSizeInBytes      Sats       `json:"file_size_in_bytes"`
	Status               string     `json:"status"`
	CommitTxID           string     `json:"commit_tx_id,omitempty"`
	RevealTxID           string     `json:"reveal_tx_id,omitempty"`
	SenderAddress        string     `json:"sender_address,omitempty"`
	RecipientAddress     string     `json:"recipient_address,omitempty"`
	CreatedAt            string     `json:"created_at,omitempty"`

	CommitCreationSuccessful bool `json:"commit_creation_successful,omitempty"`
}

type InscriptionStats struct {
	TotalInscriptions int64 `json:"total_inscriptions"`
	TotalPending      int64 `json:"total_pending"`
	TotalBroadcasted  int64 `json:"total_broadcasted"`
	TotalConfirmed    int64 `json:"total_confirmed"`
}

type RevealRequest struct {
	InscriptionID string `json:"inscription_id"`
	CommitTxID    string `json:"commit_tx_id"`
	Vout          uint32 `json:"vout"`
	Amount        int64  `json:"amount"`
}

type RevealResponse struct {
	RevealTxHex string `json:"reveal_tx_hex"`
}

type BroadcastRevealRequest struct {
	RevealTxHex string `json:"reveal_tx_hex"`
}

type BroadcastRevealResponse struct {
	Txid    FlexString `json:"txid"`
	Message string     `json:"message,omitempty"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
