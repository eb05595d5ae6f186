package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitResponseFlexibleFields(t *testing.T) {
	var a, b CommitResponse
	require.NoError(t, json.Unmarshal([]byte(`{"inscription_id":42,"payment_address":"bc1q","required_amount_in_sats":"1500"}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{"inscription_id":"42","payment_address":"bc1q","required_amount_in_sats":1500}`), &b))
	assert.Equal(t, a, b)
	assert.Equal(t, "42", a.InscriptionID.String())
	assert.Equal(t, int64(1500), a.RequiredAmountInSats.Int64())

	var bad CommitResponse
	assert.Error(t, json.Unmarshal([]byte(`{"required_amount_in_sats":"1.5"}`), &bad))
}

func TestPaymentStatus(t *testing.T) {
	var s PaymentStatus
	require.NoError(t, json.Unmarshal([]byte(`{"is_paid":true,"status":"confirmed","payment_utxo":{"txid":"ab","confirmations":1,"amount":"0.0001"}}`), &s))
	assert.True(t, s.IsConfirmed())
	assert.Equal(t, "0.0001", s.PaymentUTXO.Amount.String())

	require.NoError(t, json.Unmarshal([]byte(`{"is_paid":true,"status":"mempool"}`), &s))
	assert.Equal(t, PaymentUnknown, s.Status)
	assert.False(t, s.IsConfirmed())

	assert.False(t, PaymentStatus{IsPaid: false, Status: PaymentConfirmed}.IsConfirmed())
}

func TestBRC20OperationResponseCommit(t *testing.T) {
	var r BRC20OperationResponse
	require.NoError(t, json.Unmarshal([]byte(`{"success":true,"inscription_results":[{"commit_response":{"payment_address":"tb1q","required_amount_in_sats":900}}]}`), &r))
	c, ok := r.Commit()
	require.True(t, ok)
	assert.Equal(t, "tb1q", c.PaymentAddress)

	_, ok = BRC20OperationResponse{Success: true}.Commit()
	assert.False(t, ok)
}
