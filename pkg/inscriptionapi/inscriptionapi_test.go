package inscriptionapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/inscriber/common/errs"
	"github.com/gaze-network/inscriber/core/types"
	"github.com/gaze-network/inscriber/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	hc, err := httpclient.New(srv.URL)
	require.NoError(t, err)
	return New(hc)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestCreateCommit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inscriptions/create-commit", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "10", r.FormValue("fee_rate"))
		assert.Equal(t, "bc1qrecipient", r.FormValue("recipient_address"))
		assert.Equal(t, "bc1qsender", r.FormValue("sender_address"))
		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		data, _ := io.ReadAll(f)
		assert.Equal(t, "hello.txt", hdr.Filename)
		assert.Equal(t, "0123456789", string(data))

		writeJSON(w, http.StatusOK, `{"inscription_id":"abc","payment_address":"bc1qpay","required_amount_in_sats":"5000","commit_creation_successful":true}`)
	})

	res, err := client.CreateCommit(context.Background(), CreateCommitRequest{
		File:             types.File{Name: "hello.txt", ContentType: "text/plain", Data: []byte("0123456789")},
		RecipientAddress: "bc1qrecipient",
		FeeRate:          "10",
		SenderAddress:    "bc1qsender",
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", res.InscriptionID.String())
	assert.Equal(t, int64(5000), res.RequiredAmountInSats.Int64())
	assert.True(t, res.CommitCreationSuccessful)
}

func TestPaymentStatusRequestBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/payments/status", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{
			"payment_address":         "bc1qpay",
			"required_amount_in_sats": float64(5000),
			"sender_address":          "bc1qsender",
			"id":                      "abc",
		}, body)
		writeJSON(w, http.StatusOK, `{"is_paid":false,"status":"pending"}`)
	})

	status, err := client.PaymentStatus(context.Background(), types.PaymentStatusRequest{
		PaymentAddress: "bc1qpay", RequiredAmountInSats: 5000, SenderAddress: "bc1qsender", ID: "abc",
	})
	require.NoError(t, err)
	assert.Equal(t, types.PaymentPending, status.Status)
}

func TestResponseError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"message":"Inscription not found","error":"not_found","details":"no row"}`)
	})

	_, err := client.GetInscription(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.NetworkError))
	assert.True(t, errors.Is(err, errs.NotFound))

	var rerr *ResponseError
	require.True(t, errors.As(err, &rerr))
	assert.Equal(t, http.StatusNotFound, rerr.StatusCode)
	assert.Equal(t, "Inscription not found", rerr.ServerMessage(false))
	assert.Equal(t, "not_found", rerr.ServerMessage(true))
	assert.Equal(t, "no row", rerr.Details)
}

func TestResponseErrorNonJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "<html>bad gateway</html>")
	})

	_, err := client.GetStats(context.Background())
	var rerr *ResponseError
	require.True(t, errors.As(err, &rerr))
	assert.Empty(t, rerr.ServerMessage(false))
	assert.False(t, errors.Is(err, errs.NotFound))
}

func TestTransportError(t *testing.T) {
	hc, err := httpclient.New("http://127.0.0.1:1")
	require.NoError(t, err)

	_, err = New(hc).GetStats(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.NetworkError))
}

func TestPathSegmentValidation(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		writeJSON(w, http.StatusOK, `{}`)
	})

	_, err := client.GetInscription(context.Background(), " ")
	assert.True(t, errors.Is(err, errs.InvalidArgument))
	_, err = client.BRC20CheckTicker(context.Background(), "../admin")
	assert.True(t, errors.Is(err, errs.InvalidArgument))
	assert.Zero(t, calls.Load())
}

func TestGetInscriptionsBySender(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/inscriptions/sender/bc1qsender", r.URL.Path)
		writeJSON(w, http.StatusOK, `[{"id":1,"payment_address":"bc1qpay","required_amount_in_sats":100,"commit_creation_successful":true}]`)
	})

	list, err := client.GetInscriptionsBySender(context.Background(), "bc1qsender")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "1", list[0].ID.String())
	assert.True(t, list[0].CommitCreationSuccessful)
}

func TestRefreshToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/refresh", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"token":"new-token"}`)
	})

	token, err := client.RefreshToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new-token", token)
}

func TestBRC20Deploy(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body BRC20DeployRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ORDI", body.Ticker)
		assert.Equal(t, "5", body.FeeRate)
		writeJSON(w, http.StatusOK, `{"success":true,"inscription_data":{"ticker":"ORDI"},"inscription_results":[{"commit_response":{"payment_address":"bc1qpay","required_amount_in_sats":700}}]}`)
	})

	res, err := client.BRC20Deploy(context.Background(), BRC20DeployRequest{Ticker: "ORDI", MaxSupply: "21000000", AmountPerMint: "1000", FeeRate: "5"})
	require.NoError(t, err)
	commit, ok := res.Commit()
	require.True(t, ok)
	assert.Equal(t, int64(700), commit.RequiredAmountInSats.Int64())
}
