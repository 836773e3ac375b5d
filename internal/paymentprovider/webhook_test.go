package paymentprovider

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedHeader(payload []byte, ts int64, secret string) string {
	return "t=" + strconv.FormatInt(ts, 10) + ",v1=" + ComputeSignature(payload, ts, secret)
}

func TestVerifyWebhookSignature(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	now := time.Unix(1_700_000_000, 0)
	secret := "whsec_test"

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{name: "valid", header: signedHeader(payload, now.Unix(), secret)},
		{
			name:   "one of several signatures matches",
			header: "t=" + strconv.FormatInt(now.Unix(), 10) + ",v1=deadbeef,v1=" + ComputeSignature(payload, now.Unix(), secret),
		},
		{name: "wrong secret", header: signedHeader(payload, now.Unix(), "other"), wantErr: ErrInvalidSignature},
		{name: "empty header", header: "", wantErr: ErrInvalidSignature},
		{name: "no timestamp", header: "v1=" + ComputeSignature(payload, now.Unix(), secret), wantErr: ErrInvalidSignature},
		{name: "garbage timestamp", header: "t=abc,v1=00", wantErr: ErrInvalidSignature},
		{name: "too old", header: signedHeader(payload, now.Add(-10*time.Minute).Unix(), secret), wantErr: ErrSignatureExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := VerifyWebhookSignature(payload, tt.header, secret, 5*time.Minute, now)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVerifyWebhookSignature_TamperedPayload(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	header := signedHeader([]byte(`{"amount":100}`), now.Unix(), "s")

	err := VerifyWebhookSignature([]byte(`{"amount":999}`), header, "s", time.Minute, now)
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParseEvent(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded",
		"data":{"object":{"id":"pi_1","amount":1999,"currency":"usd","status":"succeeded","metadata":{"userId":"7"}}}}`)
	now := time.Now()

	event, err := ParseEvent(payload, signedHeader(payload, now.Unix(), "s"), "s", time.Minute, now)
	require.NoError(t, err)
	assert.Equal(t, EventPaymentSucceeded, event.Type)
	assert.Equal(t, "pi_1", event.Data.Object.ID)
	assert.Equal(t, "7", event.Data.Object.Metadata["userId"])
}
