package payments

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"auction-house/internal/biddingerrors"

	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76/webhook"
)

const testWebhookSecret = "whsec_test_secret"

var checkoutPayload = []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed",` +
	`"data":{"object":{"id":"cs_1","metadata":{"paymentId":"p1","userId":"u1"}}}}`)

func signedHeader(payload []byte, secret string, at time.Time) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: at,
	}).Header
}

func TestStripeWebhookVerifier(t *testing.T) {
	t.Parallel()

	now := time.Now()
	tampered := append([]byte(nil), checkoutPayload...)
	tampered[len(tampered)-6] = '2' // userId u1 becomes u2

	tests := []struct {
		name    string
		payload []byte
		header  string
		wantErr bool
	}{
		{name: "valid", payload: checkoutPayload, header: signedHeader(checkoutPayload, testWebhookSecret, now)},
		{name: "unsigned", payload: checkoutPayload, header: "", wantErr: true},
		{name: "wrong_secret", payload: checkoutPayload, header: signedHeader(checkoutPayload, "whsec_other", now), wantErr: true},
		{name: "tampered_body", payload: tampered, header: signedHeader(checkoutPayload, testWebhookSecret, now), wantErr: true},
		{name: "stale", payload: checkoutPayload, header: signedHeader(checkoutPayload, testWebhookSecret, now.Add(-time.Hour)), wantErr: true},
		{name: "garbage_header", payload: checkoutPayload, header: "t=abc,v1=def", wantErr: true},
	}

	v := NewStripeWebhookVerifier(testWebhookSecret)
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			headers := http.Header{}
			if tc.header != "" {
				headers.Set(SignatureHeader, tc.header)
			}
			err := v.Verify(tc.payload, headers)
			if tc.wantErr {
				require.True(t, errors.Is(err, biddingerrors.ErrInvalidSignature), "expected error: %v, got: %v", biddingerrors.ErrInvalidSignature, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
