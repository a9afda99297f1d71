package payments

import (
	"fmt"
	"net/http"

	"auction-house/internal/biddingerrors"

	"github.com/stripe/stripe-go/v76/webhook"
)

// SignatureHeader carries the provider's signature on webhook deliveries.
const SignatureHeader = "Stripe-Signature"

// StripeWebhookVerifier checks webhook bodies against the endpoint's signing
// secret. Deliveries older than the library's default tolerance are rejected.
type StripeWebhookVerifier struct {
	secret string
}

func NewStripeWebhookVerifier(secret string) *StripeWebhookVerifier {
	return &StripeWebhookVerifier{secret: secret}
}

// Verify fails with ErrInvalidSignature unless the signature header is valid
// for payload. The body is not trusted until this returns nil.
func (v *StripeWebhookVerifier) Verify(payload []byte, headers http.Header) error {
	header := headers.Get(SignatureHeader)
	if header == "" {
		return fmt.Errorf("payments: %w - missing %s header", biddingerrors.ErrInvalidSignature, SignatureHeader)
	}
	_, err := webhook.ConstructEventWithOptions(payload, header, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return fmt.Errorf("payments: %w - %v", biddingerrors.ErrInvalidSignature, err)
	}
	return nil
}
