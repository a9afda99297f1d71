package payments

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"auction-house/internal/money"
	"auction-house/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

//go:generate mockgen -destination=mock_provider.go -package=payments auction-house/internal/payments Provider

// Charge is the provider-side linkage for one payable amount.
type Charge struct {
	PayableURL string
	PriceRef   string
	LinkRef    string
}

// Provider is the external payment service. It issues payable links and can
// switch them off again; confirmation arrives later through a webhook.
type Provider interface {
	CreateDepositCharge(ctx context.Context, amount money.Money, description string, metadata map[string]string) (Charge, error)
	DeactivateLink(ctx context.Context, linkRef string) error
}

// StripeProvider issues Stripe payment links backed by a one-off price.
type StripeProvider struct {
	api        *client.API
	successURL string
}

var _ Provider = (*StripeProvider)(nil)

func NewStripeProvider(secretKey, successURL string) *StripeProvider {
	sc := &client.API{}
	sc.Init(secretKey, nil)
	return &StripeProvider{api: sc, successURL: successURL}
}

func (p *StripeProvider) CreateDepositCharge(ctx context.Context, amount money.Money, description string, metadata map[string]string) (Charge, error) {
	priceParams := &stripe.PriceParams{
		Currency:   stripe.String(strings.ToLower(amount.Currency())),
		UnitAmount: stripe.Int64(amount.Cents()),
		ProductData: &stripe.PriceProductDataParams{
			Name: stripe.String(description),
		},
	}
	priceParams.Context = ctx
	price, err := p.api.Prices.New(priceParams)
	if err != nil {
		return Charge{}, fmt.Errorf("stripe: create price: %w", err)
	}

	linkParams := &stripe.PaymentLinkParams{
		LineItems: []*stripe.PaymentLinkLineItemParams{
			{Price: stripe.String(price.ID), Quantity: stripe.Int64(1)},
		},
	}
	if p.successURL != "" {
		linkParams.AfterCompletion = &stripe.PaymentLinkAfterCompletionParams{
			Type:     stripe.String(string(stripe.PaymentLinkAfterCompletionTypeRedirect)),
			Redirect: &stripe.PaymentLinkAfterCompletionRedirectParams{URL: stripe.String(p.successURL)},
		}
	}
	for k, v := range metadata {
		linkParams.AddMetadata(k, v)
	}
	linkParams.Context = ctx

	link, err := p.api.PaymentLinks.New(linkParams)
	if err != nil {
		return Charge{}, fmt.Errorf("stripe: create payment link: %w", err)
	}
	return Charge{PayableURL: link.URL, PriceRef: price.ID, LinkRef: link.ID}, nil
}

func (p *StripeProvider) DeactivateLink(ctx context.Context, linkRef string) error {
	params := &stripe.PaymentLinkParams{Active: stripe.Bool(false)}
	params.Context = ctx
	if _, err := p.api.PaymentLinks.Update(linkRef, params); err != nil {
		return fmt.Errorf("stripe: deactivate payment link %s: %w", linkRef, err)
	}
	return nil
}

// SandboxProvider fakes the payment service for local runs and tests.
type SandboxProvider struct {
	baseURL string

	mu       sync.Mutex
	charges  map[string]Charge
	metadata map[string]map[string]string
	inactive map[string]bool
}

var _ Provider = (*SandboxProvider)(nil)

func NewSandboxProvider(baseURL string) *SandboxProvider {
	return &SandboxProvider{
		baseURL:  strings.TrimRight(baseURL, "/"),
		charges:  make(map[string]Charge),
		metadata: make(map[string]map[string]string),
		inactive: make(map[string]bool),
	}
}

func (p *SandboxProvider) CreateDepositCharge(ctx context.Context, amount money.Money, description string, metadata map[string]string) (Charge, error) {
	if err := ctx.Err(); err != nil {
		return Charge{}, err
	}
	if !amount.IsPositive() {
		return Charge{}, fmt.Errorf("sandbox: amount must be positive, got %s", amount)
	}

	id := utils.GenerateID()
	charge := Charge{
		PriceRef:   "price_sandbox_" + id,
		LinkRef:    "plink_sandbox_" + id,
		PayableURL: fmt.Sprintf("%s/pay/%s", p.baseURL, id),
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.charges[charge.LinkRef] = charge
	md := make(map[string]string, len(metadata))
	for k, v := range metadata {
		md[k] = v
	}
	p.metadata[charge.LinkRef] = md

	utils.Debug("sandbox charge created", map[string]any{"link": charge.LinkRef, "amount": amount.Format(), "description": description})
	return charge, nil
}

func (p *SandboxProvider) DeactivateLink(_ context.Context, linkRef string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.charges[linkRef]; !ok {
		return fmt.Errorf("sandbox: unknown payment link %s", linkRef)
	}
	p.inactive[linkRef] = true
	return nil
}

// IsActive reports whether linkRef exists and has not been deactivated.
func (p *SandboxProvider) IsActive(linkRef string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.charges[linkRef]
	return ok && !p.inactive[linkRef]
}

// Metadata returns the metadata the link was created with.
func (p *SandboxProvider) Metadata(linkRef string) map[string]string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.metadata[linkRef]
}
