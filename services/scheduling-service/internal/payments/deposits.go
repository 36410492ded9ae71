package payments

import (
	"log/slog"
	"strings"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// DepositCollector creates Stripe PaymentIntents for booking deposits.
// With no secret key configured it degrades to a no-op so self-scheduling
// keeps working in environments without billing.
type DepositCollector struct {
	secretKey string
	currency  string
	logger    *slog.Logger
}

func NewDepositCollector(secretKey, currency string, logger *slog.Logger) *DepositCollector {
	if strings.TrimSpace(currency) == "" {
		currency = "usd"
	}
	return &DepositCollector{
		secretKey: strings.TrimSpace(secretKey),
		currency:  currency,
		logger:    logger,
	}
}

func (c *DepositCollector) Enabled() bool {
	return c.secretKey != ""
}

// CreateDeposit creates a PaymentIntent for amountCents and returns its id
// and client secret. The idempotency key ties retried bookings to one intent.
func (c *DepositCollector) CreateDeposit(companyID, workOrderKey string, amountCents int64, customerEmail string) (intentID, clientSecret string, err error) {
	if !c.Enabled() || amountCents <= 0 {
		return "", "", nil
	}

	stripe.Key = c.secretKey
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountCents),
		Currency: stripe.String(c.currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
		ReceiptEmail: stripe.String(customerEmail),
	}
	params.IdempotencyKey = stripe.String("deposit:" + companyID + ":" + workOrderKey)
	params.AddMetadata("company_id", companyID)
	params.AddMetadata("booking_key", workOrderKey)

	pi, err := paymentintent.New(params)
	if err != nil {
		c.logger.Error("stripe payment intent create failed", "err", err, "company_id", companyID)
		return "", "", err
	}
	return pi.ID, pi.ClientSecret, nil
}
