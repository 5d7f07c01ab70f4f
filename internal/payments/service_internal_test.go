package payments

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v78"

	"github.com/surfstrength/surfstrength/internal/errors"
	"github.com/surfstrength/surfstrength/internal/sqlite"
	"github.com/surfstrength/surfstrength/internal/testhelpers"
)

const testWebhookSecret = "whsec_test_secret"

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("connect database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})
	cfg := Config{
		SecretKey:     "sk_test_dummy",
		WebhookSecret: testWebhookSecret,
		PriceID:       "price_dummy",
		BaseURL:       "http://localhost:4000",
	}
	return NewService(db, cfg, logger)
}

// signPayload builds a Stripe-Signature header the way Stripe does: an HMAC
// SHA-256 of "<timestamp>.<payload>".
func signPayload(payload []byte, secret string) string {
	timestamp := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", timestamp, payload)
	return fmt.Sprintf("t=%d,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func checkoutCompletedPayload(email, paymentStatus string) []byte {
	return fmt.Appendf(nil, `{
		"id": "evt_test",
		"api_version": %q,
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_test",
				"object": "checkout.session",
				"payment_status": %q,
				"customer_details": {"email": %q},
				"customer": {"id": "cus_test"},
				"payment_intent": {"id": "pi_test"}
			}
		}
	}`, stripe.APIVersion, paymentStatus, email)
}

func chargeRefundedPayload(email string) []byte {
	return fmt.Appendf(nil, `{
		"id": "evt_test_refund",
		"api_version": %q,
		"type": "charge.refunded",
		"data": {
			"object": {
				"id": "ch_test",
				"object": "charge",
				"billing_details": {"email": %q}
			}
		}
	}`, stripe.APIVersion, email)
}

func TestHandleWebhookGrantsAccess(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	payload := checkoutCompletedPayload("Buyer@Example.com", "paid")
	if err := svc.HandleWebhook(ctx, payload, signPayload(payload, testWebhookSecret)); err != nil {
		t.Fatalf("handle webhook: %v", err)
	}

	paid, err := svc.HasPaidAccess(ctx, "buyer@example.com")
	if err != nil {
		t.Fatalf("has paid access: %v", err)
	}
	if !paid {
		t.Error("access not granted after completed checkout")
	}

	customer, err := svc.Customer(ctx, "buyer@example.com")
	if err != nil {
		t.Fatalf("customer: %v", err)
	}
	if customer.StripeCustomerID != "cus_test" || customer.StripePaymentIntentID != "pi_test" {
		t.Errorf("stripe references = %q/%q", customer.StripeCustomerID, customer.StripePaymentIntentID)
	}
}

func TestHandleWebhookIgnoresUnpaidCheckout(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	payload := checkoutCompletedPayload("buyer@example.com", "unpaid")
	if err := svc.HandleWebhook(ctx, payload, signPayload(payload, testWebhookSecret)); err != nil {
		t.Fatalf("handle webhook: %v", err)
	}
	paid, err := svc.HasPaidAccess(ctx, "buyer@example.com")
	if err != nil {
		t.Fatalf("has paid access: %v", err)
	}
	if paid {
		t.Error("access granted for unpaid checkout")
	}
}

func TestHandleWebhookIsIdempotent(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	payload := checkoutCompletedPayload("buyer@example.com", "paid")
	for range 2 {
		if err := svc.HandleWebhook(ctx, payload, signPayload(payload, testWebhookSecret)); err != nil {
			t.Fatalf("handle webhook: %v", err)
		}
	}
	paid, err := svc.HasPaidAccess(ctx, "buyer@example.com")
	if err != nil || !paid {
		t.Errorf("access after replay = %t, %v", paid, err)
	}
}

func TestHandleWebhookRefundRevokesAccess(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	ctx := context.Background()

	grant := checkoutCompletedPayload("buyer@example.com", "paid")
	if err := svc.HandleWebhook(ctx, grant, signPayload(grant, testWebhookSecret)); err != nil {
		t.Fatalf("grant webhook: %v", err)
	}

	refund := chargeRefundedPayload("buyer@example.com")
	if err := svc.HandleWebhook(ctx, refund, signPayload(refund, testWebhookSecret)); err != nil {
		t.Fatalf("refund webhook: %v", err)
	}

	paid, err := svc.HasPaidAccess(ctx, "buyer@example.com")
	if err != nil {
		t.Fatalf("has paid access: %v", err)
	}
	if paid {
		t.Error("access not revoked after refund")
	}
	if _, err = svc.Customer(ctx, "buyer@example.com"); !errors.Is(err, ErrNoPurchase) {
		t.Errorf("customer error = %v, want ErrNoPurchase", err)
	}
}

func TestHandleWebhookRejectsBadSignature(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	payload := checkoutCompletedPayload("buyer@example.com", "paid")

	err := svc.HandleWebhook(context.Background(), payload, signPayload(payload, "whsec_wrong"))
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("error = %v, want ErrInvalidSignature", err)
	}
}

func TestHandleWebhookIgnoresUnknownEvents(t *testing.T) {
	t.Parallel()

	svc := newTestService(t)
	payload := fmt.Appendf(nil, `{
		"id": "evt_test_sub",
		"api_version": %q,
		"type": "customer.subscription.deleted",
		"data": {"object": {"id": "sub_test"}}
	}`, stripe.APIVersion)

	if err := svc.HandleWebhook(context.Background(), payload, signPayload(payload, testWebhookSecret)); err != nil {
		t.Errorf("handle webhook: %v", err)
	}
}
