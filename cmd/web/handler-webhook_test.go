package main

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v78"
	"github.com/surfstrength/surfstrength/internal/e2etest"
	"github.com/surfstrength/surfstrength/internal/testhelpers"
)

// signStripePayload builds a Stripe-Signature header the way Stripe does: an
// HMAC SHA-256 of "<timestamp>.<payload>".
func signStripePayload(payload []byte, secret string) string {
	timestamp := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", timestamp, payload)
	return fmt.Sprintf("t=%d,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func Test_application_stripeWebhook(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	payload := fmt.Appendf(nil, `{
		"id": "evt_e2e",
		"api_version": %q,
		"type": "checkout.session.completed",
		"data": {
			"object": {
				"id": "cs_e2e",
				"object": "checkout.session",
				"payment_status": "paid",
				"customer_details": {"email": "buyer@example.com"},
				"customer": {"id": "cus_e2e"},
				"payment_intent": {"id": "pi_e2e"}
			}
		}
	}`, stripe.APIVersion)

	post := func(t *testing.T, body []byte, signature string) *http.Response {
		t.Helper()
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			server.URL()+"/api/webhooks/stripe", bytes.NewReader(body))
		if err != nil {
			t.Fatalf("Failed to create request: %v", err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Stripe-Signature", signature)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("Failed to post webhook: %v", err)
		}
		return resp
	}

	t.Run("Valid signature grants access", func(t *testing.T) {
		resp := post(t, payload, signStripePayload(payload, "whsec_test"))
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", resp.StatusCode)
		}

		var count int
		err = server.DB().QueryRowContext(ctx,
			"SELECT count(*) FROM users WHERE email = ?", "buyer@example.com").Scan(&count)
		if err != nil {
			t.Fatalf("Failed to count users: %v", err)
		}
		if count != 1 {
			t.Errorf("Expected the buyer to be granted access, found %d rows", count)
		}
	})

	t.Run("Bad signature is rejected", func(t *testing.T) {
		resp := post(t, payload, signStripePayload(payload, "whsec_wrong"))
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", resp.StatusCode)
		}
	})
}
