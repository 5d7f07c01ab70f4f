package main

import (
	"io"
	"net/http"

	"github.com/surfstrength/surfstrength/internal/errors"
	"github.com/surfstrength/surfstrength/internal/payments"
)

// Stripe webhook payloads are small. 64 KiB leaves generous headroom.
const maxWebhookBody = 64 * 1024

func (app *application) stripeWebhookPOST(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxWebhookBody))
	if err != nil {
		http.Error(w, "payload too large", http.StatusRequestEntityTooLarge)
		return
	}

	err = app.paymentsService.HandleWebhook(r.Context(), payload, r.Header.Get("Stripe-Signature"))
	switch {
	case err == nil:
	case errors.Is(err, payments.ErrInvalidSignature):
		http.Error(w, "invalid signature", http.StatusBadRequest)
		return
	default:
		app.serverError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"received":true}`))
}
