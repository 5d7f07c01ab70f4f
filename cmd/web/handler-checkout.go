package main

import (
	"fmt"
	"net/http"
)

// checkoutPOST starts a Stripe Checkout session and sends the visitor to
// the hosted payment page.
func (app *application) checkoutPOST(w http.ResponseWriter, r *http.Request) {
	checkoutURL, err := app.paymentsService.CreateCheckoutSession(r.Context())
	if err != nil {
		app.serverError(w, r, fmt.Errorf("create checkout session: %w", err))
		return
	}
	http.Redirect(w, r, checkoutURL, http.StatusSeeOther)
}
