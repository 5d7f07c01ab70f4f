package main

import (
	"fmt"
	"net/http"
)

func (app *application) routes() (*http.ServeMux, error) {
	mux := http.NewServeMux()

	var (
		shared = func(next http.Handler) http.Handler {
			return app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
				commonContext(app.timeout(next)))))
		}
		noAuth = func(next http.Handler) http.Handler {
			return app.recoverPanic(shared(next))
		}
		session = func(next http.Handler) http.Handler {
			return app.recoverPanic(noCache(app.sessionManager.LoadAndSave(
				app.authenticate(shared(next)))))
		}
		mustSession = func(next http.Handler) http.Handler {
			return session(app.mustAuthenticate(next))
		}
		// Stripe posts cross-origin without a session, and signature
		// verification replaces origin checks.
		webhook = func(next http.Handler) http.Handler {
			return app.recoverPanic(app.logAndTraceRequest(app.timeout(next)))
		}
	)

	mux.Handle("GET /day/{id}", mustSession(http.HandlerFunc(app.dayGET)))
	mux.Handle("POST /progress/{id}/toggle", mustSession(http.HandlerFunc(app.progressTogglePOST)))

	mux.Handle("GET /settings", session(http.HandlerFunc(app.settingsGET)))
	mux.Handle("POST /settings/equipment/{category}/toggle", session(http.HandlerFunc(app.equipmentTogglePOST)))
	mux.Handle("POST /settings/equipment", session(http.HandlerFunc(app.equipmentBulkPOST)))
	mux.Handle("POST /settings/reset-progress", session(http.HandlerFunc(app.resetProgressPOST)))

	mux.Handle("GET /blog", session(http.HandlerFunc(app.blogListGET)))
	mux.Handle("GET /blog/{slug}", session(http.HandlerFunc(app.blogPostGET)))

	mux.Handle("GET /login", session(http.HandlerFunc(app.loginGET)))
	mux.Handle("POST /api/auth/send-magic-link", session(http.HandlerFunc(app.sendMagicLinkPOST)))
	mux.Handle("GET /api/auth/verify-magic-link", session(http.HandlerFunc(app.verifyMagicLinkGET)))
	mux.Handle("POST /api/auth/logout", session(http.HandlerFunc(app.logoutPOST)))
	mux.Handle("GET /api/auth/session", session(http.HandlerFunc(app.sessionGET)))

	mux.Handle("POST /api/checkout", session(http.HandlerFunc(app.checkoutPOST)))
	mux.Handle("POST /api/webhooks/stripe", webhook(http.HandlerFunc(app.stripeWebhookPOST)))

	mux.Handle("GET /api/healthy", noAuth(http.HandlerFunc(app.healthy)))

	// Home route (most specific)
	mux.Handle("GET /{$}", session(http.HandlerFunc(app.home)))

	// File server with custom 404 handling
	fileServerHandler, err := app.fileServerHandler()
	if err != nil {
		return nil, fmt.Errorf("fileServerHandler: %w", err)
	}
	mux.Handle("/", fileServerHandler)

	return mux, nil
}
