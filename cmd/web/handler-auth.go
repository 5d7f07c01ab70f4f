package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/surfstrength/surfstrength/internal/auth"
	"github.com/surfstrength/surfstrength/internal/errors"
)

type loginTemplateData struct {
	BaseTemplateData
	// Status carries a one-shot message key from the previous step of the
	// sign-in flow: sent, rate-limited, invalid-email or invalid-link.
	Status string
}

func (app *application) loginGET(w http.ResponseWriter, r *http.Request) {
	if newBaseTemplateData(r).Authenticated {
		redirect(w, r, "/")
		return
	}
	data := loginTemplateData{
		BaseTemplateData: newBaseTemplateData(r),
		Status:           r.URL.Query().Get("status"),
	}
	app.render(w, r, http.StatusOK, "login", data)
}

func loginRedirect(w http.ResponseWriter, r *http.Request, status string) {
	redirect(w, r, "/login?status="+url.QueryEscape(status))
}

// sendMagicLinkPOST issues a sign-in link for a paid customer. Addresses
// without a purchase get the same "sent" response so the form does not
// reveal which emails have access.
func (app *application) sendMagicLinkPOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		app.serverError(w, r, fmt.Errorf("parse form: %w", err))
		return
	}

	email := strings.TrimSpace(r.Form.Get("email"))
	if _, err := mail.ParseAddress(email); err != nil {
		loginRedirect(w, r, "invalid-email")
		return
	}

	hasAccess, err := app.paymentsService.HasPaidAccess(ctx, email)
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	if !hasAccess {
		loginRedirect(w, r, "sent")
		return
	}

	token, err := app.authService.CreateMagicLink(ctx, email)
	if err != nil {
		if errors.Is(err, auth.ErrRateLimited) {
			loginRedirect(w, r, "rate-limited")
			return
		}
		app.serverError(w, r, err)
		return
	}

	link := app.baseURL + "/api/auth/verify-magic-link?token=" + url.QueryEscape(token)
	if err := app.emailSender.SendMagicLink(ctx, email, link); err != nil {
		app.serverError(w, r, fmt.Errorf("send magic link: %w", err))
		return
	}

	loginRedirect(w, r, "sent")
}

func (app *application) verifyMagicLinkGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := r.URL.Query().Get("token")
	if token == "" {
		loginRedirect(w, r, "invalid-link")
		return
	}

	if err := app.authService.CleanupExpired(ctx); err != nil {
		app.logger.LogAttrs(ctx, slog.LevelWarn, "cleanup of expired auth rows failed",
			errors.SlogError(err))
	}

	sessionToken, err := app.authService.ExchangeMagicLink(ctx, token)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrLinkInvalid), errors.Is(err, auth.ErrNotPaid):
			loginRedirect(w, r, "invalid-link")
		default:
			app.serverError(w, r, err)
		}
		return
	}

	app.setSessionCookie(w, sessionToken)
	redirect(w, r, "/")
}

func (app *application) logoutPOST(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := app.authService.InvalidateSession(ctx, cookie.Value); err != nil {
			app.logger.LogAttrs(ctx, slog.LevelWarn, "session invalidation failed",
				errors.SlogError(err))
		}
	}
	app.clearSessionCookie(w)
	redirect(w, r, "/")
}

type sessionResponse struct {
	Authenticated bool   `json:"authenticated"`
	Email         string `json:"email,omitempty"`
	PaidAt        string `json:"paid_at,omitempty"`
}

// sessionGET reports the caller's sign-in state as JSON for client-side
// scripts.
func (app *application) sessionGET(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := sessionResponse{}

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		identity, err := app.authService.ValidateSession(ctx, cookie.Value)
		switch {
		case err == nil:
			resp = sessionResponse{
				Authenticated: true,
				Email:         identity.Email,
				PaidAt:        identity.PaidAt.Format(time.RFC3339),
			}
		case errors.Is(err, auth.ErrSessionInvalid):
			app.clearSessionCookie(w)
		default:
			app.serverError(w, r, err)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		app.logger.LogAttrs(ctx, slog.LevelError, "failed to write session response",
			errors.SlogError(err))
	}
}
