// Package payments sells the program through Stripe Checkout and keeps the
// purchase records that gate content access up to date from webhooks.
package payments

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
	"github.com/stripe/stripe-go/v78/webhook"

	"github.com/surfstrength/surfstrength/internal/errors"
	"github.com/surfstrength/surfstrength/internal/sqlite"
)

var (
	ErrNoPurchase       = errors.NewSentinel("no purchase found for email")
	ErrInvalidSignature = errors.NewSentinel("webhook signature verification failed")
)

type Config struct {
	SecretKey     string
	WebhookSecret string
	PriceID       string
	BaseURL       string
}

type Service struct {
	api    *client.API
	repo   *repository
	cfg    Config
	logger *slog.Logger
}

func NewService(db *sqlite.Database, cfg Config, logger *slog.Logger) *Service {
	api := &client.API{}
	api.Init(cfg.SecretKey, nil)
	return &Service{
		api:    api,
		repo:   &repository{db: db},
		cfg:    cfg,
		logger: logger,
	}
}

// CreateCheckoutSession starts a one-time Checkout payment for the program
// and returns the hosted payment page URL to redirect the visitor to.
func (s *Service) CreateCheckoutSession(ctx context.Context) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(s.cfg.PriceID),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.cfg.BaseURL + "/?payment=success"),
		CancelURL:  stripe.String(s.cfg.BaseURL + "/?canceled=true"),
		// Email is how access is granted afterwards, so it must be collected.
		CustomerCreation:         stripe.String(string(stripe.CheckoutSessionCustomerCreationAlways)),
		BillingAddressCollection: stripe.String(string(stripe.CheckoutSessionBillingAddressCollectionRequired)),
	}
	params.Context = ctx
	params.SetIdempotencyKey(uuid.NewString())

	session, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return "", errors.Wrap(err, "create checkout session")
	}
	if session.URL == "" {
		return "", errors.New("checkout session has no URL")
	}
	return session.URL, nil
}

// HandleWebhook verifies and applies one Stripe event. A completed checkout
// grants access for the customer's email, a refunded charge revokes it.
// Unhandled event types are acknowledged without action.
func (s *Service) HandleWebhook(ctx context.Context, payload []byte, signatureHeader string) error {
	event, err := webhook.ConstructEvent(payload, signatureHeader, s.cfg.WebhookSecret)
	if err != nil {
		return errors.Join(ErrInvalidSignature, err)
	}

	switch event.Type {
	case "checkout.session.completed":
		var session stripe.CheckoutSession
		if err = json.Unmarshal(event.Data.Raw, &session); err != nil {
			return errors.Wrap(err, "unmarshal checkout session")
		}
		return s.applyCheckoutCompleted(ctx, session)

	case "charge.refunded":
		var charge stripe.Charge
		if err = json.Unmarshal(event.Data.Raw, &charge); err != nil {
			return errors.Wrap(err, "unmarshal charge")
		}
		return s.applyChargeRefunded(ctx, charge)

	default:
		s.logger.LogAttrs(ctx, slog.LevelDebug, "ignoring webhook event",
			slog.String("type", string(event.Type)))
		return nil
	}
}

func (s *Service) applyCheckoutCompleted(ctx context.Context, session stripe.CheckoutSession) error {
	if session.PaymentStatus != stripe.CheckoutSessionPaymentStatusPaid {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "checkout not paid yet",
			slog.String("session", session.ID),
			slog.String("status", string(session.PaymentStatus)))
		return nil
	}

	email := session.CustomerEmail
	if email == "" && session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}
	if email == "" {
		return errors.New("checkout session has no customer email")
	}

	var customerID, paymentIntentID string
	if session.Customer != nil {
		customerID = session.Customer.ID
	}
	if session.PaymentIntent != nil {
		paymentIntentID = session.PaymentIntent.ID
	}

	if err := s.repo.grant(ctx, email, customerID, paymentIntentID); err != nil {
		return errors.Wrap(err, "grant access")
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "purchase recorded", slog.String("email", normalizeEmail(email)))
	return nil
}

func (s *Service) applyChargeRefunded(ctx context.Context, charge stripe.Charge) error {
	if charge.BillingDetails == nil || charge.BillingDetails.Email == "" {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "refunded charge has no email",
			slog.String("charge", charge.ID))
		return nil
	}
	if err := s.repo.revoke(ctx, charge.BillingDetails.Email); err != nil {
		return errors.Wrap(err, "revoke access")
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, "purchase refunded",
		slog.String("email", normalizeEmail(charge.BillingDetails.Email)))
	return nil
}

// HasPaidAccess reports whether the email maps to a recorded purchase.
func (s *Service) HasPaidAccess(ctx context.Context, email string) (bool, error) {
	return s.repo.hasPaidAccess(ctx, email)
}

// Customer returns the purchase record for the email.
func (s *Service) Customer(ctx context.Context, email string) (Customer, error) {
	return s.repo.get(ctx, email)
}
