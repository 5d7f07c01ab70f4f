package payments

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/surfstrength/surfstrength/internal/errors"
	"github.com/surfstrength/surfstrength/internal/sqlite"
)

// Customer is a purchase record keyed by email.
type Customer struct {
	Email                 string
	StripeCustomerID      string
	StripePaymentIntentID string
	PaidAt                time.Time
}

type repository struct {
	db *sqlite.Database
}

// grant records a completed purchase. Replays of the same webhook update
// the Stripe references but keep the original paid timestamp.
func (r *repository) grant(ctx context.Context, email, customerID, paymentIntentID string) error {
	if _, err := r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO users (email, stripe_customer_id, stripe_payment_intent_id, paid_at)
		VALUES (?, ?, ?, unixepoch())
		ON CONFLICT (email) DO UPDATE SET stripe_customer_id       = excluded.stripe_customer_id,
		                                  stripe_payment_intent_id = excluded.stripe_payment_intent_id,
		                                  updated_at               = unixepoch()`,
		normalizeEmail(email), customerID, paymentIntentID); err != nil {
		return errors.Wrap(err, "upsert customer")
	}
	return nil
}

// revoke removes a customer's access along with any live sign-in state.
func (r *repository) revoke(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if _, err := r.db.ReadWrite.ExecContext(ctx,
		"DELETE FROM users WHERE email = ?", email); err != nil {
		return errors.Wrap(err, "delete customer")
	}
	if _, err := r.db.ReadWrite.ExecContext(ctx,
		"DELETE FROM auth_sessions WHERE email = ?", email); err != nil {
		return errors.Wrap(err, "delete customer sessions")
	}
	return nil
}

func (r *repository) get(ctx context.Context, email string) (Customer, error) {
	var (
		customer Customer
		paidAt   int64
	)
	err := r.db.ReadOnly.QueryRowContext(ctx, `
		SELECT email, stripe_customer_id, stripe_payment_intent_id, paid_at
		FROM users
		WHERE email = ?`, normalizeEmail(email)).
		Scan(&customer.Email, &customer.StripeCustomerID, &customer.StripePaymentIntentID, &paidAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Customer{}, ErrNoPurchase
	}
	if err != nil {
		return Customer{}, errors.Wrap(err, "query customer")
	}
	customer.PaidAt = time.Unix(paidAt, 0)
	return customer, nil
}

func (r *repository) hasPaidAccess(ctx context.Context, email string) (bool, error) {
	var count int
	if err := r.db.ReadOnly.QueryRowContext(ctx,
		"SELECT count(*) FROM users WHERE email = ?", normalizeEmail(email)).Scan(&count); err != nil {
		return false, errors.Wrap(err, "query customer")
	}
	return count > 0, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
