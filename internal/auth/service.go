// Package auth implements passwordless magic-link sign-in for paying
// customers. Links are single use and short lived; successful exchange
// mints a long-lived session capped at a few devices per customer.
package auth

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"log/slog"
	"strings"
	"time"

	"github.com/surfstrength/surfstrength/internal/errors"
	"github.com/surfstrength/surfstrength/internal/sqlite"
)

var (
	ErrRateLimited    = errors.NewSentinel("magic link requested too recently")
	ErrLinkInvalid    = errors.NewSentinel("magic link is invalid or expired")
	ErrNotPaid        = errors.NewSentinel("no purchase found for email")
	ErrSessionInvalid = errors.NewSentinel("session is invalid or expired")
)

const (
	linkTTL      = 15 * time.Minute
	sessionTTL   = 30 * 24 * time.Hour
	resendWindow = time.Minute
	maxSessions  = 3
)

// Identity describes an authenticated customer.
type Identity struct {
	Email  string
	PaidAt time.Time
}

type Service struct {
	db     *sqlite.Database
	logger *slog.Logger
}

func NewService(db *sqlite.Database, logger *slog.Logger) *Service {
	return &Service{db: db, logger: logger}
}

// CreateMagicLink issues a fresh sign-in token for the email, replacing any
// outstanding ones. At most one link per minute is issued per email. The
// token is returned so the caller can deliver it; whether the email maps to
// a paying customer is deliberately not revealed here.
func (s *Service) CreateMagicLink(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)

	var lastCreated int64
	err := s.db.ReadOnly.QueryRowContext(ctx,
		"SELECT coalesce(max(created_at), 0) FROM magic_links WHERE email = ?", email).Scan(&lastCreated)
	if err != nil {
		return "", errors.Wrap(err, "query last magic link")
	}
	if time.Since(time.Unix(lastCreated, 0)) < resendWindow {
		return "", ErrRateLimited
	}

	token, err := generateToken()
	if err != nil {
		return "", errors.Wrap(err, "generate link token")
	}

	if _, err = s.db.ReadWrite.ExecContext(ctx,
		"DELETE FROM magic_links WHERE email = ?", email); err != nil {
		return "", errors.Wrap(err, "delete outstanding magic links")
	}
	if _, err = s.db.ReadWrite.ExecContext(ctx,
		"INSERT INTO magic_links (token, email, expires_at) VALUES (?, ?, ?)",
		token, email, time.Now().Add(linkTTL).Unix()); err != nil {
		return "", errors.Wrap(err, "insert magic link")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "magic link created", slog.String("email", email))
	return token, nil
}

// ExchangeMagicLink consumes a link token and mints a session for its
// email. The link is deleted whether or not the exchange succeeds, so a
// leaked link can only be tried once. Emails without a recorded purchase
// get ErrNotPaid.
func (s *Service) ExchangeMagicLink(ctx context.Context, token string) (string, error) {
	var (
		email     string
		expiresAt int64
	)
	err := s.db.ReadOnly.QueryRowContext(ctx,
		"SELECT email, expires_at FROM magic_links WHERE token = ?", token).Scan(&email, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLinkInvalid
	}
	if err != nil {
		return "", errors.Wrap(err, "query magic link")
	}

	if _, err = s.db.ReadWrite.ExecContext(ctx,
		"DELETE FROM magic_links WHERE token = ?", token); err != nil {
		return "", errors.Wrap(err, "consume magic link")
	}

	if time.Now().Unix() > expiresAt {
		return "", ErrLinkInvalid
	}

	var paidAt int64
	err = s.db.ReadOnly.QueryRowContext(ctx,
		"SELECT paid_at FROM users WHERE email = ?", email).Scan(&paidAt)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotPaid
	}
	if err != nil {
		return "", errors.Wrap(err, "query user")
	}

	sessionToken, err := generateToken()
	if err != nil {
		return "", errors.Wrap(err, "generate session token")
	}

	now := time.Now()
	if _, err = s.db.ReadWrite.ExecContext(ctx,
		"INSERT INTO auth_sessions (token, email, expires_at, last_seen) VALUES (?, ?, ?, ?)",
		sessionToken, email, now.Add(sessionTTL).Unix(), now.Unix()); err != nil {
		return "", errors.Wrap(err, "insert session")
	}

	// Cap concurrent sessions per customer, evicting the least recently
	// used ones.
	if _, err = s.db.ReadWrite.ExecContext(ctx, `
		DELETE FROM auth_sessions
		WHERE email = ?
		  AND token NOT IN (SELECT token
		                    FROM auth_sessions
		                    WHERE email = ?
		                    ORDER BY last_seen DESC, token
		                    LIMIT ?)`,
		email, email, maxSessions); err != nil {
		return "", errors.Wrap(err, "evict old sessions")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "session created", slog.String("email", email))
	return sessionToken, nil
}

// ValidateSession resolves a session token to the customer it belongs to
// and refreshes its last-seen timestamp.
func (s *Service) ValidateSession(ctx context.Context, token string) (Identity, error) {
	var (
		email  string
		paidAt int64
	)
	err := s.db.ReadOnly.QueryRowContext(ctx, `
		SELECT s.email, u.paid_at
		FROM auth_sessions AS s
		         JOIN users AS u ON u.email = s.email
		WHERE s.token = ?
		  AND s.expires_at > unixepoch()`, token).Scan(&email, &paidAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Identity{}, ErrSessionInvalid
	}
	if err != nil {
		return Identity{}, errors.Wrap(err, "query session")
	}

	if _, err = s.db.ReadWrite.ExecContext(ctx,
		"UPDATE auth_sessions SET last_seen = unixepoch() WHERE token = ?", token); err != nil {
		return Identity{}, errors.Wrap(err, "refresh session")
	}

	return Identity{Email: email, PaidAt: time.Unix(paidAt, 0)}, nil
}

// InvalidateSession signs the session out. Unknown tokens are a no-op.
func (s *Service) InvalidateSession(ctx context.Context, token string) error {
	if _, err := s.db.ReadWrite.ExecContext(ctx,
		"DELETE FROM auth_sessions WHERE token = ?", token); err != nil {
		return errors.Wrap(err, "delete session")
	}
	return nil
}

// CleanupExpired removes expired magic links and sessions.
func (s *Service) CleanupExpired(ctx context.Context) error {
	if _, err := s.db.ReadWrite.ExecContext(ctx,
		"DELETE FROM magic_links WHERE expires_at <= unixepoch()"); err != nil {
		return errors.Wrap(err, "delete expired magic links")
	}
	if _, err := s.db.ReadWrite.ExecContext(ctx,
		"DELETE FROM auth_sessions WHERE expires_at <= unixepoch()"); err != nil {
		return errors.Wrap(err, "delete expired sessions")
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}
	return hex.EncodeToString(buf), nil
}
