package auth

import (
	"context"
	"testing"

	"github.com/surfstrength/surfstrength/internal/errors"
	"github.com/surfstrength/surfstrength/internal/sqlite"
	"github.com/surfstrength/surfstrength/internal/testhelpers"
)

func newTestService(t *testing.T) (*Service, *sqlite.Database) {
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
	return NewService(db, logger), db
}

func grantPurchase(t *testing.T, db *sqlite.Database, email string) {
	t.Helper()
	if _, err := db.ReadWrite.ExecContext(context.Background(),
		"INSERT INTO users (email, paid_at) VALUES (?, unixepoch())", email); err != nil {
		t.Fatalf("insert user: %v", err)
	}
}

func TestMagicLinkFlow(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)
	ctx := context.Background()
	grantPurchase(t, db, "surfer@example.com")

	link, err := svc.CreateMagicLink(ctx, " Surfer@Example.com ")
	if err != nil {
		t.Fatalf("create magic link: %v", err)
	}

	session, err := svc.ExchangeMagicLink(ctx, link)
	if err != nil {
		t.Fatalf("exchange magic link: %v", err)
	}

	identity, err := svc.ValidateSession(ctx, session)
	if err != nil {
		t.Fatalf("validate session: %v", err)
	}
	if identity.Email != "surfer@example.com" {
		t.Errorf("email = %q, want normalized address", identity.Email)
	}
	if identity.PaidAt.IsZero() {
		t.Error("paid timestamp missing")
	}
}

func TestMagicLinkIsSingleUse(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)
	ctx := context.Background()
	grantPurchase(t, db, "surfer@example.com")

	link, err := svc.CreateMagicLink(ctx, "surfer@example.com")
	if err != nil {
		t.Fatalf("create magic link: %v", err)
	}
	if _, err = svc.ExchangeMagicLink(ctx, link); err != nil {
		t.Fatalf("first exchange: %v", err)
	}
	if _, err = svc.ExchangeMagicLink(ctx, link); !errors.Is(err, ErrLinkInvalid) {
		t.Errorf("second exchange error = %v, want ErrLinkInvalid", err)
	}
}

func TestMagicLinkRateLimit(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)
	ctx := context.Background()
	grantPurchase(t, db, "surfer@example.com")

	if _, err := svc.CreateMagicLink(ctx, "surfer@example.com"); err != nil {
		t.Fatalf("first link: %v", err)
	}
	if _, err := svc.CreateMagicLink(ctx, "surfer@example.com"); !errors.Is(err, ErrRateLimited) {
		t.Errorf("second link error = %v, want ErrRateLimited", err)
	}

	// A different address is not limited.
	grantPurchase(t, db, "other@example.com")
	if _, err := svc.CreateMagicLink(ctx, "other@example.com"); err != nil {
		t.Errorf("other address: %v", err)
	}

	// Age the first link past the window and retry.
	if _, err := db.ReadWrite.ExecContext(ctx,
		"UPDATE magic_links SET created_at = created_at - 120 WHERE email = ?",
		"surfer@example.com"); err != nil {
		t.Fatalf("age link: %v", err)
	}
	if _, err := svc.CreateMagicLink(ctx, "surfer@example.com"); err != nil {
		t.Errorf("retry after window: %v", err)
	}
}

func TestExpiredMagicLinkRejected(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)
	ctx := context.Background()
	grantPurchase(t, db, "surfer@example.com")

	link, err := svc.CreateMagicLink(ctx, "surfer@example.com")
	if err != nil {
		t.Fatalf("create magic link: %v", err)
	}
	if _, err = db.ReadWrite.ExecContext(ctx,
		"UPDATE magic_links SET expires_at = unixepoch() - 1 WHERE token = ?", link); err != nil {
		t.Fatalf("expire link: %v", err)
	}
	if _, err = svc.ExchangeMagicLink(ctx, link); !errors.Is(err, ErrLinkInvalid) {
		t.Errorf("exchange error = %v, want ErrLinkInvalid", err)
	}
}

func TestExchangeWithoutPurchase(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)
	ctx := context.Background()

	link, err := svc.CreateMagicLink(ctx, "stranger@example.com")
	if err != nil {
		t.Fatalf("create magic link: %v", err)
	}
	if _, err = svc.ExchangeMagicLink(ctx, link); !errors.Is(err, ErrNotPaid) {
		t.Errorf("exchange error = %v, want ErrNotPaid", err)
	}
}

func TestSessionCapEvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)
	ctx := context.Background()
	grantPurchase(t, db, "surfer@example.com")

	var sessions []string
	for i := range maxSessions + 1 {
		link, err := svc.CreateMagicLink(ctx, "surfer@example.com")
		if err != nil {
			t.Fatalf("link %d: %v", i, err)
		}
		session, err := svc.ExchangeMagicLink(ctx, link)
		if err != nil {
			t.Fatalf("exchange %d: %v", i, err)
		}
		sessions = append(sessions, session)
		// Space out last_seen so eviction order is deterministic.
		if _, err = db.ReadWrite.ExecContext(ctx,
			"UPDATE auth_sessions SET last_seen = ? WHERE token = ?",
			1000+i, session); err != nil {
			t.Fatalf("stamp session %d: %v", i, err)
		}
	}

	if _, err := svc.ValidateSession(ctx, sessions[0]); !errors.Is(err, ErrSessionInvalid) {
		t.Errorf("oldest session error = %v, want ErrSessionInvalid", err)
	}
	for _, session := range sessions[1:] {
		if _, err := svc.ValidateSession(ctx, session); err != nil {
			t.Errorf("session %q invalid: %v", session[:8], err)
		}
	}
}

func TestInvalidateSession(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)
	ctx := context.Background()
	grantPurchase(t, db, "surfer@example.com")

	link, err := svc.CreateMagicLink(ctx, "surfer@example.com")
	if err != nil {
		t.Fatalf("create magic link: %v", err)
	}
	session, err := svc.ExchangeMagicLink(ctx, link)
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if err = svc.InvalidateSession(ctx, session); err != nil {
		t.Fatalf("invalidate: %v", err)
	}
	if _, err = svc.ValidateSession(ctx, session); !errors.Is(err, ErrSessionInvalid) {
		t.Errorf("validate error = %v, want ErrSessionInvalid", err)
	}
	if err = svc.InvalidateSession(ctx, "unknown"); err != nil {
		t.Errorf("invalidate unknown token: %v", err)
	}
}

func TestCleanupExpired(t *testing.T) {
	t.Parallel()

	svc, db := newTestService(t)
	ctx := context.Background()
	grantPurchase(t, db, "surfer@example.com")

	link, err := svc.CreateMagicLink(ctx, "surfer@example.com")
	if err != nil {
		t.Fatalf("create magic link: %v", err)
	}
	session, err := svc.ExchangeMagicLink(ctx, link)
	if err != nil {
		t.Fatalf("exchange: %v", err)
	}
	if _, err = db.ReadWrite.ExecContext(ctx,
		"UPDATE auth_sessions SET expires_at = unixepoch() - 1 WHERE token = ?", session); err != nil {
		t.Fatalf("expire session: %v", err)
	}
	if err = svc.CleanupExpired(ctx); err != nil {
		t.Fatalf("cleanup: %v", err)
	}

	var count int
	if err = db.ReadOnly.QueryRowContext(ctx,
		"SELECT count(*) FROM auth_sessions").Scan(&count); err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if count != 0 {
		t.Errorf("sessions remaining = %d, want 0", count)
	}
}
