package main

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/surfstrength/surfstrength/internal/e2etest"
	"github.com/surfstrength/surfstrength/internal/testhelpers"
)

func Test_application_magicLinkLogin(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()
	email := "surfer@example.com"
	if err = server.GrantPaidAccess(ctx, email); err != nil {
		t.Fatalf("Failed to grant paid access: %v", err)
	}

	t.Run("Requesting a link shows the neutral confirmation", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/login")
		if err != nil {
			t.Fatalf("Failed to get login page: %v", err)
		}

		doc, err = client.SubmitForm(ctx, doc, "/api/auth/send-magic-link", map[string]string{
			"Email": email,
		})
		if err != nil {
			t.Fatalf("Failed to submit login form: %v", err)
		}
		if !strings.Contains(doc.Text(), "sign-in link is on its way") {
			t.Error("Expected the confirmation message after requesting a link")
		}
	})

	t.Run("Visiting the link signs the visitor in", func(t *testing.T) {
		var token string
		err = server.DB().QueryRowContext(ctx,
			"SELECT token FROM magic_links WHERE email = ?", email).Scan(&token)
		if err != nil {
			t.Fatalf("Failed to read magic link token: %v", err)
		}

		resp, err := client.Get(ctx, "/api/auth/verify-magic-link?token="+url.QueryEscape(token))
		if err != nil {
			t.Fatalf("Failed to verify magic link: %v", err)
		}
		resp.Body.Close()
		if resp.Request.URL.Path != "/" {
			t.Errorf("Expected verification to land on /, got %s", resp.Request.URL.Path)
		}

		doc, err := client.GetDoc(ctx, "/")
		if err != nil {
			t.Fatalf("Failed to get home page: %v", err)
		}
		checkButtonPresence(t, doc, "Sign out", 1)
	})

	t.Run("A used link cannot be exchanged again", func(t *testing.T) {
		var count int
		err = server.DB().QueryRowContext(ctx,
			"SELECT count(*) FROM magic_links WHERE email = ?", email).Scan(&count)
		if err != nil {
			t.Fatalf("Failed to count magic links: %v", err)
		}
		if count != 0 {
			t.Errorf("Expected the exchanged link to be deleted, found %d rows", count)
		}
	})
}

func Test_application_sendMagicLink_unpaidEmail(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	doc, err := client.GetDoc(ctx, "/login")
	if err != nil {
		t.Fatalf("Failed to get login page: %v", err)
	}
	doc, err = client.SubmitForm(ctx, doc, "/api/auth/send-magic-link", map[string]string{
		"Email": "stranger@example.com",
	})
	if err != nil {
		t.Fatalf("Failed to submit login form: %v", err)
	}

	// Same confirmation as for customers so the form does not leak which
	// emails have access.
	if !strings.Contains(doc.Text(), "sign-in link is on its way") {
		t.Error("Expected the neutral confirmation message for an unknown email")
	}

	var count int
	err = server.DB().QueryRowContext(ctx,
		"SELECT count(*) FROM magic_links WHERE email = ?", "stranger@example.com").Scan(&count)
	if err != nil {
		t.Fatalf("Failed to count magic links: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected no magic link for an unpaid email, found %d rows", count)
	}
}

func Test_application_verifyMagicLink_invalidToken(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	resp, err := client.Get(ctx, "/api/auth/verify-magic-link?token=bogus")
	if err != nil {
		t.Fatalf("Failed to verify magic link: %v", err)
	}
	defer resp.Body.Close()

	if resp.Request.URL.Path != "/login" {
		t.Errorf("Expected an invalid token to land on /login, got %s", resp.Request.URL.Path)
	}
	if got := resp.Request.URL.Query().Get("status"); got != "invalid-link" {
		t.Errorf("Expected status invalid-link, got %q", got)
	}
}

func Test_application_session(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	readSession := func(t *testing.T) map[string]any {
		t.Helper()
		resp, err := client.Get(ctx, "/api/auth/session")
		if err != nil {
			t.Fatalf("Failed to get session: %v", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", resp.StatusCode)
		}
		var payload map[string]any
		if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			t.Fatalf("Failed to decode session response: %v", err)
		}
		return payload
	}

	t.Run("Anonymous", func(t *testing.T) {
		payload := readSession(t)
		if payload["authenticated"] != false {
			t.Errorf("Expected authenticated=false, got %v", payload["authenticated"])
		}
	})

	t.Run("Signed in", func(t *testing.T) {
		if err = server.LoginAs(ctx, "surfer@example.com"); err != nil {
			t.Fatalf("Failed to log in: %v", err)
		}

		payload := readSession(t)
		if payload["authenticated"] != true {
			t.Errorf("Expected authenticated=true, got %v", payload["authenticated"])
		}
		if payload["email"] != "surfer@example.com" {
			t.Errorf("Expected the signed-in email, got %v", payload["email"])
		}
	})

	t.Run("After logout", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/")
		if err != nil {
			t.Fatalf("Failed to get home page: %v", err)
		}
		if _, err = client.SubmitForm(ctx, doc, "/api/auth/logout", nil); err != nil {
			t.Fatalf("Failed to log out: %v", err)
		}

		payload := readSession(t)
		if payload["authenticated"] != false {
			t.Errorf("Expected authenticated=false after logout, got %v", payload["authenticated"])
		}
	})
}
