package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/surfstrength/surfstrength/internal/e2etest"
	"github.com/surfstrength/surfstrength/internal/testhelpers"
)

func Test_application_blog(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}

	client := server.Client()

	t.Run("List is sorted newest first", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/blog")
		if err != nil {
			t.Fatalf("Failed to get blog page: %v", err)
		}

		var titles []string
		doc.Find(".post-list h2").Each(func(_ int, s *goquery.Selection) {
			titles = append(titles, strings.TrimSpace(s.Text()))
		})

		want := []string{
			"Surf Training With No Equipment at All",
			"Pop-Up Speed Is Hip Power, Not Arm Strength",
			"Why Your Paddle Fitness Fades Faster Than You Think",
		}
		if len(titles) != len(want) {
			t.Fatalf("Expected %d posts, got %d", len(want), len(titles))
		}
		for i := range want {
			if titles[i] != want[i] {
				t.Errorf("Post %d: expected %q, got %q", i, want[i], titles[i])
			}
		}
	})

	t.Run("Post renders markdown body", func(t *testing.T) {
		doc, err := client.GetDoc(ctx, "/blog/training-with-no-equipment")
		if err != nil {
			t.Fatalf("Failed to get blog post: %v", err)
		}

		title := doc.Find("h1").First().Text()
		if !strings.Contains(title, "Surf Training With No Equipment") {
			t.Errorf("Expected post title heading, got: %s", title)
		}
		// The markdown body gets converted to HTML elements.
		if doc.Find(".post-body p").Length() == 0 {
			t.Error("Expected rendered paragraphs in the post body")
		}
	})

	t.Run("Unknown slug returns 404", func(t *testing.T) {
		resp, err := client.Get(ctx, "/blog/no-such-post")
		if err != nil {
			t.Fatalf("Failed to get blog post: %v", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", resp.StatusCode)
		}
	})
}
