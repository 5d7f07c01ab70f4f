// Package blog serves the markdown articles embedded in the binary. Posts
// carry a YAML front matter block with their metadata.
package blog

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/surfstrength/surfstrength/internal/errors"
)

//go:embed content/*.md
var content embed.FS

var ErrPostNotFound = errors.NewSentinel("post not found")

type frontMatter struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Date        string   `yaml:"date"`
	Author      string   `yaml:"author"`
	Tags        []string `yaml:"tags"`
}

// Post is one published article. Markdown holds the body without the front
// matter block.
type Post struct {
	Slug        string
	Title       string
	Description string
	Date        time.Time
	Author      string
	Tags        []string
	Markdown    string
}

type Repository struct {
	posts  []Post
	bySlug map[string]Post
}

// NewRepository parses every embedded post. A malformed post is a build
// artifact problem, so parsing errors fail startup.
func NewRepository() (*Repository, error) {
	entries, err := fs.Glob(content, "content/*.md")
	if err != nil {
		return nil, errors.Wrap(err, "glob posts")
	}

	repo := &Repository{bySlug: make(map[string]Post)}
	for _, path := range entries {
		raw, err := content.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read post")
		}
		slug := strings.TrimSuffix(strings.TrimPrefix(path, "content/"), ".md")
		post, err := parsePost(slug, string(raw))
		if err != nil {
			return nil, fmt.Errorf("parse post %s: %w", path, err)
		}
		repo.posts = append(repo.posts, post)
		repo.bySlug[slug] = post
	}

	sort.Slice(repo.posts, func(i, j int) bool {
		return repo.posts[i].Date.After(repo.posts[j].Date)
	})
	return repo, nil
}

// List returns every post, newest first.
func (r *Repository) List() []Post {
	return r.posts
}

// Get returns the post with the given slug.
func (r *Repository) Get(slug string) (Post, error) {
	post, ok := r.bySlug[slug]
	if !ok {
		return Post{}, ErrPostNotFound
	}
	return post, nil
}

func parsePost(slug, raw string) (Post, error) {
	rest, ok := strings.CutPrefix(raw, "---\n")
	if !ok {
		return Post{}, errors.New("missing front matter")
	}
	meta, body, ok := strings.Cut(rest, "\n---\n")
	if !ok {
		return Post{}, errors.New("unterminated front matter")
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return Post{}, errors.Wrap(err, "unmarshal front matter")
	}
	if fm.Title == "" {
		return Post{}, errors.New("post has no title")
	}
	date, err := time.Parse("2006-01-02", fm.Date)
	if err != nil {
		return Post{}, errors.Wrap(err, "parse date")
	}

	return Post{
		Slug:        slug,
		Title:       fm.Title,
		Description: fm.Description,
		Date:        date,
		Author:      fm.Author,
		Tags:        fm.Tags,
		Markdown:    strings.TrimSpace(body),
	}, nil
}
