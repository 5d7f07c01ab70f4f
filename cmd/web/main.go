package main

import (
	"context"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/surfstrength/surfstrength/internal/auth"
	"github.com/surfstrength/surfstrength/internal/blog"
	"github.com/surfstrength/surfstrength/internal/email"
	"github.com/surfstrength/surfstrength/internal/envstruct"
	"github.com/surfstrength/surfstrength/internal/errors"
	"github.com/surfstrength/surfstrength/internal/logging"
	"github.com/surfstrength/surfstrength/internal/payments"
	"github.com/surfstrength/surfstrength/internal/settings"
	"github.com/surfstrength/surfstrength/internal/sqlite"
)

type application struct {
	logger          *slog.Logger
	sessionManager  *scs.SessionManager
	templateFS      fs.FS
	settings        *settings.Manager
	authService     *auth.Service
	paymentsService *payments.Service
	emailSender     email.Sender
	blog            *blog.Repository
	baseURL         string
	secureCookies   bool
}

type config struct {
	// Addr is the address to listen on. It's possible to choose the address dynamically with localhost:0.
	Addr string `env:"SURFSTRENGTH_ADDR" envDefault:"localhost:4000"`
	// BaseURL is the externally visible URL used in magic links and Stripe redirects.
	BaseURL string `env:"SURFSTRENGTH_BASE_URL" envDefault:"http://localhost:4000"`
	// SqliteURL is the URL to the SQLite database. You can use ":memory:" for an ethereal in-memory database.
	SqliteURL string `env:"SURFSTRENGTH_SQLITE_URL" envDefault:"./surfstrength.sqlite3"`
	// TemplatePath is the path to the directory containing the HTML templates.
	TemplatePath string `env:"SURFSTRENGTH_TEMPLATE_PATH" envDefault:""`
	// SecureCookies should be true everywhere except local development over plain HTTP.
	SecureCookies bool `env:"SURFSTRENGTH_SECURE_COOKIES" envDefault:"true"`
	// StripeSecretKey authenticates against the Stripe API.
	StripeSecretKey string `env:"STRIPE_SECRET_KEY" envDefault:""`
	// StripeWebhookSecret verifies webhook signatures.
	StripeWebhookSecret string `env:"STRIPE_WEBHOOK_SECRET" envDefault:""`
	// StripePriceID is the price of the program configured in the Stripe dashboard.
	StripePriceID string `env:"STRIPE_PRICE_ID" envDefault:""`
	// ResendAPIKey enables magic link delivery. Empty logs the links instead.
	ResendAPIKey string `env:"RESEND_API_KEY" envDefault:""`
	// FromEmail is the sender address for magic link emails.
	FromEmail string `env:"SURFSTRENGTH_FROM_EMAIL" envDefault:"noreply@example.com"`
}

func run(ctx context.Context, logger *slog.Logger, lookupEnv func(string) (string, bool)) error {
	var (
		cancel context.CancelFunc
		err    error
	)

	ctx, cancel = signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	var cfg config
	if err = envstruct.Populate(&cfg, lookupEnv); err != nil {
		return errors.Wrap(err, "populate config")
	}

	var htmlTemplatePath string
	if htmlTemplatePath, err = resolveAndVerifyTemplatePath(cfg.TemplatePath); err != nil {
		return errors.Wrap(err, "resolve template path")
	}

	db, err := sqlite.NewDatabase(ctx, cfg.SqliteURL, logger)
	if err != nil {
		return errors.Wrap(err, "open db", slog.String("url", cfg.SqliteURL))
	}
	logger.LogAttrs(ctx, slog.LevelInfo, "connected to db")

	sessionManager := initializeSessionManager(db, cfg.SecureCookies)

	var sender email.Sender
	if cfg.ResendAPIKey != "" {
		sender = email.NewResendSender(cfg.ResendAPIKey, cfg.FromEmail)
	} else {
		logger.LogAttrs(ctx, slog.LevelWarn, "no email API key, magic links are logged instead")
		sender = email.NewLogSender(logger)
	}

	blogRepo, err := blog.NewRepository()
	if err != nil {
		return errors.Wrap(err, "load blog posts")
	}

	app := application{
		logger:         logger,
		sessionManager: sessionManager,
		templateFS:     os.DirFS(htmlTemplatePath),
		settings:       settings.NewManager(sessionManager, logger),
		authService:    auth.NewService(db, logger),
		paymentsService: payments.NewService(db, payments.Config{
			SecretKey:     cfg.StripeSecretKey,
			WebhookSecret: cfg.StripeWebhookSecret,
			PriceID:       cfg.StripePriceID,
			BaseURL:       cfg.BaseURL,
		}, logger),
		emailSender:   sender,
		blog:          blogRepo,
		baseURL:       cfg.BaseURL,
		secureCookies: cfg.SecureCookies,
	}

	if err = app.configureAndStartServer(ctx, cfg.Addr); err != nil {
		return errors.Wrap(err, "start server")
	}
	return nil
}

func initializeSessionManager(dbs *sqlite.Database, secureCookies bool) *scs.SessionManager {
	sessionManager := scs.New()
	sessionManager.Store = sqlite3store.NewWithCleanupInterval(dbs.ReadWrite, 24*time.Hour) //nolint:mnd // day
	// Settings and progress live in this session, so it outlives a normal
	// login session by a wide margin.
	sessionManager.Lifetime = 365 * 24 * time.Hour //nolint:mnd // year
	sessionManager.Cookie.Persist = true
	sessionManager.Cookie.Secure = secureCookies
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode
	return sessionManager
}

func main() {
	ctx := context.Background()
	loggerHandler := logging.NewContextHandler(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource:   false,
		Level:       slog.LevelDebug,
		ReplaceAttr: nil,
	}))
	logger := slog.New(loggerHandler)
	if err := run(ctx, logger, os.LookupEnv); err != nil {
		logger.LogAttrs(ctx, slog.LevelError, "failure starting application", errors.SlogError(err))
		os.Exit(1)
	}
}
