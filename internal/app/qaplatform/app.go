// Package qaplatform собирает HTTP-приложение платформы: хранилище, кэш,
// брокер, файловое хранилище, платёжного провайдера, сервисы и маршруты.
package qaplatform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/qa-platform/internal/cache"
	"github.com/magabrotheeeer/qa-platform/internal/config"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/ads"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/bookmark"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/calculator"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/education"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/mentor"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/moderation"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/payment"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/question"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/report"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/subscription"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/support"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/template"
	"github.com/magabrotheeeer/qa-platform/internal/http/handlers/user"
	"github.com/magabrotheeeer/qa-platform/internal/lib/jwt"
	"github.com/magabrotheeeer/qa-platform/internal/lib/rabbitmq"
	"github.com/magabrotheeeer/qa-platform/internal/lib/sl"
	"github.com/magabrotheeeer/qa-platform/internal/lib/upload"
	"github.com/magabrotheeeer/qa-platform/internal/migrations"
	"github.com/magabrotheeeer/qa-platform/internal/paymentprovider"
	adsservice "github.com/magabrotheeeer/qa-platform/internal/services/ads"
	authservice "github.com/magabrotheeeer/qa-platform/internal/services/auth"
	bookmarkservice "github.com/magabrotheeeer/qa-platform/internal/services/bookmark"
	calculatorservice "github.com/magabrotheeeer/qa-platform/internal/services/calculator"
	educationservice "github.com/magabrotheeeer/qa-platform/internal/services/education"
	mentorservice "github.com/magabrotheeeer/qa-platform/internal/services/mentor"
	moderationservice "github.com/magabrotheeeer/qa-platform/internal/services/moderation"
	paymentservice "github.com/magabrotheeeer/qa-platform/internal/services/payment"
	questionservice "github.com/magabrotheeeer/qa-platform/internal/services/question"
	reportservice "github.com/magabrotheeeer/qa-platform/internal/services/report"
	subscriptionservice "github.com/magabrotheeeer/qa-platform/internal/services/subscription"
	supportservice "github.com/magabrotheeeer/qa-platform/internal/services/support"
	templateservice "github.com/magabrotheeeer/qa-platform/internal/services/template"
	"github.com/magabrotheeeer/qa-platform/internal/storage/repository"
)

const shutdownTimeout = 15 * time.Second

// Publisher публикует события уведомлений.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
	conn   *amqp.Connection
	ch     *amqp.Channel
}

func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		_ = db.Close()
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := &App{
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}

	publisher, err := app.setupPublisher(cfg.RabbitMQ)
	if err != nil {
		app.close()
		return nil, err
	}

	files := upload.NewStore(cfg.UploadsDir, cfg.PublicPrefix, cfg.MaxSizeMB<<20, logger)
	provider := paymentprovider.NewClient(cfg.StripeSecretKey, cfg.StripeAPIURL, cfg.ProviderTimeout)
	maker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.New(db, maker, logger)
	if err := authService.EnsureAdmin(ctx, cfg.Admin); err != nil {
		app.close()
		return nil, err
	}

	handlers := Handlers{
		User: user.New(logger, authService, user.CookieConfig{
			Name:   cfg.CookieName,
			TTL:    cfg.TokenTTL,
			Secure: cfg.Env == envProd,
		}),
		Question:     question.New(logger, questionservice.New(db, logger)),
		Moderation:   moderation.New(logger, moderationservice.New(db, publisher, logger)),
		Bookmark:     bookmark.New(logger, bookmarkservice.New(db, logger)),
		Education:    education.New(logger, educationservice.New(db, logger)),
		Report:       report.New(logger, reportservice.New(db, logger)),
		Ads:          ads.New(logger, adsservice.New(db, files, logger)),
		Mentor:       mentor.New(logger, mentorservice.New(db, files, cacheRedis, cfg.CacheTTL, logger)),
		Calculator:   calculator.New(logger, calculatorservice.New(db, files, cacheRedis, cfg.CacheTTL, logger)),
		Template:     template.New(logger, templateservice.New(db, files, cacheRedis, cfg.CacheTTL, logger)),
		Subscription: subscription.New(logger, subscriptionservice.New(db, logger)),
		Support:      support.New(logger, supportservice.New(db, publisher, logger)),
		Payment: payment.New(logger, paymentservice.New(db, provider, paymentservice.WebhookConfig{
			Secret:          cfg.WebhookSecret,
			Tolerance:       cfg.WebhookTolerance,
			DefaultCurrency: cfg.DefaultCurrency,
		}, logger)),
	}

	router := NewRouter(RouterConfig{
		Logger:         logger,
		Tokens:         maker,
		CookieName:     cfg.CookieName,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		UploadsDir:     files.BaseDir(),
		UploadsPrefix:  cfg.PublicPrefix,
		Health:         db,
	}, handlers)

	app.server = &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return app, nil
}

// setupPublisher подключается к брокеру. Без URL события не публикуются.
func (a *App) setupPublisher(cfg config.RabbitMQ) (Publisher, error) {
	if cfg.RabbitMQURL == "" {
		a.logger.Warn("rabbitmq is not configured, notification events are disabled")
		return rabbitmq.NopPublisher{}, nil
	}
	conn, err := rabbitmq.Connect(cfg.RabbitMQURL, cfg.RabbitMQMaxRetries, cfg.RabbitMQRetryDelay)
	if err != nil {
		return nil, err
	}
	ch, err := rabbitmq.SetupChannel(conn, cfg.Exchange, rabbitmq.NotificationQueues())
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("setup rabbitmq channel: %w", err)
	}
	a.conn, a.ch = conn, ch
	return rabbitmq.NewPublisher(ch, cfg.Exchange), nil
}

func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	if a.ch != nil {
		if err := a.ch.Close(); err != nil {
			a.logger.Error("failed to close rabbitmq channel", sl.Err(err))
		}
	}
	if a.conn != nil {
		if err := a.conn.Close(); err != nil {
			a.logger.Error("failed to close rabbitmq connection", sl.Err(err))
		}
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Error("failed to close redis", sl.Err(err))
	}
	if err := a.db.Close(); err != nil {
		a.logger.Error("failed to close database", sl.Err(err))
	}
}
