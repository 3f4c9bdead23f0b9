package tgbotapi

import (
	"context"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"

	"tgkit/pkg/errors"
	"tgkit/pkg/logger"
	"tgkit/pkg/telegram"
)

// Bot sends messages through the legacy Bot API bindings. The bindings
// predate Bot API 7.0, so resolved LinkPreviewOptions are mapped back onto
// the disable_web_page_preview wire field.
type Bot struct {
	api         *tgbotapi.BotAPI
	log         *logger.Logger
	rateLimiter *rate.Limiter
	onRequest   func(method string, err error)
}

// Config contains Telegram bot configuration
type Config struct {
	Token          string
	Endpoint       string // Bot API endpoint (default: tgbotapi.APIEndpoint)
	Debug          bool
	HTTPTimeout    time.Duration
	RateLimitBurst int // Rate limiter burst (default: 30)
	RateLimitRate  int // Rate limiter per second (default: 20)

	// OnRequest is called after every API request (e.g. to record metrics)
	OnRequest func(method string, err error)
}

// NewBot creates a new Telegram bot instance
func NewBot(cfg Config, log *logger.Logger) (*Bot, error) {
	if cfg.Token == "" {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "telegram bot token is required")
	}

	// Set defaults
	if cfg.Endpoint == "" {
		cfg.Endpoint = tgbotapi.APIEndpoint
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = 30
	}
	if cfg.RateLimitRate == 0 {
		cfg.RateLimitRate = 20
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	api, err := tgbotapi.NewBotAPIWithClient(cfg.Token, cfg.Endpoint, httpClient)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram bot")
	}

	api.Debug = cfg.Debug

	log.Infof("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:         api,
		log:         log.With("component", "telegram_bot"),
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RateLimitRate), cfg.RateLimitBurst),
		onRequest:   cfg.OnRequest,
	}, nil
}

// SendMessage sends a plain text message
func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) (int, error) {
	return b.Send(ctx, telegram.MessageOptions{ChatID: chatID, Text: text})
}

// Send sends a message with resolved options
func (b *Bot) Send(ctx context.Context, opts telegram.MessageOptions) (int, error) {
	if err := b.rateLimiter.Wait(ctx); err != nil {
		return 0, errors.Wrap(err, "rate limiter error")
	}

	msg := tgbotapi.NewMessage(opts.ChatID, opts.Text)

	if opts.ParseMode != "" {
		msg.ParseMode = opts.ParseMode
	} else {
		msg.ParseMode = "Markdown" // Default
	}

	msg.DisableWebPagePreview = legacyPreviewFlag(b.log, opts.LinkPreviewOptions)
	msg.DisableNotification = opts.DisableNotification

	if opts.ReplyToMessageID > 0 {
		msg.ReplyToMessageID = opts.ReplyToMessageID
	}

	sentMsg, err := b.api.Send(msg)
	if b.onRequest != nil {
		b.onRequest("sendMessage", err)
	}
	if err != nil {
		b.log.Errorw("Failed to send message", "chat_id", opts.ChatID, "error", err)
		return 0, errors.Wrap(err, "failed to send telegram message")
	}

	return sentMsg.MessageID, nil
}

// legacyPreviewFlag maps LinkPreviewOptions onto the pre-7.0 wire field.
// Only IsDisabled is expressible; the remaining knobs are logged and dropped.
func legacyPreviewFlag(log *logger.Logger, opts *telegram.LinkPreviewOptions) bool {
	if opts == nil {
		return false
	}
	if opts.URL != "" || opts.PreferSmallMedia || opts.PreferLargeMedia || opts.ShowAboveText {
		log.Warnw("Link preview options beyond is_disabled are not supported by the legacy API, dropping them",
			"options", *opts)
	}
	return opts.IsDisabled
}
