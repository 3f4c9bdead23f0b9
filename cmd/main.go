package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"tgkit/internal/adapters/config"
	"tgkit/internal/metrics"
	"tgkit/pkg/logger"
	"tgkit/pkg/telegram"
	tgadapter "tgkit/pkg/telegram/adapters/tgbotapi"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize logger
	if err := logger.Init(cfg.App.LogLevel, cfg.App.Env); err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	log := logger.Get()
	log.Infof("Starting %s in %s mode", cfg.App.Name, cfg.App.Env)

	// Initialize metrics and route deprecation warnings through them
	metrics.Init()
	telegram.SetWarnFunc(warnSink(cfg.Warnings))

	if cfg.Metrics.Addr != "" {
		go serveMetrics(cfg.Metrics.Addr, log)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Build a message through the deprecated preview knob to show the
	// transition path end to end.
	opts, err := telegram.NewMessage(cfg.Telegram.DemoChatID, "tgkit demo message").
		NoPreview().
		Build()
	if err != nil {
		log.Fatalf("Failed to build message: %v", err)
	}
	log.Infow("Resolved message options", "link_preview_options", opts.LinkPreviewOptions)

	if cfg.Telegram.BotToken == "" {
		log.Warn("TELEGRAM_BOT_TOKEN is not set, skipping send")
		return
	}

	bot, err := tgadapter.NewBot(tgadapter.Config{
		Token:     cfg.Telegram.BotToken,
		Endpoint:  cfg.Telegram.APIEndpoint,
		Debug:     cfg.App.Debug,
		OnRequest: metrics.RecordAPICall,
	}, log)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	messageID, err := bot.Send(ctx, opts)
	if err != nil {
		log.Fatalf("Failed to send message: %v", err)
	}
	log.Infow("Message sent", "message_id", messageID)
}

// warnSink builds the process-wide warning sink: every deprecation warning is
// counted, and logged unless suppressed.
func warnSink(cfg config.WarningsConfig) telegram.WarnFunc {
	return func(message string, category telegram.WarningCategory, stackDepth int) {
		metrics.RecordDeprecationWarning(string(category))
		if cfg.Suppress {
			return
		}
		telegram.LogWarnFunc(message, category, stackDepth)
	}
}

func serveMetrics(addr string, log *logger.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	log.Infof("Serving metrics on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Errorf("Metrics server stopped: %v", err)
	}
}
