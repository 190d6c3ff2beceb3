package cli

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/berth-dev/wishkiosk/internal/config"
	"github.com/berth-dev/wishkiosk/internal/format"
	"github.com/berth-dev/wishkiosk/internal/generate"
	"github.com/berth-dev/wishkiosk/internal/kiosk"
	"github.com/berth-dev/wishkiosk/internal/log"
	"github.com/berth-dev/wishkiosk/internal/sink"
	"github.com/berth-dev/wishkiosk/internal/tui"
	"github.com/berth-dev/wishkiosk/internal/tui/app"
)

// kioskParts is a fully wired kiosk ready to run.
type kioskParts struct {
	app  *app.App
	demo bool
}

// loadConfig reads --config when set, else .wishkiosk/config.yaml under dir.
func loadConfig(dir string) (*config.Config, error) {
	if configPath != "" {
		return config.Load(configPath)
	}
	cfg, err := config.ReadConfig(dir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func newFormatter(cfg *config.Config) (*format.Formatter, error) {
	c := cfg.Campaign
	return format.New(c.Locale, c.Currency, c.CurrencySymbol)
}

func newSession(cfg *config.Config) *kiosk.Session {
	return kiosk.NewSession(kiosk.DonationStats{
		TotalDonated: cfg.Campaign.StartingTotal,
		MessageCount: cfg.Campaign.StartingCount,
	}, cfg.Campaign.DonationPerWish)
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
}

// newPipeline wires the generator and the webhook sink.
func newPipeline(ctx context.Context, cfg *config.Config, f *format.Formatter, logger *slog.Logger) (*kiosk.Pipeline, *sink.Webhook, error) {
	g := generate.NewGenkit(ctx, cfg.Generator.APIKey)
	if cfg.Generator.APIKey == "" {
		logger.Warn("GEMINI_API_KEY not set; thank-you notes will use the fallback text")
	}

	gen, err := generate.New(g, generate.Options{
		Model:    cfg.Generator.Model,
		Timeout:  cfg.Generator.Timeout,
		Campaign: cfg.Campaign.Title,
		Sponsor:  cfg.Campaign.Sponsor,
		Amount:   f.Format(cfg.Campaign.DonationPerWish),
		Config:   generate.GeminiConfig(cfg.Generator.Temperature),
	}, logger.With("component", "generate"))
	if err != nil {
		return nil, nil, err
	}

	webhook := sink.NewWebhook(sink.Config{
		URL:       cfg.Sink.URL,
		Timeout:   cfg.Sink.Timeout,
		DemoDelay: cfg.Sink.DemoDelay,
	}, logger.With("component", "sink"))

	return &kiosk.Pipeline{
		Generator:  gen,
		Sink:       webhook,
		MinDisplay: cfg.Session.MinProcessing,
		Logger:     logger.With("component", "pipeline"),
	}, webhook, nil
}

// newKiosk builds the full application for an interactive run.
func newKiosk(ctx context.Context, dir string, cfg *config.Config, logger *slog.Logger) (*kioskParts, error) {
	f, err := newFormatter(cfg)
	if err != nil {
		return nil, err
	}

	pipeline, webhook, err := newPipeline(ctx, cfg, f, logger)
	if err != nil {
		return nil, err
	}

	events, err := log.NewLogger(dir)
	if err != nil {
		return nil, fmt.Errorf("opening event log: %w", err)
	}

	model := tui.NewModel(cfg, newSession(cfg), f, newRand())
	return &kioskParts{
		app: app.New(model, app.Options{
			Context:  ctx,
			Pipeline: pipeline,
			Events:   events,
			Logger:   logger,
		}),
		demo: webhook.DemoMode(),
	}, nil
}
