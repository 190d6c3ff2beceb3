// Package generate produces the personalized thank-you note shown after a
// wish is submitted, using Gemini through Firebase Genkit.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"text/template"
	"time"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	"google.golang.org/genai"

	"github.com/berth-dev/wishkiosk/prompts"
)

// Fallback notes used when the model cannot help.
const (
	FallbackEmpty = "Thank you for your warm wish. Your kindness has contributed Rs. 1,000 to the relief fund."
	FallbackError = "Thank you for your heartfelt message. Together, we are making a difference this Christmas."
)

// Defaults for Options.
const (
	DefaultModel       = "googleai/gemini-2.5-flash"
	DefaultTemperature = 0.7
	DefaultTimeout     = 20 * time.Second
)

// Options configures a Generator.
type Options struct {
	Model    string
	Timeout  time.Duration
	Campaign string
	Sponsor  string
	// Amount is the formatted per-wish donation quoted in the prompt.
	Amount string
	// Config is passed through to the model as generation config.
	Config any
}

// promptData feeds the thank-you template.
type promptData struct {
	Campaign string
	Sponsor  string
	Amount   string
	Wish     string
}

// Generator turns a wish into a short thank-you note. It makes a single
// attempt per wish and never returns an error to its caller.
type Generator struct {
	g      *genkit.Genkit
	opts   Options
	tmpl   *template.Template
	logger *slog.Logger
}

// NewGenkit initializes Genkit with the Google AI plugin. Without an API
// key no plugin is registered and every generation falls back.
func NewGenkit(ctx context.Context, apiKey string) *genkit.Genkit {
	if apiKey == "" {
		return genkit.Init(ctx)
	}
	return genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{APIKey: apiKey}))
}

// GeminiConfig returns the generation config for a quick kiosk reply:
// the given temperature and no thinking budget.
func GeminiConfig(temperature float32) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature),
		ThinkingConfig: &genai.ThinkingConfig{
			ThinkingBudget: genai.Ptr[int32](0),
		},
	}
}

// New creates a Generator. g may be nil, in which case Generate always
// returns FallbackError.
func New(g *genkit.Genkit, opts Options, logger *slog.Logger) (*Generator, error) {
	tmpl, err := template.New("thankyou").Parse(prompts.ThankYouTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing thank-you template: %w", err)
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{g: g, opts: opts, tmpl: tmpl, logger: logger}, nil
}

// Prompt renders the instruction sent to the model for wish.
func (gen *Generator) Prompt(wish string) (string, error) {
	var b strings.Builder
	err := gen.tmpl.Execute(&b, promptData{
		Campaign: gen.opts.Campaign,
		Sponsor:  gen.opts.Sponsor,
		Amount:   gen.opts.Amount,
		Wish:     wish,
	})
	if err != nil {
		return "", fmt.Errorf("rendering thank-you prompt: %w", err)
	}
	return b.String(), nil
}

// Generate returns the model's note for wish, or a fallback note.
func (gen *Generator) Generate(ctx context.Context, wish string) string {
	text, err := gen.generate(ctx, wish)
	if err == nil {
		return text
	}

	var gerr *GenerateError
	if errors.As(err, &gerr) && gerr.Kind == KindEmpty {
		gen.logger.Warn("model returned no text", "model", gen.opts.Model)
		return FallbackEmpty
	}
	gen.logger.Error("generating thank-you message", "model", gen.opts.Model, "error", err)
	return FallbackError
}

func (gen *Generator) generate(ctx context.Context, wish string) (string, error) {
	if gen.g == nil {
		return "", &GenerateError{Kind: KindConfig, Err: errors.New("genkit not initialized")}
	}

	prompt, err := gen.Prompt(wish)
	if err != nil {
		return "", &GenerateError{Kind: KindConfig, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, gen.opts.Timeout)
	defer cancel()

	opts := []ai.GenerateOption{
		ai.WithModelName(gen.opts.Model),
		ai.WithMessages(ai.NewUserTextMessage(prompt)),
	}
	if gen.opts.Config != nil {
		opts = append(opts, ai.WithConfig(gen.opts.Config))
	}

	start := time.Now()
	resp, err := genkit.Generate(ctx, gen.g, opts...)
	if err != nil {
		return "", &GenerateError{Kind: KindRequest, Err: err}
	}
	gen.logger.Debug("thank-you generated", "model", gen.opts.Model, "duration", time.Since(start))

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", &GenerateError{Kind: KindEmpty}
	}
	return text, nil
}
