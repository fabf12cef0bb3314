package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
// sink may be nil to skip request logging.
func NewProvider(ctx context.Context, cfg Config, sink EventSink) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "groq":
		base, err = NewGroqProvider(cfg.Groq)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller -> retry -> logging -> base.
	// Logging sits inside retry so every attempt is recorded individually.
	if sink != nil {
		base = WithLogging(base, cfg.Provider, sink)
	}
	return WithRetry(base, cfg.Retry), nil
}

// ResolveConfig builds provider configuration from the environment.
// Explicit LESSONFORGE_* settings win; otherwise the standard provider
// key variables (GROQ_API_KEY, ANTHROPIC_API_KEY, ...) are probed.
func ResolveConfig() (Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return Config{}, err
		}
		cfg = discovered
	}
	return cfg, nil
}

// NewProviderFromEnv resolves configuration from the environment and
// builds the full provider stack. sink may be nil to skip request
// logging.
func NewProviderFromEnv(ctx context.Context, sink EventSink) (Provider, error) {
	cfg, err := ResolveConfig()
	if err != nil {
		return nil, err
	}
	return NewProvider(ctx, cfg, sink)
}
