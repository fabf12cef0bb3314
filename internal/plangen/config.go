package plangen

// Config holds plan generation settings.
type Config struct {
	// MaxTokens is the token budget for one plan response. Multi-session
	// plans with worksheets run long.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns sensible defaults for plan generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   8192,
		Temperature: 0.7,
	}
}
