// Package embedding provides text-embedding providers for the recommender.
// The ranking engine depends only on the Provider contract so it can run
// against the hosted Gemini model or the deterministic offline provider.
package embedding

import "context"

// Provider maps free text to fixed-length dense vectors.
//
// Implementations must be order-preserving (one vector per input text, in
// input order) and must accept any text including the empty string: an empty
// document embeds to a valid vector, it does not fail. A provider is expected
// to be deterministic for a fixed model version.
type Provider interface {
	// Embed returns one vector per input text. It is used both for the bulk
	// job batch at catalog load and for single-element query batches.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Config holds provider selection and model settings.
type Config struct {
	Provider string // "gemini" or "hashing"
	Model    string // model name for hosted providers
}

// Provider name constants
const (
	ProviderGemini  = "gemini"
	ProviderHashing = "hashing"
)

// DefaultGeminiModel is the embedding model used when none is configured.
const DefaultGeminiModel = "text-embedding-004"

// DefaultConfig returns the default provider configuration.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultGeminiModel,
	}
}

// NewProvider creates a provider from configuration. An empty API key falls
// back to the deterministic hashing provider so the CLI and tests can run
// without network access.
func NewProvider(ctx context.Context, cfg *Config, apiKey string) (Provider, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	switch cfg.Provider {
	case ProviderHashing:
		return NewHashingProvider(DefaultHashingDimensions), nil
	case ProviderGemini:
		if apiKey == "" {
			return NewHashingProvider(DefaultHashingDimensions), nil
		}
		return NewGeminiProvider(ctx, cfg, apiKey)
	default:
		if apiKey == "" {
			return NewHashingProvider(DefaultHashingDimensions), nil
		}
		return NewGeminiProvider(ctx, cfg, apiKey)
	}
}
