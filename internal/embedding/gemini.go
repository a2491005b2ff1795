package embedding

import (
	"context"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"
)

const (
	// geminiBatchSize is the maximum number of texts sent per API call.
	geminiBatchSize = 100
	// geminiMaxInflight bounds concurrent batch calls during catalog load.
	geminiMaxInflight = 4
)

// GeminiProvider implements Provider using the Gemini embedding API.
type GeminiProvider struct {
	client *genai.Client
	model  string
}

// NewGeminiProvider creates a Gemini-backed embedding provider.
func NewGeminiProvider(ctx context.Context, cfg *Config, apiKey string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := cfg.Model
	if model == "" {
		model = DefaultGeminiModel
	}

	return &GeminiProvider{client: client, model: model}, nil
}

// Embed embeds all texts, chunking large inputs into batch API calls.
// Chunks run concurrently with bounded parallelism; results keep input order.
func (p *GeminiProvider) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	vectors := make([][]float32, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(geminiMaxInflight)

	for start := 0; start < len(texts); start += geminiBatchSize {
		end := min(start+geminiBatchSize, len(texts))
		g.Go(func() error {
			chunk, err := p.embedBatch(gctx, texts[start:end])
			if err != nil {
				return err
			}
			copy(vectors[start:end], chunk)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return vectors, nil
}

// embedBatch sends one batch request and returns one vector per text.
func (p *GeminiProvider) embedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	em := p.client.EmbeddingModel(p.model)

	batch := em.NewBatch()
	for _, text := range texts {
		batch = batch.AddContent(genai.Text(text))
	}

	resp, err := em.BatchEmbedContents(ctx, batch)
	if err != nil {
		return nil, fmt.Errorf("failed to embed batch: %w", err)
	}
	if len(resp.Embeddings) != len(texts) {
		return nil, fmt.Errorf("embedding count mismatch: got %d, want %d", len(resp.Embeddings), len(texts))
	}

	vectors := make([][]float32, len(texts))
	for i, emb := range resp.Embeddings {
		if emb == nil || len(emb.Values) == 0 {
			return nil, fmt.Errorf("empty embedding at index %d", i)
		}
		vectors[i] = emb.Values
	}
	return vectors, nil
}

// Close releases the underlying API client.
func (p *GeminiProvider) Close() error {
	if p.client != nil {
		return p.client.Close()
	}
	return nil
}
