package gemini

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/tmacher/homefit/internal/util"
)

const (
	defaultModel = "gemini-2.5-pro"

	retryBaseDelay = 2 * time.Second
)

// Generator wraps the Google GenAI client to provide simple prompt-based
// interactions. Responses are cached in memory by prompt hash, so re-running
// an analysis of the same listing does not spend another model call.
type Generator struct {
	client     *genai.Client
	modelName  string
	maxRetries int
	logger     *zap.Logger

	cacheMu       sync.RWMutex
	responseCache map[string]string
}

// NewGenerator creates a new Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey, model string, maxRetries int, logger *zap.Logger) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		client:        client,
		modelName:     model,
		maxRetries:    maxRetries,
		logger:        logger,
		responseCache: make(map[string]string),
	}, nil
}

// GenerateContent sends the prompt to Gemini and returns the first textual
// response, consulting the local response cache first.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.client == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	hash := fmt.Sprintf("%x", sha256.Sum256([]byte(prompt)))

	g.cacheMu.RLock()
	cached, ok := g.responseCache[hash]
	g.cacheMu.RUnlock()
	if ok {
		g.logger.Debug("serving gemini response from cache", zap.String("prompt_hash", hash[:12]))
		return cached, nil
	}

	var lastErr error
	for attempt := 0; attempt <= g.maxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Debug("retrying gemini request",
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			if err := util.WaitFor(ctx, retryBaseDelay*time.Duration(attempt)); err != nil {
				return "", err
			}
		}

		output, err := g.generateContent(ctx, prompt)
		if err != nil {
			lastErr = err
			continue
		}

		g.cacheMu.Lock()
		g.responseCache[hash] = output
		g.cacheMu.Unlock()

		return output, nil
	}

	return "", fmt.Errorf("gemini request failed after %d attempt(s): %w", g.maxRetries+1, lastErr)
}

func (g *Generator) generateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}
