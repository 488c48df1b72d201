package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/tmacher/homefit/internal/ai"
	"github.com/tmacher/homefit/internal/domain"
	"github.com/tmacher/homefit/internal/trust"
	"github.com/tmacher/homefit/internal/util"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Extractor asks Gemini to pull verifiable claims out of a listing and
// grade them against the record snapshot.
type Extractor struct {
	generator contentGenerator
	budget    ai.Budget
	logger    *zap.Logger
	maxLogLen int
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// NewExtractor creates an Extractor. A nil budget means unlimited calls.
func NewExtractor(generator contentGenerator, budget ai.Budget, maxLogLength int, logger *zap.Logger) *Extractor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Extractor{
		generator: generator,
		budget:    budget,
		logger:    logger,
		maxLogLen: maxLogLength,
	}
}

// Extract runs the extraction prompt and parses the structured response.
func (e *Extractor) Extract(ctx context.Context, in *ai.ListingInput) (*ai.Extraction, error) {
	if in == nil {
		return nil, fmt.Errorf("listing input is required")
	}
	if strings.TrimSpace(in.ListingText) == "" {
		return nil, fmt.Errorf("listing text is required")
	}

	if e.budget != nil {
		if err := e.budget.CheckAndReserve(); err != nil {
			return nil, fmt.Errorf("model budget: %w", err)
		}
	}

	prompt, err := buildPrompt(in)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("gemini extraction request",
		zap.String("address", in.Address),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, e.maxLogLen)),
	)

	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	if e.budget != nil {
		// The genai response does not always carry usage metadata; rune
		// counts over 4 are a workable token approximation.
		e.budget.Record(utf8.RuneCountInString(prompt)/4, utf8.RuneCountInString(raw)/4)
	}

	e.logger.Debug("gemini extraction response",
		zap.String("address", in.Address),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, e.maxLogLen)),
	)

	extraction, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	extraction.Raw = raw
	return extraction, nil
}

// buildPrompt fills the embedded template with the listing material.
func buildPrompt(in *ai.ListingInput) (string, error) {
	snapshotJSON := []byte("null")
	if in.Snapshot != nil {
		var err error
		snapshotJSON, err = json.MarshalIndent(in.Snapshot, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal snapshot payload: %w", err)
		}
	}

	marketJSON := []byte("null")
	if in.Market != nil {
		var err error
		marketJSON, err = json.MarshalIndent(in.Market, "", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal market payload: %w", err)
		}
	}

	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Listing:\n{{LISTING_TEXT}}\n\nRecords:\n{{SNAPSHOT_JSON}}\n\nJSON Response:"
	}

	prompt := strings.ReplaceAll(template, "{{ADDRESS}}", in.Address)
	prompt = strings.ReplaceAll(prompt, "{{LISTING_TEXT}}", in.ListingText)
	prompt = strings.ReplaceAll(prompt, "{{SNAPSHOT_JSON}}", string(snapshotJSON))
	prompt = strings.ReplaceAll(prompt, "{{MARKET_JSON}}", string(marketJSON))
	return prompt, nil
}

type responsePayload struct {
	TrustScore any                      `json:"trust_score"`
	TrustLabel string                   `json:"trust_label"`
	Snapshot   *domain.PropertySnapshot `json:"snapshot"`
	Claims     []claimPayload           `json:"claims"`
}

type claimPayload struct {
	Category    string            `json:"category"`
	Statement   string            `json:"statement"`
	Source      string            `json:"source"`
	Verdict     string            `json:"verdict"`
	Confidence  any               `json:"confidence"`
	Explanation string            `json:"explanation"`
	Severity    string            `json:"severity"`
	Evidence    []evidencePayload `json:"evidence"`
}

type evidencePayload struct {
	Type        string  `json:"type"`
	Source      string  `json:"source"`
	Description string  `json:"description"`
	DataPoint   *string `json:"data_point"`
}

func parseResponse(raw string) (*ai.Extraction, error) {
	cleaned := extractJSON(raw)

	var payload responsePayload
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	score := coerceFloat(payload.TrustScore)
	if math.IsNaN(score) {
		score = 0
	}
	trustScore := int(math.Round(score))
	if trustScore < 0 {
		trustScore = 0
	}
	if trustScore > 100 {
		trustScore = 100
	}

	label := strings.TrimSpace(payload.TrustLabel)
	if label == "" {
		label = trust.TrustLabel(trustScore)
	}

	claims := make([]domain.Claim, 0, len(payload.Claims))
	for _, c := range payload.Claims {
		claims = append(claims, normalizeClaim(c))
	}

	return &ai.Extraction{
		Claims:     claims,
		TrustScore: trustScore,
		TrustLabel: label,
		Inferred:   payload.Snapshot,
	}, nil
}

// normalizeClaim maps loose model output onto the closed enumerations.
// Unknown verdicts become unverified and unknown severities become info, so
// a sloppy response degrades instead of failing the analysis.
func normalizeClaim(c claimPayload) domain.Claim {
	verdict := domain.Verdict(strings.ToLower(strings.TrimSpace(c.Verdict)))
	switch verdict {
	case domain.VerdictVerified, domain.VerdictUnverified, domain.VerdictContradiction, domain.VerdictMarketing:
	default:
		verdict = domain.VerdictUnverified
	}

	severity := domain.Severity(strings.ToLower(strings.TrimSpace(c.Severity)))
	switch severity {
	case domain.SeverityInfo, domain.SeverityCaution, domain.SeverityWarning, domain.SeverityCritical:
	default:
		severity = domain.SeverityInfo
	}

	source := domain.ClaimSource(strings.ToLower(strings.TrimSpace(c.Source)))
	switch source {
	case domain.SourceListing, domain.SourcePublicRecord, domain.SourceInference:
	default:
		source = domain.SourceListing
	}

	confidence := coerceFloat(c.Confidence)
	if math.IsNaN(confidence) || confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}

	evidence := make([]domain.Evidence, 0, len(c.Evidence))
	for _, ev := range c.Evidence {
		evType := domain.EvidenceType(strings.ToLower(strings.TrimSpace(ev.Type)))
		switch evType {
		case domain.EvidenceSupports, domain.EvidenceContradicts, domain.EvidenceNeutral:
		default:
			evType = domain.EvidenceNeutral
		}
		evidence = append(evidence, domain.Evidence{
			Type:        evType,
			Source:      strings.TrimSpace(ev.Source),
			Description: strings.TrimSpace(ev.Description),
			DataPoint:   ev.DataPoint,
		})
	}

	return domain.Claim{
		Category:    domain.ClaimCategory(strings.ToLower(strings.TrimSpace(c.Category))),
		Statement:   strings.TrimSpace(c.Statement),
		Source:      source,
		Verdict:     verdict,
		Confidence:  confidence,
		Explanation: strings.TrimSpace(c.Explanation),
		Severity:    severity,
		Evidence:    evidence,
	}
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		trimmed := strings.TrimSpace(val)
		if trimmed == "" {
			return math.NaN()
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}
