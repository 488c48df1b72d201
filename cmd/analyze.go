package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tmacher/homefit/internal/ai"
	"github.com/tmacher/homefit/internal/ai/gemini"
	"github.com/tmacher/homefit/internal/claims"
	"github.com/tmacher/homefit/internal/domain"
	"github.com/tmacher/homefit/internal/fitscore"
	"github.com/tmacher/homefit/internal/logger"
	"github.com/tmacher/homefit/internal/records"
	"github.com/tmacher/homefit/internal/report"
	"github.com/tmacher/homefit/internal/secrets"
	"github.com/tmacher/homefit/internal/store"
	"github.com/tmacher/homefit/internal/trust"
)

const (
	PromptShowReport      = "Show the full report"
	PromptShowClaims      = "Show claims by verdict"
	PromptShowSuggestions = "Show suggestions and action items"
	PromptExit            = "Exit"

	unratedTrustLabel = "unrated"
)

var errExit = errors.New("exit requested")

var analyzePrompt = promptui.Select{
	Label: "What next?",
	Items: []string{PromptShowReport, PromptShowClaims, PromptShowSuggestions, PromptExit},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <address>",
	Short: "Analyze one listing: trust report plus personal fit report",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyze(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("listing-file", "l", "", "file with the listing text to audit")
	analyzeCmd.Flags().Float64P("list-price", "p", 0, "listing price, if known")
	analyzeCmd.Flags().StringP("profile", "P", "", "buyer profile name (default from config)")
	analyzeCmd.Flags().BoolP("auto-approve", "y", false, "print the report headline and exit without the prompt loop")

	viper.BindPFlag("profile", analyzeCmd.Flags().Lookup("profile"))
}

// analyze is the main command for the cli.
func analyze(cmd *cobra.Command, address string) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting homefit analysis", zap.String("version", version), zap.String("address", address))

	db, err := store.Open(config.Database)
	if err != nil {
		logger.Fatal("opening the database", zap.Error(err), zap.String("path", config.Database))
	}
	defer db.Close()

	profile, err := resolveProfile(db, config)
	if err != nil {
		logger.Fatal("loading the buyer profile", zap.Error(err))
	}
	if profile == nil {
		logger.Warn("no buyer profile found; scoring without personalization",
			zap.String("hint", "run 'homefit profile' to create one"),
		)
	}

	analysis := domain.NewAnalysis(fmt.Sprintf("a-%d", time.Now().UnixNano()), address)
	if err := analysis.Transition(domain.StatusAnalyzing); err != nil {
		logger.Fatal("starting the analysis", zap.Error(err))
	}

	rpt, err := runAnalysis(ctx, cmd, config, logger, analysis, profile)
	if err != nil {
		analysis.Error = err.Error()
		_ = analysis.Transition(domain.StatusError)
		if saveErr := db.SaveAnalysis(analysis, nil); saveErr != nil {
			logger.Warn("saving the failed analysis", zap.Error(saveErr))
		}
		logger.Fatal("analysis failed", zap.Error(err))
	}

	if err := analysis.Transition(domain.StatusComplete); err != nil {
		logger.Fatal("completing the analysis", zap.Error(err))
	}
	if err := db.SaveAnalysis(analysis, rpt); err != nil {
		logger.Warn("saving the analysis", zap.Error(err))
	}

	logger.Info("analysis complete",
		zap.String("id", analysis.ID),
		zap.Int("trust_score", rpt.Trust.Score),
		zap.Int("fit_score", rpt.Fit.Score),
		zap.String("fit_label", string(rpt.Fit.Label)),
	)

	fmt.Println(rpt.Headline())

	if cmd.Flag("auto-approve").Value.String() == "true" {
		return
	}

	for {
		_, action, err := analyzePrompt.Run()
		if err != nil {
			logger.Fatal("exiting", zap.Error(err))
		}
		if err := handleAction(action, rpt); err != nil {
			if errors.Is(err, errExit) {
				return
			}
			logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// resolveProfile loads the named buyer profile from the store, falling back
// to profile-defaults from the config file. Nil means score unpersonalized.
func resolveProfile(db *store.Store, config *Config) (*domain.BuyerProfile, error) {
	profile, err := db.LoadProfile(config.Profile)
	if err != nil {
		return nil, err
	}
	if profile != nil {
		return profile, nil
	}

	if len(config.ProfileDefaults) == 0 {
		return nil, nil
	}

	var fallback domain.BuyerProfile
	if err := mapstructure.Decode(config.ProfileDefaults, &fallback); err != nil {
		return nil, fmt.Errorf("decoding profile-defaults: %w", err)
	}
	return &fallback, nil
}

// runAnalysis executes the pipeline: records lookup, claim extraction,
// snapshot merge, claim hygiene, aggregation, scoring and rendering.
func runAnalysis(ctx context.Context, cmd *cobra.Command, config *Config, logger *zap.Logger, analysis *domain.Analysis, profile *domain.BuyerProfile) (*report.Report, error) {
	authoritative, market := fetchRecords(ctx, config, logger, analysis.Address)

	listingText, err := readListingFile(cmd)
	if err != nil {
		return nil, err
	}

	extraction, err := extractClaims(ctx, config, logger, analysis.Address, listingText, authoritative, market)
	if err != nil {
		return nil, err
	}

	var inferred *domain.PropertySnapshot
	trustScore := 50
	trustLabel := unratedTrustLabel
	var claimList []domain.Claim
	if extraction != nil {
		inferred = extraction.Inferred
		trustScore = extraction.TrustScore
		trustLabel = extraction.TrustLabel
		claimList = extraction.Claims
	}

	merged := domain.MergeSnapshots(authoritative, inferred)

	minConfidence := 0.0
	if config.Claims != nil {
		minConfidence = config.Claims.MinConfidence
	}
	claimList = claims.Default(minConfidence, logger).Run(claimList)

	summaries := trust.Summarize(claimList)

	var listPrice *float64
	if v, err := cmd.Flags().GetFloat64("list-price"); err == nil && v > 0 {
		listPrice = &v
	}

	analysis.Snapshot = merged
	analysis.Market = market
	analysis.Claims = claimList
	analysis.TrustScore = trustScore
	analysis.TrustLabel = trustLabel
	analysis.ActionItems = buildActionItems(claimList)

	result := fitscore.Compute(profile, fitscore.Input{
		Snapshot:   merged,
		Market:     market,
		TrustScore: trustScore,
		TrustLabel: trustLabel,
		ListPrice:  listPrice,
		Claims:     claimList,
	})

	price := fitscore.ResolveEffectivePrice(listPrice, merged)
	return report.Build(analysis.Address, result, summaries, trustScore, trustLabel, claimList, market, price, analysis.ActionItems), nil
}

// fetchRecords asks the record provider for the authoritative snapshot.
// Lookup failures degrade to nil: the pipeline scores whatever is known.
func fetchRecords(ctx context.Context, config *Config, logger *zap.Logger, address string) (*domain.PropertySnapshot, *domain.MarketContext) {
	if config.Records == nil || strings.TrimSpace(config.Records.BaseURL) == "" {
		logger.Debug("no record provider configured")
		return nil, nil
	}

	apiKey := ""
	if config.Records.APIKeyFile != "" {
		key, err := secrets.Load(secrets.Source{
			Name: "records api key",
			File: config.Records.APIKeyFile,
		})
		if err != nil {
			logger.Warn("skipping record lookup", zap.Error(err))
			return nil, nil
		}
		apiKey = key
	}

	client := records.New(ctx, logger, config.Records.BaseURL, apiKey)
	snapshot, market, err := client.Lookup(address)
	if err != nil {
		logger.Warn("record lookup failed; continuing without records", zap.Error(err))
		return nil, nil
	}
	return snapshot, market
}

// extractClaims runs the model extraction when it is configured. A nil
// return with nil error means extraction is disabled.
func extractClaims(ctx context.Context, config *Config, logger *zap.Logger, address, listingText string, snapshot *domain.PropertySnapshot, market *domain.MarketContext) (*ai.Extraction, error) {
	if config.AI == nil || !config.AI.Enabled {
		logger.Debug("claim extraction disabled")
		return nil, nil
	}
	if strings.TrimSpace(listingText) == "" {
		logger.Warn("no listing text provided; skipping claim extraction",
			zap.String("hint", "pass --listing-file with the listing body"),
		)
		return nil, nil
	}

	extractor, err := newExtractor(ctx, config.AI, logger)
	if err != nil {
		return nil, fmt.Errorf("building claim extractor: %w", err)
	}

	return extractor.Extract(ctx, &ai.ListingInput{
		Address:     address,
		ListingText: listingText,
		Snapshot:    snapshot,
		Market:      market,
	})
}

func newExtractor(ctx context.Context, cfg *AIConfig, logger *zap.Logger) (ai.Extractor, error) {
	if cfg.Gemini == nil {
		return nil, errors.New("gemini configuration is required when ai is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: cfg.Gemini.APIKeyFile,
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file or GEMINI_API_KEY_FILE)", err)
	}

	genLogger := logger.With(
		zap.String("provider", "gemini"),
		zap.String("model", cfg.Gemini.Model),
	)

	generator, err := gemini.NewGenerator(ctx, apiKey, cfg.Gemini.Model, cfg.Gemini.MaxRetries, genLogger)
	if err != nil {
		return nil, err
	}

	var budget ai.Budget
	if cfg.MaxCalls > 0 || cfg.MaxTokens > 0 {
		budget = ai.NewMemoryBudget(cfg.MaxCalls, cfg.MaxTokens)
	}

	return gemini.NewExtractor(generator, budget, cfg.Gemini.MaxLogLength, genLogger), nil
}

func readListingFile(cmd *cobra.Command) (string, error) {
	path, err := cmd.Flags().GetString("listing-file")
	if err != nil || path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading listing file: %w", err)
	}
	return string(data), nil
}

// buildActionItems turns the heaviest claims into follow-ups for the buyer.
func buildActionItems(claimList []domain.Claim) []domain.ActionItem {
	var items []domain.ActionItem
	for _, c := range claimList {
		switch {
		case c.Verdict == domain.VerdictContradiction:
			items = append(items, domain.ActionItem{
				Title:       "Resolve contradiction: " + c.Statement,
				Description: c.Explanation,
				Priority:    domain.PriorityHigh,
			})
		case c.Verdict == domain.VerdictUnverified && (c.Severity == domain.SeverityWarning || c.Severity == domain.SeverityCritical):
			items = append(items, domain.ActionItem{
				Title:       "Verify before offering: " + c.Statement,
				Description: c.Explanation,
				Priority:    domain.PriorityMedium,
			})
		}
	}
	return items
}

func handleAction(action string, rpt *report.Report) error {
	switch action {
	case PromptShowReport:
		pretty, err := json.MarshalIndent(rpt, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(pretty))
		return nil
	case PromptShowClaims:
		for _, summary := range rpt.Trust.Categories {
			fmt.Printf("%-22s total %d, verified %d, unverified %d, contradictions %d\n",
				summary.Category, summary.Total, summary.Verified, summary.Unverified, summary.Contradictions)
		}
		for _, claim := range rpt.Trust.TopClaims {
			fmt.Printf("[%s/%s] %s\n", claim.Verdict, claim.Severity, claim.Statement)
		}
		return nil
	case PromptShowSuggestions:
		for _, s := range rpt.Fit.Suggestions {
			fmt.Printf("(%s, %s) %s: %s\n", s.Category, s.Priority, s.Title, s.Description)
		}
		for _, item := range rpt.ActionItems {
			fmt.Printf("(action, %s) %s\n", item.Priority, item.Title)
		}
		return nil
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}
