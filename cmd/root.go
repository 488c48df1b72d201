package cmd

import (
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "homefit"

	defaultDatabase = "homefit.db"
)

// Config is the file-backed configuration for every command.
type Config struct {
	Database string         `mapstructure:"database"`
	Profile  string         `mapstructure:"profile"`
	Records  *RecordsConfig `mapstructure:"records"`
	AI       *AIConfig      `mapstructure:"ai"`
	Claims   *ClaimsConfig  `mapstructure:"claims"`

	// ProfileDefaults lets a config file carry a buyer profile without
	// running the wizard; decoded on demand with mapstructure.
	ProfileDefaults map[string]any `mapstructure:"profile-defaults"`
}

// RecordsConfig configures the property-record provider.
type RecordsConfig struct {
	BaseURL    string `mapstructure:"base-url"`
	APIKeyFile string `mapstructure:"api-key-file"`
}

// AIConfig configures the claim extraction model.
type AIConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Gemini  *GeminiConfig `mapstructure:"gemini"`

	MaxCalls  int `mapstructure:"max-calls"`
	MaxTokens int `mapstructure:"max-tokens"`
}

// GeminiConfig configures the Gemini provider.
type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxRetries   int    `mapstructure:"max-retries"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

// ClaimsConfig configures the claim hygiene pipeline.
type ClaimsConfig struct {
	MinConfidence float64 `mapstructure:"min-confidence"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "homefit checks a real-estate listing against records and against your own requirements",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is homefit.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("database", defaultDatabase, "path to the sqlite database")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("database", rootCmd.PersistentFlags().Lookup("database"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
		viper.SetConfigType("yaml")
	}

	// A missing config file is fine; every key has a workable default.
	_ = viper.ReadInConfig()
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config == nil {
		config = &Config{}
	}
	if config.Database == "" {
		config.Database = defaultDatabase
	}
	return config, nil
}
