package cmd

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/tmacher/homefit/internal/logger"
	"github.com/tmacher/homefit/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past analyses, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		history(cmd)
	},
}

var showCmd = &cobra.Command{
	Use:   "show <analysis-id>",
	Short: "Print one stored analysis as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		show(args[0])
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(showCmd)

	historyCmd.Flags().IntP("limit", "n", 0, "max entries to list")
}

func history(cmd *cobra.Command) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	db, err := store.Open(config.Database)
	if err != nil {
		logger.Fatal("opening the database", zap.Error(err), zap.String("path", config.Database))
	}
	defer db.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := db.ListAnalyses(limit)
	if err != nil {
		logger.Fatal("listing analyses", zap.Error(err))
	}
	if len(entries) == 0 {
		fmt.Println("No analyses yet. Run 'homefit analyze <address>' first.")
		return
	}

	for _, e := range entries {
		fmt.Printf("%s  %-9s  %s  %s\n", e.ID, e.Status, e.CreatedAt, e.Address)
	}
}

func show(id string) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	db, err := store.Open(config.Database)
	if err != nil {
		logger.Fatal("opening the database", zap.Error(err), zap.String("path", config.Database))
	}
	defer db.Close()

	analysis, err := db.LoadAnalysis(id)
	if err != nil {
		logger.Fatal("loading the analysis", zap.Error(err), zap.String("id", id))
	}
	if analysis == nil {
		logger.Fatal("analysis not found", zap.String("id", id))
	}

	pretty, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		logger.Fatal("encoding the analysis", zap.Error(err))
	}
	fmt.Println(string(pretty))
}
