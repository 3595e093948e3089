package cmd

import (
	"context"
	"fmt"
	"os"

	"arkdata/core/config"
	"arkdata/core/logger"
	"arkdata/core/source"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configured game data source",
	Long:  `Probes the configured source for every required table and reports the missing ones.`,
	Run: func(cmd *cobra.Command, args []string) {
		runSourceCheck(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}

func runSourceCheck(ctx context.Context) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	src, err := newSource(cfg)
	if err != nil {
		logg.Fatal("Failed to build game data source", zap.Error(err))
	}

	missing, err := source.Check(ctx, src)
	if err != nil {
		logg.Fatal("Source check failed", zap.Error(err))
	}

	fmt.Println("\n--- Source Check ---")
	fmt.Printf("Tables:   %d\n", len(source.Tables))
	fmt.Printf("Missing:  %d\n", len(missing))
	for _, table := range missing {
		fmt.Printf("  - %s\n", table.Path())
	}
	fmt.Println("--------------------")

	if len(missing) > 0 {
		os.Exit(1)
	}
}
