package cmd

import (
	"context"
	"fmt"
	"os"

	"arkdata/core/config"
	"arkdata/core/database"
	"arkdata/core/logger"
	"arkdata/feature/export"
	"arkdata/feature/gamedata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the game data to the database",
	Long:  `Loads the game data tables and mirrors the linked model into the configured database.`,
	Run: func(cmd *cobra.Command, args []string) {
		runExport(cmd.Context())
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
}

func runExport(ctx context.Context) {
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

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logg.Fatal("Failed to connect to database", zap.Error(err))
	}

	src, err := newSource(cfg)
	if err != nil {
		logg.Fatal("Failed to build game data source", zap.Error(err))
	}

	gd, err := gamedata.New(ctx, src)
	if err != nil {
		logg.Fatal("Failed to load game data", zap.Error(err))
	}

	svc := export.NewService(db, logg)
	summary, err := svc.Export(ctx, gd)
	if err != nil {
		logg.Fatal("Export failed", zap.Error(err))
	}

	fmt.Println("\n--- Export ---")
	fmt.Printf("Operators: %d\n", summary.Operators)
	fmt.Printf("Skills:    %d\n", summary.Skills)
	fmt.Printf("Items:     %d\n", summary.Items)
	fmt.Println("--------------")
}
