package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"arkdata/core/config"
	"arkdata/core/logger"
	"arkdata/feature/gamedata"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// itemCmd represents the top-level item command
var itemCmd = &cobra.Command{
	Use:   "item [id or name]",
	Short: "Look up an item",
	Long:  `Loads the game data tables and prints an item, found by id or by name.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runItemLookup(cmd.Context(), args[0])
	},
}

func init() {
	RootCmd.AddCommand(itemCmd)
}

func runItemLookup(ctx context.Context, query string) {
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

	gd, err := gamedata.New(ctx, src)
	if err != nil {
		logg.Fatal("Failed to load game data", zap.Error(err))
	}

	item := gd.Item(query)
	if item == nil {
		item = gd.FindItem(query)
	}
	if item == nil {
		logg.Fatal("No such item", zap.String("query", query))
	}

	fmt.Println("\n--- Item ---")
	fmt.Printf("ID:      %s\n", item.ID)
	fmt.Printf("Name:    %s\n", item.Name)
	fmt.Printf("Rarity:  %d\n", item.Rarity)
	fmt.Printf("Class:   %s (%s)\n", item.Class, item.Type)
	if item.Description != nil {
		fmt.Printf("Desc:    %s\n", *item.Description)
	}
	if item.Usage != nil {
		fmt.Printf("Usage:   %s\n", *item.Usage)
	}
	if len(item.Obtain) > 0 {
		fmt.Printf("Obtain:  %s\n", strings.Join(item.Obtain, ", "))
	}
	fmt.Println("------------")
}
