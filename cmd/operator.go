package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"arkdata/core/config"
	"arkdata/core/logger"
	"arkdata/feature/gamedata"
	"arkdata/feature/gamedata/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// operatorCmd represents the top-level operator command
var operatorCmd = &cobra.Command{
	Use:   "operator [id or name]",
	Short: "Look up an operator",
	Long:  `Loads the game data tables and prints a linked operator, found by id or by display name.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runOperatorLookup(cmd.Context(), args[0])
	},
}

func init() {
	RootCmd.AddCommand(operatorCmd)
}

func runOperatorLookup(ctx context.Context, query string) {
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

	op := gd.Operator(query)
	if op == nil {
		op = gd.FindOperator(query)
	}
	if op == nil {
		logg.Fatal("No such operator", zap.String("query", query))
	}

	printOperator(op)
}

func printOperator(op *models.Operator) {
	fmt.Println("\n--- Operator ---")
	fmt.Printf("ID:             %s\n", op.ID)
	fmt.Printf("Name:           %s\n", op.Name)
	fmt.Printf("Display Number: %s\n", op.DisplayNumber)
	fmt.Printf("Rarity:         %d\n", op.Rarity)
	fmt.Printf("Profession:     %s (%s)\n", op.Profession, op.SubProfession)
	fmt.Printf("Position:       %s\n", op.Position)
	if op.NationID != nil {
		fmt.Printf("Nation:         %s\n", *op.NationID)
	}
	if len(op.RecruitmentTags) > 0 {
		fmt.Printf("Tags:           %s\n", strings.Join(op.RecruitmentTags, ", "))
	}
	if len(op.SkillOrder) > 0 {
		fmt.Println("Skills:")
		for _, slot := range op.SkillOrder {
			s := op.Skills[slot.SkillID]
			fmt.Printf("  - %s (E%d Lv%d)\n", s.Name, slot.Unlock.Phase, slot.Unlock.Level)
		}
	}
	if len(op.BaseSkills) > 0 {
		fmt.Println("Base Skills:")
		for _, bs := range op.BaseSkills {
			fmt.Printf("  - %s [%s] (E%d Lv%d)\n", bs.Name, bs.RoomType, bs.Unlock.Phase, bs.Unlock.Level)
		}
	}
	if len(op.Alternates) > 0 {
		fmt.Printf("Alternates:     %s\n", strings.Join(op.Alternates, ", "))
	}
	fmt.Println("----------------")
}
