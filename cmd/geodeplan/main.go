package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"geodeplan/internal/loader"
	"geodeplan/internal/models"
	"geodeplan/internal/runner"
)

var (
	inputFile  string
	configFile string
	workers    int
	part       int
	quiet      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "geodeplan",
		Short: "Geode Blueprint Optimizer",
		Long: `A branch-and-bound solver that finds, for each robot-factory
blueprint, the maximum number of geodes openable within a time budget.`,
		Run: runSolver,
	}

	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "data/example.txt", "Path to blueprint input file")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to YAML config file")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 0, "Concurrent searches (0 = one per CPU)")
	rootCmd.Flags().IntVarP(&part, "part", "p", 0, "Run only pass 1 or 2 (0 = both)")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSolver(cmd *cobra.Command, args []string) {
	// Colors
	titleColor := color.New(color.FgCyan, color.Bold)
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	if !quiet {
		titleColor.Println("\n╭───────────────────────────╮")
		titleColor.Println("│  Geode Blueprint          │")
		titleColor.Println("│  Optimizer                │")
		titleColor.Println("╰───────────────────────────╯")
		fmt.Println()
	}

	cfg, err := models.LoadConfig(configFile)
	if err != nil {
		color.Red("Error loading config: %v", err)
		os.Exit(1)
	}
	if workers != 0 {
		cfg.Workers = workers
	}

	blueprints, err := loader.LoadBlueprints(inputFile)
	if err != nil {
		color.Red("Error loading blueprints: %v", err)
		os.Exit(1)
	}
	if len(blueprints) == 0 {
		color.Red("No blueprints found in %s", inputFile)
		os.Exit(1)
	}

	if !quiet {
		infoColor.Printf("📦 Loaded %d blueprints from %s\n\n", len(blueprints), inputFile)
	}

	r := runner.New(cfg.Workers)
	ctx := context.Background()

	if part == 0 || part == 1 {
		if !quiet {
			infoColor.Printf("⛏️  Quality pass (%d-minute budget, %d blueprints)\n", cfg.QualityBudgetMinutes, len(blueprints))
		}

		start := time.Now()
		results, err := r.Run(ctx, blueprints, cfg.QualityBudgetMinutes)
		if err != nil {
			color.Red("Search failed: %v", err)
			os.Exit(1)
		}
		elapsed := time.Since(start)

		if !quiet {
			printQualityTable(results)
		}
		successColor.Printf("✓ Quality-level sum: %d", runner.QualityLevelSum(results))
		fmt.Printf("  (elapsed: %s)\n\n", elapsed.Round(time.Millisecond))
	}

	if part == 0 || part == 2 {
		subset := runner.Subset(blueprints, cfg.SubsetMaxID)
		if len(subset) == 0 {
			color.Red("No blueprints with ID <= %d for the product pass", cfg.SubsetMaxID)
			os.Exit(1)
		}

		if !quiet {
			infoColor.Printf("⛏️  Product pass (%d-minute budget, %d blueprints)\n", cfg.ProductBudgetMinutes, len(subset))
		}

		start := time.Now()
		results, err := r.Run(ctx, subset, cfg.ProductBudgetMinutes)
		if err != nil {
			color.Red("Search failed: %v", err)
			os.Exit(1)
		}
		elapsed := time.Since(start)

		if !quiet {
			printProductTable(results)
		}
		successColor.Printf("✓ Geode product: %d", runner.GeodeProduct(results))
		fmt.Printf("  (elapsed: %s)\n", elapsed.Round(time.Millisecond))
	}
}

func printQualityTable(results []runner.Result) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Blueprint", "Geodes", "Quality", "Elapsed"}),
	)

	for _, res := range results {
		row := []string{
			fmt.Sprintf("%d", res.Blueprint.ID),
			fmt.Sprintf("%d", res.Geodes),
			fmt.Sprintf("%d", res.QualityLevel()),
			res.Elapsed.Round(time.Microsecond).String(),
		}
		_ = table.Append(row)
	}

	_ = table.Render()
}

func printProductTable(results []runner.Result) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Blueprint", "Geodes", "Elapsed"}),
	)

	for _, res := range results {
		row := []string{
			fmt.Sprintf("%d", res.Blueprint.ID),
			fmt.Sprintf("%d", res.Geodes),
			res.Elapsed.Round(time.Millisecond).String(),
		}
		_ = table.Append(row)
	}

	_ = table.Render()
}
