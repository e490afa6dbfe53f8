// Package parse handles the statement parsing command
package parse

import (
	"context"
	"strings"
	"time"

	"finledger/statement-parser/cmd/root"
	"finledger/statement-parser/internal/categorizer"
	"finledger/statement-parser/internal/config"
	"finledger/statement-parser/internal/export"
	"finledger/statement-parser/internal/pdftext"
	"finledger/statement-parser/internal/pipeline"
	"finledger/statement-parser/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a bank statement PDF",
	Long: `Parse a bank statement PDF into categorized transactions and write them
to a CSV or JSON file.`,
	Run: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	root.Log.Info("Parse command called")

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input file is required (use --input)")
	}
	if root.SharedFlags.Output == "" {
		root.Log.Fatal("Output file is required (use --output)")
	}

	cfg := config.GetGlobalConfig()

	reader := pdftext.NewReader(cfg.Parser.MaxPages, logger)
	pages, err := reader.ExtractPages(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading PDF: %v", err)
	}

	refs := store.NewReferenceStore(cfg.Reference.CategoriesFile, cfg.Reference.MerchantsFile, logger)
	merchants, err := refs.LoadMerchants()
	if err != nil {
		root.Log.Fatalf("Error loading merchant dictionary: %v", err)
	}
	categories, err := refs.LoadCategories()
	if err != nil {
		root.Log.Fatalf("Error loading category table: %v", err)
	}

	ctx := context.Background()

	var aiClient categorizer.AIClient
	if cfg.AI.Enabled {
		client, err := categorizer.NewGeminiClient(ctx, cfg.AI.APIKey, logger)
		if err != nil {
			root.Log.Warnf("AI categorization unavailable: %v", err)
		} else {
			aiClient = client
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.AI.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	cat := categorizer.New(merchants, categories, aiClient, logger)
	parser := pipeline.New(cat, logger)

	result := parser.Parse(ctx, pages)
	for _, msg := range result.Errors {
		root.Log.Warn(msg)
	}

	exporter := export.New(logger)
	if strings.EqualFold(root.SharedFlags.Format, "json") {
		err = exporter.WriteJSON(result, root.SharedFlags.Output)
	} else {
		err = exporter.WriteCSV(result.Transactions, root.SharedFlags.Output)
	}
	if err != nil {
		root.Log.Fatalf("Error writing output: %v", err)
	}

	root.Log.Infof("Parsed %d transactions from %s (%s)",
		result.TotalTransactions, root.SharedFlags.Input, result.BankName)
}
