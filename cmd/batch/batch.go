// Package batch handles batch processing of statement files
package batch

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"finledger/statement-parser/cmd/root"
	"finledger/statement-parser/internal/categorizer"
	"finledger/statement-parser/internal/config"
	"finledger/statement-parser/internal/export"
	"finledger/statement-parser/internal/pdftext"
	"finledger/statement-parser/internal/pipeline"
	"finledger/statement-parser/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch parse statement PDFs from a directory",
	Long: `Batch parse all PDF files in an input directory and write one output file
per statement into the output directory. Each file is parsed independently, so
one unreadable statement does not stop the rest.

Example:
  statement-parser batch -i statements/ -o parsed/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	logger := root.GetLogrusAdapter()

	if inputDir == "" || outputDir == "" {
		root.Log.Fatal("Both --input and --output directories are required")
	}
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		root.Log.Fatalf("Failed to create output directory: %v", err)
	}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		root.Log.Fatalf("Failed to read input directory: %v", err)
	}

	cfg := config.GetGlobalConfig()

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
	}

	cat := categorizer.New(merchants, categories, aiClient, logger)
	parser := pipeline.New(cat, logger)
	reader := pdftext.NewReader(cfg.Parser.MaxPages, logger)
	exporter := export.New(logger)

	var processed, failed int
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}

		inputFile := filepath.Join(inputDir, entry.Name())
		pages, err := reader.ExtractPages(inputFile)
		if err != nil {
			root.Log.Warnf("Skipping %s: %v", entry.Name(), err)
			failed++
			continue
		}

		result := parser.Parse(ctx, pages)
		for _, msg := range result.Errors {
			root.Log.WithField("file", entry.Name()).Warn(msg)
		}

		base := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		var outputFile string
		if strings.EqualFold(root.SharedFlags.Format, "json") {
			outputFile = filepath.Join(outputDir, base+".json")
			err = exporter.WriteJSON(result, outputFile)
		} else {
			outputFile = filepath.Join(outputDir, base+".csv")
			err = exporter.WriteCSV(result.Transactions, outputFile)
		}
		if err != nil {
			root.Log.Warnf("Error writing output for %s: %v", entry.Name(), err)
			failed++
			continue
		}

		root.Log.Infof("Parsed %s: %d transactions (%s)", entry.Name(), result.TotalTransactions, result.BankName)
		processed++
	}

	root.Log.Infof("Batch processing completed: %d parsed, %d failed", processed, failed)
}
