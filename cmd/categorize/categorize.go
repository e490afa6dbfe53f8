// Package categorize handles one-off transaction categorization commands
package categorize

import (
	"context"

	"finledger/statement-parser/cmd/root"
	"finledger/statement-parser/internal/categorizer"
	"finledger/statement-parser/internal/config"
	"finledger/statement-parser/internal/currencyutils"
	"finledger/statement-parser/internal/store"

	"github.com/spf13/cobra"
)

// Cmd represents the categorize command
var Cmd = &cobra.Command{
	Use:   "categorize",
	Short: "Categorize a single transaction description",
	Long: `Categorize a transaction description the same way the parse pipeline
would, printing the resulting category, merchant and confidence.`,
	Run: categorizeFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description to categorize")
	Cmd.Flags().StringVarP(&root.Amount, "amount", "a", "", "Transaction amount (optional)")
	Cmd.Flags().BoolVarP(&root.IsCredit, "credit", "c", false, "Treat the transaction as a credit")
	_ = Cmd.MarkFlagRequired("description")
}

func categorizeFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()
	root.Log.Info("Categorize command called")

	config.LoadEnv()
	cfg := config.GetGlobalConfig()

	var amountMinor int64
	if root.Amount != "" {
		minor, _, err := currencyutils.ParseSignedMinorUnits(root.Amount)
		if err != nil {
			root.Log.Fatalf("Invalid amount %q: %v", root.Amount, err)
		}
		amountMinor = minor
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
	}

	cat := categorizer.New(merchants, categories, aiClient, logger)
	result := cat.Classify(ctx, categorizer.Transaction{
		Description:      root.Description,
		AmountMinorUnits: amountMinor,
		IsCredit:         root.IsCredit,
	})

	root.Log.Infof("Category: %s", result.Category)
	if result.Subcategory != "" {
		root.Log.Infof("Subcategory: %s", result.Subcategory)
	}
	if result.Merchant != "" {
		root.Log.Infof("Merchant: %s", result.Merchant)
	}
	root.Log.Infof("Confidence: %.2f", result.Confidence)
	if result.IsSubscription {
		root.Log.Info("Looks like a subscription")
	}
}
