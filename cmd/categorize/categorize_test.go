package categorize_test

import (
	"testing"

	"finledger/statement-parser/cmd/categorize"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "categorize", categorize.Cmd.Use)
	assert.Contains(t, categorize.Cmd.Short, "Categorize a single transaction")
	assert.NotNil(t, categorize.Cmd.Run)
}

func TestCategorizeCommand_Flags(t *testing.T) {
	descriptionFlag := categorize.Cmd.Flags().Lookup("description")
	assert.NotNil(t, descriptionFlag)
	assert.Equal(t, "d", descriptionFlag.Shorthand)

	amountFlag := categorize.Cmd.Flags().Lookup("amount")
	assert.NotNil(t, amountFlag)
	assert.Equal(t, "a", amountFlag.Shorthand)

	creditFlag := categorize.Cmd.Flags().Lookup("credit")
	assert.NotNil(t, creditFlag)
	assert.Equal(t, "c", creditFlag.Shorthand)
	assert.Equal(t, "false", creditFlag.DefValue)
}
