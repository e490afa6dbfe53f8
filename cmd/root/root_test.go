package root_test

import (
	"testing"

	"finledger/statement-parser/cmd/root"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "statement-parser", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "parse bank statement PDFs")
	assert.Contains(t, root.Cmd.Long, "extracts transactions from bank statement PDFs")
	assert.NotNil(t, root.Cmd.Run)
	assert.NotNil(t, root.Cmd.PersistentPreRun)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()

	inputFlag := root.Cmd.PersistentFlags().Lookup("input")
	assert.NotNil(t, inputFlag)
	assert.Equal(t, "i", inputFlag.Shorthand)

	outputFlag := root.Cmd.PersistentFlags().Lookup("output")
	assert.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)

	formatFlag := root.Cmd.PersistentFlags().Lookup("format")
	assert.NotNil(t, formatFlag)
	assert.Equal(t, "f", formatFlag.Shorthand)
	assert.Equal(t, "csv", formatFlag.DefValue)
}

func TestGetLogrusAdapter(t *testing.T) {
	assert.NotNil(t, root.GetLogrusAdapter())
}
