// Package convert handles the statement conversion command
package convert

import (
	"fmt"
	"os"

	"suica-csv/cmd/root"
	"suica-csv/internal/converter"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a Suica statement to import CSV",
	Long: `Convert a tab-separated Suica statement file into one or more CSV files
for the personal-finance tool, splitting output at the per-file line ceiling.`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output file: %s", root.SharedFlags.Output)

	opts := converter.Options{
		Input:       root.SharedFlags.Input,
		Output:      root.SharedFlags.Output,
		ExpenseOnly: root.SharedFlags.ExpenseOnly,
		MaxLines:    root.Cfg.Output.MaxLines,
		Status:      os.Stdout,
	}
	summary, err := converter.Convert(opts)
	if err != nil {
		root.Log.Fatalf("Error converting statement: %v", err)
	}
	fmt.Printf("Converted %d records into %d file(s)\n", summary.Rows, len(summary.Files))
}
