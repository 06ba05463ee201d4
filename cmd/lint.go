package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bible-extractor/model"
)

type lintArgs struct {
	inputPath string
}

var lArgs lintArgs

var lintCmd = &cobra.Command{
	Use:   "lint",
	Short: "Validate an extracted verse JSON file",
	Long:  "Check every record of an extracted JSON file against the invariants the app's data layer relies on",
	RunE:  runLint,
}

func init() {
	lintCmd.Flags().StringVarP(&lArgs.inputPath, "input", "i", "", "verse JSON file to check")
	RootCmd.AddCommand(lintCmd)
}

func runLint(cmd *cobra.Command, args []string) error {
	if lArgs.inputPath == "" {
		return fmt.Errorf("input path is required")
	}
	data, err := os.ReadFile(lArgs.inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %v", err)
	}
	var records []model.VerseRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("failed to parse input: %v", err)
	}

	bad := 0
	for i, r := range records {
		if err := r.Validate(); err != nil {
			fmt.Printf("%s: record %d (%s): %v\n", lArgs.inputPath, i, r.Reference, err)
			bad++
		}
	}
	if bad > 0 {
		return fmt.Errorf("%v of %v records failed validation", bad, len(records))
	}
	fmt.Printf("%s: OK, %v records\n", lArgs.inputPath, len(records))
	return nil
}
