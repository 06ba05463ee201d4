package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bible-extractor/batch"
	"bible-extractor/extractor"
)

type extractArgs struct {
	sourceDir   string
	outputPath  string
	translation string
	label       string
	reportPath  string
}

var eArgs extractArgs

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract verses from a directory of chapter HTML files",
	Long:  "Extract verses from a directory of <BOOKCODE><chapter>.htm files and write them as one JSON array",
	RunE:  runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&eArgs.sourceDir, "source-dir", "s", "", "directory of chapter HTML files")
	extractCmd.Flags().StringVarP(&eArgs.outputPath, "output", "o", "", "output JSON file")
	extractCmd.Flags().StringVarP(&eArgs.translation, "translation", "t", "web", "translation profile")
	extractCmd.Flags().StringVar(&eArgs.label, "label", "", "translation label written to records (defaults to the profile's label)")
	extractCmd.Flags().StringVar(&eArgs.reportPath, "report", "", "optional run report JSON file")
	RootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if eArgs.sourceDir == "" {
		return fmt.Errorf("source dir is required")
	}
	if eArgs.outputPath == "" {
		return fmt.Errorf("output path is required")
	}
	profile, ok := extractor.ProfileByName(eArgs.translation)
	if !ok {
		return fmt.Errorf("unknown translation profile %v (have: %v)", eArgs.translation, strings.Join(extractor.ProfileNames(), ", "))
	}
	label := eArgs.label
	if label == "" {
		label = profile.Label
	}

	report, err := batch.Run(batch.Options{
		SourceDir:   eArgs.sourceDir,
		OutputPath:  eArgs.outputPath,
		Profile:     profile,
		Translation: label,
		ReportPath:  eArgs.reportPath,
	})
	if err != nil {
		return fmt.Errorf("failed to extract: %v", err)
	}

	fmt.Printf("wrote %v records from %v files to %v\n", report.Records, report.FilesLoaded, eArgs.outputPath)
	if len(report.Skipped) > 0 {
		fmt.Printf("skipped %v files:\n", len(report.Skipped))
		for _, s := range report.Skipped {
			fmt.Printf("  %v: %v\n", s.Name, s.Reason)
		}
	}
	return nil
}
