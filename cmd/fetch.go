package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"bible-extractor/fetcher"
)

type fetchArgs struct {
	indexURL string
	destDir  string
}

var fArgs fetchArgs

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download a translation's chapter HTML files from a mirror",
	Long:  "Download every chapter HTML file linked from a mirror's index page into a local directory",
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(&fArgs.indexURL, "index-url", "u", "", "index page listing chapter files")
	fetchCmd.Flags().StringVarP(&fArgs.destDir, "dest-dir", "d", "./bible", "destination directory")
	RootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	if fArgs.indexURL == "" {
		return fmt.Errorf("index url is required")
	}
	count, err := fetcher.Fetch(fArgs.indexURL, fArgs.destDir)
	if err != nil {
		return fmt.Errorf("failed to fetch corpus: %v", err)
	}
	fmt.Printf("downloaded %v chapter files to %v\n", count, fArgs.destDir)
	return nil
}
