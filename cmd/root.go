package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "bible-extractor",
	Short: "Extract Bible verses from chapter HTML files into JSON",
	Long:  "Extract Bible verses from a directory of chapter HTML files and flatten them into a JSON array for the app's data layer",
}

var logLevel string

var levelMapping = map[string]zerolog.Level{
	"debug":   zerolog.DebugLevel,
	"info":    zerolog.InfoLevel,
	"warning": zerolog.WarnLevel,
	"warn":    zerolog.WarnLevel,
	"error":   zerolog.ErrorLevel,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "logging level (debug, info, warning, error)")
	RootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		lvl, ok := levelMapping[logLevel]
		if !ok {
			return fmt.Errorf("unknown log level: %v", logLevel)
		}
		zerolog.SetGlobalLevel(lvl)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
		return nil
	}
}
