package main

import (
	"os"

	"github.com/apk-analysis/dexkit-go/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Errorf("Error executing command: %v", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		logger = config.NewLogger(&config.LogConfig{Level: logLevel, Format: logFormat}, os.Stderr)
	}
}
