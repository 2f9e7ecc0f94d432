// Package main provides the entry point for the careers-check CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careers_check",
	Short: "Careers page walkthrough check",
	Long:  "careers_check walks a marketing site's careers page: it filters job listings by department and fills (never submits) the application form for every open position, producing a per-position outcome report.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
