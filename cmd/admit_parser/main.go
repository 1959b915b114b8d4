// Package main provides the entry point for the admissions application parser CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "admit_parser",
	Short: "Admissions application parser",
	Long:  "admit_parser converts unstructured admissions application text (resumes, Common App exports, activity lists) into structured profile field updates, highlight notes, and an extraction metrics trail.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
