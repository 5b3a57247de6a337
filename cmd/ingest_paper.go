/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/paperdesk-be/config"
)

// ingestPaperCmd runs the full ingestion pipeline over a local PDF without
// going through the HTTP server.
var ingestPaperCmd = &cobra.Command{
	Use:   "ingest-paper",
	Short: "Ingest a local PDF into the paper store",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		filePath, _ := cmd.Flags().GetString("file")
		userID, _ := cmd.Flags().GetString("user")
		if filePath == "" {
			log.Fatal("--file is required")
		}

		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()
		papers, _, err := buildPaperService(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize services: %v", err)
		}

		data, err := os.ReadFile(filePath)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", filePath, err)
		}

		paper, err := papers.Ingest(ctx, filepath.Base(filePath), data, userID)
		if err != nil {
			log.Fatalf("Failed to ingest %s: %v", filePath, err)
		}
		fmt.Printf("Ingested %q as %s (paper_id %s)\n", paper.Title, paper.ID, paper.PaperID)
	},
}

func init() {
	rootCmd.AddCommand(ingestPaperCmd)

	ingestPaperCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	ingestPaperCmd.Flags().StringP("file", "f", "", "Path to the PDF to ingest")
	ingestPaperCmd.Flags().StringP("user", "u", "", "Owner user id (defaults to the sentinel user)")
}
