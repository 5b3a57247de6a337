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
	"strings"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/paperdesk-be/config"
)

// batchIngestPaperCmd ingests every PDF in a directory. Failures are
// logged and skipped so one bad file does not abort the batch.
var batchIngestPaperCmd = &cobra.Command{
	Use:   "batch-ingest-paper",
	Short: "Ingest every PDF in a directory into the paper store",
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		directory, _ := cmd.Flags().GetString("directory")
		userID, _ := cmd.Flags().GetString("user")
		if directory == "" {
			log.Fatal("--directory is required")
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

		files, err := os.ReadDir(directory)
		if err != nil {
			log.Fatalf("Failed to read directory: %v", err)
		}
		for _, file := range files {
			if file.IsDir() || !strings.EqualFold(filepath.Ext(file.Name()), ".pdf") {
				continue
			}
			filePath := filepath.Join(directory, file.Name())
			data, err := os.ReadFile(filePath)
			if err != nil {
				log.Printf("Failed to read %s: %v", filePath, err)
				continue
			}
			paper, err := papers.Ingest(ctx, file.Name(), data, userID)
			if err != nil {
				log.Printf("Failed to ingest %s: %v", filePath, err)
				continue
			}
			fmt.Printf("Ingested %q as %s\n", paper.Title, paper.ID)
		}
	},
}

func init() {
	rootCmd.AddCommand(batchIngestPaperCmd)

	batchIngestPaperCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	batchIngestPaperCmd.Flags().String("directory", "", "Path to the directory to ingest")
	batchIngestPaperCmd.Flags().StringP("user", "u", "", "Owner user id (defaults to the sentinel user)")
}
