/*
Copyright © 2025 tieubaoca
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/tieubaoca/paperdesk-be/config"
	"github.com/tieubaoca/paperdesk-be/database"
	"github.com/tieubaoca/paperdesk-be/handler"
	"github.com/tieubaoca/paperdesk-be/repository"
	"github.com/tieubaoca/paperdesk-be/service"
	"github.com/tieubaoca/paperdesk-be/types"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the paper ingestion and chat server",
	Long:  `Starts the HTTP server that handles paper uploads, retrieval and AI chat`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		ctx := context.Background()
		papers, aiService, err := buildPaperService(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to initialize services: %v", err)
		}
		wsService := service.NewWebSocketService(papers, aiService)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		uploadHandler := handler.NewUploadHandler(papers)
		paperHandler := handler.NewPaperHandler(papers)
		chatHandler := handler.NewChatHandler(papers)

		// Setup Gin router
		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		router.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, types.MessageResponse{Message: "paperdesk-be is running"})
		})

		apiV1 := router.Group("/api/v1")
		{
			apiV1.POST("/upload", uploadHandler.HandleUpload)
			apiV1.GET("/papers", paperHandler.HandleList)
			apiV1.GET("/papers/:id", paperHandler.HandleGet)
			apiV1.DELETE("/papers/:id", paperHandler.HandleDelete)
			apiV1.GET("/papers/:id/file", paperHandler.HandleFile)
			apiV1.POST("/papers/:id/chat", chatHandler.HandleChat)
			apiV1.GET("/ws/chat", gin.WrapF(wsService.HandleChat))
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
}

// buildPaperService wires the mongo repository, disk storage, extractors
// and the configured AI provider into a PaperService.
func buildPaperService(ctx context.Context, cfg *config.Config) (*service.PaperService, service.AIService, error) {
	aiService, err := buildAIService(cfg)
	if err != nil {
		return nil, nil, err
	}

	mongoClient, err := database.NewMongoClient(ctx, cfg.MongoURI)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	paperRepo := repository.NewPaperRepo(mongoClient.Database(cfg.MongoDatabase).Collection("papers"))

	storage, err := service.NewFileStorage(cfg.UploadDir)
	if err != nil {
		return nil, nil, err
	}

	pdfService := service.NewPDFService(cfg.MaxPages)
	metadataService := service.NewMetadataService(aiService, cfg.ExtractAttempts)

	papers := service.NewPaperService(
		paperRepo,
		storage,
		pdfService,
		metadataService,
		aiService,
		cfg.MaxPromptChars,
	)
	return papers, aiService, nil
}

func buildAIService(cfg *config.Config) (service.AIService, error) {
	switch cfg.AIProvider {
	case "gemini":
		return service.NewGeminiService(cfg.GeminiKeys(), cfg.Model)
	default:
		return service.NewOpenAIService(cfg.AIEndpoint, cfg.OpenAIAPIKey, cfg.Model), nil
	}
}
