package main

import (
	"context"
	"log"
	"os"

	"legaldash-backend/ai"
	"legaldash-backend/handlers"
	"legaldash-backend/repository"
	"legaldash-backend/service"
	"legaldash-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env from the working directory or project root.
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found, using environment variables")
		}
	}

	ctx := context.Background()

	// Open the law database and seed it on first run.
	dbPath := os.Getenv("LAW_DB_PATH")
	if dbPath == "" {
		dbPath = "laws.db"
	}
	db, err := repository.OpenDB(dbPath)
	if err != nil {
		log.Fatal("Failed to open law database: ", err)
	}
	defer db.Close()

	lawRepo := repository.NewLawRepository(db)
	suggestionRepo := repository.NewSuggestionRepository(db)

	seedPath := os.Getenv("LAW_SEED_PATH")
	if seedPath == "" {
		seedPath = "sample_laws.json"
	}
	if err := lawRepo.SeedIfEmpty(ctx, seedPath); err != nil {
		log.Fatal("Failed to seed laws: ", err)
	}

	// Initialize the upload archive.
	archive, err := storage.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to initialize upload archive: %v", err)
	}
	log.Println("Upload archive initialized")

	// Initialize the Gemini client. A missing key is allowed: AI fields
	// degrade to fixed error text and the service still serves requests.
	generator, err := initGemini(ctx)
	if err != nil {
		log.Fatal("Failed to initialize Gemini: ", err)
	}
	defer generator.Close()

	// Initialize services.
	analysisService := service.NewAnalysisService(
		service.WithGenerator(generator),
		service.WithArchive(archive),
	)

	lawService := service.NewLawService(
		service.LawWithRepository(lawRepo),
		service.LawWithSuggestionRepository(suggestionRepo),
		service.LawWithGenerator(generator),
	)

	// Initialize handlers.
	analysisHandler := handlers.NewAnalysisHandler(analysisService)
	lawHandler := handlers.NewLawHandler(lawService)

	// Setup Gin router.
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	r.GET("/", handlers.Home)
	r.POST("/analyze", analysisHandler.Analyze)
	r.POST("/laws_search", lawHandler.LawsSearch)
	r.POST("/compare_clauses", analysisHandler.CompareClauses)
	r.POST("/download_report", analysisHandler.DownloadReport)
	r.POST("/ask", analysisHandler.Ask)
	r.POST("/negotiate", analysisHandler.Negotiate)

	// Start server.
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func initGemini(ctx context.Context) (*ai.GeminiGenerator, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Println("Warning: GEMINI_API_KEY not set, AI analyses will degrade to error text")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}

	generator, err := ai.NewGemini(ctx, apiKey, model)
	if err != nil {
		return nil, err
	}

	log.Println("Gemini client initialized")
	return generator, nil
}
