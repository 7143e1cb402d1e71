package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/fitellieburger/ask-better-questions/internal/cache"
	"github.com/fitellieburger/ask-better-questions/internal/config"
	"github.com/fitellieburger/ask-better-questions/internal/handler"
	"github.com/fitellieburger/ask-better-questions/internal/pipeline"
	"github.com/fitellieburger/ask-better-questions/internal/resolve"
	"github.com/fitellieburger/ask-better-questions/pkg/extract"
	"github.com/fitellieburger/ask-better-questions/pkg/llm"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	generator := newGenerator(cfg)

	var extractCache cache.ExtractCache = cache.Noop{}
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(cfg.RedisURL)
		if err != nil {
			slog.Warn("redis unavailable, extract cache disabled", "error", err)
		} else {
			defer redisCache.Close()
			extractCache = redisCache
		}
	}

	extractor := extract.NewClient(cfg.ExtractorURL, cfg.ExtractorKey)
	resolver := resolve.New(extractor, extractCache)
	analyzer := pipeline.New(resolver, generator, cfg.RequestTimeout)
	questionHandler := handler.NewQuestionHandler(analyzer)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/api/questions", questionHandler.Analyze)
	r.POST("/api/questions/sync", questionHandler.AnalyzeSync)
	r.GET("/health", questionHandler.GetHealth)

	err := r.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func newGenerator(cfg config.Config) llm.Generator {
	if cfg.Provider == "anthropic" {
		if cfg.AnthropicKey == "" {
			log.Fatal("ANTHROPIC_API_KEY is not set")
		}
		return llm.NewAnthropicClient(cfg.AnthropicKey)
	}

	if cfg.OpenAIKey == "" {
		log.Fatal("OPENAI_API_KEY is not set")
	}
	return llm.NewOpenAIClient(cfg.OpenAIKey)
}
