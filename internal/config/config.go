package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Ai        AIConfig
	Retrieval RetrievalConfig
	Extract   ExtractConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	OpenAIBaseURL   string
	OpenAIAPIKey    string
	CompletionModel string
	EmbeddingModel  string
}

type RetrievalConfig struct {
	Backend          string // "qdrant" or "pgvector"
	QdrantURL        string
	QdrantAPIKey     string
	QdrantCollection string
	TopK             int
}

type ExtractConfig struct {
	FastEndpoint string
	OCREndpoint  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
			CompletionModel: getEnv("COMPLETION_MODEL", "gpt-4o"),
			EmbeddingModel:  getEnv("EMBEDDING_MODEL", "text-embedding-3-large"),
		},
		Retrieval: RetrievalConfig{
			Backend:          getEnv("RETRIEVAL_BACKEND", "qdrant"),
			QdrantURL:        getEnv("QDRANT_URL", ""),
			QdrantAPIKey:     getEnv("QDRANT_API_KEY", ""),
			QdrantCollection: getEnv("QDRANT_COLLECTION", "state_guidelines"),
			TopK:             getEnvAsInt("RAG_TOP_K", 5),
		},
		Extract: ExtractConfig{
			FastEndpoint: getEnv("EXTRACT_FAST_ENDPOINT", "http://localhost:9998/extract"),
			OCREndpoint:  getEnv("EXTRACT_OCR_ENDPOINT", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
