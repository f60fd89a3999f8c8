package bootstrap

import (
	"log"
	"time"

	"coverquote-be/internal/config"
	"coverquote-be/internal/controller"
	"coverquote-be/internal/pkg/logger"
	"coverquote-be/internal/repository/contract"
	"coverquote-be/internal/repository/memory"
	"coverquote-be/internal/repository/redisrepo"
	"coverquote-be/internal/service"
	"coverquote-be/pkg/database"
	"coverquote-be/pkg/extraction"
	"coverquote-be/pkg/flow/umbrella"
	"coverquote-be/pkg/kvcache"
	llmopenai "coverquote-be/pkg/llm/openai"
	"coverquote-be/pkg/rag/retrieval"
	"coverquote-be/pkg/vectorstore"
	"coverquote-be/pkg/vectorstore/pgstore"
	"coverquote-be/pkg/vectorstore/qdrant"

	embeddingprovider "coverquote-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

const documentExtractedTopic = "document.extracted"

type Container struct {
	// Controllers
	ChatController     controller.IChatController
	DocumentController controller.IDocumentController

	// Background services, run by main.go
	WarmupService service.IWarmupService

	// Shared infrastructure
	Logger      logger.ILogger
	RedisClient *redis.Client
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Redis (optional; memory fallbacks below)
	var redisClient *redis.Client
	if cfg.App.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Invalid REDIS_URL, falling back to in-memory stores: %v", err)
		} else {
			redisClient = redis.NewClient(opts)
		}
	}

	var sessionRepo contract.SessionRepository
	var guidelineCache kvcache.Cache
	if redisClient != nil {
		sessionRepo = redisrepo.NewSessionRepository(redisClient, 14*24*time.Hour)
		guidelineCache = kvcache.NewRedisCache(redisClient)
		log.Printf("[INFO] Using session store: REDIS")
	} else {
		sessionRepo = memory.NewSessionRepository()
		guidelineCache = kvcache.NewMemoryCache()
		log.Printf("[INFO] Using session store: MEMORY")
	}

	// 3. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	// 4. AI providers
	llmProvider := llmopenai.NewOpenAIProvider(
		cfg.Ai.OpenAIBaseURL,
		cfg.Ai.OpenAIAPIKey,
		cfg.Ai.CompletionModel,
	)
	embeddingProvider := embeddingprovider.NewOpenAIProvider(
		cfg.Ai.OpenAIBaseURL,
		cfg.Ai.OpenAIAPIKey,
		cfg.Ai.EmbeddingModel,
	)

	// 5. Guideline index
	var index vectorstore.VectorStore
	if cfg.Retrieval.Backend == "pgvector" {
		gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Fatalf("[FATAL] Unable to connect to GORM DB: %v", err)
		}
		index = pgstore.New(gormDB)
		log.Printf("[INFO] Using guideline index: PGVECTOR")
	} else {
		qdrantClient, err := qdrant.New(qdrant.Config{
			URL:            cfg.Retrieval.QdrantURL,
			APIKey:         cfg.Retrieval.QdrantAPIKey,
			CollectionName: cfg.Retrieval.QdrantCollection,
		})
		if err != nil {
			log.Fatalf("[FATAL] Unable to connect to Qdrant: %v", err)
		}
		index = qdrantClient
		log.Printf("[INFO] Using guideline index: QDRANT (%s)", cfg.Retrieval.QdrantCollection)
	}

	engine := retrieval.NewEngine(embeddingProvider, index, guidelineCache, sysLogger)
	machine := umbrella.NewMachine(llmProvider, sysLogger)

	var ocr extraction.TextExtractor
	if cfg.Extract.OCREndpoint != "" {
		ocr = extraction.NewHTTPExtractor(cfg.Extract.OCREndpoint)
	}
	extractor := extraction.NewSmartExtractor(
		extraction.NewHTTPExtractor(cfg.Extract.FastEndpoint),
		ocr,
	)

	// 6. Services
	publisherService := service.NewPublisherService(pubSub, documentExtractedTopic)
	warmupService := service.NewWarmupService(pubSub, documentExtractedTopic, engine, cfg.Retrieval.TopK, sysLogger)
	chatService := service.NewChatService(sessionRepo, engine, machine, llmProvider, cfg.Retrieval.TopK, sysLogger)
	documentService := service.NewDocumentService(sessionRepo, extractor, llmProvider, publisherService, sysLogger)

	// 7. Controllers
	chatController := controller.NewChatController(chatService)
	documentController := controller.NewDocumentController(documentService)

	return &Container{
		ChatController:     chatController,
		DocumentController: documentController,
		WarmupService:      warmupService,
		Logger:             sysLogger,
		RedisClient:        redisClient,
	}
}
