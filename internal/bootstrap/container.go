package bootstrap

import (
	"log"
	"time"

	"rag-chat-be/internal/config"
	"rag-chat-be/internal/controller"
	"rag-chat-be/internal/pkg/logger"
	"rag-chat-be/internal/repository/unitofwork"
	"rag-chat-be/internal/service"
	"rag-chat-be/pkg/embedding"
	"rag-chat-be/pkg/llm/factory"
	"rag-chat-be/pkg/pdfx"
	"rag-chat-be/pkg/rag/history"
	"rag-chat-be/pkg/rag/index"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController    controller.IAuthController
	ChatController    controller.IChatController
	UploadController  controller.IUploadController
	PersonaController controller.IPersonaController

	// Background services, run from main.go
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment)

	// 2. Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	publisherService := service.NewPublisherService(pubSub, cfg.Ai.AuditTopic)
	consumerService := service.NewConsumerService(pubSub, cfg.Ai.AuditTopic, sysLogger)

	// 3. AI providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaEmbeddingModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbeddingModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}
	embeddingProvider = embedding.NewCachedProvider(embeddingProvider, time.Hour)

	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Retrieval pipeline
	extractor := pdfx.NewExtractor()
	vectorIndex := index.New()
	historyLoader := history.NewLoader(uowFactory)

	// 5. Services
	personaService := service.NewPersonaService(cfg.Ai.SystemPrompt)
	documentService := service.NewDocumentService(
		extractor,
		embeddingProvider,
		vectorIndex,
		publisherService,
		sysLogger,
	)
	chatService := service.NewChatService(
		uowFactory,
		historyLoader,
		vectorIndex,
		embeddingProvider,
		llmProvider,
		personaService,
		publisherService,
		sysLogger,
	)
	authService := service.NewAuthService(uowFactory, cfg.Auth.JwtSecret)

	// 6. Controllers
	return &Container{
		AuthController:    controller.NewAuthController(authService),
		ChatController:    controller.NewChatController(chatService),
		UploadController:  controller.NewUploadController(documentService),
		PersonaController: controller.NewPersonaController(personaService),
		ConsumerService:   consumerService,
		Logger:            sysLogger,
	}
}
