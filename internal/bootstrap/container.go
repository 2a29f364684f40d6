package bootstrap

import (
	"log"

	"brd-wizard-be/internal/config"
	"brd-wizard-be/internal/controller"
	"brd-wizard-be/internal/pkg/logger"
	"brd-wizard-be/internal/repository/unitofwork"
	"brd-wizard-be/internal/service"
	"brd-wizard-be/pkg/embedding"
	"brd-wizard-be/pkg/export"
	"brd-wizard-be/pkg/llm/factory"
	"brd-wizard-be/pkg/lock"
	"brd-wizard-be/pkg/normalizer"
	"brd-wizard-be/pkg/retrieval"
	"brd-wizard-be/pkg/summarizer"

	pktNats "brd-wizard-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WizardController controller.IWizardController
	ExportController controller.IExportController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	// The normalizer, summarizer and section writer either share one LLM
	// provider or the first two run as stubs. The choice is made once at
	// startup.
	var norm normalizer.Normalizer
	var summ summarizer.Summarizer
	var sectionWriter export.SectionWriter
	if cfg.Wizard.UseLLM {
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
		norm = normalizer.NewLLMNormalizer(llmProvider)
		summ = summarizer.NewLLMSummarizer(llmProvider)
		sectionWriter = export.NewLLMSectionWriter(llmProvider)
	} else {
		log.Printf("[INFO] LLM disabled, answers pass through untouched")
		norm = normalizer.NewStubNormalizer()
		summ = summarizer.NewStubSummarizer()
	}

	// 4. Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis backs the per-session locks; without it every instance falls back
	// to process-local mutexes.
	var locks lock.Registry
	redisLocks, err := lock.NewRedisRegistry(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Using in-memory session locks", err)
		locks = lock.NewMemoryRegistry()
	} else {
		locks = redisLocks
	}

	// 5. Services
	retriever := retrieval.NewRetriever(embeddingProvider, service.NewDocumentSearcher(uowFactory))

	publisherService := service.NewPublisherService(cfg.Keys.IngestTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Keys.IngestTopic,
		uowFactory,
		embeddingProvider,
	)

	wizardService := service.NewWizardService(
		uowFactory,
		sysLogger,
		locks,
		norm,
		summ,
		retriever,
		natsPub,
		publisherService,
		cfg.Wizard.UploadDir,
		cfg.Wizard.PreviewCap,
	)
	exportService := service.NewExportService(uowFactory, sectionWriter)

	// 6. Controllers
	wizardController := controller.NewWizardController(wizardService)
	exportController := controller.NewExportController(exportService)

	return &Container{
		WizardController: wizardController,
		ExportController: exportController,
		ConsumerService:  consumerService,
	}
}
