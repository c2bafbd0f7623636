package bootstrap

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"portfolio-chat/internal/ai"
	"portfolio-chat/internal/cache"
	"portfolio-chat/internal/config"
	"portfolio-chat/internal/model"
	mysqlClient "portfolio-chat/internal/platform/mysql"
	rabbitmqClient "portfolio-chat/internal/platform/rabbitmq"
	redisClient "portfolio-chat/internal/platform/redis"
	"portfolio-chat/internal/rag"
	"portfolio-chat/internal/repository"
	"portfolio-chat/internal/worker"
)

type App struct {
	Config        *config.Config
	MySQL         *gorm.DB
	Redis         *redis.Client
	MQConn        *amqp.Connection
	MessageWorker *worker.MessagePersistWorker

	Engine     *rag.Engine
	Indexer    *rag.Indexer
	Publisher  *rabbitmqClient.MessagePublisher
	Transcript *cache.TranscriptCache

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	mysqlDB, err := mysqlClient.New(ctx, cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}
	if err := mysqlDB.AutoMigrate(
		&model.Project{},
		&model.Skill{},
		&model.Experience{},
		&model.PersonalInfo{},
		&model.Testimonial{},
		&model.FAQ{},
		&model.AdminUser{},
		&model.ContentEmbedding{},
		&model.RetrievalLog{},
		&model.ChatSession{},
		&model.ChatMessage{},
	); err != nil {
		return nil, fmt.Errorf("auto migrate tables failed: %w", err)
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}

	mqConn, err := rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
	if err != nil {
		return nil, err
	}

	messageRepo := repository.NewChatMessageRepository(mysqlDB)
	messageWorker := worker.NewMessagePersistWorker(mqConn, messageRepo, cfg.RabbitMQ.MessagePersistQueue)
	if err := messageWorker.Start(ctx); err != nil {
		return nil, fmt.Errorf("start message worker failed: %w", err)
	}

	embeddingRepo := repository.NewEmbeddingRepository(mysqlDB)
	contentRepo := repository.NewContentRepository(mysqlDB)
	retrievalLogRepo := repository.NewRetrievalLogRepository(mysqlDB)

	engine, indexer := buildPipeline(cfg, embeddingRepo, contentRepo, retrievalLogRepo)

	publisher := rabbitmqClient.NewMessagePublisher(mqConn, cfg.RabbitMQ.MessagePersistQueue)
	transcript := cache.NewTranscriptCache(
		redisCli,
		time.Duration(cfg.Redis.TranscriptTTLSeconds)*time.Second,
		time.Duration(cfg.Redis.TranscriptDirtyTTLSeconds)*time.Second,
	)

	return &App{
		Config:        cfg,
		MySQL:         mysqlDB,
		Redis:         redisCli,
		MQConn:        mqConn,
		MessageWorker: messageWorker,
		Engine:        engine,
		Indexer:       indexer,
		Publisher:     publisher,
		Transcript:    transcript,
		StartedAt:     time.Now(),
	}, nil
}

// buildPipeline assembles the answer pipeline. With an API key configured it
// runs vector retrieval against the external model; without one it falls back
// to the hash embedder, word-overlap retrieval, and templated answers.
func buildPipeline(
	cfg *config.Config,
	embeddingRepo *repository.EmbeddingRepository,
	contentRepo *repository.ContentRepository,
	retrievalLogRepo *repository.RetrievalLogRepository,
) (*rag.Engine, *rag.Indexer) {
	var (
		embedder     rag.Embedder
		searcher     rag.Searcher
		generator    rag.Generator
		galleryLimit int
	)

	if cfg.OfflineMode() {
		embedder = rag.NewHashEmbedder()
		searcher = rag.NewKeywordRetriever(embeddingRepo)
		generator = rag.NewRuleBasedGenerator(contentRepo)
		galleryLimit = cfg.RAG.FallbackGalleryLimit
	} else {
		client := ai.NewOpenAICompatibleClient()
		embedder = rag.NewOpenAIEmbedder(client, ai.EmbeddingConfig{
			BaseURL: cfg.OpenAI.BaseURL,
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.EmbeddingModel,
		})
		searcher = rag.NewRetriever(embeddingRepo, embedder, retrievalLogRepo)
		generator = rag.NewOpenAIGenerator(client, ai.ChatConfig{
			BaseURL:     cfg.OpenAI.BaseURL,
			APIKey:      cfg.OpenAI.APIKey,
			Model:       cfg.OpenAI.ChatModel,
			MaxTokens:   cfg.OpenAI.MaxTokens,
			Temperature: cfg.OpenAI.Temperature,
		})
		galleryLimit = cfg.RAG.GalleryLimit
	}

	contexts := rag.NewContextBuilder(contentRepo, cfg.RAG.ContextFloor)
	enhancer := rag.NewEnhancer(contentRepo, cfg.RAG.ReferenceFloor, galleryLimit)
	engine := rag.NewEngine(searcher, contexts, generator, enhancer, cfg.RAG.TopK)
	indexer := rag.NewIndexer(contentRepo, embeddingRepo, embedder)
	return engine, indexer
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MessageWorker != nil {
		a.MessageWorker.Close()
	}
	if a.MQConn != nil {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.MySQL != nil {
		sqlDB, err := a.MySQL.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = err
			}
		}
	}
	return closeErr
}
