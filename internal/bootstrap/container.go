package bootstrap

import (
	"context"
	"log"
	"time"

	"video-search-be/internal/config"
	"video-search-be/internal/controller"
	"video-search-be/internal/handler"
	"video-search-be/internal/pkg/logger"
	"video-search-be/internal/repository/memory"
	"video-search-be/internal/repository/unitofwork"
	"video-search-be/internal/service"
	"video-search-be/internal/websocket"
	"video-search-be/pkg/inference"
	"video-search-be/pkg/storage"

	pktNats "video-search-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SearchController   controller.ISearchController
	SessionController  controller.ISessionController
	PlaybackController controller.IPlaybackController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets & Streaming
	StreamHandler *handler.StreamHandler
	WebSocketHub  *websocket.Hub
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

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/stream.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// Storage Signer
	signer, err := storage.NewS3Signer(context.Background(), storage.S3SignerConfig{
		Endpoint:        cfg.Storage.Endpoint,
		Region:          cfg.Storage.Region,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		TTL:             time.Duration(cfg.Storage.SignedURLTTL) * time.Second,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize storage signer: %v", err)
	}

	// Inference Client
	predictor := inference.NewClient(cfg.Inference.Endpoint, cfg.Inference.APIKey)

	// In-Memory Playback Sessions
	playbackRepo := memory.NewPlaybackRepository()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.Topics.AnalyticsEvents, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Topics.AnalyticsEvents,
		uowFactory,
		natsPub,
		sysLogger,
	)

	emitter := service.NewBusEmitter(publisherService, sysLogger)
	compilationStore := service.NewCompilationStore(uowFactory)

	sessionService := service.NewSessionService(playbackRepo, emitter, compilationStore, uowFactory, sysLogger)
	playbackService := service.NewPlaybackService(playbackRepo)
	searchService := service.NewSearchService(uowFactory, predictor, signer, playbackRepo, sysLogger)

	// 3.5 Stream Worker
	streamService := service.NewStreamService(natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go func() {
			if err := streamService.Start(); err != nil {
				log.Printf("[WARN] Failed to start stream service: %v", err)
			}
		}()
	}

	streamHandler := handler.NewStreamHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		SearchController:   controller.NewSearchController(searchService),
		SessionController:  controller.NewSessionController(sessionService),
		PlaybackController: controller.NewPlaybackController(playbackService),

		ConsumerService: consumerService,

		StreamHandler: streamHandler,
		WebSocketHub:  wsHub,
	}
}
