package bootstrap

import (
	"log"
	"time"

	"pdf-evidence-be/internal/config"
	"pdf-evidence-be/internal/controller"
	"pdf-evidence-be/internal/handler"
	"pdf-evidence-be/internal/pkg/logger"
	"pdf-evidence-be/internal/repository/memory"
	"pdf-evidence-be/internal/repository/unitofwork"
	"pdf-evidence-be/internal/service"
	"pdf-evidence-be/internal/websocket"
	"pdf-evidence-be/pkg/composer"
	pktNats "pdf-evidence-be/pkg/nats"
	"pdf-evidence-be/pkg/processing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	WorkspaceController controller.IWorkspaceController
	FileController      controller.IFileController
	EvidenceController  controller.IEvidenceController
	EssayController     controller.IEssayController
	EditorController    controller.IEditorController
	ChatController      controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	StatusHandler *handler.StatusHandler
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
	// NATS mirror for external consumers. The app works without it.
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Remote processing API
	processingClient := processing.NewClient(
		cfg.Processing.BaseURL,
		time.Duration(cfg.Processing.TimeoutSeconds)*time.Second,
	)

	// In-memory pipeline state
	trackerRepo := memory.NewTrackerRepository()

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/status.log")
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.StatusTopic, pubSub)
	notifierService := service.NewNotifierService(publisherService, natsPub, sysLogger)
	consumerService := service.NewConsumerService(pubSub, cfg.App.StatusTopic, wsHub)

	// Fan remote-origin status events into the hub. The app works without it.
	externalStatusService := service.NewExternalStatusService(natsSub, wsHub, wsLogger)
	if natsSub != nil {
		go externalStatusService.Start()
	}

	workspaceService := service.NewWorkspaceService(uowFactory, trackerRepo)
	fileService := service.NewFileService(
		trackerRepo,
		processingClient,
		notifierService,
		publisherService,
		cfg.Essay.DefaultAnalysisTopic,
		cfg.Processing.MaxUploadBytes,
		sysLogger,
	)
	evidenceService := service.NewEvidenceService(uowFactory, processingClient)
	essayService := service.NewEssayService(uowFactory, composer.New(processingClient), cfg.Essay.DefaultTopic, cfg.Essay.DefaultWordCount)
	editorService := service.NewEditorService(uowFactory)
	chatService := service.NewChatService(uowFactory, processingClient, sysLogger)

	// 4. Handlers & Controllers
	statusHandler := handler.NewStatusHandler(wsHub, wsLogger)

	return &Container{
		WorkspaceController: controller.NewWorkspaceController(workspaceService),
		FileController:      controller.NewFileController(fileService),
		EvidenceController:  controller.NewEvidenceController(evidenceService),
		EssayController:     controller.NewEssayController(essayService),
		EditorController:    controller.NewEditorController(editorService),
		ChatController:      controller.NewChatController(chatService),

		ConsumerService: consumerService,

		StatusHandler: statusHandler,
		WebSocketHub:  wsHub,
	}
}
