package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"pdf-evidence-be/internal/entity"
	"pdf-evidence-be/internal/repository/specification"
	"pdf-evidence-be/internal/repository/unitofwork"
	"pdf-evidence-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.WorkspaceRepository())
	assert.NotNil(t, uow.SelectedEvidenceRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Workspace Repository", func(t *testing.T) {
		count, err := uow.WorkspaceRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Workspace count: %d", count)
	})

	t.Run("Check Idempotent Selection", func(t *testing.T) {
		ctx := context.Background()

		workspace := &entity.Workspace{Id: uuid.New(), CreatedAt: time.Now()}
		err := uow.WorkspaceRepository().Create(ctx, workspace)
		assert.NoError(t, err)

		selected := &entity.SelectedEvidence{
			Id:       uuid.New(),
			ClientId: workspace.Id,
			Evidence: entity.Evidence{
				DocumentName: "paper.pdf",
				RawText:      "The study found a significant correlation.",
				Category:     "statistic",
				Strength:     "strong",
			},
			CreatedAt: time.Now(),
		}
		err = uow.SelectedEvidenceRepository().Create(ctx, selected)
		assert.NoError(t, err)

		// Second insert of the same identity must be absorbed.
		dup := *selected
		dup.Id = uuid.New()
		err = uow.SelectedEvidenceRepository().Create(ctx, &dup)
		assert.NoError(t, err)

		count, err := uow.SelectedEvidenceRepository().Count(ctx, specification.ByClientID{ClientID: workspace.Id})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), count)

		// Cleanup
		assert.NoError(t, uow.SelectedEvidenceRepository().DeleteAllByClientId(ctx, workspace.Id))
		assert.NoError(t, uow.WorkspaceRepository().Delete(ctx, workspace.Id))
	})

	t.Run("Check Transactional Workspace Reset", func(t *testing.T) {
		ctx := context.Background()

		workspace := &entity.Workspace{Id: uuid.New(), CreatedAt: time.Now()}
		err := uow.WorkspaceRepository().Create(ctx, workspace)
		assert.NoError(t, err)

		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		session := &entity.ChatSession{
			Id:          uuid.New(),
			ClientId:    workspace.Id,
			AssistantId: "asst_integration",
			ThreadId:    "thread_integration",
			CreatedAt:   time.Now(),
		}
		err = uow.ChatSessionRepository().Create(ctx, session)
		assert.NoError(t, err)

		err = uow.ChatMessageRepository().Create(ctx, &entity.ChatMessage{
			Id:        uuid.New(),
			SessionId: session.Id,
			Role:      "user",
			Content:   "hello",
			CreatedAt: time.Now(),
		})
		assert.NoError(t, err)

		err = uow.ChatMessageRepository().DeleteBySessionId(ctx, session.Id)
		assert.NoError(t, err)
		err = uow.ChatSessionRepository().DeleteAllByClientId(ctx, workspace.Id)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		assert.NoError(t, uow.WorkspaceRepository().Delete(ctx, workspace.Id))
		t.Log("Successfully exercised chat session lifecycle in a transaction")
	})
}
