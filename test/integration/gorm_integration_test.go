package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"brd-wizard-be/internal/entity"
	"brd-wizard-be/internal/repository/specification"
	"brd-wizard-be/internal/repository/unitofwork"
	"brd-wizard-be/pkg/brd"
	"brd-wizard-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

	assert.NotNil(t, uow.BrdSessionRepository())
	assert.NotNil(t, uow.FieldUpdateRepository())
	assert.NotNil(t, uow.SessionDocumentRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Session Repository", func(t *testing.T) {
		count, err := uow.BrdSessionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Session count: %d", count)
	})

	t.Run("Check Field Update Repository", func(t *testing.T) {
		count, err := uow.FieldUpdateRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("FieldUpdate count: %d", count)
	})

	t.Run("Check Session Document Repository", func(t *testing.T) {
		count, err := uow.SessionDocumentRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("SessionDocument count: %d", count)
	})
}

func TestSessionPersistenceRoundTrip(t *testing.T) {
	_ = godotenv.Load("../../.env")

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(gormDB).NewUnitOfWork(ctx)

	session := &entity.BrdSession{
		Id:        uuid.New(),
		UserId:    uuid.New(),
		Title:     "integration round trip",
		State:     entity.StateIntake,
		Fields:    brd.DefaultFields(),
		Answers:   map[string]string{},
		CreatedAt: time.Now(),
	}

	require.NoError(t, uow.BrdSessionRepository().Create(ctx, session))
	defer func() {
		_ = uow.BrdSessionRepository().Delete(ctx, session.Id)
	}()

	found, err := uow.BrdSessionRepository().FindOne(ctx,
		specification.ByID{ID: session.Id},
		specification.ByUserID{UserID: session.UserId},
	)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, session.Title, found.Title)
	assert.Equal(t, entity.StateIntake, found.State)
	assert.Len(t, found.Fields, len(brd.Fields))
	assert.False(t, found.PdfGateDone)
}
