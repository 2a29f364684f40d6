package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"brd-wizard-be/internal/dto"
	"brd-wizard-be/internal/entity"
	"brd-wizard-be/internal/repository/unitofwork"
	"brd-wizard-be/pkg/embedding"
	"brd-wizard-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

// IConsumerService embeds uploaded session documents in the background so a
// PDF upload returns immediately while the index fills in.
type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishSessionDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing document embeddings for session: %s", payload.SessionId)

	// ChunkSize 1500 chars with 200 overlap keeps each chunk well inside
	// embedding context limits.
	chunks := utils.SplitText(payload.Text, 1500, 200)

	var newDocs []*entity.SessionDocument
	for i, chunk := range chunks {
		res, err := cs.embeddingProvider.Generate(chunk, "RETRIEVAL_DOCUMENT")
		if err != nil {
			log.Printf("[ERROR] Failed to generate embedding for chunk %d of session %s: %v", i, payload.SessionId, err)
			msg.Nack() // Nack for retriable errors
			return
		}

		newDocs = append(newDocs, &entity.SessionDocument{
			Id:             uuid.New(),
			SessionId:      payload.SessionId,
			Document:       chunk,
			EmbeddingValue: res.Embedding.Values,
			ChunkIndex:     i,
			CreatedAt:      time.Now(),
		})
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		log.Printf("[ERROR] Failed to begin transaction: %v", err)
		msg.Nack()
		return
	}
	defer uow.Rollback()

	// Re-uploads replace the whole index for the session.
	if err := uow.SessionDocumentRepository().DeleteBySessionId(ctx, payload.SessionId); err != nil {
		log.Printf("[ERROR] Failed to delete old embeddings: %v", err)
		msg.Nack()
		return
	}

	if len(newDocs) > 0 {
		if err := uow.SessionDocumentRepository().CreateBulk(ctx, newDocs); err != nil {
			log.Printf("[ERROR] Failed to create bulk embeddings: %v", err)
			msg.Nack()
			return
		}
	}

	if err := uow.Commit(); err != nil {
		log.Printf("[ERROR] Failed to commit transaction: %v", err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Session document indexed: %d chunks for session %s", len(newDocs), payload.SessionId)
	msg.Ack()
}
