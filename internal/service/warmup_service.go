package service

import (
	"context"
	"encoding/json"

	"coverquote-be/internal/dto"
	"coverquote-be/internal/pkg/logger"
	"coverquote-be/pkg/rag/retrieval"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IWarmupService interface {
	Consume(ctx context.Context) error
}

// warmupService listens for extracted documents and pre-warms the
// jurisdiction's baseline guideline retrieval. Chat turns embed the user's
// own message and cache under it, so the warmed entry only serves
// seed-shaped retrievals (the retrieve endpoint without query text); the
// consumer also confirms the index answers for the document's state.
type warmupService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	engine    *retrieval.Engine
	topK      int
	log       logger.ILogger
}

func NewWarmupService(
	pubSub *gochannel.GoChannel,
	topicName string,
	engine *retrieval.Engine,
	topK int,
	log logger.ILogger,
) IWarmupService {
	if topK <= 0 {
		topK = 5
	}
	return &warmupService{
		pubSub:    pubSub,
		topicName: topicName,
		engine:    engine,
		topK:      topK,
		log:       log,
	}
}

func (ws *warmupService) Consume(ctx context.Context) error {
	messages, err := ws.pubSub.Subscribe(ctx, ws.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			ws.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (ws *warmupService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.DocumentExtractedEvent
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		ws.log.Error("warmup", "failed to unmarshal message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid messages are not retryable
		return
	}

	if _, err := ws.engine.Retrieve(ctx, retrieval.Query{
		Jurisdiction: payload.Jurisdiction,
		Topic:        retrieval.TopicGeneral,
		K:            ws.topK,
	}); err != nil {
		ws.log.Warn("warmup", "cache warm-up retrieval failed", map[string]interface{}{
			"session": payload.SessionID, "state": payload.Jurisdiction, "error": err.Error(),
		})
	} else {
		ws.log.Info("warmup", "guideline cache warmed", map[string]interface{}{
			"session": payload.SessionID, "state": payload.Jurisdiction,
		})
	}

	msg.Ack()
}
