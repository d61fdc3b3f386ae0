package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-catalog-service/internal/pkg/broker"
	"github.com/fekuna/omnipos-catalog-service/internal/pkg/logger"
	"github.com/fekuna/omnipos-catalog-service/internal/pricing"
	"github.com/fekuna/omnipos-catalog-service/internal/pricing/dto"
	"go.uber.org/zap"
)

const EventChannelPriceSet = "ChannelPriceSet"

type PriceListener struct {
	consumer broker.MessageReader
	uc       pricing.UseCase
	logger   logger.ZapLogger
	backoff  time.Duration
}

func NewPriceListener(consumer broker.MessageReader, uc pricing.UseCase, logger logger.ZapLogger) *PriceListener {
	return &PriceListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
		backoff:  time.Second,
	}
}

func (l *PriceListener) Start(ctx context.Context) {
	l.logger.Info("Starting price Kafka listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping price Kafka listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.backoff):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type ChannelPriceSetEvent struct {
	EventID   string              `json:"event_id"`
	EventType string              `json:"event_type"`
	Payload   ChannelPricePayload `json:"payload"`
	Timestamp time.Time           `json:"timestamp"`
}

type ChannelPricePayload struct {
	VariantID     string  `json:"variant_id"`
	ChannelID     string  `json:"channel_id"`
	Price         int64   `json:"price"`
	TaxCategoryID *string `json:"tax_category_id"`
	UserID        string  `json:"user_id"`
}

func (l *PriceListener) processMessage(ctx context.Context, value []byte) {
	var event ChannelPriceSetEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	if event.EventType != EventChannelPriceSet {
		return
	}

	l.logger.Info("Processing ChannelPriceSet event",
		zap.String("event_id", event.EventID),
		zap.String("variant_id", event.Payload.VariantID),
	)

	_, err := l.uc.SetChannelPrice(ctx, &dto.SetChannelPriceInput{
		VariantID:     event.Payload.VariantID,
		ChannelID:     event.Payload.ChannelID,
		Price:         event.Payload.Price,
		TaxCategoryID: event.Payload.TaxCategoryID,
		Notes:         "price event",
		ReferenceID:   event.EventID,
		ReferenceType: "event",
		UserID:        event.Payload.UserID,
	})
	if err != nil {
		l.logger.Error("Failed to set channel price from event",
			zap.String("event_id", event.EventID),
			zap.String("variant_id", event.Payload.VariantID),
			zap.Error(err),
		)
	}
}
