package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"go.uber.org/zap"

	"github.com/mkvy/moviestore/movie/pkg/model"
)

type ratingStore interface {
	AddRating(ctx context.Context, id string, rating *float64) error
}

// Ingester consumes rating events from a Kafka topic and applies them to the movie store.
type Ingester struct {
	consumer *kafka.Consumer
	topic    string
	store    ratingStore
	logger   *zap.Logger
}

// NewIngester creates a Kafka rating event ingester.
func NewIngester(addr, groupID, topic string, store ratingStore, logger *zap.Logger) (*Ingester, error) {
	consumer, err := kafka.NewConsumer(&kafka.ConfigMap{
		"bootstrap.servers": addr,
		"group.id":          groupID,
		"auto.offset.reset": "earliest",
	})
	if err != nil {
		return nil, err
	}
	return &Ingester{consumer: consumer, topic: topic, store: store, logger: logger}, nil
}

// Run consumes events until ctx is cancelled. Events that cannot be
// decoded or applied are logged and skipped.
func (i *Ingester) Run(ctx context.Context) error {
	defer i.consumer.Close()
	if err := i.consumer.SubscribeTopics([]string{i.topic}, nil); err != nil {
		return fmt.Errorf("subscribe to %s: %w", i.topic, err)
	}

	i.logger.Info("Consuming rating events", zap.String("topic", i.topic))
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		msg, err := i.consumer.ReadMessage(time.Second)
		if err != nil {
			var kerr kafka.Error
			if errors.As(err, &kerr) && kerr.Code() == kafka.ErrTimedOut {
				continue
			}
			i.logger.Error("Failed to read rating event", zap.Error(err))
			continue
		}

		if err := i.Handle(ctx, msg.Value); err != nil {
			i.logger.Warn("Skipping rating event",
				zap.Error(err),
				zap.String("partition", msg.TopicPartition.String()),
			)
		}
	}
}

// Handle decodes a single rating event and adds its rating to the movie.
func (i *Ingester) Handle(ctx context.Context, value []byte) error {
	var event model.RatingEvent
	if err := json.Unmarshal(value, &event); err != nil {
		return fmt.Errorf("decode rating event: %w", err)
	}
	if err := i.store.AddRating(ctx, event.MovieID, &event.Value); err != nil {
		return fmt.Errorf("apply rating to movie %q: %w", event.MovieID, err)
	}
	i.logger.Debug("Applied rating event", zap.String("movieId", event.MovieID), zap.Float64("value", event.Value))
	return nil
}
