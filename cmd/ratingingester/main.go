package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"go.uber.org/zap"

	gatewayhttp "github.com/mkvy/moviestore/movie/pkg/gateway/http"
	"github.com/mkvy/moviestore/movie/pkg/model"
	"github.com/mkvy/moviestore/pkg/discovery/consul"
)

func main() {
	var (
		fileName         = flag.String("file", "./cmd/ratingingester/ratingsdata.json", "JSON file with rating events")
		target           = flag.String("target", "kafka", "Where to send events (kafka|http)")
		bootstrapServers = flag.String("bootstrap-servers", "localhost:9092", "Kafka bootstrap servers")
		topic            = flag.String("topic", "ratings", "Kafka topic")
		movieAddr        = flag.String("movie-addr", "localhost:3000", "Movie service address used when no Consul address is given")
		consulAddr       = flag.String("consul", "", "Consul address used to resolve the movie service")
	)
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	logger.Info("Reading rating events", zap.String("file", *fileName))
	events, err := readRatingEvents(*fileName)
	if err != nil {
		logger.Fatal("Failed to read rating events", zap.Error(err))
	}

	switch *target {
	case "kafka":
		producer, err := kafka.NewProducer(&kafka.ConfigMap{"bootstrap.servers": *bootstrapServers})
		if err != nil {
			logger.Fatal("Failed to create kafka producer", zap.Error(err))
		}
		defer producer.Close()

		if err := produceRatingEvents(*topic, producer, events); err != nil {
			logger.Fatal("Failed to produce rating events", zap.Error(err))
		}
		timeout := 10 * time.Second
		logger.Info("Waiting until all events get produced", zap.Duration("timeout", timeout))
		if remaining := producer.Flush(int(timeout.Milliseconds())); remaining > 0 {
			logger.Warn("Some events were not delivered", zap.Int("remaining", remaining))
		}
	case "http":
		resolver, err := newResolver(*consulAddr, *movieAddr)
		if err != nil {
			logger.Fatal("Failed to create service resolver", zap.Error(err))
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		failed := postRatingEvents(ctx, gatewayhttp.New(resolver, "movie"), events, logger)
		logger.Info("Posted rating events", zap.Int("total", len(events)), zap.Int("failed", failed))
	default:
		logger.Fatal("Unknown target", zap.String("target", *target))
	}
}

func readRatingEvents(fileName string) ([]model.RatingEvent, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ratings []model.RatingEvent
	if err := json.NewDecoder(f).Decode(&ratings); err != nil {
		return nil, fmt.Errorf("decode %s: %w", fileName, err)
	}
	return ratings, nil
}

func produceRatingEvents(topic string, producer *kafka.Producer, events []model.RatingEvent) error {
	for _, event := range events {
		encodedEvent, err := json.Marshal(event)
		if err != nil {
			return err
		}

		if err := producer.Produce(&kafka.Message{
			TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
			Key:            []byte(event.MovieID),
			Value:          encodedEvent,
		}, nil); err != nil {
			return err
		}
	}
	return nil
}

type ratingPutter interface {
	PutRating(ctx context.Context, movieID string, value float64) error
}

// postRatingEvents sends every event and returns the number of failures.
func postRatingEvents(ctx context.Context, g ratingPutter, events []model.RatingEvent, logger *zap.Logger) int {
	failed := 0
	for _, event := range events {
		if err := g.PutRating(ctx, event.MovieID, event.Value); err != nil {
			failed++
			logger.Warn("Failed to post rating event", zap.String("movieId", event.MovieID), zap.Error(err))
		}
	}
	return failed
}

// staticResolver always resolves to the same addresses.
type staticResolver []string

func (s staticResolver) ServiceAddresses(context.Context, string) ([]string, error) {
	return s, nil
}

func newResolver(consulAddr, movieAddr string) (gatewayhttp.Resolver, error) {
	if consulAddr != "" {
		registry, err := consul.NewRegistry(consulAddr)
		if err != nil {
			return nil, err
		}
		return registry, nil
	}
	return staticResolver{movieAddr}, nil
}
