// Package kafka contains Kafka repository implementations
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"

	"github.com/yourusername/video-downloader-bot/config"
	"github.com/yourusername/video-downloader-bot/internal/domain/bot/deps"
)

// Producer implements deps.DownloadEventProducer on top of a sarama sync
// producer. Events are best-effort observability; callers log publish
// failures and move on.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   zerolog.Logger
}

// NewProducer creates a Kafka producer for download lifecycle events.
func NewProducer(cfg *config.KafkaConfig, logger zerolog.Logger) (deps.DownloadEventProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("no Kafka brokers configured")
	}

	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Compression = sarama.CompressionSnappy

	producer, err := sarama.NewSyncProducer(cfg.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	logger.Info().Strs("brokers", cfg.Brokers).Str("topic", cfg.Topic).Msg("Kafka producer initialized successfully")

	return &Producer{
		producer: producer,
		topic:    cfg.Topic,
		logger:   logger,
	}, nil
}

// VideoResolved publishes a video resolved event
func (p *Producer) VideoResolved(ctx context.Context, userID int64, url string, formats int) error {
	return p.sendEvent(ctx, map[string]interface{}{
		"type":    "video.resolved",
		"user_id": userID,
		"url":     url,
		"formats": formats,
		"at":      time.Now().UTC().Format(time.RFC3339),
	})
}

// DownloadDelivered publishes a download delivered event
func (p *Producer) DownloadDelivered(ctx context.Context, userID int64, url, formatID string, size int64) error {
	return p.sendEvent(ctx, map[string]interface{}{
		"type":      "download.delivered",
		"user_id":   userID,
		"url":       url,
		"format_id": formatID,
		"size":      size,
		"at":        time.Now().UTC().Format(time.RFC3339),
	})
}

// DownloadFailed publishes a download failed event
func (p *Producer) DownloadFailed(ctx context.Context, userID int64, url, formatID, reason string) error {
	return p.sendEvent(ctx, map[string]interface{}{
		"type":      "download.failed",
		"user_id":   userID,
		"url":       url,
		"format_id": formatID,
		"reason":    reason,
		"at":        time.Now().UTC().Format(time.RFC3339),
	})
}

// sendEvent sends an event to the configured Kafka topic
func (p *Producer) sendEvent(_ context.Context, event interface{}) error {
	jsonData, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event to JSON: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: p.topic,
		Value: sarama.ByteEncoder(jsonData),
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		p.logger.Error().Err(err).Str("topic", p.topic).Msg("Failed to send Kafka message")
		return err
	}

	p.logger.Debug().
		Str("topic", p.topic).
		Int32("partition", partition).
		Int64("offset", offset).
		Msg("Kafka message sent")

	return nil
}

// Close closes the Kafka producer
func (p *Producer) Close() error {
	if p.producer == nil {
		return nil
	}
	if err := p.producer.Close(); err != nil {
		p.logger.Error().Err(err).Msg("Failed to close Kafka producer")
		return err
	}
	p.logger.Info().Msg("Kafka producer closed")
	return nil
}
