package kafka

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockProducer(t *testing.T) (*Producer, *mocks.SyncProducer) {
	t.Helper()

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	mock := mocks.NewSyncProducer(t, cfg)

	return &Producer{
		producer: mock,
		topic:    "download-events",
		logger:   zerolog.Nop(),
	}, mock
}

func TestProducer_DownloadDelivered(t *testing.T) {
	producer, mock := mockProducer(t)

	mock.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		raw, err := msg.Value.Encode()
		require.NoError(t, err)

		var event map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &event))
		assert.Equal(t, "download.delivered", event["type"])
		assert.Equal(t, "137", event["format_id"])
		return nil
	})

	err := producer.DownloadDelivered(context.Background(), 42, "https://youtube.com/watch?v=abc", "137", 52428800)

	assert.NoError(t, err)
	assert.NoError(t, mock.Close())
}

func TestProducer_SendFailurePropagates(t *testing.T) {
	producer, mock := mockProducer(t)

	mock.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	err := producer.VideoResolved(context.Background(), 42, "https://youtube.com/watch?v=abc", 5)

	assert.Error(t, err)
	assert.NoError(t, mock.Close())
}

func TestNopProducer(t *testing.T) {
	var p NopProducer

	assert.NoError(t, p.VideoResolved(context.Background(), 1, "url", 1))
	assert.NoError(t, p.DownloadDelivered(context.Background(), 1, "url", "137", 1))
	assert.NoError(t, p.DownloadFailed(context.Background(), 1, "url", "137", "reason"))
	assert.NoError(t, p.Close())
}
