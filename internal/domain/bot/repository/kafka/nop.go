package kafka

import "context"

// NopProducer discards all events. Used when no brokers are configured.
type NopProducer struct{}

// VideoResolved discards the event
func (NopProducer) VideoResolved(context.Context, int64, string, int) error { return nil }

// DownloadDelivered discards the event
func (NopProducer) DownloadDelivered(context.Context, int64, string, string, int64) error {
	return nil
}

// DownloadFailed discards the event
func (NopProducer) DownloadFailed(context.Context, int64, string, string, string) error { return nil }

// Close is a no-op
func (NopProducer) Close() error { return nil }
