// Package kafka publishes finalized state summaries to a Kafka topic so
// downstream dashboards can consume the same numbers the text report shows.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/climate-summary/internal/config"
	"github.com/couchcryptid/climate-summary/internal/report"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces summary messages to the configured Kafka topic.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured summary topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSummaryTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishSummary serializes every state block of the summary and publishes
// them in a single WriteMessages call, keyed by state code.
func (w *Writer) PublishSummary(ctx context.Context, s report.Summary) error {
	if len(s.States) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(s.States))
	for i := range s.States {
		msg, err := serializeToMessage(s.States[i], s.GeneratedAt)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals one StateSummary into a Kafka message.
func serializeToMessage(s report.StateSummary, generatedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize state summary: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(s.Code),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "state_code", Value: []byte(s.Code)},
			{Key: "generated_at", Value: []byte(generatedAt.Format(time.RFC3339))},
		},
	}, nil
}
