package events

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"voucher-ledger/internal/pkg/config"
	"voucher-ledger/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Message is one outbox row on its way to the broker.
type Message struct {
	ID        uuid.UUID
	Kind      string
	Key       string
	Payload   []byte
	CreatedAt time.Time
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) error
	Close() error
}

// NewPublisher picks Kafka when brokers are configured and falls back to the
// log otherwise.
func NewPublisher(cfg config.KafkaConfig, logger *slog.Logger) Publisher {
	brokers := make([]string, 0, len(cfg.Brokers))
	for _, b := range cfg.Brokers {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		logger.Warn("no kafka brokers configured, ledger events go to the log")
		return NewLogPublisher(logger)
	}
	return NewKafkaPublisher(brokers, cfg.TopicPrefix)
}

type KafkaPublisher struct {
	writer *kafka.Writer
	prefix string
}

func NewKafkaPublisher(brokers []string, topicPrefix string) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			RequiredAcks:           kafka.RequireAll,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
		prefix: topicPrefix,
	}
}

// Topic is "<prefix>.<kind>", e.g. "ledger.nft.minted".
func Topic(prefix, kind string) string {
	if prefix == "" {
		return kind
	}
	return prefix + "." + kind
}

func (p *KafkaPublisher) Publish(ctx context.Context, msg Message) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: Topic(p.prefix, msg.Kind),
		Key:   []byte(msg.Key),
		Value: msg.Payload,
		Time:  msg.CreatedAt.UTC(),
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(msg.ID.String())},
			{Key: "event_kind", Value: []byte(msg.Kind)},
		},
	})
	if err != nil {
		return errs.Wrapf(err, "publish %s", msg.Kind)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, msg Message) error {
	p.logger.InfoContext(ctx, "ledger event",
		"event_id", msg.ID.String(),
		"kind", msg.Kind,
		"key", msg.Key,
		"payload", string(msg.Payload),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
