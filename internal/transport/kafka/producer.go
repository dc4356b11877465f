package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"moving-estimate-service/internal/domain"
	"moving-estimate-service/internal/logx"
)

// swapped in tests
var newSyncProducer = sarama.NewSyncProducer

// Producer publishes order-accepted events.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
	now      func() time.Time
}

// NewProducer creates a Kafka producer. Returns nil without error when
// brokers or topic are not configured, which disables publishing.
func NewProducer(logger logx.Logger, brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true

	producer, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &Producer{
		producer: producer,
		topic:    topic,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

// PublishAccepted sends one order-accepted event, keyed by customer id.
func (p *Producer) PublishAccepted(_ context.Context, result domain.RegisterResult) error {
	dto := FromDomain(result, p.now())

	payload, err := json.Marshal(dto)
	if err != nil {
		return fmt.Errorf("marshal accepted event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(result.CustomerID, 10)),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		return fmt.Errorf("send accepted event: %w", err)
	}

	p.logger.Debug("order event published",
		logx.String("event", "order_event_published"),
		logx.Int64("customer_id", result.CustomerID),
		logx.Int64("offset", offset),
		logx.Int("partition", int(partition)),
	)
	return nil
}

// Close shuts the underlying producer down.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
