package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cinegold/pkg/logger"

	"github.com/IBM/sarama"
)

// Consumer drains booking events for the notification worker.
type Consumer interface {
	Start(ctx context.Context) error
	Stop() error
}

// ConsumerConfig contains configuration for the Kafka consumer group.
type ConsumerConfig struct {
	Brokers          []string
	GroupID          string
	Topics           []string
	SessionTimeoutMs int
	HeartbeatMs      int
	OffsetOldest     bool
}

// DefaultConsumerConfig returns a consumer configuration with safe defaults.
func DefaultConsumerConfig(brokers []string, groupID, topic string) *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:          brokers,
		GroupID:          groupID,
		Topics:           []string{topic},
		SessionTimeoutMs: 30000,
		HeartbeatMs:      3000,
		OffsetOldest:     false,
	}
}

// EventHandler processes one booking event. Returning an error leaves the
// offset uncommitted so the event is redelivered.
type EventHandler func(ctx context.Context, event BookingEvent) error

type kafkaConsumer struct {
	group   sarama.ConsumerGroup
	config  *ConsumerConfig
	handler EventHandler
	cancel  context.CancelFunc
}

// NewKafkaConsumer creates a consumer group that feeds booking events to
// the handler.
func NewKafkaConsumer(config *ConsumerConfig, handler EventHandler) (Consumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = time.Duration(config.SessionTimeoutMs) * time.Millisecond
	saramaConfig.Consumer.Group.Heartbeat.Interval = time.Duration(config.HeartbeatMs) * time.Millisecond
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second

	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	group, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &kafkaConsumer{
		group:   group,
		config:  config,
		handler: handler,
	}, nil
}

func (c *kafkaConsumer) Start(ctx context.Context) error {
	ctx, c.cancel = context.WithCancel(ctx)

	go func() {
		for err := range c.group.Errors() {
			logger.GetDefault().Error("consumer group error", "error", err)
		}
	}()

	go func() {
		for {
			if err := c.group.Consume(ctx, c.config.Topics, &groupHandler{handler: c.handler}); err != nil {
				logger.GetDefault().Error("consume failed", "error", err)
			}
			if ctx.Err() != nil {
				return
			}
		}
	}()

	return nil
}

func (c *kafkaConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	return c.group.Close()
}

type groupHandler struct {
	handler EventHandler
}

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error   { return nil }
func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *groupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for msg := range claim.Messages() {
		var event BookingEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.GetDefault().Warn("dropping malformed booking event",
				"partition", msg.Partition, "offset", msg.Offset, "error", err)
			session.MarkMessage(msg, "")
			continue
		}

		if err := h.handler(session.Context(), event); err != nil {
			logger.GetDefault().Error("failed to handle booking event",
				"type", event.Type, "booking_id", event.BookingID, "error", err)
			continue
		}
		session.MarkMessage(msg, "")
	}
	return nil
}
