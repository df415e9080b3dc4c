package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/storeflow/internal/types"
)

// Event records one successful order transition.
type Event struct {
	EventID     string       `json:"event_id"`
	OrderID     int64        `json:"order_id"`
	OrderNumber string       `json:"order_number"`
	Action      string       `json:"action"`
	OldStatus   types.Status `json:"old_status,omitempty"`
	NewStatus   types.Status `json:"new_status"`
	Version     int          `json:"version"`
	At          time.Time    `json:"at"`
}

func NewEvent(action string, before *types.Order, after types.Order, at time.Time) Event {
	e := Event{
		EventID:     uuid.NewString(),
		OrderID:     after.OrderID,
		OrderNumber: after.OrderNumber,
		Action:      action,
		NewStatus:   after.Status,
		Version:     after.Version,
		At:          at,
	}
	if before != nil {
		e.OldStatus = before.Status
	}
	return e
}

type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, e Event) error {
	logger.WithFields(logger.Fields{
		"order":   e.OrderNumber,
		"action":  e.Action,
		"from":    e.OldStatus,
		"to":      e.NewStatus,
		"version": e.Version,
	}).Info("Order transition")
	return nil
}

// KafkaPublisher writes transition events to a topic, keyed by order id so
// events of one order stay in one partition.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(brokers []string, topic string) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second
	prod, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("could not create kafka producer %w", err)
	}
	return NewKafkaPublisherWithProducer(prod, topic), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("could not serialize event %w", err)
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(strconv.FormatInt(e.OrderID, 10)),
		Value: sarama.ByteEncoder(value),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send event to topic %s: %w", p.topic, err)
	}
	logger.Debugf("Event %s stored in %s/%d/%d", e.EventID, p.topic, partition, offset)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
