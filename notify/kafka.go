package notify

import (
	"context"
	"encoding/json"
	"log"

	"hospitality/services"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher streams every domain event to one topic, keyed by
// entity and id.
type KafkaPublisher struct {
	Writer MessageWriter
}

func NewKafkaWriter(broker, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion: func(msgs []kafka.Message, err error) {
			if err != nil {
				log.Printf("kafka: write %d messages: %v", len(msgs), err)
			}
		},
	}
}

func NewKafkaPublisher(w MessageWriter) *KafkaPublisher {
	return &KafkaPublisher{Writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e services.Event) {
	payload, err := json.Marshal(e)
	if err != nil {
		log.Printf("kafka: encode %s.%s: %v", e.Entity, e.Action, err)
		return
	}
	err = p.Writer.WriteMessages(context.WithoutCancel(ctx), kafka.Message{
		Key:   []byte(e.Entity + ":" + e.ID),
		Value: payload,
		Time:  e.At,
	})
	if err != nil {
		log.Printf("kafka: publish %s.%s id=%s: %v", e.Entity, e.Action, e.ID, err)
	}
}

func (p *KafkaPublisher) Close() error {
	return p.Writer.Close()
}
