// Package events publishes domain notifications (new submissions, finished
// exports) to a message broker.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	TypeSubmissionSaved  = "submission.saved"
	TypeSubmissionSpam   = "submission.spam"
	TypeExportFinished   = "export.finished"
	TypeExportFailed     = "export.failed"
	TypeSubmissionsPurge = "submissions.purged"
	TypeSubmissionNotify = "submission.notify"
)

type Event struct {
	Type       string         `json:"type"`
	FormID     uint           `json:"form_id,omitempty"`
	EntityID   uint           `json:"entity_id,omitempty"`
	Data       map[string]any `json:"data,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }

func (NoopPublisher) Close() error { return nil }

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes events as JSON, keyed by form id so events of a
// form stay ordered within a partition.
type KafkaPublisher struct {
	writer messageWriter
	log    *zap.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *zap.Logger) *KafkaPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		BatchTimeout:           50 * time.Millisecond,
	}
	return &KafkaPublisher{writer: w, log: log}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e Event) error {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}
	buf, err := json.Marshal(e)
	if err != nil {
		return err
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(e.FormID), 10)),
		Value: buf,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(e.Type)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.log.Warn("publish event failed", zap.String("type", e.Type), zap.Error(err))
		return err
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// New picks the kafka publisher when brokers are configured.
func New(brokers []string, topic string, log *zap.Logger) Publisher {
	if len(brokers) == 0 || topic == "" {
		return NoopPublisher{}
	}
	return NewKafkaPublisher(brokers, topic, log)
}
