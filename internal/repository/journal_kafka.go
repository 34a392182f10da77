package repository

import (
	"context"
	"fmt"

	"VibeFinance/internal/domain/models"
	domrepo "VibeFinance/internal/domain/repository"
)

// EventPublisher is the part of *kafka.Producer the journal uses.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key []byte, value interface{}) error
	Close() error
}

// KafkaJournal publishes every lookup as JSON, keyed by symbol so one
// symbol's events land on one partition.
type KafkaJournal struct {
	pub   EventPublisher
	topic string
}

var _ domrepo.Journal = (*KafkaJournal)(nil)

func NewKafkaJournal(pub EventPublisher, topic string) *KafkaJournal {
	return &KafkaJournal{pub: pub, topic: topic}
}

func (j *KafkaJournal) Record(ctx context.Context, ev *models.LookupEvent) error {
	if err := j.pub.Publish(ctx, j.topic, []byte(ev.Symbol), ev); err != nil {
		return fmt.Errorf("publish lookup %s: %w", ev.ID, err)
	}
	return nil
}

func (j *KafkaJournal) Close() error {
	return j.pub.Close()
}
