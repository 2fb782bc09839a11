package reminders

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/segmentio/kafka-go"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"

	"github.com/2beens/fittracker/internal/telemetry/tracing"
)

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}

// LogNotifier only logs notifications. Used when no broker is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, n Notification) error {
	log.WithFields(log.Fields{
		"reminder":       n.ReminderID,
		"user":           n.UserID,
		"minutes_before": n.MinutesBefore,
	}).Infof("reminder: your %s workout starts in %d minutes (%s)", n.WorkoutType, n.MinutesBefore, n.WorkoutTime)
	return nil
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier publishes notifications as JSON to a topic, keyed by reminder id,
// so both notifications of one reminder land on the same partition in order.
type KafkaNotifier struct {
	writer messageWriter
}

func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireAll,
			Compression:  kafka.Snappy,
			Async:        false,
		},
	}
}

func (k *KafkaNotifier) Notify(ctx context.Context, n Notification) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "reminders.kafkaNotifier.notify")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	value, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	if err := k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(n.ReminderID)),
		Value: value,
		Headers: []kafka.Header{
			{Key: "minutes-before", Value: []byte(strconv.Itoa(n.MinutesBefore))},
		},
	}); err != nil {
		return fmt.Errorf("publish notification: %w", err)
	}
	return nil
}

func (k *KafkaNotifier) Close() error {
	return k.writer.Close()
}

// MultiNotifier delivers to every notifier and reports all failures.
type MultiNotifier []Notifier

func (m MultiNotifier) Notify(ctx context.Context, n Notification) error {
	var err error
	for _, notifier := range m {
		err = multierr.Append(err, notifier.Notify(ctx, n))
	}
	return err
}
