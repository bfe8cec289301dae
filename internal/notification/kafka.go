package notification

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/segmentio/kafka-go"

	"github.com/svitclubs/club-management-backend/config"
)

// KafkaPublisher writes activity messages to the configured topic.
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewPublisher returns a kafka-backed publisher, or a no-op one when no
// brokers are configured so single-node deployments keep working.
func NewPublisher(cfg *config.Config) Publisher {
	if cfg.KafkaBrokers == "" {
		log.Println("Kafka brokers not configured, activity feed disabled")
		return NoopPublisher{}
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
		Topic:    cfg.KafkaActivityTopic,
		Balancer: &kafka.LeastBytes{},
	}
	return &KafkaPublisher{writer: writer}
}

func (p *KafkaPublisher) PublishActivity(ctx context.Context, a Activity) error {
	payload, err := json.Marshal(a)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(a.Kind),
		Value: payload,
	})
}

// NoopPublisher drops activity messages.
type NoopPublisher struct{}

func (NoopPublisher) PublishActivity(context.Context, Activity) error { return nil }

// StartKafkaConsumer launches the goroutine that drains the activity topic
// into in-app notifications. Does nothing when brokers are not configured.
func StartKafkaConsumer(svc Service, cfg *config.Config) {
	if cfg.KafkaBrokers == "" {
		return
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: strings.Split(cfg.KafkaBrokers, ","),
		Topic:   cfg.KafkaActivityTopic,
		GroupID: "club-backend-notifications",
	})

	go func() {
		defer reader.Close()
		for {
			msg, err := reader.ReadMessage(context.Background())
			if err != nil {
				log.Printf("kafka consumer stopped: %v", err)
				return
			}

			var activity Activity
			if err := json.Unmarshal(msg.Value, &activity); err != nil {
				log.Printf("skipping malformed activity message: %v", err)
				continue
			}

			if err := svc.RecordActivity(context.Background(), activity); err != nil {
				log.Printf("failed to record activity %s/%s: %v", activity.Kind, activity.Action, err)
			}
		}
	}()
}
