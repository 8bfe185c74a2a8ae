package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultChannel канал Redis для ретрансляции изменений
const DefaultChannel = "booking_flow_changes"

const publishTimeout = 2 * time.Second

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type bridgeMessage struct {
	SessionID string `json:"sessionId"`
	Origin    string `json:"origin"`
}

// RedisBridge доставляет события локальному хабу и дублирует их в канал Redis
// События других экземпляров переиздаются локально как EventStorage
type RedisBridge struct {
	hub        *Hub
	client     *redis.Client
	channel    string
	instanceID string
	logger     Logger
}

// NewRedisBridge создает мост между хабом и каналом Redis
func NewRedisBridge(hub *Hub, client *redis.Client, channel string, logger Logger) *RedisBridge {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisBridge{
		hub:        hub,
		client:     client,
		channel:    channel,
		instanceID: uuid.NewString(),
		logger:     logger,
	}
}

// InstanceID возвращает идентификатор экземпляра, которым помечаются исходящие события
func (b *RedisBridge) InstanceID() string {
	return b.instanceID
}

// Publish доставляет событие локально и публикует его в Redis
// Ошибка Redis только логируется: локальные подписчики уже уведомлены
func (b *RedisBridge) Publish(e Event) {
	e.Origin = b.instanceID
	b.hub.Publish(e)

	payload, err := json.Marshal(bridgeMessage{SessionID: e.SessionID, Origin: b.instanceID})
	if err != nil {
		b.logger.Error("RedisBridge.Publish: failed to marshal event for session=%s: %v", e.SessionID, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		b.logger.Warn("RedisBridge.Publish: failed to publish to %s for session=%s: %v", b.channel, e.SessionID, err)
	}
}

// Start подписывается на канал и запускает горутину чтения
// Подписка подтверждается до возврата, горутина завершается при отмене ctx
func (b *RedisBridge) Start(ctx context.Context) error {
	pubsub := b.client.Subscribe(ctx, b.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("notifier: subscribe to %s: %w", b.channel, err)
	}

	b.logger.Info("RedisBridge: subscribed to channel=%s instance=%s", b.channel, b.instanceID)

	go func() {
		defer pubsub.Close()
		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				b.handleMessage(msg.Payload)
			}
		}
	}()

	return nil
}

func (b *RedisBridge) handleMessage(payload string) {
	var m bridgeMessage
	if err := json.Unmarshal([]byte(payload), &m); err != nil {
		b.logger.Warn("RedisBridge: skip malformed message: %v", err)
		return
	}
	if m.Origin == b.instanceID || m.SessionID == "" {
		return
	}

	b.hub.Publish(Event{
		Name:      EventStorage,
		SessionID: m.SessionID,
		Origin:    m.Origin,
	})
}
