package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/GoArmGo/UnsplashServices/internal/core/ports"
	"github.com/GoArmGo/UnsplashServices/internal/messaging/payloads"
)

const publishTimeout = 5 * time.Second

// Config — параметры подключения к RabbitMQ.
type Config struct {
	URL       string
	QueueName string
}

// Client представляет собой клиент RabbitMQ
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
	logger  *slog.Logger
}

var (
	_ ports.TrackDownloadPublisher = (*Client)(nil)
	_ ports.TrackDownloadConsumer  = (*Client)(nil)
)

// NewClient создает и инициализирует новый клиент RabbitMQ
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	client := &Client{logger: logger.With("component", "rabbitmq")}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	client.conn = conn

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	client.channel = ch

	// Объявление очереди идемпотентно: создаётся, только если её нет.
	q, err := ch.QueueDeclare(
		cfg.QueueName, // name
		true,          // durable
		false,         // delete when unused
		false,         // exclusive
		false,         // no-wait
		nil,           // arguments
	)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to declare a queue: %w", err)
	}
	client.queue = q
	client.logger.Info("queue declared", "queue", q.Name, "messages", q.Messages)

	return client, nil
}

// Close закрывает соединение и канал RabbitMQ
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
	}
	if len(errs) == 0 {
		c.logger.Info("rabbitmq connection closed")
	}
	return errors.Join(errs...)
}

// PublishTrackDownload публикует задачу регистрации скачивания.
func (c *Client) PublishTrackDownload(ctx context.Context, payload payloads.TrackDownloadPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload to JSON: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(
		publishCtx,
		"",           // exchange
		c.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    payload.ID.String(),
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish a message: %w", err)
	}
	c.logger.Debug("message published", "queue", c.queue.Name, "id", payload.ID)
	return nil
}

// StartConsumingTrackDownloads начинает потребление сообщений из очереди.
// Обработка идёт в отдельной горутине до отмены ctx или закрытия канала.
func (c *Client) StartConsumingTrackDownloads(ctx context.Context, handler func(context.Context, payloads.TrackDownloadPayload) error) error {
	msgs, err := c.channel.Consume(
		c.queue.Name, // queue
		"",           // consumer
		false,        // auto-ack (подтверждаем вручную)
		false,        // exclusive
		false,        // no-local
		false,        // no-wait
		nil,          // args
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	c.logger.Info("consumer registered", "queue", c.queue.Name)

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					c.logger.Info("delivery channel closed, stopping consumer")
					return
				}
				process(ctx, amqpDelivery{&msg}, handler, c.logger)
			case <-ctx.Done():
				c.logger.Info("context cancelled, stopping consumer")
				return
			}
		}
	}()

	return nil
}

// delivery — часть amqp.Delivery, нужная для обработки.
type delivery interface {
	Ack(multiple bool) error
	Nack(multiple, requeue bool) error
	body() []byte
}

type amqpDelivery struct{ *amqp.Delivery }

func (d amqpDelivery) body() []byte { return d.Body }

// process разбирает сообщение и вызывает обработчик.
// Битые сообщения и постоянные ошибки отклоняются без возврата в очередь.
func process(ctx context.Context, msg delivery, handler func(context.Context, payloads.TrackDownloadPayload) error, logger *slog.Logger) {
	var payload payloads.TrackDownloadPayload
	if err := json.Unmarshal(msg.body(), &payload); err != nil || payload.DownloadLocation == "" {
		logger.Warn("dropping malformed message", "error", err, "body", string(msg.body()))
		if err := msg.Nack(false, false); err != nil {
			logger.Error("failed to nack message", "error", err)
		}
		return
	}

	if err := handler(ctx, payload); err != nil {
		requeue := !IsPermanent(err)
		logger.Error("failed to process message", "id", payload.ID, "requeue", requeue, "error", err)
		if err := msg.Nack(false, requeue); err != nil {
			logger.Error("failed to nack message", "id", payload.ID, "error", err)
		}
		return
	}

	if err := msg.Ack(false); err != nil {
		logger.Error("failed to ack message", "id", payload.ID, "error", err)
		return
	}
	logger.Info("message processed", "id", payload.ID)
}

// permanentError помечает ошибку, после которой повтор бессмыслен.
type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent оборачивает err: сообщение будет отклонено без requeue.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

// IsPermanent сообщает, помечена ли ошибка как постоянная.
func IsPermanent(err error) bool {
	var p *permanentError
	return errors.As(err, &p)
}
