package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Subscribe binds a temporary queue to the relayed exchange and streams
// decoded messages until ctx is cancelled or the channel closes.
func (r *RabbitMQ) Subscribe(ctx context.Context) (<-chan RelayedMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	queue, err := r.channel.QueueDeclare(
		"",    // auto-generated name
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	if err := r.channel.QueueBind(
		queue.Name,      // queue name
		"",              // routing key
		RelayedExchange, // exchange
		false,
		nil,
	); err != nil {
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	msgs, err := r.channel.Consume(
		queue.Name, // queue
		"",         // consumer
		true,       // auto-ack
		true,       // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register consumer: %w", err)
	}

	slog.Info("subscribed to relayed messages",
		slog.String("queue", queue.Name),
		slog.String("exchange", RelayedExchange))

	out := make(chan RelayedMessage)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					slog.Warn("relayed consumer channel closed")
					return
				}

				var relayed RelayedMessage
				if err := json.Unmarshal(msg.Body, &relayed); err != nil {
					slog.Error("error unmarshaling relayed message",
						slog.String("error", err.Error()),
						slog.String("body", string(msg.Body)))
					continue
				}

				select {
				case out <- relayed:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
