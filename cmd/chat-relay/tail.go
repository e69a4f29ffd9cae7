package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"l4d-chat-relay/internal/messaging"

	"github.com/spf13/cobra"
)

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print messages relayed by a running instance via RabbitMQ.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.RabbitMQURL == "" {
			return errors.New("RABBITMQ_URL must be set")
		}

		rmq, err := messaging.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			return err
		}
		defer rmq.Close()

		messages, err := rmq.Subscribe(cmd.Context())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		for msg := range messages {
			if err := enc.Encode(msg); err != nil {
				return fmt.Errorf("failed to encode message: %w", err)
			}
		}
		return nil
	},
}
