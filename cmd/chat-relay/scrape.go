package main

import (
	"encoding/json"
	"fmt"
	"time"

	"l4d-chat-relay/internal/hlstats"
	"l4d-chat-relay/internal/relay"
	"l4d-chat-relay/internal/watermark"

	"github.com/spf13/cobra"
)

var scrapeNewOnly bool

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Fetch the chat page once and print the parsed messages as JSON.",
	Long: "Fetch the chat page once and print the parsed messages as JSON.\n" +
		"Nothing is sent and the watermark is left untouched.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		source := hlstats.NewClient(cfg.BaseURL, cfg.FetchTimeout)
		messages, err := source.Chat(cmd.Context())
		if err != nil {
			return err
		}

		if scrapeNewOnly {
			last, err := watermark.NewFileStore(cfg.WatermarkFile).Get()
			if err != nil {
				return err
			}
			messages = relay.FilterNewer(messages, last)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(messages); err != nil {
			return fmt.Errorf("failed to encode messages: %w", err)
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "%d messages from %s at %s\n",
			len(messages), source.ChatURL(), time.Now().Format(time.RFC3339))
		return nil
	},
}

func init() {
	scrapeCmd.Flags().BoolVar(&scrapeNewOnly, "new", false, "only print messages newer than the watermark")
}
