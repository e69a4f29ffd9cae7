package main

import (
	"fmt"

	"l4d-chat-relay/internal/watermark"

	"github.com/spf13/cobra"
)

var watermarkCmd = &cobra.Command{
	Use:   "watermark",
	Short: "Inspect or seed the delivery watermark.",
}

var watermarkShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the date of the last delivered message.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		last, err := watermark.NewFileStore(cfg.WatermarkFile).Last()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), last)
		return nil
	},
}

var watermarkSetCmd = &cobra.Command{
	Use:     "set <YYYY-MM-DD HH:MM:SS>",
	Short:   "Overwrite the watermark. Messages at or before this date are never sent.",
	Example: `  chat-relay watermark set "2024-01-02 10:00:00"`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store := watermark.NewFileStore(cfg.WatermarkFile)
		if err := store.Update(args[0]); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "watermark %s set to %s\n", store.Path(), args[0])
		return nil
	},
}

func init() {
	watermarkCmd.AddCommand(watermarkShowCmd)
	watermarkCmd.AddCommand(watermarkSetCmd)
}
