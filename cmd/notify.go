package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/chesscoach/internal/notify"
)

var notifyCmd = &cobra.Command{
	Use:   "notify key=value...",
	Short: "Send key/value details to the configured Telegram chat",
	Example: "  chesscoach notify \"Lichess ID=alice\" Email=alice@example.com",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := make([]notify.Field, 0, len(args))
		for _, arg := range args {
			key, value, ok := strings.Cut(arg, "=")
			if !ok || strings.TrimSpace(key) == "" {
				return fmt.Errorf("invalid field %q, want key=value", arg)
			}
			fields = append(fields, notify.Field{Key: strings.TrimSpace(key), Value: value})
		}

		tg := notify.FromEnv()
		if !tg.Configured() {
			return notify.ErrNotConfigured
		}
		if err := tg.Send(cmd.Context(), fields...); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Sent.")
		return nil
	},
}
