package cmd

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete every stored analysis, explanation and LLM event",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			prompt := promptui.Prompt{
				Label:     "Delete all stored data",
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				if errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrInterrupt) {
					fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
					return nil
				}
				return err
			}
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.EventRepo().Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
