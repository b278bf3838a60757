package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResultCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "result",
		Short: "Day result commands",
	}

	cmd.AddCommand(newResultGetCmd())
	cmd.AddCommand(newResultPlayedCmd())

	return cmd
}

func newResultGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <day>",
		Short: "Get a finished day's result (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := args[0]

			var result DayResult

			if err := client.Get(fmt.Sprintf("/api/v1/results/%s", day), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newResultPlayedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "played <day>",
		Short: "Check whether a day has been played",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := args[0]

			var result PlayedResult

			if err := client.Get(fmt.Sprintf("/api/v1/results/%s/played", day), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
