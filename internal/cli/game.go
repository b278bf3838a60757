package cli

import (
	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameGetCmd())
	cmd.AddCommand(newGameSubmitCmd())
	cmd.AddCommand(newGameHintCmd())
	cmd.AddCommand(newGameFinishCmd())

	return cmd
}

func newGameStartCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start today's game",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState

			if err := client.Post("/api/v1/game", nil, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Get current game state",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState

			if err := client.Get("/api/v1/game", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameSubmitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "submit <row,col> [row,col ...]",
		Short: "Submit a word by its cell path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := parsePathArgs(args)
			if err != nil {
				return err
			}

			req := map[string]any{"path": path}
			var result WordResult

			if err := client.Post("/api/v1/game/words", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGameHintCmd() *cobra.Command {
	var strategy string

	cmd := &cobra.Command{
		Use:   "hint",
		Short: "Suggest a playable word",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/game/hint"
			if strategy != "" {
				path += "?strategy=" + strategy
			}

			var result Hint

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "Hint strategy: greedy, random")

	return cmd
}

func newGameFinishCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "finish",
		Short: "End the current game early",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result GameState

			if err := client.Delete("/api/v1/game", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
