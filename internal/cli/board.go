package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Board commands",
	}

	cmd.AddCommand(newBoardDailyCmd())
	cmd.AddCommand(newBoardValidateCmd())
	cmd.AddCommand(newBoardCustomCmd())

	return cmd
}

func newBoardDailyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "daily",
		Short: "Fetch today's board",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result DailyBoard

			if err := client.Get("/api/v1/board", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newBoardValidateCmd() *cobra.Command {
	var gridRows []string

	cmd := &cobra.Command{
		Use:   "validate <row,col> [row,col ...]",
		Short: "Check a path against a grid without playing",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(gridRows) == 0 {
				return fmt.Errorf("at least one --grid row is required")
			}

			path, err := parsePathArgs(args)
			if err != nil {
				return err
			}

			req := map[string]any{"grid": gridRows, "path": path}
			var result ValidationResult

			if err := client.Post("/api/v1/board/validate", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&gridRows, "grid", nil, "Grid row, repeat once per row (e.g. --grid CATS --grid AREA)")

	return cmd
}

func newBoardCustomCmd() *cobra.Command {
	var size int
	var seed int64

	cmd := &cobra.Command{
		Use:   "custom <word> [word ...]",
		Short: "Generate a board seeded with the given words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]any{"size": size, "words": args, "seed": seed}
			var result GeneratedBoard

			if err := client.Post("/api/v1/board/custom", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 4, "Grid size (3-8)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Generation seed (0 uses today's seed)")

	return cmd
}

// parsePathArgs converts "row,col" arguments into path cells
func parsePathArgs(args []string) ([]map[string]int, error) {
	path := make([]map[string]int, 0, len(args))
	for _, arg := range args {
		parts := strings.SplitN(arg, ",", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid cell %q: expected row,col", arg)
		}

		row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid row in %q: %w", arg, err)
		}

		col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid col in %q: %w", arg, err)
		}

		path = append(path, map[string]int{"row": row, "col": col})
	}
	return path, nil
}
