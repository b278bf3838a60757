package cli

import (
	"github.com/spf13/cobra"
)

func newDictionaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dictionary",
		Short: "Dictionary commands",
	}

	cmd.AddCommand(newDictionaryGetCmd())
	cmd.AddCommand(newDictionaryVersionCmd())

	return cmd
}

func newDictionaryGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "Fetch the full word list",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Dictionary

			if err := client.Get("/api/v1/dictionary", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newDictionaryVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Fetch the word list version",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result DictionaryVersion

			if err := client.Get("/api/v1/dictionary/version", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
