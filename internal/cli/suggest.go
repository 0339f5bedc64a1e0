package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"docqa/internal/adapter/analyzer"
)

func newSuggestCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest",
		Short: "List the suggested questions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(a.cfg.Suggestions) == 0 {
				fmt.Fprintln(out, "No suggested questions configured.")
				return nil
			}
			for i, q := range a.cfg.Suggestions {
				fmt.Fprintf(out, "%d. %s\n", i+1, q)
			}
			return nil
		},
	}
}

func newLanguagesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported stemming languages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range analyzer.Languages() {
				marker := " "
				if name == a.cfg.Analyzer.Language {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, name)
			}
			fmt.Fprintf(out, "  %s (detect from the documents)\n", analyzer.LanguageAuto)
			return nil
		},
	}
}
