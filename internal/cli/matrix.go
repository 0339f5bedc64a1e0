package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"docqa/internal/usecase"
)

func newMatrixCmd(a *app) *cobra.Command {
	var (
		docFlags documentFlags
		language string
		jsonOut  bool
	)

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the TF-IDF matrix of the documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if language == "" {
				language = a.cfg.Analyzer.Language
			}

			docs, err := docFlags.load(cmd.Context(), a.cfg, cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			analysis, err := usecase.NewAnalyzeUseCase(language, a.cfg.Rank.ConfidenceThreshold, a.log).Fit(docs)
			if err != nil {
				return explain(err)
			}

			out := cmd.OutOrStdout()
			if jsonOut {
				output, err := json.MarshalIndent(struct {
					Language string      `json:"language"`
					Terms    []string    `json:"terms"`
					Matrix   [][]float64 `json:"matrix"`
				}{analysis.Language, analysis.Vocabulary.Terms(), analysis.Matrix.Rows}, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(output))
				return nil
			}

			fmt.Fprintf(out, "Language: %s, documents: %d, terms: %d\n",
				analysis.Language, analysis.Matrix.NumDocs(), analysis.Vocabulary.Len())
			renderMatrix(out, analysis)
			return nil
		},
	}

	cmd.Flags().StringVarP(&docFlags.file, "file", "f", "", "file with one document per line ('-' for stdin)")
	cmd.Flags().StringVar(&docFlags.corpus, "corpus", "", "directory of document files")
	cmd.Flags().StringArrayVar(&docFlags.docs, "doc", nil, "inline document (repeatable)")
	cmd.Flags().StringVarP(&language, "language", "l", "", "stemming language (default from config)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON")
	cmd.MarkFlagsMutuallyExclusive("file", "corpus", "doc")

	return cmd
}
