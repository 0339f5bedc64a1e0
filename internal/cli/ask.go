package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"docqa/internal/domain"
	"docqa/internal/usecase"
)

type askOptions struct {
	documentFlags

	question   string
	suggestion int
	language   string
	threshold  float64
	topK       int
	showMatrix bool
	jsonOut    bool
}

func newAskCmd(a *app) *cobra.Command {
	opts := &askOptions{}

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Find the document that best answers a question",
		Long: `Rank the documents by TF-IDF cosine similarity to the question and print the best one.

The question comes from --question, or from the suggested questions with --suggestion N.
With neither, the first suggested question is asked. Without --file, --corpus or --doc the
sample documents are used.

Examples:
  docqa ask -q "¿Dónde juegan el perro y el gato?"
  docqa ask -s 3 --matrix
  docqa ask -f docs.txt -q "¿Qué animal maúlla?" --json
  cat docs.txt | docqa ask -f - -q "..."`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, a, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.question, "question", "q", "", "question to answer")
	cmd.Flags().IntVarP(&opts.suggestion, "suggestion", "s", 0, "ask the Nth suggested question (see 'docqa suggest')")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "file with one document per line ('-' for stdin)")
	cmd.Flags().StringVar(&opts.corpus, "corpus", "", "directory of document files")
	cmd.Flags().StringArrayVar(&opts.docs, "doc", nil, "inline document (repeatable)")
	cmd.Flags().StringVarP(&opts.language, "language", "l", "", "stemming language (default from config)")
	cmd.Flags().Float64Var(&opts.threshold, "threshold", 0, "confidence threshold (default from config)")
	cmd.Flags().IntVarP(&opts.topK, "top-k", "k", 0, "number of alternative answers to list (default from config)")
	cmd.Flags().BoolVar(&opts.showMatrix, "matrix", false, "print the TF-IDF matrix")
	cmd.Flags().BoolVar(&opts.jsonOut, "json", false, "output as JSON")
	cmd.MarkFlagsMutuallyExclusive("question", "suggestion")
	cmd.MarkFlagsMutuallyExclusive("file", "corpus", "doc")

	return cmd
}

func runAsk(cmd *cobra.Command, a *app, opts *askOptions) error {
	cfg := a.cfg

	question, err := pickQuestion(opts.question, opts.suggestion, cfg.Suggestions)
	if err != nil {
		return err
	}

	language := cfg.Analyzer.Language
	if opts.language != "" {
		language = opts.language
	}
	threshold := cfg.Rank.ConfidenceThreshold
	if cmd.Flags().Changed("threshold") {
		threshold = opts.threshold
	}
	topK := cfg.Rank.TopK
	if opts.topK > 0 {
		topK = opts.topK
	}

	docs, err := opts.load(cmd.Context(), cfg, cmd.InOrStdin(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	analyzeUC := usecase.NewAnalyzeUseCase(language, threshold, a.log)
	analysis, err := analyzeUC.Analyze(docs, question)
	if err != nil {
		return explain(err)
	}

	alternatives := usecase.Alternatives(analysis, topK, cfg.Rank.MMRLambda, cfg.Rank.DedupJaccard)

	out := cmd.OutOrStdout()
	if opts.jsonOut {
		output, err := json.MarshalIndent(newAnalysisResult(analysis, alternatives, opts.showMatrix), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(output))
		return nil
	}

	if opts.showMatrix {
		renderMatrix(out, analysis)
		fmt.Fprintln(out)
	}
	renderAnswer(out, analysis, threshold)
	renderAlternatives(out, analysis, alternatives)

	return nil
}

// pickQuestion resolves the current question: an explicit question wins, then a 1-based
// suggestion index, then the first suggestion.
func pickQuestion(question string, suggestion int, suggestions []string) (string, error) {
	switch {
	case question != "":
		return question, nil
	case suggestion != 0:
		if suggestion < 1 || suggestion > len(suggestions) {
			return "", fmt.Errorf("suggestion %d out of range (1-%d)", suggestion, len(suggestions))
		}
		return suggestions[suggestion-1], nil
	case len(suggestions) > 0:
		return suggestions[0], nil
	}
	return "", explain(domain.ErrEmptyQuery)
}

// explain adds a hint for the user to the analysis errors.
func explain(err error) error {
	switch {
	case errors.Is(err, domain.ErrEmptyDocumentSet):
		return fmt.Errorf("%w: enter at least one document", err)
	case errors.Is(err, domain.ErrEmptyVocabulary):
		return fmt.Errorf("%w: documents must contain words of two or more letters", err)
	case errors.Is(err, domain.ErrEmptyQuery):
		return fmt.Errorf("%w: write a valid question", err)
	}
	return err
}

// analysisResult is the JSON form of an analysis.
type analysisResult struct {
	ID           string              `json:"id"`
	Language     string              `json:"language"`
	Question     string              `json:"question"`
	Answer       string              `json:"answer"`
	BestIndex    int                 `json:"best_index"`
	Score        float64             `json:"score"`
	Confident    bool                `json:"confident"`
	NoMatch      bool                `json:"no_match"`
	Scores       []float64           `json:"scores"`
	Alternatives []alternativeResult `json:"alternatives,omitempty"`
	Terms        []string            `json:"terms,omitempty"`
	Matrix       [][]float64         `json:"matrix,omitempty"`
}

type alternativeResult struct {
	Index    int     `json:"index"`
	Score    float64 `json:"score"`
	Document string  `json:"document"`
}

func newAnalysisResult(a *domain.Analysis, alternatives []domain.ScoredDocument, withMatrix bool) analysisResult {
	res := analysisResult{
		ID:        a.ID,
		Language:  a.Language,
		Question:  a.Question,
		Answer:    a.BestDocument.Text,
		BestIndex: a.BestIndex,
		Score:     a.BestScore,
		Confident: a.Confident,
		NoMatch:   a.NoMatch(),
		Scores:    a.Scores,
	}
	for _, alt := range alternatives {
		res.Alternatives = append(res.Alternatives, alternativeResult{
			Index:    alt.Index,
			Score:    alt.Score,
			Document: a.Documents[alt.Index].Text,
		})
	}
	if withMatrix {
		res.Terms = a.Vocabulary.Terms()
		res.Matrix = a.Matrix.Rows
	}
	return res
}
