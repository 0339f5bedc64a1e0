package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"docqa/internal/domain"
)

var (
	confidentStyle = color.New(color.FgGreen, color.OpBold)
	lowStyle       = color.New(color.FgYellow, color.OpBold)
	headerStyle    = color.New(color.FgMagenta, color.OpBold)
)

// renderMatrix prints the TF-IDF matrix, one row per document, weights rounded to 3 places.
func renderMatrix(out io.Writer, a *domain.Analysis) {
	fmt.Fprintln(out, headerStyle.Render("TF-IDF matrix"))

	table := tablewriter.NewWriter(out)
	table.SetHeader(append([]string{""}, a.Vocabulary.Terms()...))
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for d, row := range a.Matrix.Rows {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, fmt.Sprintf("Doc %d", d+1))
		for _, w := range row {
			cells = append(cells, strconv.FormatFloat(w, 'f', 3, 64))
		}
		table.Append(cells)
	}
	table.Render()
}

// renderAnswer prints the question, the best document and its similarity, labelled by
// whether the score clears the confidence threshold.
func renderAnswer(out io.Writer, a *domain.Analysis, threshold float64) {
	fmt.Fprintln(out, headerStyle.Render("Result"))
	fmt.Fprintf(out, "Question: %s\n", a.Question)

	if a.Confident {
		fmt.Fprintln(out, confidentStyle.Render("Answer: "+a.BestDocument.Text))
	} else {
		fmt.Fprintln(out, lowStyle.Render("Answer (low confidence): "+a.BestDocument.Text))
	}
	fmt.Fprintf(out, "Similarity: %.3f (threshold %.3f)\n", a.BestScore, threshold)

	if a.NoMatch() {
		fmt.Fprintln(out, "The question shares no words with any document.")
	}
}

// renderAlternatives prints the runner-up documents and the full score vector.
func renderAlternatives(out io.Writer, a *domain.Analysis, alternatives []domain.ScoredDocument) {
	if len(alternatives) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, headerStyle.Render("Other candidates"))
		for _, alt := range alternatives {
			fmt.Fprintf(out, "  [Doc %d] %.3f  %s\n", alt.Index+1, alt.Score, a.Documents[alt.Index].Text)
		}
	}

	fmt.Fprintln(out)
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Doc", "Similarity", "Document"})
	table.SetAutoWrapText(false)
	for i, s := range a.Scores {
		table.Append([]string{strconv.Itoa(i + 1), strconv.FormatFloat(s, 'f', 3, 64), a.Documents[i].Text})
	}
	table.Render()
}
