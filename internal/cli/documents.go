package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"

	"docqa/config"
	"docqa/internal/adapter/source"
	"docqa/internal/domain"
	"docqa/internal/port"
	"docqa/internal/usecase"
)

// documentFlags selects where the documents of an analysis come from.
type documentFlags struct {
	file   string
	corpus string
	docs   []string
}

// load reads the documents named by the flags, falling back to the sample collection.
func (f *documentFlags) load(ctx context.Context, cfg *config.Config, stdin io.Reader, progressOut io.Writer) ([]domain.Document, error) {
	var src port.DocumentSource

	switch {
	case len(f.docs) > 0:
		return usecase.DocumentsFromStrings(f.docs), nil
	case f.file == "-":
		src = source.NewLineSource("stdin", stdin)
	case f.file != "":
		fileSrc, err := source.NewFileSource(f.file)
		if err != nil {
			return nil, err
		}
		src = fileSrc
	case f.corpus != "":
		dirSrc := source.NewDirSource(f.corpus, cfg.Corpus.Includes, cfg.Corpus.Excludes, cfg.Corpus.SplitLines)
		dirSrc.OnProgress(newLoadProgress(progressOut))
		src = dirSrc
	default:
		return usecase.DocumentsFromStrings(config.DefaultDocuments()), nil
	}

	docs, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load documents: %w", err)
	}
	return docs, nil
}

// newLoadProgress returns a progress callback that draws a bar once the file count is known.
func newLoadProgress(out io.Writer) func(processed, total int, current string) {
	var bar *progressbar.ProgressBar

	return func(processed, total int, current string) {
		if bar == nil {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(out),
				progressbar.OptionEnableColorCodes(true),
				progressbar.OptionShowBytes(false),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionSetDescription("[cyan]Loading[reset]"),
				progressbar.OptionSetTheme(progressbar.Theme{
					Saucer:        "[green]=[reset]",
					SaucerHead:    "[green]>[reset]",
					SaucerPadding: " ",
					BarStart:      "[",
					BarEnd:        "]",
				}),
				progressbar.OptionOnCompletion(func() {
					fmt.Fprintln(out)
				}),
			)
		}
		bar.Set(processed)
	}
}
