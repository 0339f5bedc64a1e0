package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"docqa/internal/domain"
)

// LineSource reads one document per non-blank line, the way documents are typed into a
// text area.
type LineSource struct {
	name   string
	reader io.Reader
}

// NewLineSource reads documents from r. name labels the documents' Source.
func NewLineSource(name string, r io.Reader) *LineSource {
	return &LineSource{name: name, reader: r}
}

// NewTextSource reads documents from an in-memory string.
func NewTextSource(name, text string) *LineSource {
	return NewLineSource(name, strings.NewReader(text))
}

// NewFileSource reads documents from the file at path.
func NewFileSource(path string) (*LineSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return NewTextSource(path, string(data)), nil
}

func (s *LineSource) Load(ctx context.Context) ([]domain.Document, error) {
	data, err := io.ReadAll(s.reader)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return appendLines(nil, string(data), s.name), nil
}

// appendLines appends every non-blank line of text as a trimmed document.
func appendLines(docs []domain.Document, text, name string) []domain.Document {
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		docs = append(docs, domain.Document{
			Index:  len(docs),
			Text:   line,
			Source: fmt.Sprintf("%s:%d", name, i+1),
		})
	}
	return docs
}
