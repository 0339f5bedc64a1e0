package source

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"docqa/internal/domain"
)

// DirSource reads documents from files under a directory. Each matching file is one
// document, or one document per non-blank line when splitLines is set.
type DirSource struct {
	root       string
	includes   []string
	excludes   []string
	splitLines bool
	progress   func(processed, total int, current string)
}

func NewDirSource(root string, includes, excludes []string, splitLines bool) *DirSource {
	if len(includes) == 0 {
		includes = []string{"**/*"}
	}
	return &DirSource{
		root:       root,
		includes:   includes,
		excludes:   excludes,
		splitLines: splitLines,
	}
}

// OnProgress registers a callback invoked after each file is read.
func (s *DirSource) OnProgress(fn func(processed, total int, current string)) {
	s.progress = fn
}

// Load returns the documents in lexical path order.
func (s *DirSource) Load(ctx context.Context) ([]domain.Document, error) {
	files, err := s.Walk()
	if err != nil {
		return nil, err
	}

	var docs []domain.Document
	for i, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			rel = path
		}

		if s.splitLines {
			docs = appendLines(docs, string(data), rel)
		} else if text := strings.TrimSpace(string(data)); text != "" {
			docs = append(docs, domain.Document{Index: len(docs), Text: text, Source: rel})
		}

		if s.progress != nil {
			s.progress(i+1, len(files), rel)
		}
	}

	return docs, nil
}

// Walk returns the absolute paths of the files selected by the include and exclude globs.
func (s *DirSource) Walk() ([]string, error) {
	var files []string

	root, err := filepath.Abs(s.root)
	if err != nil {
		return nil, err
	}
	s.root = root

	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			if relPath != "." && s.shouldExclude(relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if s.shouldInclude(relPath) && !s.shouldExclude(relPath) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

func (s *DirSource) shouldInclude(path string) bool {
	for _, pattern := range s.includes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}

func (s *DirSource) shouldExclude(path string) bool {
	for _, pattern := range s.excludes {
		matched, err := doublestar.Match(pattern, path)
		if err == nil && matched {
			return true
		}
	}
	return false
}
