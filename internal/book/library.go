// Package book loads the markdown chapters that make up the book.
package book

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Chapter is one markdown page of the book.
type Chapter struct {
	// ID identifies the page (relative path without extension); it is
	// used as the activity resource id.
	ID string
	// Title is taken from the first heading, falling back to the file name.
	Title string
	// Path is the absolute file path.
	Path string
	// Week is the 1-based position of the chapter, used for progress.
	Week int
}

// Library is the ordered set of chapters found in a docs directory.
type Library struct {
	chapters []Chapter
}

// Load walks dir for .md files and returns them sorted by relative
// path, so numbered files ("01-intro.md") keep their intended order.
func Load(dir string) (*Library, error) {
	var chapters []Chapter
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		chapters = append(chapters, Chapter{
			ID:    strings.TrimSuffix(filepath.ToSlash(rel), ".md"),
			Title: titleOf(path, d.Name()),
			Path:  abs,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("load book from %s: %w", dir, err)
	}
	if len(chapters) == 0 {
		return nil, fmt.Errorf("no chapters found in %s", dir)
	}

	sort.Slice(chapters, func(i, j int) bool { return chapters[i].ID < chapters[j].ID })
	for i := range chapters {
		chapters[i].Week = i + 1
	}
	return &Library{chapters: chapters}, nil
}

// titleOf extracts the first level-one heading, skipping any front
// matter; the file name is the fallback.
func titleOf(path, name string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return strings.TrimSuffix(name, ".md")
	}
	lines := strings.Split(string(data), "\n")
	inFrontMatter := false
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if i == 0 && trimmed == "---" {
			inFrontMatter = true
			continue
		}
		if inFrontMatter {
			if trimmed == "---" {
				inFrontMatter = false
			}
			continue
		}
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}
	return strings.TrimSuffix(name, ".md")
}

// Chapters returns the chapters in reading order.
func (l *Library) Chapters() []Chapter {
	out := make([]Chapter, len(l.chapters))
	copy(out, l.chapters)
	return out
}

// Content reads a chapter's markdown body.
func (l *Library) Content(ch Chapter) (string, error) {
	data, err := os.ReadFile(ch.Path)
	if err != nil {
		return "", fmt.Errorf("read chapter %s: %w", ch.ID, err)
	}
	return string(data), nil
}

// ByID finds a chapter by its page id.
func (l *Library) ByID(id string) (Chapter, bool) {
	for _, ch := range l.chapters {
		if ch.ID == id {
			return ch, true
		}
	}
	return Chapter{}, false
}
