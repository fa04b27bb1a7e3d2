package book

import (
	"os"
	"path/filepath"
	"testing"
)

func writeChapter(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_OrderAndTitles(t *testing.T) {
	dir := t.TempDir()
	writeChapter(t, dir, "02-sensors.md", "# Sensors\n\nbody")
	writeChapter(t, dir, "01-intro.md", "---\ntitle: x\n---\n\n# Introduction\n\nbody")
	writeChapter(t, dir, "03-notes.md", "no heading here")

	lib, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	chapters := lib.Chapters()
	if len(chapters) != 3 {
		t.Fatalf("expected 3 chapters, got %d", len(chapters))
	}
	if chapters[0].ID != "01-intro" || chapters[1].ID != "02-sensors" {
		t.Errorf("chapters out of order: %+v", chapters)
	}
	if chapters[0].Title != "Introduction" {
		t.Errorf("front matter must be skipped when finding the title, got %q", chapters[0].Title)
	}
	if chapters[2].Title != "03-notes" {
		t.Errorf("file name fallback expected, got %q", chapters[2].Title)
	}
	for i, ch := range chapters {
		if ch.Week != i+1 {
			t.Errorf("chapter %s: expected week %d, got %d", ch.ID, i+1, ch.Week)
		}
	}
}

func TestLoad_NestedDirsAndContent(t *testing.T) {
	dir := t.TempDir()
	writeChapter(t, dir, "week1/intro.md", "# Week One\n\nhello")

	lib, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	ch, ok := lib.ByID("week1/intro")
	if !ok {
		t.Fatal("expected to find week1/intro")
	}
	content, err := lib.Content(ch)
	if err != nil {
		t.Fatalf("Content failed: %v", err)
	}
	if content != "# Week One\n\nhello" {
		t.Errorf("unexpected content: %q", content)
	}
}

func TestLoad_EmptyDirFails(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Error("expected an error for a directory without chapters")
	}
}
