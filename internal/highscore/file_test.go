package highscore

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func newTestFile(t *testing.T) *File {
	t.Helper()
	f, err := NewFile(filepath.Join(t.TempDir(), "high_score.txt"))
	if err != nil {
		t.Fatalf("NewFile() failed: %v", err)
	}
	return f
}

func TestLoadMissingFile(t *testing.T) {
	f := newTestFile(t)
	if got := f.Load(); got != 0 {
		t.Errorf("Load() on missing file = %d, expected 0", got)
	}
}

func TestLoadContents(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{"plain", "150", 150},
		{"trailing newline", "230\n", 230},
		{"surrounding spaces", "  42 \r\n", 42},
		{"empty", "", 0},
		{"garbage", "lots", 0},
		{"float", "12.5", 0},
		{"negative", "-10", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestFile(t)
			if err := os.WriteFile(f.Path(), []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}
			if got := f.Load(); got != tc.want {
				t.Errorf("Load() = %d, expected %d", got, tc.want)
			}
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	f := newTestFile(t)

	if err := f.Save(340); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if got := f.Load(); got != 340 {
		t.Errorf("Load() = %d, expected 340", got)
	}

	data, err := os.ReadFile(f.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "340" {
		t.Errorf("file content = %q, expected a bare integer", data)
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	f, err := NewFile(filepath.Join(t.TempDir(), "nested", "dir", "high_score.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Save(10); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if got := f.Load(); got != 10 {
		t.Errorf("Load() = %d, expected 10", got)
	}
}

func TestSaveFailure(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the parent directory should be.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := NewFile(filepath.Join(blocker, "high_score.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Save(10); err == nil {
		t.Error("Save() should fail when the directory cannot be created")
	}
	if got := f.Load(); got != 0 {
		t.Errorf("Load() = %d, expected 0", got)
	}
}

func TestNewFileExpandsHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	f, err := NewFile("~/.snake/high_score.txt")
	if err != nil {
		t.Fatalf("NewFile() failed: %v", err)
	}
	if !strings.HasPrefix(f.Path(), home) || strings.Contains(f.Path(), "~") {
		t.Errorf("Path() = %q, expected it under %q", f.Path(), home)
	}
}

func TestNewFileKeepsOtherUserPaths(t *testing.T) {
	f, err := NewFile("~bob/high_score.txt")
	if err != nil {
		t.Fatalf("NewFile() failed: %v", err)
	}
	if f.Path() != "~bob/high_score.txt" {
		t.Errorf("Path() = %q, expected ~bob/ to stay unexpanded", f.Path())
	}
}

func TestConcurrentSaves(t *testing.T) {
	f := newTestFile(t)

	var wg sync.WaitGroup
	for i := 1; i <= 20; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			f.Save(score)
		}(i * 10)
	}
	wg.Wait()

	got := f.Load()
	if got < 10 || got > 200 || got%10 != 0 {
		t.Errorf("Load() after concurrent saves = %d, expected one of the written values", got)
	}
}
