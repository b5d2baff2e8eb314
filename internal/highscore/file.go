// Package highscore persists the best score as a single decimal integer in
// a plain-text file.
package highscore

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/snake"
)

// DefaultPath is where the high score lives when nothing else is configured.
const DefaultPath = "~/.snake/high_score.txt"

// File stores the high score in a text file. It is safe for concurrent use,
// so SSH sessions can share one file.
type File struct {
	mu   sync.Mutex
	path string
}

var _ snake.HighScores = (*File)(nil)

// NewFile returns a store for path. A leading ~/ is expanded to the home
// directory.
func NewFile(path string) (*File, error) {
	if path == "" {
		path = DefaultPath
	}
	path, err := core.ExpandHome(path)
	if err != nil {
		return nil, fmt.Errorf("highscore: cannot expand home directory: %w", err)
	}
	return &File{path: path}, nil
}

// Path returns the resolved file path.
func (f *File) Path() string {
	return f.path
}

// Load reads the stored score. A missing, unreadable or malformed file
// yields 0.
func (f *File) Load() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Debug("high score unreadable", "path", f.path, "err", err)
		}
		return 0
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || score < 0 {
		log.Debug("high score malformed", "path", f.path, "content", strings.TrimSpace(string(data)))
		return 0
	}
	return score
}

// Save overwrites the file with score, creating the parent directory if
// needed.
func (f *File) Save(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("highscore: cannot write %s: %w", f.path, err)
	}
	return nil
}
