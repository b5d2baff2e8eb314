package snake

import "sync"

// HighScores persists the best score across sessions.
// Load never fails: a missing or unreadable record counts as zero.
type HighScores interface {
	Load() int
	Save(score int) error
}

// SharedScores is a HighScores written by several games at once. Raise saves
// score only if it beats the stored best and returns the best afterwards.
// raised is true whenever score beat the stored best, even if saving failed.
type SharedScores interface {
	HighScores
	Raise(score int) (best int, raised bool, err error)
}

// MemoryScores keeps the best score in memory only. It is used when no
// persistent store is configured and in tests.
type MemoryScores struct {
	mu    sync.Mutex
	best  int
	saves int
}

// NewMemoryScores creates an in-memory store seeded with best.
func NewMemoryScores(best int) *MemoryScores {
	return &MemoryScores{best: best}
}

// Load returns the stored best score.
func (m *MemoryScores) Load() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best
}

// Save replaces the stored best score.
func (m *MemoryScores) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = score
	m.saves++
	return nil
}

// Saves returns how many times Save was called.
func (m *MemoryScores) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
