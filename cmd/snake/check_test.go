package main

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

func TestSmokeTest(t *testing.T) {
	if err := smokeTest(); err != nil {
		t.Fatalf("smokeTest() = %v", err)
	}
}

func TestCheckHighScoreWrite(t *testing.T) {
	r := checkHighScoreWrite(t.TempDir())
	if r.Status != checkOK {
		t.Errorf("status = %d, detail %q", r.Status, r.Detail)
	}
}

func TestCheckConfig(t *testing.T) {
	r := checkConfig(config.Default())
	if r.Status != checkOK {
		t.Errorf("default config: status = %d, detail %q", r.Status, r.Detail)
	}
	if !strings.Contains(r.Detail, "40x30") {
		t.Errorf("detail %q should mention the grid", r.Detail)
	}

	bad := config.Default()
	bad.Grid.Width = 1
	if r := checkConfig(bad); r.Status != checkFail {
		t.Errorf("bad config: status = %d, want fail", r.Status)
	}
}

func TestCheckDatabase(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Database = filepath.Join(t.TempDir(), "history.db")

	if r := checkDatabase(cfg); r.Status != checkOK {
		t.Errorf("status = %d, detail %q", r.Status, r.Detail)
	}

	cfg.Storage.History = false
	if r := checkDatabase(cfg); r.Status != checkWarn {
		t.Errorf("disabled history: status = %d, want warn", r.Status)
	}
}

func TestCheckHighScore(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.HighScoreFile = filepath.Join(t.TempDir(), "high_score.txt")

	r := checkHighScore(cfg)
	if r.Status != checkOK {
		t.Fatalf("status = %d, detail %q", r.Status, r.Detail)
	}
	if !strings.HasPrefix(r.Detail, "0 ") {
		t.Errorf("detail = %q, want missing file to read as 0", r.Detail)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"alice", 12, "alice"},
		{"abcdefghijklmnop", 12, "abcdefghijk…"},
		{"twelve_chars", 12, "twelve_chars"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := truncate(tt.in, tt.n); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
		})
	}
}
