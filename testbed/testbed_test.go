package testbed

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunBuiltinGraph(t *testing.T) {
	tb, err := New("")
	if err != nil {
		t.Fatalf("New(\"\") failed: %v", err)
	}
	defer tb.Close()

	if err := tb.Run(3); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	// Built-in graph runs two passes per frame.
	if got := tb.device.RenderPassCount(); got != 6 {
		t.Errorf("pass counter = %d, want 6", got)
	}
}

func TestRunFromConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.toml")
	if err := os.WriteFile(path, []byte(defaultConfig), 0o644); err != nil {
		t.Fatal(err)
	}

	tb, err := New(path)
	if err != nil {
		t.Fatalf("New(%q) failed: %v", path, err)
	}
	defer tb.Close()

	if err := tb.Run(1); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
}

func TestNewRejectsBrokenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.toml")
	if err := os.WriteFile(path, []byte("[[passes"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := New(path); err == nil {
		t.Error("New() accepted a broken config")
	}
}
