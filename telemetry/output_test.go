package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"habitat/config"
)

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}
	if om != nil {
		t.Fatal("empty dir should disable output")
	}

	// A nil manager must be safe to use.
	if err := om.WriteWindow(WindowStats{}); err != nil {
		t.Errorf("nil WriteWindow = %v", err)
	}
	if err := om.WriteConfig(config.Default()); err != nil {
		t.Errorf("nil WriteConfig = %v", err)
	}
	if err := om.Close(); err != nil {
		t.Errorf("nil Close = %v", err)
	}
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}

	if err := om.WriteWindow(WindowStats{WindowEnd: 10, Hares: 5}); err != nil {
		t.Fatalf("first WriteWindow failed: %v", err)
	}
	if err := om.WriteWindow(WindowStats{WindowEnd: 20, Hares: 7}); err != nil {
		t.Fatalf("second WriteWindow failed: %v", err)
	}
	if err := om.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "stats.csv"))
	if err != nil {
		t.Fatalf("reading stats.csv: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Fatalf("stats.csv has %d lines, want header plus two records", len(lines))
	}
	if !strings.Contains(lines[0], "window_end") {
		t.Errorf("header %q missing window_end column", lines[0])
	}
	if strings.Contains(lines[1], "window_end") {
		t.Error("header repeated in record rows")
	}
}

func TestOutputManagerWritesConfig(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	if err != nil {
		t.Fatalf("NewOutputManager failed: %v", err)
	}
	defer om.Close()

	if err := om.WriteConfig(config.Default()); err != nil {
		t.Fatalf("WriteConfig failed: %v", err)
	}
	if _, err := config.Load(filepath.Join(dir, "config.yaml")); err != nil {
		t.Errorf("written config does not load back: %v", err)
	}
}
