package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveDefaultsWithoutFile(t *testing.T) {
	resolved, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if resolved.Width != 800 || resolved.Height != 600 {
		t.Errorf("expected default surface 800x600, got %vx%v", resolved.Width, resolved.Height)
	}
	if resolved.Title != "proxydump" {
		t.Errorf("expected default title, got %q", resolved.Title)
	}
	if !resolved.Toolbar {
		t.Error("expected the toolbar to default on")
	}
}

func TestResolveReadsFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("surface:\n  width: 1024\n  height: 768\nwindow:\n  title: Demo\n  toolbar: false\n  tabs: [a, b]\n")
	if err := os.WriteFile(filepath.Join(dir, "proxydump.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	resolved, err := Resolve(dir)
	if err != nil {
		t.Fatal(err)
	}
	if resolved.Width != 1024 || resolved.Height != 768 {
		t.Errorf("expected 1024x768, got %vx%v", resolved.Width, resolved.Height)
	}
	if resolved.Title != "Demo" {
		t.Errorf("expected title Demo, got %q", resolved.Title)
	}
	if resolved.Toolbar {
		t.Error("expected the toolbar to be disabled")
	}
	if len(resolved.Tabs) != 2 {
		t.Errorf("expected two tabs, got %v", resolved.Tabs)
	}
}

func TestResolveRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "proxydump.yaml"), []byte(":\tnot yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(dir); err == nil {
		t.Error("expected a parse error")
	}
}
