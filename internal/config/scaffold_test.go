package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestScaffoldProject(t *testing.T) {
	t.Run("creates all files in empty directory", func(t *testing.T) {
		dir := t.TempDir()

		created, err := ScaffoldProject(dir)
		if err != nil {
			t.Fatal(err)
		}

		expected := []string{
			filepath.Join(dir, "gridwork.toml"),
			filepath.Join(dir, "snapshots"),
			filepath.Join(dir, ".gitignore"),
		}
		if len(created) != len(expected) {
			t.Fatalf("created %d files, want %d: %v", len(created), len(expected), created)
		}
		for i, want := range expected {
			if created[i] != want {
				t.Errorf("created[%d] = %q, want %q", i, created[i], want)
			}
		}

		info, err := os.Stat(filepath.Join(dir, "snapshots"))
		if err != nil {
			t.Fatalf("snapshots dir: %v", err)
		}
		if !info.IsDir() {
			t.Error("snapshots should be a directory")
		}

		content, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
		if err != nil {
			t.Fatalf(".gitignore: %v", err)
		}
		for _, entry := range []string{"snapshots/", "*.log"} {
			if !strings.Contains(string(content), entry) {
				t.Errorf(".gitignore should contain %s", entry)
			}
		}
	})

	t.Run("skips existing files", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "gridwork.toml"), []byte("existing"), 0644); err != nil {
			t.Fatal(err)
		}

		created, err := ScaffoldProject(dir)
		if err != nil {
			t.Fatal(err)
		}
		expected := []string{
			filepath.Join(dir, "snapshots"),
			filepath.Join(dir, ".gitignore"),
		}
		if len(created) != len(expected) {
			t.Fatalf("created %d files, want %d: %v", len(created), len(expected), created)
		}

		content, err := os.ReadFile(filepath.Join(dir, "gridwork.toml"))
		if err != nil {
			t.Fatal(err)
		}
		if string(content) != "existing" {
			t.Error("gridwork.toml was overwritten")
		}
	})

	t.Run("all files exist returns empty list", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "gridwork.toml"), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := os.Mkdir(filepath.Join(dir, "snapshots"), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("snapshots/\n*.log\n"), 0644); err != nil {
			t.Fatal(err)
		}

		created, err := ScaffoldProject(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(created) != 0 {
			t.Errorf("expected nothing created, got %v", created)
		}
	})

	t.Run("appends to existing gitignore without trailing newline", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte("node_modules/\n*.log"), 0644); err != nil {
			t.Fatal(err)
		}

		if _, err := ScaffoldProject(dir); err != nil {
			t.Fatal(err)
		}
		content, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
		if err != nil {
			t.Fatal(err)
		}
		want := "node_modules/\n*.log\nsnapshots/\n"
		if string(content) != want {
			t.Errorf(".gitignore = %q, want %q", string(content), want)
		}
	})
}
