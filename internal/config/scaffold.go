package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SnapshotDir is where `gridwork snapshot` writes images by default.
const SnapshotDir = "snapshots"

// ScaffoldProject prepares dir for gridwork. It creates gridwork.toml, the
// snapshots/ directory, and makes sure .gitignore excludes snapshots and log
// files. Files that already exist are left untouched. Returns the list of
// created or updated paths.
func ScaffoldProject(dir string) ([]string, error) {
	var created []string

	// gridwork.toml
	tomlPath := filepath.Join(dir, FileName)
	if _, err := os.Stat(tomlPath); os.IsNotExist(err) {
		if _, initErr := InitFile(dir); initErr != nil {
			return created, initErr
		}
		created = append(created, tomlPath)
	}

	// snapshots/ directory
	snapDir := filepath.Join(dir, SnapshotDir)
	if _, err := os.Stat(snapDir); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(snapDir, 0755); mkErr != nil {
			return created, fmt.Errorf("scaffold: create %s: %w", snapDir, mkErr)
		}
		created = append(created, snapDir)
	}

	// .gitignore
	gitignorePath := filepath.Join(dir, ".gitignore")
	existing, err := os.ReadFile(gitignorePath)
	if err != nil && !os.IsNotExist(err) {
		return created, fmt.Errorf("scaffold: read %s: %w", gitignorePath, err)
	}
	content := string(existing)
	changed := false
	for _, entry := range gitignoreEntries {
		if containsLine(content, entry) {
			continue
		}
		if len(content) > 0 && content[len(content)-1] != '\n' {
			content += "\n"
		}
		content += entry + "\n"
		changed = true
	}
	if changed {
		if writeErr := os.WriteFile(gitignorePath, []byte(content), 0644); writeErr != nil {
			return created, fmt.Errorf("scaffold: write %s: %w", gitignorePath, writeErr)
		}
		created = append(created, gitignorePath)
	}

	return created, nil
}

var gitignoreEntries = []string{SnapshotDir + "/", "*.log"}

func containsLine(content, line string) bool {
	for _, l := range strings.Split(content, "\n") {
		if strings.TrimSpace(l) == line {
			return true
		}
	}
	return false
}
