package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"statadvisor/internal/knowledge"
)

// ErrScaffoldExists indicates a scaffold target already exists.
var ErrScaffoldExists = errors.New("file already exists")

// ScaffoldResult lists the files written by Scaffold.
type ScaffoldResult struct {
	ConfigPath        string
	KnowledgeBasePath string
}

// Scaffold writes a config file and a copy of the embedded knowledge base
// under root/.statadvisor. Existing files are only replaced when overwrite
// is set.
func Scaffold(root string, overwrite bool) (ScaffoldResult, error) {
	if root == "" {
		return ScaffoldResult{}, fmt.Errorf("scaffold root is required")
	}
	dir := ConfigDir(root)
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		return ScaffoldResult{}, fmt.Errorf("config directory %q is not a directory", dir)
	}
	result := ScaffoldResult{
		ConfigPath:        filepath.Join(dir, ConfigFileName),
		KnowledgeBasePath: filepath.Join(dir, KnowledgeBaseFileName),
	}
	if !overwrite {
		for _, path := range []string{result.ConfigPath, result.KnowledgeBasePath} {
			if err := checkAbsent(path); err != nil {
				return ScaffoldResult{}, err
			}
		}
	}

	content, err := renderScaffoldConfig(ScaffoldOptions{
		KnowledgeBase: KnowledgeBaseFileName,
		LogPath:       "advisor.log",
	})
	if err != nil {
		return ScaffoldResult{}, fmt.Errorf("render config: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ScaffoldResult{}, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(result.ConfigPath, []byte(content), 0o644); err != nil {
		return ScaffoldResult{}, fmt.Errorf("write config file: %w", err)
	}
	if err := os.WriteFile(result.KnowledgeBasePath, knowledge.DefaultDocument(), 0o644); err != nil {
		return ScaffoldResult{}, fmt.Errorf("write knowledge base: %w", err)
	}
	return result, nil
}

// ScaffoldTargetsExist reports whether any scaffold file is already present.
func ScaffoldTargetsExist(root string) bool {
	dir := ConfigDir(root)
	for _, name := range []string{ConfigFileName, KnowledgeBaseFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

func checkAbsent(path string) error {
	info, err := os.Stat(path)
	if err == nil {
		if info.IsDir() {
			return fmt.Errorf("scaffold path %q is a directory", path)
		}
		return fmt.Errorf("%w at %q", ErrScaffoldExists, path)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat %q: %w", path, err)
	}
	return nil
}
