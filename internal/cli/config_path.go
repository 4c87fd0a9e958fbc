package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"statadvisor/internal/config"
	"statadvisor/internal/knowledge"
)

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadKnowledgeBase loads the config (or defaults) and the knowledge base it
// points to. A --kb value overrides the config; with neither, the embedded
// base is used.
func loadKnowledgeBase(configPath, kbPath string) (*knowledge.Base, config.Config, error) {
	cfg, _, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, config.Config{}, err
	}
	path := strings.TrimSpace(kbPath)
	if path != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, cfg, fmt.Errorf("resolve knowledge base path: %w", err)
		}
		cfg.KnowledgeBase = abs
	}
	if cfg.KnowledgeBase == "" {
		base, err := knowledge.Default()
		return base, cfg, err
	}
	base, err := knowledge.Load(cfg.KnowledgeBase)
	return base, cfg, err
}
