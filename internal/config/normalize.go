package config

import (
	"path/filepath"
	"strings"
)

// Normalize trims values and fills defaults.
func Normalize(cfg *Config) {
	cfg.KnowledgeBase = strings.TrimSpace(cfg.KnowledgeBase)
	cfg.UI = strings.ToLower(strings.TrimSpace(cfg.UI))
	if cfg.UI == "" {
		cfg.UI = UIAuto
	}
	cfg.Log.Path = strings.TrimSpace(cfg.Log.Path)
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
}

// Resolve makes relative file paths absolute against baseDir.
func Resolve(cfg *Config, baseDir string) {
	cfg.KnowledgeBase = resolvePath(baseDir, cfg.KnowledgeBase)
	cfg.Log.Path = resolvePath(baseDir, cfg.Log.Path)
}

func resolvePath(baseDir, value string) string {
	if value == "" || filepath.IsAbs(value) {
		return value
	}
	return filepath.Join(baseDir, value)
}
