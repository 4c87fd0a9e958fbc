package config

// Config is the advisor configuration file schema.
type Config struct {
	Version       int       `yaml:"version"`
	KnowledgeBase string    `yaml:"knowledge_base,omitempty"`
	UI            string    `yaml:"ui,omitempty"`
	NoColor       bool      `yaml:"no_color,omitempty"`
	Log           LogConfig `yaml:"log,omitempty"`
}

// LogConfig configures the session log file.
type LogConfig struct {
	Path  string `yaml:"path,omitempty"`
	Level string `yaml:"level,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	return Config{Version: 1, UI: UIAuto, Log: LogConfig{Level: "info"}}
}

// UI modes accepted by the ui field.
const (
	UIAuto  = "auto"
	UILive  = "live"
	UIPlain = "plain"
)
