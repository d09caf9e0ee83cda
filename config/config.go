package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type SolverConfig struct {
	URL            string `toml:"url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type LLMConfig struct {
	Provider string `toml:"provider"`
	BaseURL  string `toml:"base_url,omitempty"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key,omitempty"`
}

type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Settings is the on-disk shape of settings.toml.
type Settings struct {
	DataDirectory string       `toml:"data_directory"`
	Solver        SolverConfig `toml:"solver"`
	LLM           LLMConfig    `toml:"llm"`
	Server        ServerConfig `toml:"server"`
}

type Config struct {
	DataDirectory string
	SolverURL     string
	SolverTimeout time.Duration
	LLMProvider   string
	LLMBaseURL    string
	LLMModel      string
	LLMAPIKey     string
	ServerAddr    string
}

var Debug = false
var DebugLog *log.Logger

func (c *Config) DataDir() string {
	return ExpandPath(c.DataDirectory)
}

func (c *Config) ExportDir() string {
	return GetExportDir(c.DataDir())
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GAMBOL_DATA_DIR"); v != "" {
		c.DataDirectory = v
	}
	if v := os.Getenv("GAMBOL_SOLVER_URL"); v != "" {
		c.SolverURL = v
	}
	if v := os.Getenv("GAMBOL_LLM_PROVIDER"); v != "" {
		c.LLMProvider = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv("GAMBOL_LLM_BASE_URL"); v != "" {
		c.LLMBaseURL = v
	}
	if v := os.Getenv("GAMBOL_LLM_MODEL"); v != "" {
		c.LLMModel = v
	}
	if v := os.Getenv("GAMBOL_API_KEY"); v != "" {
		c.LLMAPIKey = v
	}
	if v := os.Getenv("GAMBOL_SERVER_ADDR"); v != "" {
		c.ServerAddr = v
	}
}

func CheckDebug() bool {
	debug := os.Getenv("GAMBOL_DEBUG")
	return debug == "true" || debug == "1"
}

func InitDebugLog(dataDir string) {
	if !CheckDebug() {
		return
	}

	Debug = true
	logPath := filepath.Join(dataDir, "debug.log")

	// 0600: hand histories and model replies end up in here
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (GAMBOL_DEBUG=%s) ===", os.Getenv("GAMBOL_DEBUG"))
	DebugLog.Printf("Log path: %s", logPath)
}

// FromSettings flattens the on-disk settings into a runtime Config,
// filling zero values from the defaults.
func FromSettings(s *Settings) *Config {
	d := DefaultSettings()

	cfg := &Config{
		DataDirectory: s.DataDirectory,
		SolverURL:     s.Solver.URL,
		LLMProvider:   strings.ToLower(strings.TrimSpace(s.LLM.Provider)),
		LLMBaseURL:    s.LLM.BaseURL,
		LLMModel:      s.LLM.Model,
		LLMAPIKey:     s.LLM.APIKey,
		ServerAddr:    s.Server.Addr,
	}
	if cfg.DataDirectory == "" {
		cfg.DataDirectory = d.DataDirectory
	}
	if cfg.SolverURL == "" {
		cfg.SolverURL = d.Solver.URL
	}
	timeout := s.Solver.TimeoutSeconds
	if timeout <= 0 {
		timeout = d.Solver.TimeoutSeconds
	}
	cfg.SolverTimeout = time.Duration(timeout) * time.Second
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = d.LLM.Provider
	}
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = d.Server.Addr
	}
	return cfg
}

func Load() (*Config, error) {
	settings, err := LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	cfg := FromSettings(settings)
	cfg.applyEnvOverrides()

	dataDir := cfg.DataDir()
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	if err := EnsureDataDirPermissions(dataDir); err != nil {
		return nil, fmt.Errorf("failed to set data directory permissions: %w", err)
	}

	return cfg, nil
}
