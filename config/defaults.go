package config

func DefaultSettings() *Settings {
	return &Settings{
		DataDirectory: "~/.local/share/gambol",
		Solver: SolverConfig{
			URL:            "http://localhost:5000",
			TimeoutSeconds: 60,
		},
		LLM: LLMConfig{
			Provider: "ollama",
			BaseURL:  "http://localhost:11434",
			Model:    "llama3.1:latest",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

func GenerateSettingsTemplate() string {
	return `# Gambol Configuration
# Location: ~/.config/gambol/settings.toml
# This file uses TOML format: https://toml.io

# Directory for the debug log and transcript exports
data_directory = "~/.local/share/gambol"

[solver]
# Base URL of the strategy solver (POST /process)
url = "http://localhost:5000"

# Seconds to wait for a solve before giving up
timeout_seconds = 60

[llm]
# One of: ollama, openai, openrouter, anthropic
provider = "ollama"

# Leave empty to use the provider's default endpoint
base_url = "http://localhost:11434"

model = "llama3.1:latest"

# Required for openai, openrouter and anthropic (or set GAMBOL_API_KEY)
api_key = ""

[server]
# Listen address for gambol --serve
addr = ":8080"
`
}
