package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gambol/config"
	"gambol/conversation"
	"gambol/model"
	"gambol/provider"
	"gambol/server"
	"gambol/solver"
	"gambol/storage"
	"gambol/ui"
)

const (
	Version = "v0.01.00"

	sessionIdleLimit = 2 * time.Hour
	pruneInterval    = 10 * time.Minute
)

func main() {
	serve := flag.Bool("serve", false, "run the JSON HTTP API instead of the terminal chat")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("gambol", Version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fail(*serve, "configuration error", fmt.Sprintf("Failed to load config: %v", err), "Settings live in "+config.GetSettingsFilePath())
	}

	// Initialize debug logging after config is loaded
	config.InitDebugLog(cfg.DataDir())

	llm, err := provider.NewProvider(provider.Config{
		Type:     provider.MapProviderIDToType(cfg.LLMProvider),
		BaseURL:  cfg.LLMBaseURL,
		Model:    cfg.LLMModel,
		APIKey:   cfg.LLMAPIKey,
		Sampling: model.DeterministicSampling,
	})
	if err != nil {
		fail(*serve, "model provider error", err.Error(), "Check the [llm] section of "+config.GetSettingsFilePath())
	}

	solverClient := solver.NewClient(cfg.SolverURL, cfg.SolverTimeout)
	orchestrator := conversation.NewOrchestrator(solverClient, llm)

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Main] Provider %s model %s, solver %s", cfg.LLMProvider, llm.GetModel(), solverClient.BaseURL())
	}

	exports, err := storage.NewExportStorage(cfg.ExportDir())
	if err != nil {
		// Chat still works; export reports itself unavailable
		if config.DebugLog != nil {
			config.DebugLog.Printf("[Main] Export storage unavailable: %v", err)
		}
		exports = nil
	}

	if *serve {
		runServer(cfg, orchestrator, exports)
		return
	}

	p := tea.NewProgram(
		ui.NewAppView(orchestrator, exports),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running gambol: %v\n", err)
		os.Exit(1)
	}
}

func runServer(cfg *config.Config, orchestrator *conversation.Orchestrator, exports *storage.ExportStorage) {
	registry := server.NewRegistry()
	api := server.NewHTTPHandler(orchestrator, registry, exports)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux)

	go func() {
		ticker := time.NewTicker(pruneInterval)
		defer ticker.Stop()
		for range ticker.C {
			if n := registry.Prune(sessionIdleLimit); n > 0 {
				log.Printf("[Server] Pruned %d idle sessions (%d active)", n, registry.Len())
			}
		}
	}()

	log.Printf("[Server] Model: %s", orchestrator.Provider().GetDisplayName())
	log.Printf("[Server] Solver: %s", cfg.SolverURL)
	if exports != nil {
		log.Printf("[Server] Exports: %s", exports.Dir())
	}
	log.Printf("[Server] Starting HTTP server on %s", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, mux); err != nil {
		log.Fatalf("[Server] Failed to start: %v", err)
	}
}

// fail reports a startup error and exits. The terminal chat shows it in a modal;
// server mode logs it.
func fail(serve bool, title, message, hint string) {
	if serve {
		log.Fatalf("[Server] %s: %s (%s)", title, message, hint)
	}

	p := tea.NewProgram(
		ui.NewErrorModal(title, message, hint),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(1)
}
