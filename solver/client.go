// Package solver talks to the external GTO solving service.
//
// The service exposes a single endpoint, POST /process, which takes a hand
// history and answers with the strategy distribution for the hero's next
// decision, a short hand-state annotation and the probability of the action
// sequence under GTO play.
package solver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gambol/config"
	"gambol/prompt"
)

const (
	DefaultURL     = "http://localhost:5000"
	DefaultTimeout = 60 * time.Second

	processPath = "/process"

	// maxErrorBody caps how much of a failed response is kept in the error.
	maxErrorBody = 512
)

// ErrNoStrategy is returned when the solver answered but gave no usable strategy.
var ErrNoStrategy = errors.New("solver returned no strategy")

// Result is one solved hand.
type Result struct {
	Strategy    string
	HandState   string
	Probability float64
	InfoSet     string
}

type processRequest struct {
	TextInput string `json:"text_input"`
}

type processResponse struct {
	StrategyStr  string  `json:"strategy_str"`
	HandStateStr string  `json:"hand_state_str"`
	Prob         float64 `json:"prob"`
	InfoSet      string  `json:"info_set,omitempty"`
}

// Client calls the solver over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient returns a client for the solver at baseURL. Empty values fall back
// to DefaultURL and DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the solver address without trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Solve sends one hand history to the solver. Exactly one HTTP request is made;
// there are no retries.
func (c *Client) Solve(ctx context.Context, handHistory string) (*Result, error) {
	body, err := json.Marshal(processRequest{TextInput: handHistory})
	if err != nil {
		return nil, fmt.Errorf("failed to encode solver request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+processPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build solver request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("solver request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, fmt.Errorf("solver returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out processResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode solver response: %w", err)
	}

	if config.DebugLog != nil {
		config.DebugLog.Printf("[Solver] POST %s took %s (prob=%g, strategy=%d bytes)",
			processPath, time.Since(start).Round(time.Millisecond), out.Prob, len(out.StrategyStr))
	}

	if strings.TrimSpace(out.StrategyStr) == "" {
		return nil, ErrNoStrategy
	}

	// A malformed distribution is still passed on; only an empty one means unsolved
	if err := prompt.CheckStrategy(out.StrategyStr); err != nil && config.DebugLog != nil {
		config.DebugLog.Printf("[Solver] Warning: unexpected strategy shape: %v", err)
	}

	return &Result{
		Strategy:    out.StrategyStr,
		HandState:   out.HandStateStr,
		Probability: out.Prob,
		InfoSet:     out.InfoSet,
	}, nil
}
