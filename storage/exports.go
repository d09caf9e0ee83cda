package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gambol/conversation"
	"gambol/model"
	"gambol/prompt"

	"github.com/google/uuid"
)

// ErrExportNotFound is returned by Load for an unknown export ID.
var ErrExportNotFound = errors.New("export not found")

// Message represents a chat message
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Export is a saved copy of one coaching conversation
type Export struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Model       string    `json:"model"`
	CreatedAt   time.Time `json:"created_at"`
	State       string    `json:"state"`
	HandHistory string    `json:"hand_history,omitempty"`
	HandState   string    `json:"hand_state,omitempty"`
	Probability float64   `json:"probability,omitempty"`
	Strategy    string    `json:"strategy,omitempty"`
	Messages    []Message `json:"messages"`
}

// ExportMetadata is a lightweight version of Export for listing
type ExportMetadata struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Model        string    `json:"model"`
	CreatedAt    time.Time `json:"created_at"`
	MessageCount int       `json:"message_count"`
	Path         string    `json:"path"`
}

// FromSession snapshots a conversation for export. Only the visible transcript
// is kept; the model-facing history stays private to the session.
func FromSession(s *conversation.Session, modelName string) *Export {
	e := &Export{
		Model:       modelName,
		State:       s.State.String(),
		HandHistory: s.HandHistory,
		HandState:   s.HandState,
		Probability: s.Probability,
		Strategy:    s.Strategy,
		Messages:    make([]Message, 0, len(s.Transcript)),
	}
	for _, m := range s.Transcript {
		e.Messages = append(e.Messages, Message{Role: m.Role, Content: m.Content, Timestamp: m.Timestamp})
	}
	e.Name = GenerateExportName(s.HandHistory)
	return e
}

// ExportStorage writes exports under a single directory
type ExportStorage struct {
	exportDir string
}

// NewExportStorage creates the export directory if needed
func NewExportStorage(exportDir string) (*ExportStorage, error) {
	// 0700 - exports contain the user's hands and conversation
	if err := os.MkdirAll(exportDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	return &ExportStorage{
		exportDir: exportDir,
	}, nil
}

// Dir returns the export directory
func (s *ExportStorage) Dir() string {
	return s.exportDir
}

// Save writes the export as JSON and Markdown side by side and returns the
// Markdown path.
func (s *ExportStorage) Save(e *Export) (string, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	base := filepath.Join(s.exportDir, fmt.Sprintf("%s-%s", e.CreatedAt.Format("20060102-150405"), e.ID))

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal export: %w", err)
	}
	if err := os.WriteFile(base+".json", data, 0600); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	mdPath := base + ".md"
	if err := os.WriteFile(mdPath, []byte(RenderMarkdown(e)), 0600); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return mdPath, nil
}

// Load reads an export by ID
func (s *ExportStorage) Load(id string) (*Export, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrExportNotFound, id)
	}
	matches, err := filepath.Glob(filepath.Join(s.exportDir, "*-"+id+".json"))
	if err != nil {
		return nil, fmt.Errorf("failed to search exports: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrExportNotFound, id)
	}

	data, err := os.ReadFile(matches[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read export file: %w", err)
	}

	var e Export
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, fmt.Errorf("failed to unmarshal export: %w", err)
	}

	return &e, nil
}

// List returns metadata for all exports, newest first
func (s *ExportStorage) List() ([]ExportMetadata, error) {
	entries, err := os.ReadDir(s.exportDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read export directory: %w", err)
	}

	var exports []ExportMetadata

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(s.exportDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue // Skip unreadable files
		}

		var e Export
		if err := json.Unmarshal(data, &e); err != nil {
			continue // Skip corrupted files
		}

		exports = append(exports, ExportMetadata{
			ID:           e.ID,
			Name:         e.Name,
			Model:        e.Model,
			CreatedAt:    e.CreatedAt,
			MessageCount: len(e.Messages),
			Path:         path,
		})
	}

	sort.Slice(exports, func(i, j int) bool {
		return exports[i].CreatedAt.After(exports[j].CreatedAt)
	})

	return exports, nil
}

// RenderMarkdown formats an export as a readable Markdown document
func RenderMarkdown(e *Export) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", e.Name)
	fmt.Fprintf(&b, "- Exported: %s\n", e.CreatedAt.Format(time.RFC1123))
	if e.Model != "" {
		fmt.Fprintf(&b, "- Model: %s\n", e.Model)
	}
	fmt.Fprintf(&b, "- State: %s\n", e.State)

	if e.Strategy != "" {
		userHand, board := prompt.SplitHandState(e.HandState)
		b.WriteString("\n## Hand\n\n")
		fmt.Fprintf(&b, "%s\n\n", e.HandHistory)
		fmt.Fprintf(&b, "- **USER'S HAND**: %s\n", userHand)
		if board != "" {
			fmt.Fprintf(&b, "- **BOARD STATE**: %s\n", board)
		}
		fmt.Fprintf(&b, "- Probability: %s\n", prompt.FormatProbability(e.Probability))
		b.WriteString("\n### GTO strategy\n\n")
		b.WriteString(e.Strategy)
		b.WriteString("\n")
	}

	b.WriteString("\n## Conversation\n")
	for _, m := range e.Messages {
		speaker := "You"
		if m.Role == model.RoleAssistant {
			speaker = "Gambol"
		}
		fmt.Fprintf(&b, "\n**%s**", speaker)
		if !m.Timestamp.IsZero() {
			fmt.Fprintf(&b, " _(%s)_", m.Timestamp.Format("15:04"))
		}
		fmt.Fprintf(&b, "\n\n%s\n", m.Content)
	}

	return b.String()
}

// GenerateExportName names an export after its hand history
func GenerateExportName(handHistory string) string {
	name := strings.TrimSpace(strings.NewReplacer("\n", " ", "\r", " ").Replace(handHistory))
	if name == "" {
		return fmt.Sprintf("Gambol session %s", time.Now().Format("Jan 2, 3:04 PM"))
	}

	if runes := []rune(name); len(runes) > 40 {
		name = strings.TrimSpace(string(runes[:40])) + "..."
	}

	return name
}
