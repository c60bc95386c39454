// Package storage persists tutoring session transcripts under the data
// directory, one directory per session.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sakibmehfuz10-bot/Socratica/internal/llm"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type SessionMetadata struct {
	ID        string    `json:"id"`
	Mode      string    `json:"mode"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	StartedAt time.Time `json:"started_at"`
	Turns     int       `json:"turns"`
}

// Turn is one persisted conversation turn. Media parts are flattened
// to a placeholder; transcripts are text.
type Turn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Save writes a session transcript and returns its id.
func (s *Store) Save(mode, provider, model string, startedAt time.Time, messages []llm.Message) (string, error) {
	// Nanosecond ids keep back-to-back saves from colliding.
	sessionID := fmt.Sprintf("session_%d", time.Now().UnixNano())
	dir := filepath.Join(s.baseDir, sessionID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	meta := SessionMetadata{
		ID:        sessionID,
		Mode:      mode,
		Provider:  provider,
		Model:     model,
		StartedAt: startedAt,
		Turns:     len(messages),
	}
	if err := writeJSON(filepath.Join(dir, "metadata.json"), meta); err != nil {
		return "", err
	}

	turns := make([]Turn, len(messages))
	for i, m := range messages {
		turns[i] = Turn{Role: m.Role, Text: flatten(m)}
	}
	if err := writeJSON(filepath.Join(dir, "transcript.json"), turns); err != nil {
		return "", err
	}
	return sessionID, nil
}

// List returns saved session metadata, newest first.
func (s *Store) List() ([]SessionMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var sessions []SessionMetadata
	for _, e := range entries {
		if !e.IsDir() || !strings.HasPrefix(e.Name(), "session_") {
			continue
		}
		var meta SessionMetadata
		if err := readJSON(filepath.Join(s.baseDir, e.Name(), "metadata.json"), &meta); err != nil {
			continue
		}
		sessions = append(sessions, meta)
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})
	return sessions, nil
}

// Load reads one session's metadata and transcript.
func (s *Store) Load(sessionID string) (SessionMetadata, []Turn, error) {
	dir := filepath.Join(s.baseDir, sessionID)
	var meta SessionMetadata
	if err := readJSON(filepath.Join(dir, "metadata.json"), &meta); err != nil {
		return SessionMetadata{}, nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	var turns []Turn
	if err := readJSON(filepath.Join(dir, "transcript.json"), &turns); err != nil {
		return SessionMetadata{}, nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	return meta, turns, nil
}

// ExportMarkdown renders a saved session as a markdown transcript.
// Plot directives are left inline so the document stays replayable.
func (s *Store) ExportMarkdown(sessionID string) (string, error) {
	meta, turns, err := s.Load(sessionID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Tutoring session %s\n\n", meta.ID)
	fmt.Fprintf(&sb, "- started: %s\n", meta.StartedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&sb, "- mode: %s\n", meta.Mode)
	fmt.Fprintf(&sb, "- model: %s (%s)\n\n", meta.Model, meta.Provider)
	for _, t := range turns {
		speaker := "Student"
		if t.Role == "assistant" {
			speaker = "Tutor"
		}
		fmt.Fprintf(&sb, "**%s:** %s\n\n", speaker, strings.TrimSpace(t.Text))
	}
	return sb.String(), nil
}

func flatten(m llm.Message) string {
	var sb strings.Builder
	for _, p := range m.Parts {
		switch part := p.(type) {
		case llm.TextPart:
			sb.WriteString(part.Text)
		case llm.MediaPart:
			fmt.Fprintf(&sb, "[attached %s]", part.MIMEType)
		}
	}
	return sb.String()
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
