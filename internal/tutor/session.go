// Package tutor drives a Socratic tutoring conversation over a model
// client.
package tutor

import (
	"context"
	"time"

	"github.com/sakibmehfuz10-bot/Socratica/internal/llm"
)

// Session is one tutoring conversation: the mode, the transcript so
// far, and the client used to extend it.
type Session struct {
	client   llm.Client
	mode     Mode
	messages []llm.Message
	started  time.Time
}

func NewSession(client llm.Client, mode Mode) *Session {
	return &Session{client: client, mode: mode, started: time.Now()}
}

// Ask sends a text turn and returns the tutor's reply. On failure the
// turn is rolled back so a retry starts from a clean transcript.
func (s *Session) Ask(ctx context.Context, text string) (string, error) {
	return s.send(ctx, llm.TextMessage("user", text))
}

// AskWithImage sends a text turn with an attached image, e.g. a
// photographed worksheet.
func (s *Session) AskWithImage(ctx context.Context, text, mimeType string, data []byte) (string, error) {
	msg := llm.Message{Role: "user", Parts: []llm.Part{
		llm.TextPart{Text: text},
		llm.MediaPart{MIMEType: mimeType, Data: data},
	}}
	return s.send(ctx, msg)
}

func (s *Session) send(ctx context.Context, msg llm.Message) (string, error) {
	s.messages = append(s.messages, msg)
	reply, err := s.client.Complete(ctx, SystemPrompt(s.mode), s.messages)
	if err != nil {
		s.messages = s.messages[:len(s.messages)-1]
		return "", err
	}
	s.messages = append(s.messages, llm.TextMessage("assistant", reply))
	return reply, nil
}

// Messages returns the transcript so far.
func (s *Session) Messages() []llm.Message { return s.messages }

// Mode returns the session's conversational mode.
func (s *Session) Mode() Mode { return s.mode }

// Started returns when the session began.
func (s *Session) Started() time.Time { return s.started }

// SetMode switches the conversational stance mid-session.
func (s *Session) SetMode(m Mode) { s.mode = m }
