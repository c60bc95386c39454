package tutor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sakibmehfuz10-bot/Socratica/internal/llm"
)

type fakeClient struct {
	reply      string
	err        error
	lastSystem string
	calls      int
}

func (f *fakeClient) Complete(ctx context.Context, system string, messages []llm.Message) (string, error) {
	f.calls++
	f.lastSystem = system
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestAskExtendsTranscript(t *testing.T) {
	client := &fakeClient{reply: "What do you already know about slopes?"}
	s := NewSession(client, ModeSocratic)

	reply, err := s.Ask(context.Background(), "teach me derivatives")
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	if reply != client.reply {
		t.Errorf("reply = %q", reply)
	}

	msgs := s.Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != "user" || msgs[1].Role != "assistant" {
		t.Errorf("roles = %s, %s", msgs[0].Role, msgs[1].Role)
	}
	if msgs[1].Text() != client.reply {
		t.Errorf("assistant text = %q", msgs[1].Text())
	}
}

func TestAskRollsBackOnError(t *testing.T) {
	client := &fakeClient{err: errors.New("boom")}
	s := NewSession(client, ModeSocratic)

	if _, err := s.Ask(context.Background(), "hello"); err == nil {
		t.Fatal("expected error")
	}
	if len(s.Messages()) != 0 {
		t.Errorf("failed turn should be rolled back, transcript has %d messages", len(s.Messages()))
	}
}

func TestAskWithImage(t *testing.T) {
	client := &fakeClient{reply: "Walk me through your second line."}
	s := NewSession(client, ModeCheck)

	_, err := s.AskWithImage(context.Background(), "is this right?", "image/png", []byte{1, 2})
	if err != nil {
		t.Fatalf("ask failed: %v", err)
	}
	parts := s.Messages()[0].Parts
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if parts[0].Kind() != llm.PartText || parts[1].Kind() != llm.PartMedia {
		t.Errorf("part kinds = %v, %v", parts[0].Kind(), parts[1].Kind())
	}
}

func TestSystemPromptCarriesModeHint(t *testing.T) {
	client := &fakeClient{reply: "ok"}
	s := NewSession(client, ModeHint)

	if _, err := s.Ask(context.Background(), "q"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(client.lastSystem, "[PLOT:") {
		t.Error("system prompt should describe the plot directive")
	}
	if !strings.Contains(client.lastSystem, ModeHint.hint) {
		t.Error("system prompt should carry the mode stance")
	}
}

func TestModes(t *testing.T) {
	if GetMode("nonexistent").Name != "socratic" {
		t.Error("unknown mode should fall back to socratic")
	}
	if GetMode("check").Name != "check" {
		t.Error("lookup by name failed")
	}

	seen := map[string]bool{}
	for _, m := range Modes {
		if m.Accent == "" {
			t.Errorf("mode %s has no accent color", m.Name)
		}
		if seen[m.Accent] {
			t.Errorf("accent %s reused", m.Accent)
		}
		seen[m.Accent] = true
	}

	names := ModeNames()
	if len(names) != len(Modes) {
		t.Errorf("ModeNames length %d", len(names))
	}
}

func TestSetMode(t *testing.T) {
	s := NewSession(&fakeClient{reply: "ok"}, ModeSocratic)
	s.SetMode(ModeCheck)
	if s.Mode().Name != "check" {
		t.Errorf("mode = %s", s.Mode().Name)
	}
}
