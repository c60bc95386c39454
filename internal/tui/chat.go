// Package tui is the interactive tutoring chat interface.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sakibmehfuz10-bot/Socratica/internal/extract"
	"github.com/sakibmehfuz10-bot/Socratica/internal/plot"
	"github.com/sakibmehfuz10-bot/Socratica/internal/storage"
	"github.com/sakibmehfuz10-bot/Socratica/internal/tutor"
)

const askTimeout = 2 * time.Minute

type replyMsg struct {
	text string
	err  error
}

type spinMsg time.Time

var spinFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// ChatModel is the Bubble Tea model for a tutoring session.
type ChatModel struct {
	session  *tutor.Session
	store    *storage.Store
	provider string
	model    string

	blocks  []string // rendered conversation blocks, in order
	input   string
	waiting bool
	spin    int
	status  string
	width   int
	height  int
}

func NewChat(session *tutor.Session, store *storage.Store, provider, model string) ChatModel {
	return ChatModel{
		session:  session,
		store:    store,
		provider: provider,
		model:    model,
		width:    80,
		height:   24,
	}
}

func (m ChatModel) Init() tea.Cmd { return nil }

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case spinMsg:
		if !m.waiting {
			return m, nil
		}
		m.spin++
		return m, tick()
	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			m.blocks = append(m.blocks, errorPanel.Render(msg.err.Error()))
		} else {
			m.blocks = append(m.blocks, m.renderReply(msg.text))
		}
		return m, nil
	}
	return m, nil
}

func (m ChatModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "enter":
		text := strings.TrimSpace(m.input)
		if text == "" || m.waiting {
			return m, nil
		}
		m.blocks = append(m.blocks,
			studentLabel.Render("you")+"\n"+proseStyle.Render(text))
		m.input = ""
		m.waiting = true
		m.status = ""
		return m, tea.Batch(m.ask(text), tick())
	case "tab":
		if m.waiting {
			return m, nil
		}
		m.cycleMode()
		return m, nil
	case "ctrl+s":
		// The in-flight ask command owns the transcript until it
		// replies; saving now would race it and persist a half turn.
		if m.waiting {
			return m, nil
		}
		m.saveSession()
		return m, nil
	case "backspace":
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
		return m, nil
	case " ":
		m.input += " "
		return m, nil
	default:
		if msg.Type == tea.KeyRunes {
			m.input += string(msg.Runes)
		}
		return m, nil
	}
}

func (m *ChatModel) cycleMode() {
	names := tutor.ModeNames()
	current := m.session.Mode().Name
	for i, name := range names {
		if name == current {
			m.session.SetMode(tutor.GetMode(names[(i+1)%len(names)]))
			return
		}
	}
}

func (m *ChatModel) saveSession() {
	if len(m.session.Messages()) == 0 {
		m.status = "nothing to save yet"
		return
	}
	if err := m.store.Init(); err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	id, err := m.store.Save(m.session.Mode().Name, m.provider, m.model,
		m.session.Started(), m.session.Messages())
	if err != nil {
		m.status = "save failed: " + err.Error()
		return
	}
	m.status = "saved " + id
}

func (m ChatModel) ask(text string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
		defer cancel()
		reply, err := session.Ask(ctx, text)
		return replyMsg{text: reply, err: err}
	}
}

func tick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg { return spinMsg(t) })
}

// renderReply splits tutor output into prose and inline plots.
func (m ChatModel) renderReply(text string) string {
	accent := m.session.Mode().Accent
	var parts []string
	for _, seg := range extract.Split(text) {
		switch seg.Kind {
		case extract.KindText:
			parts = append(parts, proseStyle.Render(strings.TrimSpace(seg.Text)))
		case extract.KindPlot:
			if rendered := plot.Terminal(seg.Payload, accent); rendered != "" {
				parts = append(parts, rendered)
			}
		}
	}
	return tutorLabel.Render("tutor") + "\n" + strings.Join(parts, "\n")
}

func (m ChatModel) View() string {
	mode := m.session.Mode()
	header := headerStyle.Render("SOCRATICA") + "  " +
		modeStyle(mode.Accent).Render(mode.Name) + " " + dim.Render("· "+mode.Blurb)

	conversation := strings.Join(m.blocks, "\n\n")
	if conversation == "" {
		conversation = dim.Render("Ask a math question to begin. The tutor answers with questions.")
	}
	// Keep the newest lines on screen; the terminal is not a scrollback.
	lines := strings.Split(conversation, "\n")
	visible := m.height - 7
	if visible > 0 && len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}
	conversation = strings.Join(lines, "\n")

	inputLine := inputPrompt.Render("❯ ") + white.Render(m.input) + dimmer.Render("█")
	if m.waiting {
		inputLine = dim.Render(spinFrames[m.spin%len(spinFrames)] + " thinking…")
	}

	help := helpStyle.Render("enter:send  tab:mode  ctrl+s:save  esc:quit")
	if m.status != "" {
		help = helpStyle.Render(m.status) + "\n" + help
	}

	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s", header, conversation, inputLine, help)
}
