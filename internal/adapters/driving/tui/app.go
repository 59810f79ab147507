// Package tui provides the interactive chat interface. It follows the
// Elm architecture: the App model reacts to messages and re-renders a
// transcript viewport above a single-line input.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/scrawl-cli/internal/core/domain"
)

// askCompleted carries the model reply (or error) back to the app.
type askCompleted struct {
	reply string
	err   error
}

// App is the chat TUI model.
type App struct {
	ports  *Ports
	styles *Styles
	ctx    context.Context

	input    textinput.Model
	viewport viewport.Model

	title   string
	waiting bool
	err     error
	width   int
	height  int
	ready   bool
}

// NewApp creates the chat app for an already-loaded corpus. The title
// names the corpus source, typically the crawled domain.
func NewApp(ports *Ports, title string) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	input := textinput.New()
	input.Placeholder = "Ask about the crawled content (Ctrl+C to quit)"
	input.Focus()

	return &App{
		ports:    ports,
		styles:   DefaultStyles(),
		ctx:      context.Background(),
		input:    input,
		viewport: viewport.New(80, 20),
		title:    title,
		width:    80,
		height:   24,
	}, nil
}

// WithContext sets the context used for chat calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - 5
		a.input.Width = msg.Width - 6
		a.ready = true
		a.refreshTranscript()
		return a, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return a, tea.Quit
		case tea.KeyEnter:
			question := strings.TrimSpace(a.input.Value())
			if question == "" || a.waiting {
				return a, nil
			}
			a.input.SetValue("")
			a.waiting = true
			a.err = nil
			return a, a.ask(question)
		}

	case askCompleted:
		a.waiting = false
		a.err = msg.err
		a.refreshTranscript()
		a.viewport.GotoBottom()
		return a, nil
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	cmds = append(cmds, cmd)
	a.viewport, cmd = a.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Chat: "+a.title) + "\n")
	b.WriteString(a.viewport.View() + "\n")
	if a.waiting {
		b.WriteString(a.styles.Muted.Render("Thinking...") + "\n")
	} else if a.err != nil {
		b.WriteString(a.styles.Error.Render(a.err.Error()) + "\n")
	} else {
		b.WriteString("\n")
	}
	b.WriteString(a.styles.InputBox.Render(a.input.View()))
	return b.String()
}

// ask runs the chat call off the update loop.
func (a *App) ask(question string) tea.Cmd {
	return func() tea.Msg {
		reply, err := a.ports.Chat.Ask(a.ctx, question)
		return askCompleted{reply: reply, err: err}
	}
}

// refreshTranscript re-renders the conversation into the viewport.
func (a *App) refreshTranscript() {
	conv := a.ports.Chat.History()
	if conv == nil {
		return
	}

	var b strings.Builder
	for _, turn := range conv.Turns {
		switch turn.Role {
		case domain.RoleUser:
			b.WriteString(a.styles.User.Render("You: ") + turn.Content + "\n\n")
		case domain.RoleAssistant:
			b.WriteString(a.styles.Assistant.Render(turn.Content) + "\n\n")
		}
	}
	a.viewport.SetContent(b.String())
}
