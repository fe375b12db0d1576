package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexanderramin/raiden/internal/cli/formatter"
	"github.com/alexanderramin/raiden/internal/intelligence"
	"github.com/alexanderramin/raiden/internal/logger"
)

// advisoryReplyMsg carries a finished query back into the chat loop.
type advisoryReplyMsg struct {
	reply string
	err   error
}

// advisoryChatModel is a line-oriented chat with the advisory service.
// Only one query is in flight at a time.
type advisoryChatModel struct {
	ctx      context.Context
	advisory intelligence.AdvisoryService
	log      *logger.Logger

	input    textinput.Model
	spinner  spinner.Model
	loading  bool
	messages []string
	width    int
	quitting bool
}

func newAdvisoryChatModel(ctx context.Context, advisory intelligence.AdvisoryService, log *logger.Logger) advisoryChatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Placeholder = "Ask RAIDEN..."

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(formatter.StylePurple))

	return advisoryChatModel{
		ctx:      ctx,
		advisory: advisory,
		log:      logger.OrNop(log),
		input:    ti,
		spinner:  sp,
		messages: []string{formatter.FormatAdvisoryWelcome()},
	}
}

func (m advisoryChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m advisoryChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 6
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}

	case advisoryReplyMsg:
		m.loading = false
		if msg.err != nil {
			m.log.Warn("advisory query failed", "error", msg.err)
		}
		m.messages = append(m.messages, formatter.FormatAdvisoryReply(msg.reply, m.width))
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m advisoryChatModel) submit() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	question := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if question == "" {
		return m, nil
	}
	switch strings.ToLower(question) {
	case "/quit", "/exit", "/q":
		m.quitting = true
		return m, tea.Quit
	}

	m.messages = append(m.messages, formatter.FormatAdvisoryQuestion(question))
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.query(question))
}

func (m advisoryChatModel) query(question string) tea.Cmd {
	ctx, advisory := m.ctx, m.advisory
	return func() tea.Msg {
		reply, err := advisory.Query(ctx, question)
		return advisoryReplyMsg{reply: reply, err: err}
	}
}

func (m advisoryChatModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	for _, msg := range m.messages {
		b.WriteString(msg)
		b.WriteString("\n")
	}
	if m.loading {
		b.WriteString(m.spinner.View() + " " + formatter.Dim(intelligence.StripPrefix(intelligence.ProcessingQuery)))
		b.WriteString("\n")
	}
	b.WriteString(formatter.StylePurple.Render("raiden") + formatter.Dim("> "))
	b.WriteString(m.input.View())
	return b.String()
}

func runAdvisoryChat(ctx context.Context, app *App) error {
	p := tea.NewProgram(newAdvisoryChatModel(ctx, app.advisory(), app.Log), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
