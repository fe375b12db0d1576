package cli

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/raiden/internal/intelligence"
	"github.com/alexanderramin/raiden/internal/logger"
	"github.com/alexanderramin/raiden/internal/teatest"
)

type fakeAdvisory struct {
	questions []string
	reply     string
	err       error
	offline   bool
}

func (f *fakeAdvisory) Query(_ context.Context, text string) (string, error) {
	f.questions = append(f.questions, text)
	return f.reply, f.err
}

func (f *fakeAdvisory) Available(context.Context) bool { return !f.offline }

func newTestChat(adv intelligence.AdvisoryService) advisoryChatModel {
	return newAdvisoryChatModel(context.Background(), adv, logger.Nop())
}

func typeAndEnter(t *testing.T, m advisoryChatModel, text string) (advisoryChatModel, tea.Cmd) {
	t.Helper()
	m.input.SetValue(text)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(advisoryChatModel), cmd
}

func TestAdvisoryChat_SubmitStartsLoading(t *testing.T) {
	adv := &fakeAdvisory{reply: intelligence.ResponsePrefix + "Acknowledged."}
	m := newTestChat(adv)
	welcome := len(m.messages)

	m, cmd := typeAndEnter(t, m, "  status report  ")
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Empty(t, m.input.Value())
	require.Len(t, m.messages, welcome+1)
	assert.Contains(t, m.messages[welcome], "status report")
	assert.Contains(t, m.View(), "Processing query...")

	msg := m.query("status report")()
	reply, ok := msg.(advisoryReplyMsg)
	require.True(t, ok)
	assert.Equal(t, []string{"status report"}, adv.questions)

	next, _ := m.Update(reply)
	m = next.(advisoryChatModel)
	assert.False(t, m.loading)
	assert.Contains(t, m.messages[len(m.messages)-1], "Acknowledged.")
	assert.NotContains(t, m.View(), "Processing query...")
}

func TestAdvisoryChat_IgnoresEnterWhileLoading(t *testing.T) {
	m := newTestChat(&fakeAdvisory{})
	m, _ = typeAndEnter(t, m, "first")
	count := len(m.messages)

	m, cmd := typeAndEnter(t, m, "second")
	assert.Nil(t, cmd)
	assert.Len(t, m.messages, count)
	assert.True(t, m.loading)
}

func TestAdvisoryChat_BlankInputIsIgnored(t *testing.T) {
	m := newTestChat(&fakeAdvisory{})
	count := len(m.messages)

	m, cmd := typeAndEnter(t, m, "   ")
	assert.Nil(t, cmd)
	assert.False(t, m.loading)
	assert.Len(t, m.messages, count)
}

func TestAdvisoryChat_FailedQueryShowsReply(t *testing.T) {
	m := newTestChat(&fakeAdvisory{})
	m.loading = true

	next, _ := m.Update(advisoryReplyMsg{reply: intelligence.QueryFailed, err: errors.New("boom")})
	m = next.(advisoryChatModel)
	assert.False(t, m.loading)
	assert.Contains(t, m.messages[len(m.messages)-1], "System anomaly detected.")
}

func TestAdvisoryChat_Quit(t *testing.T) {
	tests := []struct {
		name string
		send func(advisoryChatModel) (tea.Model, tea.Cmd)
	}{
		{"slash quit", func(m advisoryChatModel) (tea.Model, tea.Cmd) {
			m.input.SetValue("/quit")
			return m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		}},
		{"esc", func(m advisoryChatModel) (tea.Model, tea.Cmd) {
			return m.Update(tea.KeyMsg{Type: tea.KeyEsc})
		}},
		{"ctrl+c", func(m advisoryChatModel) (tea.Model, tea.Cmd) {
			return m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, cmd := tt.send(newTestChat(&fakeAdvisory{}))
			m := next.(advisoryChatModel)
			assert.True(t, m.quitting)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View())
		})
	}
}

func TestAdvisoryChat_WindowSize(t *testing.T) {
	m := newTestChat(&fakeAdvisory{})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 80, next.(advisoryChatModel).width)
}

func TestAdvisoryChat_Driven(t *testing.T) {
	adv := &fakeAdvisory{reply: intelligence.ResponsePrefix + "Framework nominal."}
	d := teatest.New(t, newTestChat(adv), teatest.WithSize(100, 30))
	d.DrainInit()

	d.Type("explain OPSEC levels")
	d.PressEnter()

	assert.Equal(t, []string{"explain OPSEC levels"}, adv.questions)
	m := d.Model.(advisoryChatModel)
	assert.False(t, m.loading)
	assert.Contains(t, d.View(), "explain OPSEC levels")
	assert.Contains(t, d.View(), "Framework nominal.")

	d.Type("/q")
	d.PressEnter()
	assert.True(t, d.Quitting)
	assert.Len(t, adv.questions, 1)
}
