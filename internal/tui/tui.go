package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/MikhailRaia/link-share/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Italic(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	generatedStyle = buttonStyle.BorderForeground(lipgloss.Color("39"))
	activeStyle    = buttonStyle.BorderForeground(lipgloss.Color("42")).Foreground(lipgloss.Color("42")).Bold(true)
)

type ShareWidget interface {
	Prepare(ctx context.Context) error
	Buttons() []model.ButtonState
	Click(id string) (model.ButtonState, error)
}

type preparedMsg struct {
	err error
}

type Model struct {
	ctx       context.Context
	widget    ShareWidget
	pageURL   string
	buttons   []model.ButtonState
	cursor    int
	preparing bool
	status    string
}

func New(ctx context.Context, w ShareWidget, pageURL string) Model {
	return Model{
		ctx:       ctx,
		widget:    w,
		pageURL:   pageURL,
		buttons:   w.Buttons(),
		preparing: true,
	}
}

func (m Model) Init() tea.Cmd {
	w, ctx := m.widget, m.ctx
	return func() tea.Msg {
		return preparedMsg{err: w.Prepare(ctx)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case preparedMsg:
		m.preparing = false
		m.buttons = m.widget.Buttons()
		if msg.err != nil {
			log.Warn().Err(msg.err).Msg("Share link not generated")
			m.status = "Short link unavailable"
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.buttons)-1 {
				m.cursor++
			}
		case "enter", " ", "space":
			m.click()
		}
	}

	return m, nil
}

func (m *Model) click() {
	if len(m.buttons) == 0 {
		return
	}

	if _, err := m.widget.Click(m.buttons[m.cursor].ID); err != nil {
		log.Error().Err(err).Msg("Share button click failed")
		m.status = err.Error()
		return
	}
	m.buttons = m.widget.Buttons()
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Share this link"))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(m.pageURL))
	b.WriteString("\n\n")

	for i, st := range m.buttons {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		style := buttonStyle
		switch {
		case st.Active:
			style = activeStyle
		case st.Generated:
			style = generatedStyle
		}

		label := st.Display
		if st.Active {
			label = fmt.Sprintf("%s  copied", label)
		}

		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, cursor, style.Render(label)))
		b.WriteString("\n")

		if st.HintVisible && st.Title != "" {
			b.WriteString("    ")
			b.WriteString(hintStyle.Render(st.Title))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	switch {
	case m.preparing:
		b.WriteString(mutedStyle.Render("Shortening..."))
		b.WriteString("\n")
	case m.status != "":
		b.WriteString(mutedStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render("enter copy • ↑/↓ move • q quit"))
	b.WriteString("\n")

	return b.String()
}
