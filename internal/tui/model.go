package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"summarize/internal/domain"
	"summarize/internal/highlight"
)

// SummaryPort is the TUI-facing subset of the summary service.
type SummaryPort interface {
	SummarizeText(text string) (domain.Summary, error)
}

// Model is the Bubble Tea model for the summarizer TUI.
type Model struct {
	service   SummaryPort
	input     textarea.Model
	viewport  viewport.Model
	summary   domain.Summary
	status    string
	ready     bool
	highlight lipgloss.Style
}

// New creates a TUI model seeded with the given text and summary. The
// highlight color is an ANSI color name or number understood by lipgloss.
func New(service SummaryPort, text string, summary domain.Summary, highlightColor string) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste or type text, then press Ctrl+S to summarize"
	ta.CharLimit = 0
	ta.SetValue(text)
	ta.Focus()
	vp := viewport.New(0, 0)
	m := Model{
		service:   service,
		input:     ta,
		viewport:  vp,
		summary:   summary,
		status:    "Ctrl+S summarize · Tab switch focus · Ctrl+C quit",
		highlight: lipgloss.NewStyle().Foreground(lipgloss.Color(highlightColor)).Bold(true),
	}
	m.viewport.SetContent(m.renderSummary())
	return m
}

// Init initializes the model (text area cursor blink).
func (m Model) Init() tea.Cmd { return textarea.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		iw, ih := inputBoxStyle.GetFrameSize()
		rw, rh := resultBoxStyle.GetFrameSize()
		m.input.SetWidth(max(20, msg.Width-iw))
		m.input.SetHeight(inputHeight)
		m.viewport.Width = max(20, msg.Width-rw)
		// header + status + input frame and content
		reserved := 2 + ih + inputHeight + rh
		m.viewport.Height = max(3, msg.Height-reserved)
		m.viewport.SetContent(m.renderSummary())
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD:
			return m, tea.Quit
		case tea.KeyCtrlS:
			summary, err := m.service.SummarizeText(m.input.Value())
			if err != nil {
				m.status = "Error: " + err.Error()
				return m, nil
			}
			m.summary = summary
			m.status = fmt.Sprintf("Selected %d key sentences", len(summary.KeySentences))
			m.viewport.SetContent(m.renderSummary())
			m.viewport.GotoTop()
			return m, nil
		case tea.KeyTab:
			if m.input.Focused() {
				m.input.Blur()
			} else {
				m.input.Focus()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	if m.input.Focused() {
		m.input, cmd = m.input.Update(msg)
	} else {
		m.viewport, cmd = m.viewport.Update(msg)
	}
	return m, cmd
}

// View renders the TUI layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Text Summarizer")
	input := inputBoxStyle.Render(m.input.View())
	result := resultBoxStyle.Render(m.viewport.View())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.status)
	return header + "\n" + input + "\n" + result + "\n" + status
}

func (m Model) renderSummary() string {
	if len(m.summary.KeySentences) == 0 {
		return "No key sentences yet."
	}
	marked := renderHighlighted(m.input.Value(), m.summary.KeySentences, m.highlight)
	return m.summary.Bulleted + "\n\n" + sectionRule + "\n\n" + marked
}

// renderHighlighted marks every literal occurrence of each key sentence
// within text using the given style.
func renderHighlighted(text string, keySentences []string, style lipgloss.Style) string {
	var all []domain.Span
	for _, ks := range keySentences {
		all = append(all, highlight.Occurrences(text, ks)...)
	}
	spans := highlight.Merge(all)
	if len(spans) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, sp := range spans {
		b.WriteString(text[last:sp.Start])
		b.WriteString(style.Render(text[sp.Start:sp.End]))
		last = sp.End
	}
	b.WriteString(text[last:])
	return b.String()
}

const (
	inputHeight = 8
	sectionRule = "────────"
)

var (
	inputBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	resultBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
