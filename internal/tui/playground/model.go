// ============================================================================
// fixstr - Fixed-length string toolkit
// ============================================================================
//
// Package:     playground
// Description: Bubbletea model that shows the transforms of a typed input
// Author:      Mike Stoffels
// Created:     2026-10-12
// License:     MIT
// ============================================================================

package playground

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/fixstr/foundation/utils/fixstr"
)

// sentinelMark is shown in place of a zero byte
const sentinelMark = "·"

// Config holds playground configuration
type Config struct {
	Input   string
	N       uint
	Start   uint
	Literal bool
	Steps   []string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Input:   "ssWWsssWWW",
		N:       4,
		Start:   4,
		Literal: true,
		Steps:   []string{"lower"},
	}
}

// Model is the main Bubbletea model for the playground
type Model struct {
	input   textinput.Model
	n       uint
	start   uint
	literal bool

	steps    []string
	pipeline fixstr.Step
	stepsErr error

	status   string
	statusID int
	width    int
}

// New creates a new playground model
func New(cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "type a string"
	ti.CharLimit = 256
	ti.Width = 48
	ti.SetValue(cfg.Input)
	ti.Focus()

	pipeline, err := fixstr.ParsePipeline(cfg.Steps)

	return Model{
		input:    ti,
		n:        cfg.N,
		start:    cfg.Start,
		literal:  cfg.Literal,
		steps:    cfg.Steps,
		pipeline: pipeline,
		stepsErr: err,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		if msg.Width > 24 {
			m.input.Width = msg.Width - 24
		}
		return m, nil

	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKeyPress handles keyboard input. The controls use modified keys
// so that every printable character reaches the text input.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "ctrl+up":
		m.n++
		return m, nil

	case "ctrl+down":
		if m.n == 0 {
			return m.setStatus("n is already 0")
		}
		m.n--
		return m, nil

	case "shift+up":
		m.start++
		return m, nil

	case "shift+down":
		if m.start == 0 {
			return m.setStatus("start is already 0")
		}
		m.start--
		return m, nil

	case "tab":
		m.literal = !m.literal
		if m.literal {
			return m.setStatus("terminator on")
		}
		return m.setStatus("terminator off")
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.statusID++
	m.status = text
	return m, clearStatusAfter(m.statusID)
}

// source returns the sequence built from the current input
func (m Model) source() fixstr.Seq {
	if m.literal {
		return fixstr.Literal(m.input.Value())
	}
	return fixstr.FromString(m.input.Value())
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(LogoStyle.Render("fixstr playground"))
	b.WriteString("  ")
	b.WriteString(SubHeaderStyle.Render("fixed-length transforms"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	src := m.source()
	rows := []struct {
		label string
		seq   fixstr.Seq
	}{
		{"input", src},
		{"lower", fixstr.ToLower(src)},
		{fmt.Sprintf("left(%d)", m.n), fixstr.Left(src, m.n)},
		{fmt.Sprintf("right(%d)", m.start), fixstr.Right(src, m.start)},
	}

	var panel strings.Builder
	for _, row := range rows {
		panel.WriteString(LabelStyle.Render(row.label))
		panel.WriteString(renderSeq(row.seq))
		panel.WriteString("\n")
	}

	panel.WriteString(LabelStyle.Render("pipeline"))
	if m.stepsErr != nil {
		panel.WriteString(ErrorStyle.Render(m.stepsErr.Error()))
	} else {
		panel.WriteString(renderSeq(m.pipeline(src)))
		panel.WriteString(" ")
		panel.WriteString(MetaStyle.Render(strings.Join(m.steps, " | ")))
	}

	b.WriteString(PanelStyle.Render(panel.String()))
	b.WriteString("\n")

	terminator := "off"
	if m.literal {
		terminator = "on"
	}
	b.WriteString(MetaStyle.Render(fmt.Sprintf("N=%d  shown as text: %q  terminator %s", src.Len(), src.String(), terminator)))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(ErrorStyle.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(HelpStyle.Render("ctrl+↑/↓ n  shift+↑/↓ start  tab terminator  esc quit"))
	return b.String()
}

// renderSeq renders every byte of s; zero bytes become a dimmed dot and
// bytes outside printable ASCII are escaped
func renderSeq(s fixstr.Seq) string {
	var b strings.Builder
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			b.WriteString(ValueStyle.Render(plain.String()))
			plain.Reset()
		}
	}

	for _, c := range s.Bytes() {
		switch {
		case c == fixstr.Sentinel:
			flush()
			b.WriteString(SentinelStyle.Render(sentinelMark))
		case c < 0x20 || c >= 0x7f:
			flush()
			b.WriteString(EscapeStyle.Render(fmt.Sprintf(`\x%02x`, c)))
		default:
			plain.WriteByte(c)
		}
	}
	flush()
	return b.String()
}

// Run starts the playground TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
