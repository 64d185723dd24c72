package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"enigma/internal/alphabet"
	"enigma/internal/domain"
	"enigma/internal/services/session"
)

// Lampboard rows as laid out on the machine.
var lampRows = []string{"QWERTZUIO", "ASDFGHJK", "PYXCVBNML"}

// groupSize is the letter grouping on the tapes.
const groupSize = 5

// Model is the bubbletea model for one machine.
type Model struct {
	machine domain.Encoder
	keys    keyMap
	help    help.Model
	typed   []byte
	lit     []byte
	err     error
	width   int
}

// New returns a lampboard driving m.
func New(m domain.Encoder) Model {
	return Model{
		machine: m,
		keys:    keys,
		help:    help.New(),
	}
}

// Run starts the lampboard and blocks until the operator quits.
func Run(m domain.Encoder, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(m), opts...).Run()
	return err
}

// Typed returns the keys pressed since the last reset.
func (m Model) Typed() string { return string(m.typed) }

// Lit returns the lamps lit since the last reset.
func (m Model) Lit() string { return string(m.lit) }

// Err returns the last key press error, if any.
func (m Model) Err() error { return m.err }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Reset):
			m.err = m.machine.Reset(m.machine.Config())
			m.typed, m.lit = nil, nil
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case msg.Type == tea.KeySpace:
			return m, nil
		case msg.Type == tea.KeyRunes:
			m.press(msg.Runes)
			return m, nil
		}
	}
	return m, nil
}

func (m *Model) press(runes []rune) {
	m.err = nil
	for _, r := range runes {
		if r > 0x7f || !alphabet.IsLetter(byte(r)) {
			m.err = fmt.Errorf("%w: %q", domain.ErrInvalidCharacter, r)
			continue
		}
		out, err := m.machine.EncodeChar(byte(r))
		if err != nil {
			m.err = err
			continue
		}
		m.typed = append(m.typed, alphabet.Upper(byte(r)))
		m.lit = append(m.lit, out)
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("ENIGMA  " + m.machine.Config().String()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(m.windows()))
	b.WriteString("\n\n")
	b.WriteString(m.lampboard())
	b.WriteString("\n")

	b.WriteString(tapeStyle.Render("in:  " + session.Group(m.Typed(), groupSize)))
	b.WriteString("\n")
	b.WriteString(tapeStyle.Render("out: " + session.Group(m.Lit(), groupSize)))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m Model) windows() string {
	pos := m.machine.Positions()
	boxes := make([]string, 0, len(pos))
	for i := 0; i < len(pos); i++ {
		boxes = append(boxes, windowStyle.Render(string(pos[i])))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

func (m Model) lampboard() string {
	var lamp byte
	if len(m.lit) > 0 {
		lamp = m.lit[len(m.lit)-1]
	}
	var b strings.Builder
	for i, row := range lampRows {
		cells := make([]string, 0, len(row))
		for j := 0; j < len(row); j++ {
			style := lampStyle
			if row[j] == lamp {
				style = litLampStyle
			}
			cells = append(cells, style.Render(string(row[j])))
		}
		b.WriteString(lipgloss.NewStyle().MarginLeft(2 + 2*i).Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...)))
		b.WriteString("\n")
	}
	return b.String()
}
