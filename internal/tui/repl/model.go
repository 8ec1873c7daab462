// ============================================================================
// numtower - Numerischer Turm
// ============================================================================
//
// Package:     repl
// Description: Bubbletea model for the interactive numtower session
// Author:      Mike Stoffels
// Created:     2025-12-22
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/msto63/numtower/foundation/core/error"
	"github.com/msto63/numtower/internal/calc"
	"github.com/msto63/numtower/internal/history"
	"github.com/msto63/numtower/pkg/core/logging"
	"github.com/msto63/numtower/pkg/core/version"
)

// maxInputHistory bounds the inputs reachable with the arrow keys
const maxInputHistory = 100

// Config holds REPL configuration
type Config struct {
	Evaluator *calc.Evaluator
	Store     history.Store // nil keeps history in memory only
	Logger    *logging.Logger
	Prompt    string
	// EvalTimeout bounds one submitted input
	EvalTimeout time.Duration
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Prompt:      "numtower> ",
		EvalTimeout: 5 * time.Second,
	}
}

// Model is the Bubbletea model of the REPL
type Model struct {
	// State
	width      int
	height     int
	ready      bool
	evaluating bool

	// Components
	textarea textarea.Model
	viewport viewport.Model
	spinner  spinner.Model

	// Session
	evaluator *calc.Evaluator
	store     history.Store
	logger    *logging.Logger
	prompt    string
	timeout   time.Duration
	lines     []Line

	// Input history
	inputHistory []string
	historyIndex int // -1 while editing a new input
	currentInput string
}

// New creates a REPL model
func New(cfg Config) Model {
	d := DefaultConfig()
	if cfg.Evaluator == nil {
		cfg.Evaluator = calc.New(calc.Config{})
	}
	if cfg.Store == nil {
		cfg.Store = history.NewMemoryStore(maxInputHistory)
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.New("repl")
	}
	if cfg.Prompt == "" {
		cfg.Prompt = d.Prompt
	}
	if cfg.EvalTimeout <= 0 {
		cfg.EvalTimeout = d.EvalTimeout
	}

	ta := textarea.New()
	ta.Placeholder = "Ausdruck eingeben, z.B. (floor 7 2)"
	ta.Focus()
	ta.CharLimit = 4000
	ta.SetWidth(80)
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.Prompt = cfg.Prompt
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.KeyMap.InsertNewline.SetEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		textarea:     ta,
		viewport:     viewport.New(80, 20),
		spinner:      sp,
		evaluator:    cfg.Evaluator,
		store:        cfg.Store,
		logger:       cfg.Logger,
		prompt:       cfg.Prompt,
		timeout:      cfg.EvalTimeout,
		historyIndex: -1,
	}
}

// Init loads the stored input history
func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.loadHistory)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		footerHeight := 7
		m.viewport.Width = msg.Width - 4
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		m.viewport.YPosition = headerHeight
		m.ready = true
		m.textarea.SetWidth(msg.Width - 4)
		m.updateViewportContent()

	case historyLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("history unavailable", "error", msg.err)
			break
		}
		m.inputHistory = append(msg.inputs, m.inputHistory...)

	case evalResultMsg:
		m.evaluating = false
		m.lines = append(m.lines, Line{
			Input:     msg.input,
			Results:   msg.results,
			Err:       msg.err,
			Timestamp: time.Now(),
		})
		m.updateViewportContent()
		m.viewport.GotoBottom()

	case spinner.TickMsg:
		if m.evaluating {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+d", "esc":
		return m, tea.Quit
	case "ctrl+l":
		m.lines = nil
		m.updateViewportContent()
		return m, nil
	}

	if m.evaluating {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		input := strings.TrimSpace(m.textarea.Value())
		if input == "" {
			return m, nil
		}
		m.textarea.Reset()
		m.historyIndex = -1
		m.currentInput = ""
		return m.submit(input)

	case tea.KeyUp:
		if len(m.inputHistory) > 0 {
			if m.historyIndex == -1 {
				m.currentInput = m.textarea.Value()
				m.historyIndex = len(m.inputHistory) - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.textarea.SetValue(m.inputHistory[m.historyIndex])
			m.textarea.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyIndex != -1 {
			if m.historyIndex < len(m.inputHistory)-1 {
				m.historyIndex++
				m.textarea.SetValue(m.inputHistory[m.historyIndex])
			} else {
				m.historyIndex = -1
				m.textarea.SetValue(m.currentInput)
			}
			m.textarea.CursorEnd()
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// submit handles REPL commands and starts evaluation of everything else
func (m Model) submit(input string) (tea.Model, tea.Cmd) {
	m.remember(input)

	switch strings.ToLower(input) {
	case ":q", ":quit", ":exit":
		return m, tea.Quit
	case ":help", ":h":
		m.system("Operatoren: " + strings.Join(m.evaluator.Registry().Names(), " "))
		return m, nil
	case ":stats":
		hits, misses := m.evaluator.CacheStats()
		st, err := m.store.Statistics(context.Background())
		if err != nil {
			m.system(RenderError(err.Error()))
			return m, nil
		}
		m.system(fmt.Sprintf("Historie: %d Einträge, %d Sitzungen, %d Fehler | Cache: %d Treffer, %d Fehlgriffe",
			st.Entries, st.Sessions, st.Failed, hits, misses))
		return m, nil
	}

	m.evaluating = true
	return m, tea.Batch(m.spinner.Tick, m.evaluate(input))
}

func (m *Model) remember(input string) {
	if n := len(m.inputHistory); n > 0 && m.inputHistory[n-1] == input {
		return
	}
	m.inputHistory = append(m.inputHistory, input)
	if len(m.inputHistory) > maxInputHistory {
		m.inputHistory = m.inputHistory[len(m.inputHistory)-maxInputHistory:]
	}
}

func (m *Model) system(text string) {
	m.lines = append(m.lines, Line{System: text, Timestamp: time.Now()})
	m.updateViewportContent()
	m.viewport.GotoBottom()
}

// evaluate runs input through the evaluator and records it in the store
func (m Model) evaluate(input string) tea.Cmd {
	evaluator, store, logger, timeout := m.evaluator, m.store, m.logger, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		results, err := evaluator.EvalString(ctx, input)
		elapsed := time.Since(start)

		for _, r := range results {
			entry := &history.Entry{
				Session:  evaluator.SessionID(),
				Input:    r.Input,
				Output:   r.Values.String(),
				Duration: r.Duration,
			}
			if recErr := store.Record(ctx, entry); recErr != nil {
				logger.Warn("history record failed", "error", recErr)
			}
		}
		if err != nil {
			entry := &history.Entry{
				Session:   evaluator.SessionID(),
				Input:     input,
				ErrorCode: string(mdwerror.GetCode(err)),
				Duration:  elapsed,
			}
			if recErr := store.Record(ctx, entry); recErr != nil {
				logger.Warn("history record failed", "error", recErr)
			}
		}

		return evalResultMsg{input: input, results: results, err: err, duration: elapsed}
	}
}

// loadHistory fetches the stored inputs for arrow key recall
func (m Model) loadHistory() tea.Msg {
	entries, err := m.store.List(context.Background(), history.ListOptions{Limit: maxInputHistory})
	if err != nil {
		return historyLoadedMsg{err: err}
	}
	inputs := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		in := entries[i].Input
		if n := len(inputs); n > 0 && inputs[n-1] == in {
			continue
		}
		inputs = append(inputs, in)
	}
	return historyLoadedMsg{inputs: inputs}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Lade numtower..."
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("numtower") + " " + HelpDescStyle.Render("Numerischer Turm"))
	b.WriteString("\n")
	b.WriteString(TranscriptStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	input := m.textarea.View()
	if m.evaluating {
		input = m.spinner.View() + SystemMessageStyle.Render(" Berechne...")
	}
	b.WriteString(InputStyle.Width(m.width - 2).Render(input))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

func (m Model) renderStatusBar() string {
	left := "Sitzung " + shortID(m.evaluator.SessionID())
	right := "v" + version.REPL
	space := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if space < 1 {
		space = 1
	}
	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", space) + right)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "auswerten"),
		RenderKeyHint("↑/↓", "Historie"),
		RenderKeyHint(":help", "Operatoren"),
		RenderKeyHint("Ctrl+L", "leeren"),
		RenderKeyHint("Ctrl+C", "beenden"),
	}
	return HelpDescStyle.Render(strings.Join(items, "  "))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// transcript renders every line of the session
func (m Model) transcript() string {
	var content strings.Builder
	for _, line := range m.lines {
		if line.System != "" {
			content.WriteString(SystemMessageStyle.Render(line.System))
			content.WriteString("\n\n")
			continue
		}
		content.WriteString(PromptStyle.Render(m.prompt) + InputEchoStyle.Render(line.Input))
		content.WriteString("\n")
		for _, r := range line.Results {
			if len(line.Results) > 1 {
				content.WriteString(HelpDescStyle.Render(r.Input + " "))
			}
			content.WriteString(ResultStyle.Render("⇒ " + r.Values.String()))
			content.WriteString("\n")
		}
		if line.Err != nil {
			content.WriteString(RenderError(line.Err.Error()))
			content.WriteString("\n")
		}
		content.WriteString("\n")
	}
	return content.String()
}

func (m *Model) updateViewportContent() {
	m.viewport.SetContent(m.transcript())
}

// Run starts the REPL
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
