package sweep

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/timvw/swap-sentinel/internal/focuser"
)

// Styles
var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	staleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // yellow
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// messages
type scanResultMsg struct {
	result *ScanResult
	err    error
}

// TUI runs the interactive marker sweep.
type TUI struct {
	Scanner *Scanner
	Focuser focuser.Focuser
}

// model implements tea.Model
type tuiModel struct {
	scanner *Scanner
	focuser focuser.Focuser
	ctx     context.Context

	entries []Entry
	cursor  int

	spinner spinner.Model

	// dimensions
	width  int
	height int

	// status
	scanning  bool
	message   string
	scanCount int
}

func (t *TUI) Run(ctx context.Context) error {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = dimStyle

	m := &tuiModel{
		scanner: t.Scanner,
		focuser: t.Focuser,
		ctx:     ctx,
		spinner: sp,
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *tuiModel) Init() tea.Cmd {
	m.scanning = true
	return tea.Batch(m.doScan(), m.spinner.Tick)
}

func (m *tuiModel) doScan() tea.Cmd {
	scanner := m.scanner
	ctx := m.ctx
	return func() tea.Msg {
		result, err := scanner.Scan(ctx)
		return scanResultMsg{result: result, err: err}
	}
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case scanResultMsg:
		m.scanning = false
		if msg.err != nil {
			m.message = fmt.Sprintf("Scan error: %v", msg.err)
		} else if msg.result != nil {
			m.entries = msg.result.Entries
			m.scanCount++
			if m.cursor >= len(m.entries) {
				m.cursor = 0
			}
		}
		return m, nil

	case spinner.TickMsg:
		if !m.scanning {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *tuiModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}

	case "enter":
		// Jump to the session editing the selected file
		e := m.selected()
		if e == nil {
			return m, nil
		}
		if !e.Active {
			m.message = fmt.Sprintf("No active session for %s", e.File)
			return m, nil
		}
		if err := m.focuser.Focus(m.ctx, e.Handle); err != nil {
			m.message = fmt.Sprintf("Focus failed: %v", err)
		} else {
			m.message = fmt.Sprintf("Focused %s", e.Handle)
		}
		return m, nil

	case "d":
		// Delete the selected marker. Markers with a live session are
		// off-limits: deleting them would unprotect an open buffer.
		e := m.selected()
		if e == nil {
			return m, nil
		}
		if e.Active {
			m.message = fmt.Sprintf("%s has an active session, not deleting", e.Marker)
			return m, nil
		}
		if err := os.Remove(e.Marker); err != nil {
			m.message = fmt.Sprintf("Delete failed: %v", err)
			return m, nil
		}
		m.message = fmt.Sprintf("Deleted %s", e.Marker)
		m.scanning = true
		return m, tea.Batch(m.doScan(), m.spinner.Tick)

	case "r":
		m.scanning = true
		m.message = ""
		return m, tea.Batch(m.doScan(), m.spinner.Tick)
	}

	return m, nil
}

func (m *tuiModel) selected() *Entry {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return nil
	}
	return &m.entries[m.cursor]
}

func (m *tuiModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Swap Sweep"))
	b.WriteString("  ")
	b.WriteString(dimStyle.Render("Enter=jump  d=delete  r=rescan  q=quit"))
	if m.scanning {
		b.WriteString("  ")
		b.WriteString(m.spinner.View())
		b.WriteString(staleStyle.Render("scanning..."))
	}
	b.WriteString("\n")

	if len(m.entries) == 0 {
		if m.scanning {
			b.WriteString("  Sweeping for swap markers...\n")
		} else {
			b.WriteString(fmt.Sprintf("  No swap markers under %s.\n", m.scanner.Root))
		}
		return b.String()
	}

	fileWidth := 20
	for _, e := range m.entries {
		if len(e.File)+4 > fileWidth {
			fileWidth = len(e.File) + 4
		}
	}
	if fileWidth > m.width/2 {
		fileWidth = m.width / 2
	}

	maxVisible := m.height - 3
	if maxVisible < 2 {
		maxVisible = 2
	}
	start := 0
	if m.cursor >= maxVisible {
		start = m.cursor - maxVisible + 1
	}

	active, stale := 0, 0
	for _, e := range m.entries {
		if e.Active {
			active++
		} else if e.Stale {
			stale++
		}
	}

	for i := start; i < len(m.entries) && i < start+maxVisible; i++ {
		e := m.entries[i]

		icon := entryIcon(e)
		status := entryStatusText(e)
		fileCol := padRight(truncate(e.File, fileWidth), fileWidth)

		if i == m.cursor {
			b.WriteString(selectedStyle.Render(padRight(
				fmt.Sprintf("→ %s %s %s", icon, fileCol, status), m.width)))
		} else {
			b.WriteString(fmt.Sprintf("  %s %s %s",
				entryStyle(e).Render(icon), fileCol, dimStyle.Render(status)))
		}
		b.WriteString("\n")
	}

	summary := fmt.Sprintf("  %d markers | %d active | %d stale | scan #%d",
		len(m.entries), active, stale, m.scanCount)
	b.WriteString(dimStyle.Render(summary))
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(statusStyle.Render("  " + m.message))
		b.WriteString("\n")
	}

	return b.String()
}

// entryStatusText returns the plain status label for an entry.
func entryStatusText(e Entry) string {
	switch {
	case e.Active:
		return "active " + e.Handle.String()
	case e.Stale:
		return "stale"
	default:
		return "fresh marker, no session"
	}
}

// entryStyle returns the style for an entry's icon.
func entryStyle(e Entry) lipgloss.Style {
	switch {
	case e.Active:
		return activeStyle
	case e.Stale:
		return staleStyle
	default:
		return dimStyle
	}
}

// entryIcon returns the unstyled icon for a row.
func entryIcon(e Entry) string {
	switch {
	case e.Active:
		return "●"
	case e.Stale:
		return "⚠"
	default:
		return "·"
	}
}

// truncate cuts a string to at most maxLen characters.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

// padRight pads a string with spaces to reach the desired width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
