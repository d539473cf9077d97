package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressBar is a determinate progress display for a file batch.
type ProgressBar interface {
	// Increment advances the bar by n and updates the label.
	Increment(n int, label string)
	// Done completes the bar and releases the terminal.
	Done()
}

// Progress creates progress bars appropriate for the current terminal.
type Progress struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress writing to os.Stdout.
func NewProgress(theme *Theme, hm *HeadlessManager) *Progress {
	return &Progress{theme: theme, headless: hm, writer: os.Stdout}
}

// newProgressWriter creates a Progress with a custom writer, for tests.
func newProgressWriter(theme *Theme, hm *HeadlessManager, w io.Writer) *Progress {
	return &Progress{theme: theme, headless: hm, writer: w}
}

// Start creates a determinate progress bar with the given total. In
// headless or no-color mode it returns a line-per-file logger instead.
func (p *Progress) Start(title string, total int) ProgressBar {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return &headlessBar{title: title, total: total, writer: p.writer}
	}
	return newInteractiveBar(p.theme, title, total)
}

// --- interactive bar ---

type barIncrMsg struct {
	n     int
	label string
}

type barDoneMsg struct{}

type barModel struct {
	bar     progress.Model
	title   string
	label   string
	current int
	total   int
	done    bool
}

func newBarModel(theme *Theme, title string, total int) barModel {
	bar := progress.New(
		progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
		progress.WithWidth(40),
	)
	return barModel{bar: bar, title: title, total: total}
}

func (m barModel) Init() tea.Cmd {
	return nil
}

func (m barModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case barIncrMsg:
		m.current += msg.n
		if m.current > m.total {
			m.current = m.total
		}
		m.label = msg.label
		return m, nil
	case barDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m barModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return fmt.Sprintf("%s %s [%d/%d] %s\n",
		m.title, m.bar.ViewAs(pct), m.current, m.total, m.label)
}

type interactiveBar struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveBar(theme *Theme, title string, total int) *interactiveBar {
	p := tea.NewProgram(newBarModel(theme, title, total))
	b := &interactiveBar{program: p}
	go func() {
		_, _ = p.Run()
	}()
	return b
}

func (b *interactiveBar) Increment(n int, label string) {
	b.program.Send(barIncrMsg{n: n, label: label})
}

func (b *interactiveBar) Done() {
	b.once.Do(func() {
		b.program.Send(barDoneMsg{})
		b.program.Wait()
	})
}

// --- headless bar ---

type headlessBar struct {
	title   string
	total   int
	current int
	writer  io.Writer
}

func (b *headlessBar) Increment(n int, label string) {
	b.current += n
	if b.current > b.total {
		b.current = b.total
	}
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, label)
}

func (b *headlessBar) Done() {
	b.current = b.total
	_, _ = fmt.Fprintf(b.writer, "[%d/%d] %s\n", b.current, b.total, b.title)
}
