package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"loom/internal/diag"
	"loom/internal/diagfmt"
	"loom/internal/interp"
	"loom/internal/scope"
	"loom/internal/source"
	"loom/internal/value"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive loom session",
	RunE:  runRepl,
}

func runRepl(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return runPlainRepl()
	}
	p := tea.NewProgram(newReplModel())
	_, err := p.Run()
	return err
}

// replSession is one long-lived heap, scope, and reporter shared across
// every accepted line. Each line is parsed and executed as its own tiny
// program against that shared state, the way one module frame stays
// alive for a whole program's run. A NameError or other fatal diagnostic
// only unwinds the line that raised it — diag.CollectingReporter plus a
// deferred diag.Recover() — so a typo doesn't end the session the way it
// would a plain `loom run`.
type replSession struct {
	files    *source.FileSet
	heap     *value.Heap
	scope    *scope.Table
	reporter *diag.CollectingReporter
	lineNo   int
}

func newReplSession() *replSession {
	files := source.NewFileSet()
	heap := value.NewHeap(false)
	reporter := &diag.CollectingReporter{Bag: diag.NewBag(1)}
	return &replSession{
		files:    files,
		heap:     heap,
		scope:    scope.New(heap, reporter),
		reporter: reporter,
	}
}

// eval runs one line, returning whatever it printed and any diagnostic
// text produced while evaluating it.
func (s *replSession) eval(line string) (printed, diagnostic string) {
	s.lineNo++
	s.reporter.Bag = diag.NewBag(1)

	var out bytes.Buffer
	func() {
		defer diag.Recover()
		name := fmt.Sprintf("<repl:%d>", s.lineNo)
		in := interp.NewFromSource(s.files, s.reporter, name, []byte(line+"\n"), interp.Options{
			Out:   &out,
			Heap:  s.heap,
			Scope: s.scope,
		})
		in.Run()
	}()

	if s.reporter.Bag.Len() > 0 {
		var buf bytes.Buffer
		for _, d := range s.reporter.Bag.Items() {
			diagfmt.One(&buf, d, s.files, diagfmt.PrettyOpts{})
		}
		diagnostic = buf.String()
	}
	return out.String(), diagnostic
}

type replModel struct {
	input   textinput.Model
	session *replSession
	history []string
}

func newReplModel() replModel {
	ti := textinput.New()
	ti.Placeholder = "print 1 + 1"
	ti.Prompt = "loom> "
	ti.Focus()
	return replModel{input: ti, session: newReplSession()}
}

func (m replModel) Init() tea.Cmd { return textinput.Blink }

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := m.input.Value()
			m.input.SetValue("")
			if line != "" {
				m.history = append(m.history, m.renderEntry(line))
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

func (m replModel) renderEntry(line string) string {
	printed, diagnostic := m.session.eval(line)
	entry := promptStyle.Render("loom> ") + line
	switch {
	case diagnostic != "":
		entry += "\n" + errorStyle.Render(diagnostic)
	case printed != "":
		entry += "\n" + printed
	}
	return entry
}

func (m replModel) View() string {
	var b bytes.Buffer
	for _, entry := range m.history {
		fmt.Fprintln(&b, entry)
	}
	fmt.Fprint(&b, m.input.View())
	return b.String()
}

// runPlainRepl is the line-buffered fallback used when stdin isn't a
// terminal (piped input, CI), where the bubbletea TUI can't take over the
// screen.
func runPlainRepl() error {
	session := newReplSession()
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		printed, diagnostic := session.eval(line)
		if diagnostic != "" {
			fmt.Fprint(os.Stderr, diagnostic)
			continue
		}
		fmt.Fprint(os.Stdout, printed)
	}
	return scanner.Err()
}
