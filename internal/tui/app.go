// Package tui is the terminal player: a bubbletea program over a
// playback.Controller.
package tui

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/carryviz/internal/input"
	"github.com/san-kum/carryviz/internal/playback"
)

// Notifier forwards controller changes into the program. Notify never
// blocks; bursts of changes collapse into one pending message.
type Notifier struct {
	ch   chan struct{}
	done chan struct{}
	once sync.Once
}

func NewNotifier() *Notifier {
	return &Notifier{
		ch:   make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Notify matches the signature of playback.WithOnChange.
func (n *Notifier) Notify(playback.State) {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

// Close releases any command still waiting for a change.
func (n *Notifier) Close() { n.once.Do(func() { close(n.done) }) }

func (n *Notifier) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-n.ch:
			return changedMsg{}
		case <-n.done:
			return nil
		}
	}
}

type changedMsg struct{}

type Options struct {
	Theme  string
	Logger *slog.Logger
	Rand   *rand.Rand
}

type field int

const (
	fieldFirst field = iota
	fieldSecond
)

type model struct {
	ctrl     *playback.Controller
	notifier *Notifier
	st       playback.State

	theme  int
	styles styles

	editing bool
	field   field
	edit    [2]string
	err     error

	rng *rand.Rand
	log *slog.Logger

	width  int
	height int
}

func newModel(ctrl *playback.Controller, n *Notifier, opts Options) model {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	theme := themeIndex(opts.Theme)
	return model{
		ctrl:     ctrl,
		notifier: n,
		st:       ctrl.State(),
		theme:    theme,
		styles:   newStyles(Themes[theme]),
		rng:      opts.Rand,
		log:      opts.Logger,
		width:    80,
		height:   24,
	}
}

// Run blocks until the user quits. The caller owns ctrl and should have
// created it with playback.WithOnChange(n.Notify).
func Run(ctrl *playback.Controller, n *Notifier, opts Options) error {
	p := tea.NewProgram(newModel(ctrl, n, opts), tea.WithAltScreen())
	_, err := p.Run()
	n.Close()
	return err
}

func (m model) Init() tea.Cmd { return m.notifier.wait() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		var cmd tea.Cmd
		if m.editing {
			m, cmd = m.editKey(msg)
		} else {
			m, cmd = m.playerKey(msg)
		}
		m.st = m.ctrl.State()
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case changedMsg:
		m.st = m.ctrl.State()
		return m, m.notifier.wait()
	}
	return m, nil
}

func (m model) playerKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		m.ctrl.Close()
		return m, tea.Quit
	case "left", "h":
		m.ctrl.Previous()
	case "right", "l":
		m.ctrl.Next()
	case " ":
		m.ctrl.TogglePlay()
	case "r":
		m.ctrl.Reset()
	case "home", "g":
		m.ctrl.First()
	case "end", "G":
		m.ctrl.Last()
	case "1", "2", "3", "4":
		ex := input.Examples[int(key[0]-'1')]
		m.load(ex.First, ex.Second)
		m.log.Debug("example loaded", "name", ex.Name)
	case "x":
		m.load(input.Random(m.rng), input.Random(m.rng))
	case "e":
		m.editing = true
		m.field = fieldFirst
		m.edit = [2]string{input.Format(m.st.First), input.Format(m.st.Second)}
		m.err = nil
		m.ctrl.Pause()
	case "t":
		m.theme = (m.theme + 1) % len(Themes)
		m.styles = newStyles(Themes[m.theme])
	}
	return m, nil
}

func (m model) editKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch key := msg.String(); key {
	case "ctrl+c":
		m.ctrl.Close()
		return m, tea.Quit
	case "esc":
		m.editing = false
		m.err = nil
	case "tab", "shift+tab", "up", "down":
		m.field = 1 - m.field
	case "enter":
		first, second, err := input.ParsePair(m.edit[fieldFirst], m.edit[fieldSecond])
		if err != nil {
			m.err = err
			return m, nil
		}
		m.editing = false
		m.err = nil
		m.load(first, second)
	case "backspace":
		if s := m.edit[m.field]; len(s) > 0 {
			m.edit[m.field] = s[:len(s)-1]
		}
	default:
		if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
			return m, nil
		}
		for _, r := range msg.Runes {
			if (r >= '0' && r <= '9') || r == ',' || r == ' ' {
				m.edit[m.field] += string(r)
			}
		}
		if msg.Type == tea.KeySpace && len(msg.Runes) == 0 {
			m.edit[m.field] += " "
		}
	}
	return m, nil
}

func (m *model) load(first, second []int) {
	m.ctrl.UpdateInputs(first, second)
	m.log.Info("inputs loaded", "l1", first, "l2", second, "steps", m.ctrl.Total())
}

func (m model) View() string {
	s := m.styles
	st := m.st
	var b strings.Builder

	status := s.paused.Render("○ paused")
	if st.Playing {
		status = s.playing.Render("● playing")
	}
	b.WriteString(fmt.Sprintf("\n %s  %s  %s\n",
		s.title.Render("c a r r y v i z"),
		s.text.Render(fmt.Sprintf("step %d / %d", st.Index+1, st.Total)),
		status))
	b.WriteString(" " + s.progressBar(st.Index+1, st.Total, 48) + "\n\n")

	b.WriteString(s.panel.Render(strings.TrimRight(renderCode(s, st.Step), "\n")) + "\n\n")

	b.WriteString(renderLists(s, st.Step) + "\n\n")
	b.WriteString(s.dim.Render("carry  ") + s.carry.Render(fmt.Sprint(st.Step.Carry)) + "\n")
	b.WriteString(s.dim.Render("line   ") + s.text.Render(fmt.Sprintf("%d (%s)", st.Step.Line, st.Step.Line)) + "\n")
	b.WriteString(s.dim.Render("       ") + s.text.Render(st.Step.Description) + "\n\n")

	if m.editing {
		b.WriteString(m.viewEdit())
	} else {
		b.WriteString(s.separator(48) + "\n")
		b.WriteString(s.dim.Render(" ←→ step  space play  r reset  g/G ends  1-4 examples  x random  e edit  t theme  q quit") + "\n")
	}
	return b.String()
}

func (m model) viewEdit() string {
	s := m.styles
	var b strings.Builder
	for i, name := range []string{"l1", "l2"} {
		val := m.edit[i]
		if field(i) == m.field {
			b.WriteString(s.pointer.Render(" ▸ ") + s.text.Render(name+": "+val+"▋") + "\n")
		} else {
			b.WriteString("   " + s.dim.Render(name+": "+val) + "\n")
		}
	}
	if m.err != nil {
		for _, line := range strings.Split(m.err.Error(), "\n") {
			b.WriteString("   " + s.errText.Render(line) + "\n")
		}
	}
	b.WriteString(s.dim.Render(" tab switch  enter apply  esc cancel") + "\n")
	return b.String()
}
