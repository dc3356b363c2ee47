package settingsform

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/bnema/tabzen/internal/adapters/render/theme"
	"github.com/bnema/tabzen/internal/domain"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var ErrCancelled = errors.New("settings edit cancelled")

type Saver interface {
	Save(ctx context.Context, settings domain.Settings) error
}

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldToggle
	fieldChoice
)

type field struct {
	label   string
	kind    fieldKind
	input   textinput.Model
	on      bool
	choices []string
	choice  int
}

const (
	idxThreshold = iota
	idxExcludePinned
	idxDomains
	idxTheme
	idxAutoPin
	idxShowStats
	idxShowIdle
	idxGroupName
	idxGroupAction
	fieldCount
)

type savedMsg struct{ err error }

type keyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Left   key.Binding
	Save   key.Binding
	Cancel key.Binding
}

// Model edits every user setting and saves them in one go.
type Model struct {
	ctx    context.Context
	saver  Saver
	keys   keyMap
	fields []field
	focus  int

	saved     bool
	cancelled bool
	err       error
	result    domain.Settings
}

func New(ctx context.Context, saver Saver, current domain.Settings) Model {
	if ctx == nil {
		ctx = context.Background()
	}

	fields := make([]field, fieldCount)
	fields[idxThreshold] = textField("Inactivity threshold (minutes)", strconv.Itoa(current.InactivityThreshold))
	fields[idxExcludePinned] = toggleField("Exclude pinned tabs", current.ExcludePinnedTabs)
	fields[idxDomains] = textField("Excluded domains (comma separated)", strings.Join(current.ExcludedDomains, ", "))
	fields[idxTheme] = choiceField("Theme", []string{string(domain.ThemeLight), string(domain.ThemeDark)}, string(current.Theme))
	fields[idxAutoPin] = toggleField("Auto-pin enabled", current.AutoPinEnabled)
	fields[idxShowStats] = toggleField("Show stats", current.ShowStats)
	fields[idxShowIdle] = toggleField("Show inactivity time", current.ShowInactivityTime)
	fields[idxGroupName] = textField("Group name", current.GroupName)
	fields[idxGroupAction] = choiceField("Inactive tab action", []string{
		string(domain.GroupActionPin),
		string(domain.GroupActionGroup),
		string(domain.GroupActionBoth),
	}, string(current.GroupAction))

	m := Model{
		ctx:    ctx,
		saver:  saver,
		fields: fields,
		result: current,
		keys: keyMap{
			Next:   key.NewBinding(key.WithKeys("tab", "down")),
			Prev:   key.NewBinding(key.WithKeys("shift+tab", "up")),
			Toggle: key.NewBinding(key.WithKeys(" ", "right")),
			Left:   key.NewBinding(key.WithKeys("left")),
			Save:   key.NewBinding(key.WithKeys("enter", "ctrl+s")),
			Cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
		},
	}
	m.fields[0].input.Focus()

	return m
}

func textField(label, value string) field {
	input := textinput.New()
	input.SetValue(value)
	input.Cursor.SetMode(cursor.CursorStatic)
	return field{label: label, kind: fieldText, input: input}
}

func toggleField(label string, on bool) field {
	return field{label: label, kind: fieldToggle, on: on}
}

func choiceField(label string, choices []string, current string) field {
	f := field{label: label, kind: fieldChoice, choices: choices}
	for i, c := range choices {
		if c == current {
			f.choice = i
		}
	}
	return f
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.saved = true
		return m, tea.Quit

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Save):
			return m.save()
		case key.Matches(msg, m.keys.Next):
			return m.move(1), nil
		case key.Matches(msg, m.keys.Prev):
			return m.move(-1), nil
		}

		f := &m.fields[m.focus]
		switch f.kind {
		case fieldToggle:
			if key.Matches(msg, m.keys.Toggle, m.keys.Left) {
				f.on = !f.on
			}
			return m, nil
		case fieldChoice:
			switch {
			case key.Matches(msg, m.keys.Toggle):
				f.choice = (f.choice + 1) % len(f.choices)
			case key.Matches(msg, m.keys.Left):
				f.choice = (f.choice + len(f.choices) - 1) % len(f.choices)
			}
			return m, nil
		}

		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) move(delta int) Model {
	m.fields[m.focus].input.Blur()
	m.focus = (m.focus + delta + len(m.fields)) % len(m.fields)
	if m.fields[m.focus].kind == fieldText {
		m.fields[m.focus].input.Focus()
	}

	return m
}

func (m Model) save() (tea.Model, tea.Cmd) {
	settings, err := m.settings()
	if err != nil {
		m.err = err
		return m, nil
	}

	m.err = nil
	m.result = settings
	saver, ctx := m.saver, m.ctx
	return m, func() tea.Msg {
		return savedMsg{err: saver.Save(ctx, settings)}
	}
}

// settings reads the form back into a Settings value.
func (m Model) settings() (domain.Settings, error) {
	raw := strings.TrimSpace(m.fields[idxThreshold].input.Value())
	threshold, err := strconv.Atoi(raw)
	if err != nil {
		return domain.Settings{}, fmt.Errorf("inactivity threshold %q is not a number: %w", raw, domain.ErrInvalidSettings)
	}

	var domains []string
	for _, d := range strings.Split(m.fields[idxDomains].input.Value(), ",") {
		if d = strings.TrimSpace(d); d != "" {
			domains = append(domains, d)
		}
	}
	if domains == nil {
		domains = []string{}
	}

	return domain.Settings{
		InactivityThreshold: threshold,
		ExcludePinnedTabs:   m.fields[idxExcludePinned].on,
		ExcludedDomains:     domains,
		Theme:               domain.Theme(m.fields[idxTheme].selected()),
		AutoPinEnabled:      m.fields[idxAutoPin].on,
		ShowStats:           m.fields[idxShowStats].on,
		ShowInactivityTime:  m.fields[idxShowIdle].on,
		GroupName:           m.fields[idxGroupName].input.Value(),
		GroupAction:         domain.GroupAction(m.fields[idxGroupAction].selected()),
	}, nil
}

func (f field) selected() string {
	return f.choices[f.choice]
}

// Result returns the saved settings, or ErrCancelled when the user left without saving.
func (m Model) Result() (domain.Settings, error) {
	if !m.saved {
		return domain.Settings{}, ErrCancelled
	}

	return m.result, nil
}

func (m Model) View() string {
	p := theme.For(domain.Theme(m.fields[idxTheme].selected()))
	title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent)
	label := lipgloss.NewStyle().Foreground(p.Subtle).Width(36)
	focused := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Width(36)
	value := lipgloss.NewStyle().Foreground(p.Text)
	muted := lipgloss.NewStyle().Foreground(p.Muted)
	danger := lipgloss.NewStyle().Bold(true).Foreground(p.Danger)

	var b strings.Builder
	b.WriteString(title.Render("TabZen settings"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		l := label
		cursorMark := "  "
		if i == m.focus {
			l = focused
			cursorMark = "> "
		}
		b.WriteString(cursorMark)
		b.WriteString(l.Render(f.label))
		b.WriteString(value.Render(f.render()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(danger.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(muted.Render("tab/shift+tab:move | space:toggle | enter:save | esc:cancel"))

	return b.String()
}

func (f field) render() string {
	switch f.kind {
	case fieldToggle:
		if f.on {
			return "[x]"
		}
		return "[ ]"
	case fieldChoice:
		return "< " + f.selected() + " >"
	default:
		return f.input.View()
	}
}
