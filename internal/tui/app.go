// Package tui implements the launchtheme terminal theme picker.
package tui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/launchtime/launchtheme/internal/theme"
	"github.com/launchtime/launchtheme/internal/tui/components"
	"github.com/launchtime/launchtheme/internal/tui/styles"
)

// Options configures the picker.
type Options struct {
	Registry  *theme.Registry
	Resources theme.ResourceColors

	// Active is highlighted first.
	Active string

	// Base supplies the status colors and the chrome for themes without a
	// palette.
	Base styles.Theme
}

// Result reports the picker outcome.
type Result struct {
	Key      string
	Selected bool
}

// Run launches the picker and blocks until the user selects or quits.
func Run(opts Options) (Result, error) {
	m, err := NewModel(opts)
	if err != nil {
		return Result{}, err
	}
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return Result{}, err
	}
	return final.(Model).Result(), nil
}

// Model is the bubbletea model of the picker.
type Model struct {
	themes    []*theme.Descriptor
	resources theme.ResourceColors
	base      styles.Theme
	styles    styles.Styles

	cursor    int
	filter    string
	filtering bool
	selected  string
	width     int
	height    int
}

const (
	minWidth  = 50
	minHeight = 12
)

// NewModel builds a picker model positioned on opts.Active.
func NewModel(opts Options) (Model, error) {
	if opts.Registry == nil || opts.Registry.Len() == 0 {
		return Model{}, errors.New("no themes to pick from")
	}
	if opts.Resources == nil {
		return Model{}, errors.New("resource colors are required")
	}
	base := opts.Base
	if base.Name == "" {
		base = styles.DefaultTheme
	}

	m := Model{
		themes:    opts.Registry.Themes(),
		resources: opts.Resources,
		base:      base,
	}
	for i, d := range m.themes {
		if d.Key() == opts.Active {
			m.cursor = i
			break
		}
	}
	m.restyle()
	return m, nil
}

// Result returns the selected key, if any.
func (m Model) Result() Result {
	return Result{Key: m.selected, Selected: m.selected != ""}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "/":
			m.filtering = true
		case "enter":
			if d := m.current(); d != nil {
				m.selected = d.Key()
				return m, tea.Quit
			}
		case "esc":
			if m.filter != "" {
				m.filter = ""
				m.cursor = 0
				m.restyle()
				return m, nil
			}
			return m, tea.Quit
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		m.filtering = false
	case tea.KeyEsc:
		m.filtering = false
		m.filter = ""
	case tea.KeyBackspace:
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		m.filter += string(msg.Runes)
	default:
		return m, nil
	}
	m.cursor = 0
	m.restyle()
	return m, nil
}

func (m *Model) move(delta int) {
	visible := m.visible()
	if len(visible) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(visible)) % len(visible)
	m.restyle()
}

// visible returns the themes matching the filter by key or name.
func (m Model) visible() []*theme.Descriptor {
	if m.filter == "" {
		return m.themes
	}
	needle := strings.ToLower(m.filter)
	out := make([]*theme.Descriptor, 0, len(m.themes))
	for _, d := range m.themes {
		if strings.Contains(strings.ToLower(d.Key()), needle) || strings.Contains(strings.ToLower(d.Name()), needle) {
			out = append(out, d)
		}
	}
	return out
}

func (m Model) current() *theme.Descriptor {
	visible := m.visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil
	}
	return visible[m.cursor]
}

// restyle previews the highlighted theme in the picker chrome.
func (m *Model) restyle() {
	m.styles = styles.BuildStyles(styles.FromDescriptor(m.current(), m.resources, m.base))
}

func (m Model) View() string {
	if m.width > 0 && m.height > 0 {
		if m.width < minWidth || m.height < minHeight {
			return strings.Join(m.smallViewLines(), "\n") + "\n"
		}
	}

	lines := []string{m.styles.Title.Render("Pick a theme"), ""}

	visible := m.visible()
	if len(visible) == 0 {
		lines = append(lines, components.EmptyThemesFiltered(m.filter).Render(m.styles))
	}
	for i, d := range visible {
		label := fmt.Sprintf("%-14s %s", d.Key(), d.Name())
		if i == m.cursor {
			lines = append(lines, m.styles.TabSelected.Render("> "+label))
		} else {
			lines = append(lines, m.styles.Tab.Render("  "+label))
		}
	}

	if d := m.current(); d != nil {
		lines = append(lines, "", components.RenderPalette(m.styles, d, m.resources))
	}

	lines = append(lines, "")
	if m.filtering || m.filter != "" {
		lines = append(lines, m.styles.Accent.Render("Filter: "+m.filter))
	}
	lines = append(lines, components.RenderFooter(m.styles, components.PickerQuickActions(m.filtering, m.current() != nil), m.width))

	return strings.Join(lines, "\n") + "\n"
}

func (m Model) smallViewLines() []string {
	message := fmt.Sprintf("Terminal too small (%dx%d).", m.width, m.height)
	hint := fmt.Sprintf("Resize to at least %dx%d.", minWidth, minHeight)

	return []string{
		m.styles.Warning.Render(message),
		m.styles.Muted.Render(hint),
		m.styles.Muted.Render("Press q to quit."),
	}
}
