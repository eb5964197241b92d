package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Makepad-fr/tint/internal/theme"
	"github.com/Makepad-fr/tint/internal/ui"
	"github.com/Makepad-fr/tint/internal/window"
)

// Deps is what the switcher needs from the host program.
type Deps struct {
	Selector     *theme.Selector
	Binder       *theme.Binder
	ThemesDir    string
	StatePath    string
	DefaultTheme string
}

// listItem adapts a theme to bubbles/list.Item
type listItem struct {
	theme *theme.Theme
}

func (i listItem) Title() string       { return i.theme.Name() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.theme.Name() }

type keyMap struct {
	Apply, NewPane, ClosePane, Focus, Prompt, Reload, Quit key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Apply:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply")),
		NewPane:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new pane")),
		ClosePane: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close pane")),
		Focus:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Prompt:    key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "by name")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:      key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Apply, k.NewPane, k.ClosePane, k.Focus, k.Prompt, k.Reload}
}

type modelTUI struct {
	deps  Deps
	keys  keyMap
	list  list.Model
	root  *window.Window
	panes []*window.Window
	focus int
	made  int // panes opened so far, for titles

	// Select-by-name prompt
	prompting bool
	ti        textinput.Model
	promptErr string

	status        string
	width, height int
}

// Custom delegate to control how items render (single line)
type itemDelegate struct {
	sel  *theme.Selector
	root *window.Window
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	s := d.root.Styles().Head()
	if s == nil {
		s = ui.MustBuiltin(ui.BuiltinLight)
	}

	box, text := s.Muted.Render(s.BoxUnchecked), s.Text.Render(it.theme.Name())
	if it.theme == d.sel.Selected() {
		box, text = s.Success.Render(s.BoxChecked), s.Title.Render(it.theme.Name())
	}
	prefix := "  "
	if index == m.Index() {
		prefix = s.Accent.Render("> ")
	}
	fmt.Fprintln(w, prefix+box+" "+text)
}

func newModel(d Deps) modelTUI {
	keys := newKeyMap()
	root := window.New("tint")
	// The app frame follows the theme like any pane. root is never nil.
	_ = d.Binder.Enable(root)
	root.Show()

	l := list.New(themeItems(d.Selector.Registry()), itemDelegate{sel: d.Selector, root: root}, 0, 0)
	l.Title = "Themes"
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("theme", "themes")
	l.AdditionalShortHelpKeys = keys.help
	l.AdditionalFullHelpKeys = keys.help

	m := modelTUI{deps: d, keys: keys, list: l, root: root}
	m.ti = textinput.New()
	m.ti.Prompt = ": "
	m.ti.Placeholder = "Theme name..."
	m.ti.CharLimit = 80
	m.resize(80, 24)
	m.selectCursor()
	return m
}

// Run starts the switcher and saves the selection when it exits.
func Run(d Deps) error {
	m := newModel(d)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if fm, ok := final.(modelTUI); ok {
		fm.shutdown()
	} else {
		m.shutdown()
	}
	theme.SaveSelection(d.StatePath, d.Selector.Selected())
	return err
}

func (m modelTUI) shutdown() {
	for _, w := range m.panes {
		w.Close()
	}
	m.root.Close()
}

// Update and View implement Bubble Tea's Model on modelTUI
func (m modelTUI) Init() tea.Cmd { return nil }

func (m modelTUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		m.resize(sz.Width, sz.Height)
		return m, nil
	}

	// prompt mode
	if m.prompting {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				name := strings.TrimSpace(m.ti.Value())
				if !m.deps.Selector.SelectByName(name) {
					m.promptErr = fmt.Sprintf("no theme named %q", name)
					return m, nil
				}
				m.status = "applied " + name
				m.closePrompt()
				m.selectCursor()
				return m, nil
			case "esc":
				m.closePrompt()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	// let the list own keys while the user types a filter, and esc while
	// one is applied
	if m.list.FilterState() == list.Filtering ||
		(m.list.FilterState() == list.FilterApplied && isEsc(msg)) {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Apply):
			if it, ok := m.list.SelectedItem().(listItem); ok {
				if err := m.deps.Selector.Set(it.theme); err != nil {
					m.status = err.Error()
				} else {
					m.status = "applied " + it.theme.Name()
				}
			}
			return m, nil
		case key.Matches(msg, m.keys.NewPane):
			m.openPane()
			return m, nil
		case key.Matches(msg, m.keys.ClosePane):
			m.closePane()
			return m, nil
		case key.Matches(msg, m.keys.Focus):
			if len(m.panes) > 0 {
				m.focus = (m.focus + 1) % len(m.panes)
			}
			return m, nil
		case key.Matches(msg, m.keys.Prompt):
			m.prompting = true
			m.promptErr = ""
			m.ti.SetValue("")
			m.ti.Focus()
			return m, nil
		case key.Matches(msg, m.keys.Reload):
			m.reload()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func isEsc(msg tea.Msg) bool {
	k, ok := msg.(tea.KeyMsg)
	return ok && k.Type == tea.KeyEsc
}

func (m *modelTUI) openPane() {
	m.made++
	w := window.New(fmt.Sprintf("Pane %d", m.made))
	if err := m.deps.Binder.Enable(w); err != nil {
		m.status = err.Error()
		return
	}
	w.Show()
	m.panes = append(m.panes, w)
	m.focus = len(m.panes) - 1
	m.status = "opened " + w.Title
}

func (m *modelTUI) closePane() {
	if len(m.panes) == 0 {
		return
	}
	w := m.panes[m.focus]
	w.Close() // the binder detaches on the closing signal
	m.panes = append(m.panes[:m.focus:m.focus], m.panes[m.focus+1:]...)
	if m.focus >= len(m.panes) && m.focus > 0 {
		m.focus--
	}
	m.status = "closed " + w.Title
}

func (m *modelTUI) closePrompt() {
	m.prompting = false
	m.promptErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

// reload re-reads the themes directory into the live registry and keeps the
// previous choice when a theme of that name is still there.
func (m *modelTUI) reload() {
	sel := m.deps.Selector
	prev := ""
	if cur := sel.Selected(); cur != nil {
		prev = cur.Name()
	}
	fresh := theme.LoadDirSafe(m.deps.ThemesDir)
	reg := sel.Registry()
	reg.Clear()
	_ = reg.AddAll(fresh.Themes()...)
	sel.SelectFallback(prev, m.deps.DefaultTheme)

	m.list.SetItems(themeItems(reg))
	m.selectCursor()
	m.status = fmt.Sprintf("reloaded %d themes", reg.Len())
}

// selectCursor moves the list cursor onto the active theme.
func (m *modelTUI) selectCursor() {
	cur := m.deps.Selector.Selected()
	for i, it := range m.list.Items() {
		if li, ok := it.(listItem); ok && li.theme == cur {
			m.list.Select(i)
			return
		}
	}
}

func (m *modelTUI) resize(w, h int) {
	m.width, m.height = w, h
	listHeight := h - 6
	if listHeight < 5 {
		listHeight = 5
	}
	m.list.SetSize(w/3, listHeight)
}

func (m modelTUI) View() string {
	s := m.root.Styles().Head()
	if s == nil {
		s = ui.MustBuiltin(ui.BuiltinLight)
	}

	left := m.list.View()
	right := m.panesView(s)
	content := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)

	if m.prompting {
		title := "Select theme by name"
		if m.promptErr != "" {
			title += ": " + s.Error.Render(m.promptErr)
		}
		content += "\n" + ui.Panel(s, []string{title, m.ti.View()})
	}
	if m.status != "" {
		content += "\n" + s.Muted.Render(m.status)
	}
	return m.root.View(content, m.width, false)
}

func (m modelTUI) panesView(s *ui.Sheet) string {
	if len(m.panes) == 0 {
		return s.Muted.Render("no panes open, press n")
	}
	width := m.width - m.width/3 - 8
	views := make([]string, 0, len(m.panes))
	for i, w := range m.panes {
		views = append(views, w.View(sample(w.Styles().Head()), width, i == m.focus))
	}
	return lipgloss.JoinVertical(lipgloss.Left, views...)
}

// sample is the preview body of a pane, drawn with the pane's own sheet.
func sample(s *ui.Sheet) string {
	if s == nil {
		return "(unthemed)"
	}
	return strings.Join([]string{
		s.Text.Render("The quick brown fox"),
		s.Success.Render(s.SymDone+" saved") + "  " + s.Pending.Render(s.SymPending+" pending") + "  " + s.Error.Render("✖ failed"),
		ui.ProgressBar(s, 3, 5, 16),
	}, "\n")
}

func themeItems(reg *theme.Registry) []list.Item {
	items := make([]list.Item, 0, reg.Len())
	for t := range reg.All() {
		items = append(items, listItem{theme: t})
	}
	return items
}
