package prompt

import (
	"os"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
)

// Option is one selectable row.
type Option struct {
	Title       string // value returned on selection, e.g. branch name
	Description string // secondary line, e.g. date and subject
}

// SelectResult holds the result of a selection prompt.
type SelectResult struct {
	Value     string
	Index     int
	Cancelled bool
}

type listItem struct {
	Option
	index int
}

func (i listItem) Title() string       { return i.Option.Title }
func (i listItem) Description() string { return i.Option.Description }
func (i listItem) FilterValue() string { return i.Option.Title }

type selectModel struct {
	list      list.Model
	done      bool
	cancelled bool
	selected  int
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		// While typing a filter, keys belong to the filter input.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(listItem); ok {
				m.selected = item.index
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.list.View())
}

// newSelectModel builds the list with the cursor on initial.
func newSelectModel(title string, options []Option, initial int, selected lipgloss.Style) selectModel {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = listItem{Option: opt, index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = selected
	delegate.Styles.SelectedDesc = selected.Bold(false).Faint(true)

	l := list.New(items, delegate, 80, min(2*len(options)+6, 24))
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)
	l.DisableQuitKeybindings()
	if initial > 0 && initial < len(options) {
		l.Select(initial)
	}

	return selectModel{list: l, selected: -1}
}

// Select shows a filterable list on stderr and returns the chosen option.
// The cursor starts at initial.
func Select(title string, options []Option, initial int, selected lipgloss.Style) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	p := tea.NewProgram(newSelectModel(title, options, initial, selected),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(colorprofile.Detect(os.Stderr, os.Environ())),
	)
	finalModel, err := p.Run()
	if err != nil {
		return SelectResult{}, err
	}
	return selectResult(finalModel.(selectModel), options), nil
}

func selectResult(m selectModel, options []Option) SelectResult {
	if m.cancelled || m.selected < 0 || m.selected >= len(options) {
		return SelectResult{Cancelled: true}
	}
	return SelectResult{
		Value: options[m.selected].Title,
		Index: m.selected,
	}
}
