package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap - привязки клавиш списка турниров.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding
	Join key.Binding

	Search      key.Binding // фокус на поле поиска
	SearchDone  key.Binding // выход из поля поиска, текст сохраняется
	ClearSearch key.Binding

	CycleStatus      key.Binding
	CycleTimeControl key.Binding

	Retry key.Binding
	Quit  key.Binding
}

var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Join: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "join"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	SearchDone: key.NewBinding(
		key.WithKeys("enter", "esc"),
		key.WithHelp("enter", "done"),
	),
	ClearSearch: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
	CycleStatus: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "status"),
	),
	CycleTimeControl: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "time control"),
	),
	Retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "retry"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// helpLine renders the short help for the given bindings.
func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return joinHelp(parts)
}
