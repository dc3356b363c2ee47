package popup

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search       key.Binding
	Open         key.Binding
	TogglePin    key.Binding
	CloseTab     key.Binding
	Exclude      key.Binding
	PinInactive  key.Binding
	UnpinAll     key.Binding
	CloseStale   key.Binding
	Refresh      key.Binding
	Quit         key.Binding
	ClearSearch  key.Binding
	ConfirmInput key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Open:         key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "open")),
		TogglePin:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pin/unpin")),
		CloseTab:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "close")),
		Exclude:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "exclude domain")),
		PinInactive:  key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "pin inactive")),
		UnpinAll:     key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "unpin all")),
		CloseStale:   key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "close inactive")),
		Refresh:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ClearSearch:  key.NewBinding(key.WithKeys("esc")),
		ConfirmInput: key.NewBinding(key.WithKeys("enter")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Search, k.Open, k.TogglePin, k.CloseTab, k.Exclude, k.PinInactive, k.UnpinAll, k.CloseStale, k.Quit}
}
