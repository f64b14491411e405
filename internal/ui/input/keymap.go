package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit         key.Binding
	ForceQuit    key.Binding
	Help         key.Binding
	Back         key.Binding
	Accept       key.Binding
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Top          key.Binding
	Bottom       key.Binding
	NextSection  key.Binding
	PrevSection  key.Binding
	Goto         key.Binding
	Copy         key.Binding
	Profile      key.Binding
	Skills       key.Binding
	Projects     key.Binding
	Certificates key.Binding
	Contact      key.Binding
}

var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	// ForceQuit also works while text input has focus.
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("h", "?"),
		key.WithHelp("h", "Help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Press button"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "Scroll up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "Scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "b"),
		key.WithHelp("pgup", "Page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", " ", "f"),
		key.WithHelp("pgdn", "Page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("home", "g"),
		key.WithHelp("g", "Top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("end", "G"),
		key.WithHelp("G", "Bottom"),
	),
	NextSection: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next section"),
	),
	PrevSection: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift tab", "Prev section"),
	),
	Goto: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "Go to"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "Copy email"),
	),
	Profile: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "Profile"),
	),
	Skills: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "Skills"),
	),
	Projects: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "Projects"),
	),
	Certificates: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "Certificates"),
	),
	Contact: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "Contact"),
	),
}
