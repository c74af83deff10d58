package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Next       key.Binding
	Prev       key.Binding
	Select     key.Binding
	Back       key.Binding
	PCA        key.Binding
	UMAP       key.Binding
	Reload     key.Binding
	AutoRotate key.Binding
	OrbitLeft  key.Binding
	OrbitRight key.Binding
	OrbitUp    key.Binding
	OrbitDown  key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("right", "tab", "l"),
			key.WithHelp("→/tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "shift+tab", "h"),
			key.WithHelp("←", "previous"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace", "esc"),
			key.WithHelp("esc", "back"),
		),
		PCA: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "PCA"),
		),
		UMAP: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "UMAP"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		AutoRotate: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "auto-rotate"),
		),
		OrbitLeft: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "orbit left"),
		),
		OrbitRight: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "orbit right"),
		),
		OrbitUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "orbit up"),
		),
		OrbitDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "orbit down"),
		),
		ZoomIn: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "zoom in"),
		),
		ZoomOut: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "zoom out"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Select, k.Back, k.PCA, k.UMAP, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.Select, k.Back},
		{k.PCA, k.UMAP, k.Reload},
		{k.OrbitLeft, k.OrbitRight, k.OrbitUp, k.OrbitDown},
		{k.AutoRotate, k.ZoomIn, k.ZoomOut},
		{k.Help, k.Quit},
	}
}
