package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding

	// dashboard
	newItem       key.Binding
	resume        key.Binding
	delete        key.Binding
	share         key.Binding
	copy          key.Binding
	scope         key.Binding
	status        key.Binding
	notifications key.Binding
	profile       key.Binding
	admin         key.Binding
	refresh       key.Binding
	signOut       key.Binding
	yes           key.Binding
	no            key.Binding

	// wizard
	nextStep   key.Binding
	prevStep   key.Binding
	saveDraft  key.Binding
	submit     key.Binding
	addRow     key.Binding
	removeRow  key.Binding
	attach     key.Binding
	attachScan key.Binding
	reopen     key.Binding
	copyRef    key.Binding

	// admin
	toggleRole key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),

	newItem:       key.NewBinding(key.WithKeys("n")),
	resume:        key.NewBinding(key.WithKeys("r")),
	delete:        key.NewBinding(key.WithKeys("d")),
	share:         key.NewBinding(key.WithKeys("s")),
	copy:          key.NewBinding(key.WithKeys("c")),
	scope:         key.NewBinding(key.WithKeys("tab")),
	status:        key.NewBinding(key.WithKeys("f")),
	notifications: key.NewBinding(key.WithKeys("i")),
	profile:       key.NewBinding(key.WithKeys("p")),
	admin:         key.NewBinding(key.WithKeys("a")),
	refresh:       key.NewBinding(key.WithKeys("g")),
	signOut:       key.NewBinding(key.WithKeys("L")),
	yes:           key.NewBinding(key.WithKeys("y")),
	no:            key.NewBinding(key.WithKeys("n", "esc")),

	nextStep:   key.NewBinding(key.WithKeys("pgdown", "ctrl+f")),
	prevStep:   key.NewBinding(key.WithKeys("pgup", "ctrl+b")),
	saveDraft:  key.NewBinding(key.WithKeys("ctrl+s")),
	submit:     key.NewBinding(key.WithKeys("ctrl+t")),
	addRow:     key.NewBinding(key.WithKeys("ctrl+a")),
	removeRow:  key.NewBinding(key.WithKeys("ctrl+x")),
	attach:     key.NewBinding(key.WithKeys("ctrl+o")),
	attachScan: key.NewBinding(key.WithKeys("ctrl+k")),
	reopen:     key.NewBinding(key.WithKeys("ctrl+e")),
	copyRef:    key.NewBinding(key.WithKeys("ctrl+y")),

	toggleRole: key.NewBinding(key.WithKeys("r")),
}
