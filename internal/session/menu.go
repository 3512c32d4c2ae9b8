package session

import "github.com/example/quizdraw/internal/geom"

// MenuStyle selects how a menu is presented.
type MenuStyle int

const (
	ActionSheet MenuStyle = iota
	Alert
)

// Role describes how a menu item is drawn and ordered.
type Role int

const (
	RoleDefault Role = iota
	RoleDestructive
	RoleCancel
)

// MenuItem is one choice in a menu. Action may be nil.
type MenuItem struct {
	Title  string
	Role   Role
	Action func()
}

// Menu is a contextual menu the host is asked to present.
type Menu struct {
	Title   string
	Message string
	Style   MenuStyle
	Anchor  geom.Point
	Items   []MenuItem
}

// Presenter shows and hides menus on behalf of a Controller. The host reports
// the user's choice back through Controller.Choose or Controller.DismissMenu.
type Presenter interface {
	Present(m Menu)
	Dismiss()
}

// CancelIndex returns the index of the first cancel item, or -1.
func (m Menu) CancelIndex() int {
	for i, it := range m.Items {
		if it.Role == RoleCancel {
			return i
		}
	}
	return -1
}
