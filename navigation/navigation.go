package navigation

import (
	_ "embed"
	"fmt"

	"storefront/models"

	"gopkg.in/yaml.v3"
)

//go:embed navigation.yaml
var rawMenus []byte

// Item is a sidebar entry.
type Item struct {
	Key    string `yaml:"key" json:"key"`
	Label  string `yaml:"label" json:"label"`
	Path   string `yaml:"path" json:"path"`
	Icon   string `yaml:"icon" json:"icon"`
	Active bool   `yaml:"-" json:"active"`
}

// Menu is the sidebar of one dashboard.
type Menu struct {
	Dashboard string `yaml:"dashboard" json:"dashboard"`
	Items     []Item `yaml:"items" json:"items"`
}

var menus map[string]Menu

func init() {
	m, err := parse(rawMenus)
	if err != nil {
		panic(err)
	}
	menus = m
}

func parse(raw []byte) (map[string]Menu, error) {
	var m map[string]Menu
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse navigation: %w", err)
	}
	for _, name := range []string{"student", "instructor", "admin", "moderator"} {
		if len(m[name].Items) == 0 {
			return nil, fmt.Errorf("parse navigation: menu %q is empty", name)
		}
	}
	return m, nil
}

func menuName(role models.Role) string {
	switch role {
	case models.RoleStudent:
		return "student"
	case models.RoleInstructor:
		return "instructor"
	case models.RoleAdmin, models.RoleSuperAdmin:
		return "admin"
	case models.RoleModerator:
		return "moderator"
	}
	return ""
}

// ForRole returns the dashboard menu for role. Unknown roles have no menu.
func ForRole(role models.Role) (Menu, bool) {
	m, ok := menus[menuName(role)]
	if !ok {
		return Menu{}, false
	}
	items := make([]Item, len(m.Items))
	copy(items, m.Items)
	m.Items = items
	return m, true
}

// LoginRedirect is where a user lands after signing in.
func LoginRedirect(role models.Role) string {
	if m, ok := ForRole(role); ok {
		return m.Dashboard
	}
	return "/"
}

// WithActive marks the item for tab as active; an empty or unknown tab selects the first item.
func (m Menu) WithActive(tab string) Menu {
	if len(m.Items) == 0 {
		return m
	}
	idx := 0
	for i, it := range m.Items {
		if it.Key == tab {
			idx = i
			break
		}
	}
	items := make([]Item, len(m.Items))
	for i, it := range m.Items {
		it.Active = i == idx
		items[i] = it
	}
	m.Items = items
	return m
}

// Allows reports whether the menu contains tab.
func (m Menu) Allows(tab string) bool {
	for _, it := range m.Items {
		if it.Key == tab {
			return true
		}
	}
	return false
}
