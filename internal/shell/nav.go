package shell

import "strings"

// NavItem is the single active sidebar choice.
type NavItem int

const (
	MapView NavItem = iota
	TacticalHUD
	ItemManager
	LoadoutCatalogue
	Wiki
	Roadmap
	Feedback

	navItemCount
)

// Section groups sidebar entries under a heading.
type Section string

const (
	SectionMain    Section = "Main"
	SectionTools   Section = "Tools"
	SectionSupport Section = "Support"
)

type navMeta struct {
	key     string
	label   string
	icon    string
	section Section
}

var navTable = [navItemCount]navMeta{
	MapView:          {key: "map", label: "Map View", icon: "[M]", section: SectionMain},
	TacticalHUD:      {key: "hud", label: "Tactical HUD", icon: "[H]", section: SectionMain},
	ItemManager:      {key: "items", label: "Item Manager", icon: "[I]", section: SectionTools},
	LoadoutCatalogue: {key: "loadouts", label: "Loadout Catalogue", icon: "[C]", section: SectionTools},
	Wiki:             {key: "wiki", label: "Wiki", icon: "[W]", section: SectionSupport},
	Roadmap:          {key: "roadmap", label: "Roadmap", icon: "[R]", section: SectionSupport},
	Feedback:         {key: "feedback", label: "Feedback", icon: "[F]", section: SectionSupport},
}

// NavItems returns every navigation entry in sidebar order.
func NavItems() []NavItem {
	items := make([]NavItem, 0, navItemCount)
	for i := NavItem(0); i < navItemCount; i++ {
		items = append(items, i)
	}
	return items
}

// Sections returns the sidebar headings in display order.
func Sections() []Section {
	return []Section{SectionMain, SectionTools, SectionSupport}
}

// Valid reports whether n is one of the closed set of entries.
func (n NavItem) Valid() bool {
	return n >= 0 && n < navItemCount
}

func (n NavItem) Label() string {
	if !n.Valid() {
		return ""
	}
	return navTable[n].label
}

func (n NavItem) Icon() string {
	if !n.Valid() {
		return ""
	}
	return navTable[n].icon
}

func (n NavItem) Section() Section {
	if !n.Valid() {
		return ""
	}
	return navTable[n].section
}

// String returns the stable key used in config files and logs.
func (n NavItem) String() string {
	if !n.Valid() {
		return "unknown"
	}
	return navTable[n].key
}

// Next returns the entry after n, wrapping to the first.
func (n NavItem) Next() NavItem {
	if !n.Valid() {
		return MapView
	}
	return (n + 1) % navItemCount
}

// Prev returns the entry before n, wrapping to the last.
func (n NavItem) Prev() NavItem {
	if !n.Valid() {
		return MapView
	}
	return (n + navItemCount - 1) % navItemCount
}

// ParseNavItem resolves a key ("wiki") or label ("Tactical HUD") case-insensitively.
func ParseNavItem(value string) (NavItem, bool) {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" {
		return MapView, false
	}
	for i, meta := range navTable {
		if value == meta.key || value == strings.ToLower(meta.label) {
			return NavItem(i), true
		}
	}
	return MapView, false
}
