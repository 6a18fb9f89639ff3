package app

import (
	"slices"
	"strings"

	"github.com/eftm-project/eftm/internal/config"
	"github.com/eftm-project/eftm/internal/shell"
)

// ---------------------------------------------------------------------------
// Action constants
// ---------------------------------------------------------------------------
//
// Actions sit between physical key presses and shell events: a key is looked
// up in keyToAction and the action is dispatched by handleKey. Defaults live
// in defaultActionKeys and can be replaced per action through the
// "keybindings" object of the config file.
// ---------------------------------------------------------------------------

const (
	actionNavMap      = "nav.map"
	actionNavHUD      = "nav.hud"
	actionNavItems    = "nav.items"
	actionNavLoadouts = "nav.loadouts"
	actionNavWiki     = "nav.wiki"
	actionNavRoadmap  = "nav.roadmap"
	actionNavFeedback = "nav.feedback"

	// actionNavPrev and actionNavNext walk the sidebar with wrap-around.
	actionNavPrev = "nav.prev"
	actionNavNext = "nav.next"

	actionHideDonate  = "banner.donate.hide"
	actionHideNotice  = "banner.notice.hide"
	actionDonate      = "banner.donate.open"
	actionMapSettings = "map.settings.open"
	actionTheme       = "theme.toggle"

	actionScrollPageUp   = "content.scroll.page_up"
	actionScrollPageDown = "content.scroll.page_down"

	actionHelp = "help.toggle"
	actionQuit = "app.quit"
)

// defaultActionKeys maps each action to its factory-default key bindings.
//
// Key strings use the Bubble Tea notation ("ctrl+c", "pgup", "shift+k").
var defaultActionKeys = map[string][]string{
	actionNavMap:         {"1", "m"},
	actionNavHUD:         {"2", "h"},
	actionNavItems:       {"3", "i"},
	actionNavLoadouts:    {"4", "c"},
	actionNavWiki:        {"5", "w"},
	actionNavRoadmap:     {"6", "r"},
	actionNavFeedback:    {"7", "f"},
	actionNavPrev:        {"up", "k"},
	actionNavNext:        {"down", "j"},
	actionHideDonate:     {"x"},
	actionHideNotice:     {"n"},
	actionDonate:         {"shift+k"},
	actionMapSettings:    {"o"},
	actionTheme:          {"t"},
	actionScrollPageUp:   {"pgup"},
	actionScrollPageDown: {"pgdown"},
	actionHelp:           {"?"},
	actionQuit:           {"q", "ctrl+c"},
}

// navActions binds each navigation action to the item it selects.
var navActions = map[string]shell.NavItem{
	actionNavMap:      shell.MapView,
	actionNavHUD:      shell.TacticalHUD,
	actionNavItems:    shell.ItemManager,
	actionNavLoadouts: shell.LoadoutCatalogue,
	actionNavWiki:     shell.Wiki,
	actionNavRoadmap:  shell.Roadmap,
	actionNavFeedback: shell.Feedback,
}

// eventActions are actions that translate one-to-one into a shell event.
var eventActions = map[string]shell.Event{
	actionHideDonate:  shell.HideDonateBanner{},
	actionHideNotice:  shell.HideNoticeBanner{},
	actionDonate:      shell.DonateKoFi{},
	actionMapSettings: shell.OpenMapSettings{},
	actionTheme:       shell.ChangeTheme{},
	actionQuit:        shell.Exit{},
}

// loadKeybindings builds the key/action maps from the defaults and then the
// config overrides. An override replaces the action's full default key set.
func (m *Model) loadKeybindings(cfg config.Config) {
	m.keyForAction = map[string][]string{}
	for action, keys := range defaultActionKeys {
		m.keyForAction[action] = append([]string(nil), keys...)
	}
	for action, key := range cfg.Keybindings {
		m.applyKeybindingOverride(action, key)
	}
	m.rebuildActionKeyIndex()
}

func (m *Model) applyKeybindingOverride(action, key string) {
	action = strings.TrimSpace(action)
	key = normalizeKeyString(key)
	if action == "" || key == "" {
		return
	}
	if _, ok := defaultActionKeys[action]; !ok {
		appLog.Warn("ignore unknown keybinding action", "action", action)
		return
	}
	m.keyForAction[action] = []string{key}
}

// rebuildActionKeyIndex builds the reverse key -> action map. When two
// actions claim the same key the first one seen keeps it; actions are visited
// in sorted order so the winner is stable across runs.
func (m *Model) rebuildActionKeyIndex() {
	m.keyToAction = map[string]string{}
	actions := make([]string, 0, len(m.keyForAction))
	for action := range m.keyForAction {
		actions = append(actions, action)
	}
	slices.Sort(actions)
	for _, action := range actions {
		for _, key := range m.keyForAction[action] {
			if key == "" {
				continue
			}
			if existing, ok := m.keyToAction[key]; ok && existing != action {
				appLog.Warn("keybinding conflict ignored", "key", key, "action", action, "existing_action", existing)
				continue
			}
			m.keyToAction[key] = action
		}
	}
}

// normalizeKeyString lowercases a key string and rewrites a single uppercase
// letter ("K") to its shifted form ("shift+k"), since Bubble Tea may report
// shifted letters either way.
func normalizeKeyString(key string) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}
	if len([]rune(key)) == 1 && strings.ToUpper(key) == key && strings.ToLower(key) != key {
		return "shift+" + strings.ToLower(key)
	}
	return strings.ToLower(key)
}

func (m *Model) actionForKey(key string) string {
	if m.keyToAction == nil {
		return ""
	}
	return m.keyToAction[normalizeKeyString(key)]
}

func (m *Model) actionKeyLabels(action string) []string {
	keys, ok := m.keyForAction[action]
	if !ok || len(keys) == 0 {
		return nil
	}
	labels := make([]string, 0, len(keys))
	for _, key := range keys {
		label := humanizeKeyLabel(key)
		if label == "" || slices.Contains(labels, label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

func (m *Model) primaryActionKey(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return keys[0]
}

func (m *Model) allActionKeys(action, fallback string) string {
	keys := m.actionKeyLabels(action)
	if len(keys) == 0 {
		return fallback
	}
	return strings.Join(keys, ", ")
}

func humanizeKeyLabel(key string) string {
	normalized := normalizeKeyString(key)
	if normalized == "" {
		return ""
	}
	if normalized == "+" {
		return "+"
	}
	special := map[string]string{
		"up":     "↑",
		"down":   "↓",
		"left":   "←",
		"right":  "→",
		"enter":  "Enter",
		"esc":    "Esc",
		"tab":    "Tab",
		"pgup":   "PgUp",
		"pgdown": "PgDn",
		"space":  "Space",
	}
	parts := strings.Split(normalized, "+")
	for i, part := range parts {
		switch part {
		case "ctrl":
			parts[i] = "Ctrl"
		case "alt":
			parts[i] = "Alt"
		case "shift":
			parts[i] = "Shift"
		case "":
			continue
		default:
			if label, ok := special[part]; ok {
				parts[i] = label
				continue
			}
			runes := []rune(part)
			if len(runes) == 1 && runes[0] >= 'a' && runes[0] <= 'z' {
				parts[i] = strings.ToUpper(part)
			} else {
				parts[i] = strings.ToUpper(part[:1]) + part[1:]
			}
		}
	}
	return strings.Join(parts, "+")
}
