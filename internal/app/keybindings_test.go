package app

import (
	"testing"

	"github.com/eftm-project/eftm/internal/config"
)

func TestActionForKeySupportsDefaultAliases(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{})

	cases := map[string]string{
		"1":       actionNavMap,
		"m":       actionNavMap,
		"2":       actionNavHUD,
		"4":       actionNavLoadouts,
		"c":       actionNavLoadouts,
		"up":      actionNavPrev,
		"k":       actionNavPrev,
		"down":    actionNavNext,
		"j":       actionNavNext,
		"x":       actionHideDonate,
		"n":       actionHideNotice,
		"K":       actionDonate,
		"shift+k": actionDonate,
		"o":       actionMapSettings,
		"t":       actionTheme,
		"pgdown":  actionScrollPageDown,
		"?":       actionHelp,
		"ctrl+c":  actionQuit,
	}
	for key, want := range cases {
		if got := m.actionForKey(key); got != want {
			t.Fatalf("actionForKey(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestActionTablesDoNotOverlap(t *testing.T) {
	for action := range defaultActionKeys {
		_, nav := navActions[action]
		_, ev := eventActions[action]
		if nav && ev {
			t.Fatalf("action %q is bound twice", action)
		}
	}
	if len(navActions) != 7 {
		t.Fatalf("expected 7 navigation actions, got %d", len(navActions))
	}
}

func TestDefaultKeysDoNotConflict(t *testing.T) {
	seen := map[string]string{}
	for action, keys := range defaultActionKeys {
		for _, key := range keys {
			if other, ok := seen[key]; ok {
				t.Fatalf("key %q bound to both %q and %q", key, other, action)
			}
			seen[key] = action
		}
	}
}

func TestLoadKeybindingsOverrideReplacesDefaultAliases(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{
		Keybindings: map[string]string{
			actionNavWiki: "F2",
		},
	})

	if got := m.actionForKey("f2"); got != actionNavWiki {
		t.Fatalf("expected override key to map to wiki, got %q", got)
	}
	if got := m.actionForKey("5"); got != "" {
		t.Fatalf("expected default alias '5' to be replaced, got %q", got)
	}
	if got := m.actionForKey("w"); got != "" {
		t.Fatalf("expected default alias 'w' to be replaced, got %q", got)
	}
}

func TestLoadKeybindingsIgnoresUnknownActions(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{
		Keybindings: map[string]string{"map.zoom": "z"},
	})
	if got := m.actionForKey("z"); got != "" {
		t.Fatalf("expected unknown action to be ignored, got %q", got)
	}
}

func TestRebuildActionKeyIndexKeepsFirstActionOnConflict(t *testing.T) {
	m := &Model{}
	m.loadKeybindings(config.Config{
		Keybindings: map[string]string{
			actionTheme: "q",
		},
	})
	// "app.quit" sorts before "theme.toggle" and keeps q.
	if got := m.actionForKey("q"); got != actionQuit {
		t.Fatalf("expected quit to keep q, got %q", got)
	}
}

func TestOverriddenKeyDrivesUpdate(t *testing.T) {
	m := newSizedModel(t, Options{Config: config.Config{
		Keybindings: map[string]string{actionNavRoadmap: "R"},
	}}, 120, 40)

	m.Update(keyMsg("R"))
	if m.state.Active.String() != "roadmap" {
		t.Fatalf("expected shift+r to select the roadmap, got %s", m.state.Active)
	}
}

func TestHumanizeKeyLabel(t *testing.T) {
	cases := map[string]string{
		"ctrl+c":  "Ctrl+C",
		"shift+k": "Shift+K",
		"K":       "Shift+K",
		"pgdown":  "PgDn",
		"up":      "↑",
		"?":       "?",
		"1":       "1",
		"":        "",
	}
	for key, want := range cases {
		if got := humanizeKeyLabel(key); got != want {
			t.Fatalf("humanizeKeyLabel(%q) = %q, want %q", key, got, want)
		}
	}
}

func TestPrimaryActionKeyFallsBack(t *testing.T) {
	m := &Model{}
	if got := m.primaryActionKey(actionQuit, "q"); got != "q" {
		t.Fatalf("expected fallback without keybindings, got %q", got)
	}
	m.loadKeybindings(config.Config{})
	if got := m.allActionKeys(actionQuit, ""); got != "Q, Ctrl+C" {
		t.Fatalf("unexpected quit labels %q", got)
	}
}
