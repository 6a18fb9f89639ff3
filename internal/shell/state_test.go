package shell

import "testing"

func TestNewStartsOnMapViewWithBanners(t *testing.T) {
	s := New()
	if s.Active != MapView {
		t.Fatalf("expected initial selection %v, got %v", MapView, s.Active)
	}
	if !s.ShowDonateBanner || !s.ShowNoticeBanner {
		t.Fatalf("expected both banners visible, got donate=%t notice=%t", s.ShowDonateBanner, s.ShowNoticeBanner)
	}
	if s.Memory != "" {
		t.Fatalf("expected empty memory reading, got %q", s.Memory)
	}
}

func TestNavClickedSelectsEveryItem(t *testing.T) {
	for _, item := range NavItems() {
		t.Run(item.String(), func(t *testing.T) {
			s, effect := New().Apply(NavClicked{Item: item})
			if s.Active != item {
				t.Fatalf("expected active %v, got %v", item, s.Active)
			}
			if effect != EffectNone {
				t.Fatalf("expected no effect, got %v", effect)
			}
		})
	}
}

func TestNavClickedIgnoresOutOfRangeItem(t *testing.T) {
	s, _ := New().Apply(NavClicked{Item: Wiki})
	s, _ = s.Apply(NavClicked{Item: NavItem(42)})
	if s.Active != Wiki {
		t.Fatalf("expected selection to stay on %v, got %v", Wiki, s.Active)
	}
}

func TestBannersStayHidden(t *testing.T) {
	s, _ := New().Apply(HideDonateBanner{})
	if s.ShowDonateBanner {
		t.Fatal("expected donate banner hidden")
	}
	if !s.ShowNoticeBanner {
		t.Fatal("expected notice banner untouched")
	}

	s, _ = s.Apply(HideNoticeBanner{})
	events := []Event{
		NavClicked{Item: Roadmap},
		MemorySampled{Text: "RAM: 1.0% <- 0.1% EFTM"},
		ChangeTheme{},
		DonateKoFi{},
		OpenMapSettings{},
		NavClicked{Item: MapView},
		HideDonateBanner{},
		nil,
	}
	for _, ev := range events {
		s, _ = s.Apply(ev)
		if s.ShowDonateBanner || s.ShowNoticeBanner {
			t.Fatalf("banner reappeared after %T", ev)
		}
	}
}

func TestEffectsLeaveStateUntouched(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want Effect
	}{
		{name: "exit", ev: Exit{}, want: EffectExit},
		{name: "donate", ev: DonateKoFi{}, want: EffectDonate},
		{name: "map settings", ev: OpenMapSettings{}, want: EffectOpenMapSettings},
		{name: "theme", ev: ChangeTheme{}, want: EffectToggleTheme},
		{name: "nil", ev: nil, want: EffectNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := State{Active: Feedback, ShowDonateBanner: true, Memory: "x"}
			after, effect := before.Apply(tt.ev)
			if effect != tt.want {
				t.Fatalf("expected effect %v, got %v", tt.want, effect)
			}
			if after != before {
				t.Fatalf("expected state unchanged, got %+v", after)
			}
		})
	}
}

func TestMemorySampledReplacesReading(t *testing.T) {
	s, _ := New().Apply(MemorySampled{Text: "first"})
	s, _ = s.Apply(MemorySampled{Text: "second"})
	if s.Memory != "second" {
		t.Fatalf("expected latest reading, got %q", s.Memory)
	}
}

func TestNavItemWrapsAround(t *testing.T) {
	if got := Feedback.Next(); got != MapView {
		t.Fatalf("Feedback.Next() = %v, want %v", got, MapView)
	}
	if got := MapView.Prev(); got != Feedback {
		t.Fatalf("MapView.Prev() = %v, want %v", got, Feedback)
	}
	if got := Wiki.Next(); got != Roadmap {
		t.Fatalf("Wiki.Next() = %v, want %v", got, Roadmap)
	}
}

func TestParseNavItem(t *testing.T) {
	tests := []struct {
		input  string
		want   NavItem
		wantOK bool
	}{
		{input: "wiki", want: Wiki, wantOK: true},
		{input: " Tactical HUD ", want: TacticalHUD, wantOK: true},
		{input: "LOADOUTS", want: LoadoutCatalogue, wantOK: true},
		{input: "", want: MapView, wantOK: false},
		{input: "raid", want: MapView, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseNavItem(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("ParseNavItem(%q) = (%v, %t), want (%v, %t)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestEverySectionHasItems(t *testing.T) {
	counts := map[Section]int{}
	for _, item := range NavItems() {
		counts[item.Section()]++
	}
	for _, section := range Sections() {
		if counts[section] == 0 {
			t.Fatalf("section %q has no entries", section)
		}
	}
	if len(NavItems()) != 7 {
		t.Fatalf("expected 7 nav items, got %d", len(NavItems()))
	}
}
