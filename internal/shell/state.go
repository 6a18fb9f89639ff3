// Package shell holds the application state and the transition function that
// applies one event at a time to it.
//
// State is a plain value. Apply never blocks, never fails and touches at most
// one field; anything that reaches outside the state (quitting, clipboard,
// theme) is reported back as an Effect for the caller to carry out.
package shell

// Event is a discrete user or timer event. The set is closed: only the types
// declared in this package implement it.
type Event interface {
	event()
}

// NavClicked selects a sidebar entry.
type NavClicked struct {
	Item NavItem
}

// HideDonateBanner dismisses the donation banner for the rest of the session.
type HideDonateBanner struct{}

// HideNoticeBanner dismisses the map-data notice for the rest of the session.
type HideNoticeBanner struct{}

// OpenMapSettings is emitted by the notice banner action.
type OpenMapSettings struct{}

// DonateKoFi is emitted by the donation banner action.
type DonateKoFi struct{}

// ChangeTheme is emitted by the theme toggle in the content footer.
type ChangeTheme struct{}

// Exit terminates the program.
type Exit struct{}

// MemorySampled carries a freshly formatted memory reading.
type MemorySampled struct {
	Text string
}

func (NavClicked) event()       {}
func (HideDonateBanner) event() {}
func (HideNoticeBanner) event() {}
func (OpenMapSettings) event()  {}
func (DonateKoFi) event()       {}
func (ChangeTheme) event()      {}
func (Exit) event()             {}
func (MemorySampled) event()    {}

// Effect is work the caller performs after a transition.
type Effect int

const (
	EffectNone Effect = iota
	EffectExit
	EffectDonate
	EffectOpenMapSettings
	EffectToggleTheme
)

func (e Effect) String() string {
	switch e {
	case EffectExit:
		return "exit"
	case EffectDonate:
		return "donate"
	case EffectOpenMapSettings:
		return "open-map-settings"
	case EffectToggleTheme:
		return "toggle-theme"
	default:
		return "none"
	}
}

// State is everything the views are composed from.
type State struct {
	Active           NavItem
	ShowDonateBanner bool
	ShowNoticeBanner bool
	Memory           string
}

// New returns the launch state: map view selected, both banners visible.
func New() State {
	return State{
		Active:           MapView,
		ShowDonateBanner: true,
		ShowNoticeBanner: true,
	}
}

// Apply returns the state after ev and the effect the caller must perform.
// Unknown events, nil and out-of-range selections leave the state unchanged.
func (s State) Apply(ev Event) (State, Effect) {
	switch ev := ev.(type) {
	case NavClicked:
		if ev.Item.Valid() {
			s.Active = ev.Item
		}
	case HideDonateBanner:
		s.ShowDonateBanner = false
	case HideNoticeBanner:
		s.ShowNoticeBanner = false
	case MemorySampled:
		s.Memory = ev.Text
	case OpenMapSettings:
		return s, EffectOpenMapSettings
	case DonateKoFi:
		return s, EffectDonate
	case ChangeTheme:
		return s, EffectToggleTheme
	case Exit:
		return s, EffectExit
	}
	return s, EffectNone
}

// ShowsBanners reports whether the active view has room for banners at all.
// The map placeholder never shows them.
func (s State) ShowsBanners() bool {
	return s.Active != MapView
}
