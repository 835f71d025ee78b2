package state

// Screen is the top-level page the console is showing
type Screen int

const (
	LandingScreen Screen = iota
	LoginScreen
	DashboardScreen
)

func (s Screen) String() string {
	switch s {
	case LoginScreen:
		return "login"
	case DashboardScreen:
		return "dashboard"
	default:
		return "landing"
	}
}

// Event is something that can move the console between screens
type Event int

const (
	AdminRequested Event = iota // landing: open the admin login
	LoginSucceeded
	LoginCancelled
	LoggedOut
)

// Effect is the side effect the caller must perform after a transition
type Effect int

const (
	NoEffect Effect = iota
	PersistSession
	ClearSession
)

// Transition returns the next screen and the side effect for event on
// screen. Events that do not apply to screen leave it unchanged.
func Transition(screen Screen, event Event) (Screen, Effect) {
	switch {
	case screen == LandingScreen && event == AdminRequested:
		return LoginScreen, NoEffect
	case screen == LoginScreen && event == LoginSucceeded:
		return DashboardScreen, PersistSession
	case screen == LoginScreen && event == LoginCancelled:
		return LandingScreen, NoEffect
	case screen == DashboardScreen && event == LoggedOut:
		return LandingScreen, ClearSession
	default:
		return screen, NoEffect
	}
}

// InitialScreen picks the first screen from the persisted session flag
func InitialScreen(loggedIn bool) Screen {
	if loggedIn {
		return DashboardScreen
	}
	return LandingScreen
}
