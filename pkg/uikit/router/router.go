package router

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/uikit/pkg/uikit/logging"
)

// ErrRouteNotRegistered is returned by Render when the route to show has no
// registered screen.
var ErrRouteNotRegistered = errors.New("route not registered")

// ScreenFunc draws the screen for a route.
type ScreenFunc func(route Route) error

// State is a snapshot of the router. It shares nothing with the router, so
// it may be kept and read after further navigation.
type State struct {
	Path       []Route
	Sheet      SheetRoute
	FullScreen FullScreenRoute
	Tab        Tab
	Alert      *Alert
	Dialog     *ConfirmationDialog
	Revision   uint64 // Incremented by every mutation that changed something
}

// Top returns the route that should be on screen: the full-screen
// presentation, else the sheet, else the top of the path, else the selected
// tab.
func (s State) Top() Route {
	switch {
	case s.FullScreen != nil:
		return s.FullScreen
	case s.Sheet != nil:
		return s.Sheet
	case len(s.Path) > 0:
		return s.Path[len(s.Path)-1]
	default:
		return TabRoute{Tab: s.Tab}
	}
}

// Router holds navigation state. The zero value is not usable; call New.
type Router struct {
	mu         sync.RWMutex
	stack      *Stack
	sheet      SheetRoute
	fullScreen FullScreenRoute
	tab        Tab
	alert      *Alert
	dialog     *ConfirmationDialog

	revision  *atomic.Uint64
	screens   map[Kind]ScreenFunc
	observers []func(State)
	logger    *slog.Logger
}

// New creates a Router with an empty path and DefaultTab selected.
func New() *Router {
	return &Router{
		stack:    NewStack(),
		tab:      DefaultTab,
		revision: atomic.NewUint64(0),
		screens:  make(map[Kind]ScreenFunc),
		logger:   logging.Discard(),
	}
}

// WithLogger sets the logger that records navigation at debug level.
func (r *Router) WithLogger(logger *slog.Logger) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = logging.OrDiscard(logger)
	return r
}

// Register adds a screen for a route kind, replacing any earlier one.
func (r *Router) Register(kind Kind, fn ScreenFunc) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screens[kind] = fn
	return r
}

// OnChange adds a callback run after every mutation that changed the state.
// Callbacks run synchronously on the mutating goroutine, outside the lock,
// so they may read the router but should not mutate it.
func (r *Router) OnChange(fn func(State)) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, fn)
	return r
}

// mutate applies fn under the lock. fn reports whether it changed anything;
// only changes bump the revision and notify observers.
func (r *Router) mutate(op string, fn func() bool) {
	r.mu.Lock()
	if !fn() {
		r.mu.Unlock()
		return
	}
	r.revision.Inc()
	state := r.snapshotLocked()
	observers := r.observers
	logger := r.logger
	r.mu.Unlock()

	logger.Debug("navigation",
		"op", op,
		"top", state.Top().Kind().String(),
		"depth", len(state.Path),
		"tab", string(state.Tab),
		"revision", state.Revision,
	)
	for _, o := range observers {
		o(state)
	}
}

func (r *Router) snapshotLocked() State {
	return State{
		Path:       r.stack.Routes(),
		Sheet:      r.sheet,
		FullScreen: r.fullScreen,
		Tab:        r.tab,
		Alert:      cloneAlert(r.alert),
		Dialog:     cloneDialog(r.dialog),
		Revision:   r.revision.Load(),
	}
}

// State returns a snapshot of every slot.
func (r *Router) State() State {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshotLocked()
}

// Revision returns the number of state-changing mutations so far.
func (r *Router) Revision() uint64 {
	return r.revision.Load()
}

// Navigate shows a route according to its presentation: sheets and
// full-screen routes are presented, tab routes select their tab, and
// everything else is pushed onto the path. A nil route is ignored.
func (r *Router) Navigate(route Route) {
	r.mutate("navigate", func() bool {
		return r.navigateLocked(route)
	})
}

// NavigateAll navigates to each route in order as one atomic change.
func (r *Router) NavigateAll(routes ...Route) {
	r.mutate("navigate_all", func() bool {
		changed := false
		for _, route := range routes {
			if r.navigateLocked(route) {
				changed = true
			}
		}
		return changed
	})
}

func (r *Router) navigateLocked(route Route) bool {
	switch rt := route.(type) {
	case nil:
		return false
	case SheetRoute:
		if r.sheet == rt {
			return false
		}
		r.sheet = rt
	case FullScreenRoute:
		if r.fullScreen == rt {
			return false
		}
		r.fullScreen = rt
	case TabRoute:
		if r.tab == rt.Tab {
			return false
		}
		r.tab = rt.Tab
	default:
		r.stack.Push(route)
	}
	return true
}

// Pop removes the top of the path. Popping an empty path does nothing.
func (r *Router) Pop() {
	r.mutate("pop", func() bool {
		return r.stack.Pop() != nil
	})
}

// PopToRoot empties the path.
func (r *Router) PopToRoot() {
	r.mutate("pop_to_root", func() bool {
		if r.stack.IsEmpty() {
			return false
		}
		r.stack.Clear()
		return true
	})
}

// PopTo makes route the top of the path. If route is already on the path,
// everything above its first occurrence is dropped. Otherwise the path is
// replaced by route alone.
func (r *Router) PopTo(route Route) {
	if route == nil {
		return
	}
	r.mutate("pop_to", func() bool {
		if i := r.stack.Index(route); i >= 0 {
			if i == r.stack.Len()-1 {
				return false
			}
			r.stack.TruncateAfter(i)
			return true
		}
		r.stack.Clear()
		r.stack.Push(route)
		return true
	})
}

// ReplaceStack clears the path, then navigates to each route in order.
func (r *Router) ReplaceStack(routes ...Route) {
	r.mutate("replace_stack", func() bool {
		r.stack.Clear()
		for _, route := range routes {
			r.navigateLocked(route)
		}
		return true
	})
}

// PresentSheet shows route as a sheet, replacing any sheet already shown.
func (r *Router) PresentSheet(route SheetRoute) {
	r.mutate("present_sheet", func() bool {
		return r.navigateLocked(route)
	})
}

// DismissSheet closes the sheet, if any.
func (r *Router) DismissSheet() {
	r.mutate("dismiss_sheet", func() bool {
		if r.sheet == nil {
			return false
		}
		r.sheet = nil
		return true
	})
}

// PresentFullScreen shows route full screen, replacing any full-screen
// presentation already shown.
func (r *Router) PresentFullScreen(route FullScreenRoute) {
	r.mutate("present_full_screen", func() bool {
		return r.navigateLocked(route)
	})
}

// DismissFullScreen closes the full-screen presentation, if any.
func (r *Router) DismissFullScreen() {
	r.mutate("dismiss_full_screen", func() bool {
		if r.fullScreen == nil {
			return false
		}
		r.fullScreen = nil
		return true
	})
}

// ShowAlert shows an alert, replacing any alert already shown. A zero ID is
// replaced with a fresh one.
func (r *Router) ShowAlert(alert Alert) {
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	r.mutate("show_alert", func() bool {
		r.alert = cloneAlert(&alert)
		return true
	})
}

// ShowAlertMessage shows an alert built by NewMessageAlert.
func (r *Router) ShowAlertMessage(title, message string, onOK, onCancel func()) {
	r.ShowAlert(NewMessageAlert(title, message, onOK, onCancel))
}

// DismissAlert closes the alert, if any.
func (r *Router) DismissAlert() {
	r.mutate("dismiss_alert", func() bool {
		if r.alert == nil {
			return false
		}
		r.alert = nil
		return true
	})
}

// ShowConfirmationDialog shows a dialog, replacing any dialog already shown.
// A zero ID is replaced with a fresh one.
func (r *Router) ShowConfirmationDialog(dialog ConfirmationDialog) {
	if dialog.ID == uuid.Nil {
		dialog.ID = uuid.New()
	}
	r.mutate("show_dialog", func() bool {
		r.dialog = cloneDialog(&dialog)
		return true
	})
}

// DismissConfirmationDialog closes the dialog, if any.
func (r *Router) DismissConfirmationDialog() {
	r.mutate("dismiss_dialog", func() bool {
		if r.dialog == nil {
			return false
		}
		r.dialog = nil
		return true
	})
}

// SwitchTab selects tab. Any value is accepted.
func (r *Router) SwitchTab(tab Tab) {
	r.mutate("switch_tab", func() bool {
		if r.tab == tab {
			return false
		}
		r.tab = tab
		return true
	})
}

// Reset dismisses every presentation, empties the path and selects
// DefaultTab, as one atomic change.
func (r *Router) Reset() {
	r.mutate("reset", func() bool {
		r.stack.Clear()
		r.sheet = nil
		r.fullScreen = nil
		r.alert = nil
		r.dialog = nil
		r.tab = DefaultTab
		return true
	})
}

// Path returns a copy of the path, root first.
func (r *Router) Path() []Route {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stack.Routes()
}

// Depth returns the number of routes on the path.
func (r *Router) Depth() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.stack.Len()
}

// Sheet returns the presented sheet, or nil.
func (r *Router) Sheet() SheetRoute {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sheet
}

// FullScreen returns the full-screen presentation, or nil.
func (r *Router) FullScreen() FullScreenRoute {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.fullScreen
}

// Tab returns the selected tab.
func (r *Router) Tab() Tab {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.tab
}

// Alert returns a copy of the shown alert, or nil.
func (r *Router) Alert() *Alert {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAlert(r.alert)
}

// Dialog returns a copy of the shown confirmation dialog, or nil.
func (r *Router) Dialog() *ConfirmationDialog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneDialog(r.dialog)
}

// Render calls the screen registered for the route currently on top (see
// State.Top).
func (r *Router) Render() error {
	r.mu.RLock()
	route := r.snapshotLocked().Top()
	fn, ok := r.screens[route.Kind()]
	r.mu.RUnlock()

	if !ok {
		return fmt.Errorf("router: %w: %s", ErrRouteNotRegistered, route.Kind())
	}
	if err := fn(route); err != nil {
		return fmt.Errorf("router: screen %s error: %w", route.Kind(), err)
	}
	return nil
}
