// Package router holds navigation state for a uikit application.
//
// A Router owns the push-navigation path, at most one sheet, at most one
// full-screen presentation, the selected tab, and at most one alert and one
// confirmation dialog. It is mutated only through explicit method calls and
// read by the presentation layer to decide what to draw. No operation can
// fail: popping an empty path is a no-op, presenting a second sheet replaces
// the first.
//
// # Routes
//
// Routes are a closed set of comparable value types. Each one knows how it is
// presented, so Navigate can dispatch it:
//
//	r := router.New()
//	r.Navigate(router.Profile{UserID: "42"})     // pushed onto the path
//	r.Navigate(router.EditProfile{UserID: "42"}) // shown as a sheet
//	r.Navigate(router.Checkout{PlanID: "pro"})   // shown full screen
//	r.Navigate(router.TabRoute{Tab: router.TabSearch})
//
// The presentation layer matches on the concrete type, so adding a route is a
// compile-time checked change:
//
//	switch rt := route.(type) {
//	case router.Profile:
//	    showProfile(rt.UserID)
//	case router.Detail:
//	    showDetail(rt.ItemID)
//	}
//
// # Rendering
//
// Screens are registered per route Kind. Render resolves the topmost
// presentation (full screen, then sheet, then the top of the path, then the
// selected tab) and calls its screen:
//
//	r.Register(router.KindProfile, func(route router.Route) error {
//	    return drawProfile(route.(router.Profile))
//	})
//	if err := r.Render(); err != nil { ... }
//
// # Observing changes
//
// OnChange callbacks receive an immutable State snapshot after every mutation
// that changed something. All slots are guarded by one lock, so compound
// operations such as Reset are observed atomically.
package router
