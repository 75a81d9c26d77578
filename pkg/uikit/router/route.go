package router

// Kind identifies a route type. Screens are registered per Kind.
type Kind int

const (
	KindProfile Kind = iota
	KindDetail
	KindSettings
	KindProductList
	KindOnboardingStep
	KindEditProfile
	KindShare
	KindFilters
	KindCheckout
	KindOnboarding
	KindPaywall
	KindTab
)

func (k Kind) String() string {
	switch k {
	case KindProfile:
		return "profile"
	case KindDetail:
		return "detail"
	case KindSettings:
		return "settings"
	case KindProductList:
		return "product_list"
	case KindOnboardingStep:
		return "onboarding_step"
	case KindEditProfile:
		return "edit_profile"
	case KindShare:
		return "share"
	case KindFilters:
		return "filters"
	case KindCheckout:
		return "checkout"
	case KindOnboarding:
		return "onboarding"
	case KindPaywall:
		return "paywall"
	case KindTab:
		return "tab"
	default:
		return "unknown"
	}
}

// Presentation is how a route is shown.
type Presentation int

const (
	PresentationPush       Presentation = iota // Appended to the navigation path
	PresentationSheet                          // Modal sheet over the current screen
	PresentationFullScreen                     // Modal covering the whole screen
	PresentationTab                            // Selects a tab
)

// Route is a navigable destination. The set of routes is closed: only types
// in this package implement it.
type Route interface {
	Kind() Kind
	Presentation() Presentation
	isRoute()
}

// SheetRoute is a route presented as a sheet.
type SheetRoute interface {
	Route
	isSheet()
}

// FullScreenRoute is a route presented full screen.
type FullScreenRoute interface {
	Route
	isFullScreen()
}

type push struct{}

func (push) Presentation() Presentation { return PresentationPush }
func (push) isRoute()                   {}

type sheet struct{}

func (sheet) Presentation() Presentation { return PresentationSheet }
func (sheet) isRoute()                   {}
func (sheet) isSheet()                   {}

type fullScreen struct{}

func (fullScreen) Presentation() Presentation { return PresentationFullScreen }
func (fullScreen) isRoute()                   {}
func (fullScreen) isFullScreen()              {}

// Push routes.

type Profile struct {
	push
	UserID string
}

func (Profile) Kind() Kind { return KindProfile }

type Detail struct {
	push
	ItemID string
}

func (Detail) Kind() Kind { return KindDetail }

type Settings struct {
	push
}

func (Settings) Kind() Kind { return KindSettings }

type ProductList struct {
	push
	Category string
}

func (ProductList) Kind() Kind { return KindProductList }

// OnboardingStep is one page of the onboarding flow, pushed inside the
// Onboarding full-screen presentation.
type OnboardingStep struct {
	push
	Index int
}

func (OnboardingStep) Kind() Kind { return KindOnboardingStep }

// Sheet routes.

type EditProfile struct {
	sheet
	UserID string
}

func (EditProfile) Kind() Kind { return KindEditProfile }

type Share struct {
	sheet
	ItemID string
}

func (Share) Kind() Kind { return KindShare }

type Filters struct {
	sheet
}

func (Filters) Kind() Kind { return KindFilters }

// Full-screen routes.

type Checkout struct {
	fullScreen
	PlanID string
}

func (Checkout) Kind() Kind { return KindCheckout }

type Onboarding struct {
	fullScreen
}

func (Onboarding) Kind() Kind { return KindOnboarding }

type Paywall struct {
	fullScreen
}

func (Paywall) Kind() Kind { return KindPaywall }

// Tab is a tab identifier. The router does not check that a tab exists.
type Tab string

const (
	TabHome          Tab = "home"
	TabSearch        Tab = "search"
	TabNotifications Tab = "notifications"
	TabProfile       Tab = "profile"
)

// DefaultTab is selected on construction and after Reset.
const DefaultTab = TabHome

// TabRoute selects a tab when navigated to. It is also the route Render
// resolves when nothing else is presented.
type TabRoute struct {
	Tab Tab
}

func (TabRoute) Kind() Kind                 { return KindTab }
func (TabRoute) Presentation() Presentation { return PresentationTab }
func (TabRoute) isRoute()                   {}
