package router

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// Sheet and full-screen routes are assignable to Route, so one comparer
// covers every slot. A second, narrower comparer would make go-cmp panic.
var routeComparers = cmp.Options{
	cmp.Comparer(func(a, b Route) bool { return a == b }),
}

func pushSome(r *Router) {
	r.Navigate(Profile{UserID: "1"})
	r.Navigate(Detail{ItemID: "a"})
	r.Navigate(Settings{})
}

func TestNewRouterDefaults(t *testing.T) {
	r := New()
	s := r.State()
	assert.Empty(t, s.Path)
	assert.Nil(t, s.Sheet)
	assert.Nil(t, s.FullScreen)
	assert.Nil(t, s.Alert)
	assert.Nil(t, s.Dialog)
	assert.Equal(t, TabHome, s.Tab)
	assert.Zero(t, s.Revision)
}

func TestNavigateDispatchesByPresentation(t *testing.T) {
	r := New()

	r.Navigate(Profile{UserID: "42"})
	r.Navigate(EditProfile{UserID: "42"})
	r.Navigate(Checkout{PlanID: "pro"})
	r.Navigate(TabRoute{Tab: TabSearch})
	r.Navigate(nil)

	assert.Equal(t, []Route{Profile{UserID: "42"}}, r.Path())
	assert.Equal(t, SheetRoute(EditProfile{UserID: "42"}), r.Sheet())
	assert.Equal(t, FullScreenRoute(Checkout{PlanID: "pro"}), r.FullScreen())
	assert.Equal(t, TabSearch, r.Tab())
	assert.Equal(t, uint64(4), r.Revision())
}

func TestPopToRootIsIdempotent(t *testing.T) {
	r := New()
	pushSome(r)

	r.PopToRoot()
	once := r.State()
	r.PopToRoot()
	twice := r.State()

	assert.Empty(t, twice.Path)
	if diff := cmp.Diff(once, twice, routeComparers); diff != "" {
		t.Fatalf("second PopToRoot changed state (-once +twice):\n%s", diff)
	}
}

func TestPushThenPopRestoresPath(t *testing.T) {
	r := New()
	pushSome(r)
	before := r.Path()

	r.Navigate(ProductList{Category: "shoes"})
	require.Equal(t, len(before)+1, r.Depth())
	r.Pop()

	if diff := cmp.Diff(before, r.Path(), routeComparers); diff != "" {
		t.Fatalf("path differs after push/pop (-before +after):\n%s", diff)
	}
}

func TestPopEmptyPathIsNoOp(t *testing.T) {
	r := New()
	calls := 0
	r.OnChange(func(State) { calls++ })

	r.Pop()
	r.PopToRoot()
	r.DismissSheet()
	r.DismissFullScreen()
	r.DismissAlert()
	r.DismissConfirmationDialog()
	r.SwitchTab(DefaultTab)

	assert.Zero(t, r.Depth())
	assert.Zero(t, r.Revision())
	assert.Zero(t, calls)
}

func TestResetClearsEverything(t *testing.T) {
	r := New()
	pushSome(r)
	r.PresentSheet(Share{ItemID: "a"})
	r.PresentFullScreen(Paywall{})
	r.SwitchTab(TabProfile)
	r.ShowAlertMessage("Saved", "Your profile was saved", nil, nil)
	r.ShowConfirmationDialog(ConfirmationDialog{Title: "Delete?", Actions: []Action{{Label: "Delete", Role: RoleDestructive}}})

	r.Reset()

	want := State{Path: []Route{}, Tab: DefaultTab, Revision: r.Revision()}
	if diff := cmp.Diff(want, r.State(), routeComparers); diff != "" {
		t.Fatalf("state after Reset (-want +got):\n%s", diff)
	}
}

func TestResetIsObservedAtomically(t *testing.T) {
	r := New()
	pushSome(r)
	r.PresentSheet(Filters{})

	var seen []State
	r.OnChange(func(s State) { seen = append(seen, s) })
	r.Reset()

	require.Len(t, seen, 1)
	assert.Empty(t, seen[0].Path)
	assert.Nil(t, seen[0].Sheet)
}

func TestSheetReplacesInsteadOfStacking(t *testing.T) {
	r := New()
	r.PresentSheet(EditProfile{UserID: "a"})
	r.PresentSheet(Share{ItemID: "b"})
	assert.Equal(t, SheetRoute(Share{ItemID: "b"}), r.Sheet())

	r.DismissSheet()
	assert.Nil(t, r.Sheet())
}

func TestFullScreenReplacesInsteadOfStacking(t *testing.T) {
	r := New()
	r.PresentFullScreen(Onboarding{})
	r.PresentFullScreen(Checkout{PlanID: "annual"})
	assert.Equal(t, FullScreenRoute(Checkout{PlanID: "annual"}), r.FullScreen())

	r.DismissFullScreen()
	assert.Nil(t, r.FullScreen())
}

func TestNavigateAllKeepsSpecialRoutesOffThePath(t *testing.T) {
	r := New()
	r.NavigateAll(Profile{UserID: "1"}, Filters{}, Detail{ItemID: "x"}, TabRoute{Tab: TabNotifications})

	assert.Equal(t, []Route{Profile{UserID: "1"}, Detail{ItemID: "x"}}, r.Path())
	assert.Equal(t, SheetRoute(Filters{}), r.Sheet())
	assert.Equal(t, TabNotifications, r.Tab())
	assert.Equal(t, uint64(1), r.Revision())
}

func TestReplaceStack(t *testing.T) {
	r := New()
	pushSome(r)

	r.ReplaceStack(ProductList{Category: "hats"}, Detail{ItemID: "h1"})
	assert.Equal(t, []Route{ProductList{Category: "hats"}, Detail{ItemID: "h1"}}, r.Path())

	r.ReplaceStack()
	assert.Empty(t, r.Path())
}

func TestPopTo(t *testing.T) {
	t.Run("truncates to first occurrence", func(t *testing.T) {
		r := New()
		r.NavigateAll(Profile{UserID: "1"}, Detail{ItemID: "a"}, Settings{}, Detail{ItemID: "a"}, Detail{ItemID: "b"})

		r.PopTo(Detail{ItemID: "a"})
		assert.Equal(t, []Route{Profile{UserID: "1"}, Detail{ItemID: "a"}}, r.Path())
	})

	t.Run("replaces path when route is absent", func(t *testing.T) {
		r := New()
		pushSome(r)

		r.PopTo(ProductList{Category: "new"})
		assert.Equal(t, []Route{ProductList{Category: "new"}}, r.Path())
	})

	t.Run("route already on top changes nothing", func(t *testing.T) {
		r := New()
		pushSome(r)
		rev := r.Revision()

		r.PopTo(Settings{})
		assert.Equal(t, 3, r.Depth())
		assert.Equal(t, rev, r.Revision())
	})

	t.Run("nil is ignored", func(t *testing.T) {
		r := New()
		pushSome(r)
		r.PopTo(nil)
		assert.Equal(t, 3, r.Depth())
	})
}

func TestSwitchTabAcceptsAnyValue(t *testing.T) {
	r := New()
	r.SwitchTab(Tab("experimental"))
	assert.Equal(t, Tab("experimental"), r.Tab())
}

func TestShowAlertAssignsIDAndReplaces(t *testing.T) {
	r := New()
	r.ShowAlert(Alert{Title: "First", Primary: Action{Label: "OK"}})
	first := r.Alert()
	require.NotNil(t, first)
	assert.NotEqual(t, uuid.Nil, first.ID)

	fixed := uuid.New()
	r.ShowAlert(Alert{ID: fixed, Title: "Second", Primary: Action{Label: "OK"}})
	second := r.Alert()
	assert.Equal(t, fixed, second.ID)
	assert.Equal(t, "Second", second.Title)

	r.DismissAlert()
	assert.Nil(t, r.Alert())
}

func TestShowAlertMessage(t *testing.T) {
	r := New()

	r.ShowAlertMessage("Heads up", "Something happened", nil, nil)
	a := r.Alert()
	require.NotNil(t, a)
	assert.Equal(t, "OK", a.Primary.Label)
	assert.Nil(t, a.Secondary)
	assert.Len(t, a.Actions(), 1)

	cancelled := false
	r.ShowAlertMessage("Discard?", "Changes will be lost", nil, func() { cancelled = true })
	a = r.Alert()
	require.NotNil(t, a.Secondary)
	assert.Equal(t, "Cancel", a.Secondary.Label)
	assert.Equal(t, RoleCancel, a.Secondary.Role)

	actions := a.Actions()
	require.Len(t, actions, 2)
	actions[0].Trigger()
	actions[1].Trigger()
	assert.True(t, cancelled)
}

func TestAlertSnapshotIsIndependent(t *testing.T) {
	r := New()
	r.ShowAlertMessage("Title", "Body", nil, func() {})

	a := r.Alert()
	a.Title = "changed"
	a.Secondary.Label = "changed"

	again := r.Alert()
	assert.Equal(t, "Title", again.Title)
	assert.Equal(t, "Cancel", again.Secondary.Label)
}

func TestConfirmationDialog(t *testing.T) {
	r := New()
	deleted := false
	r.ShowConfirmationDialog(ConfirmationDialog{
		Title:   "Delete account?",
		Message: "This cannot be undone",
		Actions: []Action{
			{Label: "Delete", Role: RoleDestructive, Handler: func() { deleted = true }},
			{Label: "Cancel", Role: RoleCancel},
		},
	})

	d := r.Dialog()
	require.NotNil(t, d)
	assert.NotEqual(t, uuid.Nil, d.ID)
	require.Len(t, d.Actions, 2)
	assert.Equal(t, "destructive", d.Actions[0].Role.String())

	d.Actions[0].Trigger()
	d.Actions[1].Trigger()
	assert.True(t, deleted)

	d.Actions[0].Label = "mutated"
	assert.Equal(t, "Delete", r.Dialog().Actions[0].Label)

	r.DismissConfirmationDialog()
	assert.Nil(t, r.Dialog())
}

func TestStateTop(t *testing.T) {
	assert.Equal(t, Route(TabRoute{Tab: TabSearch}), State{Tab: TabSearch}.Top())
	assert.Equal(t, Route(Settings{}), State{Path: []Route{Profile{}, Settings{}}}.Top())
	assert.Equal(t, Route(Filters{}), State{Path: []Route{Settings{}}, Sheet: Filters{}}.Top())
	assert.Equal(t, Route(Paywall{}), State{Sheet: Filters{}, FullScreen: Paywall{}}.Top())
}

func TestRender(t *testing.T) {
	r := New()
	var rendered []Kind
	record := func(route Route) error {
		rendered = append(rendered, route.Kind())
		return nil
	}
	r.Register(KindTab, record).
		Register(KindProfile, record).
		Register(KindShare, record)

	require.NoError(t, r.Render())
	r.Navigate(Profile{UserID: "1"})
	require.NoError(t, r.Render())
	r.PresentSheet(Share{ItemID: "s"})
	require.NoError(t, r.Render())

	assert.Equal(t, []Kind{KindTab, KindProfile, KindShare}, rendered)

	r.PresentFullScreen(Checkout{PlanID: "p"})
	err := r.Render()
	assert.ErrorIs(t, err, ErrRouteNotRegistered)
	assert.Contains(t, err.Error(), "checkout")
}

func TestRenderWrapsScreenError(t *testing.T) {
	boom := errors.New("boom")
	r := New().Register(KindTab, func(Route) error { return boom })

	err := r.Render()
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "screen tab")
}

func TestOnChangeReceivesSnapshots(t *testing.T) {
	r := New()
	var revisions []uint64
	var depths []int
	r.OnChange(func(s State) {
		revisions = append(revisions, s.Revision)
		depths = append(depths, len(s.Path))
	})

	r.Navigate(Profile{UserID: "1"})
	r.Navigate(Detail{ItemID: "2"})
	r.Pop()
	r.Pop()
	r.Pop()

	assert.Equal(t, []uint64{1, 2, 3, 4}, revisions)
	assert.Equal(t, []int{1, 2, 1, 0}, depths)
}

func TestRepeatedPresentationIsSilent(t *testing.T) {
	r := New()
	calls := 0
	r.OnChange(func(State) { calls++ })

	r.Navigate(TabRoute{Tab: DefaultTab})
	r.PresentSheet(Filters{})
	r.PresentSheet(Filters{})
	r.Navigate(Filters{})
	r.PresentFullScreen(Paywall{})
	r.PresentFullScreen(Paywall{})

	assert.Equal(t, 2, calls)
	assert.Equal(t, uint64(2), r.Revision())

	r.PresentSheet(Share{ItemID: "x"})
	r.Navigate(TabRoute{Tab: TabSearch})
	assert.Equal(t, 4, calls)
}

func TestStateDiffCoversPresentations(t *testing.T) {
	a, b := New(), New()
	for _, r := range []*Router{a, b} {
		r.Navigate(Profile{UserID: "1"})
		r.PresentSheet(EditProfile{UserID: "1"})
		r.PresentFullScreen(Checkout{PlanID: "monthly"})
	}
	assert.Empty(t, cmp.Diff(a.State(), b.State(), routeComparers, cmpopts.IgnoreFields(State{}, "Revision")))

	b.PresentSheet(Share{ItemID: "2"})
	assert.NotEmpty(t, cmp.Diff(a.State(), b.State(), routeComparers))
}

func TestConcurrentNavigation(t *testing.T) {
	r := New()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Navigate(Detail{ItemID: "x"})
				_ = r.State()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, r.Depth())
	assert.Equal(t, uint64(800), r.Revision())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "product_list", KindProductList.String())
	assert.Equal(t, "unknown", Kind(-1).String())
}
