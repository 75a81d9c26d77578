package router

import "github.com/google/uuid"

// Role tells the presentation layer how to style an action.
type Role int

const (
	RoleNormal Role = iota
	RoleCancel
	RoleDestructive
)

func (r Role) String() string {
	switch r {
	case RoleCancel:
		return "cancel"
	case RoleDestructive:
		return "destructive"
	default:
		return "normal"
	}
}

// Action is a labeled button on an alert or confirmation dialog.
type Action struct {
	Label   string
	Role    Role
	Handler func() // Optional
}

// Trigger runs the action's handler, if any.
func (a Action) Trigger() {
	if a.Handler != nil {
		a.Handler()
	}
}

// Alert is a modal message with one or two actions.
type Alert struct {
	ID        uuid.UUID // Assigned by ShowAlert when zero
	Title     string
	Message   string
	Primary   Action
	Secondary *Action // Optional second button
}

// Actions returns the alert's buttons in display order.
func (a Alert) Actions() []Action {
	if a.Secondary == nil {
		return []Action{a.Primary}
	}
	return []Action{a.Primary, *a.Secondary}
}

// ConfirmationDialog is a modal list of actions, typically shown as an
// action sheet.
type ConfirmationDialog struct {
	ID      uuid.UUID // Assigned by ShowConfirmationDialog when zero
	Title   string
	Message string
	Actions []Action
}

// NewMessageAlert builds the default alert: an "OK" button running onOK,
// plus a "Cancel" button running onCancel when onCancel is non-nil.
func NewMessageAlert(title, message string, onOK, onCancel func()) Alert {
	a := Alert{
		Title:   title,
		Message: message,
		Primary: Action{Label: "OK", Role: RoleNormal, Handler: onOK},
	}
	if onCancel != nil {
		a.Secondary = &Action{Label: "Cancel", Role: RoleCancel, Handler: onCancel}
	}
	return a
}

func cloneAlert(a *Alert) *Alert {
	if a == nil {
		return nil
	}
	c := *a
	if a.Secondary != nil {
		s := *a.Secondary
		c.Secondary = &s
	}
	return &c
}

func cloneDialog(d *ConfirmationDialog) *ConfirmationDialog {
	if d == nil {
		return nil
	}
	c := *d
	c.Actions = append([]Action(nil), d.Actions...)
	return &c
}
