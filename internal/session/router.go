package session

import "phonedex/internal/catalog"

// View identifies which screen the session is showing.
type View int

const (
	ViewHome View = iota
	ViewDetails
	ViewCompare
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "HOME"
	case ViewDetails:
		return "DETAILS"
	case ViewCompare:
		return "COMPARE"
	default:
		return "UNKNOWN"
	}
}

// Router is the view state machine. Initial state is HOME; there is no
// terminal state. Navigating away from HOME never resets the home filter
// or catalog state; that persistence is deliberate.
type Router struct {
	view   View
	detail catalog.Phone
	bound  bool
}

// Current returns the active view.
func (r *Router) Current() View { return r.view }

// Detail returns the phone bound to the DETAILS view.
func (r *Router) Detail() (catalog.Phone, bool) {
	return r.detail, r.bound
}

// ViewDetails transitions to DETAILS with the phone bound.
func (r *Router) ViewDetails(p catalog.Phone) {
	r.detail = p
	r.bound = true
	r.view = ViewDetails
}

// Back returns from DETAILS to HOME. Home state is untouched.
func (r *Router) Back() {
	r.view = ViewHome
}

// GoHome navigates to HOME via the global menu; always allowed.
func (r *Router) GoHome() {
	r.view = ViewHome
}

// GoCompare navigates to COMPARE; always allowed.
func (r *Router) GoCompare() {
	r.view = ViewCompare
}
