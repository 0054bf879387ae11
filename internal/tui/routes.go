package tui

import (
	"sync"

	"github.com/colonyops/barber/internal/core/styles"
	"github.com/colonyops/barber/internal/pages"
)

// action is a menu entry the user can run.
type action int

const (
	actionSignIn action = iota
	actionSignUp
	actionForgotPassword
	actionResetPassword
	actionProfile
	actionAvatar
	actionSignOut
)

type menuItem struct {
	icon   string
	label  string
	action action
}

// menus lists the entries of each top-level route.
var menus = map[string][]menuItem{
	pages.PathSignIn: {
		{icon: styles.IconKey, label: "Sign in", action: actionSignIn},
		{icon: styles.IconUser, label: "Sign up", action: actionSignUp},
		{icon: styles.IconMail, label: "Forgot password", action: actionForgotPassword},
		{icon: styles.IconKey, label: "Reset password", action: actionResetPassword},
	},
	pages.PathDashboard: {
		{icon: styles.IconUser, label: "Edit profile", action: actionProfile},
		{icon: styles.IconImage, label: "Change avatar", action: actionAvatar},
		{icon: styles.IconSignOut, label: "Sign out", action: actionSignOut},
	},
}

// path returns the route shown while the action's form is open.
func (a action) path() string {
	switch a {
	case actionSignUp:
		return pages.PathSignUp
	case actionForgotPassword:
		return pages.PathForgotPassword
	case actionResetPassword:
		return pages.PathResetPassword
	case actionProfile, actionAvatar:
		return pages.PathProfile
	default:
		return pages.PathSignIn
	}
}

// routeRecorder is the pages.Navigator used for one submission. The model
// reads the last pushed route once the submission returns.
type routeRecorder struct {
	mu   sync.Mutex
	last string
}

func (r *routeRecorder) Push(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.last = path
}

func (r *routeRecorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}
