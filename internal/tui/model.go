// Package tui implements the interactive account screens. Toasts raised by
// the pages are rendered from the registry's subscription feed.
package tui

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/barber/internal/core/account"
	"github.com/colonyops/barber/internal/core/logging"
	"github.com/colonyops/barber/internal/core/session"
	"github.com/colonyops/barber/internal/core/styles"
	"github.com/colonyops/barber/internal/core/toast"
	"github.com/colonyops/barber/internal/pages"
	"github.com/colonyops/barber/internal/tui/components"
	"github.com/colonyops/barber/internal/tui/components/form"
)

//go:embed help.md
var helpMarkdown string

// Toasts is the registry surface the TUI drives. *toast.Registry satisfies it.
type Toasts interface {
	toast.Notifier
	DismissAll()
	Subscribe(fn toast.Subscriber) (unsubscribe func())
}

// SessionWatcher reports changes to the stored session made by other
// processes, such as `barber login`.
type SessionWatcher interface {
	Changes() <-chan struct{}
}

// Options configures the TUI model.
type Options struct {
	API      pages.AccountAPI
	Sessions session.Store
	Toasts   Toasts
	Watcher  SessionWatcher // optional
}

type (
	sessionLoadedMsg struct {
		session session.Session
		err     error
	}
	sessionChangedMsg struct{}
	submitResultMsg   struct {
		action action
		route  string
		err    error
	}
)

// Model is the main bubbletea model.
type Model struct {
	ctx  context.Context
	opts Options
	log  zerolog.Logger

	width  int
	height int

	route   string
	back    string
	cursor  int
	session session.Session

	dialog       *form.Dialog
	dialogAction action
	busy         bool
	help         *components.HelpDialog

	toasts      *ToastController
	toastView   *ToastView
	feed        *ToastFeed
	unsubscribe func()
}

// New creates the model and subscribes it to the toast registry. Call Close
// once the program exits.
func New(ctx context.Context, opts Options) Model {
	controller := NewToastController()
	feed := NewToastFeed()

	return Model{
		ctx:         toast.WithNotifier(ctx, opts.Toasts),
		opts:        opts,
		log:         logging.Component("tui"),
		route:       pages.PathSignIn,
		toasts:      controller,
		toastView:   NewToastView(controller),
		feed:        feed,
		unsubscribe: opts.Toasts.Subscribe(feed.Observe),
	}
}

// Close unsubscribes from the registry and releases pending commands.
func (m Model) Close() {
	m.unsubscribe()
	m.feed.Stop()
}

// Route returns the current route.
func (m Model) Route() string { return m.route }

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.feed.WaitForSignal(), m.loadSession()}
	if m.opts.Watcher != nil {
		cmds = append(cmds, m.waitForSessionChange())
	}
	return tea.Batch(cmds...)
}

func (m Model) loadSession() tea.Cmd {
	ctx, store := m.ctx, m.opts.Sessions
	return func() tea.Msg {
		sess, err := store.Load(ctx)
		return sessionLoadedMsg{session: sess, err: err}
	}
}

func (m Model) waitForSessionChange() tea.Cmd {
	ch := m.opts.Watcher.Changes()
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return sessionChangedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.help != nil {
			m.help = components.NewHelpDialog(helpMarkdown, m.helpWidth())
		}
		return m, nil
	case toastsChangedMsg:
		m.toasts.Set(msg.toasts)
		return m, m.feed.WaitForSignal()
	case sessionChangedMsg:
		if m.opts.Watcher == nil {
			return m, m.loadSession()
		}
		return m, tea.Batch(m.loadSession(), m.waitForSessionChange())
	case sessionLoadedMsg:
		return m.handleSessionLoaded(msg), nil
	case submitResultMsg:
		return m.handleSubmitResult(msg)
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	if m.dialog != nil {
		var cmd tea.Cmd
		m.dialog, cmd = m.dialog.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleSessionLoaded(msg sessionLoadedMsg) Model {
	if msg.err != nil && !errors.Is(msg.err, session.ErrNotFound) {
		m.log.Warn().Err(msg.err).Msg("failed to load session")
	}
	m.session = msg.session

	if m.dialog != nil {
		return m
	}

	// Follow sign in and sign out done elsewhere.
	switch {
	case m.session.Valid() && m.route == pages.PathSignIn:
		m.route = pages.PathDashboard
		m.cursor = 0
	case !m.session.Valid() && m.route == pages.PathDashboard:
		m.route = pages.PathSignIn
		m.cursor = 0
	}
	return m
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		return m, tea.Quit
	}

	switch {
	case m.help != nil:
		return m.handleHelpKey(keyStr)
	case m.dialog != nil:
		return m.handleDialogKey(msg, keyStr)
	}
	return m.handleMenuKey(keyStr)
}

func (m Model) handleHelpKey(keyStr string) (tea.Model, tea.Cmd) {
	switch keyStr {
	case "esc", "?", "q":
		m.help = nil
	}
	return m, nil
}

func (m Model) handleMenuKey(keyStr string) (tea.Model, tea.Cmd) {
	items := menus[m.route]

	switch keyStr {
	case "q":
		return m, tea.Quit
	case "?":
		m.help = components.NewHelpDialog(helpMarkdown, m.helpWidth())
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(items)-1 {
			m.cursor++
		}
	case "x":
		m.dismissNewest()
	case "X":
		m.opts.Toasts.DismissAll()
	case "enter":
		if m.busy || m.cursor >= len(items) {
			return m, nil
		}
		return m.selectAction(items[m.cursor].action)
	}
	return m, nil
}

func (m Model) handleDialogKey(msg tea.KeyPressMsg, keyStr string) (tea.Model, tea.Cmd) {
	if keyStr == "ctrl+x" {
		m.dismissNewest()
		return m, nil
	}

	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)

	switch {
	case m.dialog.Cancelled():
		m.dialog = nil
		m.route = m.back
		return m, nil
	case m.dialog.Submitted() && !m.dialog.Busy():
		m.dialog.SetBusy(true)
		m.busy = true
		return m, m.submit(m.dialogAction, m.dialog.Values())
	}
	return m, cmd
}

func (m *Model) dismissNewest() {
	if id, ok := m.toasts.Newest(); ok {
		m.opts.Toasts.Remove(id)
	}
}

func (m Model) selectAction(a action) (tea.Model, tea.Cmd) {
	if a == actionSignOut {
		m.busy = true
		return m, m.submit(a, nil)
	}

	m.dialog = m.newDialog(a)
	m.dialogAction = a
	m.back = m.route
	m.route = a.path()
	return m, nil
}

func (m Model) newDialog(a action) *form.Dialog {
	switch a {
	case actionSignIn:
		return form.NewDialog("Sign in",
			[]form.Field{
				form.NewTextField("E-mail", "you@example.com", ""),
				form.NewTextField("Password", "", "", form.Secret()),
			},
			[]string{"email", "password"})
	case actionSignUp:
		return form.NewDialog("Sign up",
			[]form.Field{
				form.NewTextField("Name", "", ""),
				form.NewTextField("E-mail", "you@example.com", ""),
				form.NewTextField("Password", "", "", form.Secret()),
			},
			[]string{"name", "email", "password"})
	case actionForgotPassword:
		return form.NewDialog("Forgot password",
			[]form.Field{
				form.NewTextField("E-mail", "you@example.com", ""),
			},
			[]string{"email"})
	case actionResetPassword:
		return form.NewDialog("Reset password",
			[]form.Field{
				form.NewTextField("Token", "from the recovery e-mail", ""),
				form.NewTextField("New password", "", "", form.Secret()),
				form.NewTextField("Confirm password", "", "", form.Secret()),
			},
			[]string{"token", "password", "password_confirmation"})
	case actionProfile:
		user := m.session.User
		return form.NewDialog("Edit profile",
			[]form.Field{
				form.NewTextField("Name", "", user.Name),
				form.NewTextField("E-mail", "", user.Email),
				form.NewTextField("Current password", "only to change it", "", form.Secret()),
				form.NewTextField("New password", "", "", form.Secret()),
				form.NewTextField("Confirm password", "", "", form.Secret()),
			},
			[]string{"name", "email", "old_password", "password", "password_confirmation"})
	case actionAvatar:
		return form.NewDialog("Change avatar",
			[]form.Field{
				form.NewTextField("Image file", "~/avatar.png", ""),
			},
			[]string{"path"})
	}
	return form.NewDialog("", nil, nil)
}

// submit runs the page for a in the background and reports the outcome.
func (m Model) submit(a action, values map[string]string) tea.Cmd {
	ctx, client, store := m.ctx, m.opts.API, m.opts.Sessions
	return func() tea.Msg {
		nav := &routeRecorder{}
		p := pages.New(client, store, nav)

		var err error
		switch a {
		case actionSignIn:
			err = p.SignIn(ctx, account.SignIn{Email: values["email"], Password: values["password"]})
		case actionSignUp:
			err = p.SignUp(ctx, account.SignUp{Name: values["name"], Email: values["email"], Password: values["password"]})
		case actionForgotPassword:
			err = p.ForgotPassword(ctx, account.ForgotPassword{Email: values["email"]})
		case actionResetPassword:
			err = p.ResetPassword(ctx, account.ResetPassword{
				Password:             values["password"],
				PasswordConfirmation: values["password_confirmation"],
				Token:                values["token"],
			})
		case actionProfile:
			err = p.Profile(ctx, account.Profile{
				Name:                 values["name"],
				Email:                values["email"],
				OldPassword:          values["old_password"],
				Password:             values["password"],
				PasswordConfirmation: values["password_confirmation"],
			})
		case actionAvatar:
			err = p.Avatar(ctx, values["path"])
		case actionSignOut:
			err = p.SignOut(ctx)
		}

		return submitResultMsg{action: a, route: nav.Last(), err: err}
	}
}

func (m Model) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	if msg.err != nil {
		if !errors.Is(msg.err, pages.ErrReported) {
			m.log.Debug().Err(msg.err).Int("action", int(msg.action)).Msg("submission rejected")
		}
		if m.dialog == nil {
			return m, nil
		}
		if errors.Is(msg.err, pages.ErrReported) {
			m.dialog.Resume()
			return m, nil
		}
		return m, m.dialog.SetErrors(account.FieldMessages(msg.err))
	}

	if m.dialog != nil {
		m.dialog = nil
		m.route = m.back
	}
	if msg.route != "" {
		m.route = msg.route
	}
	m.cursor = 0
	return m, m.loadSession()
}

func (m Model) helpWidth() int {
	if m.width <= 0 {
		return 60
	}
	return max(min(60, m.width-6), 20)
}

// View renders the current state.
func (m Model) View() tea.View {
	v := tea.NewView(m.screen())
	v.AltScreen = true
	return v
}

// screen composes the page, open overlays and the toast stack.
func (m Model) screen() string {
	content := m.render()

	if m.dialog != nil {
		content = components.Center(content, m.dialog.View(), m.width, m.height)
	}
	if m.help != nil {
		content = m.help.Overlay(content, m.width, m.height)
	}
	return m.toastView.Overlay(content, m.width, m.height)
}

func (m Model) render() string {
	var b strings.Builder

	header := styles.HeaderStyle.Render(styles.IconScissors+" barber") + "  " + styles.MutedStyle.Render(m.route)
	b.WriteString(header)
	b.WriteString("\n")
	b.WriteString(styles.DividerStyle.Render(strings.Repeat("─", max(m.width, 20))))
	b.WriteString("\n\n")

	if m.session.Valid() {
		user := m.session.User
		b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Signed in as %s <%s>", user.Name, user.Email)))
		b.WriteString("\n\n")
	}

	for i, item := range menus[m.menuRoute()] {
		line := item.icon + "  " + item.label
		if i == m.cursor {
			b.WriteString(styles.MenuSelectedStyle.Render("> " + line))
		} else {
			b.WriteString(styles.MenuItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	status := "working..."
	if !m.busy {
		status = helpLine("enter", "open", "x", "dismiss", "X", "dismiss all", "?", "help", "q", "quit")
	}
	b.WriteString("\n")
	b.WriteString(styles.StatusStyle.Render(status))

	body := b.String()
	if m.height > 0 {
		body = lipgloss.NewStyle().Height(m.height).Render(body)
	}
	return body
}

// menuRoute is the route whose menu sits behind an open form.
func (m Model) menuRoute() string {
	if m.dialog != nil {
		return m.back
	}
	return m.route
}

func helpLine(pairs ...string) string {
	parts := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		parts = append(parts, styles.HelpKeyStyle.Render(pairs[i])+" "+styles.HelpDescStyle.Render(pairs[i+1]))
	}
	return strings.Join(parts, "  ")
}
