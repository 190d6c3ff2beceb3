// Package app provides the main TUI application that wires all views together.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/berth-dev/wishkiosk/internal/kiosk"
	"github.com/berth-dev/wishkiosk/internal/log"
	"github.com/berth-dev/wishkiosk/internal/tui"
	"github.com/berth-dev/wishkiosk/internal/tui/commands"
	"github.com/berth-dev/wishkiosk/internal/tui/views"
)

// Options carries the collaborators the App drives.
type Options struct {
	// Context bounds background submissions.
	Context  context.Context
	Pipeline *kiosk.Pipeline
	// Events is the optional JSONL event log.
	Events *log.Logger
	Logger *slog.Logger
	// Now overrides the submission clock in tests.
	Now func() time.Time
}

// App is the main TUI application that wires all views together.
type App struct {
	model  *tui.Model
	opts   Options
	chrome views.Chrome

	// View models
	attractView    views.AttractModel
	composeView    views.ComposeModel
	processingView views.ProcessingModel
	successView    views.SuccessModel
}

// New creates a new App on top of model.
func New(model *tui.Model, opts Options) *App {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	campaign := model.Cfg.Campaign
	chrome := views.Chrome{
		Title:    campaign.Title,
		Subtitle: campaign.Subtitle,
		Sponsor:  campaign.Sponsor,
		PerWish:  model.Formatter.Format(model.Session.DonationPerWish()),
	}

	return &App{
		model:       model,
		opts:        opts,
		chrome:      chrome,
		attractView: views.NewAttractModel(chrome, model.Width),
	}
}

// Model exposes the shared state, mainly for tests.
func (a *App) Model() *tui.Model {
	return a.model
}

// Init starts the snowfall and records the session start.
func (a *App) Init() tea.Cmd {
	a.record(log.LogEvent{Event: log.EventSessionStarted})
	return tui.SnowTickCmd()
}

// Update handles messages and updates the application state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		return a, a.routeToScreen(msg)

	case tea.KeyMsg:
		if key.Matches(msg, tui.DefaultKeyMap.CtrlC) {
			if a.model.CtrlCPending {
				// Second press within timeout - exit
				return a, tea.Quit
			}
			a.model.CtrlCPending = true
			return a, tea.Batch(tui.CtrlCResetCmd(), a.touch())
		}
		cmds = append(cmds, a.touch())

	case tea.MouseMsg:
		if tui.IsPress(msg) {
			cmds = append(cmds, a.touch())
		}

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil

	case tui.SnowTickMsg:
		a.model.SnowElapsed += tui.SnowInterval
		return a, tui.SnowTickCmd()

	case tui.IdleTimeoutMsg:
		return a, a.handleIdle(msg)

	case tui.WishCompleteMsg:
		return a, a.handleComplete(msg)

	case views.StartMsg:
		if !a.model.Session.Start() {
			return a, nil
		}
		a.record(log.LogEvent{Event: log.EventComposeStarted})
		return a, a.enterScreen()

	case views.SubmitWishMsg:
		return a, a.handleSubmit(msg)

	case views.CancelComposeMsg:
		if !a.model.Session.Cancel() {
			return a, nil
		}
		a.record(log.LogEvent{Event: log.EventWishCancelled})
		return a, a.enterScreen()

	case views.NewWishMsg:
		if !a.model.Session.NewWish() {
			return a, nil
		}
		a.record(log.LogEvent{Event: log.EventNewWish})
		return a, a.enterScreen()
	}

	cmds = append(cmds, a.routeToScreen(msg))
	return a, tea.Batch(cmds...)
}

// routeToScreen forwards msg to the view model of the current screen.
func (a *App) routeToScreen(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.model.Screen() {
	case kiosk.ScreenAttract:
		a.attractView, cmd = a.attractView.Update(msg)
	case kiosk.ScreenCompose:
		a.composeView, cmd = a.composeView.Update(msg)
		a.model.Session.UpdateForm(a.composeView.Form())
	case kiosk.ScreenProcessing:
		a.processingView, cmd = a.processingView.Update(msg)
	case kiosk.ScreenSuccess:
		a.successView, cmd = a.successView.Update(msg)
	}
	return cmd
}

func (a *App) handleSubmit(msg views.SubmitWishMsg) tea.Cmd {
	session := a.model.Session
	if !session.UpdateForm(msg.Form) {
		return nil
	}
	sub, cycle, ok := session.BeginSubmit(a.opts.Now())
	if !ok {
		return nil
	}
	a.record(log.LogEvent{
		Event:      log.EventWishSubmitted,
		Cycle:      cycle,
		WishLength: len([]rune(sub.Message)),
	})
	return tea.Batch(
		a.enterScreen(),
		commands.SubmitWishCmd(a.opts.Context, a.opts.Pipeline, sub, cycle),
	)
}

func (a *App) handleComplete(msg tui.WishCompleteMsg) tea.Cmd {
	if !a.model.Session.Complete(msg.Cycle, msg.Result) {
		a.opts.Logger.Debug("dropping stale submission result", "cycle", msg.Cycle)
		a.record(log.LogEvent{Event: log.EventStaleResult, Cycle: msg.Cycle})
		return nil
	}

	delivered := msg.Result.Delivered
	evt := log.LogEvent{
		Event:      log.EventWishCompleted,
		Cycle:      msg.Cycle,
		Fallback:   msg.Result.Err != nil,
		Delivered:  &delivered,
		DurationMs: msg.Duration.Milliseconds(),
	}
	if msg.Result.Err != nil {
		evt.Error = msg.Result.Err.Error()
	}
	a.record(evt)
	return a.enterScreen()
}

func (a *App) handleIdle(msg tui.IdleTimeoutMsg) tea.Cmd {
	from := a.model.Screen()
	if msg.Gen != a.model.IdleGen || (from != kiosk.ScreenCompose && from != kiosk.ScreenSuccess) {
		return nil
	}
	if !a.model.Session.IdleReset() {
		return nil
	}
	a.record(log.LogEvent{Event: log.EventIdleReset, Data: map[string]interface{}{"from": from.String()}})
	return a.enterScreen()
}

// enterScreen prepares the view model for the session's current screen,
// remounts the snowfall and re-arms the idle timer.
func (a *App) enterScreen() tea.Cmd {
	a.model.RemountSnow()

	var cmd tea.Cmd
	switch a.model.Screen() {
	case kiosk.ScreenAttract:
		a.attractView = views.NewAttractModel(a.chrome, a.model.Width)
	case kiosk.ScreenCompose:
		a.composeView = views.NewComposeModel(a.chrome, a.model.Width)
		cmd = a.composeView.Init()
	case kiosk.ScreenProcessing:
		a.processingView = views.NewProcessingModel()
		cmd = a.processingView.Init()
	case kiosk.ScreenSuccess:
		a.successView = views.NewSuccessModel(a.chrome, a.model.Width)
	}
	return tea.Batch(cmd, a.armIdle())
}

// armIdle invalidates any pending idle timer and starts a new one on
// screens that reset after inactivity.
func (a *App) armIdle() tea.Cmd {
	a.model.IdleGen++
	switch a.model.Screen() {
	case kiosk.ScreenCompose, kiosk.ScreenSuccess:
		return tui.IdleTimerCmd(a.model.IdleGen, a.model.Cfg.Session.IdleTimeout)
	}
	return nil
}

// touch re-arms the idle timer after visitor input.
func (a *App) touch() tea.Cmd {
	switch a.model.Screen() {
	case kiosk.ScreenCompose, kiosk.ScreenSuccess:
		return a.armIdle()
	}
	return nil
}

func (a *App) record(evt log.LogEvent) {
	if a.opts.Events == nil {
		return
	}
	stats := a.model.Session.Stats()
	evt.Time = time.Now()
	evt.Screen = a.model.Screen().String()
	evt.TotalDonated = stats.TotalDonated
	evt.MessageCount = stats.MessageCount
	if err := a.opts.Events.Append(evt); err != nil {
		a.opts.Logger.Warn("writing event log", "event", evt.Event, "error", err)
	}
}

// View renders the snowfall band, header, current screen and hint bar.
func (a *App) View() string {
	width, height := a.model.Width, a.model.Height

	band := a.model.Snow.Render(width, a.model.Cfg.Snow.Rows, a.model.SnowElapsed)
	header := a.chrome.Header(width)
	footer := a.renderStatusBar()

	content := a.ScreenView()

	used := lipgloss.Height(header) + lipgloss.Height(footer)
	if band != "" {
		used += lipgloss.Height(band)
	}
	body := lipgloss.Place(width, max(height-used, 1), lipgloss.Center, lipgloss.Center, content)

	parts := []string{}
	if band != "" {
		parts = append(parts, band)
	}
	parts = append(parts, header, body, footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// ScreenView renders only the current screen's content.
func (a *App) ScreenView() string {
	session := a.model.Session
	switch session.Screen() {
	case kiosk.ScreenAttract:
		return a.attractView.View(a.model.Formatter.Format(session.Stats().TotalDonated))
	case kiosk.ScreenCompose:
		return a.composeView.View()
	case kiosk.ScreenProcessing:
		return a.processingView.View()
	case kiosk.ScreenSuccess:
		return a.successView.View(session.AIResponse())
	}
	return "Unknown screen"
}

func (a *App) renderStatusBar() string {
	var hint string
	switch {
	case a.model.CtrlCPending:
		hint = "Press Ctrl+C again to exit"
	case a.model.Screen() == kiosk.ScreenAttract:
		hint = "enter: Send a Wish"
	case a.model.Screen() == kiosk.ScreenCompose:
		hint = "tab: Next field  enter: Continue  esc: Cancel"
	case a.model.Screen() == kiosk.ScreenProcessing:
		hint = "Please wait"
	case a.model.Screen() == kiosk.ScreenSuccess:
		hint = "enter: Send Another Wish"
	}
	return tui.StatusBarStyle.Width(a.model.Width).Render(hint)
}
