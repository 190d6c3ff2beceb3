// Package tui implements the kiosk terminal user interface using Bubble Tea.
package tui

import (
	"math/rand/v2"
	"time"

	"github.com/berth-dev/wishkiosk/internal/config"
	"github.com/berth-dev/wishkiosk/internal/format"
	"github.com/berth-dev/wishkiosk/internal/kiosk"
	"github.com/berth-dev/wishkiosk/internal/tui/snow"
)

// SnowInterval is how often the snowfall band advances.
const SnowInterval = 100 * time.Millisecond

// Model holds the state shared by every kiosk screen.
type Model struct {
	// Session is the kiosk state machine; screens read it, the app mutates it.
	Session *kiosk.Session

	// Configuration
	Cfg       *config.Config
	Formatter *format.Formatter

	// IdleGen is bumped whenever the idle timer is rearmed or disarmed.
	// Only the IdleTimeoutMsg carrying the current value may fire.
	IdleGen int

	// Decorative snowfall, remounted on every screen change.
	Snow        *snow.Field
	SnowElapsed time.Duration
	rng         *rand.Rand

	// Terminal dimensions
	Width  int
	Height int

	// Ctrl+C confirmation state
	CtrlCPending bool // True when waiting for second Ctrl+C press
}

// NewModel creates a Model for a fresh kiosk session.
func NewModel(cfg *config.Config, session *kiosk.Session, formatter *format.Formatter, rng *rand.Rand) *Model {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
	}
	m := &Model{
		Session:   session,
		Cfg:       cfg,
		Formatter: formatter,
		rng:       rng,

		// Default dimensions (will be updated on WindowSizeMsg)
		Width:  80,
		Height: 24,
	}
	m.RemountSnow()
	return m
}

// RemountSnow replaces the snowfall with freshly randomized flakes.
func (m *Model) RemountSnow() {
	m.Snow = snow.New(m.Cfg.Snow.Flakes, m.rng)
	m.SnowElapsed = 0
}

// Screen is shorthand for the session's current screen.
func (m *Model) Screen() kiosk.Screen {
	return m.Session.Screen()
}
