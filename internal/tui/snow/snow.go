// Package snow renders the decorative snowfall band shown above every
// kiosk screen.
package snow

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// DefaultFlakes is the number of flakes in a band.
const DefaultFlakes = 12

// Flake is one snowflake. Its timing is fixed when the Field is created.
type Flake struct {
	Left     float64 // horizontal position as a fraction of the width
	Duration time.Duration
	Delay    time.Duration
	Opacity  float64
	Size     float64 // nominal size in pixels, picks the glyph
}

// Field is a set of flakes mounted together.
type Field struct {
	flakes []Flake
}

// New creates count flakes with randomized timing drawn from rng.
func New(count int, rng *rand.Rand) *Field {
	if count < 0 {
		count = 0
	}
	flakes := make([]Flake, count)
	for i := range flakes {
		flakes[i] = Flake{
			Left:     rng.Float64(),
			Duration: 8*time.Second + time.Duration(rng.Float64()*float64(10*time.Second)),
			Delay:    time.Duration(rng.Float64() * float64(5*time.Second)),
			Opacity:  0.4 + rng.Float64()*0.5,
			Size:     10 + rng.Float64()*12,
		}
	}
	return &Field{flakes: flakes}
}

// Flakes returns a copy of the mounted flakes.
func (f *Field) Flakes() []Flake {
	out := make([]Flake, len(f.flakes))
	copy(out, f.flakes)
	return out
}

// Position returns the cell a flake occupies at elapsed, or false while
// it is still waiting for its delay.
func (fl Flake) Position(width, rows int, elapsed time.Duration) (col, row int, ok bool) {
	if width <= 0 || rows <= 0 || fl.Duration <= 0 || elapsed < fl.Delay {
		return 0, 0, false
	}
	progress := float64((elapsed-fl.Delay)%fl.Duration) / float64(fl.Duration)
	col = min(int(fl.Left*float64(width)), width-1)
	row = min(int(progress*float64(rows)), rows-1)
	return col, row, true
}

// Glyph picks the character for the flake's size.
func (fl Flake) Glyph() string {
	switch {
	case fl.Size < 14:
		return "·"
	case fl.Size < 18:
		return "*"
	default:
		return "❄"
	}
}

// Color maps opacity onto a gray shade.
func (fl Flake) Color() lipgloss.Color {
	v := int(fl.Opacity * 255)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", v, v, v))
}

// Render draws the band as rows lines of width cells.
func (f *Field) Render(width, rows int, elapsed time.Duration) string {
	if width <= 0 || rows <= 0 {
		return ""
	}
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, width)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	for _, fl := range f.flakes {
		col, row, ok := fl.Position(width, rows, elapsed)
		if !ok {
			continue
		}
		grid[row][col] = lipgloss.NewStyle().Foreground(fl.Color()).Render(fl.Glyph())
	}

	lines := make([]string, rows)
	for r, cells := range grid {
		lines[r] = strings.Join(cells, "")
	}
	return strings.Join(lines, "\n")
}
