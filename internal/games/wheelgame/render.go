package wheelgame

import (
	"fmt"

	"github.com/vovakirdan/wheeljam/internal/core"
	"github.com/vovakirdan/wheeljam/internal/wheel"
)

// Minimum screen size for the full wheel layout.
const (
	MinWidth  = 46
	MinHeight = 19
)

const (
	boxW     = 12
	boxH     = 3
	armReach = 16 // Horizontal distance from hub to the side boxes
	hubRow   = 7
)

// spinner frames, indexed by the ring angle in 45 degree steps.
var spinner = []rune{'|', '/', '-', '\\'}

// Render draws the wheel, the HUD, and the last event message.
func (g *Game) Render(dst *core.Screen) {
	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", MinWidth, MinHeight), core.ColorGray)
		return
	}

	dst.DrawTextCentered(0, "W H E E L J A M", core.ColorBrightYellow)

	if g.machine == nil {
		dst.DrawTextCentered(hubRow, g.message, core.ColorBrightRed)
		return
	}
	m := g.machine

	dst.DrawTextCentered(1,
		fmt.Sprintf("Selections %d/%d   Tally %d", m.Selections(), m.TargetSelections(), g.tally()),
		core.ColorWhite)

	cx := dst.Width() / 2
	layout := m.EffectiveLayout()
	slices := m.SliceValues()
	for _, d := range wheel.Directions() {
		g.drawQuadrant(dst, quadrantRect(cx, d), d, m, layout, slices)
	}
	g.drawHub(dst, cx, m)

	p := m.Payload()
	dst.DrawTextCentered(hubRow+7, g.cfg.Face(p.BaseValue), faceColor(p.BaseValue))
	dst.DrawTextCentered(hubRow+8, fmt.Sprintf("Slice multiplier: x%d", p.SliceValue), core.ColorCyan)
	dst.DrawTextCentered(hubRow+9, fmt.Sprintf("Total value: %d", p.TotalValue), core.ColorWhite)

	msgColor := core.ColorGray
	switch {
	case g.fault != nil:
		msgColor = core.ColorBrightRed
	case g.finished:
		msgColor = core.ColorBrightGreen
	}
	dst.DrawTextCentered(hubRow+11, g.message, msgColor)
}

func quadrantRect(cx int, d wheel.Direction) core.Rect {
	switch d {
	case wheel.Up:
		return core.CenteredRect(cx, hubRow-4, boxW, boxH)
	case wheel.Down:
		return core.CenteredRect(cx, hubRow+4, boxW, boxH)
	case wheel.Left:
		return core.CenteredRect(cx-armReach, hubRow, boxW, boxH)
	default:
		return core.CenteredRect(cx+armReach, hubRow, boxW, boxH)
	}
}

func (g *Game) drawQuadrant(dst *core.Screen, r core.Rect, d wheel.Direction, m *wheel.Machine, layout wheel.SliceLayout, slices []int) {
	border := core.ColorCyan
	if m.Covered(d) {
		border = core.ColorGray
	}
	if d == m.Selector() && m.State() != wheel.StateLocked {
		border = core.ColorBrightYellow
	}
	dst.DrawBox(r, border)

	inner := core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
	if m.Covered(d) {
		dst.FillRect(inner, '░', core.ColorGray)
		return
	}

	label := "x?"
	if idx, ok := layout[d]; ok && idx >= 0 && idx < len(slices) {
		label = fmt.Sprintf("x%d", slices[idx])
	}
	x := inner.X + (inner.W-len(label))/2
	dst.DrawTextColor(x, inner.Y, label, core.ColorWhite)
}

func (g *Game) drawHub(dst *core.Screen, cx int, m *wheel.Machine) {
	if m.State() == wheel.StateRotating {
		step := int(m.RingAngle()/45) % len(spinner)
		dst.SetColor(cx, hubRow, spinner[step], core.ColorOrange)
		return
	}

	arrow := map[wheel.Direction]rune{
		wheel.Up:    '^',
		wheel.Right: '>',
		wheel.Down:  'v',
		wheel.Left:  '<',
	}[m.Selector()]
	color := core.ColorBrightYellow
	if m.State() == wheel.StateLocked {
		color = core.ColorGray
	}
	dst.SetColor(cx, hubRow, arrow, color)
}

func faceColor(base int) core.Color {
	switch {
	case base < 0:
		return core.ColorRed
	case base > 0:
		return core.ColorBrightGreen
	default:
		return core.ColorYellow
	}
}
