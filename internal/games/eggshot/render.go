package eggshot

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/eggshot/internal/assets"
	"github.com/vovakirdan/eggshot/internal/core"
)

// Minimum terminal size the playfield can be drawn in.
const (
	MinScreenW = 24
	MinScreenH = 8
)

const (
	wallChar   = '│'
	groundChar = '═'
	aimChar    = '·'
)

var categoryColors = map[Category]core.Color{
	CategoryAggressive: core.ColorBrightRed,
	CategoryPatrolling: core.ColorOrange,
	CategoryMindless:   core.ColorCyan,
}

// viewport maps world coordinates to screen cells.
// Row 0 is the HUD and the last row is the ground.
type viewport struct {
	left, right int // first and last playfield column
	top, bottom int // rows for y = ceiling and y = 0
	wallX       float64
	ceiling     float64
}

func newViewport(w, h int, wallX, ceiling float64) viewport {
	return viewport{
		left:    1,
		right:   w - 2,
		top:     1,
		bottom:  h - 2,
		wallX:   wallX,
		ceiling: ceiling,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	fx := (x + v.wallX) / (2 * v.wallX)
	fy := (v.ceiling - y) / v.ceiling
	cx := v.left + int(math.Round(fx*float64(v.right-v.left)))
	cy := v.top + int(math.Round(fy*float64(v.bottom-v.top)))
	return core.Clamp(cx, v.left, v.right), core.Clamp(cy, v.top, v.bottom)
}

// Render draws the current snapshot into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if w < MinScreenW || h < MinScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	snap := g.Snapshot()
	vp := newViewport(w, h, snap.WallX, snap.Ceiling)

	dst.DrawVLine(0, 1, h-2, wallChar, core.ColorGray)
	dst.DrawVLine(w-1, 1, h-2, wallChar, core.ColorGray)
	dst.DrawHLine(0, h-1, w, groundChar, core.ColorGreen)

	for _, t := range snap.Targets {
		x, y := vp.cell(t.X, t.Y)
		glyph, color := g.look(t.Mesh, 'o', core.ColorYellow)
		dst.SetColored(x, y, glyph, color)
	}

	if snap.Player.Phase.Grounded() {
		g.drawAim(dst, vp, snap)
	}

	for _, e := range snap.Enemies {
		x, y := vp.cell(e.X, e.Y)
		glyph, _ := g.look(e.Mesh, '■', core.ColorRed)
		color := categoryColors[e.Category]
		if snap.Invulnerable > 0 {
			color = core.ColorBlue
		}
		dst.SetColored(x, y, glyph, color)
	}

	px, py := vp.cell(snap.Player.X, snap.Player.Y)
	glyph, color := g.look(snap.Player.Mesh, '@', core.ColorBrightWhite)
	if snap.Invulnerable > 0 {
		color = core.ColorBrightYellow
	}
	dst.SetColored(px, py, glyph, color)

	g.drawHUD(dst, snap)

	if g.paused {
		drawPanel(dst, h/2, "PAUSED")
	}
}

// drawPanel draws text in a blank framed box centered on row y.
func drawPanel(dst *core.Screen, y int, text string) {
	width := utf8.RuneCountInString(text) + 4
	box := core.NewRect((dst.Width()-width)/2, y-1, width, 3)
	dst.DrawText(box.X+1, y, strings.Repeat(" ", width-2))
	dst.DrawBox(box, core.ColorGray)
	dst.DrawTextCenteredColored(y, text, core.ColorBrightWhite)
}

func (g *Game) look(id assets.MeshID, glyph rune, color core.Color) (rune, core.Color) {
	if g.bundle == nil {
		return glyph, color
	}
	if m, ok := g.bundle.Mesh(id); ok {
		return m.Glyph, m.Color
	}
	return glyph, color
}

// drawAim dots the launch direction; its length grows with charged power.
func (g *Game) drawAim(dst *core.Screen, vp viewport, snap Snapshot) {
	length := 1.5
	if snap.MaxPower > 0 {
		length += 3.5 * snap.Player.Power / snap.MaxPower
	}
	dir := core.Heading(snap.Player.Angle)
	origin := core.V(snap.Player.X, snap.Player.Y)
	px, py := vp.cell(origin.X, origin.Y)

	for d := 0.4; d <= length; d += 0.4 {
		p := origin.Add(dir.Scale(d))
		x, y := vp.cell(p.X, p.Y)
		if x == px && y == py {
			continue
		}
		dst.SetColored(x, y, aimChar, core.ColorGray)
	}
}

func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	left := fmt.Sprintf(" Score %d  Eggs %d  Golden %d  Enemies %d",
		snap.Score, snap.Eggs, snap.GoldenEggs, len(snap.Enemies))
	dst.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	var right string
	color := core.ColorGray
	switch {
	case snap.Invulnerable > 0:
		right = fmt.Sprintf("GOLDEN %.1fs ", snap.Invulnerable)
		color = core.ColorBrightYellow
	case snap.Player.Phase == PhaseCharging:
		right = fmt.Sprintf("%3.0f° %s ", snap.Player.Angle, powerBar(snap.Player.Power, snap.MaxPower, 10))
		color = core.ColorBrightGreen
	case snap.Player.Phase == PhaseAiming:
		right = fmt.Sprintf("%3.0f° ", snap.Player.Angle)
	default:
		right = snap.Player.Phase.String() + " "
	}
	if len([]rune(left))+len([]rune(right)) < dst.Width() {
		dst.DrawTextRight(0, right, color)
	}
}

func powerBar(power, maxPower float64, width int) string {
	filled := 0
	if maxPower > 0 {
		filled = core.Clamp(int(math.Round(power/maxPower*float64(width))), 0, width)
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat(".", width-filled) + "]"
}
