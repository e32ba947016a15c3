// Package window runs Egg Shot in a desktop window with Ebiten. Unlike the
// terminal, Ebiten reports real key releases, so held keys map directly to
// the game's press and release edges.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/eggshot/internal/assets"
	"github.com/vovakirdan/eggshot/internal/core"
	"github.com/vovakirdan/eggshot/internal/games/eggshot"
	"github.com/vovakirdan/eggshot/internal/platform/audio"
	"github.com/vovakirdan/eggshot/internal/platform/session"
	"github.com/vovakirdan/eggshot/internal/storage"
)

// Default window size in pixels.
const (
	DefaultWidth  = 800
	DefaultHeight = 720
)

const (
	margin    = 24
	hudHeight = 24
)

// bindings maps physical keys to game keys.
var bindings = []struct {
	key  ebiten.Key
	game core.Key
}{
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyA, core.KeyLeft},
	{ebiten.KeyArrowRight, core.KeyRight},
	{ebiten.KeyD, core.KeyRight},
	{ebiten.KeySpace, core.KeyFire},
	{ebiten.KeyArrowUp, core.KeyFire},
}

// inputEvents collects the edges reported this frame.
func inputEvents(pressed, released func(ebiten.Key) bool) []core.InputEvent {
	var events []core.InputEvent
	for _, b := range bindings {
		if pressed(b.key) {
			events = append(events, core.Press(b.game))
		}
		if released(b.key) {
			events = append(events, core.Release(b.game))
		}
	}
	return events
}

var rgba = map[core.Color]color.RGBA{
	core.ColorDefault:       {220, 220, 220, 255},
	core.ColorRed:           {205, 49, 49, 255},
	core.ColorGreen:         {13, 188, 121, 255},
	core.ColorYellow:        {229, 229, 16, 255},
	core.ColorBlue:          {36, 114, 200, 255},
	core.ColorMagenta:       {188, 63, 188, 255},
	core.ColorCyan:          {17, 168, 205, 255},
	core.ColorWhite:         {229, 229, 229, 255},
	core.ColorBrightRed:     {241, 76, 76, 255},
	core.ColorBrightGreen:   {35, 209, 139, 255},
	core.ColorBrightYellow:  {245, 245, 67, 255},
	core.ColorBrightBlue:    {59, 142, 234, 255},
	core.ColorBrightMagenta: {214, 112, 214, 255},
	core.ColorBrightCyan:    {41, 184, 219, 255},
	core.ColorBrightWhite:   {255, 255, 255, 255},
	core.ColorOrange:        {255, 135, 0, 255},
	core.ColorGray:          {138, 138, 138, 255},
}

var categoryColors = map[eggshot.Category]core.Color{
	eggshot.CategoryAggressive: core.ColorBrightRed,
	eggshot.CategoryPatrolling: core.ColorOrange,
	eggshot.CategoryMindless:   core.ColorCyan,
}

func toRGBA(c core.Color) color.RGBA {
	if v, ok := rgba[c]; ok {
		return v
	}
	return rgba[core.ColorDefault]
}

// projection maps world units to pixels, keeping the aspect ratio.
type projection struct {
	scale   float64
	originX float64 // pixel x of world x = 0
	groundY float64 // pixel y of world y = 0
}

func newProjection(w, h int, wallX, ceiling float64) projection {
	availW := float64(w - 2*margin)
	availH := float64(h - 2*margin - hudHeight)
	scale := min(availW/(2*wallX), availH/ceiling)
	return projection{
		scale:   scale,
		originX: float64(w) / 2,
		groundY: float64(hudHeight+margin) + (availH+ceiling*scale)/2,
	}
}

func (p projection) point(x, y float64) (float32, float32) {
	return float32(p.originX + x*p.scale), float32(p.groundY - y*p.scale)
}

func (p projection) length(d float64) float32 {
	return float32(d * p.scale)
}

// Options carries the optional services a window session uses.
type Options struct {
	Store  *storage.Store
	Sound  *audio.Player
	Logger *log.Logger
	Width  int
	Height int
}

// Frontend implements ebiten.Game around an Egg Shot session.
type Frontend struct {
	game     *eggshot.Game
	bundle   *assets.Bundle
	config   core.RuntimeConfig
	recorder *session.Recorder
	sound    *audio.Player
	logger   *log.Logger
	width    int
	height   int
	paused   bool
	finished bool
}

// New resets game and wraps it for Ebiten.
func New(game *eggshot.Game, cfg core.RuntimeConfig, opts Options) *Frontend {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	var saver session.ScoreSaver
	if opts.Store != nil {
		saver = opts.Store
	}
	var cues session.CuePlayer
	if opts.Sound != nil {
		cues = opts.Sound
	}

	f := &Frontend{
		game:     game,
		bundle:   game.Bundle(),
		config:   cfg,
		recorder: session.NewRecorder(game.ID(), saver, cues, logger),
		sound:    opts.Sound,
		logger:   logger,
		width:    opts.Width,
		height:   opts.Height,
	}
	if f.width <= 0 || f.height <= 0 {
		f.width, f.height = DefaultWidth, DefaultHeight
	}
	game.Reset(cfg)
	return f
}

// Update advances the session by one tick.
func (f *Frontend) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		f.Finish()
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		f.paused = !f.paused
		f.game.SetPaused(f.paused)
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		f.sound.ToggleMute()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		f.recorder.Finish(f.game.State())
		f.game.Reset(f.config)
		f.paused = false
	}

	for _, ev := range inputEvents(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased) {
		f.game.HandleInput(ev)
	}

	res := f.game.Update(1 / float64(ebiten.TPS()))
	f.recorder.Observe(res)
	return nil
}

// Finish records the run in progress. It is safe to call more than once.
func (f *Frontend) Finish() {
	if f.finished {
		return
	}
	f.finished = true
	f.recorder.Finish(f.game.State())
}

// Draw renders the current snapshot.
func (f *Frontend) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{14, 14, 22, 255})
	snap := f.game.Snapshot()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	p := newProjection(w, h, snap.WallX, snap.Ceiling)

	wall := toRGBA(core.ColorGray)
	lx, top := p.point(-snap.WallX, snap.Ceiling)
	rx, ground := p.point(snap.WallX, 0)
	vector.StrokeLine(screen, lx, top, lx, ground, 2, wall, true)
	vector.StrokeLine(screen, rx, top, rx, ground, 2, wall, true)
	vector.StrokeLine(screen, lx, ground, rx, ground, 3, toRGBA(core.ColorGreen), true)

	for _, t := range snap.Targets {
		f.drawMesh(screen, p, t.Mesh, t.X, t.Y, t.Radius, nil)
	}

	px, py := p.point(snap.Player.X, snap.Player.Y)
	if snap.Player.Phase.Grounded() {
		length := 1.5
		if snap.MaxPower > 0 {
			length += 3.5 * snap.Player.Power / snap.MaxPower
		}
		dir := core.Heading(snap.Player.Angle)
		ax, ay := p.point(snap.Player.X+dir.X*length, snap.Player.Y+dir.Y*length)
		vector.StrokeLine(screen, px, py, ax, ay, 2, toRGBA(core.ColorGray), true)
	}

	for _, e := range snap.Enemies {
		c := categoryColors[e.Category]
		if snap.Invulnerable > 0 {
			c = core.ColorBlue
		}
		f.drawMesh(screen, p, e.Mesh, e.X, e.Y, e.Radius, &c)
	}

	var playerColor *core.Color
	if snap.Invulnerable > 0 {
		c := core.ColorBrightYellow
		playerColor = &c
	}
	f.drawMesh(screen, p, snap.Player.Mesh, snap.Player.X, snap.Player.Y, snap.Player.Radius, playerColor)

	ebitenutil.DebugPrintAt(screen, hudText(snap), margin, 6)
	if f.paused {
		ebitenutil.DebugPrintAt(screen, "PAUSED  (P to resume)", w/2-63, h/2)
	}
}

// drawMesh draws an entity with its bundle shape. A non-nil tint overrides the mesh color.
func (f *Frontend) drawMesh(screen *ebiten.Image, p projection, id assets.MeshID, x, y, radius float64, tint *core.Color) {
	shape, c := assets.ShapeCircle, core.ColorDefault
	if m, ok := f.bundle.Mesh(id); ok {
		shape, c = m.Shape, m.Color
	}
	if tint != nil {
		c = *tint
	}
	cx, cy := p.point(x, y)
	r := max(p.length(radius), 3)
	clr := toRGBA(c)

	switch shape {
	case assets.ShapeSquare:
		vector.FillRect(screen, cx-r, cy-r, 2*r, 2*r, clr, true)
	case assets.ShapeDiamond:
		vector.StrokeLine(screen, cx, cy-r, cx+r, cy, 2, clr, true)
		vector.StrokeLine(screen, cx+r, cy, cx, cy+r, 2, clr, true)
		vector.StrokeLine(screen, cx, cy+r, cx-r, cy, 2, clr, true)
		vector.StrokeLine(screen, cx-r, cy, cx, cy-r, 2, clr, true)
	default:
		vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
	}
}

func hudText(s eggshot.Snapshot) string {
	text := fmt.Sprintf("Score %d   Eggs %d   Golden %d   Enemies %d   Angle %.0f",
		s.Score, s.Eggs, s.GoldenEggs, len(s.Enemies), s.Player.Angle)
	switch {
	case s.Invulnerable > 0:
		text += fmt.Sprintf("   GOLDEN %.1fs", s.Invulnerable)
	case s.Player.Phase == eggshot.PhaseCharging:
		text += fmt.Sprintf("   Power %.1f/%.0f", s.Player.Power, s.MaxPower)
	}
	return text
}

// Layout reports a fixed logical screen size.
func (f *Frontend) Layout(_, _ int) (int, int) {
	return f.width, f.height
}

// Recorder returns the session recorder.
func (f *Frontend) Recorder() *session.Recorder {
	return f.recorder
}

// Run opens the window and blocks until it is closed.
func Run(game *eggshot.Game, cfg core.RuntimeConfig, opts Options) error {
	f := New(game, cfg, opts)

	ebiten.SetWindowSize(f.width, f.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetTPS(f.config.TickRate)

	err := ebiten.RunGame(f)
	f.Finish()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
