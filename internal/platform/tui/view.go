package tui

import (
	"fmt"
	"math"

	"github.com/vovakirdan/flappy-arcade/internal/config"
	"github.com/vovakirdan/flappy-arcade/internal/core"
	"github.com/vovakirdan/flappy-arcade/internal/games/flappy"
)

// Overlay is the text panel drawn on top of the playfield.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayMenu
	OverlayGameOver
)

// cellAspect is how much taller a terminal cell is than it is wide.
const cellAspect = 2.0

// floorTile is the width of one stripe of the ground texture, in world units.
const floorTile = 24.0

// View projects the simulation into a Screen.
// Overlays follow the game's state hooks: GameOver shows its panel on
// entry and leaving Menu or GameOver clears whatever panel is up.
type View struct {
	cfg     config.FlappyConfig
	overlay Overlay
	muted   bool

	// Playfield placement inside the screen, updated by Layout.
	fieldX, fieldW, fieldH int
}

// NewView creates a view bound to g's presentation hooks.
func NewView(g *flappy.Game) *View {
	v := &View{cfg: g.Config()}
	if g.State() == core.StateMenu {
		v.overlay = OverlayMenu
	}

	g.OnEnter(func(s core.GameState) {
		switch s {
		case core.StateMenu:
			v.overlay = OverlayMenu
		case core.StateGameOver:
			v.overlay = OverlayGameOver
		}
	})
	g.OnClearPresentation(func() {
		v.overlay = OverlayNone
	})
	return v
}

// Overlay returns the panel currently shown.
func (v *View) Overlay() Overlay {
	return v.overlay
}

// SetMuted toggles the mute indicator.
func (v *View) SetMuted(muted bool) {
	v.muted = muted
}

// Layout fits the playfield into a screen of the given size, keeping the
// world's aspect ratio and centering it horizontally.
func (v *View) Layout(width, height int) {
	aspect := v.cfg.World.HalfWidth / v.cfg.World.HalfHeight
	v.fieldH = height
	v.fieldW = core.Min(width, int(math.Round(float64(height)*aspect*cellAspect)))
	v.fieldX = (width - v.fieldW) / 2
}

// Project converts a world position to a screen cell.
func (v *View) Project(p core.Vec2) (col, row int) {
	hw, hh := v.cfg.World.HalfWidth, v.cfg.World.HalfHeight
	col = v.fieldX + int(math.Floor((p.X+hw)/(2*hw)*float64(v.fieldW)))
	row = int(math.Floor((hh - p.Y) / (2 * hh) * float64(v.fieldH)))
	return col, row
}

// boxRect converts a world box to the cells it covers.
func (v *View) boxRect(b core.Box) core.Rect {
	hw, hh := v.cfg.World.HalfWidth, v.cfg.World.HalfHeight
	sx := float64(v.fieldW) / (2 * hw)
	sy := float64(v.fieldH) / (2 * hh)

	x0 := int(math.Floor((b.Center.X - b.Size.W/2 + hw) * sx))
	x1 := int(math.Ceil((b.Center.X + b.Size.W/2 + hw) * sx))
	y0 := int(math.Floor((hh - b.Center.Y - b.Size.H/2) * sy))
	y1 := int(math.Ceil((hh - b.Center.Y + b.Size.H/2) * sy))

	// Clip to the playfield so pipes never spill into the letterbox
	x0 = core.Max(x0, 0)
	x1 = core.Min(x1, v.fieldW)
	return core.NewRect(v.fieldX+x0, y0, x1-x0, y1-y0)
}

// Render draws the whole frame.
func (v *View) Render(s *core.Screen, g *flappy.Game) {
	s.Clear()
	v.Layout(s.Width(), s.Height())
	if v.fieldW <= 0 || v.fieldH <= 0 {
		return
	}

	v.drawBorders(s)
	v.drawPipes(s, g.Obstacles())
	v.drawFloor(s, g.FloorSegments())
	if pose, ok := g.BirdPose(); ok {
		v.drawBird(s, pose)
	}
	v.drawHUD(s, g)

	switch v.overlay {
	case OverlayMenu:
		v.drawPanel(s, []string{"F L A P P Y", "", "space to start", "q to quit"}, core.ColorBrightWhite)
	case OverlayGameOver:
		v.drawPanel(s, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("score %d", g.DisplayScore()),
			"",
			"space to retry",
		}, core.ColorRed)
	}
}

func (v *View) drawBorders(s *core.Screen) {
	if v.fieldX == 0 {
		return
	}
	for y := 0; y < v.fieldH; y++ {
		s.SetColored(v.fieldX-1, y, '│', core.ColorGray)
		s.SetColored(v.fieldX+v.fieldW, y, '│', core.ColorGray)
	}
}

func (v *View) drawPipes(s *core.Screen, obstacles []flappy.Obstacle) {
	for _, o := range obstacles {
		r := v.boxRect(o.Box(v.cfg.Pipes.Hitbox))
		if r.W <= 0 {
			continue
		}
		s.DrawRect(r, '█', core.ColorGreen)

		// The lip faces the gap
		lip := r.Bottom() - 1
		if o.Kind == core.ObstacleBottom {
			lip = r.Y
		}
		s.DrawRect(core.NewRect(r.X, lip, r.W, 1), '▓', core.ColorBrightGreen)
	}
}

func (v *View) drawFloor(s *core.Screen, segments []core.Vec2) {
	f := v.cfg.Floor
	box := core.NewBox(core.Vec2{X: 0, Y: f.Y}, core.Size{W: 2 * v.cfg.World.HalfWidth, H: 2 * f.HalfHeight})
	r := v.boxRect(box)
	if len(segments) == 0 {
		return
	}

	// Stripes are anchored to the first segment so they move with the ground
	anchor := segments[0].X
	hw := v.cfg.World.HalfWidth
	for col := r.X; col < r.Right(); col++ {
		worldX := (float64(col-v.fieldX)+0.5)/float64(v.fieldW)*(2*hw) - hw
		stripe := int(math.Floor((worldX-anchor)/floorTile)) & 1
		ch := '░'
		if stripe == 1 {
			ch = '▒'
		}
		for row := r.Y; row < r.Bottom(); row++ {
			s.SetColored(col, row, ch, core.ColorTan)
		}
		s.SetColored(col, r.Y, '▀', core.ColorBrightGreen)
	}
}

var birdWings = []rune{'^', '-', 'v', '-'}

func (v *View) drawBird(s *core.Screen, pose flappy.Pose) {
	col, row := v.Project(pose.Position)

	head := '>'
	switch {
	case pose.Rotation > math.Pi/8:
		head = '/'
	case pose.Rotation < -math.Pi/8:
		head = '\\'
	}

	c := birdColor(pose.Skin)
	s.SetColored(col-1, row, birdWings[pose.Frame%len(birdWings)], c)
	s.SetColored(col, row, head, c)
}

func birdColor(skin flappy.Skin) core.Color {
	switch skin {
	case flappy.SkinRed:
		return core.ColorRed
	case flappy.SkinBlue:
		return core.ColorBlue
	default:
		return core.ColorYellow
	}
}

func (v *View) drawHUD(s *core.Screen, g *flappy.Game) {
	if g.State() != core.StateMenu {
		text := fmt.Sprintf("%d", g.DisplayScore())
		s.DrawText(v.fieldX+(v.fieldW-len(text))/2, 1, text, core.ColorBrightWhite)
	}
	if v.muted {
		s.DrawText(v.fieldX+v.fieldW-6, 0, "muted", core.ColorGray)
	}
}

// drawPanel draws a boxed block of centered lines in the middle of the playfield.
func (v *View) drawPanel(s *core.Screen, lines []string, c core.Color) {
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 2

	r := core.NewRect(v.fieldX+(v.fieldW-width)/2, (v.fieldH-height)/2, width, height)
	s.DrawRect(r, ' ', core.ColorDefault)
	s.DrawBox(r, c)
	for i, l := range lines {
		x := r.X + (width-len([]rune(l)))/2
		s.DrawText(x, r.Y+1+i, l, c)
	}
}
