package game

import (
	"fmt"

	"alpha3d/internal/physics"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	panelW = 240
	panelH = 200
	rowH   = 24
)

var (
	colorBgDark    = rl.NewColor(10, 10, 15, 255)
	colorBgElement = rl.NewColor(28, 28, 38, 255)
	colorBgHover   = rl.NewColor(38, 38, 52, 255)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(200, 200, 208, 255)
	colorTextFocus = rl.NewColor(255, 255, 255, 255)
)

// initRayguiStyle sets up the dark theme (default font)
func initRayguiStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextFocus))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextFocus))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 15)
}

// panel is the world control overlay in the top-right corner
type panel struct {
	game *Game
}

func newPanel(g *Game) panel {
	return panel{game: g}
}

func (p panel) Draw() {
	g := p.game
	x := float32(rl.GetScreenWidth() - panelW - 10)
	y := float32(10)

	gui.Panel(rl.Rectangle{X: x, Y: y, Width: panelW, Height: panelH}, "World")
	y += 32

	labelW := float32(70)
	gui.Label(rl.Rectangle{X: x + 8, Y: y, Width: labelW, Height: rowH}, "Gravity")
	sliderBounds := rl.Rectangle{X: x + 8 + labelW, Y: y, Width: panelW - labelW - 50, Height: rowH}
	gravity := gui.Slider(sliderBounds, "", fmt.Sprintf("%.1f", g.Level.World.Gravity), g.Level.World.Gravity, 0, 30)
	g.setGravity(gravity)
	y += rowH + 8

	checkBounds := rl.Rectangle{X: x + 8, Y: y, Width: rowH, Height: rowH}
	g.Paused = gui.CheckBox(checkBounds, "Paused", g.Paused)
	y += rowH + 8

	gridBounds := rl.Rectangle{X: x + 8, Y: y, Width: rowH, Height: rowH}
	useGrid := g.Level.World.Config().BroadPhase == physics.BroadPhaseGrid
	if gui.CheckBox(gridBounds, "Grid broad phase", useGrid) != useGrid {
		g.toggleBroadPhase()
	}
	y += rowH + 8

	debugBounds := rl.Rectangle{X: x + 8, Y: y, Width: rowH, Height: rowH}
	g.DebugMode = gui.CheckBox(debugBounds, "Show contacts", g.DebugMode)
	y += rowH + 8

	if gui.Button(rl.Rectangle{X: x + 8, Y: y, Width: panelW - 16, Height: rowH}, "Reset") {
		g.resetOrDie()
	}
}

// setGravity applies to the running world and to later resets
func (g *Game) setGravity(gravity float32) {
	g.Level.World.Gravity = gravity
	g.Config.Physics.Gravity = gravity
}

func (g *Game) toggleBroadPhase() {
	if g.Config.Physics.BroadPhase == physics.BroadPhaseGrid {
		g.Config.Physics.BroadPhase = physics.BroadPhaseAllPairs
	} else {
		g.Config.Physics.BroadPhase = physics.BroadPhaseGrid
	}
	g.resetOrDie()
}
