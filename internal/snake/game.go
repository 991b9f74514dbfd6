// Package snake implements the Snake game. Food placement and collision
// checks run in O(1) through a free-cell tracker instead of scanning the
// board, so the cost per move does not grow with board size or snake length.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/slavikme/snake-game/internal/board"
	"github.com/slavikme/snake-game/internal/config"
	"github.com/slavikme/snake-game/internal/core"
	"github.com/slavikme/snake-game/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Mode represents the game mode.
type Mode string

const (
	ModeCampaign Mode = "campaign"
	ModeEndless  Mode = "endless"
)

// noFood marks the absence of a food cell (board completely covered).
var noFood = core.Point{X: -1, Y: -1}

// Game implements the Snake game.
type Game struct {
	mode           Mode
	cfg            config.SnakeConfig
	rng            *rand.Rand
	tick           uint64
	score          int
	foodEaten      int // Food eaten in current level
	levelIndex     int // Current level (0-indexed)
	moveEveryTicks int
	moveTicker     int // Counts ticks until next move

	// Snake state
	snake     []core.Point // Head at index 0
	direction Direction
	nextDir   Direction // Buffered direction for next move
	growing   bool      // If true, don't remove tail on next move

	// Map state
	board      *board.Tracker      // free/occupied cells, drives food placement
	walls      map[core.Point]bool // wall cells, kept for rendering
	food       core.Point
	mapWidth   int
	mapHeight  int
	hudHeight  int
	mapOffsetX int
	mapOffsetY int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver     bool
	levelCleared bool
	won          bool
	paused       bool
	tooSmall     bool

	// Level clear animation
	levelClearTicks int
}

// Package-level variables set by the CLI before game creation.
var (
	configPath         string
	difficultyPreset   string
	selectedStartLevel int
)

// SetConfigPath sets the config file path used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level (1-based). 0 means start from the beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	return selectedStartLevel
}

// New creates a new campaign mode Snake game.
func New() *Game {
	return &Game{
		mode: ModeCampaign,
	}
}

// NewEndless creates a new endless mode Snake game.
func NewEndless() *Game {
	return &Game{
		mode: ModeEndless,
	}
}

func init() {
	registry.Register("snake", func() registry.Game {
		return New()
	})
	registry.Register("snake_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "snake_endless"
	}
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Snake (Endless)"
	}
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	snakeCfg, err := config.LoadSnake(configPath)
	if err != nil {
		snakeCfg = config.DefaultSnakeConfig()
	}
	g.cfg = config.ApplyPreset(snakeCfg, config.DifficultyPreset(difficultyPreset))

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.score = 0
	g.foodEaten = 0
	g.gameOver = false
	g.levelCleared = false
	g.won = false
	g.paused = false
	g.tooSmall = false
	g.levelClearTicks = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.hudHeight = 2 // Top HUD lines

	// Apply selected start level (campaign only)
	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0 // Reset after use
	} else {
		g.levelIndex = 0
	}

	g.loadLevel()
}

// loadLevel loads the current level's map and spawns the snake.
func (g *Game) loadLevel() {
	level := GetLevel(g.levelIndex % LevelCount())
	if level == nil {
		return
	}

	g.moveEveryTicks = g.levelInterval(level)
	g.moveTicker = 0
	g.foodEaten = 0
	g.levelCleared = false

	// Parse layout
	layout := level.Layout
	g.mapHeight = len(layout)
	g.mapWidth = 0
	for _, row := range layout {
		if len(row) > g.mapWidth {
			g.mapWidth = len(row)
		}
	}

	// Check if screen is too small
	requiredW := g.mapWidth + 2
	requiredH := g.mapHeight + g.hudHeight + 1
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Center the map
	g.mapOffsetX = (g.screenW - g.mapWidth) / 2
	g.mapOffsetY = g.hudHeight

	// Rebuild the occupancy tracker: walls occupied, everything else free
	g.board = board.New(g.mapWidth, g.mapHeight, g.rng)
	g.walls = make(map[core.Point]bool)
	for y, row := range layout {
		for x, ch := range row {
			if ch == '#' {
				p := core.Point{X: x, Y: y}
				g.walls[p] = true
				g.board.Occupy(p)
			}
		}
	}

	// Place the snake, then the first food
	g.initSnake()
	g.spawnFood()
}

// levelInterval computes the move interval for a level, applying the config
// baseline (difficulty preset) and, in endless mode, the cycle speed-up.
func (g *Game) levelInterval(level *Level) int {
	minInterval := g.cfg.Speed.MinMoveEveryTicks
	if minInterval < 1 {
		minInterval = 1
	}

	// Fixed difficulty: same interval on every level, no cycle speed-up
	if !g.cfg.Difficulty.Enabled {
		return max(minInterval, g.cfg.Speed.MoveEveryTicks)
	}

	interval := level.MoveEveryTicks

	// A preset that lowers the configured base shaves the same amount here.
	shift := config.DefaultSnakeConfig().Speed.MoveEveryTicks - g.cfg.Speed.MoveEveryTicks
	interval -= shift

	if g.mode == ModeEndless {
		cycle := g.levelIndex / LevelCount()
		interval -= cycle * g.cfg.Endless.SpeedUpPerCycle
	}

	return max(minInterval, interval)
}

// initSnake places the snake at a safe starting position.
func (g *Game) initSnake() {
	startX := g.mapWidth / 4
	startY := g.mapHeight / 2

	// Search for a horizontal run of three free cells
	for range 100 {
		fits := true
		for i := range 3 {
			p := core.Point{X: startX + i, Y: startY}
			if !g.board.IsFree(p) || p.X < 1 || p.X >= g.mapWidth-1 || p.Y < 1 || p.Y >= g.mapHeight-1 {
				fits = false
				break
			}
		}
		if fits {
			break
		}
		startX = 2 + g.rng.Intn(g.mapWidth/2)
		startY = 2 + g.rng.Intn(g.mapHeight-4)
	}

	// Create initial snake (3 segments, head at front)
	g.snake = []core.Point{
		{X: startX + 2, Y: startY}, // Head
		{X: startX + 1, Y: startY},
		{X: startX, Y: startY},
	}
	for _, seg := range g.snake {
		g.board.Occupy(seg)
	}
	g.direction = DirRight
	g.nextDir = DirRight
	g.growing = false
}

// spawnFood places food on a random free cell in O(1). The food cell stays
// "free" in the tracker; a new food is only drawn once the old one is gone,
// so it can never land on the snake, a wall, or itself.
func (g *Game) spawnFood() {
	p, ok := g.board.RandomFree()
	if !ok {
		// Board fully covered - should not happen in normal gameplay
		g.food = noFood
		return
	}
	g.food = p
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	// Don't process if game over, paused, too small, or level cleared animation
	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle level cleared animation
	if g.levelCleared {
		g.levelClearTicks++
		if g.levelClearTicks >= 90 { // ~1.5 seconds at 60 FPS
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	// Process direction input (buffer for next move)
	g.processInput(input)

	// Move snake on tick interval
	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.moveSnake()
	}

	return core.StepResult{State: g.State()}
}

// processInput handles direction changes.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	// Prevent instant reversal
	if !g.isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

// isOpposite checks if two directions are opposite.
func (g *Game) isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// moveSnake moves the snake one cell in the current direction.
func (g *Game) moveSnake() {
	if len(g.snake) == 0 {
		return
	}

	// Apply buffered direction
	g.direction = g.nextDir

	head := g.snake[0]
	var newHead core.Point
	switch g.direction {
	case DirUp:
		newHead = core.Point{X: head.X, Y: head.Y - 1}
	case DirDown:
		newHead = core.Point{X: head.X, Y: head.Y + 1}
	case DirLeft:
		newHead = core.Point{X: head.X - 1, Y: head.Y}
	case DirRight:
		newHead = core.Point{X: head.X + 1, Y: head.Y}
	}

	// Collision: any occupied or off-board cell kills, except the current
	// tail, which vacates its cell this same move.
	tail := g.snake[len(g.snake)-1]
	if !g.board.InBounds(newHead) {
		g.gameOver = true
		return
	}
	if !g.board.IsFree(newHead) && newHead != tail {
		g.gameOver = true
		return
	}

	// Move snake: add new head
	g.snake = append([]core.Point{newHead}, g.snake...)

	// Check food collision
	ate := newHead == g.food && g.food != noFood
	if ate {
		g.score++
		g.foodEaten++
		g.growing = true // Don't remove tail this move
	}

	// Remove tail unless growing
	if g.growing {
		g.growing = false
	} else if len(g.snake) > 1 {
		g.snake = g.snake[:len(g.snake)-1]
		g.board.Release(tail)
	}
	g.board.Occupy(newHead)

	if ate {
		g.spawnFood()
		g.checkLevelCompletion()
	}
}

// checkLevelCompletion checks if the level is complete.
func (g *Game) checkLevelCompletion() {
	if g.mode == ModeCampaign {
		level := GetLevel(g.levelIndex)
		if level != nil && g.foodEaten >= level.TargetFood {
			g.levelCleared = true
			g.levelClearTicks = 0
		}
	}
	// Endless mode: rotate layouts after a fixed amount of food
	if g.mode == ModeEndless && g.foodEaten >= g.cfg.Endless.FoodPerCycle {
		g.levelIndex++
		g.loadLevel()
	}
}

// advanceLevel moves to the next level.
func (g *Game) advanceLevel() {
	g.levelIndex++
	if g.mode == ModeCampaign && g.levelIndex >= LevelCount() {
		g.won = true
	} else {
		g.loadLevel()
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderMap(dst)
	g.renderSnake(dst)

	// Draw food
	if g.food != noFood {
		fx := g.mapOffsetX + g.food.X
		fy := g.mapOffsetY + g.food.Y
		dst.SetColored(fx, fy, '*', core.ColorBrightRed)
	}

	// Draw overlays
	switch {
	case g.levelCleared:
		levelName := "Level"
		if level := GetLevel(g.levelIndex); level != nil {
			levelName = level.Name
		}
		g.renderOverlay(dst, fmt.Sprintf("Level %d cleared!", g.levelIndex+1), levelName)
	case g.won:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.score))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.mode == ModeEndless {
		cycle := g.levelIndex/LevelCount() + 1
		hud = fmt.Sprintf(" Snake (Endless) — Score: %d  Cycle: %d", g.score, cycle)
	} else {
		target := 0
		if level := GetLevel(g.levelIndex); level != nil {
			target = level.TargetFood
		}
		hud = fmt.Sprintf(" Snake — Score: %d  Level: %d/%d  Food: %d/%d",
			g.score, g.levelIndex+1, LevelCount(), g.foodEaten, target)
	}

	for x := 0; x < dst.Width() && x < len(hud); x++ {
		dst.Set(x, 0, rune(hud[x]))
	}
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderMap draws walls.
func (g *Game) renderMap(dst *core.Screen) {
	for wall := range g.walls {
		dst.SetColored(g.mapOffsetX+wall.X, g.mapOffsetY+wall.Y, '#', core.ColorGray)
	}
}

// renderSnake draws the snake.
func (g *Game) renderSnake(dst *core.Screen) {
	for i, seg := range g.snake {
		sx := g.mapOffsetX + seg.X
		sy := g.mapOffsetY + seg.Y
		if i == 0 {
			dst.SetColored(sx, sy, 'O', core.ColorBrightGreen) // Head
		} else {
			dst.SetColored(sx, sy, 'o', core.ColorGreen) // Body
		}
	}
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	for y := boxY; y < boxY+boxH && y < h; y++ {
		for x := boxX; x < boxX+boxW && x < w; x++ {
			if x < 0 || y < 0 {
				continue
			}
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver || g.won,
		Paused:   g.paused,
	}
}

// --- String representation for Direction ---

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// --- Debug helper ---

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Score: %d, Level: %d\n", g.tick, g.score, g.levelIndex+1))
	b.WriteString(fmt.Sprintf("Snake len: %d, Direction: %s\n", len(g.snake), g.direction))
	if len(g.snake) > 0 {
		b.WriteString(fmt.Sprintf("Head: %s, Food: %s, Free cells: %d\n",
			g.snake[0], g.food, g.board.FreeCount()))
	}
	b.WriteString(fmt.Sprintf("GameOver: %v, Won: %v, Paused: %v\n", g.gameOver, g.won, g.paused))
	return b.String()
}
