// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/cavern/internal/application/replay"
	"github.com/younwookim/cavern/internal/application/scene"
	"github.com/younwookim/cavern/internal/application/state"
	"github.com/younwookim/cavern/internal/application/system"
	"github.com/younwookim/cavern/internal/domain/entity"
	"github.com/younwookim/cavern/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorWall     = color.RGBA{80, 80, 100, 255}
	colorBat      = color.RGBA{170, 90, 200, 255}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
)

// motionColors keys the player's fill color by motion type. A fixed
// enum-keyed table stands in for a sprite sheet.
var motionColors = map[entity.MotionType]color.RGBA{
	entity.MotionStanding:    {100, 200, 100, 255},
	entity.MotionWalking:     {140, 220, 100, 255},
	entity.MotionJumping:     {100, 180, 230, 255},
	entity.MotionFalling:     {100, 140, 230, 255},
	entity.MotionInteracting: {200, 180, 90, 255},
}

// Options carries the optional wiring for a Playing scene.
type Options struct {
	// RecordPath enables input recording and names the output file.
	RecordPath string
	// Replayer, when set, replaces keyboard input with recorded frames.
	Replayer *replay.Replayer
	// Reload delivers changed file paths from a config watcher.
	Reload <-chan string
	// ReloadStage rebuilds the stage when a watched file changes.
	ReloadStage func() (*entity.Stage, error)
}

// Playing is the main gameplay scene. Each tick it maps input to actor
// intents, advances the actor timers, runs the axis integrator (horizontal
// fully, then vertical), updates the bats, applies contact damage and
// finally derives the visual state for drawing.
type Playing struct {
	cfg      *config.GameConfig
	stage    *entity.Stage
	stageKey string
	state    state.GameState

	player     *entity.Player
	bats       []*entity.Bat
	batSpawns  []config.PositionConfig
	damageText *entity.DamageText

	physicsSystem *system.PhysicsSystem
	inputSystem   *system.InputSystem

	screenW  int
	screenH  int
	tileSize int

	recorder *Recorder
	opts     Options
}

// New creates a new Playing scene on the given stage.
func New(cfg *config.GameConfig, stageKey string, stage *entity.Stage, batSpawns []config.PositionConfig, opts Options) *Playing {
	p := &Playing{
		cfg:           cfg,
		stage:         stage,
		stageKey:      stageKey,
		state:         state.StatePlaying,
		player:        entity.NewPlayer(stage.SpawnX, stage.SpawnY, playerParams(cfg)),
		batSpawns:     batSpawns,
		damageText:    entity.NewDamageText(damageTextParams(cfg)),
		physicsSystem: system.NewPhysicsSystem(cfg.Physics, stage),
		inputSystem:   system.NewInputSystem(),
		screenW:       cfg.Physics.Display.ScreenWidth,
		screenH:       cfg.Physics.Display.ScreenHeight,
		tileSize:      stage.TileSize,
		opts:          opts,
	}

	for _, spawn := range batSpawns {
		p.bats = append(p.bats, entity.NewBat(spawn.X, spawn.Y, batParams(cfg)))
	}

	if opts.RecordPath != "" {
		p.recorder = NewRecorder(stageKey)
		log.Printf("Recording enabled: %s", opts.RecordPath)
	}

	return p
}

func playerParams(cfg *config.GameConfig) entity.PlayerParams {
	pc := cfg.Entities.Player
	return entity.PlayerParams{
		CollisionX:       collisionRect(pc.CollisionX),
		CollisionY:       collisionRect(pc.CollisionY),
		MaxHealth:        pc.MaxHealth,
		JumpSpeed:        cfg.Physics.Jump.Speed,
		ShortJumpSpeed:   cfg.Physics.Jump.ShortSpeed,
		InvincibleTimeMS: pc.Invincibility.DurationMS,
		FlashIntervalMS:  pc.Invincibility.FlashIntervalMS,
	}
}

func collisionRect(r config.Rect) entity.Rectangle {
	return entity.NewRectangle(r.OffsetX, r.OffsetY, r.Width, r.Height)
}

func batParams(cfg *config.GameConfig) entity.BatParams {
	bc := cfg.Entities.Bat
	return entity.BatParams{
		AngularVelocity: bc.AngularVelocity,
		Amplitude:       bc.Amplitude,
		BodySize:        bc.BodySize,
		ContactDamage:   bc.ContactDamage,
	}
}

func damageTextParams(cfg *config.GameConfig) entity.DamageTextParams {
	dc := cfg.Entities.DamageText
	return entity.DamageTextParams{
		RiseSpeed:  dc.RiseSpeed,
		MaxOffset:  dc.MaxOffset,
		DurationMS: dc.DurationMS,
	}
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(elapsedMS float64) (scene.Scene, error) {
	p.checkReload()

	switch p.state {
	case state.StatePlaying:
		p.updatePlaying(elapsedMS)
	case state.StatePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			p.state = state.StatePlaying
		}
	case state.StateGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyZ) {
			p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

func (p *Playing) updatePlaying(elapsedMS float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		p.state = state.StatePaused
		return
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	input := p.readInput()

	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}

	p.applyIntents(input)

	// Actor tick: timers, then horizontal and vertical integration. The
	// classifier runs on demand when drawing.
	p.player.UpdateTimers(elapsedMS)
	p.physicsSystem.Update(p.player, elapsedMS)

	for _, bat := range p.bats {
		bat.Update(elapsedMS, p.player.CenterX())

		if bat.DamageRectangle().CollidesWith(p.player.DamageRectangle()) {
			if p.player.TakeDamage(bat.ContactDamage()) {
				p.damageText.SetDamage(bat.ContactDamage())
			}
		}
	}

	p.damageText.Update(elapsedMS)

	if p.player.Health <= 0 {
		p.state = state.StateGameOver
		if p.recorder != nil {
			p.saveRecording()
		}
	}
}

// readInput returns this tick's input, from the replayer when one is set.
func (p *Playing) readInput() system.InputState {
	if p.opts.Replayer == nil {
		return p.inputSystem.GetInput()
	}
	in, ok := p.opts.Replayer.GetInput()
	if !ok {
		return system.InputState{}
	}
	return system.InputState{
		Left:         in.Left,
		Right:        in.Right,
		Up:           in.Up,
		Down:         in.Down,
		JumpPressed:  in.JumpPressed,
		JumpReleased: in.JumpReleased,
	}
}

// applyIntents maps the raw input state onto the actor's intent setters.
// Opposing directions cancel out.
func (p *Playing) applyIntents(input system.InputState) {
	switch {
	case input.Left && input.Right:
		p.player.StopMoving()
	case input.Left:
		p.player.StartMovingLeft()
	case input.Right:
		p.player.StartMovingRight()
	default:
		p.player.StopMoving()
	}

	switch {
	case input.Up && input.Down:
		p.player.LookHorizontal()
	case input.Up:
		p.player.LookUp()
	case input.Down:
		p.player.LookDown()
	default:
		p.player.LookHorizontal()
	}

	if input.JumpPressed {
		p.player.StartJump()
	}
	if input.JumpReleased {
		p.player.StopJump()
	}
}

// checkReload swaps the stage in when a watched file changed.
func (p *Playing) checkReload() {
	if p.opts.Reload == nil || p.opts.ReloadStage == nil {
		return
	}
	select {
	case path, ok := <-p.opts.Reload:
		if !ok {
			return
		}
		stage, err := p.opts.ReloadStage()
		if err != nil {
			log.Printf("Stage reload failed (%s): %v", path, err)
			return
		}
		p.stage = stage
		p.tileSize = stage.TileSize
		p.physicsSystem.SetStage(stage)
		log.Printf("Stage reloaded: %s", path)
	default:
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.opts.RecordPath
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

func (p *Playing) restart() {
	p.player = entity.NewPlayer(p.stage.SpawnX, p.stage.SpawnY, playerParams(p.cfg))
	p.bats = p.bats[:0]
	for _, spawn := range p.batSpawns {
		p.bats = append(p.bats, entity.NewBat(spawn.X, spawn.Y, batParams(p.cfg)))
	}
	p.damageText = entity.NewDamageText(damageTextParams(p.cfg))
	p.state = state.StatePlaying

	if p.opts.Replayer != nil {
		p.opts.Replayer.Reset()
	}
	if p.opts.RecordPath != "" {
		p.recorder = NewRecorder(p.stageKey)
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()

	p.drawTiles(screen, camX, camY)
	p.drawBats(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)
	p.drawDamageText(screen, camX, camY)
	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

// camera centers on the player, clamped to stage bounds.
func (p *Playing) camera() (int, int) {
	camX := int(p.player.CenterX()) - p.screenW/2
	camY := int(p.player.CenterY()) - p.screenH/2

	maxCamX := p.stage.Width*p.tileSize - p.screenW
	maxCamY := p.stage.Height*p.tileSize - p.screenH
	if camX > maxCamX {
		camX = maxCamX
	}
	if camY > maxCamY {
		camY = maxCamY
	}
	if camX < 0 {
		camX = 0
	}
	if camY < 0 {
		camY = 0
	}
	return camX, camY
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY int) {
	startTileX := camX / p.tileSize
	startTileY := camY / p.tileSize
	endTileX := (camX+p.screenW)/p.tileSize + 1
	endTileY := (camY+p.screenH)/p.tileSize + 1

	for ty := startTileY; ty <= endTileY && ty < p.stage.Height; ty++ {
		for tx := startTileX; tx <= endTileX && tx < p.stage.Width; tx++ {
			if tx < 0 || ty < 0 {
				continue
			}
			if p.stage.GetTile(ty, tx).Type != entity.TileWall {
				continue
			}

			x := float64(tx*p.tileSize - camX)
			y := float64(ty*p.tileSize - camY)
			ebitenutil.DrawRect(screen, x, y, float64(p.tileSize), float64(p.tileSize), colorWall)
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY int) {
	if !p.player.SpriteVisible() {
		return
	}

	spriteState := p.player.SpriteState()
	body := p.player.DamageRectangle()

	x := body.Left() - float64(camX)
	y := body.Top() - float64(camY)
	ebitenutil.DrawRect(screen, x, y, body.W, body.H, motionColors[spriteState.Motion])

	// Facing marker
	markerX := x + 2
	if spriteState.Horizontal == entity.FacingRight {
		markerX = x + body.W - 6
	}
	markerY := y + body.H/3
	switch spriteState.Vertical {
	case entity.FacingUp:
		markerY = y + 2
	case entity.FacingDown:
		markerY = y + body.H - 6
	}
	ebitenutil.DrawRect(screen, markerX, markerY, 4, 4, color.RGBA{255, 255, 255, 255})
}

func (p *Playing) drawBats(screen *ebiten.Image, camX, camY int) {
	for _, bat := range p.bats {
		r := bat.DamageRectangle()
		x := r.Left() - float64(camX)
		y := r.Top() - float64(camY)
		ebitenutil.DrawRect(screen, x, y, r.W, r.H, colorBat)
	}
}

func (p *Playing) drawDamageText(screen *ebiten.Image, camX, camY int) {
	if !p.damageText.Visible() {
		return
	}
	x := int(p.player.CenterX()) - camX
	y := int(p.player.CenterY()+p.damageText.OffsetY) - camY
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("-%d", p.damageText.Damage), x, y)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)

	healthRatio := float64(p.player.Health) / float64(p.player.Params.MaxHealth)
	if healthRatio < 0 {
		healthRatio = 0
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*healthRatio, barH, colorHealthFG)

	ebitenutil.DebugPrint(screen, "Arrows: Move/Look | Z: Jump | ESC: Pause")
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress ESC to resume", p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 180}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	ebitenutil.DebugPrintAt(screen, "GAME OVER\n\nPress Z to restart", p.screenW/2-60, p.screenH/2-20)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}
