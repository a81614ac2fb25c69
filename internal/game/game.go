// Package game implements the main game loop.
package game

import (
	"fmt"
	gomath "math"
	"sync"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/VxTi/voxel-game/internal/config"
	"github.com/VxTi/voxel-game/internal/engine/camera"
	"github.com/VxTi/voxel-game/internal/engine/debug"
	"github.com/VxTi/voxel-game/internal/engine/input"
	"github.com/VxTi/voxel-game/internal/engine/lighting"
	"github.com/VxTi/voxel-game/internal/engine/renderer"
	"github.com/VxTi/voxel-game/internal/engine/scene"
	"github.com/VxTi/voxel-game/internal/engine/terrain"
	"github.com/VxTi/voxel-game/internal/engine/window"
	"github.com/VxTi/voxel-game/internal/game/world"
	"github.com/VxTi/voxel-game/internal/logger"
	"github.com/VxTi/voxel-game/pkg/math"
)

// Game is the main game instance.
type Game struct {
	cfg     *config.Config
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input

	cam     *camera.FlyCamera
	sun     *lighting.Sun
	scene   *scene.TerrainRenderer
	world   *world.World
	capture *debug.ScreenshotCapture

	// obsPos mirrors the camera position for the generator goroutine.
	obsMu  sync.RWMutex
	obsPos math.Vec3

	mouseCaptured       bool
	screenshotRequested bool
}

// New creates a new game instance.
func New(cfg *config.Config) (*Game, error) {
	logger.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	g := &Game{
		cfg: cfg,
	}

	// Create window (this also creates the OpenGL context)
	var err error
	g.window, err = window.New(window.Config{
		Title:      "Voxel Game",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist).
	// The drawable size differs from the window size on high-DPI displays.
	drawW, drawH := g.window.GetDrawableSize()
	g.renderer, err = renderer.New(renderer.Config{
		Width:  drawW,
		Height: drawH,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	g.input = input.New()

	aspect := float32(drawW) / float32(drawH)
	fov := cfg.Camera.FOVDegrees * gomath.Pi / 180.0
	g.cam = camera.NewFlyCamera(fov, aspect, cfg.Camera.Near, cfg.Camera.Far)
	g.cam.MoveSpeed = cfg.Camera.MoveSpeed
	g.cam.Sensitivity = cfg.Camera.Sensitivity
	g.cam.Pitch = -0.4

	g.sun = lighting.NewSun()

	g.scene, err = scene.NewTerrainRenderer()
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create terrain renderer: %w", err)
	}

	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info("generating terrain", zap.Int64("seed", seed))

	hf := terrain.NewHeightField(terrain.NewSimplexSource(seed), terrainParams(cfg.World))
	g.world = world.New(worldConfig(cfg.World), hf, g.scene)

	// Spawn a little above the terrain surface at the origin.
	ground := g.world.HeightField().HeightAt(0, 0)
	g.cam.Position = math.Vec3{Y: ground + 10}

	g.capture = debug.NewScreenshotCapture(cfg.Game.ScreenshotDir, "voxel-game")

	logger.Info("game initialized")
	return g, nil
}

// terrainParams maps world configuration onto the height field.
func terrainParams(cfg config.WorldConfig) terrain.Params {
	octaves := make([]terrain.Octave, len(cfg.Octaves))
	for i, o := range cfg.Octaves {
		octaves[i] = terrain.Octave{Wavelength: o.Wavelength, Amplitude: o.Amplitude}
	}
	return terrain.Params{
		Octaves:      octaves,
		BiomeFactors: cfg.BiomeFactors,
		MaxHeight:    cfg.MaxHeight,
		Scale:        cfg.TerrainScale,
		NormalDelta:  cfg.NormalDelta,
	}
}

func worldConfig(cfg config.WorldConfig) world.Config {
	return world.Config{
		ChunkSize:          cfg.ChunkSize,
		GenerationRadius:   cfg.GenerationRadius,
		MaxChunks:          cfg.MaxChunks,
		MaxWorldObjects:    cfg.MaxWorldObjects,
		QueueCapacity:      cfg.QueueCapacity,
		GenerationInterval: time.Duration(cfg.GenerationIntervalMS) * time.Millisecond,
	}
}

// observationPoint is read by the chunk generator goroutine.
func (g *Game) observationPoint() *math.Vec3 {
	g.obsMu.RLock()
	p := g.obsPos
	g.obsMu.RUnlock()
	return &p
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	g.world.StartGeneration(g.observationPoint)
	g.setMouseCaptured(true)

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting game loop")

	for g.running {
		// Calculate delta time
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()

		// 2. Update game state
		g.update(dt)

		// 3. Render
		g.render(dt)

		// Capture before the swap so the finished frame is read back
		if g.screenshotRequested {
			g.screenshotRequested = false
			g.captureScreenshot()
		}

		// 4. Present
		g.window.SwapBuffers()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("chunks", g.world.ChunkCount()),
				zap.Int("queued", g.world.QueuedMeshes()),
			)
			if g.cfg.Game.ShowFPS {
				g.window.SetTitle(fmt.Sprintf("Voxel Game - %d fps, %d chunks",
					frameCount, g.world.ChunkCount()))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			w, h := g.window.GetDrawableSize()
			g.renderer.Resize(w, h)
			g.cam.SetAspect(w, h)

		case input.EventKeyDown:
			switch event.Key {
			case sdl.SCANCODE_ESCAPE:
				// First release the mouse, then quit
				if g.mouseCaptured {
					g.setMouseCaptured(false)
				} else {
					g.running = false
				}
			case sdl.SCANCODE_F2:
				g.screenshotRequested = true
			}

		case input.EventMouseMove:
			if g.mouseCaptured {
				g.cam.HandleMouse(float32(event.RelX), float32(event.RelY))
			}

		case input.EventMouseWheel:
			// Scrolling adjusts fly speed
			speed := g.cam.MoveSpeed * float32(gomath.Pow(1.1, float64(event.WheelY)))
			if speed < 1 {
				speed = 1
			}
			if speed > 500 {
				speed = 500
			}
			g.cam.MoveSpeed = speed

		case input.EventMouseDown:
			if !g.mouseCaptured {
				g.setMouseCaptured(true)
			}
		}
	}
}

func (g *Game) setMouseCaptured(captured bool) {
	g.mouseCaptured = captured
	input.SetRelativeMouseMode(captured)
}

// update advances the camera and world state.
func (g *Game) update(dt float64) {
	var forward, right, up float32
	if g.input.IsKeyHeld(sdl.SCANCODE_W) {
		forward++
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_S) {
		forward--
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_D) {
		right++
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_A) {
		right--
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_SPACE) {
		up++
	}
	if g.input.IsKeyHeld(sdl.SCANCODE_LSHIFT) {
		up--
	}
	if forward != 0 || right != 0 || up != 0 {
		g.cam.Move(forward, right, up, dt)
	}

	g.obsMu.Lock()
	g.obsPos = g.cam.Position
	g.obsMu.Unlock()

	g.world.Update(dt)
}

// render draws the current frame.
func (g *Game) render(dt float64) {
	g.renderer.Begin()

	g.scene.Begin(g.cam.ViewProjection(), g.sun, g.cfg.World.MaxHeight)

	frustum := g.cam.Frustum()
	g.world.Render(dt, &frustum)
}

func (g *Game) captureScreenshot() {
	width, height := g.renderer.Size()
	pixels := g.renderer.ReadFramebuffer()

	path, err := g.capture.CaptureFromPixels(pixels, width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close cleans up game resources.
func (g *Game) Close() {
	logger.Info("closing game")

	if g.world != nil {
		g.world.Close()
	}
	if g.scene != nil {
		g.scene.Destroy()
	}
	if g.window != nil {
		g.window.Close()
	}
}
