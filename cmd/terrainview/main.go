// Terrain View - A graphical tool for previewing procedural terrain.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"

	"github.com/VxTi/voxel-game/internal/config"
	"github.com/VxTi/voxel-game/internal/engine/terrain"
)

func main() {
	runtime.LockOSThread()

	// The config package registers the shared flags (-seed, -config, ...)
	size := flag.Int("size", 256, "Sampled area in world units per side")
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Unlike the game client, the preview stays deterministic by default.
	seed := cfg.World.Seed
	if seed == 0 {
		seed = 1
	}

	app := NewApp(cfg, seed, int32(*size))
	app.Run()
}

// App represents the terrain view application state.
type App struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]

	// World generation settings shared with the game client
	cfg *config.Config

	// Generation state
	seedText string
	seed     int64
	size     int32

	// View state
	biomeView bool
	zoom      float32
	dirty     bool

	hf        *terrain.HeightField
	img       *image.RGBA
	tex       *backend.Texture
	minHeight float32
	maxHeight float32

	// Export state (file dialog runs off the main thread)
	pendingExportPath string
	statusMsg         string
	statusTime        time.Time
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, seed int64, size int32) *App {
	app := &App{
		cfg:      cfg,
		seed:     seed,
		seedText: strconv.FormatInt(seed, 10),
		size:     size,
		zoom:     2.0,
		dirty:    true,
	}

	// Create backend using the proper wrapper
	var err error
	app.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		panic(fmt.Sprintf("failed to create backend: %v", err))
	}

	app.backend.SetBgColor(imgui.NewVec4(0.1, 0.1, 0.12, 1.0))
	app.backend.CreateWindow("Terrain View", 1100, 760)

	return app
}

// Run starts the main application loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

// render is called each frame to draw the UI.
func (app *App) render() {
	// Texture creation must happen on the main thread with the GL
	// context current, so regeneration is deferred to the frame loop.
	if app.dirty {
		app.dirty = false
		app.regenerate()
	}

	// Process pending export path (dialog result arrives from a goroutine)
	if app.pendingExportPath != "" {
		path := app.pendingExportPath
		app.pendingExportPath = ""
		app.exportPNG(path)
	}

	// Zoom controls: +/- to zoom, 0 to reset
	if app.tex != nil {
		if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyEqual)) || imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyKeypadAdd)) {
			if app.zoom < 8.0 {
				app.zoom += 0.25
			}
		}
		if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyMinus)) || imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyKeypadSubtract)) {
			if app.zoom > 0.25 {
				app.zoom -= 0.25
			}
		}
		if imgui.IsKeyChordPressed(imgui.KeyChord(imgui.Key0)) || imgui.IsKeyChordPressed(imgui.KeyChord(imgui.KeyKeypad0)) {
			app.zoom = 1.0
		}
	}

	// Get viewport work area
	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()

	// Layout dimensions
	controlsWidth := float32(280)
	statusBarHeight := float32(30)
	contentHeight := workSize.Y - statusBarHeight

	// Window flags for fixed panels
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	// Left panel - generation controls
	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(controlsWidth, contentHeight))
	if imgui.BeginV("Terrain", nil, flags) {
		app.renderControls()
	}
	imgui.End()

	// Main panel - heightmap preview
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+controlsWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X-controlsWidth, contentHeight))
	if imgui.BeginV("Preview", nil, flags) {
		app.renderPreview()
	}
	imgui.End()

	// Status bar at bottom
	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X, workPos.Y+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X, statusBarHeight))
	statusFlags := flags | imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar
	if imgui.BeginV("##StatusBar", nil, statusFlags) {
		app.renderStatusBar()
	}
	imgui.End()
}

// renderControls renders the generation controls panel.
func (app *App) renderControls() {
	imgui.Text("Seed:")
	imgui.SetNextItemWidth(-1)
	if imgui.InputTextWithHint("##seed", "integer seed", &app.seedText, 0, nil) {
		if v, err := strconv.ParseInt(strings.TrimSpace(app.seedText), 10, 64); err == nil {
			app.seed = v
		}
	}

	if imgui.ButtonV("Generate", imgui.NewVec2(-1, 0)) {
		app.dirty = true
	}
	if imgui.ButtonV("Random Seed", imgui.NewVec2(-1, 0)) {
		app.seed = time.Now().UnixNano() % 1000000
		app.seedText = strconv.FormatInt(app.seed, 10)
		app.dirty = true
	}

	imgui.Separator()

	imgui.Text("Area:")
	imgui.SetNextItemWidth(-1)
	// Resampling is expensive, so wait until the slider is released
	imgui.SliderIntV("##size", &app.size, 64, 1024, "%d units", imgui.SliderFlagsNone)
	if imgui.IsItemDeactivatedAfterEdit() {
		app.dirty = true
	}

	if imgui.Checkbox("Biome view", &app.biomeView) {
		app.dirty = true
	}

	imgui.Separator()

	// Stats
	imgui.Text(fmt.Sprintf("Height: %.1f to %.1f", app.minHeight, app.maxHeight))
	if app.hf != nil {
		imgui.Text(fmt.Sprintf("Biomes: %d", app.hf.BiomeCount()))
	}

	imgui.Separator()

	if imgui.ButtonV("Export PNG...", imgui.NewVec2(-1, 0)) {
		app.exportDialog()
	}
}

// renderPreview renders the heightmap preview panel.
func (app *App) renderPreview() {
	if app.tex == nil {
		imgui.TextDisabled("No terrain generated")
		return
	}

	// Zoom controls
	imgui.Text("Zoom:")
	imgui.SameLine()
	if imgui.Button("-##zoom") && app.zoom > 0.25 {
		app.zoom -= 0.25
	}
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("%.0f%%", app.zoom*100))
	imgui.SameLine()
	if imgui.Button("+##zoom") && app.zoom < 8.0 {
		app.zoom += 0.25
	}
	imgui.SameLine()
	if imgui.Button("Fit##zoom") {
		avail := imgui.ContentRegionAvail()
		zoomX := avail.X / float32(app.size)
		zoomY := avail.Y / float32(app.size)
		app.zoom = min(zoomX, zoomY)
		if app.zoom < 0.1 {
			app.zoom = 0.1
		}
	}

	imgui.Separator()

	w := float32(app.size) * app.zoom
	h := float32(app.size) * app.zoom

	// Scrollable child region for large maps
	if imgui.BeginChildStrV("TerrainView", imgui.NewVec2(0, 0), imgui.ChildFlagsBorders, imgui.WindowFlagsHorizontalScrollbar) {
		imgui.ImageWithBgV(
			app.tex.ID,
			imgui.NewVec2(w, h),
			imgui.NewVec2(0, 0),
			imgui.NewVec2(1, 1),
			imgui.NewVec4(0.1, 0.1, 0.1, 1.0), // Dark background
			imgui.NewVec4(1, 1, 1, 1),         // No tint
		)
	}
	imgui.EndChild()
}

// renderStatusBar renders the status bar at the bottom.
func (app *App) renderStatusBar() {
	if app.statusMsg != "" && time.Since(app.statusTime) < 4*time.Second {
		imgui.Text(app.statusMsg)
		return
	}
	imgui.Text(fmt.Sprintf("Seed %d | %dx%d samples", app.seed, app.size, app.size))
}

// exportDialog shows a native save dialog for the PNG export.
// NOTE: SDL/Cocoa window operations must happen on main thread,
// so we just set pendingExportPath here and process it in render()
func (app *App) exportDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("PNG Image", "png").
			Title("Export Heightmap").
			Save()

		if err != nil {
			// User canceled or error occurred
			if err != dialog.ErrCancelled {
				fmt.Fprintf(os.Stderr, "File dialog error: %v\n", err)
			}
			return
		}

		app.pendingExportPath = filename
	}()
}

func (app *App) setStatus(msg string) {
	app.statusMsg = msg
	app.statusTime = time.Now()
}

// exportPNG writes the current preview image to disk.
func (app *App) exportPNG(path string) {
	if app.img == nil {
		return
	}
	if filepath.Ext(path) == "" {
		path += ".png"
	}

	if err := writePNG(path, app.img); err != nil {
		app.setStatus(fmt.Sprintf("Export failed: %v", err))
		return
	}
	app.setStatus("Exported " + path)
}
