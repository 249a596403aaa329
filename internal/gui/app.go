package gui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/backdrop/internal/config"
	"github.com/san-kum/backdrop/internal/engine"
	"github.com/san-kum/backdrop/internal/frame"
	"github.com/san-kum/backdrop/internal/page"
	"github.com/san-kum/backdrop/internal/render"
	"github.com/san-kum/backdrop/internal/scene"
)

var (
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColPanel   = rl.NewColor(0, 0, 0, 140)
)

const maxTelemetry = 200

type App struct {
	Engine   *engine.Engine
	Ticker   *frame.Ticker
	Page     *page.Static
	Sections []scene.Section
	Selected int

	// Telemetry is the entity count of the selected section, oldest first.
	Telemetry []float64

	tex    rl.Texture2D
	texW   int
	texH   int
	logger *log.Logger
}

func initWindow(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), "backdrop")
	rl.SetTargetFPS(int32(cfg.FPS))
	rl.SetExitKey(0)
}

// NewApp starts an engine with one raster canvas per section, sized to the window.
func NewApp(cfg *config.Config, sections []scene.Section, logger *log.Logger) (*App, error) {
	p := page.NewStatic(func(w, h int) render.Surface {
		img := render.NewImage(w, h)
		img.Background = cfg.ThemeOrDefault().Palette.Background
		return img
	})
	for _, sec := range sections {
		p.Add(sec.Canvas, cfg.Width, cfg.Height)
	}

	ticker := frame.NewTicker(frame.Interval(cfg.FPS))
	eng := engine.New(ticker, sections,
		engine.WithLogger(logger),
		engine.WithTheme(cfg.ThemeOrDefault()),
		engine.WithSeed(cfg.Seed),
	)
	if _, err := eng.Start(p); err != nil {
		return nil, err
	}

	return &App{
		Engine:    eng,
		Ticker:    ticker,
		Page:      p,
		Sections:  sections,
		Telemetry: make([]float64, 0, maxTelemetry),
		logger:    logger,
	}, nil
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config, sections []scene.Section, logger *log.Logger) error {
	initWindow(cfg)
	defer rl.CloseWindow()

	app, err := NewApp(cfg, sections, logger)
	if err != nil {
		return err
	}
	defer app.Close()
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		if !a.Update() {
			return
		}
		a.Draw()
	}
}

// Close stops the engine and releases the canvas texture.
func (a *App) Close() {
	a.Engine.Stop()
	if a.texW > 0 {
		rl.UnloadTexture(a.tex)
		a.texW, a.texH = 0, 0
	}
}

// Update handles input and steps every session one frame. It returns false
// once the user asked to quit.
func (a *App) Update() bool {
	switch {
	case rl.IsKeyPressed(rl.KeyQ):
		return false
	case rl.IsKeyPressed(rl.KeySpace):
		a.Engine.SetPaused(!a.Engine.Paused())
	case rl.IsKeyPressed(rl.KeyTab), rl.IsKeyPressed(rl.KeyRight):
		a.cycle(1)
	case rl.IsKeyPressed(rl.KeyLeft):
		a.cycle(-1)
	case rl.IsKeyPressed(rl.KeyT):
		a.setTheme(render.NextTheme(a.Engine.Theme().Name))
	}

	if rl.IsWindowResized() {
		a.Page.SetAll(int(rl.GetScreenWidth()), int(rl.GetScreenHeight()))
		a.Engine.Resize()
	}

	a.Ticker.Step()

	if sess, ok := a.Engine.Session(a.current().Name); ok && sess.System() != nil {
		a.Telemetry = append(a.Telemetry, float64(sess.System().Total()))
		if len(a.Telemetry) > maxTelemetry {
			a.Telemetry = a.Telemetry[1:]
		}
	}
	return true
}

func (a *App) current() scene.Section {
	return a.Sections[a.Selected]
}

func (a *App) cycle(dir int) {
	a.Selected = (a.Selected + dir + len(a.Sections)) % len(a.Sections)
	a.Telemetry = a.Telemetry[:0]
}

func (a *App) setTheme(t render.Theme) {
	a.Engine.SetTheme(t)
	for _, id := range a.Page.IDs() {
		if s, ok := a.Page.Lookup(id); ok {
			if img, ok := s.(*render.Image); ok {
				img.Background = t.Palette.Background
			}
		}
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(a.Engine.Theme().Palette.Background))

	if s, ok := a.Page.Lookup(a.current().Canvas); ok {
		if img, ok := s.(*render.Image); ok {
			a.upload(img.Image())
			rl.DrawTexture(a.tex, 0, 0, rl.White)
		}
	}
	a.DrawHUD()

	rl.EndDrawing()
}

// upload copies the canvas into the GPU texture, recreating it on resize.
func (a *App) upload(img image.Image) {
	b := img.Bounds()
	if b.Dx() != a.texW || b.Dy() != a.texH {
		if a.texW > 0 {
			rl.UnloadTexture(a.tex)
		}
		rlImg := rl.NewImageFromImage(img)
		a.tex = rl.LoadTextureFromImage(rlImg)
		rl.UnloadImage(rlImg)
		a.texW, a.texH = b.Dx(), b.Dy()
		return
	}
	rl.UpdateTexture(a.tex, Pixels(img))
}

func (a *App) DrawHUD() {
	w := rl.GetScreenWidth()
	h := rl.GetScreenHeight()
	rl.DrawRectangle(0, 0, int32(w), 64, ColPanel)

	a.drawText("backdrop", 30, 20, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: %s", a.current().Name), 160, 26, 16, ColText)

	status, col := "RUNNING", ColSelect
	if a.Engine.Paused() {
		status, col = "PAUSED", ColTextDim
	}
	a.drawText(status, int(w)-130, 26, 16, col)

	a.DrawTelemetry(30, int(h)-90, 400, 60)

	a.drawText("[SPACE] PAUSE  [TAB] SECTION  [T] THEME  [Q] QUIT", int(w)-520, int(h)-30, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS  %s", rl.GetFPS(), a.Engine.Theme().Name), 30, int(h)-30, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(size), color)
}

// DrawTelemetry plots the entity count history as a line strip.
func (a *App) DrawTelemetry(rectX, rectY, width, height int) {
	if len(a.Telemetry) < 2 {
		return
	}

	accent := toColor(a.Engine.Theme().Palette.Primary)
	points := make([]rl.Vector2, len(a.Telemetry))
	for i, norm := range Normalize(a.Telemetry) {
		px := float32(rectX) + (float32(i)/float32(len(a.Telemetry)))*float32(width)
		py := float32(rectY+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}

	rl.DrawLineStrip(points, accent)
	a.drawText(fmt.Sprintf("N: %.0f", a.Telemetry[len(a.Telemetry)-1]), rectX+width+10, rectY+height-10, 14, ColText)
}

func toColor(c color.NRGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
