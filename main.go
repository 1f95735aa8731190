package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"time"

	"net/http"
	_ "net/http/pprof"

	_ "github.com/silbinarywolf/preferdiscretegpu"

	eb "github.com/hajimehoshi/ebiten/v2"
)

var (
	ScreenWidth  float64 = 800
	ScreenHeight float64 = 600
)

var ErrorLogger *log.Logger = log.New(os.Stderr, "ERROR: ", log.Lshortfile)
var InfoLogger *log.Logger = log.New(os.Stdout, "INFO: ", log.Lshortfile)

var (
	FlagHotReload bool
	FlagPProf     bool
	FlagSoftware  bool
	FlagMode      string
)

var ScreenshotEnabled bool

func init() {
	flag.BoolVar(&FlagHotReload, "hot", false, "reload the background shader from disk on F5")
	flag.BoolVar(&FlagPProf, "pprof", false, "enable pprof")
	flag.BoolVar(&FlagSoftware, "software", false, "evaluate the background on the cpu")
	flag.StringVar(&FlagMode, "mode", "nebula", "initial background mode (flat, nebula, plasma)")
}

func ParseBackgroundMode(str string) (BackgroundMode, error) {
	switch str {
	case "flat":
		return BackgroundModeFlat, nil
	case "nebula":
		return BackgroundModeNebula, nil
	case "plasma":
		return BackgroundModePlasma, nil
	default:
		return 0, fmt.Errorf("unknown background mode %q", str)
	}
}

type App struct {
	ShowDebugConsole bool

	Background *Background
	Scene      *Scene

	frameTimes CircularQueue[time.Duration]
	lastFrame  time.Time

	screenshotQueued bool
}

func NewApp() *App {
	a := new(App)
	a.Background = NewBackground()
	a.Scene = NewScene()
	a.frameTimes = NewCircularQueue[time.Duration](60)
	a.lastFrame = time.Now()
	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	// ==========================
	// frame time history
	// ==========================
	now := time.Now()
	a.frameTimes.Enqueue(now.Sub(a.lastFrame))
	a.lastFrame = now

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update windows title
	// ==========================
	eb.SetWindowTitle("Nebula FPS: " + fpsStr + " TPS: " + tpsStr)

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)
	DebugPrint("frame avg", a.averageFrameTime().String())
	DebugPrint("mode", a.Background.Mode.String())
	DebugPrint("palette", a.Background.Palette().Name)
	DebugPrint("paused", IsTimerPaused())
	DebugPrint("antialias", IsAntiAliasOn())

	// ==========================
	// asset loading
	// ==========================
	if IsKeyJustPressed(ReloadAssetsKey) {
		LoadAssets()
	}

	// ==========================
	// debug showing
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	// ==========================
	// effect controls
	// ==========================
	if IsKeyJustPressed(CycleBackgroundModeKey) {
		a.Background.CycleMode()
	}

	if HandleKeyRepeat(time.Millisecond*350, time.Millisecond*150, CyclePaletteKey) {
		a.Background.CyclePalette()
	}

	if IsKeyJustPressed(PauseTimeKey) {
		SetTimerPaused(!IsTimerPaused())
	}

	if IsKeyJustPressed(ToggleAntiAliasKey) {
		SetAntiAlias(!IsAntiAliasOn())
	}

	if IsKeyJustPressed(CopyPixelColorKey) ||
		IsMouseButtonJustPressed(eb.MouseButtonRight) {
		a.copyCursorColor()
	}

	if ScreenshotEnabled && IsKeyJustPressed(ScreenshotKey) {
		a.screenshotQueued = true
	}

	if err := a.Scene.Update(); err != nil {
		return err
	}

	return nil
}

// copyCursorColor puts the kernel color under the cursor on the
// clipboard as a hex string.
func (a *App) copyCursorColor() {
	cursor := CursorFPt()

	uv := FPt(
		Clamp(cursor.X/ScreenWidth, 0, 1),
		Clamp(cursor.Y/ScreenHeight, 0, 1),
	)

	c := a.Background.ColorAt(uv, GlobalTimerSeconds())

	clr := color.NRGBA{
		uint8(c[0]*255 + 0.5),
		uint8(c[1]*255 + 0.5),
		uint8(c[2]*255 + 0.5),
		uint8(c[3]*255 + 0.5),
	}

	hex := ColorToString(clr)
	ClipboardWriteText(hex)
	InfoLogger.Printf("copied %s", hex)
}

func (a *App) averageFrameTime() time.Duration {
	if a.frameTimes.IsEmpty() {
		return 0
	}

	var total time.Duration
	for i := 0; i < a.frameTimes.Length; i++ {
		total += a.frameTimes.At(i)
	}

	return total / time.Duration(a.frameTimes.Length)
}

func (a *App) Draw(dst *eb.Image) {
	a.Background.Draw(dst)
	a.Scene.Draw(dst)

	if a.screenshotQueued {
		a.screenshotQueued = false

		if filename, err := TakeScreenshot(dst); err == nil {
			InfoLogger.Printf("saved %s", filename)
		} else {
			ErrorLogger.Printf("failed to take screenshot : %v", err)
		}
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	if FlagPProf {
		go func() {
			InfoLogger.Print("initializing pprof")
			InfoLogger.Print(http.ListenAndServe("localhost:6060", nil))
		}()
	}

	InitClipboardManager()

	LoadAssets()

	app := NewApp()

	app.Background.Software = FlagSoftware

	if mode, err := ParseBackgroundMode(FlagMode); err == nil {
		app.Background.Mode = mode
	} else {
		ErrorLogger.Fatalf("%v", err)
	}

	eb.SetVsyncEnabled(true)
	eb.SetWindowSize(int(ScreenWidth), int(ScreenHeight))
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowTitle("Nebula")

	if err := eb.RunGame(app); err != nil {
		panic(err)
	}
}
