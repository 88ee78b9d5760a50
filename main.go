package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"fortio.org/log"
	"fortio.org/terminal/ansipixels"

	"github.com/geofpwhite/asciiray/internal/config"
	"github.com/geofpwhite/asciiray/internal/scene"
	"github.com/geofpwhite/asciiray/internal/tracer"
)

const statusKeys = "  [s]phere [b]ox [space] next [q]uit"

// animation is the state carried between ticks.
type animation struct {
	cfg      config.Config
	renderer tracer.Renderer
	scene    scene.Scene
	frame    int
}

func (a *animation) angle() float64 { return float64(a.frame) * a.cfg.Step }

func (a *animation) render(cols, rows int) tracer.Frame {
	return a.scene.Render(a.renderer, cols, rows, a.angle())
}

// handleKeys applies the pending input and reports false on quit.
func (a *animation) handleKeys(data []byte) bool {
	for _, c := range data {
		switch c {
		case 'q', 'Q', 3: // 3 is ^C in raw mode
			return false
		case 's', 'S':
			a.selectSolid(scene.Sphere)
		case 'b', 'B':
			a.selectSolid(scene.Box)
		case ' ', '\t':
			a.selectSolid(a.scene.Selected.Next())
		}
	}
	return true
}

func (a *animation) selectSolid(sel scene.Selection) {
	if a.scene.Selected != sel {
		log.Debugf("Switching to %v at frame %d", sel, a.frame)
	}
	a.scene.Selected = sel
}

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	onceFlag := flag.Bool("once", false, "print a single frame to stdout and exit")
	frameFlag := flag.Int("frame", 0, "starting frame number (sets the rotation)")
	colsFlag := flag.Int("cols", 80, "columns for -once and -gif output")
	rowsFlag := flag.Int("rows", 24, "rows for -once and -gif output")
	gifFlag := flag.String("gif", "", "write an animated GIF to this path instead of animating the terminal")
	framesFlag := flag.Int("frames", 100, "number of frames for -gif")
	flag.Parse()
	if err := cfg.ApplyEnv(); err != nil {
		log.Fatalf("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}
	a := &animation{cfg: cfg, renderer: cfg.Renderer(), scene: cfg.Scene(), frame: *frameFlag}
	log.LogVf("Config: %+v", cfg)
	switch {
	case *gifFlag != "":
		frames := a.renderFrames(*colsFlag, *rowsFlag, *framesFlag)
		if err := exportToGif(*gifFlag, frames, cfg.FPS); err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		log.Infof("Wrote %d frames of %dx%d to %s", len(frames), *colsFlag, *rowsFlag, *gifFlag)
	case *onceFlag:
		fmt.Println(a.render(*colsFlag, *rowsFlag))
	default:
		if err := a.run(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

// renderFrames renders n consecutive frames starting at the current one.
func (a *animation) renderFrames(cols, rows, n int) []tracer.Frame {
	frames := make([]tracer.Frame, 0, max(n, 0))
	for range n {
		frames = append(frames, a.render(cols, rows))
		a.frame++
	}
	return frames
}

// run animates in the terminal until q is pressed. The bottom line is kept
// for the status bar.
func (a *animation) run() error {
	ap := ansipixels.NewAnsiPixels(a.cfg.FPS)
	if err := ap.Open(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	ap.HideCursor()
	defer func() {
		ap.ShowCursor()
		ap.ClearScreen()
		ap.Restore()
	}()
	ap.ClearScreen()
	ap.OnResize = func() error {
		log.Debugf("Resized to %dx%d", ap.W, ap.H)
		ap.ClearScreen()
		return nil
	}
	return ap.FPSTicks(
		context.Background(),
		func(context.Context) bool {
			if !a.handleKeys(ap.Data) {
				return false
			}
			f := a.render(ap.W, ap.H-1)
			if err := draw(ap, f, a.status()); err != nil {
				log.Errf("Draw failed: %v", err)
				return false
			}
			a.frame++
			return true
		},
	)
}

func (a *animation) status() string {
	return fmt.Sprintf("%-6s frame %-6d%s", a.scene.Selected, a.frame, statusKeys)
}

// draw publishes a whole frame plus the status line in one synchronized
// update.
func draw(ap *ansipixels.AnsiPixels, f tracer.Frame, status string) error {
	ap.StartSyncMode()
	for j := range f.Rows {
		ap.MoveCursor(0, j)
		if _, err := ap.Out.WriteString(f.Row(j)); err != nil {
			return err
		}
	}
	ap.MoveCursor(0, ap.H-1)
	if len(status) > ap.W {
		status = status[:max(ap.W, 0)]
	}
	if _, err := ap.Out.WriteString(status); err != nil {
		return err
	}
	ap.EndSyncMode()
	return ap.Out.Flush()
}
