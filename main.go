// main.go
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"daysglobe/audio"
	"daysglobe/config"
	"daysglobe/globe"
	"daysglobe/route"
	"daysglobe/sphere"
	"daysglobe/view"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file")
	debugLog := flag.Bool("debug", false, "Write a debug log under the log directory")
	dump := flag.Bool("points", false, "Print the point positions as JSON and exit")
	mute := flag.Bool("mute", false, "Disable the click chime")
	fps := flag.Int("fps", 0, "Frames per second (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *fps > 0 {
		cfg.Display.FPS = *fps
	}
	if *mute {
		cfg.Sound.Enabled = false
	}
	if *debugLog {
		cfg.Log.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid settings: %v\n", err)
		os.Exit(1)
	}

	points := sphere.Distribute(globe.PointCount, globe.GlobeRadius)

	if *dump {
		j, err := json.MarshalIndent(points, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "JSON encoding failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s\n", j)
		return
	}

	if logFile := setupLogging(cfg.Log.Dir, cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
	}

	chime, err := audio.NewChime(cfg.Sound.Enabled, cfg.Sound.Volume)
	if err != nil {
		// Non-fatal, the globe runs without sound
		log.Printf("Audio initialization failed: %v", err)
	}

	if err := runGlobe(cfg, points, chime); err != nil {
		fmt.Fprintf(os.Stderr, "Globe error: %v\n", err)
		os.Exit(1)
	}
}

// app ties the controller, router and scene to one screen.
type app struct {
	screen  tcell.Screen
	ctl     *globe.Controller
	router  *route.Router
	scene   *view.Scene
	pointer *view.Pointer
	chime   *audio.Chime
	layout  view.Layout
}

// clickTarget plays the chime alongside each click.
type clickTarget struct {
	*globe.Controller
	chime *audio.Chime
}

func (c clickTarget) Click(idx int) {
	c.Controller.Click(idx)
	c.chime.Play(idx)
}

func runGlobe(cfg *config.Config, points []sphere.Point, chime *audio.Chime) (err error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}
	defer s.Fini()
	s.EnableMouse(tcell.MouseMotionEvents)

	// Restore the terminal before reporting a crash
	defer func() {
		if r := recover(); r != nil {
			s.Fini()
			err = fmt.Errorf("globe crashed: %v\n%s", r, debug.Stack())
		}
	}()

	router := route.NewRouter(len(points))
	a := &app{
		screen: s,
		ctl:    globe.NewController(len(points), router),
		router: router,
		scene: view.NewScene(points, view.Options{
			AspectRatio: cfg.Display.AspectRatio,
			Charset:     cfg.Display.Charset,
			Labels:      cfg.Display.Labels,
		}),
		pointer: view.NewPointer(),
		chime:   chime,
	}
	defer a.ctl.Close()

	return a.loop(time.Second / time.Duration(cfg.Display.FPS))
}

// loop runs input handlers and frame ticks on one goroutine. Events arrive
// over a channel; the reset timer reaches state only through the controller.
func (a *app) loop(frame time.Duration) error {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(frame)
	defer ticker.Stop()
	start := time.Now()

	for {
		select {
		case ev := <-events:
			if done := a.handle(ev); done {
				return nil
			}
		case <-ticker.C:
			angle := a.ctl.Tick(time.Since(start))
			a.layout = a.scene.Draw(a.screen, view.Frame{
				Angle: angle,
				State: a.ctl.State(),
				Path:  a.router.Current().Path,
			})
			a.screen.Show()
		}
	}
}

func (a *app) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.pointer.Reset(a.ctl)
		a.screen.Sync()
	}
	return false
}

func (a *app) handleKey(ev *tcell.EventKey) bool {
	cam := a.scene.Camera
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		cam.Orbit(0, 0.15)
	case tcell.KeyDown:
		cam.Orbit(0, -0.15)
	case tcell.KeyLeft:
		cam.Orbit(-0.15, 0)
	case tcell.KeyRight:
		cam.Orbit(0.15, 0)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.back()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'r':
			cam.Reset()
		case '+', '=':
			cam.Zoom(0.9)
		case '-', '_':
			cam.Zoom(1.1)
		case 'l':
			log.Printf("labels: %v", a.scene.ToggleLabels())
		case 'b':
			a.back()
		}
	}
	return false
}

func (a *app) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		a.scene.Camera.Zoom(0.9)
		return
	case buttons&tcell.WheelDown != 0:
		a.scene.Camera.Zoom(1.1)
		return
	}

	hit := a.layout.HitTest(x, y)
	dx, dy := a.pointer.Handle(clickTarget{Controller: a.ctl, chime: a.chime}, x, y, hit, buttons&tcell.Button1 != 0)
	if dx != 0 || dy != 0 {
		a.scene.Camera.Orbit(float64(dx)*0.05, float64(dy)*0.1)
	}
}

func (a *app) back() {
	e, err := a.router.Back()
	if errors.Is(err, route.ErrNoHistory) {
		return
	}
	log.Printf("route: back to %s", e.Path)
}
