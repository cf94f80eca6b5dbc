package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flightpath/animation"
	"github.com/lixenwraith/flightpath/audio"
	"github.com/lixenwraith/flightpath/config"
	"github.com/lixenwraith/flightpath/plot"
	"github.com/lixenwraith/flightpath/trajectory"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file (built-in scenario when empty)")
	debugFlag  = flag.Bool("debug", false, "Write per-frame diagnostics to logs/flightpath.log")
)

// Viewer owns the screen and plays one trajectory on it
type Viewer struct {
	screen   tcell.Screen
	driver   *animation.Driver
	renderer *plot.Renderer
	vario    *audio.Vario
	crashed  chan crashReport
}

// crashReport carries a panic out of the event goroutine with the stack where it happened
type crashReport struct {
	value any
	stack []byte
}

// NewViewer wires a renderer and driver to an initialized screen. vario may be nil.
func NewViewer(screen tcell.Screen, tr *trajectory.Trajectory, opts plot.Options, vario *audio.Vario) *Viewer {
	return &Viewer{
		screen:   screen,
		driver:   animation.NewDriver(tr),
		renderer: plot.NewRenderer(screen, tr, opts),
		vario:    vario,
		crashed:  make(chan crashReport, 1),
	}
}

func main() {
	flag.Parse()

	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
			os.Exit(1)
		}
	}

	tr, err := trajectory.Generate(cfg.Flight.Params())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate trajectory: %v\n", err)
		os.Exit(1)
	}

	logFile := setupLogging(*debugFlag || cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}
	log.Printf("Generated %d samples: %+v", tr.Len(), tr.Params)

	screen, err := tcell.NewScreen()
	if err != nil {
		fail(logFile, "Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		fail(logFile, "Failed to initialize screen: %v", err)
	}

	// Panic Recovery: restore the terminal before reporting
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			if c, ok := r.(crashReport); ok {
				r, stack = c.value, c.stack
			}
			screen.Fini()
			log.Printf("Crashed: %v\n%s", r, stack)
			if logFile != nil {
				logFile.Close()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mFLIGHTPATH CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", stack)
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()

	var vario *audio.Vario
	if cfg.Audio.Enable {
		bounds := tr.Bounds()
		vario = audio.NewVario(audio.Config{
			MinHz:  cfg.Audio.MinHz,
			MaxHz:  cfg.Audio.MaxHz,
			Volume: cfg.Audio.Volume,
			Tone:   time.Duration(cfg.Audio.ToneMs) * time.Millisecond,
			Floor:  bounds.Floor,
			Ceil:   bounds.Ceiling,
		})
		if err := vario.Initialize(); err != nil {
			// Non-fatal, the plot runs silent
			log.Printf("Audio initialization failed: %v", err)
		}
		defer vario.Cleanup()
	}

	opts := plot.Options{Title: cfg.Display.Title, Status: cfg.Display.Status}
	NewViewer(screen, tr, opts, vario).Run()
}

// fail closes the log, reports to stderr and exits 1
func fail(logFile *os.File, format string, args ...any) {
	log.Printf(format, args...)
	if logFile != nil {
		logFile.Close()
	}
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// Run draws the idle plot, then advances one frame per tick until the user quits.
// After the last frame the ticker stops and the final plot stays up.
func (v *Viewer) Run() {
	v.renderer.Draw(v.driver)

	ticker := time.NewTicker(v.driver.Interval())
	defer ticker.Stop()
	tick := ticker.C

	eventChan := make(chan tcell.Event, 16)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				v.crashed <- crashReport{value: r, stack: debug.Stack()}
			}
		}()
		for {
			ev := v.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case c := <-v.crashed:
			// Re-raised on the main goroutine so main's recovery restores the terminal
			panic(c)

		case ev := <-eventChan:
			if !v.handleInput(ev) {
				return
			}

		case <-tick:
			if !v.tick() {
				ticker.Stop()
				tick = nil
			}
		}
	}
}

// tick advances and draws one frame. Returns false once the run is done.
func (v *Viewer) tick() bool {
	frame, ok := v.driver.Advance()
	if !ok {
		log.Printf("Animation done after %d frames", v.driver.Total())
		v.renderer.Draw(v.driver)
		return false
	}

	log.Printf("Updating frame: %d", frame.Index)
	if v.vario != nil {
		v.vario.Play(frame.Marker.Z)
	}
	v.renderer.Draw(v.driver)
	return true
}

func (v *Viewer) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuitKey(ev.Key(), ev.Rune()) {
			return false
		}

	case *tcell.EventResize:
		v.screen.Sync()
		v.renderer.Resize()
		v.renderer.Draw(v.driver)
	}
	return true
}

func isQuitKey(key tcell.Key, ch rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ch == 'q' || ch == 'Q'
	}
	return false
}
