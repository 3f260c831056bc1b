package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/aether-drift/engine"
	"github.com/lixenwraith/aether-drift/render"
	"github.com/lixenwraith/aether-drift/sound"
)

// World units per terminal cell. Rows count double to compensate the
// roughly 1:2 cell aspect so forces feel isotropic on screen
const (
	cellUnitsX = 10.0
	cellUnitsY = 20.0

	// Ticks of quiet after the last resize event before the universe
	// regenerates at the new extents
	resizeSettleTicks = 12
)

var (
	seedFlag = flag.String("seed", "", "Universe seed (empty picks a random one)")
	fpsFlag  = flag.Int("fps", 30, "Simulation and render rate")
	muteFlag = flag.Bool("mute", false, "Disable audio cues")
	logFlag  = flag.String("log", "aether.log", "Log file path (empty disables)")
)

func main() {
	// Ensure the terminal is restored even on a crash, with the trace
	// printed after reset so it stays readable
	var screen tcell.Screen
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\naether-drift crashed: %v\n", r)
			fmt.Fprintf(os.Stderr, "stack trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logger := log.New(os.Stderr)
	if *logFlag != "" {
		if f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			logger = log.New(f)
			defer f.Close()
		}
	} else {
		logger.SetLevel(log.FatalLevel + 1)
	}

	seed := strings.TrimSpace(*seedFlag)
	if seed == "" {
		// The only wall-clock read that feeds the simulation; from here
		// on the seed alone determines everything
		seed = fmt.Sprintf("AETHER-%08X", uint32(time.Now().UnixNano()))
	}

	var err error
	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.Clear()

	var audio *sound.Player
	if !*muteFlag {
		var aerr error
		if audio, aerr = sound.New(); aerr != nil {
			logger.Warn("audio unavailable, continuing silent", "err", aerr)
		}
	}
	defer audio.Close()

	cols, rows := screen.Size()
	worldW := float64(cols) * cellUnitsX
	worldH := float64(rows) * cellUnitsY

	u := engine.New(seed, worldW, worldH)
	scene := render.NewScene(cols, rows, worldW, worldH)
	scene.Configure(u)
	logger.Info("universe born",
		"seed", seed,
		"blueprint", u.Profile.Blueprint.String(),
		"mutators", len(u.Profile.Mutators),
		"anomaly", u.Profile.Anomaly.String())

	fps := *fpsFlag
	if fps < 1 || fps > 240 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	frame := engine.Frame{PointerX: worldW / 2, PointerY: worldH / 2}
	resizeCountdown := 0
	wasCataclysm := false
	prevPrimary, prevSecondary := false, false

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
					return
				case ev.Key() == tcell.KeyRune && ev.Rune() == 'n':
					seed = u.NextSeed()
					u.Regenerate(seed)
					scene.Configure(u)
					audio.UniverseBorn()
					logger.Info("universe born", "seed", seed, "blueprint", u.Profile.Blueprint.String())
				}
			case *tcell.EventMouse:
				mx, my := ev.Position()
				frame.PointerX = (float64(mx) + 0.5) * cellUnitsX
				frame.PointerY = (float64(my) + 0.5) * cellUnitsY
				frame.PrimaryDown = ev.Buttons()&tcell.Button1 != 0
				frame.SecondaryDown = ev.Buttons()&tcell.Button2 != 0
			case *tcell.EventResize:
				resizeCountdown = resizeSettleTicks
			}

		case <-ticker.C:
			if resizeCountdown > 0 {
				resizeCountdown--
				if resizeCountdown == 0 {
					cols, rows = screen.Size()
					worldW = float64(cols) * cellUnitsX
					worldH = float64(rows) * cellUnitsY
					u.Resize(worldW, worldH)
					u.Regenerate(seed)
					scene.Resize(cols, rows, worldW, worldH)
					scene.Configure(u)
					screen.Sync()
					logger.Info("resized", "cols", cols, "rows", rows)
				}
			}

			u.Step(frame)

			// Edge-detect state changes for audio cues
			if released := (prevPrimary && !frame.PrimaryDown) ||
				(prevSecondary && !frame.SecondaryDown); released {
				audio.PowerFired()
			}
			prevPrimary, prevSecondary = frame.PrimaryDown, frame.SecondaryDown

			if active := u.CataclysmActive(); active != wasCataclysm {
				if active {
					audio.CataclysmStarted()
					logger.Info("cataclysm", "kind", u.Profile.Cataclysm.String(), "tick", u.Tick)
				} else {
					// The universe regenerated itself with a fresh seed
					seed = u.Profile.Seed
					scene.Configure(u)
					audio.UniverseBorn()
					logger.Info("universe born", "seed", seed, "blueprint", u.Profile.Blueprint.String())
				}
				wasCataclysm = active
			}

			scene.Frame(u, screen)
			drawStatus(screen, cols, rows, seed)
		}
	}
}

// drawStatus writes the seed in the bottom-left corner so a universe
// worth keeping can be shared
func drawStatus(s tcell.Screen, cols, rows int, seed string) {
	style := tcell.StyleDefault.
		Foreground(tcell.ColorGray).
		Background(tcell.ColorBlack)
	text := " " + seed + " "
	for i, r := range text {
		if i >= cols {
			break
		}
		s.SetContent(i, rows-1, r, nil, style)
	}
	s.Show()
}
