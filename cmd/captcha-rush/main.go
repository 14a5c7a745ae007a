package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/lixenwraith/captcha-rush/asset"
	"github.com/lixenwraith/captcha-rush/audio"
	"github.com/lixenwraith/captcha-rush/config"
	"github.com/lixenwraith/captcha-rush/constants"
	"github.com/lixenwraith/captcha-rush/core"
	"github.com/lixenwraith/captcha-rush/engine"
	"github.com/lixenwraith/captcha-rush/events"
	"github.com/lixenwraith/captcha-rush/input"
	"github.com/lixenwraith/captcha-rush/render"
)

var (
	configFlag  = flag.String("config", "", "Config file (.toml, .yaml, .yml)")
	variantFlag = flag.String("variant", "", "Game variant: grid (a) or popup (b)")
	debugFlag   = flag.Bool("debug", false, "Debug logging to logs/captcha-rush.log and metrics overlay")
	seedFlag    = flag.Uint64("seed", 0, "Random seed, 0 picks one from the clock")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "captcha-rush: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}
	if *variantFlag != "" {
		cfg.Variant = *variantFlag
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newRNG(seed uint64, clock clockwork.Clock) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(clock.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)), seed
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logFile, err := setupLogging(cfg.Log.File, *debugFlag, cfg.LogLevel())
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	keys, err := input.LoadKeyConfig(cfg.Keys)
	if err != nil {
		return fmt.Errorf("key bindings: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	core.SetCrashTerminal(screen)
	defer core.SetCrashTerminal(nil)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	sound := audio.NewSoundManager(cfg.AudioConfig())
	if err := sound.Initialize(); err != nil {
		log.Warn().Err(err).Msg("continuing without audio")
	}
	defer sound.Cleanup()

	clock := clockwork.NewRealClock()
	rng, seed := newRNG(cfg.Seed, clock)
	g := engine.NewGame(cfg.GameRules(), clock, sound, rng)

	log.Info().
		Stringer("variant", cfg.GameVariant()).
		Uint64("seed", seed).
		Bool("audio", sound.IsInitialized()).
		Msg("starting captcha-rush")

	renderer := render.NewRenderer(screen, asset.MustLoadDefault())
	machine := input.NewMachine(keys)

	statClicks := g.Status.Ints.Get("input.clicks")
	statMuted := g.Status.Bools.Get("audio.muted")
	statPlayed := g.Status.Ints.Get("audio.played")

	eventChan := make(chan tcell.Event, constants.InputBufferSize)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	frameTicker := clock.NewTicker(constants.FrameUpdateInterval)
	defer frameTicker.Stop()

	g.Start()
	showDebug := *debugFlag

	for {
		select {
		case ev := <-eventChan:
			it := machine.Process(ev)
			if it == nil {
				continue
			}
			switch it.Type {
			case input.IntentQuit:
				g.Stop()
				log.Info().Int("score", g.Session.Score()).Msg("quit")
				return nil
			case input.IntentRestart:
				g.Push(events.EventRestart, nil)
			case input.IntentToggleMute:
				sound.ToggleMute()
				statMuted.Store(sound.IsMuted())
			case input.IntentToggleDebug:
				showDebug = !showDebug
			case input.IntentResize:
				screen.Sync()
				renderer.Resize()
			case input.IntentClick:
				statClicks.Add(1)
				if et, payload, ok := clickEvent(renderer.Layout(), it.X, it.Y, g.View()); ok {
					g.Push(et, payload)
				}
			}
			// Resolve input immediately instead of waiting for the next frame
			g.Update()

		case <-frameTicker.Chan():
			g.Update()
		}

		var debugLines []string
		if showDebug {
			statPlayed.Store(int64(sound.Played()))
			debugLines = g.Status.Lines()
		}
		renderer.Draw(g.View(), debugLines)
	}
}
