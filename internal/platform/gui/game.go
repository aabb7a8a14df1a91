// Package gui provides the Ebitengine window front-end for raket.
package gui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/raket/internal/assets"
	"github.com/vovakirdan/raket/internal/game"
)

// WindowTitle is shown in the title bar.
const WindowTitle = "Raket"

// Options configures the window front-end.
type Options struct {
	Scale         float64 // Window size relative to the 1080x720 world
	FPS           int     // Ticks per second; the simulation step is 1/FPS
	Seed          int64   // 0 = time based
	ShowHitboxes  bool
	Mute          bool
	MusicVolume   float64
	EffectsVolume float64

	// Assets resolves sprites, font and sounds. Nil selects built-in shapes
	// and the bundled arcade font, with no audio.
	Assets assets.Resolver

	Logger *log.Logger
}

// Game implements ebiten.Game around a World.
type Game struct {
	world  *game.World
	dt     float64
	art    *artwork
	sounds *soundBank // Nil when muted or running without assets
	logger *log.Logger
	cursor cursorState
}

// NewGame loads every asset up front. Any asset failure is returned, since a
// half-loaded window is worse than none.
func NewGame(opts Options) (*Game, error) {
	if opts.FPS <= 0 {
		opts.FPS = ebiten.DefaultTPS
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		world:  game.NewWorld(opts.Seed),
		dt:     1 / float64(opts.FPS),
		logger: logger,
	}
	g.world.SetShowHitboxes(opts.ShowHitboxes)

	if opts.Assets == nil {
		art, err := builtinArtwork()
		if err != nil {
			return nil, err
		}
		g.art = art
		logger.Info("no asset root configured, using built-in shapes")
		return g, nil
	}

	bundle, err := assets.LoadAll(opts.Assets)
	if err != nil {
		return nil, fmt.Errorf("gui: load assets: %w", err)
	}

	g.art, err = loadArtwork(bundle)
	if err != nil {
		return nil, err
	}

	if !opts.Mute {
		g.sounds, err = loadSounds(bundle, opts.MusicVolume, opts.EffectsVolume)
		if err != nil {
			return nil, err
		}
	}

	logger.Info("assets loaded", "count", len(bundle), "audio", g.sounds != nil)
	return g, nil
}

// Update polls input and advances the world by one fixed step.
func (g *Game) Update() error {
	if g.sounds != nil {
		g.sounds.startMusic()
	}

	in := g.pollInput()
	res := g.world.Step(in, g.dt)

	for _, e := range res.Events {
		g.logger.Debug("cue", "event", e, "score", res.State.Score, "deaths", res.State.Deaths)
		if g.sounds != nil {
			g.sounds.play(e)
		}
	}

	if res.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the world read-only.
func (g *Game) Draw(screen *ebiten.Image) {
	g.drawWorld(screen)
}

// Layout keeps the logical screen at world size; the window scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	return game.WorldWidth, game.WorldHeight
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g, err := NewGame(opts)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(game.WorldWidth*scale), int(game.WorldHeight*scale))
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	if opts.FPS > 0 {
		ebiten.SetTPS(opts.FPS)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("gui: %w", err)
	}
	return nil
}
