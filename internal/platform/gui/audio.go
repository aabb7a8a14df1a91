package gui

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/vovakirdan/raket/internal/assets"
	"github.com/vovakirdan/raket/internal/game"
)

const sampleRate = 44100

// cues maps simulation events to sound effects.
var cues = map[game.Event]assets.Name{
	game.EventFlap:  assets.FlapSound,
	game.EventScore: assets.ScoreSound,
	game.EventHit:   assets.HitSound,
	game.EventFlyby: assets.FlybySound,
}

// cueFor returns the effect played for e, if any.
func cueFor(e game.Event) (assets.Name, bool) {
	name, ok := cues[e]
	return name, ok
}

// soundBank holds decoded PCM for each effect and the looping music player.
type soundBank struct {
	ctx     *audio.Context
	effects map[assets.Name][]byte
	volume  float64
	music   *audio.Player
}

// loadSounds decodes every sound in bundle.
func loadSounds(bundle assets.Bundle, musicVolume, effectsVolume float64) (*soundBank, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	bank := &soundBank{
		ctx:     ctx,
		effects: make(map[assets.Name][]byte, len(cues)),
		volume:  effectsVolume,
	}

	for _, name := range cues {
		pcm, err := decodePCM(name, bundle[name])
		if err != nil {
			return nil, err
		}
		bank.effects[name] = pcm
	}

	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(bundle[assets.Music]))
	if err != nil {
		return nil, fmt.Errorf("gui: decode %s: %w", assets.Music, err)
	}
	music, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("gui: music player: %w", err)
	}
	music.SetVolume(musicVolume)
	bank.music = music

	return bank, nil
}

// decodePCM decodes a WAV file to 16-bit stereo PCM at sampleRate.
func decodePCM(name assets.Name, data []byte) ([]byte, error) {
	stream, err := wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("gui: decode %s: %w", name, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("gui: read %s: %w", name, err)
	}
	return pcm, nil
}

// startMusic starts the music loop once.
func (b *soundBank) startMusic() {
	if !b.music.IsPlaying() {
		b.music.Play()
	}
}

// play starts the effect for e on a fresh player so effects can overlap.
func (b *soundBank) play(e game.Event) {
	name, ok := cueFor(e)
	if !ok {
		return
	}
	p := b.ctx.NewPlayerFromBytes(b.effects[name])
	p.SetVolume(b.volume)
	p.Play()
}
