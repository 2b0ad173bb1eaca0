package main

import (
	"errors"
	"flag"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"chosenoffset.com/omegathunder/internal/anim"
	"chosenoffset.com/omegathunder/internal/audio"
	"chosenoffset.com/omegathunder/internal/config"
	"chosenoffset.com/omegathunder/internal/game"
	ebitenrender "chosenoffset.com/omegathunder/internal/render/ebiten"
	"chosenoffset.com/omegathunder/internal/screenshot"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the settings file")
	seed := flag.Uint64("seed", 0, "random seed, 0 picks one from the clock")
	mute := flag.Bool("mute", false, "silence all audio")
	flag.Parse()

	log.SetPrefix("[run " + uuid.NewString() + "] ")

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Gameplay.Seed = *seed
	}
	if cfg.Gameplay.Seed == 0 {
		cfg.Gameplay.Seed = uint64(time.Now().UnixNano())
	}
	log.Printf("Seed: %d", cfg.Gameplay.Seed)

	// Initialize audio: synthesized sounds unless the sounds dir overrides them
	sound, err := audio.NewEngine(audio.Options{
		SampleRate: cfg.Audio.SampleRate,
		SFXVolume:  cfg.Audio.SFXVolume,
		BGMVolume:  cfg.Audio.BGMVolume,
		SoundsDir:  cfg.Audio.SoundsDir,
		Muted:      cfg.Audio.Muted || *mute,
	})
	if err != nil {
		log.Fatalf("Failed to initialize audio: %v", err)
	}
	out, err := audio.NewOutput(sound)
	if err != nil {
		log.Fatalf("Failed to open audio output: %v", err)
	}
	defer out.Close()

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputSrc := ebitenrender.NewInputSource()
	engine := ebitenrender.NewEngine()

	gameManager := game.NewManager(game.Options{
		Renderer:    renderer,
		Input:       inputSrc,
		Audio:       sound,
		Anim:        anim.NewRig(),
		Rand:        rand.New(rand.NewPCG(cfg.Gameplay.Seed, cfg.Gameplay.Seed>>1|1)),
		Screenshots: screenshot.NewWriter(cfg.Screenshots.Dir),
		Config:      cfg,
	})

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)

	log.Println("Starting game...")
	if err := engine.RunGame(gameManager); err != nil && !errors.Is(err, game.ErrQuit) {
		log.Fatalf("Game loop failed: %v", err)
	}
	log.Println("Goodbye")
}
