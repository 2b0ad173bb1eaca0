package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/omegathunder/internal/audio"
	"chosenoffset.com/omegathunder/internal/config"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the settings file")
	overwrite := flag.Bool("overwrite", false, "replace sound files that already exist")
	flag.Parse()

	fmt.Println("Omega Thunder Sound Exporter")
	fmt.Println("============================")
	fmt.Println()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if cfg.Audio.SoundsDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no sounds_dir configured")
		os.Exit(1)
	}

	written, err := audio.ExportCatalog(cfg.Audio.SoundsDir, cfg.Audio.SampleRate, *overwrite)
	for _, path := range written {
		fmt.Printf("  wrote %s\n", path)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Done! %d sounds exported to %s.\n", len(written), cfg.Audio.SoundsDir)
	fmt.Println("Edit any of them and the game plays your version instead.")
}
