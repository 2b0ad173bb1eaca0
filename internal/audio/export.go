package audio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// ExportCatalog writes every synthesized sound to dir as 16-bit <Name>.wav,
// the files NewEngine picks up as overrides. Existing files are skipped
// unless overwrite is set. It returns the paths it wrote.
func ExportCatalog(dir string, sampleRate int, overwrite bool) ([]string, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", sampleRate)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create sounds dir: %w", err)
	}

	format := beep.Format{SampleRate: beep.SampleRate(sampleRate), NumChannels: 2, Precision: 2}
	var written []string
	for i := range catalog {
		id := SoundID(i)
		path := filepath.Join(dir, catalog[id].Name+".wav")
		if !overwrite {
			if _, err := os.Stat(path); err == nil {
				continue
			}
		}
		if err := exportSound(path, id, format); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func exportSound(path string, id SoundID, format beep.Format) error {
	buf := synthesize(id, catalog[id], format)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := wav.Encode(f, buf.Streamer(0, buf.Len()), format); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
