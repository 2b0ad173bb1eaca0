package game

import (
	"log"

	"chosenoffset.com/omegathunder/internal/render"
)

// Draw replays the frame recorded by the last Update and saves a screenshot
// when that frame asked for one.
func (m *Manager) Draw(screen render.Image) {
	m.renderer.DrawFrame(screen, m.frame)

	prefix := m.frame.ScreenshotPrefix
	if prefix == "" {
		return
	}
	// a frame kept across ticks must not be captured twice
	m.frame.ScreenshotPrefix = ""
	path, err := m.shots.Save(prefix, screen.Snapshot())
	if err != nil {
		log.Printf("Warning: failed to save screenshot: %v", err)
		return
	}
	log.Printf("Screenshot saved: %s", path)
}
