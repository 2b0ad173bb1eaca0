package ebiten

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"chosenoffset.com/omegathunder/internal/fx"
	"chosenoffset.com/omegathunder/internal/render/scene"
)

const (
	effectCell = 64
	effectSize = effectCell * 4
	fontCell   = 16
	fontSize   = fontCell * 4
)

// sheetStyle is how one procedural effect sheet looks. Progress runs from 0
// on the first frame shown to 1 on the last.
type sheetStyle struct {
	tint   color.RGBA
	ring   bool // hollow shock ring instead of a solid burst
	fade   bool // flat full cell that only fades
	radius float64
}

var sheetStyles = map[scene.Texture]sheetStyle{
	scene.TexLaserBlue:          {tint: color.RGBA{80, 160, 255, 255}, radius: 0.6},
	scene.TexLaserRed:           {tint: color.RGBA{255, 70, 50, 255}, radius: 0.6},
	scene.TexExplosion1:         {tint: color.RGBA{255, 160, 40, 255}, radius: 1},
	scene.TexExplosion2:         {tint: color.RGBA{255, 100, 30, 255}, radius: 1},
	scene.TexExplosion3:         {tint: color.RGBA{255, 210, 90, 255}, radius: 1},
	scene.TexRunCharge:          {tint: color.RGBA{120, 210, 255, 255}, ring: true, radius: 1},
	scene.TexLevelUp:            {tint: color.RGBA{255, 240, 120, 255}, ring: true, radius: 1},
	scene.TexDestructShock:      {tint: color.RGBA{200, 120, 255, 255}, ring: true, radius: 1},
	scene.TexDestructCharge:     {tint: color.RGBA{170, 90, 255, 255}, radius: 0.8},
	scene.TexDestructChargeLoop: {tint: color.RGBA{220, 150, 255, 255}, radius: 0.9},
	scene.TexDestructFlash:      {tint: color.RGBA{255, 255, 255, 255}, radius: 1.4},
	scene.TexFadeWhite:          {tint: color.RGBA{255, 255, 255, 255}, fade: true},
}

// buildSheets generates every texture the frame replay samples.
func buildSheets() [scene.TextureCount]*ebiten.Image {
	var out [scene.TextureCount]*ebiten.Image
	for tex, style := range sheetStyles {
		out[tex] = ebiten.NewImageFromImage(effectSheet(style))
	}
	out[scene.TexFonts] = fontSheet()
	return out
}

// effectSheet draws the 16 frames of an effect into their 4x4 cells. Frames
// are laid out the way fx.FrameUV addresses them.
func effectSheet(s sheetStyle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, effectSize, effectSize))
	last := float64(fx.FrameCount - 1)
	for frame := 0; frame < fx.FrameCount; frame++ {
		u, v := fx.FrameUV(frame)
		x0, y0 := int(u*effectSize), int(v*effectSize)
		progress := (last - float64(frame)) / last
		paintCell(img, x0, y0, s, progress)
	}
	return img
}

func paintCell(img *image.RGBA, x0, y0 int, s sheetStyle, progress float64) {
	const half = effectCell / 2
	for y := 0; y < effectCell; y++ {
		for x := 0; x < effectCell; x++ {
			var a float64
			if s.fade {
				a = 1 - progress
			} else {
				dx, dy := float64(x-half)/half, float64(y-half)/half
				d := math.Hypot(dx, dy)
				r := s.radius * (0.25 + 0.75*progress)
				if s.ring {
					a = 1 - math.Abs(d-r*0.8)*6
				} else {
					a = 1 - d/r
				}
				a *= 1 - 0.8*progress
			}
			if a <= 0 {
				continue
			}
			a = math.Min(a, 1)
			img.SetRGBA(x0+x, y0+y, color.RGBA{
				R: uint8(float64(s.tint.R) * a),
				G: uint8(float64(s.tint.G) * a),
				B: uint8(float64(s.tint.B) * a),
				A: uint8(255 * a),
			})
		}
	}
}

// fontSheet renders the digits into the glyph cells hud.Glyph addresses:
// digit d sits at column d%4, row d/4.
func fontSheet() *ebiten.Image {
	img := ebiten.NewImage(fontSize, fontSize)
	for d := 0; d < 10; d++ {
		x := (d%4)*fontCell + 5
		y := (d / 4) * fontCell
		ebitenutil.DebugPrintAt(img, strconv.Itoa(d), x, y)
	}
	return img
}

// glyphDigit recovers the digit a glyph cell holds.
func glyphDigit(g scene.Glyph) int {
	return int(g.U*4+0.5) + int(g.V*4+0.5)*4
}
