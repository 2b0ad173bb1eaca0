package ebiten

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/omegathunder/internal/entity"
	"chosenoffset.com/omegathunder/internal/render/lighting"
	"chosenoffset.com/omegathunder/internal/render/scene"
	"chosenoffset.com/omegathunder/internal/vmath"
)

// Flat colors of the stand-in meshes.
var (
	colGround    = color.RGBA{40, 44, 52, 255}
	colLane      = color.RGBA{120, 130, 150, 255}
	colRaiu      = color.RGBA{70, 140, 255, 255}
	colRaiuHead  = color.RGBA{220, 230, 255, 255}
	colSwing1    = color.RGBA{160, 240, 255, 255}
	colSwing2    = color.RGBA{255, 255, 160, 255}
	colHoshu     = color.RGBA{200, 60, 70, 255}
	colTurret    = color.RGBA{240, 200, 200, 255}
	colLaserBlue = color.RGBA{80, 180, 255, 255}
	colLaserRed  = color.RGBA{255, 60, 40, 255}
	colFence     = color.RGBA{60, 255, 140, 255}
	colText      = color.RGBA{255, 255, 255, 255}
	colHPBar     = color.RGBA{60, 220, 90, 255}
	colHPLow     = color.RGBA{230, 40, 40, 255}
	colSelection = color.RGBA{70, 90, 200, 255}
)

// structureLooks sizes the four structure meshes: width, height and color.
var structureLooks = map[scene.Mesh]struct {
	width, height float32
	col           color.RGBA
}{
	scene.MeshStructure1: {30, 90, color.RGBA{110, 110, 130, 255}},
	scene.MeshStructure2: {20, 70, color.RGBA{150, 120, 90, 255}},
	scene.MeshStructure3: {45, 140, color.RGBA{90, 110, 120, 255}},
	scene.MeshStructure4: {25, 60, color.RGBA{130, 90, 120, 255}},
}

const (
	laserLength = 8
	maxLabels   = 64
	groundStep  = 200
)

// projector maps world points to screen pixels.
type projector struct {
	vp    mgl32.Mat4
	eye   mgl32.Vec3
	far   float32
	focal float32 // pixels per world unit at depth 1
	w, h  float32
}

func newProjector(c scene.Camera, width, height int) (projector, bool) {
	if c.FOV <= 0 || width <= 0 || height <= 0 {
		return projector{}, false
	}
	fovy := mgl32.DegToRad(c.FOV)
	proj := mgl32.Perspective(fovy, float32(width)/float32(height), c.Near, c.Far)
	return projector{
		vp:    proj.Mul4(c.View),
		eye:   c.Eye,
		far:   c.Far,
		focal: float32(height) / 2 / float32(math.Tan(float64(fovy)/2)),
		w:     float32(width),
		h:     float32(height),
	}, true
}

// project returns the pixel position and view depth of v. Points behind the
// camera are rejected. The world is left handed while mgl32 builds right
// handed views, so x is mirrored.
func (p projector) project(v mgl32.Vec3) (x, y, depth float32, ok bool) {
	c := p.vp.Mul4x1(v.Vec4(1))
	if c.W() <= 0.01 {
		return 0, 0, 0, false
	}
	return (1 - c.X()/c.W()) / 2 * p.w, (1 - c.Y()/c.W()) / 2 * p.h, c.W(), true
}

// size converts a world length at depth into pixels.
func (p projector) size(units, depth float32) float32 {
	return units * p.focal / depth
}

// yawDir is the unit vector a model yaw turns +z onto.
func yawDir(deg float32) mgl32.Vec3 {
	r := float64(mgl32.DegToRad(deg))
	return mgl32.Vec3{float32(math.Sin(r)), 0, float32(math.Cos(r))}
}

// painter replays one frame.
type painter struct {
	r       *EbitenRenderer
	dst     *ebiten.Image
	proj    projector
	ambient scene.Color
	lights  []lighting.LightSource
}

func toRGBA(c scene.Color) color.RGBA {
	return color.RGBA{channel(255, c.R), channel(255, c.G), channel(255, c.B), channel(255, c.A)}
}

func channel(c uint8, f float32) uint8 {
	v := float32(c) * f
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

func (p *painter) paint(f *scene.Frame) {
	p.dst.Fill(toRGBA(f.Clear))
	if f.Loading {
		b := p.dst.Bounds()
		p.label("LOADING...", float32(b.Dx())/2, float32(b.Dy())/2, 3, true)
		return
	}

	b := p.dst.Bounds()
	proj, ok := newProjector(f.Camera, b.Dx(), b.Dy())
	p.proj = proj
	p.ambient = f.Ambient
	p.lights = f.Lights
	if ok {
		p.world(f.Models)
	}
	if f.Summary != nil {
		p.summary(f.Summary)
	}
	if ok {
		p.billboards(f.Billboards)
	}
	if f.HUD != nil {
		p.hud(f.HUD)
	}
	if f.Menu != nil {
		p.menu(f.Menu)
	}
}

// shade lights a base color at pos with the frame's ambient and point lights.
func (p *painter) shade(base color.RGBA, tint scene.Color, pos mgl32.Vec3) color.RGBA {
	lr, lg, lb := p.ambient.R, p.ambient.G, p.ambient.B
	for _, l := range p.lights {
		d := l.Position.Sub(pos).Len()
		if !l.Enabled || d > l.Range {
			continue
		}
		a := l.Attenuation
		k := a.Constant + a.Linear*d + a.Quadratic*d*d
		f := float32(1)
		if k > 1 {
			f = 1 / k
		}
		lr += l.Color.R * f
		lg += l.Color.G * f
		lb += l.Color.B * f
	}
	if tint.A == 0 {
		tint = scene.Color{R: 1, G: 1, B: 1, A: 1}
	}
	return color.RGBA{
		R: channel(base.R, tint.R*lr),
		G: channel(base.G, tint.G*lg),
		B: channel(base.B, tint.B*lb),
		A: base.A,
	}
}

func (p *painter) world(models []scene.Model) {
	type drawable struct {
		depth float32
		m     *scene.Model
	}
	for i := range models {
		if models[i].Mesh == scene.MeshSkydome {
			p.horizon()
		}
	}
	var queue []drawable
	for i := range models {
		m := &models[i]
		switch m.Mesh {
		case scene.MeshSkydome:
		case scene.MeshGround:
			p.ground(m.Position.Z())
		default:
			if _, _, d, ok := p.proj.project(m.Position); ok {
				queue = append(queue, drawable{d, m})
			}
		}
	}
	slices.SortFunc(queue, func(a, b drawable) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		default:
			return 0
		}
	})
	for _, d := range queue {
		p.model(d.m)
	}
}

func (p *painter) model(m *scene.Model) {
	switch m.Mesh {
	case scene.MeshRaiu:
		p.raiu(m)
	case scene.MeshHoshu:
		p.hoshu(m)
	case scene.MeshLaserBlue:
		p.laser(m, colLaserBlue)
	case scene.MeshLaserRed:
		p.laser(m, colLaserRed)
	case scene.MeshFence:
		p.fence(m)
	case scene.MeshStructure1, scene.MeshStructure2, scene.MeshStructure3, scene.MeshStructure4:
		p.structure(m)
	}
}

// horizon fills everything below the far ground line.
func (p *painter) horizon() {
	far := mgl32.Vec3{p.proj.eye.X(), 0, p.proj.eye.Z() + p.proj.far*0.95}
	_, y, _, ok := p.proj.project(far)
	if !ok || y >= p.proj.h {
		return
	}
	y = max(y, 0)
	vector.DrawFilledRect(p.dst, 0, y, p.proj.w, p.proj.h-y, p.shade(colGround, scene.Color{}, far), false)
}

// ground draws the lane edges and cross lines of one tile starting at z0.
func (p *painter) ground(z0 float32) {
	near := max(z0, p.proj.eye.Z()+1)
	far := min(z0+entity.MaxGroundLength, p.proj.eye.Z()+p.proj.far)
	if near >= far {
		return
	}
	col := p.shade(colLane, scene.Color{}, mgl32.Vec3{0, 0, near})
	for _, x := range []float32{-entity.BoundaryX, entity.BoundaryX} {
		p.line(mgl32.Vec3{x, 0, near}, mgl32.Vec3{x, 0, far}, 0.6, col)
	}
	first := z0 + float32(math.Ceil(float64((near-z0)/groundStep)))*groundStep
	for z := first; z < far; z += groundStep {
		p.line(mgl32.Vec3{-entity.BoundaryX, 0, z}, mgl32.Vec3{entity.BoundaryX, 0, z}, 0.4, col)
	}
}

// line strokes a world segment with a world-space width.
func (p *painter) line(a, b mgl32.Vec3, width float32, col color.Color) {
	x0, y0, d0, ok0 := p.proj.project(a)
	x1, y1, d1, ok1 := p.proj.project(b)
	if !ok0 || !ok1 {
		return
	}
	w := max(p.proj.size(width, min(d0, d1)), 1)
	vector.StrokeLine(p.dst, x0, y0, x1, y1, w, col, true)
}

func (p *painter) disc(center mgl32.Vec3, radius float32, col color.Color) (x, y, r float32, ok bool) {
	x, y, d, ok := p.proj.project(center)
	if !ok {
		return 0, 0, 0, false
	}
	r = p.proj.size(radius, d)
	vector.DrawFilledCircle(p.dst, x, y, r, col, true)
	return x, y, r, true
}

func (p *painter) raiu(m *scene.Model) {
	bob := float32(0)
	if m.Pose != nil {
		bob = float32(math.Sin(float64(m.Pose.Phase)*2*math.Pi)) * 0.3
	}
	body := m.Position.Add(mgl32.Vec3{0, entity.RaiuCenterY + bob, 0})
	col := p.shade(colRaiu, m.Tint, body)
	x, y, r, ok := p.disc(body, entity.RaiuRadius, col)
	if !ok {
		return
	}
	p.disc(body.Add(mgl32.Vec3{0, 3.5, 0}), 1.5, p.shade(colRaiuHead, m.Tint, body))

	dir := yawDir(m.Yaw)
	if m.Pose != nil {
		// the aim blend swings the gun arm across the turret arc
		dir = vmath.RotateY(dir, (m.Pose.AimX-0.5)*20)
	}
	p.line(body, body.Add(dir.Mul(6)), 0.5, col)

	if m.Pose != nil && m.Pose.Swing > 0 {
		sc := colSwing1
		if m.Pose.SwingType > 0 {
			sc = colSwing2
		}
		vector.StrokeCircle(p.dst, x, y, r*2, max(r/4, 1), sc, true)
	}
}

func (p *painter) hoshu(m *scene.Model) {
	center := m.Position.Add(mgl32.Vec3{0, entity.HoshuCenterY, 0})
	col := p.shade(colHoshu, m.Tint, center)
	if _, _, _, ok := p.disc(center, entity.HoshuRadius, col); !ok {
		return
	}
	turret := vmath.RotateY(mgl32.Vec3{0, 0, -1}, m.Yaw)
	p.line(center, center.Add(turret.Mul(entity.HoshuRadius*1.5)), 1.5, p.shade(colTurret, m.Tint, center))
}

func (p *painter) laser(m *scene.Model, col color.RGBA) {
	dir := yawDir(m.Yaw)
	tail := m.Position.Sub(dir.Mul(laserLength * m.Scale / 2))
	p.line(m.Position, tail, entity.LaserRadius*m.Scale, col)
}

func (p *painter) fence(m *scene.Model) {
	col := p.shade(colFence, m.Tint, m.Position)
	r := float32(entity.HealPadRadius)
	pos := m.Position
	corners := []mgl32.Vec3{
		pos.Add(mgl32.Vec3{-r, 0, 0}),
		pos.Add(mgl32.Vec3{-r, 6, 0}),
		pos.Add(mgl32.Vec3{r, 6, 0}),
		pos.Add(mgl32.Vec3{r, 0, 0}),
	}
	for i := range corners {
		p.line(corners[i], corners[(i+1)%len(corners)], 0.3, col)
	}
	p.line(corners[0], corners[2], 0.2, col)
	p.line(corners[1], corners[3], 0.2, col)
}

func (p *painter) structure(m *scene.Model) {
	look := structureLooks[m.Mesh]
	col := p.shade(look.col, m.Tint, m.Position)
	if m.Mesh == scene.MeshStructure2 {
		// spans the lane: a pillar on each side and a beam over the top
		l := mgl32.Vec3{-entity.StructureOffsetX, 0, m.Position.Z()}
		r := mgl32.Vec3{entity.StructureOffsetX, 0, m.Position.Z()}
		p.pillar(l, look.width, look.height, col)
		p.pillar(r, look.width, look.height, col)
		top := mgl32.Vec3{0, look.height, 0}
		p.line(l.Add(top), r.Add(top), look.width/2, col)
		return
	}
	p.pillar(m.Position, look.width, look.height, col)
}

func (p *painter) pillar(base mgl32.Vec3, width, height float32, col color.Color) {
	x, y0, d, ok := p.proj.project(base)
	if !ok {
		return
	}
	_, y1, _, ok := p.proj.project(base.Add(mgl32.Vec3{0, height, 0}))
	if !ok {
		return
	}
	w := p.proj.size(width, d)
	vector.DrawFilledRect(p.dst, x-w/2, y1, w, y0-y1, col, false)
}

func (p *painter) billboards(bbs []scene.Billboard) {
	type drawable struct {
		depth float32
		b     *scene.Billboard
	}
	queue := make([]drawable, 0, len(bbs))
	for i := range bbs {
		if _, _, d, ok := p.proj.project(bbs[i].Position); ok {
			queue = append(queue, drawable{d, &bbs[i]})
		}
	}
	slices.SortFunc(queue, func(a, b drawable) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		default:
			return 0
		}
	})
	for _, d := range queue {
		p.billboard(d.b)
	}
}

func (p *painter) billboard(b *scene.Billboard) {
	sheet := p.r.sheets[b.Texture]
	if sheet == nil {
		return
	}
	x, y, d, ok := p.proj.project(b.Position)
	if !ok {
		return
	}
	u, v := int(b.U*effectSize), int(b.V*effectSize)
	cell := sheet.SubImage(image.Rect(u, v, u+effectCell, v+effectCell)).(*ebiten.Image)
	w, h := p.proj.size(b.Scale.X(), d), p.proj.size(b.Scale.Y(), d)

	var geo ebiten.GeoM
	geo.Scale(float64(w/effectCell), float64(h/effectCell))
	geo.Translate(float64(x-w/2), float64(y-h/2))

	if b.AlphaThreshold > 0 && p.r.alphaTest != nil {
		opts := &ebiten.DrawRectShaderOptions{GeoM: geo}
		opts.Images[0] = cell
		opts.Uniforms = map[string]any{"Threshold": float32(b.AlphaThreshold)}
		p.dst.DrawRectShader(effectCell, effectCell, p.r.alphaTest, opts)
		return
	}
	p.dst.DrawImage(cell, &ebiten.DrawImageOptions{GeoM: geo})
}

// label draws cached static text scaled up from the debug font.
func (p *painter) label(text string, x, y, scale float32, centered bool) {
	img, ok := p.r.labels[text]
	if !ok {
		if len(p.r.labels) >= maxLabels {
			for k, l := range p.r.labels {
				l.Deallocate()
				delete(p.r.labels, k)
			}
		}
		img = ebiten.NewImage(len(text)*6+2, 16)
		ebitenutil.DebugPrintAt(img, text, 1, 0)
		p.r.labels[text] = img
	}
	w := float32(img.Bounds().Dx()) * scale
	if centered {
		x -= w / 2
	}
	var geo ebiten.GeoM
	geo.Scale(float64(scale), float64(scale))
	geo.Translate(float64(x), float64(y))
	p.dst.DrawImage(img, &ebiten.DrawImageOptions{GeoM: geo})
}

// digits draws glyphs from the font sheet and returns the x after the last.
func (p *painter) digits(glyphs []scene.Glyph, x, y, scale float32) float32 {
	fonts := p.r.sheets[scene.TexFonts]
	if fonts == nil {
		return x
	}
	const glyphW = 8
	for _, g := range glyphs {
		d := glyphDigit(g)
		cx, cy := (d%4)*fontCell+4, (d/4)*fontCell
		src := fonts.SubImage(image.Rect(cx, cy, cx+glyphW, cy+fontCell)).(*ebiten.Image)
		var geo ebiten.GeoM
		geo.Scale(float64(scale), float64(scale))
		geo.Translate(float64(x), float64(y))
		p.dst.DrawImage(src, &ebiten.DrawImageOptions{GeoM: geo})
		x += glyphW * scale
	}
	return x
}

func (p *painter) hud(h *scene.HUD) {
	const x0, y0, barW, barH = 16, 16, 200, 14
	vector.StrokeRect(p.dst, x0, y0, barW, barH, 1, colText, false)
	fill := colHPBar
	if h.HPLow {
		fill = colHPLow
	}
	vector.DrawFilledRect(p.dst, x0+1, y0+1, (barW-2)*h.HPFactor, barH-2, fill, false)

	x := p.digits(h.HP, x0+barW+10, y0-1, 1)
	ebitenutil.DebugPrintAt(p.dst, "/", int(x), y0-1)
	p.digits(h.MaxHP, x+8, y0-1, 1)

	ebitenutil.DebugPrintAt(p.dst, "GUN", x0, y0+24)
	p.digits(h.GunLevel, x0+40, y0+24, 1)
	ebitenutil.DebugPrintAt(p.dst, "BLADE", x0, y0+42)
	p.digits(h.BladeLevel, x0+40, y0+42, 1)

	w := float32(p.dst.Bounds().Dx())
	ebitenutil.DebugPrintAt(p.dst, "SCORE", int(w)-200, y0-1)
	p.digits(h.Score, w-160, y0-4, 2)
	ebitenutil.DebugPrintAt(p.dst, h.Time, int(w)-200, y0+30)

	if h.Paused {
		b := p.dst.Bounds()
		p.label("PAUSED", float32(b.Dx())/2, float32(b.Dy())/3, 4, true)
	}
}

func (p *painter) menu(m *scene.Menu) {
	b := p.dst.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	if m.Title != "" {
		p.label(m.Title, w/2, h/5, 5, true)
	}
	for i, item := range m.Items {
		y := h/2 + float32(i)*48
		if i == m.Selection {
			vector.DrawFilledRect(p.dst, w/2-130, y-8, 260, 40, colSelection, false)
		}
		p.label(item, w/2, y, 2, true)
	}
	for i, line := range m.Lines {
		ebitenutil.DebugPrintAt(p.dst, line, int(w/2)-180, int(h/3)+i*18)
	}
}

func (p *painter) summary(s *scene.Summary) {
	b := p.dst.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	banner := "GAME OVER"
	if s.Win {
		banner = "YOU WIN"
	}
	p.label(banner, w/2, h/6, 5, true)

	x := w/2 - 180
	p.label("FINAL SCORE", x, h/2-90, 2, false)
	p.digits(s.Score, x+180, h/2-92, 3)

	p.label("TIME", x, h/2-30, 2, false)
	tx := p.digits(s.Hours, x+180, h/2-32, 3)
	p.label(":", tx, h/2-32, 3, false)
	tx = p.digits(s.Minutes, tx+18, h/2-32, 3)
	p.label(":", tx, h/2-32, 3, false)
	p.digits(s.Seconds, tx+18, h/2-32, 3)

	p.label("DEFEATED", x, h/2+30, 2, false)
	p.digits(s.Defeated, x+180, h/2+28, 3)

	p.label("PRESS ENTER", w/2, h-80, 2, true)
}
