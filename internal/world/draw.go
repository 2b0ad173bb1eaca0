package world

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"chosenoffset.com/omegathunder/internal/entity"
	"chosenoffset.com/omegathunder/internal/render/lighting"
	"chosenoffset.com/omegathunder/internal/render/scene"
)

var (
	skyColor   = scene.Color{R: 0.05, G: 0.05, B: 0.12, A: 1}
	white      = scene.Color{R: 1, G: 1, B: 1, A: 1}
	dimAmbient = lighting.Color{R: 0.25, G: 0.25, B: 0.25}
)

const structureLightRange = 200

func toSceneColor(c lighting.Color) scene.Color {
	return scene.Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// yawOf returns the rotation about y, in degrees, that turns +z onto dir.
func yawOf(dir mgl32.Vec3) float32 {
	return mgl32.RadToDeg(float32(math.Atan2(float64(dir.X()), float64(dir.Z()))))
}

func (w *World) drawGround(f *scene.Frame) {
	for _, z := range w.Ground.Z {
		f.DrawModel(scene.Model{Mesh: scene.MeshGround, Position: mgl32.Vec3{0, 0, z}, Scale: 1, Tint: white})
	}
	f.DrawModel(scene.Model{Mesh: scene.MeshSkydome, Position: w.Pos.Eye(), Scale: 1, Tint: white})
}

var structureMeshes = [entity.StructureTypes]scene.Mesh{
	scene.MeshStructure1, scene.MeshStructure2, scene.MeshStructure3, scene.MeshStructure4,
}

// drawStructures draws the spawned scenery. The first few spawned
// structures carry a light each.
func (w *World) drawStructures(f *scene.Frame) {
	light := 0
	for i := range w.Structures.Slots {
		s := &w.Structures.Slots[i]
		if !s.Spawned {
			continue
		}
		var yaw float32
		if s.Side == entity.SideLeft {
			yaw = 180
		}
		f.DrawModel(scene.Model{
			Mesh:     structureMeshes[s.Type-1],
			Position: s.Position,
			Scale:    1,
			Yaw:      yaw,
			Tint:     white,
		})
		if light < lighting.MaxStructureLights {
			id := lighting.StructureLight0 + lighting.ID(light)
			pos := s.Position.Add(mgl32.Vec3{0, 20, 0})
			w.Lights.Update(id, lighting.White, pos, structureLightRange, w.elapsed, false, lighting.WideAttenuation)
			w.Lights.Enable(id)
			light++
		}
	}
	for ; light < lighting.MaxStructureLights; light++ {
		w.Lights.Disable(lighting.StructureLight0 + lighting.ID(light))
	}
}

func (w *World) drawHoshu(f *scene.Frame, h *entity.Hoshu) {
	f.DrawModel(scene.Model{Mesh: scene.MeshHoshu, Position: h.Position, Scale: 1, Yaw: h.TurretYaw, Tint: white})
}

func (w *World) drawLaser(f *scene.Frame, mesh scene.Mesh, l *entity.Laser, scale float32) {
	f.DrawModel(scene.Model{
		Mesh:     mesh,
		Position: l.Position,
		Scale:    scale,
		Yaw:      yawOf(l.Trajectory.Direction),
		Tint:     white,
	})
}

func (w *World) drawRaiu(f *scene.Frame) {
	pose := w.anim.Pose()
	f.DrawModel(scene.Model{
		Mesh:     scene.MeshRaiu,
		Position: w.Raiu.Position,
		Scale:    1,
		Yaw:      yawOf(w.Raiu.Heading),
		Tint:     white,
		Pose:     &pose,
	})
}
