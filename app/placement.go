package app

import (
	"math"

	"quadtrot/quarkgl"
)

// MaxDimension is the largest extent a model keeps after placement.
const MaxDimension = 3

// Placement records how the model was fitted to the view.
type Placement struct {
	// Fallback is set when the model has no extent.
	Fallback bool
	// MaxDim is the largest extent before scaling.
	MaxDim float64
	Scale  float64
	// Bounds is the world box after placement.
	Bounds quarkgl.Box3
	Eye    quarkgl.Vec3
	Target quarkgl.Vec3
}

// Place turns the Z-up robot upright, centres it on the origin, shrinks it to
// MaxDimension and frames the camera on the result.
func Place(root *quarkgl.Node, cam *quarkgl.Camera, orbit *quarkgl.OrbitController) Placement {
	root.Rotation = quarkgl.V3(-math.Pi/2, 0, 0)
	root.Scale = quarkgl.V3(1, 1, 1)
	root.UpdateWorld(true)

	box := quarkgl.BoundsOf(root)
	size := box.Size()
	p := Placement{Scale: 1, MaxDim: size.MaxComponent()}

	if size == (quarkgl.Vec3{}) {
		root.Position = quarkgl.V3(0, 0.5, 0)
		root.UpdateWorld(true)
		p.Fallback = true
		p.Bounds = quarkgl.BoundsOf(root)
		p.Eye = quarkgl.V3(0, 2, 5)
		p.Target = quarkgl.V3(0, 0.5, 0)
	} else {
		root.Position = root.Position.Sub(box.Center())
		if p.MaxDim > MaxDimension {
			p.Scale = MaxDimension / p.MaxDim
			root.Scale = quarkgl.V3(p.Scale, p.Scale, p.Scale)
		}
		root.UpdateWorld(true)

		p.Bounds = quarkgl.BoundsOf(root)
		c := p.Bounds.Center()
		d := p.Bounds.Size().MaxComponent()
		p.Eye = quarkgl.V3(c.X, c.Y+d*0.5, c.Z+d*1.5)
		p.Target = c
	}

	if cam != nil {
		cam.Position = p.Eye
		cam.Target = p.Target
	}
	if orbit != nil {
		orbit.LookFrom(p.Eye, p.Target)
	}
	return p
}
