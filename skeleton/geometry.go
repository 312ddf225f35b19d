package skeleton

import (
	"fmt"
	"strings"

	"quadtrot/quarkgl"
)

var (
	defaultColor = quarkgl.RGB(0xB0, 0xB8, 0xC0)
	boneColor    = quarkgl.RGB(0xE0, 0x90, 0x30)
)

// BoneThickness is the cross-section of generated bone meshes, in model units.
const BoneThickness = 0.025

// addVisuals hangs one unnamed mesh node per primitive visual below link.
func (m *Model) addVisuals(link *quarkgl.Node, visuals []urdfVisual, materials map[string]quarkgl.Color) error {
	for i, v := range visuals {
		color := defaultColor
		if v.Material != nil {
			if c, ok, err := materialColor(*v.Material); err != nil {
				return err
			} else if ok {
				color = c
			} else if c, ok := materials[v.Material.Name]; ok {
				color = c
			}
		}

		size, err := primitiveSize(v.Geometry)
		if err != nil {
			return fmt.Errorf("visual %d: %w", i, err)
		}
		if size == (quarkgl.Vec3{}) {
			if v.Geometry.Mesh != nil {
				m.SkippedMeshes++
			}
			continue
		}

		n := quarkgl.NewNode("")
		n.Order = quarkgl.EulerZYX
		if v.Origin != nil {
			if n.Position, err = parseVec3(v.Origin.XYZ); err != nil {
				return fmt.Errorf("visual %d origin: %w", i, err)
			}
			if n.Rotation, err = parseVec3(v.Origin.RPY); err != nil {
				return fmt.Errorf("visual %d origin: %w", i, err)
			}
		}
		n.Mesh = quarkgl.BoxMesh(size, color)
		link.Add(n)
	}
	return nil
}

// primitiveSize returns the box approximating a primitive; cylinders run along Z.
func primitiveSize(g urdfGeometry) (quarkgl.Vec3, error) {
	switch {
	case g.Box != nil:
		return parseVec3(g.Box.Size)
	case g.Cylinder != nil:
		r, err := parseFloat(g.Cylinder.Radius)
		if err != nil {
			return quarkgl.Vec3{}, err
		}
		l, err := parseFloat(g.Cylinder.Length)
		if err != nil {
			return quarkgl.Vec3{}, err
		}
		return quarkgl.V3(2*r, 2*r, l), nil
	case g.Sphere != nil:
		r, err := parseFloat(g.Sphere.Radius)
		if err != nil {
			return quarkgl.Vec3{}, err
		}
		return quarkgl.V3(2*r, 2*r, 2*r), nil
	}
	return quarkgl.Vec3{}, nil
}

// addBones draws a segment from every link origin to each child joint origin.
func (m *Model) addBones() {
	for _, j := range m.order {
		if j.parent == nil || quarkgl.Len(j.Origin) == 0 {
			continue
		}
		n := quarkgl.NewNode("")
		n.Mesh = quarkgl.SegmentMesh(quarkgl.Vec3{}, j.Origin, BoneThickness, boneColor)
		j.parent.node.Add(n)
	}
}

// Describe is a one-line summary used in logs.
func (m *Model) Describe() string {
	var kinds []string
	counts := make(map[JointType]int)
	for _, j := range m.order {
		if counts[j.Type] == 0 {
			kinds = append(kinds, string(j.Type))
		}
		counts[j.Type]++
	}
	parts := make([]string, 0, len(kinds))
	for _, k := range kinds {
		parts = append(parts, fmt.Sprintf("%s=%d", k, counts[JointType(k)]))
	}
	return fmt.Sprintf("%s: %d joints (%s)", m.Name, len(m.order), strings.Join(parts, " "))
}
