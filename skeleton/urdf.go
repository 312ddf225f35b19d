package skeleton

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"quadtrot/quarkgl"
)

var (
	ErrNoLinks      = errors.New("skeleton: robot has no links")
	ErrUnknownLink  = errors.New("skeleton: joint references unknown link")
	ErrTwoParents   = errors.New("skeleton: link has more than one parent joint")
	ErrDuplicate    = errors.New("skeleton: duplicate name")
	ErrUnreachable  = errors.New("skeleton: links unreachable from any root")
	ErrBadAttribute = errors.New("skeleton: malformed attribute")
)

type urdfRobot struct {
	XMLName   xml.Name       `xml:"robot"`
	Name      string         `xml:"name,attr"`
	Materials []urdfMaterial `xml:"material"`
	Links     []urdfLink     `xml:"link"`
	Joints    []urdfJoint    `xml:"joint"`
}

type urdfMaterial struct {
	Name  string `xml:"name,attr"`
	Color *struct {
		RGBA string `xml:"rgba,attr"`
	} `xml:"color"`
}

type urdfOrigin struct {
	XYZ string `xml:"xyz,attr"`
	RPY string `xml:"rpy,attr"`
}

type urdfGeometry struct {
	Box *struct {
		Size string `xml:"size,attr"`
	} `xml:"box"`
	Cylinder *struct {
		Radius string `xml:"radius,attr"`
		Length string `xml:"length,attr"`
	} `xml:"cylinder"`
	Sphere *struct {
		Radius string `xml:"radius,attr"`
	} `xml:"sphere"`
	Mesh *struct {
		Filename string `xml:"filename,attr"`
	} `xml:"mesh"`
}

type urdfVisual struct {
	Origin   *urdfOrigin   `xml:"origin"`
	Geometry urdfGeometry  `xml:"geometry"`
	Material *urdfMaterial `xml:"material"`
}

type urdfLink struct {
	Name    string       `xml:"name,attr"`
	Visuals []urdfVisual `xml:"visual"`
}

type urdfJoint struct {
	Name   string      `xml:"name,attr"`
	Type   string      `xml:"type,attr"`
	Origin *urdfOrigin `xml:"origin"`
	Parent struct {
		Link string `xml:"link,attr"`
	} `xml:"parent"`
	Child struct {
		Link string `xml:"link,attr"`
	} `xml:"child"`
	Axis *struct {
		XYZ string `xml:"xyz,attr"`
	} `xml:"axis"`
	Limit *struct {
		Lower string `xml:"lower,attr"`
		Upper string `xml:"upper,attr"`
	} `xml:"limit"`
}

// Load reads a URDF file.
func Load(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open urdf: %w", err)
	}
	defer f.Close()

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse urdf %s: %w", path, err)
	}
	return m, nil
}

// Parse builds a model from a URDF document. Mesh geometry is not loaded;
// primitives are turned into boxes and every link gets a bone to each child joint.
func Parse(r io.Reader) (*Model, error) {
	var doc urdfRobot
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(doc.Links) == 0 {
		return nil, ErrNoLinks
	}

	materials := make(map[string]quarkgl.Color)
	for _, mat := range doc.Materials {
		if c, ok, err := materialColor(mat); err != nil {
			return nil, err
		} else if ok {
			materials[mat.Name] = c
		}
	}

	m := newModel(doc.Name)
	linkNodes := make(map[string]*quarkgl.Node, len(doc.Links))
	for _, l := range doc.Links {
		if _, dup := linkNodes[l.Name]; dup {
			return nil, fmt.Errorf("%w: link %q", ErrDuplicate, l.Name)
		}
		n := quarkgl.NewNode(l.Name)
		linkNodes[l.Name] = n
		m.link(n)
	}

	hasParent := make(map[string]bool)
	for _, uj := range doc.Joints {
		if _, dup := m.joints[uj.Name]; dup {
			return nil, fmt.Errorf("%w: joint %q", ErrDuplicate, uj.Name)
		}
		parent, ok := linkNodes[uj.Parent.Link]
		if !ok {
			return nil, fmt.Errorf("%w: %q parent %q", ErrUnknownLink, uj.Name, uj.Parent.Link)
		}
		child, ok := linkNodes[uj.Child.Link]
		if !ok {
			return nil, fmt.Errorf("%w: %q child %q", ErrUnknownLink, uj.Name, uj.Child.Link)
		}
		if hasParent[uj.Child.Link] {
			return nil, fmt.Errorf("%w: %q", ErrTwoParents, uj.Child.Link)
		}
		hasParent[uj.Child.Link] = true

		j, err := newJoint(uj)
		if err != nil {
			return nil, fmt.Errorf("joint %q: %w", uj.Name, err)
		}
		parent.Add(j.node)
		j.node.Add(child)
		j.parent = m.link(parent)
		j.child = m.link(child)
		m.link(j.node)
		m.addJoint(j)
	}

	isLink := make(map[*quarkgl.Node]bool, len(linkNodes))
	for _, n := range linkNodes {
		isLink[n] = true
	}
	reachable := 0
	for _, l := range doc.Links {
		if hasParent[l.Name] {
			continue
		}
		root := linkNodes[l.Name]
		m.Base.Add(root)
		root.Traverse(func(n *quarkgl.Node) {
			if isLink[n] {
				reachable++
			}
		})
	}
	if reachable != len(doc.Links) {
		return nil, fmt.Errorf("%w: %d of %d", ErrUnreachable, len(doc.Links)-reachable, len(doc.Links))
	}

	for _, l := range doc.Links {
		if err := m.addVisuals(linkNodes[l.Name], l.Visuals, materials); err != nil {
			return nil, fmt.Errorf("link %q: %w", l.Name, err)
		}
	}
	m.addBones()
	m.Base.UpdateWorld(false)
	return m, nil
}

func newJoint(uj urdfJoint) (*Joint, error) {
	j := &Joint{
		Name: uj.Name,
		Type: JointType(strings.TrimSpace(uj.Type)),
		Axis: quarkgl.V3(1, 0, 0),
		node: quarkgl.NewNode(uj.Name),
	}
	if j.Type == "" {
		j.Type = Fixed
	}
	if uj.Origin != nil {
		xyz, err := parseVec3(uj.Origin.XYZ)
		if err != nil {
			return nil, fmt.Errorf("origin xyz: %w", err)
		}
		rpy, err := parseVec3(uj.Origin.RPY)
		if err != nil {
			return nil, fmt.Errorf("origin rpy: %w", err)
		}
		j.Origin = xyz
		j.node.Position = xyz
		j.node.Rotation = rpy
	}
	j.node.Order = quarkgl.EulerZYX
	if uj.Axis != nil && strings.TrimSpace(uj.Axis.XYZ) != "" {
		axis, err := parseVec3(uj.Axis.XYZ)
		if err != nil {
			return nil, fmt.Errorf("axis: %w", err)
		}
		j.Axis = quarkgl.Normalize(axis)
	}
	j.node.SpinAxis = j.Axis
	if uj.Limit != nil {
		lower, err := parseFloat(uj.Limit.Lower)
		if err != nil {
			return nil, fmt.Errorf("limit lower: %w", err)
		}
		upper, err := parseFloat(uj.Limit.Upper)
		if err != nil {
			return nil, fmt.Errorf("limit upper: %w", err)
		}
		j.Lower, j.Upper = lower, upper
	}
	return j, nil
}

func materialColor(mat urdfMaterial) (quarkgl.Color, bool, error) {
	if mat.Color == nil || strings.TrimSpace(mat.Color.RGBA) == "" {
		return quarkgl.Color{}, false, nil
	}
	f := strings.Fields(mat.Color.RGBA)
	if len(f) != 4 {
		return quarkgl.Color{}, false, fmt.Errorf("%w: rgba %q", ErrBadAttribute, mat.Color.RGBA)
	}
	var ch [4]uint8
	for i, s := range f {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return quarkgl.Color{}, false, fmt.Errorf("%w: rgba %q", ErrBadAttribute, mat.Color.RGBA)
		}
		ch[i] = uint8(quarkgl.Clamp01(v) * 255)
	}
	return quarkgl.RGBA(ch[0], ch[1], ch[2], ch[3]), true, nil
}

// parseVec3 reads "x y z"; an empty string is the zero vector.
func parseVec3(s string) (quarkgl.Vec3, error) {
	f := strings.Fields(s)
	if len(f) == 0 {
		return quarkgl.Vec3{}, nil
	}
	if len(f) != 3 {
		return quarkgl.Vec3{}, fmt.Errorf("%w: %q", ErrBadAttribute, s)
	}
	var v [3]float64
	for i, p := range f {
		x, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return quarkgl.Vec3{}, fmt.Errorf("%w: %q", ErrBadAttribute, s)
		}
		v[i] = x
	}
	return quarkgl.V3(v[0], v[1], v[2]), nil
}

func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadAttribute, s)
	}
	return v, nil
}
