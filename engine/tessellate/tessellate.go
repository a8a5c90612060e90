// Package tessellate turns shape descriptions into meshes. Every shape has
// its own entry point; Tessellate dispatches on the concrete type.
package tessellate

import (
	"fmt"

	"github.com/spaghettifunk/meshforge/engine/core"
	"github.com/spaghettifunk/meshforge/engine/mesh"
	"github.com/spaghettifunk/meshforge/engine/shapes"
)

// Tessellate builds the mesh for any shape. Pointers to shapes are accepted
// as well as values; a nil shape is an error.
func Tessellate(shape shapes.Shape, o *Options) (*mesh.Mesh, error) {
	shape, err := deref(shape)
	if err != nil {
		return nil, err
	}
	switch s := shape.(type) {
	case shapes.Sphere:
		return Sphere(s, o), nil
	case shapes.Disc:
		return Disc(s, o), nil
	case shapes.Ring:
		return Ring(s, o), nil
	case shapes.Cylinder:
		return Cylinder(s, o), nil
	case shapes.Cone:
		return Cone(s, o), nil
	case shapes.Prism:
		return Prism(s, o), nil
	case shapes.Capsule:
		return Capsule(s, o), nil
	case shapes.Torus:
		return Torus(s, o), nil
	case shapes.Jet:
		return Jet(s, o), nil
	case shapes.Kamehameha:
		return Kamehameha(s, o), nil
	case shapes.Molecule:
		return Molecule(s, o), nil
	case shapes.Rays:
		return Rays(s, o), nil
	case shapes.Polyhedron:
		return Polyhedron(s, o), nil
	default:
		return nil, fmt.Errorf("%w: %T", core.ErrUnknownShape, shape)
	}
}

// MustTessellate is Tessellate for shapes known to be valid.
func MustTessellate(shape shapes.Shape, o *Options) *mesh.Mesh {
	m, err := Tessellate(shape, o)
	if err != nil {
		core.LogFatal("tessellation failed: %s", err)
	}
	return m
}

func deref(shape shapes.Shape) (shapes.Shape, error) {
	if shape == nil {
		return nil, core.ErrNilShape
	}
	var out shapes.Shape
	switch s := shape.(type) {
	case *shapes.Sphere:
		out = valueOf(s)
	case *shapes.Disc:
		out = valueOf(s)
	case *shapes.Ring:
		out = valueOf(s)
	case *shapes.Cylinder:
		out = valueOf(s)
	case *shapes.Cone:
		out = valueOf(s)
	case *shapes.Prism:
		out = valueOf(s)
	case *shapes.Capsule:
		out = valueOf(s)
	case *shapes.Torus:
		out = valueOf(s)
	case *shapes.Jet:
		out = valueOf(s)
	case *shapes.Kamehameha:
		out = valueOf(s)
	case *shapes.Molecule:
		out = valueOf(s)
	case *shapes.Rays:
		out = valueOf(s)
	case *shapes.Polyhedron:
		out = valueOf(s)
	default:
		return shape, nil
	}
	if out == nil {
		return nil, core.ErrNilShape
	}
	return out, nil
}

func valueOf[T shapes.Shape](p *T) shapes.Shape {
	if p == nil {
		return nil
	}
	return *p
}
