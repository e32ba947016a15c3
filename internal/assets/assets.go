// Package assets resolves named meshes from an embedded manifest into
// opaque handles the simulation can store.
package assets

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/eggshot/internal/core"
)

//go:embed bundle.yaml
var defaultManifest []byte

// MeshID is an opaque handle to a mesh. The zero value is never issued.
type MeshID int

// Shape is the outline frontends draw for a mesh.
type Shape string

const (
	ShapeCircle  Shape = "circle"
	ShapeSquare  Shape = "square"
	ShapeDiamond Shape = "diamond"
)

// Mesh describes how to draw an entity.
type Mesh struct {
	ID     MeshID
	Name   string
	Glyph  rune
	Color  core.Color
	Radius float64
	Shape  Shape
}

// ErrUnknownMesh is returned when a name is not in the bundle.
var ErrUnknownMesh = errors.New("unknown mesh")

type manifest struct {
	Meshes []meshEntry `yaml:"meshes"`
}

type meshEntry struct {
	Name   string  `yaml:"name"`
	Glyph  string  `yaml:"glyph"`
	Color  string  `yaml:"color"`
	Radius float64 `yaml:"radius"`
	Shape  string  `yaml:"shape"`
}

// Bundle is a loaded set of meshes.
type Bundle struct {
	meshes []Mesh
	byName map[string]MeshID
}

// Load parses the embedded manifest.
func Load() (*Bundle, error) {
	return Parse(defaultManifest)
}

// MustLoad is Load for package initialization; it panics on a broken build.
func MustLoad() *Bundle {
	b, err := Load()
	if err != nil {
		panic(err)
	}
	return b
}

// Parse builds a bundle from manifest YAML.
func Parse(data []byte) (*Bundle, error) {
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("assets: parse manifest: %w", err)
	}
	if len(m.Meshes) == 0 {
		return nil, errors.New("assets: manifest has no meshes")
	}

	b := &Bundle{byName: make(map[string]MeshID, len(m.Meshes))}
	for i, e := range m.Meshes {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("assets: mesh %d has no name", i)
		}
		if _, dup := b.byName[name]; dup {
			return nil, fmt.Errorf("assets: duplicate mesh %q", name)
		}

		glyph, size := utf8.DecodeRuneInString(e.Glyph)
		if size == 0 || size != len(e.Glyph) {
			return nil, fmt.Errorf("assets: mesh %q: glyph must be a single character, got %q", name, e.Glyph)
		}
		color, ok := core.ParseColor(e.Color)
		if !ok {
			return nil, fmt.Errorf("assets: mesh %q: unknown color %q", name, e.Color)
		}
		shape := Shape(strings.ToLower(e.Shape))
		switch shape {
		case "":
			shape = ShapeCircle
		case ShapeCircle, ShapeSquare, ShapeDiamond:
		default:
			return nil, fmt.Errorf("assets: mesh %q: unknown shape %q", name, e.Shape)
		}
		if e.Radius < 0 {
			return nil, fmt.Errorf("assets: mesh %q: negative radius", name)
		}

		id := MeshID(len(b.meshes) + 1)
		b.meshes = append(b.meshes, Mesh{
			ID:     id,
			Name:   name,
			Glyph:  glyph,
			Color:  color,
			Radius: e.Radius,
			Shape:  shape,
		})
		b.byName[name] = id
	}
	return b, nil
}

// Lookup returns the mesh registered under name.
func (b *Bundle) Lookup(name string) (Mesh, error) {
	id, ok := b.byName[name]
	if !ok {
		return Mesh{}, fmt.Errorf("assets: %w %q", ErrUnknownMesh, name)
	}
	return b.meshes[id-1], nil
}

// Mesh returns the mesh for a handle.
func (b *Bundle) Mesh(id MeshID) (Mesh, bool) {
	if id < 1 || int(id) > len(b.meshes) {
		return Mesh{}, false
	}
	return b.meshes[id-1], true
}

// Resolve maps names to handles, failing on the first unknown name.
func (b *Bundle) Resolve(names ...string) ([]MeshID, error) {
	ids := make([]MeshID, len(names))
	for i, name := range names {
		m, err := b.Lookup(name)
		if err != nil {
			return nil, err
		}
		ids[i] = m.ID
	}
	return ids, nil
}

// MustResolve is Resolve that panics on an unknown name.
func (b *Bundle) MustResolve(names ...string) []MeshID {
	ids, err := b.Resolve(names...)
	if err != nil {
		panic(err)
	}
	return ids
}

// Names lists mesh names in manifest order.
func (b *Bundle) Names() []string {
	names := make([]string, len(b.meshes))
	for i, m := range b.meshes {
		names[i] = m.Name
	}
	return names
}
