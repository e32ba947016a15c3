package assets

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/eggshot/internal/core"
)

func TestLoadDefaultBundle(t *testing.T) {
	b, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	ids, err := b.Resolve("Doll", "Egg", "Cube")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	seen := map[MeshID]bool{}
	for _, id := range ids {
		if id == 0 {
			t.Error("resolved handle should not be zero")
		}
		if seen[id] {
			t.Errorf("handle %d issued twice", id)
		}
		seen[id] = true
	}

	egg, err := b.Lookup("Egg")
	if err != nil {
		t.Fatal(err)
	}
	if egg.Glyph != 'o' || egg.Color != core.ColorYellow || egg.Shape != ShapeCircle {
		t.Errorf("Egg = %+v", egg)
	}
	cube, _ := b.Lookup("Cube")
	if cube.Glyph != '■' || cube.Shape != ShapeSquare {
		t.Errorf("Cube = %+v", cube)
	}

	if m, ok := b.Mesh(egg.ID); !ok || m.Name != "Egg" {
		t.Errorf("Mesh(%d) = %+v, %v", egg.ID, m, ok)
	}
	if _, ok := b.Mesh(0); ok {
		t.Error("Mesh(0) should not resolve")
	}
}

func TestResolveUnknown(t *testing.T) {
	b := MustLoad()

	_, err := b.Resolve("Doll", "Teapot")
	if !errors.Is(err, ErrUnknownMesh) {
		t.Fatalf("Resolve error = %v, expected ErrUnknownMesh", err)
	}
	if !strings.Contains(err.Error(), "Teapot") {
		t.Errorf("error should name the mesh: %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustResolve should panic on unknown mesh")
		}
	}()
	b.MustResolve("Teapot")
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		manifest string
		want     string
	}{
		{"empty", "meshes: []", "no meshes"},
		{"bad yaml", "meshes: [", "parse"},
		{"duplicate", "meshes:\n  - {name: A, glyph: a}\n  - {name: A, glyph: b}\n", "duplicate"},
		{"long glyph", "meshes:\n  - {name: A, glyph: ab}\n", "single character"},
		{"no glyph", "meshes:\n  - {name: A}\n", "single character"},
		{"bad color", "meshes:\n  - {name: A, glyph: a, color: plaid}\n", "color"},
		{"bad shape", "meshes:\n  - {name: A, glyph: a, shape: torus}\n", "shape"},
		{"unnamed", "meshes:\n  - {glyph: a}\n", "no name"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.manifest))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("Parse() error = %v, expected %q", err, tc.want)
			}
		})
	}
}

func TestParseDefaultsShape(t *testing.T) {
	b, err := Parse([]byte("meshes:\n  - {name: Dot, glyph: '.'}\n"))
	if err != nil {
		t.Fatal(err)
	}
	m, _ := b.Lookup("Dot")
	if m.Shape != ShapeCircle || m.Color != core.ColorDefault {
		t.Errorf("Dot = %+v", m)
	}
	if got := b.Names(); len(got) != 1 || got[0] != "Dot" {
		t.Errorf("Names() = %v", got)
	}
}
