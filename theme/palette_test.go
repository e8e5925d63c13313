package theme

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleGPL = `GIMP Palette
Name: test
Columns: 2
#
  0   0   0	black
255 255 255	white
`

func TestLoadGPL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.gpl")
	if err := os.WriteFile(path, []byte(sampleGPL), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := LoadGPL(path)
	if err != nil {
		t.Fatalf("LoadGPL: %v", err)
	}
	if p.Name != "test" {
		t.Errorf("name = %q, want test", p.Name)
	}
	if len(p.Colors) != 2 {
		t.Fatalf("got %d colors, want 2", len(p.Colors))
	}
	if p.Colors[0] != (RGB{0, 0, 0}) || p.Colors[1] != (RGB{255, 255, 255}) {
		t.Errorf("colors = %v", p.Colors)
	}
}

func TestLoadGPLRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.gpl")
	if err := os.WriteFile(path, []byte("GIMP Palette\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadGPL(path); err == nil {
		t.Error("expected error for palette with no colors")
	}
}

func TestLookupEndpointsAndMidpoint(t *testing.T) {
	p := &Palette{Colors: []RGB{{0, 0, 0}, {200, 100, 50}}}

	if got := p.Lookup(-1); got != (RGB{0, 0, 0}) {
		t.Errorf("Lookup(-1) = %v", got)
	}
	if got := p.Lookup(2); got != (RGB{200, 100, 50}) {
		t.Errorf("Lookup(2) = %v", got)
	}
	mid := p.Lookup(0.5)
	if mid != (RGB{100, 50, 25}) {
		t.Errorf("Lookup(0.5) = %v, want {100 50 25}", mid)
	}
}

func TestDefaultPaletteUsable(t *testing.T) {
	p := Default()
	if len(p.Colors) < 2 {
		t.Fatalf("default palette has %d colors", len(p.Colors))
	}
	// Must span a visible gradient
	if p.Lookup(0) == p.Lookup(1) {
		t.Error("default palette endpoints are identical")
	}
}
