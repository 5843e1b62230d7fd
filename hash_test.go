package labelcolor

import (
	"strings"
	"testing"
)

func TestHashColormap_Deterministic(t *testing.T) {
	m := NewHashColormap()
	for _, tv := range []float64{0, 0.25, 0.5, 42, 1e6} {
		if m.Map(tv) != m.Map(tv) {
			t.Errorf("Map(%g) is not deterministic", tv)
		}
	}
}

func TestHashColormap_Range(t *testing.T) {
	m := NewHashColormap(0.7)
	for label := 0; label < 1000; label++ {
		c := m.Map(float64(label))
		if c.R < 0 || c.R >= 1 || c.G < 0 || c.G >= 1 || c.B < 0 || c.B >= 1 {
			t.Fatalf("Map(%d) = %v, want channels in [0, 1)", label, c)
		}
		if c.A != 1 {
			t.Fatalf("Map(%d) alpha = %g, want 1", label, c.A)
		}
	}
}

func TestHashColormap_SeedSum(t *testing.T) {
	// A 3-seed collapses to its sum, so both forms must agree.
	a := NewHashColormap(0.1, 0.2, 0.3)
	b := NewHashColormap(0.6)
	for _, tv := range []float64{1, 2, 3.5} {
		if got, want := a.Map(tv), b.Map(tv); got != want {
			t.Errorf("Map(%g): 3-seed %v != summed seed %v", tv, got, want)
		}
	}
}

func TestHashColormap_DefaultSeed(t *testing.T) {
	if got := NewHashColormap().Seed; got != DefaultSeed {
		t.Errorf("NewHashColormap().Seed = %g, want %g", got, DefaultSeed)
	}
}

func TestHashColormap_GLSL(t *testing.T) {
	g := NewHashColormap(0.5).GLSL()
	if strings.Contains(g, "$seed") {
		t.Error("GLSL() left the seed placeholder unsubstituted")
	}
	if !strings.Contains(g, "0.500") {
		t.Errorf("GLSL() does not contain the formatted seed: %s", g)
	}
	for _, want := range []string{"vec4 hash_color(float t)", "fract(sin", "fract(tan", "fract(cos"} {
		if !strings.Contains(g, want) {
			t.Errorf("GLSL() missing %q", want)
		}
	}
}

func TestHashColormap_MapAll(t *testing.T) {
	m := NewHashColormap()
	ts := []float64{0, 1, 2, 3}
	got := m.MapAll(ts)
	for i, tv := range ts {
		if got[i] != m.Map(tv) {
			t.Errorf("MapAll[%d] != Map(%g)", i, tv)
		}
	}
}
