package palette

import (
	"math"
	"testing"

	"github.com/mmuldo/palettize/colorspace"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func labPalette(labs ...colorspace.Lab) Palette {
	p := make(Palette, len(labs))
	for i, l := range labs {
		p[i] = Entry{Lab: l}
	}
	return p
}

func TestNewSortsByLightness(t *testing.T) {
	p, err := New([]string{"#FFFFFF", "#000000", "#808080"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"#000000", "#808080", "#ffffff"}
	for i, h := range p.Hexes() {
		if h != want[i] {
			t.Errorf("entry %d = %s, want %s", i, h, want[i])
		}
	}
	for i := 1; i < len(p); i++ {
		if p[i-1].Lab.L > p[i].Lab.L {
			t.Errorf("entries %d and %d out of order: %v > %v", i-1, i, p[i-1].Lab.L, p[i].Lab.L)
		}
	}
}

func TestNewStableOnTies(t *testing.T) {
	p, err := New([]string{"#ff0000", "#00ff00", "#ff0000"})
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 3 {
		t.Fatalf("len = %d, want 3", len(p))
	}
	// both reds share a lightness and stay adjacent in input order
	if p[0].Hex != "#ff0000" || p[1].Hex != "#ff0000" || p[2].Hex != "#00ff00" {
		t.Errorf("order = %v", p.Hexes())
	}
}

func TestNewErrors(t *testing.T) {
	for _, bad := range []string{"", "ff0000", "#ff00", "#ff00000", "#gg0000", "red", "#1 2233", "# 1 2 3", "#\t1\t2\t3", "#12233 "} {
		if _, err := New([]string{"#000000", bad}); err == nil {
			t.Errorf("New(%q) succeeded, want error", bad)
		}
	}
}

func TestEmptyPalette(t *testing.T) {
	p, err := New(nil)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := p.Bounds()
	if lo != 0 || hi != 100 {
		t.Errorf("Bounds() = %v, %v, want 0, 100", lo, hi)
	}
	in := colorspace.Lab{L: 40, A: 12, B: -7}
	if got := p.Target(in); got != in {
		t.Errorf("Target(%+v) = %+v, want unchanged", in, got)
	}
}

func TestSingleEntryAttenuation(t *testing.T) {
	p, err := New([]string{"#ff0000"})
	if err != nil {
		t.Fatal(err)
	}
	anchor := p[0].Lab

	got := p.Target(colorspace.Lab{L: 0, A: 10, B: 10})
	if got.L != 0 || got.A != 0 || got.B != 0 {
		t.Errorf("Target at L=0 = %+v, want zero chroma", got)
	}

	half := anchor.L / 2
	got = p.Target(colorspace.Lab{L: half, A: 3, B: 3})
	if !near(got.A, anchor.A/2, 1e-9) || !near(got.B, anchor.B/2, 1e-9) || got.L != half {
		t.Errorf("Target at half lightness = %+v, want half of %+v", got, anchor)
	}

	// never amplified past the anchor
	got = p.Target(colorspace.Lab{L: 100})
	if !near(got.A, anchor.A, 1e-9) || !near(got.B, anchor.B, 1e-9) {
		t.Errorf("Target at L=100 = %+v, want anchor chroma %+v", got, anchor)
	}
}

func TestTargetBrackets(t *testing.T) {
	p := labPalette(
		colorspace.Lab{L: 10, A: 0, B: 0},
		colorspace.Lab{L: 50, A: 20, B: -40},
		colorspace.Lab{L: 90, A: -10, B: 60},
	)

	tests := []struct {
		name string
		l    float64
		a, b float64
	}{
		{"exact middle entry", 50, 20, -40},
		{"halfway into first bracket", 30, 10, -20},
		{"halfway into second bracket", 70, 5, 10},
		{"below darkest", 2, 0, 0},
		{"above lightest", 99, -10, 60},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Target(colorspace.Lab{L: tt.l, A: 100, B: 100})
			if got.L != tt.l {
				t.Errorf("L = %v, want %v", got.L, tt.l)
			}
			if !near(got.A, tt.a, 1e-9) || !near(got.B, tt.b, 1e-9) {
				t.Errorf("a, b = %v, %v, want %v, %v", got.A, got.B, tt.a, tt.b)
			}
		})
	}
}

func TestBracketFirstMatchWins(t *testing.T) {
	p := labPalette(
		colorspace.Lab{L: 10, A: 1},
		colorspace.Lab{L: 50, A: 2},
		colorspace.Lab{L: 50, A: 3},
		colorspace.Lab{L: 90, A: 4},
	)
	lower, upper := p.Bracket(50)
	if lower.Lab.A != 1 || upper.Lab.A != 2 {
		t.Errorf("Bracket(50) = %+v, %+v, want first pair", lower.Lab, upper.Lab)
	}
	// zero-width bracket between the duplicates is never reached first
	got := p.Target(colorspace.Lab{L: 50})
	if got.A != 2 {
		t.Errorf("Target(50).A = %v, want 2", got.A)
	}
}

func TestBracketFallsThroughToLastPair(t *testing.T) {
	p := labPalette(
		colorspace.Lab{L: 10, A: 1},
		colorspace.Lab{L: 50, A: 2},
		colorspace.Lab{L: 90, A: 3},
	)
	lower, upper := p.Bracket(math.NaN())
	if lower.Lab.A != 2 || upper.Lab.A != 3 {
		t.Errorf("Bracket(NaN) = %+v, %+v, want last pair", lower.Lab, upper.Lab)
	}
}

func TestZeroWidthPalette(t *testing.T) {
	p := labPalette(
		colorspace.Lab{L: 40, A: 5, B: 6},
		colorspace.Lab{L: 40, A: 50, B: 60},
	)
	got := p.Target(colorspace.Lab{L: 80})
	if got.L != 80 || got.A != 5 || got.B != 6 {
		t.Errorf("Target = %+v, want lower entry chroma at L=80", got)
	}
}

func TestDistance(t *testing.T) {
	p, err := New([]string{"#000000", "#ffffff", "#fe0000", "#ff0000"})
	if err != nil {
		t.Fatal(err)
	}
	black, red1, red2, white := p[0].Lab, p[1].Lab, p[2].Lab, p[3].Lab
	if d := Distance(black, black); !near(d, 0, 1e-9) {
		t.Errorf("Distance(black, black) = %v, want 0", d)
	}
	if d := Distance(black, white); d < 90 {
		t.Errorf("Distance(black, white) = %v, want close to 100", d)
	}
	if d := Distance(red1, red2); d > 1 {
		t.Errorf("Distance between near-identical reds = %v, want < 1", d)
	}
}
