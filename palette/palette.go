package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mmuldo/palettize/colorspace"
)

var klch = &deltae.KLChDefault

// Entry is a palette color in both its source RGB form and its Lab form.
type Entry struct {
	Hex string
	RGB colorspace.RGB
	Lab colorspace.Lab
}

// Palette is a set of entries sorted by ascending lightness.
type Palette []Entry

type byLightness []Entry

func (es byLightness) Len() int           { return len(es) }
func (es byLightness) Less(i, j int) bool { return es[i].Lab.L < es[j].Lab.L }
func (es byLightness) Swap(i, j int)      { es[i], es[j] = es[j], es[i] }

// New parses hex colors of the form #rrggbb (any case) and returns them
// sorted by lightness. Entries of equal lightness keep their input order.
func New(hexes []string) (Palette, error) {
	p := make(Palette, 0, len(hexes))
	for i, h := range hexes {
		e, err := NewEntry(h)
		if err != nil {
			return nil, fmt.Errorf("palette color %d: %w", i, err)
		}
		p = append(p, e)
	}
	sort.Stable(byLightness(p))
	return p, nil
}

// NewEntry parses a single #rrggbb color.
func NewEntry(hex string) (Entry, error) {
	hex = strings.ToLower(hex)
	if len(hex) != 7 || hex[0] != '#' || strings.Trim(hex[1:], "0123456789abcdef") != "" {
		return Entry{}, fmt.Errorf("%q is not of the form #rrggbb", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing %q: %w", hex, err)
	}
	rgb := colorspace.RGB{R: c.R, G: c.G, B: c.B}
	return Entry{Hex: hex, RGB: rgb, Lab: colorspace.RGBToLab(rgb)}, nil
}

// Hexes returns the palette colors in lightness order.
func (p Palette) Hexes() []string {
	hs := make([]string, len(p))
	for i, e := range p {
		hs[i] = e.Hex
	}
	return hs
}

// Bounds returns the lightness of the darkest and lightest entries,
// or 0 and 100 for an empty palette.
func (p Palette) Bounds() (min, max float64) {
	if len(p) == 0 {
		return 0, 100
	}
	return p[0].Lab.L, p[len(p)-1].Lab.L
}

// Bracket returns the adjacent entries whose lightness straddles l, which
// must already lie within Bounds. The first matching pair wins. If no pair
// matches, the last pair is returned. p must hold at least two entries.
func (p Palette) Bracket(l float64) (lower, upper Entry) {
	lower, upper = p[0], p[0]
	for j := 0; j < len(p)-1; j++ {
		lower, upper = p[j], p[j+1]
		if l >= lower.Lab.L && l <= upper.Lab.L {
			break
		}
	}
	return lower, upper
}

// Target returns the color the palette maps lab toward. Its lightness is
// always lab.L; only a and b come from the palette.
func (p Palette) Target(lab colorspace.Lab) colorspace.Lab {
	switch len(p) {
	case 0:
		return lab
	case 1:
		anchor := p[0].Lab
		// darker pixels get proportionally less of the anchor's chroma
		k := min(lab.L/max(anchor.L, 1), 1)
		return colorspace.Lab{L: lab.L, A: anchor.A * k, B: anchor.B * k}
	}

	lo, hi := p.Bounds()
	l := colorspace.Clamp(lab.L, lo, hi)
	lower, upper := p.Bracket(l)

	var amount float64
	if r := upper.Lab.L - lower.Lab.L; r != 0 {
		amount = (l - lower.Lab.L) / r
	}
	return colorspace.Lab{
		L: lab.L,
		A: lower.Lab.A + (upper.Lab.A-lower.Lab.A)*amount,
		B: lower.Lab.B + (upper.Lab.B-lower.Lab.B)*amount,
	}
}

// Distance returns the CIEDE2000 color difference between a and b.
func Distance(a, b colorspace.Lab) float64 {
	return deltae.CIE2000(toChromath(a), toChromath(b), klch)
}

func toChromath(c colorspace.Lab) chromath.Lab {
	return chromath.Lab{c.L, c.A, c.B}
}
