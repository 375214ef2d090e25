package theme

import (
	stdimage "image"

	"github.com/aclements/go-moremath/stats"
	"github.com/flosch/pongo2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/mmuldo/palettize/colorspace"
	"github.com/mmuldo/palettize/image"
	"github.com/mmuldo/palettize/palette"
)

// DefaultTemplate renders a Report as plain text.
const DefaultTemplate = `{% if report.Name %}theme {{ report.Name }}
{% endif %}{% for e in report.Entries %}{{ e.Hex }}  L {{ e.L|floatformat:1 }}  a {{ e.A|floatformat:1 }}  b {{ e.B|floatformat:1 }}{% if not forloop.Last %}  dE next {{ e.Next|floatformat:2 }}{% endif %}
{% endfor %}{% if report.Neighbours %}neighbour dE mean {{ report.MeanDistance|floatformat:2 }}, min {{ report.MinDistance|floatformat:2 }}, max {{ report.MaxDistance|floatformat:2 }}
{% endif %}{% if report.Usage %}image colors:
{% for u in report.Usage %}{{ u.Hex }}  {{ u.Count }} px  nearest {{ u.Nearest }}  dE {{ u.Distance|floatformat:2 }}
{% endfor %}{% endif %}`

// Swatch describes one palette entry.
type Swatch struct {
	Hex     string
	L, A, B float64
	// Next is the CIEDE2000 distance to the following, lighter entry.
	Next float64
}

// Usage describes one color of an inspected image.
type Usage struct {
	Hex      string
	Count    int
	Nearest  string
	Distance float64
}

// Report summarizes a palette and, optionally, how an image's colors sit
// relative to it.
type Report struct {
	Name    string
	Entries []Swatch
	// Neighbours counts the adjacent entry pairs the distance figures are
	// computed over.
	Neighbours   int
	MeanDistance float64
	MinDistance  float64
	MaxDistance  float64
	Usage        []Usage
}

// Describe builds a report for the theme's palette.
func (t *Theme) Describe() *Report {
	p := t.Palette
	r := &Report{Name: t.Name, Entries: make([]Swatch, len(p))}

	var dists []float64
	for i, e := range p {
		r.Entries[i] = Swatch{Hex: e.Hex, L: e.Lab.L, A: e.Lab.A, B: e.Lab.B}
		if i+1 < len(p) {
			d := palette.Distance(e.Lab, p[i+1].Lab)
			r.Entries[i].Next = d
			dists = append(dists, d)
		}
	}
	if len(dists) > 0 {
		r.Neighbours = len(dists)
		r.MeanDistance = stats.Mean(dists)
		r.MinDistance, r.MaxDistance = stats.Bounds(dists)
	}
	return r
}

// AddUsage records the top most frequent opaque colors of img together with
// the nearest palette entry of each. top <= 0 records every color.
func (r *Report) AddUsage(img *stdimage.NRGBA, p palette.Palette, top int) {
	ranked := image.RankColors(image.GetColors(img))
	if top > 0 && len(ranked) > top {
		ranked = ranked[:top]
	}
	for _, cc := range ranked {
		rgb := colorspace.FromBytes(cc.Color.R, cc.Color.G, cc.Color.B)
		u := Usage{
			Hex:   colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Hex(),
			Count: cc.Count,
		}
		lab := colorspace.RGBToLab(rgb)
		for i, e := range p {
			if d := palette.Distance(lab, e.Lab); i == 0 || d < u.Distance {
				u.Nearest, u.Distance = e.Hex, d
			}
		}
		r.Usage = append(r.Usage, u)
	}
}

// Render executes a pongo2 template with the report bound to "report".
func (r *Report) Render(tpl *pongo2.Template) (string, error) {
	return tpl.Execute(pongo2.Context{"report": r})
}

// RenderString compiles src and renders the report with it.
func (r *Report) RenderString(src string) (string, error) {
	tpl, e := pongo2.FromString(src)
	if e != nil {
		return "", e
	}
	return r.Render(tpl)
}

// RenderFile renders the report with the template file at path.
func (r *Report) RenderFile(path string) (string, error) {
	tpl, e := pongo2.FromFile(path)
	if e != nil {
		return "", e
	}
	return r.Render(tpl)
}
