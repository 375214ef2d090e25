package image

import (
	"image"
	"image/color"
	"sort"
)

type ColorCount struct {
	Color color.NRGBA
	Count int
}

type ColorCountList []ColorCount

func (ccl ColorCountList) Len() int { return len(ccl) }
func (ccl ColorCountList) Less(i, j int) bool {
	if ccl[i].Count != ccl[j].Count {
		return ccl[i].Count > ccl[j].Count
	}
	return packed(ccl[i].Color) < packed(ccl[j].Color)
}
func (ccl ColorCountList) Swap(i, j int) { ccl[i], ccl[j] = ccl[j], ccl[i] }

func packed(c color.NRGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// GetColors returns a map of an image's colors and the number of times
// each occurs. Fully transparent pixels are skipped.
func GetColors(img *image.NRGBA) map[color.NRGBA]int {
	m := make(map[color.NRGBA]int)

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			if c.A != 0 {
				m[c]++
			}
		}
	}

	return m
}

// RankColors orders colors by descending count. Ties are broken by color
// value so the order is deterministic.
func RankColors(m map[color.NRGBA]int) ColorCountList {
	cc := make(ColorCountList, len(m))

	i := 0
	for k, v := range m {
		cc[i] = ColorCount{k, v}
		i++
	}

	sort.Sort(cc)
	return cc
}
