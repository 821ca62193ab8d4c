package arimage

// TintIntensity scales palette colors so the tint stays subtle.
const TintIntensity = 0.1

// Palette is an ordered set of base colors mapped onto tracked-image
// indices. Colors are 0xRRGGBB values.
type Palette struct {
	Colors    []uint32
	Intensity float64
}

// DefaultPalette holds the sixteen base tint colors.
var DefaultPalette = Palette{
	Colors: []uint32{
		0x000000, 0xF44336, 0xE91E63, 0x9C27B0, 0x673AB7, 0x3F51B5, 0x2196F3, 0x03A9F4,
		0x00BCD4, 0x009688, 0x4CAF50, 0x8BC34A, 0xCDDC39, 0xFFEB3B, 0xFFC107, 0xFF9800,
	},
	Intensity: TintIntensity,
}

// Len returns the number of base colors.
func (p Palette) Len() int { return len(p.Colors) }

// Color returns the tint for index: Colors[index mod Len] with each RGB
// channel scaled by Intensity and alpha fixed at 1. Negative indices wrap.
// An empty palette yields opaque black.
func (p Palette) Color(index int) RGBA {
	n := len(p.Colors)
	if n == 0 {
		return Black
	}
	i := index % n
	if i < 0 {
		i += n
	}
	return FromHex(p.Colors[i]).ScaleRGB(p.Intensity)
}

// TintFor returns the default palette tint for a tracked image index.
func TintFor(index int) RGBA {
	return DefaultPalette.Color(index)
}
