package geomcore

// RgbaColor is an 8-bit-per-channel RGBA color, exactly four bytes so it
// packs flat into stored elements.
type RgbaColor struct {
	Red, Green, Blue, Alpha uint8
}

// RGB returns an opaque color from 8-bit components.
func RGB(r, g, b int) RgbaColor {
	return RGBA(r, g, b, 255)
}

// RGBA returns a color from 8-bit components.
func RGBA(r, g, b, a int) RgbaColor {
	return RgbaColor{
		Red:   uint8(r),
		Green: uint8(g),
		Blue:  uint8(b),
		Alpha: uint8(a),
	}
}

// RGBFloat returns an opaque color from components in [0, 1].
func RGBFloat(r, g, b float64) RgbaColor {
	// 255.1 so that an exact 1.0 still rounds down to 255.
	return RGBA(int(255.1*r), int(255.1*g), int(255.1*b), 255)
}

// RedF returns the red channel in [0, 1].
func (c RgbaColor) RedF() float64 { return float64(c.Red) / 255 }

// GreenF returns the green channel in [0, 1].
func (c RgbaColor) GreenF() float64 { return float64(c.Green) / 255 }

// BlueF returns the blue channel in [0, 1].
func (c RgbaColor) BlueF() float64 { return float64(c.Blue) / 255 }

// AlphaF returns the alpha channel in [0, 1].
func (c RgbaColor) AlphaF() float64 { return float64(c.Alpha) / 255 }

// Equals reports whether c and b are the same color.
func (c RgbaColor) Equals(b RgbaColor) bool {
	return c == b
}

// ToPackedInt packs the color as 0xAABBGGRR with the alpha stored
// inverted, so that the zero word is opaque black.
func (c RgbaColor) ToPackedInt() uint32 {
	return uint32(c.Red) |
		uint32(c.Green)<<8 |
		uint32(c.Blue)<<16 |
		uint32(255-c.Alpha)<<24
}

// FromPackedInt unpacks a color packed by ToPackedInt.
func FromPackedInt(v uint32) RgbaColor {
	return RGBA(
		int(v&0xff),
		int((v>>8)&0xff),
		int((v>>16)&0xff),
		int(255-((v>>24)&0xff)),
	)
}
