package ebiten

// alphaTestSrc discards texels whose alpha is below Threshold (0-255), the
// way the effect billboards cut out their sprite sheet backgrounds.
var alphaTestSrc = []byte(`//kage:unit pixels

package main

var Threshold float

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	c := imageSrc0At(srcPos)
	if c.a*255 < Threshold {
		discard()
	}
	return c * color
}
`)
