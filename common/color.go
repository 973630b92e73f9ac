package common

// Colorb is an 8 bit per channel RGBA color.
type Colorb [4]uint8

func RGBA(r, g, b, a uint8) Colorb {
	return Colorb{r, g, b, a}
}

// Floats returns the channels scaled to [0,1] for a vec4 uniform.
func (c Colorb) Floats() [4]float32 {
	return [4]float32{float32(c[0]) / 255, float32(c[1]) / 255, float32(c[2]) / 255, float32(c[3]) / 255}
}
