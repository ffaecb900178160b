package terminal

// RGB represents a 24-bit color. The zero value maps to the terminal
// default color rather than pure black
type RGB struct {
	R, G, B uint8
}

// RGBDefault is the zero value, rendered as the terminal default
var RGBDefault = RGB{}

// Equal returns true if colors match
func (c RGB) Equal(other RGB) bool {
	return c.R == other.R && c.G == other.G && c.B == other.B
}

// IsDefault reports whether the color is the terminal default
func (c RGB) IsDefault() bool {
	return c == RGB{}
}
