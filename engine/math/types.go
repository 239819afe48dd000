package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector. It doubles as an RGBA colour where X..W map
// to the red, green, blue and alpha channels.
type Vec4 struct {
	X, Y, Z, W float32
}

// NewColor builds an RGBA colour vector.
func NewColor(r, g, b, a float32) Vec4 {
	return Vec4{X: r, Y: g, Z: b, W: a}
}

// ColorOpaqueBlack is the engine-wide default clear colour.
func ColorOpaqueBlack() Vec4 {
	return Vec4{X: 0, Y: 0, Z: 0, W: 1}
}
