package renderer

// RenderTarget is the attachment topology a pass can be bound to. The pass
// only reads this metadata at Init time; it never owns the target or its
// storage, and a target whose layout changes needs the pass re-initialized.
type RenderTarget interface {
	// SampleCount is the per-pixel sample count of the target's surfaces.
	// 0 means unset, in which case the device default applies.
	SampleCount() int
	HasDepth() bool
	HasStencil() bool
}

// ColorBufferProvider is implemented by render targets that expose colour
// attachments. A bound target without it is treated as a degraded but valid
// depth-only configuration with zero colour attachments.
type ColorBufferProvider interface {
	// ColorBuffers returns the ordered colour attachment descriptors.
	ColorBuffers() []ColorBuffer
}

// ColorBuffer describes a single colour attachment of a render target.
type ColorBuffer interface {
	// Mipmapped reports whether the buffer carries a mip chain that can be
	// regenerated after a pass writes to it.
	Mipmapped() bool
}
