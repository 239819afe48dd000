package headless

import (
	"github.com/google/uuid"

	"github.com/emberengine/ember/engine/math"
	"github.com/emberengine/ember/engine/renderer"
)

// SurfaceContents is the simulated lifecycle state of an attachment surface.
type SurfaceContents uint8

const (
	// ContentsUndefined means the surface holds no defined data, either
	// because nothing was rendered yet or because a pass discarded it.
	ContentsUndefined SurfaceContents = iota
	// ContentsCleared means the surface was last reset to a clear value.
	ContentsCleared
	// ContentsPreserved means a pass stored the surface.
	ContentsPreserved
)

func (s SurfaceContents) String() string {
	switch s {
	case ContentsCleared:
		return "cleared"
	case ContentsPreserved:
		return "preserved"
	default:
		return "undefined"
	}
}

// ColorBuffer is a simulated colour attachment. The backend tracks what a
// real driver would do to it: clears, discards, resolves and mip
// regeneration.
type ColorBuffer struct {
	name      string
	mipmapped bool

	contents       SurfaceContents
	clearValue     math.Vec4
	resolveCount   int
	mipGenerations int
}

func (cb *ColorBuffer) Name() string { return cb.name }

func (cb *ColorBuffer) Mipmapped() bool { return cb.mipmapped }

func (cb *ColorBuffer) Contents() SurfaceContents { return cb.contents }

// ClearValue is the colour of the last clear applied to the buffer.
func (cb *ColorBuffer) ClearValue() math.Vec4 { return cb.clearValue }

// ResolveCount is how many times the buffer was resolved from a
// multisampled surface.
func (cb *ColorBuffer) ResolveCount() int { return cb.resolveCount }

// MipGenerations is how many times the buffer's mip chain was regenerated.
func (cb *ColorBuffer) MipGenerations() int { return cb.mipGenerations }

// TargetConfig describes a simulated render target.
type TargetConfig struct {
	// Name identifies the target in diagnostics. Empty picks a generated one.
	Name string
	// SampleCount of the target's surfaces. 0 defers to the device default.
	SampleCount int
	// ColorBufferCount is the number of colour attachments.
	ColorBufferCount int
	// Mipmapped marks every colour buffer as carrying a mip chain.
	Mipmapped bool
	// Depth and Stencil declare the presence of those attachments.
	Depth   bool
	Stencil bool
}

// Target is a simulated render target implementing renderer.RenderTarget
// and renderer.ColorBufferProvider.
type Target struct {
	name        string
	sampleCount int
	depth       bool
	stencil     bool

	colorBuffers []*ColorBuffer

	depthContents     SurfaceContents
	stencilContents   SurfaceContents
	clearDepthValue   float32
	clearStencilValue uint32
}

// NewTarget builds a simulated target. Colour buffers get generated names so
// trace output can tell attachments apart.
func NewTarget(config TargetConfig) *Target {
	name := config.Name
	if name == "" {
		name = uuid.New().String()
	}

	t := &Target{
		name:        name,
		sampleCount: config.SampleCount,
		depth:       config.Depth,
		stencil:     config.Stencil,
	}
	for i := 0; i < config.ColorBufferCount; i++ {
		t.colorBuffers = append(t.colorBuffers, &ColorBuffer{
			name:      uuid.New().String(),
			mipmapped: config.Mipmapped,
		})
	}
	return t
}

func (t *Target) Name() string     { return t.name }
func (t *Target) SampleCount() int { return t.sampleCount }
func (t *Target) HasDepth() bool   { return t.depth }
func (t *Target) HasStencil() bool { return t.stencil }

// ColorBuffers implements renderer.ColorBufferProvider.
func (t *Target) ColorBuffers() []renderer.ColorBuffer {
	buffers := make([]renderer.ColorBuffer, len(t.colorBuffers))
	for i, cb := range t.colorBuffers {
		buffers[i] = cb
	}
	return buffers
}

// ColorBuffer returns the simulated attachment at index, or nil when out of
// range. Tests and diagnostics use this to inspect surface state.
func (t *Target) ColorBuffer(index int) *ColorBuffer {
	if index < 0 || index >= len(t.colorBuffers) {
		return nil
	}
	return t.colorBuffers[index]
}

// DepthContents reports the simulated depth surface state.
func (t *Target) DepthContents() SurfaceContents { return t.depthContents }

// StencilContents reports the simulated stencil surface state.
func (t *Target) StencilContents() SurfaceContents { return t.stencilContents }

// ClearDepthValue is the value of the last depth clear applied.
func (t *Target) ClearDepthValue() float32 { return t.clearDepthValue }

// ClearStencilValue is the value of the last stencil clear applied.
func (t *Target) ClearStencilValue() uint32 { return t.clearStencilValue }
