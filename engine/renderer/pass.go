package renderer

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/emberengine/ember/engine/core"
	"github.com/emberengine/ember/engine/math"
	"github.com/emberengine/ember/engine/renderer/metadata"
)

// targetState tracks what a pass is bound to. A pass starts out
// uninitialized; Init moves it to either the default framebuffer or a
// concrete target.
type targetState uint8

const (
	targetUninitialized targetState = iota
	targetDefaultFramebuffer
	targetBound
)

// RenderPass is a frame-graph node: it binds a render target, declares
// per-attachment load/store/resolve/mipmap behaviour and executes a
// caller-supplied callback between the device's begin/end transitions.
//
// A pass is owned and driven by a single frame-graph thread; concurrent
// Render calls on the same instance are not supported.
type RenderPass struct {
	/** @brief Diagnostic ID, unique among live passes. */
	ID uint32
	/** @brief Identifier used in debug markers and trace output. */
	Name string

	// RequiresCubemaps signals to the scheduler that this pass may
	// interleave cubemap face rendering with other passes, which suppresses
	// mip generation deferral. A stand-in for real dependency tracking.
	RequiresCubemaps bool

	// FullSizeClearRect makes clears cover the full viewport/scissor rather
	// than a partial rect.
	FullSizeClearRect bool

	// Before runs outside the begin/end bracket, before any attachment
	// transition. Execute runs strictly inside the bracket and is where draw
	// submission belongs. After runs outside the bracket, after attachment
	// finalization. Any of them may be nil.
	Before  func()
	Execute func()
	After   func()

	device          Device
	state           targetState
	target          RenderTarget
	samples         int
	colorArrayOps   []*metadata.ColorAttachmentOps
	depthStencilOps *metadata.DepthStencilAttachmentOps
}

// NewRenderPass binds a pass to its device and optionally sets the execute
// callback. The pass is unusable for attachment work until Init is called.
func NewRenderPass(device Device, execute func()) *RenderPass {
	if device == nil {
		panic("renderer: NewRenderPass requires a device")
	}
	rp := &RenderPass{
		Name:              "renderpass",
		RequiresCubemaps:  true,
		FullSizeClearRect: true,
		Execute:           execute,
		device:            device,
	}
	rp.ID = core.IdentifierAcquireNewID(rp)
	return rp
}

// Init binds the pass to a render target, or to the default framebuffer when
// target is nil. It derives the effective sample count, allocates the
// depth/stencil ops and one colour op per colour attachment, and applies the
// single-sample invariant (store forced on, resolve forced off).
//
// Init re-derives everything from scratch, so calling it again after the
// target's layout changed is the supported way to rebind.
func (rp *RenderPass) Init(target RenderTarget) {
	if target == nil {
		rp.state = targetDefaultFramebuffer
		rp.target = nil
	} else {
		rp.state = targetBound
		rp.target = target
	}

	samples := rp.device.SampleCount()
	if target != nil {
		if s := target.SampleCount(); s != 0 {
			samples = s
		}
	}
	if samples < 1 {
		samples = 1
	}
	rp.samples = samples

	// Always allocated, even for targets without depth/stencil. Cheap, and
	// it spares every caller a nil check.
	rp.depthStencilOps = metadata.NewDepthStencilAttachmentOps()

	var buffers []ColorBuffer
	numColorOps := 1
	if target != nil {
		if provider, ok := target.(ColorBufferProvider); ok {
			buffers = provider.ColorBuffers()
			numColorOps = len(buffers)
		} else {
			// Degraded but valid: a target without colour buffers renders
			// depth-only.
			numColorOps = 0
			core.LogDebug("render pass '%s': bound target exposes no colour buffers, continuing with zero colour attachments", rp.Name)
		}
	}

	rp.colorArrayOps = make([]*metadata.ColorAttachmentOps, numColorOps)
	for i := range rp.colorArrayOps {
		ops := metadata.NewColorAttachmentOps()
		rp.colorArrayOps[i] = ops

		// A single sampled surface has nothing to resolve and must be the
		// thing that is stored.
		if rp.samples == 1 {
			ops.Store = true
			ops.Resolve = false
		}

		if buffers != nil && buffers[i].Mipmapped() {
			ops.Mipmaps = true
		}
	}
}

// SetClearColor declares that every colour attachment is cleared to color at
// the start of the pass. It applies uniformly across all attachments; there
// is no per-attachment override surface.
func (rp *RenderPass) SetClearColor(color math.Vec4) {
	rp.mustBeInitialized("SetClearColor")
	for _, ops := range rp.colorArrayOps {
		ops.ClearValue = color
		ops.Clear = true
	}
}

// SetClearDepth declares that the depth attachment is cleared to depth at
// the start of the pass.
func (rp *RenderPass) SetClearDepth(depth float32) {
	rp.mustBeInitialized("SetClearDepth")
	rp.depthStencilOps.ClearDepthValue = depth
	rp.depthStencilOps.ClearDepth = true
}

// SetClearStencil declares that the stencil attachment is cleared to stencil
// at the start of the pass.
func (rp *RenderPass) SetClearStencil(stencil uint32) {
	rp.mustBeInitialized("SetClearStencil")
	rp.depthStencilOps.ClearStencilValue = stencil
	rp.depthStencilOps.ClearStencil = true
}

func (rp *RenderPass) mustBeInitialized(op string) {
	if rp.state == targetUninitialized {
		panic(fmt.Sprintf("renderer: %s called on render pass '%s' before Init", op, rp.Name))
	}
}

// Render executes the pass once:
//
//	push marker -> Before -> begin (real passes) -> Execute ->
//	end (real passes) -> After -> bump pass counter -> pop marker
//
// A pass that was never initialized is a no-target passthrough: attachment
// transitions are skipped entirely and only the callbacks run. Callback
// panics are not recovered; marker push/pop and the begin/end bracket are
// paired on the success path only.
func (rp *RenderPass) Render() error {
	realPass := rp.state != targetUninitialized

	rp.device.PushDebugMarker(rp.Name)

	if rp.Before != nil {
		rp.Before()
	}

	if realPass {
		if err := rp.device.BeginRenderPass(rp); err != nil {
			return errors.Wrapf(err, "begin render pass '%s'", rp.Name)
		}
	}

	if rp.Execute != nil {
		rp.Execute()
	}

	if realPass {
		if err := rp.device.EndRenderPass(rp); err != nil {
			return errors.Wrapf(err, "end render pass '%s'", rp.Name)
		}
	}

	if rp.After != nil {
		rp.After()
	}

	rp.device.IncrementRenderPassCount()
	rp.device.PopDebugMarker()

	return nil
}

// Initialized reports whether Init has been called, with or without a target.
func (rp *RenderPass) Initialized() bool {
	return rp.state != targetUninitialized
}

// Target returns the bound render target. It is nil both before Init and
// when the pass renders to the default framebuffer; use Initialized and
// RendersToDefaultFramebuffer to tell the states apart.
func (rp *RenderPass) Target() RenderTarget {
	return rp.target
}

// RendersToDefaultFramebuffer reports whether Init bound the pass to the
// default framebuffer.
func (rp *RenderPass) RendersToDefaultFramebuffer() bool {
	return rp.state == targetDefaultFramebuffer
}

// Samples is the effective sample count resolved at Init time. Never zero
// after initialization.
func (rp *RenderPass) Samples() int {
	return rp.samples
}

// ColorOps is a convenience read of the first colour attachment's ops. It is
// nil when the pass has no colour attachments; callers must guard.
func (rp *RenderPass) ColorOps() *metadata.ColorAttachmentOps {
	if len(rp.colorArrayOps) == 0 {
		return nil
	}
	return rp.colorArrayOps[0]
}

// ColorArrayOps returns the per-attachment colour ops, index-aligned with
// the target's colour buffer list.
func (rp *RenderPass) ColorArrayOps() []*metadata.ColorAttachmentOps {
	return rp.colorArrayOps
}

// DepthStencilOps returns the depth/stencil ops. Nil before Init.
func (rp *RenderPass) DepthStencilOps() *metadata.DepthStencilAttachmentOps {
	return rp.depthStencilOps
}
