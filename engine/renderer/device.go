package renderer

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrNilRenderPass is returned by device backends handed a nil pass.
	ErrNilRenderPass = errors.New("render pass is nil")
	// ErrPassNotInitialized is returned by device backends asked to begin a
	// pass whose Init was never called.
	ErrPassNotInitialized = errors.New("render pass is not initialized")
	// ErrPassAlreadyOpen is returned when a begin arrives while another pass
	// is still open on the device.
	ErrPassAlreadyOpen = errors.New("a render pass is already open on the device")
	// ErrPassNotOpen is returned when an end arrives without a matching begin.
	ErrPassNotOpen = errors.New("no render pass is open on the device")
)

// Device is the graphics backend a render pass is driven against. The pass
// itself never issues graphics commands; it hands itself to BeginRenderPass
// and EndRenderPass, which read the target binding, the attachment ops and
// the sample count and perform the actual clear/load/store/resolve work.
type Device interface {
	// SampleCount is the default sample count used when a pass is bound to
	// the default framebuffer or to a target that does not declare one.
	SampleCount() int

	// RenderPassCount reports the monotonic pass counter, incremented once
	// per executed pass. Used for diagnostics and ordering.
	RenderPassCount() uint64
	// IncrementRenderPassCount bumps the pass counter and returns the new value.
	IncrementRenderPassCount() uint64

	// PushDebugMarker and PopDebugMarker scope diagnostic regions by name.
	PushDebugMarker(name string)
	PopDebugMarker()

	// BeginRenderPass applies the clear/load operations for every attachment
	// of the pass and binds them for rendering.
	BeginRenderPass(pass *RenderPass) error
	// EndRenderPass applies the store/discard, resolve and mip generation
	// operations for every attachment of the pass.
	EndRenderPass(pass *RenderPass) error
}
