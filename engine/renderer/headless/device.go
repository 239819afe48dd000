package headless

import (
	"github.com/cockroachdb/errors"

	"github.com/emberengine/ember/engine/core"
	"github.com/emberengine/ember/engine/renderer"
)

// Config configures the headless backend.
type Config struct {
	// SampleCount is the device default sample count. 0 means 1.
	SampleCount int
	// Backbuffer configures the simulated default framebuffer. The zero
	// value yields one colour buffer with depth and stencil.
	Backbuffer *TargetConfig
}

// Device is a graphics backend that performs no GPU work. It simulates the
// attachment lifecycle a driver would apply (clear, discard, resolve, mip
// regeneration) on in-memory surface state, validates the pass bracket and
// keeps the debug marker stack and pass counter honest.
//
// Like the rest of the frame loop it is single-threaded by contract.
type Device struct {
	sampleCount int
	passCount   uint64

	markers []string

	backbuffer *Target
	openPass   *renderer.RenderPass
	beginCount uint64
	endCount   uint64
}

// New builds a headless device.
func New(config *Config) *Device {
	samples := 1
	backbufferCfg := TargetConfig{
		Name:             "backbuffer",
		ColorBufferCount: 1,
		Depth:            true,
		Stencil:          true,
	}
	if config != nil {
		if config.SampleCount > 0 {
			samples = config.SampleCount
		}
		if config.Backbuffer != nil {
			backbufferCfg = *config.Backbuffer
		}
	}
	if backbufferCfg.SampleCount == 0 {
		backbufferCfg.SampleCount = samples
	}

	return &Device{
		sampleCount: samples,
		backbuffer:  NewTarget(backbufferCfg),
	}
}

// SampleCount implements renderer.Device.
func (d *Device) SampleCount() int {
	return d.sampleCount
}

// RenderPassCount implements renderer.Device.
func (d *Device) RenderPassCount() uint64 {
	return d.passCount
}

// IncrementRenderPassCount implements renderer.Device.
func (d *Device) IncrementRenderPassCount() uint64 {
	d.passCount++
	return d.passCount
}

// PushDebugMarker implements renderer.Device.
func (d *Device) PushDebugMarker(name string) {
	d.markers = append(d.markers, name)
}

// PopDebugMarker implements renderer.Device. An underflow is logged rather
// than fatal: an unbalanced stack is exactly the diagnostic signal a
// misbehaving pass leaves behind.
func (d *Device) PopDebugMarker() {
	if len(d.markers) == 0 {
		core.LogWarn("headless: debug marker stack underflow")
		return
	}
	d.markers = d.markers[:len(d.markers)-1]
}

// MarkerDepth reports how many debug markers are currently open.
func (d *Device) MarkerDepth() int {
	return len(d.markers)
}

// Backbuffer is the simulated default framebuffer. Passes initialized with a
// nil target render to it.
func (d *Device) Backbuffer() *Target {
	return d.backbuffer
}

// BeginCount and EndCount report how many pass brackets the device opened
// and closed.
func (d *Device) BeginCount() uint64 { return d.beginCount }
func (d *Device) EndCount() uint64   { return d.endCount }

// BeginRenderPass implements renderer.Device: it validates the bracket and
// applies the clear/load operations to the pass's simulated surfaces.
func (d *Device) BeginRenderPass(pass *renderer.RenderPass) error {
	if pass == nil {
		return renderer.ErrNilRenderPass
	}
	if !pass.Initialized() {
		return errors.Wrapf(renderer.ErrPassNotInitialized, "pass '%s'", pass.Name)
	}
	if d.openPass != nil {
		return errors.Wrapf(renderer.ErrPassAlreadyOpen, "pass '%s' while '%s' is open", pass.Name, d.openPass.Name)
	}
	d.openPass = pass
	d.beginCount++

	target := d.resolveTarget(pass)
	if target == nil {
		// Foreign target implementation: bracket only, nothing to simulate.
		return nil
	}

	for i, ops := range pass.ColorArrayOps() {
		buffer := target.ColorBuffer(i)
		if buffer == nil {
			continue
		}
		if ops.Clear {
			buffer.contents = ContentsCleared
			buffer.clearValue = ops.ClearValue
		}
		// A load leaves whatever contents the surface already had.
	}

	ds := pass.DepthStencilOps()
	if target.depth && ds.ClearDepth {
		target.depthContents = ContentsCleared
		target.clearDepthValue = ds.ClearDepthValue
	}
	if target.stencil && ds.ClearStencil {
		target.stencilContents = ContentsCleared
		target.clearStencilValue = ds.ClearStencilValue
	}

	return nil
}

// EndRenderPass implements renderer.Device: it validates the bracket and
// applies the store/discard, resolve and mip generation operations.
func (d *Device) EndRenderPass(pass *renderer.RenderPass) error {
	if pass == nil {
		return renderer.ErrNilRenderPass
	}
	if d.openPass == nil {
		return errors.Wrapf(renderer.ErrPassNotOpen, "pass '%s'", pass.Name)
	}
	if d.openPass != pass {
		return errors.Newf("headless: end of pass '%s' does not match open pass '%s'", pass.Name, d.openPass.Name)
	}
	d.openPass = nil
	d.endCount++

	target := d.resolveTarget(pass)
	if target == nil {
		return nil
	}

	multisampled := pass.Samples() > 1
	for i, ops := range pass.ColorArrayOps() {
		buffer := target.ColorBuffer(i)
		if buffer == nil {
			continue
		}
		if ops.Store {
			buffer.contents = ContentsPreserved
		} else {
			buffer.contents = ContentsUndefined
		}
		if ops.Resolve && multisampled {
			buffer.resolveCount++
		}
		if ops.Mipmaps {
			buffer.mipGenerations++
		}
	}

	ds := pass.DepthStencilOps()
	if target.depth {
		if ds.StoreDepth {
			target.depthContents = ContentsPreserved
		} else {
			target.depthContents = ContentsUndefined
		}
	}
	if target.stencil {
		if ds.StoreStencil {
			target.stencilContents = ContentsPreserved
		} else {
			target.stencilContents = ContentsUndefined
		}
	}

	return nil
}

// resolveTarget maps a pass to the simulated target it writes: the
// backbuffer for default-framebuffer passes, the bound *Target when it is
// one of ours, nil for foreign RenderTarget implementations.
func (d *Device) resolveTarget(pass *renderer.RenderPass) *Target {
	if pass.RendersToDefaultFramebuffer() {
		return d.backbuffer
	}
	if target, ok := pass.Target().(*Target); ok {
		return target
	}
	return nil
}
