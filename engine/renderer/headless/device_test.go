package headless

import (
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/emberengine/ember/engine/config"
	"github.com/emberengine/ember/engine/math"
	"github.com/emberengine/ember/engine/renderer"
)

func TestNewDeviceDefaults(t *testing.T) {
	device := New(nil)

	if device.SampleCount() != 1 {
		t.Errorf("SampleCount() = %d, want 1", device.SampleCount())
	}
	bb := device.Backbuffer()
	if bb == nil {
		t.Fatal("device must simulate a backbuffer")
	}
	if len(bb.ColorBuffers()) != 1 {
		t.Errorf("backbuffer colour buffers = %d, want 1", len(bb.ColorBuffers()))
	}
	if !bb.HasDepth() || !bb.HasStencil() {
		t.Error("default backbuffer carries depth and stencil")
	}
}

func TestMarkerStack(t *testing.T) {
	device := New(nil)

	device.PushDebugMarker("frame")
	device.PushDebugMarker("pass")
	if device.MarkerDepth() != 2 {
		t.Errorf("MarkerDepth() = %d, want 2", device.MarkerDepth())
	}
	device.PopDebugMarker()
	device.PopDebugMarker()
	// Underflow is tolerated and logged, never fatal.
	device.PopDebugMarker()
	if device.MarkerDepth() != 0 {
		t.Errorf("MarkerDepth() = %d, want 0", device.MarkerDepth())
	}
}

func TestBracketValidation(t *testing.T) {
	device := New(nil)

	if err := device.BeginRenderPass(nil); !errors.Is(err, renderer.ErrNilRenderPass) {
		t.Errorf("begin with nil pass = %v, want ErrNilRenderPass", err)
	}

	orphan := renderer.NewRenderPass(device, nil)
	if err := device.BeginRenderPass(orphan); !errors.Is(err, renderer.ErrPassNotInitialized) {
		t.Errorf("begin of uninitialized pass = %v, want ErrPassNotInitialized", err)
	}

	pass := renderer.NewRenderPass(device, nil)
	pass.Name = "first"
	pass.Init(nil)

	if err := device.EndRenderPass(pass); !errors.Is(err, renderer.ErrPassNotOpen) {
		t.Errorf("end without begin = %v, want ErrPassNotOpen", err)
	}

	if err := device.BeginRenderPass(pass); err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	if err := device.BeginRenderPass(pass); !errors.Is(err, renderer.ErrPassAlreadyOpen) {
		t.Errorf("nested begin = %v, want ErrPassAlreadyOpen", err)
	}

	other := renderer.NewRenderPass(device, nil)
	other.Name = "other"
	other.Init(nil)
	if err := device.EndRenderPass(other); err == nil {
		t.Error("mismatched end must fail")
	}

	if err := device.EndRenderPass(pass); err != nil {
		t.Fatalf("end failed: %v", err)
	}
}

func TestAttachmentLifecycle(t *testing.T) {
	device := New(&Config{SampleCount: 1})
	target := NewTarget(TargetConfig{
		Name:             "offscreen",
		SampleCount:      4,
		ColorBufferCount: 2,
		Mipmapped:        true,
		Depth:            true,
		Stencil:          true,
	})

	pass := renderer.NewRenderPass(device, nil)
	pass.Name = "lifecycle"
	pass.Init(target)

	teal := math.NewColor(0, 0.5, 0.5, 1)
	pass.SetClearColor(teal)
	pass.SetClearDepth(0.5)
	pass.SetClearStencil(3)

	// Attachment 0 is stored, attachment 1 is discarded.
	pass.ColorArrayOps()[0].Store = true
	pass.DepthStencilOps().StoreDepth = true

	if err := device.BeginRenderPass(pass); err != nil {
		t.Fatalf("begin failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		buffer := target.ColorBuffer(i)
		if buffer.Contents() != ContentsCleared {
			t.Errorf("attachment %d after begin: contents = %v, want cleared", i, buffer.Contents())
		}
		if buffer.ClearValue() != teal {
			t.Errorf("attachment %d: clear value = %v, want %v", i, buffer.ClearValue(), teal)
		}
	}
	if target.DepthContents() != ContentsCleared || target.ClearDepthValue() != 0.5 {
		t.Errorf("depth after begin: contents=%v value=%v", target.DepthContents(), target.ClearDepthValue())
	}
	if target.StencilContents() != ContentsCleared || target.ClearStencilValue() != 3 {
		t.Errorf("stencil after begin: contents=%v value=%v", target.StencilContents(), target.ClearStencilValue())
	}

	if err := device.EndRenderPass(pass); err != nil {
		t.Fatalf("end failed: %v", err)
	}

	if got := target.ColorBuffer(0).Contents(); got != ContentsPreserved {
		t.Errorf("stored attachment contents = %v, want preserved", got)
	}
	if got := target.ColorBuffer(1).Contents(); got != ContentsUndefined {
		t.Errorf("discarded attachment contents = %v, want undefined", got)
	}
	for i := 0; i < 2; i++ {
		buffer := target.ColorBuffer(i)
		if buffer.ResolveCount() != 1 {
			t.Errorf("attachment %d: resolve count = %d, want 1", i, buffer.ResolveCount())
		}
		if buffer.MipGenerations() != 1 {
			t.Errorf("attachment %d: mip generations = %d, want 1", i, buffer.MipGenerations())
		}
	}
	if target.DepthContents() != ContentsPreserved {
		t.Errorf("stored depth contents = %v, want preserved", target.DepthContents())
	}
	if target.StencilContents() != ContentsUndefined {
		t.Errorf("unstored stencil contents = %v, want undefined", target.StencilContents())
	}
}

func TestSingleSampledPassNeverResolves(t *testing.T) {
	device := New(&Config{SampleCount: 1})
	target := NewTarget(TargetConfig{Name: "flat", SampleCount: 1, ColorBufferCount: 1})

	pass := renderer.NewRenderPass(device, nil)
	pass.Init(target)

	if err := pass.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	buffer := target.ColorBuffer(0)
	if buffer.ResolveCount() != 0 {
		t.Errorf("resolve count = %d, want 0 for single-sampled surfaces", buffer.ResolveCount())
	}
	// The single-sample invariant forces store, so contents survive the pass.
	if buffer.Contents() != ContentsPreserved {
		t.Errorf("contents = %v, want preserved", buffer.Contents())
	}
}

func TestDefaultFramebufferPass(t *testing.T) {
	device := New(&Config{SampleCount: 1})

	pass := renderer.NewRenderPass(device, nil)
	pass.Name = "present"
	pass.Init(nil)
	pass.SetClearColor(math.NewColor(0, 0, 0, 1))

	if err := pass.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	if device.BeginCount() != 1 || device.EndCount() != 1 {
		t.Errorf("bracket counts = %d/%d, want 1/1", device.BeginCount(), device.EndCount())
	}
	buffer := device.Backbuffer().ColorBuffer(0)
	if buffer.Contents() != ContentsPreserved {
		t.Errorf("backbuffer contents = %v, want preserved", buffer.Contents())
	}
	if device.RenderPassCount() != 1 {
		t.Errorf("pass counter = %d, want 1", device.RenderPassCount())
	}
	if device.MarkerDepth() != 0 {
		t.Error("marker stack must be balanced after Render")
	}
}

// foreignTarget is a RenderTarget implementation the backend does not know
// how to simulate; the bracket must still work.
type foreignTarget struct{}

func (foreignTarget) SampleCount() int { return 1 }
func (foreignTarget) HasDepth() bool   { return false }
func (foreignTarget) HasStencil() bool { return false }

func TestForeignTargetBracketsOnly(t *testing.T) {
	device := New(nil)

	pass := renderer.NewRenderPass(device, nil)
	pass.Init(foreignTarget{})

	if err := pass.Render(); err != nil {
		t.Fatalf("Render() failed: %v", err)
	}
	if device.BeginCount() != 1 || device.EndCount() != 1 {
		t.Errorf("bracket counts = %d/%d, want 1/1", device.BeginCount(), device.EndCount())
	}
}

func TestBuildGraph(t *testing.T) {
	depth := float32(1)
	noCubemaps := false
	cfg := &config.Config{
		Graph: config.GraphConfig{Trace: true},
		Targets: []config.TargetConfig{
			{Name: "scene", SampleCount: 4, ColorBuffers: 2, Mipmapped: true, Depth: true},
		},
		Passes: []config.PassConfig{
			{Name: "world", Target: "scene", ClearColor: []float32{2, 0.5, -1, 1}, ClearDepth: &depth, RequiresCubemaps: &noCubemaps},
			{Name: "present"},
		},
	}

	device := New(&Config{SampleCount: 1})
	graph, targets, err := BuildGraph(device, cfg)
	if err != nil {
		t.Fatalf("BuildGraph() failed: %v", err)
	}

	if !graph.TracePasses {
		t.Error("graph trace flag must come from the config")
	}
	passes := graph.Passes()
	if len(passes) != 2 {
		t.Fatalf("passes = %d, want 2", len(passes))
	}

	world := passes[0]
	if world.Target() != renderer.RenderTarget(targets["scene"]) {
		t.Error("world pass must bind the scene target")
	}
	if world.Samples() != 4 {
		t.Errorf("world samples = %d, want 4", world.Samples())
	}
	if world.RequiresCubemaps {
		t.Error("requires_cubemaps=false must override the default")
	}
	ops := world.ColorArrayOps()
	if len(ops) != 2 {
		t.Fatalf("world colour ops = %d, want 2", len(ops))
	}
	// Out-of-range channels are clamped into [0, 1].
	want := math.NewColor(1, 0.5, 0, 1)
	if !ops[0].Clear || ops[0].ClearValue != want {
		t.Errorf("world clear = %v %v, want clear to %v", ops[0].Clear, ops[0].ClearValue, want)
	}
	ds := world.DepthStencilOps()
	if !ds.ClearDepth || ds.ClearDepthValue != 1 {
		t.Errorf("world depth clear = %v %v, want clear to 1", ds.ClearDepth, ds.ClearDepthValue)
	}

	present := passes[1]
	if !present.RendersToDefaultFramebuffer() {
		t.Error("a pass without a target renders to the default framebuffer")
	}
	if !present.RequiresCubemaps {
		t.Error("requires_cubemaps must default to true")
	}

	if err := graph.Render(device); err != nil {
		t.Fatalf("Render() of the built graph failed: %v", err)
	}
}

func TestBuildGraphRequiresInputs(t *testing.T) {
	if _, _, err := BuildGraph(nil, &config.Config{}); err == nil {
		t.Error("nil device must fail")
	}
	if _, _, err := BuildGraph(New(nil), nil); err == nil {
		t.Error("nil config must fail")
	}
}
