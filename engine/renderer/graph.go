package renderer

import (
	"github.com/cockroachdb/errors"

	"github.com/emberengine/ember/engine/core"
	"github.com/emberengine/ember/engine/renderer/metadata"
)

// FrameGraph sequences render passes for one frame. Passes run in insertion
// order; the graph performs no automatic dependency tracking beyond the
// mip-generation deferral done in compile.
type FrameGraph struct {
	// TracePasses logs a description line per pass every frame.
	TracePasses bool

	passes []*RenderPass
}

func NewFrameGraph() *FrameGraph {
	return &FrameGraph{}
}

// AddRenderPass appends a pass to the frame's execution order.
func (fg *FrameGraph) AddRenderPass(pass *RenderPass) {
	if pass == nil {
		panic("renderer: AddRenderPass requires a pass")
	}
	fg.passes = append(fg.passes, pass)
}

// Passes returns the passes in execution order.
func (fg *FrameGraph) Passes() []*RenderPass {
	return fg.passes
}

// Reset drops all passes so the graph can be rebuilt for the next frame.
func (fg *FrameGraph) Reset() {
	fg.passes = fg.passes[:0]
}

// Render executes all passes in order against the device. Pass ops mutated
// by the compile step are restored before Render returns, whether or not a
// pass fails.
func (fg *FrameGraph) Render(device Device) error {
	restore := fg.compile()
	defer restore()

	for i, pass := range fg.passes {
		if fg.TracePasses {
			core.LogDebug("%s", DescribePass(device, i, pass))
		}
		if err := pass.Render(); err != nil {
			return errors.Wrapf(err, "frame graph pass %d", i)
		}
	}
	return nil
}

// compile walks runs of consecutive passes bound to the same target and
// defers mip regeneration to the last pass of each run, so intermediate
// passes do not regenerate mips that the next pass immediately invalidates.
// A pass with RequiresCubemaps set opts out: its faces may be interleaved
// with other passes, so its mip state cannot be reasoned about here.
//
// It returns a function restoring every op it touched.
func (fg *FrameGraph) compile() func() {
	type savedOp struct {
		ops     *metadata.ColorAttachmentOps
		mipmaps bool
	}
	var saved []savedOp

	for i := 0; i+1 < len(fg.passes); i++ {
		pass := fg.passes[i]
		if pass.RequiresCubemaps {
			continue
		}
		if pass.state != targetBound {
			continue
		}
		if fg.passes[i+1].target != pass.target {
			continue
		}
		for _, ops := range pass.colorArrayOps {
			if ops.Mipmaps {
				saved = append(saved, savedOp{ops: ops, mipmaps: ops.Mipmaps})
				ops.Mipmaps = false
			}
		}
	}

	return func() {
		for _, s := range saved {
			s.ops.Mipmaps = s.mipmaps
		}
	}
}
