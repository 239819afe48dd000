package headless

import (
	"github.com/cockroachdb/errors"

	"github.com/emberengine/ember/engine/config"
	"github.com/emberengine/ember/engine/math"
	"github.com/emberengine/ember/engine/renderer"
)

// BuildGraph turns a validated frame-graph config into simulated targets and
// an ordered FrameGraph of initialized passes. The returned target map is
// keyed by the config names so callers can inspect surface state later.
func BuildGraph(device *Device, cfg *config.Config) (*renderer.FrameGraph, map[string]*Target, error) {
	if device == nil {
		return nil, nil, errors.New("headless: BuildGraph requires a device")
	}
	if cfg == nil {
		return nil, nil, errors.New("headless: BuildGraph requires a config")
	}

	targets := make(map[string]*Target, len(cfg.Targets))
	for _, tc := range cfg.Targets {
		targets[tc.Name] = NewTarget(TargetConfig{
			Name:             tc.Name,
			SampleCount:      tc.SampleCount,
			ColorBufferCount: tc.ColorBuffers,
			Mipmapped:        tc.Mipmapped,
			Depth:            tc.Depth,
			Stencil:          tc.Stencil,
		})
	}

	graph := renderer.NewFrameGraph()
	graph.TracePasses = cfg.Graph.Trace

	for _, pc := range cfg.Passes {
		pass := renderer.NewRenderPass(device, nil)
		pass.Name = pc.Name
		if pc.RequiresCubemaps != nil {
			pass.RequiresCubemaps = *pc.RequiresCubemaps
		}

		if pc.Target == "" {
			pass.Init(nil)
		} else {
			target, exists := targets[pc.Target]
			if !exists {
				return nil, nil, errors.Newf("headless: pass '%s' references unknown target '%s'", pc.Name, pc.Target)
			}
			pass.Init(target)
		}

		if len(pc.ClearColor) == 4 {
			pass.SetClearColor(math.ClampColor(math.NewColor(
				pc.ClearColor[0], pc.ClearColor[1], pc.ClearColor[2], pc.ClearColor[3],
			)))
		}
		if pc.ClearDepth != nil {
			pass.SetClearDepth(*pc.ClearDepth)
		}
		if pc.ClearStencil != nil {
			pass.SetClearStencil(*pc.ClearStencil)
		}

		graph.AddRenderPass(pass)
	}

	return graph, targets, nil
}
